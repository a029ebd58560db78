// Package search implements the relevance scoring and result aggregation
// pipeline: a full linear scan over the collected corpus blending exact
// keyword overlap with embedding cosine similarity.
package search

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/shikshasetu/examsearch/internal/domain"
	"github.com/shikshasetu/examsearch/internal/metrics"
)

// Service orchestrates one search call end to end.
type Service struct {
	repo    ContentRepository
	embed   domain.Embedder
	textgen domain.TextGenerator // nil selects canned output everywhere
	pool    *ants.Pool
	logger  *zap.Logger

	defaultLimit    int
	maxLimit        int
	suggestionLimit int
}

// New creates a search service. textgen may be nil.
func New(repo ContentRepository, embed domain.Embedder, textgen domain.TextGenerator, logger *zap.Logger) *Service {
	return &Service{
		repo:            repo,
		embed:           embed,
		textgen:         textgen,
		logger:          logger,
		defaultLimit:    10,
		maxLimit:        50,
		suggestionLimit: 5,
	}
}

// WithLimits overrides the default and maximum result limits.
func (s *Service) WithLimits(defaultLimit, maxLimit, suggestionLimit int) *Service {
	s.defaultLimit = defaultLimit
	s.maxLimit = maxLimit
	s.suggestionLimit = suggestionLimit
	return s
}

// WithWorkers attaches a goroutine pool for parallel per-record scoring.
// Records are scored independently, so only throughput changes.
func (s *Service) WithWorkers(workers int) (*Service, error) {
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create scoring pool: %w", err)
	}
	s.pool = pool
	return s, nil
}

// Close releases the scoring pool.
func (s *Service) Close() {
	if s.pool != nil {
		s.pool.Release()
	}
}

// Search runs the full pipeline: validate, collect, score, merge the raw
// substring pass, dedup, sort, filter, truncate, and attach suggestions and
// key info. Step order matters: dedup and filtering operate on the merged,
// scored list.
func (s *Service) Search(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	query := strings.TrimSpace(req.Query)
	if utf8.RuneCountInString(query) < minQueryRunes {
		metrics.SearchRequestsTotal.WithLabelValues("search", "invalid").Inc()
		return nil, domain.ErrQueryTooShort
	}

	limit := s.resolveLimit(req.Limit)
	records := s.repo.List(ctx)

	// The embedding is a pure function of the query; compute it once per
	// request instead of once per candidate.
	queryVec, err := s.embed.Embed(ctx, query)
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues("search", "error").Inc()
		return nil, fmt.Errorf("embed query: %w", err)
	}

	scored, err := s.scoreAll(ctx, tokenize(query), queryVec, records)
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues("search", "error").Inc()
		return nil, fmt.Errorf("score candidates: %w", err)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Relevance > scored[j].Relevance
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}

	// Raw substring pass: a record whose haystack contains the whole query
	// is an exact match with fixed relevance 1.0, ahead of semantic results.
	exact := exactMatches(query, records)

	merged := dedupByID(append(exact, scored...))
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Relevance > merged[j].Relevance
	})

	filtered := merged
	if !req.Filters.Empty() {
		filtered = filtered[:0:0]
		for _, r := range merged {
			if req.Filters.Match(&r.SearchableRecord) {
				filtered = append(filtered, r)
			}
		}
	}

	total := len(filtered)
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}
	if filtered == nil {
		filtered = []domain.ScoredResult{}
	}

	resp := &Response{
		Results:          filtered,
		Suggestions:      s.Suggestions(ctx, query),
		TotalResults:     total,
		Query:            query,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
		KeyInfo:          s.keyInfo(ctx, query, filtered),
	}

	metrics.SearchRequestsTotal.WithLabelValues("search", "success").Inc()
	metrics.SearchDuration.WithLabelValues("search").Observe(time.Since(start).Seconds())

	return resp, nil
}

func (s *Service) resolveLimit(limit int) int {
	if limit < 0 {
		return s.defaultLimit
	}
	if limit > s.maxLimit {
		return s.maxLimit
	}
	return limit
}

// scoreAll computes relevance for every record. Scoring is fanned out over
// the pool when one is attached; results land in index-addressed slots so
// output order stays deterministic.
func (s *Service) scoreAll(
	ctx context.Context, tokens []string, queryVec []float32, records []domain.SearchableRecord,
) ([]domain.ScoredResult, error) {
	results := make([]domain.ScoredResult, len(records))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for i := range records {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			rec := records[i]
			rel, err := s.scoreRecord(ctx, tokens, queryVec, &rec)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			results[i] = domain.ScoredResult{SearchableRecord: rec, Relevance: rel}
		}

		if s.pool != nil {
			if err := s.pool.Submit(task); err == nil {
				continue
			}
		}
		task()
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

// scoreRecord blends the normalized exact score with the cosine similarity
// of the query and haystack embeddings.
func (s *Service) scoreRecord(
	ctx context.Context, tokens []string, queryVec []float32, rec *domain.SearchableRecord,
) (float64, error) {
	hay := haystackFor(rec)

	hayVec, err := s.embed.Embed(ctx, hay)
	if err != nil {
		return 0, fmt.Errorf("embed record %s: %w", rec.ID, err)
	}

	exact := exactScore(tokens, hay, rec)
	semantic := domain.CosineSimilarity(queryVec, hayVec)

	return exactWeight*exact + semanticWeight*semantic, nil
}

// exactMatches returns records containing the raw lowercased query as a
// substring, pinned at relevance 1.0.
func exactMatches(query string, records []domain.SearchableRecord) []domain.ScoredResult {
	needle := strings.ToLower(query)

	var out []domain.ScoredResult
	for i := range records {
		if strings.Contains(haystackFor(&records[i]), needle) {
			out = append(out, domain.ScoredResult{SearchableRecord: records[i], Relevance: 1.0})
		}
	}
	return out
}

// dedupByID keeps the first occurrence of each ID, so exact matches win ties
// against semantic results sharing the same record.
func dedupByID(results []domain.ScoredResult) []domain.ScoredResult {
	seen := make(map[string]struct{}, len(results))
	out := results[:0:0]
	for _, r := range results {
		if _, ok := seen[r.ID]; ok {
			continue
		}
		seen[r.ID] = struct{}{}
		out = append(out, r)
	}
	return out
}
