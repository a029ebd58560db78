// Package agent implements the templated Q&A responder. Answers come from
// canned bilingual paragraph generators keyed on substrings of the question;
// the search pipeline supplies sources and related topics.
package agent

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/shikshasetu/examsearch/internal/domain"
	"github.com/shikshasetu/examsearch/internal/metrics"
	searchuc "github.com/shikshasetu/examsearch/internal/usecase/search"
)

// contextLimit is how many search results back one answer.
const contextLimit = 5

// Searcher is the aggregator contract the agent consumes.
type Searcher interface {
	Search(ctx context.Context, req searchuc.Request) (*searchuc.Response, error)
	Suggestions(ctx context.Context, query string) []string
}

// Service answers exam questions from templates plus search context.
type Service struct {
	search  Searcher
	textgen domain.TextGenerator // nil selects templated answers only
	logger  *zap.Logger
}

// New creates an agent service. textgen may be nil.
func New(search Searcher, textgen domain.TextGenerator, logger *zap.Logger) *Service {
	return &Service{search: search, textgen: textgen, logger: logger}
}

// Source is a content record cited by an answer.
type Source struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

// Response is one agent answer.
type Response struct {
	Answer            string   `json:"answer"`
	Sources           []Source `json:"sources"`
	Confidence        float64  `json:"confidence"`
	RelatedTopics     []string `json:"relatedTopics"`
	FollowUpQuestions []string `json:"followUpQuestions"`
	Suggestions       []string `json:"suggestions"`
	ProcessingTimeMs  int64    `json:"processingTime"`
}

// Answer handles one question. The question doubles as the search query for
// gathering context; template selection is a plain substring switch.
func (s *Service) Answer(ctx context.Context, question, language string) (*Response, error) {
	start := time.Now()

	result, err := s.search.Search(ctx, searchuc.Request{
		Query:    question,
		Language: language,
		Limit:    contextLimit,
	})
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues("agent", "error").Inc()
		return nil, err
	}

	tpl := selectTemplate(question)
	answer := s.renderAnswer(ctx, tpl, question, language)

	resp := &Response{
		Answer:            answer,
		Sources:           sourcesOf(result.Results),
		Confidence:        confidenceOf(result.Results),
		RelatedTopics:     relatedTopics(result.Results),
		FollowUpQuestions: tpl.followUps(language),
		Suggestions:       s.search.Suggestions(ctx, question),
		ProcessingTimeMs:  time.Since(start).Milliseconds(),
	}

	metrics.SearchRequestsTotal.WithLabelValues("agent", "success").Inc()
	metrics.SearchDuration.WithLabelValues("agent").Observe(time.Since(start).Seconds())

	return resp, nil
}

// renderAnswer prefers the remote generator when configured, falling back to
// the canned template on any failure.
func (s *Service) renderAnswer(ctx context.Context, tpl template, question, language string) string {
	canned := tpl.answer(language)
	if s.textgen == nil {
		return canned
	}

	prompt := "Answer this Bihar teacher exam question"
	if language == "hi" {
		prompt += " in Hindi"
	}
	prompt += ": " + question

	generated, err := s.textgen.Generate(ctx, prompt)
	if err != nil || strings.TrimSpace(generated) == "" {
		if err != nil {
			s.logger.Warn("answer generation failed, using template", zap.Error(err))
		}
		return canned
	}
	return generated
}

// selectTemplate picks the canned responder by substring matches on the
// question. STET is checked first, then BPSC, then TRE, so a mixed question
// resolves to the earliest matching exam.
func selectTemplate(question string) template {
	q := strings.ToLower(question)
	switch {
	case strings.Contains(q, "stet"):
		return stetTemplate
	case strings.Contains(q, "bpsc") || strings.Contains(q, "teacher"):
		return bpscTemplate
	case strings.Contains(q, "tre") || strings.Contains(q, "4.0"):
		return treTemplate
	default:
		return genericTemplate
	}
}

func sourcesOf(results []domain.ScoredResult) []Source {
	out := make([]Source, 0, len(results))
	for _, r := range results {
		out = append(out, Source{ID: r.ID, Title: r.Title, Type: string(r.Type)})
	}
	return out
}

// confidenceOf scales with the best relevance found: strong matches answer
// confidently, weak context stays close to the floor.
func confidenceOf(results []domain.ScoredResult) float64 {
	if len(results) == 0 {
		return 0.3
	}
	conf := 0.5 + 0.45*results[0].Relevance
	if conf > 0.95 {
		conf = 0.95
	}
	return conf
}

func relatedTopics(results []domain.ScoredResult) []string {
	seen := map[string]bool{}
	topics := []string{}
	for _, r := range results {
		topic := r.Meta(domain.MetaTopic)
		if topic == "" || seen[topic] {
			continue
		}
		seen[topic] = true
		topics = append(topics, topic)
	}
	return topics
}
