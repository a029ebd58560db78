package search

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/shikshasetu/examsearch/internal/domain"
)

// --- Mocks ---

type mockRepo struct {
	records []domain.SearchableRecord
}

func (m *mockRepo) List(_ context.Context) []domain.SearchableRecord {
	return m.records
}

type countingEmbedder struct {
	inner domain.Embedder
	calls int
}

func (c *countingEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	c.calls++
	return c.inner.Embed(ctx, text)
}

type failingEmbedder struct{}

func (failingEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	return nil, errors.New("embedder broken")
}

type stubTextGen struct {
	text string
	err  error
}

func (s *stubTextGen) Generate(_ context.Context, _ string) (string, error) {
	return s.text, s.err
}

func corpus() []domain.SearchableRecord {
	return []domain.SearchableRecord{
		{
			ID:    "exam-stet",
			Type:  domain.TypeExam,
			Title: "STET Exam Information",
			Body:  "Secondary teacher eligibility test conducted by BSEB.",
			Metadata: map[string]string{
				domain.MetaExamType: "STET",
				domain.MetaTopic:    "Exam Overview",
			},
		},
		{
			ID:    "guide-1",
			Type:  domain.TypeSyllabus,
			Title: "Teacher Exam Preparation Guide",
			Body:  "Covers stet preparation strategies in depth.",
			Metadata: map[string]string{
				domain.MetaExamType: "BPSC_TRE",
				domain.MetaTopic:    "Syllabus",
			},
		},
		{
			ID:    "news-1",
			Type:  domain.TypeNews,
			Title: "TRE Notification Released",
			Body:  "BPSC has published the teacher recruitment notification.",
			Metadata: map[string]string{
				domain.MetaExamType: "BPSC_TRE",
				domain.MetaTopic:    "Notification",
			},
		},
		{
			ID:    "q-1",
			Type:  domain.TypeQuestion,
			Title: "Which river is the Sorrow of Bihar?",
			Body:  "Kosi Gandak Son Ganga. The Kosi floods frequently.",
			Metadata: map[string]string{
				domain.MetaExamType: "BPSC_TRE",
				domain.MetaTopic:    "General Studies",
			},
		},
	}
}

func newTestService(records []domain.SearchableRecord) *Service {
	return New(&mockRepo{records: records}, domain.NewHashEmbedder(64), nil, zap.NewNop())
}

// --- Tests ---

func TestSearch_SortedUniqueWithinLimit(t *testing.T) {
	svc := newTestService(corpus())

	resp, err := svc.Search(context.Background(), Request{Query: "stet exam", Limit: -1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Results) > 10 {
		t.Fatalf("results exceed default limit: %d", len(resp.Results))
	}

	seen := map[string]bool{}
	for i, r := range resp.Results {
		if seen[r.ID] {
			t.Errorf("duplicate id %q in results", r.ID)
		}
		seen[r.ID] = true
		if i > 0 && resp.Results[i-1].Relevance < r.Relevance {
			t.Errorf("results not sorted descending at index %d", i)
		}
	}
}

func TestSearch_ShortQueryRejected(t *testing.T) {
	embed := &countingEmbedder{inner: domain.NewHashEmbedder(64)}
	svc := New(&mockRepo{records: corpus()}, embed, nil, zap.NewNop())

	for _, q := range []string{"", "s", "  x  "} {
		_, err := svc.Search(context.Background(), Request{Query: q, Limit: -1})
		if !errors.Is(err, domain.ErrQueryTooShort) {
			t.Errorf("query %q: expected ErrQueryTooShort, got %v", q, err)
		}
	}
	if embed.calls != 0 {
		t.Errorf("no scoring work expected for rejected queries, got %d embed calls", embed.calls)
	}
}

func TestSearch_Idempotent(t *testing.T) {
	svc := newTestService(corpus())
	ctx := context.Background()
	req := Request{Query: "bihar teacher", Limit: -1}

	first, err := svc.Search(ctx, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Search(ctx, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first.Results) != len(second.Results) {
		t.Fatalf("result counts differ: %d vs %d", len(first.Results), len(second.Results))
	}
	for i := range first.Results {
		if first.Results[i].ID != second.Results[i].ID ||
			first.Results[i].Relevance != second.Results[i].Relevance {
			t.Errorf("result %d differs between identical calls", i)
		}
	}
}

func TestSearch_FilterByType(t *testing.T) {
	svc := newTestService(corpus())

	resp, err := svc.Search(context.Background(), Request{
		Query:   "teacher",
		Filters: domain.Filters{Types: []string{"news"}},
		Limit:   -1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range resp.Results {
		if r.Type != domain.TypeNews {
			t.Errorf("filter leaked record of type %q", r.Type)
		}
	}
}

func TestSearch_FiltersAreIntersected(t *testing.T) {
	svc := newTestService(corpus())
	ctx := context.Background()

	both, err := svc.Search(ctx, Request{
		Query: "teacher",
		Filters: domain.Filters{
			Types:     []string{"news"},
			ExamTypes: []string{"BPSC_TRE"},
		},
		Limit: -1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, r := range both.Results {
		if r.Type != domain.TypeNews || r.Meta(domain.MetaExamType) != "BPSC_TRE" {
			t.Errorf("record %q fails intersected filters", r.ID)
		}
	}

	// AND semantics: two dimensions can only shrink a one-dimension result set.
	one, err := svc.Search(ctx, Request{
		Query:   "teacher",
		Filters: domain.Filters{Types: []string{"news"}},
		Limit:   -1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if both.TotalResults > one.TotalResults {
		t.Errorf("intersection grew the result set: %d > %d", both.TotalResults, one.TotalResults)
	}
}

func TestSearch_ExactMatchPriority(t *testing.T) {
	svc := newTestService(corpus())

	resp, err := svc.Search(context.Background(), Request{Query: "stet", Limit: -1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var found bool
	occurrences := 0
	for _, r := range resp.Results {
		if r.ID == "exam-stet" {
			occurrences++
			found = true
			if r.Relevance != 1.0 {
				t.Errorf("exact substring match must have relevance 1.0, got %v", r.Relevance)
			}
		}
	}
	if !found {
		t.Fatal("expected exam-stet in results for query 'stet'")
	}
	if occurrences != 1 {
		t.Errorf("record surfaced %d times, dedup must keep one", occurrences)
	}
}

func TestSearch_LimitZero(t *testing.T) {
	svc := newTestService(corpus())

	resp, err := svc.Search(context.Background(), Request{Query: "teacher", Limit: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Results) != 0 {
		t.Errorf("limit 0 must return no results, got %d", len(resp.Results))
	}
	if resp.TotalResults == 0 {
		t.Error("totalResults must still count the filtered set before truncation")
	}
}

func TestSearch_OnlyShortTokens(t *testing.T) {
	// "is a" passes the length-2 query gate but yields zero scoring tokens;
	// relevance must be driven by the semantic component without dividing by zero.
	svc := newTestService(corpus())

	resp, err := svc.Search(context.Background(), Request{Query: "is a", Limit: -1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range resp.Results {
		if r.Relevance > semanticWeight+1e-9 && r.Relevance != 1.0 {
			t.Errorf("record %q relevance %v exceeds pure-semantic bound", r.ID, r.Relevance)
		}
	}
}

func TestSearch_EmbedderFailurePropagates(t *testing.T) {
	svc := New(&mockRepo{records: corpus()}, failingEmbedder{}, nil, zap.NewNop())

	if _, err := svc.Search(context.Background(), Request{Query: "stet", Limit: -1}); err == nil {
		t.Fatal("expected aggregation failure when embedding fails")
	}
}

func TestSearch_ParallelScoringMatchesSerial(t *testing.T) {
	serial := newTestService(corpus())

	parallel, err := newTestService(corpus()).WithWorkers(4)
	if err != nil {
		t.Fatalf("pool: %v", err)
	}
	defer parallel.Close()

	ctx := context.Background()
	req := Request{Query: "bihar teacher exam", Limit: -1}

	a, err := serial.Search(ctx, req)
	if err != nil {
		t.Fatalf("serial: %v", err)
	}
	b, err := parallel.Search(ctx, req)
	if err != nil {
		t.Fatalf("parallel: %v", err)
	}

	if len(a.Results) != len(b.Results) {
		t.Fatalf("result counts differ: %d vs %d", len(a.Results), len(b.Results))
	}
	for i := range a.Results {
		if a.Results[i].ID != b.Results[i].ID || a.Results[i].Relevance != b.Results[i].Relevance {
			t.Errorf("parallel scoring diverged at index %d", i)
		}
	}
}

func TestSearch_KeyInfoPresent(t *testing.T) {
	svc := newTestService(corpus())

	resp, err := svc.Search(context.Background(), Request{Query: "stet", Limit: -1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.KeyInfo.Summary == "" {
		t.Error("expected a canned summary")
	}
	if len(resp.KeyInfo.Recommendations) < 2 {
		t.Errorf("expected at least 2 recommendations, got %d", len(resp.KeyInfo.Recommendations))
	}
}

func TestSuggestions_Heuristic(t *testing.T) {
	svc := newTestService(corpus())

	got := svc.Suggestions(context.Background(), "stet")
	want := []string{"stet eligibility", "stet syllabus", "stet exam date", "stet admit card", "stet result"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// A suffix already present in the query is skipped.
	got = svc.Suggestions(context.Background(), "stet syllabus")
	for _, s := range got {
		if s == "stet syllabus syllabus" {
			t.Error("suffix duplicated into query")
		}
	}
}

func TestSuggestions_GeneratorFallsBackOnError(t *testing.T) {
	svc := New(&mockRepo{records: corpus()}, domain.NewHashEmbedder(64),
		&stubTextGen{err: errors.New("provider down")}, zap.NewNop())

	got := svc.Suggestions(context.Background(), "stet")
	if len(got) == 0 {
		t.Fatal("expected heuristic fallback suggestions")
	}
	if got[0] != "stet eligibility" {
		t.Errorf("unexpected first suggestion: %q", got[0])
	}
}

func TestSuggestions_GeneratorOutputParsed(t *testing.T) {
	svc := New(&mockRepo{records: corpus()}, domain.NewHashEmbedder(64),
		&stubTextGen{text: "- stet paper 2 syllabus\n\n* stet age limit\n"}, zap.NewNop())

	got := svc.Suggestions(context.Background(), "stet")
	want := []string{"stet paper 2 syllabus", "stet age limit"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestQuickSuggestions(t *testing.T) {
	svc := newTestService(corpus())

	got := svc.QuickSuggestions(context.Background(), "stet")
	if len(got) != 1 || got[0] != "STET Exam Information" {
		t.Errorf("unexpected quick suggestions: %v", got)
	}

	if got := svc.QuickSuggestions(context.Background(), "   "); len(got) != 0 {
		t.Errorf("blank query must yield no suggestions, got %v", got)
	}
}
