package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shikshasetu/examsearch/internal/domain"
)

func TestList_Deterministic(t *testing.T) {
	repo := New(zap.NewNop())
	ctx := context.Background()

	first := repo.List(ctx)
	second := repo.List(ctx)

	require.NotEmpty(t, first)
	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestList_UniqueIDs(t *testing.T) {
	repo := New(zap.NewNop())

	seen := map[string]bool{}
	for _, r := range repo.List(context.Background()) {
		require.Falsef(t, seen[r.ID], "duplicate id %q", r.ID)
		seen[r.ID] = true
	}
}

func TestList_RecordShape(t *testing.T) {
	repo := New(zap.NewNop())

	for _, r := range repo.List(context.Background()) {
		assert.NotEmpty(t, r.ID)
		assert.NotEmpty(t, r.Title)
		assert.NotEmpty(t, r.TitleHindi, "record %s missing Hindi title", r.ID)
		switch r.Type {
		case domain.TypeQuestion, domain.TypeNews, domain.TypeExam, domain.TypeSyllabus, domain.TypeEligibility:
		default:
			t.Errorf("record %s has unknown type %q", r.ID, r.Type)
		}
	}
}

func TestList_InsertionOrder(t *testing.T) {
	repo := New(zap.NewNop())
	records := repo.List(context.Background())

	// Question banks come first, eligibility notes last.
	assert.Equal(t, domain.TypeQuestion, records[0].Type)
	assert.Equal(t, domain.TypeEligibility, records[len(records)-1].Type)
}

func TestCollectSource_PanicSkipsSource(t *testing.T) {
	repo := New(zap.NewNop())

	records := repo.collectSource(source{
		name:    "broken",
		collect: func() []domain.SearchableRecord { panic("bad data") },
	})
	assert.Nil(t, records)
}

func TestQuestionToRecord_FlattensOptionsAndExplanation(t *testing.T) {
	q := stetPaper1Questions[0]
	rec := q.toRecord()

	assert.Equal(t, domain.TypeQuestion, rec.Type)
	for _, opt := range q.options {
		assert.Contains(t, rec.Body, opt)
	}
	assert.Contains(t, rec.Body, q.explanation)
	assert.Contains(t, rec.BodyHindi, q.explainHi)
	assert.Equal(t, q.examType, rec.Meta(domain.MetaExamType))
}
