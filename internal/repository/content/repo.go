// Package content assembles the in-memory corpus of searchable records from
// static sources: question banks, exam information snippets and news items.
// It stands in for a real datastore behind the Repository interface.
package content

import (
	"context"

	"go.uber.org/zap"

	"github.com/shikshasetu/examsearch/internal/domain"
)

// Repository produces the full candidate list for one search request.
type Repository struct {
	logger *zap.Logger
}

// New creates a content repository.
func New(logger *zap.Logger) *Repository {
	return &Repository{logger: logger}
}

// source is one static content feed. Sources are collected independently so
// one bad source cannot take down the whole corpus.
type source struct {
	name    string
	collect func() []domain.SearchableRecord
}

// List returns every searchable record in insertion order: question banks,
// then exam information, then news, then eligibility notes. The order is not
// semantically meaningful. List is best-effort and never fails: a panicking
// source is logged and skipped, and whatever was collected so far is returned.
func (r *Repository) List(ctx context.Context) []domain.SearchableRecord {
	sources := []source{
		{"questions", questionRecords},
		{"exam_info", examInfoRecords},
		{"news", newsRecords},
		{"eligibility", eligibilityRecords},
	}

	var records []domain.SearchableRecord
	for _, src := range sources {
		select {
		case <-ctx.Done():
			return records
		default:
		}
		records = append(records, r.collectSource(src)...)
	}
	return records
}

func (r *Repository) collectSource(src source) (records []domain.SearchableRecord) {
	defer func() {
		if rvr := recover(); rvr != nil {
			r.logger.Error("content source failed, continuing with partial corpus",
				zap.String("source", src.name),
				zap.Any("panic", rvr),
			)
			records = nil
		}
	}()
	return src.collect()
}
