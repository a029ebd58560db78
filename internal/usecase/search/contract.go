package search

import (
	"context"

	"github.com/shikshasetu/examsearch/internal/domain"
)

// ContentRepository supplies the candidate records for one search pass.
// Implementations are best-effort and must not fail.
type ContentRepository interface {
	List(ctx context.Context) []domain.SearchableRecord
}

// Request describes one search call.
// Limit < 0 selects the service default; 0 is a valid value meaning
// "count matches but return no results".
type Request struct {
	Query    string
	Language string
	Filters  domain.Filters
	Limit    int
}

// Response is the aggregated search result. TotalResults counts the filtered
// set before truncation to the limit.
type Response struct {
	Results          []domain.ScoredResult `json:"results"`
	Suggestions      []string              `json:"suggestions"`
	TotalResults     int                   `json:"totalResults"`
	Query            string                `json:"query"`
	ProcessingTimeMs int64                 `json:"processingTime"`
	KeyInfo          domain.KeyInfo        `json:"keyInfo"`
}
