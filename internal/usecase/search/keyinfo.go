package search

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/shikshasetu/examsearch/internal/domain"
)

// keyInfo builds the advisory summary block for the top results. The remote
// generator only supplies the summary sentence; topics and recommendations
// are always derived from the results so they stay grounded in the corpus.
func (s *Service) keyInfo(ctx context.Context, query string, results []domain.ScoredResult) domain.KeyInfo {
	info := domain.KeyInfo{
		Summary:         cannedSummary(query, results),
		KeyTopics:       topTopics(results),
		Recommendations: recommendations(results),
	}

	if s.textgen == nil || len(results) == 0 {
		return info
	}

	prompt := fmt.Sprintf(
		"Summarise in two sentences what these Bihar teacher exam resources cover for the query %q: %s",
		query, titlesOf(results),
	)
	summary, err := s.textgen.Generate(ctx, prompt)
	if err != nil {
		s.logger.Warn("key info generation failed, using canned summary", zap.Error(err))
		return info
	}
	info.Summary = strings.TrimSpace(summary)
	return info
}

func cannedSummary(query string, results []domain.ScoredResult) string {
	if len(results) == 0 {
		return fmt.Sprintf("No matching exam resources found for %q. Try a broader query like \"STET\" or \"BPSC TRE\".", query)
	}
	return fmt.Sprintf("Found %d resources for %q covering Bihar teacher recruitment exams, including %s.",
		len(results), query, results[0].Title)
}

// topTopics returns the distinct metadata topics of the results, in result
// order, capped at five.
func topTopics(results []domain.ScoredResult) []string {
	seen := map[string]bool{}
	topics := []string{}
	for _, r := range results {
		topic := r.Meta(domain.MetaTopic)
		if topic == "" || seen[topic] {
			continue
		}
		seen[topic] = true
		topics = append(topics, topic)
		if len(topics) == 5 {
			break
		}
	}
	return topics
}

func recommendations(results []domain.ScoredResult) []string {
	recs := []string{
		"Review the official syllabus before attempting mock tests.",
	}

	hasSTET := false
	hasTRE := false
	for _, r := range results {
		switch r.Meta(domain.MetaExamType) {
		case "STET":
			hasSTET = true
		case "BPSC_TRE":
			hasTRE = true
		}
	}
	if hasSTET {
		recs = append(recs, "Check the category-wise STET qualifying marks to set a score target.")
	}
	if hasTRE {
		recs = append(recs, "Keep your CTET/STET certificate ready for the BPSC TRE application.")
	}
	if len(recs) == 1 {
		recs = append(recs, "Practice previous year question papers under timed conditions.")
	}
	return recs
}

func titlesOf(results []domain.ScoredResult) string {
	titles := make([]string, 0, len(results))
	for _, r := range results {
		titles = append(titles, r.Title)
	}
	return strings.Join(titles, "; ")
}
