package search

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// suggestionSuffixes are the common follow-up intents appended to a query by
// the heuristic generator.
var suggestionSuffixes = []string{
	"eligibility",
	"syllabus",
	"exam date",
	"admit card",
	"result",
}

// Suggestions produces advisory query refinements. When a text generator is
// configured it is tried first; any failure falls back to the suffix
// heuristic. Suggestions never affect ranking.
func (s *Service) Suggestions(ctx context.Context, query string) []string {
	if s.textgen != nil {
		if got, err := s.generateSuggestions(ctx, query); err == nil && len(got) > 0 {
			return got
		} else if err != nil {
			s.logger.Warn("suggestion generation failed, using heuristic", zap.Error(err))
		}
	}
	return s.heuristicSuggestions(query)
}

func (s *Service) heuristicSuggestions(query string) []string {
	lower := strings.ToLower(query)

	out := make([]string, 0, s.suggestionLimit)
	for _, suffix := range suggestionSuffixes {
		if strings.Contains(lower, suffix) {
			continue
		}
		out = append(out, query+" "+suffix)
		if len(out) == s.suggestionLimit {
			break
		}
	}
	return out
}

func (s *Service) generateSuggestions(ctx context.Context, query string) ([]string, error) {
	prompt := fmt.Sprintf(
		"Suggest up to %d short related search queries for a Bihar teacher exam portal, "+
			"one per line, no numbering, for the query: %q",
		s.suggestionLimit, query,
	)

	text, err := s.textgen.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate suggestions: %w", err)
	}

	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "-*• "))
		if line == "" {
			continue
		}
		out = append(out, line)
		if len(out) == s.suggestionLimit {
			break
		}
	}
	return out, nil
}

// QuickSuggestions serves the lightweight GET path: titles containing the
// raw query as a substring, no scoring involved.
func (s *Service) QuickSuggestions(ctx context.Context, query string) []string {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return []string{}
	}

	out := []string{}
	for _, r := range s.repo.List(ctx) {
		if strings.Contains(strings.ToLower(r.Title), needle) ||
			strings.Contains(strings.ToLower(r.TitleHindi), needle) {
			out = append(out, r.Title)
			if len(out) == s.suggestionLimit {
				break
			}
		}
	}
	return out
}
