package search

import (
	"strings"
	"unicode/utf8"

	"github.com/shikshasetu/examsearch/internal/domain"
)

// Scoring constants. The blend and bonus values are tuning parameters, not
// principled weights.
const (
	exactWeight    = 0.7
	semanticWeight = 0.3
	titleBonus     = 0.5
	examTypeBonus  = 0.3
	minQueryRunes  = 2
	minTokenRunes  = 3
)

// tokenize lowercases the query, splits on whitespace and discards tokens
// shorter than three runes.
func tokenize(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	tokens := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= minTokenRunes {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// haystackFor builds the lowercased text blob query tokens are matched
// against: both language variants plus the examType and topic metadata.
func haystackFor(r *domain.SearchableRecord) string {
	parts := []string{
		r.Title,
		r.Body,
		r.TitleHindi,
		r.BodyHindi,
		r.Meta(domain.MetaExamType),
		r.Meta(domain.MetaTopic),
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// exactScore counts query tokens found in the haystack, with stacking bonuses
// for title and examType hits, normalized by the token count. Zero tokens
// yields zero (guards the divide).
func exactScore(tokens []string, hay string, r *domain.SearchableRecord) float64 {
	if len(tokens) == 0 {
		return 0
	}

	title := strings.ToLower(r.Title)
	examType := strings.ToLower(r.Meta(domain.MetaExamType))

	var score float64
	for _, tok := range tokens {
		if !strings.Contains(hay, tok) {
			continue
		}
		score += 1.0
		if strings.Contains(title, tok) {
			score += titleBonus
		}
		if strings.Contains(examType, tok) {
			score += examTypeBonus
		}
	}
	return score / float64(len(tokens))
}
