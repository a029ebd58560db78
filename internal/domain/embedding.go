package domain

import (
	"context"
	"math"
)

// Embedder is the shared text vectorization contract between layers.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// TextGenerator produces free-form text from a prompt. Implementations are
// optional; callers must fall back to canned output when generation fails.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// CosineSimilarity computes dot(a,b) / (|a| * |b|).
// Returns 0 when the vectors differ in length or either has zero norm; the
// reference produced NaN for zero vectors but callers never branched on NaN,
// so a zero score is the documented substitute.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
