package domain

import (
	"context"
	"math"
	"unicode/utf16"
)

// DefaultEmbeddingDim matches the dimension of the remote provider's default
// embedding model so cached and fallback vectors stay interchangeable.
const DefaultEmbeddingDim = 1536

// HashEmbedder is the deterministic no-credential fallback. Vectors are a
// pure function of the input string: a 32-bit polynomial rolling hash of the
// UTF-16 code units seeds sin-wave components. Not semantically meaningful —
// it only keeps the similarity pipeline functional without a provider.
type HashEmbedder struct {
	dim int
}

// NewHashEmbedder creates a fallback embedder. dim <= 0 selects
// DefaultEmbeddingDim.
func NewHashEmbedder(dim int) *HashEmbedder {
	if dim <= 0 {
		dim = DefaultEmbeddingDim
	}
	return &HashEmbedder{dim: dim}
}

// Embed implements Embedder. Never fails.
func (e *HashEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	h := hashString(text)
	vec := make([]float32, e.dim)
	for i := range vec {
		vec[i] = float32(math.Sin(float64(h)+float64(i)) * 0.1)
	}
	return vec, nil
}

// hashString is the standard polynomial rolling hash (h = h*31 + codeUnit)
// with int32 wraparound, over UTF-16 code units.
func hashString(s string) int32 {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(u)
	}
	return h
}
