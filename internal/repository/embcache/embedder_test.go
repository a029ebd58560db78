package embcache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shikshasetu/examsearch/internal/db"
)

func TestEmbed_CacheMiss(t *testing.T) {
	inner := &mockEmbedder{vec: []float32{0.1, 0.2, 0.3}}
	ce, ms := newTestCachedEmbedder(t, inner)
	ctx := context.Background()

	ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
		return nil, db.ErrKeyNotFound
	}

	var setCalled bool
	ms.setFn = func(_ context.Context, _ string, _ []byte, _ time.Duration) error {
		setCalled = true
		return nil
	}

	vec, err := ce.Embed(ctx, "stet syllabus")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vec) != 3 || vec[0] != 0.1 {
		t.Fatalf("unexpected vector: %v", vec)
	}
	if !setCalled {
		t.Fatal("expected SET to be called for cache put")
	}
	if inner.calls != 1 {
		t.Fatalf("expected 1 inner call, got %d", inner.calls)
	}
}

func TestEmbed_CacheHit(t *testing.T) {
	inner := &mockEmbedder{vec: []float32{0.1, 0.2, 0.3}}
	ce, ms := newTestCachedEmbedder(t, inner)

	cached := vectorToCacheBytes([]float32{0.4, 0.5, 0.6})
	ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
		return cached, nil
	}

	vec, err := ce.Embed(context.Background(), "stet syllabus")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vec) != 3 || vec[0] != 0.4 {
		t.Fatalf("expected cached vector, got: %v", vec)
	}
	if inner.calls != 0 {
		t.Fatal("inner embedder should not be called on a hit")
	}
}

func TestEmbed_InnerError(t *testing.T) {
	inner := &mockEmbedder{err: errors.New("provider down")}
	ce, ms := newTestCachedEmbedder(t, inner)

	ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
		return nil, db.ErrKeyNotFound
	}

	if _, err := ce.Embed(context.Background(), "stet"); err == nil {
		t.Fatal("expected error from inner embedder")
	}
}

func TestEmbed_CorruptCacheEntryFallsThrough(t *testing.T) {
	inner := &mockEmbedder{vec: []float32{0.7}}
	ce, ms := newTestCachedEmbedder(t, inner)

	// 3 bytes is not a whole number of float32s.
	ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
		return []byte{1, 2, 3}, nil
	}
	ms.setFn = func(_ context.Context, _ string, _ []byte, _ time.Duration) error {
		return nil
	}

	vec, err := ce.Embed(context.Background(), "stet")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vec) != 1 || vec[0] != 0.7 {
		t.Fatalf("expected inner vector, got %v", vec)
	}
}

func TestVectorRoundTrip(t *testing.T) {
	in := []float32{-1.5, 0, 0.25, 3.75}
	out, err := bytesToVector(vectorToCacheBytes(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range in {
		if in[i] != out[i] {
			t.Fatalf("component %d mismatch: %v vs %v", i, in[i], out[i])
		}
	}
}
