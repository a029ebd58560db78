package embedding

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

type stubEmbedder struct {
	vec   []float32
	err   error
	calls int
}

func (s *stubEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	s.calls++
	return s.vec, s.err
}

func TestFallback_InnerSucceeds(t *testing.T) {
	inner := &stubEmbedder{vec: []float32{1, 2}}
	fb := &stubEmbedder{vec: []float32{9}}
	e := NewFallbackEmbedder(inner, fb, zap.NewNop())

	vec, err := e.Embed(context.Background(), "stet")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vec) != 2 {
		t.Fatalf("expected inner vector, got %v", vec)
	}
	if fb.calls != 0 {
		t.Fatal("fallback should not be called when inner succeeds")
	}
}

func TestFallback_InnerFails(t *testing.T) {
	inner := &stubEmbedder{err: errors.New("provider down")}
	fb := &stubEmbedder{vec: []float32{9}}
	e := NewFallbackEmbedder(inner, fb, zap.NewNop())

	vec, err := e.Embed(context.Background(), "stet")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vec) != 1 || vec[0] != 9 {
		t.Fatalf("expected fallback vector, got %v", vec)
	}
	if inner.calls != 1 || fb.calls != 1 {
		t.Fatalf("unexpected call counts: inner=%d fallback=%d", inner.calls, fb.calls)
	}
}
