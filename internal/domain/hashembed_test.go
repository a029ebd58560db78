package domain

import (
	"context"
	"math"
	"testing"
)

func TestHashEmbedder_Deterministic(t *testing.T) {
	e := NewHashEmbedder(1536)
	ctx := context.Background()

	a, err := e.Embed(ctx, "stet syllabus")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := e.Embed(ctx, "stet syllabus")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(a) != 1536 {
		t.Fatalf("expected 1536 components, got %d", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("component %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestHashEmbedder_DistinctInputs(t *testing.T) {
	e := NewHashEmbedder(64)
	ctx := context.Background()

	a, _ := e.Embed(ctx, "bpsc teacher")
	b, _ := e.Embed(ctx, "stet paper 2")

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different inputs produced identical vectors")
	}
}

func TestHashEmbedder_ComponentRange(t *testing.T) {
	e := NewHashEmbedder(256)
	vec, _ := e.Embed(context.Background(), "शिक्षक पात्रता परीक्षा")

	for i, v := range vec {
		if math.Abs(float64(v)) > 0.1+1e-9 {
			t.Fatalf("component %d out of range: %v", i, v)
		}
	}
}

func TestHashString_Wraparound(t *testing.T) {
	// Long inputs must wrap in int32 arithmetic, not grow unbounded.
	long := ""
	for range 1000 {
		long += "bihar teacher recruitment "
	}
	// No panic and stable output is the contract.
	if hashString(long) != hashString(long) {
		t.Fatal("hash not stable")
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"zero vector", []float32{0, 0}, []float32{1, 2}, 0},
		{"length mismatch", []float32{1, 2}, []float32{1, 2, 3}, 0},
		{"both empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCosineSimilarity_HashVectors(t *testing.T) {
	e := NewHashEmbedder(1536)
	v1, _ := e.Embed(context.Background(), "stet exam")
	v2, _ := e.Embed(context.Background(), "stet exam")

	if got := CosineSimilarity(v1, v2); math.Abs(got-1) > 1e-6 {
		t.Errorf("self-similarity = %v, want 1", got)
	}
}
