// Package embedding holds decorators around the domain Embedder contract.
package embedding

import (
	"context"

	"go.uber.org/zap"

	"github.com/shikshasetu/examsearch/internal/domain"
	"github.com/shikshasetu/examsearch/internal/metrics"
)

// FallbackEmbedder serves the deterministic hash embedding when the remote
// provider fails. Running without a credential is a first-class mode, so a
// provider outage degrades to that mode instead of failing the request.
type FallbackEmbedder struct {
	inner    domain.Embedder
	fallback domain.Embedder
	logger   *zap.Logger
}

// NewFallbackEmbedder creates the fallback decorator.
func NewFallbackEmbedder(inner, fallback domain.Embedder, logger *zap.Logger) *FallbackEmbedder {
	return &FallbackEmbedder{inner: inner, fallback: fallback, logger: logger}
}

// Embed implements domain.Embedder.
func (e *FallbackEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vec, err := e.inner.Embed(ctx, text)
	if err == nil {
		return vec, nil
	}

	e.logger.Warn("embedding provider failed, using deterministic fallback", zap.Error(err))
	metrics.EmbeddingFallbacksTotal.Inc()

	return e.fallback.Embed(ctx, text)
}
