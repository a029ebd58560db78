package domain

import "errors"

var (
	// ErrQueryTooShort signals a query under the 2-character minimum.
	ErrQueryTooShort = errors.New("query must be at least 2 characters")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrGenerationFailed signals a text generation provider failure.
	ErrGenerationFailed = errors.New("text generation failed")
	// ErrRateLimited signals a contact-form rate limit hit.
	ErrRateLimited = errors.New("rate limited")
	// ErrInvalidSubmission signals a rejected contact submission.
	ErrInvalidSubmission = errors.New("invalid submission")
)
