// Package contact handles contact-form submissions with basic anti-spam
// controls: an in-memory rate limiter plus link and phrase heuristics.
// Submissions are logged, not persisted.
package contact

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shikshasetu/examsearch/internal/domain"
	"github.com/shikshasetu/examsearch/internal/metrics"
)

// maxLinks is the highest number of URLs a legitimate message carries.
const maxLinks = 2

// spamPhrases are rejected outright wherever they appear in the message.
var spamPhrases = []string{
	"free money",
	"click here",
	"buy now",
	"lottery",
}

// Submission is one contact-form entry.
type Submission struct {
	Name    string
	Email   string
	Message string
}

// Service validates, rate limits and records contact submissions.
type Service struct {
	limiter *RateLimiter
	logger  *zap.Logger
}

// New creates a contact service.
func New(limiter *RateLimiter, logger *zap.Logger) *Service {
	return &Service{limiter: limiter, logger: logger}
}

// Submit processes one submission keyed by the caller's identity (client IP).
// Returns the assigned submission ID.
func (s *Service) Submit(_ context.Context, identity string, sub Submission) (string, error) {
	if err := validate(sub); err != nil {
		metrics.ContactRejectedTotal.WithLabelValues("invalid").Inc()
		return "", err
	}

	if spammy(sub.Message) {
		metrics.ContactRejectedTotal.WithLabelValues("spam").Inc()
		return "", fmt.Errorf("message flagged as spam: %w", domain.ErrInvalidSubmission)
	}

	if !s.limiter.Allow(identity) {
		metrics.ContactRejectedTotal.WithLabelValues("rate_limited").Inc()
		return "", domain.ErrRateLimited
	}

	id := uuid.NewString()
	s.logger.Info("contact submission accepted",
		zap.String("id", id),
		zap.String("name", sub.Name),
		zap.String("email", sub.Email),
		zap.Int("message_len", len(sub.Message)),
	)
	return id, nil
}

func validate(sub Submission) error {
	if strings.TrimSpace(sub.Name) == "" {
		return fmt.Errorf("name is required: %w", domain.ErrInvalidSubmission)
	}
	email := strings.TrimSpace(sub.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("valid email is required: %w", domain.ErrInvalidSubmission)
	}
	if len(strings.TrimSpace(sub.Message)) < 10 {
		return fmt.Errorf("message must be at least 10 characters: %w", domain.ErrInvalidSubmission)
	}
	return nil
}

func spammy(message string) bool {
	lower := strings.ToLower(message)

	for _, phrase := range spamPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}

	links := strings.Count(lower, "http://") + strings.Count(lower, "https://")
	return links > maxLinks
}
