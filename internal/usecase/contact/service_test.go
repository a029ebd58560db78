package contact

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/shikshasetu/examsearch/internal/domain"
)

func validSubmission() Submission {
	return Submission{
		Name:    "Ravi Kumar",
		Email:   "ravi@example.com",
		Message: "When will the STET admit card be released?",
	}
}

func newTestService() *Service {
	return New(NewRateLimiter(3, 10), zap.NewNop())
}

func TestSubmit_Accepted(t *testing.T) {
	svc := newTestService()

	id, err := svc.Submit(context.Background(), "1.2.3.4", validSubmission())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" {
		t.Fatal("expected a submission id")
	}
}

func TestSubmit_Validation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*Submission)
	}{
		{"missing name", func(s *Submission) { s.Name = "  " }},
		{"missing email", func(s *Submission) { s.Email = "" }},
		{"bad email", func(s *Submission) { s.Email = "not-an-email" }},
		{"short message", func(s *Submission) { s.Message = "hi" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validSubmission()
			tt.mutate(&sub)
			_, err := svc.Submit(ctx, "1.2.3.4", sub)
			if !errors.Is(err, domain.ErrInvalidSubmission) {
				t.Errorf("expected ErrInvalidSubmission, got %v", err)
			}
		})
	}
}

func TestSubmit_SpamRejected(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	sub := validSubmission()
	sub.Message = "Click here for free money and lottery prizes right now"
	if _, err := svc.Submit(ctx, "1.2.3.4", sub); !errors.Is(err, domain.ErrInvalidSubmission) {
		t.Errorf("expected spam rejection, got %v", err)
	}

	sub = validSubmission()
	sub.Message = "see https://a.example https://b.example https://c.example for details"
	if _, err := svc.Submit(ctx, "1.2.3.4", sub); !errors.Is(err, domain.ErrInvalidSubmission) {
		t.Errorf("expected link-count rejection, got %v", err)
	}
}

func TestSubmit_RateLimited(t *testing.T) {
	svc := New(NewRateLimiter(1, 10), zap.NewNop())
	ctx := context.Background()

	if _, err := svc.Submit(ctx, "1.2.3.4", validSubmission()); err != nil {
		t.Fatalf("first submission should pass: %v", err)
	}
	if _, err := svc.Submit(ctx, "1.2.3.4", validSubmission()); !errors.Is(err, domain.ErrRateLimited) {
		t.Errorf("expected ErrRateLimited, got %v", err)
	}
}
