package openai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/shikshasetu/examsearch/internal/domain"
)

// TextGenerator produces suggestions and summaries via chat completions.
type TextGenerator struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// NewTextGenerator creates an OpenAI-compatible text generation provider.
func NewTextGenerator(cfg *Config) *TextGenerator {
	return &TextGenerator{
		client: newClient(cfg),
		model:  cfg.ChatModel,
		logger: cfg.Logger,
	}
}

// Generate implements domain.TextGenerator.
func (g *TextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: "You assist candidates preparing for Bihar teacher recruitment exams " +
					"(STET, BPSC TRE). Answer briefly and factually.",
			},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   300,
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %v: %w", err, domain.ErrGenerationFailed)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response: %w", domain.ErrGenerationFailed)
	}
	return resp.Choices[0].Message.Content, nil
}
