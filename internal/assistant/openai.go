package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/config"
	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/logger"
	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/models"
)

const systemPrompt = `You answer questions about the XRPL.Sale token launchpad.
Answer in at most three sentences using only the FAQ below. If the FAQ does not cover the question, say so.

FAQ:
`

// OpenAIAnswerer asks a chat model, falling back to the FAQ matcher when the
// model is not configured or the call fails.
type OpenAIAnswerer struct {
	client   *openai.Client
	model    string
	prompt   string
	fallback Answerer
	logger   *zap.Logger
}

type OpenAIOption func(*openai.ClientConfig)

// WithBaseURL points the client at another OpenAI-compatible endpoint.
func WithBaseURL(url string) OpenAIOption {
	return func(c *openai.ClientConfig) {
		c.BaseURL = url
	}
}

func NewOpenAIAnswerer(cfg config.OpenAIConfig, faq []models.FAQItem, log *zap.Logger, opts ...OpenAIOption) *OpenAIAnswerer {
	a := &OpenAIAnswerer{
		model:    cfg.Model,
		prompt:   systemPrompt + formatFAQ(faq),
		fallback: NewFAQAnswerer(faq),
		logger:   logger.OrNop(log),
	}
	if cfg.APIKey != "" {
		clientConfig := openai.DefaultConfig(cfg.APIKey)
		for _, opt := range opts {
			opt(&clientConfig)
		}
		a.client = openai.NewClientWithConfig(clientConfig)
	}
	return a
}

func (a *OpenAIAnswerer) Answer(ctx context.Context, question string) (string, error) {
	if a.client == nil {
		return a.fallback.Answer(ctx, question)
	}

	answer, err := a.complete(ctx, question)
	if err != nil {
		a.logger.Warn("chat completion failed, using FAQ", zap.String("model", a.model), zap.Error(err))
		return a.fallback.Answer(ctx, question)
	}
	return answer, nil
}

func (a *OpenAIAnswerer) complete(ctx context.Context, question string) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: a.prompt},
			{Role: openai.ChatMessageRoleUser, Content: question},
		},
		MaxTokens:   200,
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("create chat completion: no choices")
	}
	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	if answer == "" {
		return "", errors.New("create chat completion: empty answer")
	}
	return answer, nil
}

func formatFAQ(faq []models.FAQItem) string {
	var b strings.Builder
	for _, item := range faq {
		fmt.Fprintf(&b, "Q: %s\nA: %s\n", item.Question, item.Answer)
	}
	return b.String()
}
