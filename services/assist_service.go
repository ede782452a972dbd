package services

import (
	"context"
	"fmt"
	"log"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// assistErrorPrefix distinguishes degraded replies from normal ones.
const assistErrorPrefix = "AI assistant error: "

// AssistService is the boundary to the external generative-text API. Ask is
// synchronous and timeout-bounded, and any failure — network, non-2xx,
// malformed payload, missing credential — degrades to a human-readable
// error string. It must never raise past this boundary.
type AssistService interface {
	Ask(ctx context.Context, prompt string, roleHint string) string
}

type assistService struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewAssistService creates an AssistService talking to the configured
// OpenAI-compatible endpoint. An empty apiKey yields a service that always
// degrades, which keeps the flow usable without credentials.
func NewAssistService(apiKey, baseURL, model string, timeout time.Duration) AssistService {
	var client *openai.Client
	if apiKey != "" {
		cfg := openai.DefaultConfig(apiKey)
		if baseURL != "" {
			cfg.BaseURL = baseURL
		}
		client = openai.NewClientWithConfig(cfg)
	}
	return &assistService{client: client, model: model, timeout: timeout}
}

func (s *assistService) Ask(ctx context.Context, prompt string, roleHint string) string {
	if s.client == nil {
		return assistErrorPrefix + "API key not set"
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	system := fmt.Sprintf("You are a helpful %s for student mental health.", roleHint)
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		log.Printf("WARN: [AssistService] Completion call failed (model %s): %v", s.model, err)
		return assistErrorPrefix + err.Error()
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log.Printf("WARN: [AssistService] Completion returned no choices (model %s).", s.model)
		return assistErrorPrefix + "empty response"
	}
	return resp.Choices[0].Message.Content
}
