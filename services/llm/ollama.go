package llm

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"innkeeper/models"
)

// OllamaClient talks to a local Ollama instance through its OpenAI-compatible
// chat completion endpoint.
type OllamaClient struct {
	client *openai.Client
	model  string
}

func NewOllamaClient(host, model string) *OllamaClient {
	cfg := openai.DefaultConfig("ollama")
	cfg.BaseURL = strings.TrimRight(host, "/") + "/v1"
	return &OllamaClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (c *OllamaClient) Chat(ctx context.Context, transcript []models.ChatMessage, temperature float32, maxTokens int) (string, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, len(transcript))
	for _, m := range transcript {
		role := openai.ChatMessageRoleUser
		switch m.Role {
		case models.RoleSystem:
			role = openai.ChatMessageRoleSystem
		case models.RoleAssistant:
			role = openai.ChatMessageRoleAssistant
		}
		msgs = append(msgs, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    msgs,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: ollama chat: %v", ErrUpstream, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: ollama chat returned no choices", ErrUpstream)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
