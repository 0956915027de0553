package llm

import (
	"context"
	"errors"
	"fmt"

	"innkeeper/config"
	"innkeeper/models"
)

// ErrUpstream marks conversational-model failures: unreachable service,
// timeout, or a response missing the expected reply. Callers decide per call
// site whether a deterministic fallback text exists.
var ErrUpstream = errors.New("conversational model unavailable")

// ChatClient produces a reply for a conversation transcript.
type ChatClient interface {
	Chat(ctx context.Context, transcript []models.ChatMessage, temperature float32, maxTokens int) (string, error)
}

// NewChatClient builds the configured chat client.
func NewChatClient(cfg config.Config) (ChatClient, error) {
	switch cfg.LLMProvider {
	case "", "ollama":
		return NewOllamaClient(cfg.OllamaHost, cfg.OllamaModel), nil
	case "gemini":
		return NewGeminiClient(context.Background(), cfg.GeminiAPIKey)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLMProvider)
	}
}
