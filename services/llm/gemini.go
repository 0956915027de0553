package llm

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"innkeeper/models"
)

// GeminiClient drives Google's Gemini models. The transcript is flattened
// into a single role-tagged prompt for GenerateContent.
type GeminiClient struct {
	model *genai.GenerativeModel
}

func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiClient{model: client.GenerativeModel("models/gemini-1.5-pro")}, nil
}

func (g *GeminiClient) Chat(ctx context.Context, transcript []models.ChatMessage, temperature float32, maxTokens int) (string, error) {
	g.model.SetTemperature(temperature)
	g.model.SetMaxOutputTokens(int32(maxTokens))

	resp, err := g.model.GenerateContent(ctx, genai.Text(flattenTranscript(transcript)))
	if err != nil {
		return "", fmt.Errorf("%w: gemini generate: %v", ErrUpstream, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: gemini returned no candidates", ErrUpstream)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	reply := strings.TrimSpace(sb.String())
	if reply == "" {
		return "", fmt.Errorf("%w: gemini returned empty reply", ErrUpstream)
	}
	return reply, nil
}

func flattenTranscript(transcript []models.ChatMessage) string {
	var sb strings.Builder
	for _, m := range transcript {
		switch m.Role {
		case models.RoleSystem:
			sb.WriteString(m.Content)
			sb.WriteString("\n\n")
		case models.RoleAssistant:
			sb.WriteString("Assistant: ")
			sb.WriteString(m.Content)
			sb.WriteString("\n")
		default:
			sb.WriteString("User: ")
			sb.WriteString(m.Content)
			sb.WriteString("\n")
		}
	}
	sb.WriteString("Assistant:")
	return sb.String()
}
