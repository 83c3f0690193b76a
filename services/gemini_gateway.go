package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiGateway talks to the Gemini API through the official SDK. Credentials
// and model come in at construction; nothing is read from ambient state.
type GeminiGateway struct {
	client *genai.Client
	model  string
}

func NewGeminiGateway(ctx context.Context, apiKey, model string) (*GeminiGateway, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiGateway{client: client, model: model}, nil
}

func (g *GeminiGateway) Complete(ctx context.Context, userText, systemInstruction, _ string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(userText), cfg)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", &GatewayError{Kind: GatewayRejected, cause: err}
		}
		// Transport failures and context timeouts both read as unreachable.
		return "", &GatewayError{Kind: GatewayUnreachable, cause: err}
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", &GatewayError{Kind: GatewayEmptyResponse}
	}
	return text, nil
}
