package generativeAI

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/FACorreiaa/go-itinerary-map/internal/types"
)

const defaultModel = "gemini-2.0-flash"

type AIClient struct {
	client *genai.Client
	model  string
}

// NewAIClient creates a Gemini client. An empty apiKey returns
// types.ErrConfigurationMissing without touching the network.
func NewAIClient(ctx context.Context, apiKey, model string) (*AIClient, error) {
	if apiKey == "" {
		return nil, types.ErrConfigurationMissing
	}
	if model == "" {
		model = defaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return &AIClient{
		client: client,
		model:  model,
	}, nil
}

func (ai *AIClient) Model() string {
	return ai.model
}

// GenerateContent sends prompt as a single user turn and returns the text of
// the completion unmodified.
func (ai *AIClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	result, err := ai.client.Models.GenerateContent(ctx, ai.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}
