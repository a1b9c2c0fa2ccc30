package clients

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"readandlead/pkg/utils"
)

// GeminiDraftClient is the alternate drafting provider. JSON response MIME
// keeps most of the fence-stripping work out of coercion, but the output is
// still treated as untrusted text.
type GeminiDraftClient struct {
	client *genai.Client
	model  string
}

func NewGeminiDraftClient(apiKey, model string) (DraftClientInterface, error) {
	if apiKey == "" {
		return nil, utils.ErrNotConfigured
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiDraftClient{client: client, model: model}, nil
}

func (c *GeminiDraftClient) DraftPlan(ctx context.Context, in PlanInput, bookContext, backgroundHints string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.6)

	prompt := buildDraftPrompt(in, bookContext, backgroundHints)
	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content")
	}
	return strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])), nil
}

func (c *GeminiDraftClient) Close() error {
	return c.client.Close()
}

// NewDraftClient picks the drafting provider from config. OpenAI is the
// default; "gemini" switches providers without touching the pipeline.
func NewDraftClient(provider, apiKey, model string) (DraftClientInterface, error) {
	switch strings.ToLower(provider) {
	case "", "openai":
		return NewOpenAIDraftClient(apiKey), nil
	case "gemini":
		return NewGeminiDraftClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
