package clients

import (
	"context"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"readandlead/pkg/utils"
)

// OpenAIDraftClient drafts itineraries with the chat completions API. It
// first asks for strict JSON output on the cheap model, then retries once in
// plain mode on the larger model; the caller's coercion step absorbs whatever
// comes back.
type OpenAIDraftClient struct {
	client *openai.Client
	apiKey string
}

func NewOpenAIDraftClient(apiKey string) DraftClientInterface {
	return &OpenAIDraftClient{
		client: openai.NewClient(apiKey),
		apiKey: apiKey,
	}
}

func (c *OpenAIDraftClient) DraftPlan(ctx context.Context, in PlanInput, bookContext, backgroundHints string) (string, error) {
	if c.apiKey == "" {
		return "", utils.ErrNotConfigured
	}

	prompt := buildDraftPrompt(in, bookContext, backgroundHints)
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: "Return ONLY JSON. No markdown, no code fences, no commentary."},
		{Role: openai.ChatMessageRoleUser, Content: prompt},
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:          "gpt-4o-mini",
		Messages:       messages,
		ResponseFormat: &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject},
		Temperature:    0.6,
		MaxTokens:      2000,
	})
	if err == nil && len(resp.Choices) > 0 {
		return strings.TrimSpace(resp.Choices[0].Message.Content), nil
	}
	log.Printf("WARN json_object mode failed: %v", err)

	resp, err = c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       "gpt-4o",
		Messages:    messages,
		Temperature: 0.6,
		MaxTokens:   2000,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", utils.ErrUpstreamError
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
