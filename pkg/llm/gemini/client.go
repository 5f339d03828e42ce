// Package gemini adapts the Google genai SDK to llm.ChatModel.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	genai "google.golang.org/genai"

	"github.com/PJRenu/LegaLuna/pkg/llm"
)

const defaultModel = "gemini-2.5-flash"

// ErrEmptyResponse is returned when the model produced no text part.
var ErrEmptyResponse = errors.New("gemini returned no content")

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client is a thin wrapper around the official genai client.
type Client struct {
	models contentGenerator
	model  string
}

// New creates a Gemini API client. An empty apiKey yields a client whose
// Ask always fails with llm.ErrNotConfigured.
func New(ctx context.Context, apiKey, model string) (*Client, error) {
	if model == "" {
		model = defaultModel
	}
	if apiKey == "" {
		return &Client{model: model}, nil
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{models: cli.Models, model: model}, nil
}

func (c *Client) Model() string { return c.model }

func (c *Client) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.models == nil {
		return "", fmt.Errorf("gemini: %w", llm.ErrNotConfigured)
	}
	var cfg *genai.GenerateContentConfig
	if strings.TrimSpace(systemPrompt) != "" {
		cfg = &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemPrompt}}},
		}
	}
	resp, err := c.models.GenerateContent(ctx, c.model,
		[]*genai.Content{{Role: "user", Parts: []*genai.Part{{Text: userPrompt}}}},
		cfg,
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p != nil {
			b.WriteString(p.Text)
		}
	}
	if b.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return b.String(), nil
}
