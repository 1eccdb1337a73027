package provider

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-3-flash-preview"

type geminiBackend struct {
	client *genai.Client
	model  string
}

// NewGemini creates a backend for the Gemini API.
func NewGemini(ctx context.Context, opts Options) (Backend, error) {
	cc := &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if opts.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	model := opts.Model
	if model == "" {
		model = DefaultGeminiModel
	}
	return &geminiBackend{client: client, model: model}, nil
}

func (g *geminiBackend) Generate(ctx context.Context, req Request) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: req.SystemInstruction}}}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.Prompt), cfg)
	if err != nil {
		if code := apiErrorCode(err); code != 0 {
			return "", fmt.Errorf("%w: gemini API error %d: %v", ErrUnavailable, code, err)
		}
		return "", fmt.Errorf("%w: gemini: %v", ErrUnavailable, err)
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockedReasonUnspecified {
		return "", fmt.Errorf("%w: gemini blocked the prompt: %s", ErrUnavailable, resp.PromptFeedback.BlockReason)
	}
	return resp.Text(), nil
}

func apiErrorCode(err error) int {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return 0
}
