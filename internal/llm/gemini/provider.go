package gemini

import (
	"context"
	"fmt"
	"time"

	"github.com/Dharamchandpatle/RefineryIQ/internal/config"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Provider generates chat replies through the Gemini API.
type Provider struct {
	apiKey  string
	model   string
	timeout time.Duration
}

func NewProvider(cfg config.GeminiConfig) *Provider {
	return &Provider{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}
}

func (p *Provider) IsConfigured() bool {
	return p.apiKey != ""
}

func (p *Provider) DefaultModel() string {
	if p.model != "" {
		return p.model
	}
	return "gemini-1.5-flash"
}

// Generate forwards the system prompt and user message to Gemini and
// returns the concatenated text of the first candidate.
func (p *Provider) Generate(ctx context.Context, systemPrompt, message string) (string, string, error) {
	if !p.IsConfigured() {
		return "", "", fmt.Errorf("gemini provider is not configured (missing API key)")
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(p.apiKey))
	if err != nil {
		return "", "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := p.DefaultModel()
	generativeModel := client.GenerativeModel(model)

	resp, err := generativeModel.GenerateContent(ctx, genai.Text(systemPrompt), genai.Text(message))
	if err != nil {
		return "", "", fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", "", fmt.Errorf("empty response from gemini")
	}

	var output string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			output += string(text)
		}
	}

	return output, model, nil
}
