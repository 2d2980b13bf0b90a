package llm

import "context"

// Generator is the narrow boundary to the external generation API. Tests
// substitute it with a stub; the chat service never sees the vendor SDK.
type Generator interface {
	// IsConfigured checks if the generator has valid credentials
	IsConfigured() bool

	// Generate produces a reply to message under the system prompt and
	// returns the text plus the model identifier that produced it.
	Generate(ctx context.Context, systemPrompt, message string) (text string, model string, err error)
}
