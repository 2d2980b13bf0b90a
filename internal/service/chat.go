package service

import (
	"context"
	"time"

	"github.com/Dharamchandpatle/RefineryIQ/internal/domain"
	"github.com/Dharamchandpatle/RefineryIQ/internal/llm"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Static replies. Neither names a model.
const (
	// FallbackReply is returned when no generation credential is
	// configured.
	FallbackReply = "The AI assistant is not configured. Set GEMINI_API_KEY in the server environment to enable generated replies."

	// UnavailableReply is returned when the external generation call
	// fails. The failure never propagates past the gateway.
	UnavailableReply = "The AI assistant is temporarily unavailable. Please try again in a moment."
)

// ChatLogStore appends exchange log entries.
type ChatLogStore interface {
	Append(ctx context.Context, entry *domain.ChatLog) error
}

// ChatService builds a context-aware prompt, forwards it to the external
// generation API and logs every exchange, fallback path included.
type ChatService struct {
	generator llm.Generator
	logs      ChatLogStore
}

// NewChatService creates a new chat service. generator may be nil when
// no external credential is configured.
func NewChatService(generator llm.Generator, logs ChatLogStore) *ChatService {
	return &ChatService{generator: generator, logs: logs}
}

// Reply produces the chatbot answer for one exchange. The reply always
// succeeds from the caller's perspective: unconfigured or failing
// generation degrades to a static reply with no model identifier.
func (s *ChatService) Reply(ctx context.Context, req domain.ChatRequest) domain.ChatResponse {
	exchangeID := uuid.NewString()
	reply, model := s.generate(ctx, exchangeID, req)
	createdAt := time.Now().UTC()

	s.append(ctx, &domain.ChatLog{
		ExchangeID: exchangeID,
		UserID:     req.UserID,
		Message:    req.Message,
		Response:   reply,
		Context:    req.Context,
		CreatedAt:  createdAt,
	})

	return domain.ChatResponse{
		Reply:     reply,
		CreatedAt: createdAt,
		Model:     model,
	}
}

func (s *ChatService) generate(ctx context.Context, exchangeID string, req domain.ChatRequest) (string, string) {
	if s.generator == nil || !s.generator.IsConfigured() {
		return FallbackReply, ""
	}

	systemPrompt := llm.BuildSystemPrompt(llm.ContextFromMap(req.Context))
	text, model, err := s.generator.Generate(ctx, systemPrompt, req.Message)
	if err != nil {
		log.Error().Err(err).Str("exchange_id", exchangeID).Msg("generation failed, returning fallback reply")
		return UnavailableReply, ""
	}

	return text, model
}

// append logs the exchange best-effort; a dead store must not fail a
// reply that was already produced.
func (s *ChatService) append(ctx context.Context, entry *domain.ChatLog) {
	if s.logs == nil {
		return
	}
	if err := s.logs.Append(ctx, entry); err != nil {
		log.Warn().Err(err).Str("exchange_id", entry.ExchangeID).Msg("failed to persist chat log")
	}
}
