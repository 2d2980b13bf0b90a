package domain

import "time"

// ChatRequest is the chatbot endpoint payload. Context carries free-form
// operational data (KPI figures, alerts, recommendations) embedded into
// the system prompt verbatim.
type ChatRequest struct {
	Message string         `json:"message" validate:"required,min=1"`
	Context map[string]any `json:"context,omitempty"`
	UserID  string         `json:"user_id,omitempty"`
}

// ChatResponse is returned for every exchange, fallback path included.
// Model is empty when the static fallback produced the reply.
type ChatResponse struct {
	Reply     string    `json:"reply"`
	CreatedAt time.Time `json:"created_at"`
	Model     string    `json:"model,omitempty"`
}

// ChatLog is the append-only record of one exchange, stored in the
// chatbot_logs collection.
type ChatLog struct {
	ExchangeID string         `bson:"exchange_id"`
	UserID     string         `bson:"user_id,omitempty"`
	Message    string         `bson:"message"`
	Response   string         `bson:"response"`
	Context    map[string]any `bson:"context,omitempty"`
	CreatedAt  time.Time      `bson:"created_at"`
}
