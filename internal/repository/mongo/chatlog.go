package mongo

import (
	"context"
	"fmt"

	"github.com/Dharamchandpatle/RefineryIQ/internal/domain"
)

const chatLogsCollection = "chatbot_logs"

// ChatLogRepository appends chatbot exchange logs. Entries are never
// mutated or deleted by this system.
type ChatLogRepository struct {
	db *DB
}

// NewChatLogRepository creates a new chat log repository.
func NewChatLogRepository(db *DB) *ChatLogRepository {
	return &ChatLogRepository{db: db}
}

// Append inserts one exchange log entry.
func (r *ChatLogRepository) Append(ctx context.Context, entry *domain.ChatLog) error {
	if _, err := r.db.Collection(chatLogsCollection).InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to insert chat log: %w", err)
	}
	return nil
}
