package repository

import (
	"context"

	"arogyaai/internal/triage"
)

// CreateMessageOptions carries the fields persisted for one exchange.
type CreateMessageOptions struct {
	UserID          int64
	UserMessage     string
	AIResponse      string
	ImagePath       string
	ImagePrediction string
}

// ListMessagesOptions pages through a user's transcript, newest first.
type ListMessagesOptions struct {
	UserID int64
	Cursor *string
	Limit  int
}

// Repository persists triage transcripts.
type Repository interface {
	CreateMessage(ctx context.Context, opt CreateMessageOptions) (triage.ChatMessage, error)
	ListMessages(ctx context.Context, opt ListMessagesOptions) ([]triage.ChatMessage, *string, error)
}
