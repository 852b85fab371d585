package chat

import "context"

// Repository defines the chat history storage operations
type Repository interface {
	// SaveMessage stores a new message in the history
	SaveMessage(ctx context.Context, message *Message) error

	// GetUserHistory returns a user's messages, newest first
	GetUserHistory(ctx context.Context, userID string, limit, offset int) ([]Message, error)

	// DeleteUserHistory removes all of a user's messages
	DeleteUserHistory(ctx context.Context, userID string) error
}
