package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jawwad-codes/BizTrackr-sub001/internal/domain/chat"
)

// PostgresChatRepository stores chat history in PostgreSQL
type PostgresChatRepository struct {
	db *pgxpool.Pool
}

// NewPostgresChatRepository creates a new chat history repository
func NewPostgresChatRepository(db *pgxpool.Pool) chat.Repository {
	return &PostgresChatRepository{db: db}
}

// SaveMessage stores a new message in the history
func (r *PostgresChatRepository) SaveMessage(ctx context.Context, message *chat.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO chat_history (id, user_id, role, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`,
		message.ID,
		message.UserID,
		message.Role,
		message.Content,
		message.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}

	return nil
}

// GetUserHistory returns a user's messages, newest first
func (r *PostgresChatRepository) GetUserHistory(ctx context.Context, userID string, limit, offset int) ([]chat.Message, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, role, content, created_at
		FROM chat_history
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var messages []chat.Message
	for rows.Next() {
		var msg chat.Message
		if err := rows.Scan(&msg.ID, &msg.Role, &msg.Content, &msg.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		msg.UserID = userID
		messages = append(messages, msg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	return messages, nil
}

// DeleteUserHistory removes all of a user's messages
func (r *PostgresChatRepository) DeleteUserHistory(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM chat_history WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete history: %w", err)
	}
	return nil
}
