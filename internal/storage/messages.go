package storage

import (
	"context"
	"encoding/json"

	"foodigo/internal/domain"
)

const messageColumns = "id, user_id, name, email, subject, message, is_read, replies, created_at"

func (r *PostgresRepository) CreateMessage(ctx context.Context, m *domain.Message) error {
	replies, err := json.Marshal(m.Replies)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO messages (`+messageColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.ID, m.UserID, m.Name, m.Email, m.Subject, m.Message, m.IsRead, string(replies), m.Timestamp)
	return err
}

func (r *PostgresRepository) ListUserMessages(ctx context.Context, userID string) ([]domain.Message, error) {
	return r.queryMessages(ctx,
		"SELECT "+messageColumns+" FROM messages WHERE user_id = $1 ORDER BY created_at DESC", userID)
}

func (r *PostgresRepository) ListMessages(ctx context.Context) ([]domain.Message, error) {
	return r.queryMessages(ctx, "SELECT "+messageColumns+" FROM messages ORDER BY created_at DESC")
}

func (r *PostgresRepository) CountUnreadMessages(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM messages WHERE is_read = FALSE").Scan(&count)
	return count, err
}

func (r *PostgresRepository) MarkMessageRead(ctx context.Context, id string) (int64, error) {
	return rowsAffected(r.DB.ExecContext(ctx, "UPDATE messages SET is_read = TRUE WHERE id = $1", id))
}

// AddReply appends to the reply thread; answering implies the message was read.
func (r *PostgresRepository) AddReply(ctx context.Context, id string, reply domain.Reply) (int64, error) {
	payload, err := json.Marshal([]domain.Reply{reply})
	if err != nil {
		return 0, err
	}
	return rowsAffected(r.DB.ExecContext(ctx,
		"UPDATE messages SET replies = replies || $1::jsonb, is_read = TRUE WHERE id = $2", string(payload), id))
}

func (r *PostgresRepository) DeleteMessage(ctx context.Context, id string) (int64, error) {
	return rowsAffected(r.DB.ExecContext(ctx, "DELETE FROM messages WHERE id = $1", id))
}

func (r *PostgresRepository) queryMessages(ctx context.Context, query string, args ...any) ([]domain.Message, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []domain.Message{}
	for rows.Next() {
		var (
			m       domain.Message
			replies []byte
		)
		if err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.IsRead, &replies, &m.Timestamp); err != nil {
			return nil, err
		}
		m.Replies = []domain.Reply{}
		if err := decodeJSON(replies, &m.Replies); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
