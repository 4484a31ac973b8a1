package postgres

import (
	"context"

	"github.com/hannahenterprises/constructly-server/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ChatRepository struct {
	db *pgxpool.Pool
}

func NewChatRepository(db *pgxpool.Pool) *ChatRepository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) Save(ctx context.Context, m *domain.ChatMessage) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO chat_messages (client_id, room_id, text, sender, sent_at)
		VALUES ($1, $2, $3, $4, $5)
	`, m.ID, m.RoomID, m.Text, m.Sender, m.SentAt)
	return err
}

// History keeps the client-minted id when the row has one so receivers can
// de-duplicate against buffered and broadcast copies of the same message.
func (r *ChatRepository) History(ctx context.Context, roomID string) ([]domain.ChatMessage, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT COALESCE(NULLIF(client_id, ''), id::text), room_id, text, sender, sent_at
		FROM chat_messages
		WHERE room_id = $1
		ORDER BY sent_at ASC, id ASC
	`, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		if err := rows.Scan(&m.ID, &m.RoomID, &m.Text, &m.Sender, &m.SentAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
