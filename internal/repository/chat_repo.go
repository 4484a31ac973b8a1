package repository

import (
	"context"

	"github.com/hannahenterprises/constructly-server/internal/domain"
)

type ChatRepository interface {
	Save(ctx context.Context, m *domain.ChatMessage) error
	// History returns the room's messages ascending by send time.
	History(ctx context.Context, roomID string) ([]domain.ChatMessage, error)
}
