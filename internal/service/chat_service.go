package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/hannahenterprises/constructly-server/internal/domain"
	"github.com/hannahenterprises/constructly-server/internal/repository"
)

// persistTimeout bounds the background chat write; the broadcast path never
// waits on it at all.
const persistTimeout = 5 * time.Second

// ChatService owns the per-room session buffers: messages accepted during
// this process lifetime that may or may not have reached durability.
// Buffers are unbounded and live until process exit.
type ChatService struct {
	repo repository.ChatRepository

	mu    sync.Mutex
	rooms map[string][]domain.ChatMessage
}

func NewChatService(repo repository.ChatRepository) *ChatService {
	return &ChatService{repo: repo, rooms: make(map[string][]domain.ChatMessage)}
}

// Accept buffers the message and kicks off a best-effort durable write. The
// buffer append cannot fail and does not touch the store, so delivery is
// never delayed by store latency or outage.
func (s *ChatService) Accept(msg domain.ChatMessage) {
	s.mu.Lock()
	s.rooms[msg.RoomID] = append(s.rooms[msg.RoomID], msg)
	s.mu.Unlock()

	go s.persist(msg)
}

func (s *ChatService) persist(msg domain.ChatMessage) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := s.repo.Save(ctx, &msg); err != nil {
		slog.Warn("chat durable save failed, message stays session-only",
			"room", msg.RoomID, "msg", msg.ID, "err", err)
	}
}

// Snapshot returns the room's history for a joining connection: durable
// messages ascending by time, then session-buffered messages the durable
// read did not already cover (matched by message id, so a buffered message
// whose background write landed is not repeated). A failed durable read
// degrades to the buffer alone.
func (s *ChatService) Snapshot(ctx context.Context, roomID string) []domain.ChatMessage {
	durable, err := s.repo.History(ctx, roomID)
	if err != nil {
		slog.Warn("chat durable history failed, serving session buffer", "room", roomID, "err", err)
		durable = nil
	}

	seen := make(map[string]struct{}, len(durable))
	for _, m := range durable {
		seen[m.ID] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := append([]domain.ChatMessage(nil), durable...)
	for _, m := range s.rooms[roomID] {
		if _, dup := seen[m.ID]; dup {
			continue
		}
		out = append(out, m)
	}
	return out
}
