package ws

import (
	"time"

	"github.com/hannahenterprises/constructly-server/internal/domain"
)

// Wire events. Joining a room is the connection itself (GET /ws/rooms/{id});
// history and chat traffic flow as typed events over the socket.
const (
	TypeSendMessage    = "send_message"    // client -> server
	TypeLoadHistory    = "load_history"    // server -> client, once per join
	TypeReceiveMessage = "receive_message" // server -> client broadcast
)

type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// MessagePayload mirrors the mobile clients' message shape. ID is minted by
// the sending client so receivers can drop the duplicate when a message
// shows up both in the join snapshot and as a broadcast.
type MessagePayload struct {
	ID     string `json:"id"`
	RoomID string `json:"roomId"`
	Text   string `json:"text"`
	Sender string `json:"sender"`
	Time   int64  `json:"time,omitempty"` // unix millis
}

type HistoryPayload struct {
	RoomID   string           `json:"roomId"`
	Messages []MessagePayload `json:"messages"`
}

func toPayload(m domain.ChatMessage) MessagePayload {
	return MessagePayload{
		ID:     m.ID,
		RoomID: m.RoomID,
		Text:   m.Text,
		Sender: m.Sender,
		Time:   m.SentAt.UnixMilli(),
	}
}

func (p MessagePayload) toDomain() domain.ChatMessage {
	sentAt := time.Now()
	if p.Time > 0 {
		sentAt = time.UnixMilli(p.Time)
	}
	return domain.ChatMessage{
		ID:     p.ID,
		RoomID: p.RoomID,
		Text:   p.Text,
		Sender: p.Sender,
		SentAt: sentAt,
	}
}
