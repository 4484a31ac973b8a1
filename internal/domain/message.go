package domain

import "time"

// ChatMessage is append-only; room ordering is by SentAt as accepted by the
// relay. ID is client-minted for relay traffic (receivers de-dup on it) and
// store-native for rows read back from the durable store.
type ChatMessage struct {
	ID     string
	RoomID string // = project id
	Text   string
	Sender string
	SentAt time.Time
}
