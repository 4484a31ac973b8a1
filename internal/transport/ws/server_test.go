package ws

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/hannahenterprises/constructly-server/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bufferChat is the relay-facing slice of the chat service: session buffers
// only, as if the durable store were down.
type bufferChat struct {
	mu    sync.Mutex
	rooms map[string][]domain.ChatMessage
}

func newBufferChat() *bufferChat {
	return &bufferChat{rooms: make(map[string][]domain.ChatMessage)}
}

func (b *bufferChat) Accept(msg domain.ChatMessage) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rooms[msg.RoomID] = append(b.rooms[msg.RoomID], msg)
}

func (b *bufferChat) Snapshot(_ context.Context, roomID string) []domain.ChatMessage {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]domain.ChatMessage(nil), b.rooms[roomID]...)
}

type wireEvent struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func dial(t *testing.T, srv *httptest.Server, room, sender string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/rooms/" + room + "?sender=" + sender
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) wireEvent {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var ev wireEvent
	require.NoError(t, json.Unmarshal(data, &ev))
	return ev
}

func TestRelayRoomRoundtrip(t *testing.T) {
	relay := NewServer(NewHub(), newBufferChat())
	r := chi.NewRouter()
	r.Get("/ws/rooms/{id}", relay.HandleWS)
	srv := httptest.NewServer(r)
	defer srv.Close()

	connA := dial(t, srv, "p1", "a")
	connB := dial(t, srv, "p1", "b")

	// both joiners get an (empty) history snapshot first
	for _, c := range []*websocket.Conn{connA, connB} {
		ev := readEvent(t, c)
		require.Equal(t, TypeLoadHistory, ev.Type)
		var hist HistoryPayload
		require.NoError(t, json.Unmarshal(ev.Payload, &hist))
		assert.Equal(t, "p1", hist.RoomID)
		assert.Empty(t, hist.Messages)
	}

	require.NoError(t, connA.WriteJSON(Event{
		Type:    TypeSendMessage,
		Payload: MessagePayload{ID: "m1", Text: "hi", Sender: "a"},
	}))

	// everyone in the room receives the broadcast, sender included
	for _, c := range []*websocket.Conn{connB, connA} {
		ev := readEvent(t, c)
		require.Equal(t, TypeReceiveMessage, ev.Type)
		var msg MessagePayload
		require.NoError(t, json.Unmarshal(ev.Payload, &msg))
		assert.Equal(t, "m1", msg.ID)
		assert.Equal(t, "hi", msg.Text)
		assert.Equal(t, "p1", msg.RoomID)
	}

	// a later joiner finds m1 inside its history snapshot
	connC := dial(t, srv, "p1", "c")
	ev := readEvent(t, connC)
	require.Equal(t, TypeLoadHistory, ev.Type)
	var hist HistoryPayload
	require.NoError(t, json.Unmarshal(ev.Payload, &hist))
	require.Len(t, hist.Messages, 1)
	assert.Equal(t, "m1", hist.Messages[0].ID)
}

func TestRelayIgnoresEmptyText(t *testing.T) {
	buf := newBufferChat()
	relay := NewServer(NewHub(), buf)
	r := chi.NewRouter()
	r.Get("/ws/rooms/{id}", relay.HandleWS)
	srv := httptest.NewServer(r)
	defer srv.Close()

	conn := dial(t, srv, "p1", "a")
	_ = readEvent(t, conn) // history

	require.NoError(t, conn.WriteJSON(Event{
		Type:    TypeSendMessage,
		Payload: MessagePayload{ID: "m1", Text: "   "},
	}))
	require.NoError(t, conn.WriteJSON(Event{
		Type:    TypeSendMessage,
		Payload: MessagePayload{ID: "m2", Text: "real"},
	}))

	ev := readEvent(t, conn)
	require.Equal(t, TypeReceiveMessage, ev.Type)
	var msg MessagePayload
	require.NoError(t, json.Unmarshal(ev.Payload, &msg))
	assert.Equal(t, "m2", msg.ID, "blank messages are dropped")
	assert.Equal(t, 1, len(buf.Snapshot(context.Background(), "p1")))
}

func TestRelayRequiresSender(t *testing.T) {
	relay := NewServer(NewHub(), newBufferChat())
	r := chi.NewRouter()
	r.Get("/ws/rooms/{id}", relay.HandleWS)
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/rooms/p1"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 401, resp.StatusCode)
}
