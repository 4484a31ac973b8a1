package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/hannahenterprises/constructly-server/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type ChatSvc interface {
	Accept(msg domain.ChatMessage)
	Snapshot(ctx context.Context, roomID string) []domain.ChatMessage
}

type Server struct {
	upgrader websocket.Upgrader
	hub      *Hub
	chatSvc  ChatSvc

	pingEvery time.Duration
}

func NewServer(hub *Hub, chat ChatSvc) *Server {
	return &Server{
		hub:     hub,
		chatSvc: chat,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		pingEvery: 15 * time.Second,
	}
}

// WS endpoint: GET /ws/rooms/{id}?sender=...
// Room id is the project id; sender is the caller-supplied identity
// (authentication belongs to the external identity provider).
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if roomID == "" {
		http.Error(w, "missing room id", http.StatusBadRequest)
		return
	}
	sender := strings.TrimSpace(r.URL.Query().Get("sender"))
	if sender == "" {
		http.Error(w, "missing sender", http.StatusUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("ws upgrade failed", "err", err)
		return
	}

	c := newWSConn(conn, roomID, sender)

	// Subscribe before snapshotting: a message racing the join is then
	// delivered twice at worst (snapshot + broadcast, deduped by id on the
	// client), never zero times.
	s.hub.Add(c)

	if err := s.sendHistory(r.Context(), c); err != nil {
		slog.Warn("ws send history failed", "room", roomID, "sender", sender, "err", err)
	}

	go s.writeLoop(r.Context(), c)
	s.readLoop(c)

	s.hub.Remove(c)

	if err := c.Close(); err != nil {
		slog.Debug("ws close failed", "room", roomID, "sender", sender, "err", err)
	}
}

func (s *Server) sendHistory(ctx context.Context, c *wsConn) error {
	msgs := s.chatSvc.Snapshot(ctx, c.roomID)
	items := make([]MessagePayload, 0, len(msgs))
	for _, m := range msgs {
		items = append(items, toPayload(m))
	}

	return c.Send(Event{
		Type:    TypeLoadHistory,
		Payload: HistoryPayload{RoomID: c.roomID, Messages: items},
	})
}

func (s *Server) readLoop(c *wsConn) {
	defer func() { _ = c.Close() }()

	c.conn.SetReadLimit(1 << 20)
	c.conn.SetReadDeadline(time.Now().Add(2 * s.pingEvery))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(2 * s.pingEvery))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			break
		}
		var ev Event
		if err := json.Unmarshal(data, &ev); err != nil {
			continue
		}

		switch ev.Type {
		case TypeSendMessage:
			var p MessagePayload
			if decode(ev.Payload, &p) != nil {
				continue
			}
			p.RoomID = c.roomID
			p.Text = strings.TrimSpace(p.Text)
			if p.Text == "" {
				continue
			}
			if p.Sender == "" {
				p.Sender = c.sender
			}
			if p.ID == "" {
				p.ID = uuid.New().String()
			}

			msg := p.toDomain()

			// Buffer first, then broadcast; the durable write runs in the
			// background and never gates either.
			s.chatSvc.Accept(msg)
			s.hub.Broadcast(c.roomID, Event{Type: TypeReceiveMessage, Payload: toPayload(msg)})
		default:
			// ignore
		}
	}
}

func (s *Server) writeLoop(ctx context.Context, c *wsConn) {
	ticker := time.NewTicker(s.pingEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_ = c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second))
		case <-ctx.Done():
			return
		case <-c.closed:
			return
		}
	}
}

// --- helpers ---

func decode(payload any, dst any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return json.Unmarshal(b, dst)
}

type wsConn struct {
	conn   *websocket.Conn
	roomID string
	sender string
	sendMu chan struct{}
	closed chan struct{}
}

func newWSConn(c *websocket.Conn, roomID, sender string) *wsConn {
	return &wsConn{
		conn:   c,
		roomID: roomID,
		sender: sender,
		sendMu: make(chan struct{}, 1),
		closed: make(chan struct{}),
	}
}

func (c *wsConn) Send(ev Event) error {
	c.sendMu <- struct{}{}
	defer func() { <-c.sendMu }()
	c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))

	return c.conn.WriteJSON(ev)
}

func (c *wsConn) Close() error {
	select {
	case <-c.closed:
	default:
		close(c.closed)
	}

	return c.conn.Close()
}

func (c *wsConn) Sender() string { return c.sender }
func (c *wsConn) RoomID() string { return c.roomID }
