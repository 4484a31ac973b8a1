package ws

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	room   string
	sender string

	mu     sync.Mutex
	events []Event
}

func (c *fakeConn) Send(ev Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
	return nil
}

func (c *fakeConn) Close() error   { return nil }
func (c *fakeConn) Sender() string { return c.sender }
func (c *fakeConn) RoomID() string { return c.room }

func (c *fakeConn) received() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Event(nil), c.events...)
}

func TestHubBroadcastIncludesSender(t *testing.T) {
	hub := NewHub()

	a := &fakeConn{room: "p1", sender: "a"}
	b := &fakeConn{room: "p1", sender: "b"}
	other := &fakeConn{room: "p2", sender: "c"}
	hub.Add(a)
	hub.Add(b)
	hub.Add(other)

	hub.Broadcast("p1", Event{Type: TypeReceiveMessage, Payload: MessagePayload{ID: "m1", Text: "hi"}})

	for _, c := range []*fakeConn{a, b} {
		evs := c.received()
		require.Len(t, evs, 1)
		assert.Equal(t, TypeReceiveMessage, evs[0].Type)
		assert.Equal(t, "m1", evs[0].Payload.(MessagePayload).ID)
	}
	assert.Empty(t, other.received(), "rooms are isolated")
}

func TestHubRemove(t *testing.T) {
	hub := NewHub()

	a := &fakeConn{room: "p1", sender: "a"}
	hub.Add(a)
	hub.Remove(a)

	hub.Broadcast("p1", Event{Type: TypeReceiveMessage})
	assert.Empty(t, a.received())

	// removing twice is harmless
	hub.Remove(a)
}
