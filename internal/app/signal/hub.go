// Package signal is the typed in-process replacement for the ad hoc
// page-wide broadcast events: session mutations publish AuthChanged,
// cart mutations publish CartUpdated, and any mounted listener (an SSE
// connection, usually) consumes them without re-deriving state.
package signal

import (
	"sync"
	"time"
)

type Topic string

const (
	AuthChanged Topic = "auth.changed"
	CartUpdated Topic = "cart.updated"
)

// Event carries the topic plus the session it concerns. Payloads are
// deliberately small; consumers refetch what they render.
type Event struct {
	Topic     Topic
	SessionID string
	At        time.Time
}

type Subscription struct {
	hub *Hub
	id  int
	ch  chan Event
}

// C is the receive side of the subscription.
func (s *Subscription) C() <-chan Event { return s.ch }

// Close detaches the subscription from the hub. Safe to call twice.
func (s *Subscription) Close() {
	s.hub.unsubscribe(s.id)
}

// Hub fans events out to all live subscriptions. Publish never blocks:
// a subscriber that cannot keep up drops events rather than stalling
// the publisher.
type Hub struct {
	mu     sync.Mutex
	subs   map[int]*Subscription
	nextID int
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]*Subscription)}
}

func (h *Hub) Subscribe() *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	sub := &Subscription{
		hub: h,
		id:  h.nextID,
		ch:  make(chan Event, 16),
	}
	h.subs[sub.id] = sub
	return sub
}

func (h *Hub) unsubscribe(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if sub, ok := h.subs[id]; ok {
		delete(h.subs, id)
		close(sub.ch)
	}
}

func (h *Hub) Publish(topic Topic, sessionID string) {
	event := Event{Topic: topic, SessionID: sessionID, At: time.Now()}
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, sub := range h.subs {
		select {
		case sub.ch <- event:
		default:
		}
	}
}
