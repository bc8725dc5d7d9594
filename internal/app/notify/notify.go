// Package notify is the process-wide toast channel. Services publish
// success/error signals here; the SSE handler and the banner components
// render them. Events are ephemeral: displayed, auto-dismissed after a
// fixed delay, gone.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bangg2309/book-exchange/internal/app/observability/metrics"
)

type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Warning Kind = "warning"
	Info    Kind = "info"
)

// DismissAfter is the fixed display lifetime of a toast.
const DismissAfter = 5 * time.Second

type Event struct {
	ID        string
	SessionID string
	Message   string
	Kind      Kind
}

type subscriber struct {
	sessionID string
	ch        chan Event
}

type Subscription struct {
	bus *Bus
	id  int
	ch  chan Event
}

func (s *Subscription) C() <-chan Event { return s.ch }

func (s *Subscription) Close() {
	s.bus.unsubscribe(s.id)
}

// Bus fans published toasts out to subscribers and tracks which toasts
// are currently visible per session. Display order is first-published
// first-delivered; identical rapid-fire messages are not de-duplicated.
type Bus struct {
	mu           sync.Mutex
	subs         map[int]*subscriber
	nextID       int
	visible      map[string][]Event // session id -> visible toasts, FIFO
	timers       map[string]*time.Timer
	dismissAfter time.Duration
}

func NewBus() *Bus {
	return newBus(DismissAfter)
}

func newBus(dismissAfter time.Duration) *Bus {
	return &Bus{
		subs:         make(map[int]*subscriber),
		visible:      make(map[string][]Event),
		timers:       make(map[string]*time.Timer),
		dismissAfter: dismissAfter,
	}
}

// Subscribe attaches a listener for one session's toasts. The returned
// subscription must be closed when the listener goes away.
func (b *Bus) Subscribe(sessionID string) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	sub := &Subscription{bus: b, id: b.nextID, ch: make(chan Event, 32)}
	b.subs[sub.id] = &subscriber{sessionID: sessionID, ch: sub.ch}
	return sub
}

func (b *Bus) unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if sub, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(sub.ch)
	}
}

// Publish enqueues a toast for one session and arms its auto-dismiss
// timer. Fire-and-forget: a slow subscriber drops the event.
func (b *Bus) Publish(sessionID, message string, kind Kind) Event {
	event := Event{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Message:   message,
		Kind:      kind,
	}

	b.mu.Lock()
	b.visible[sessionID] = append(b.visible[sessionID], event)
	b.timers[event.ID] = time.AfterFunc(b.dismissAfter, func() {
		b.Dismiss(sessionID, event.ID)
	})
	for _, sub := range b.subs {
		if sub.sessionID != sessionID {
			continue
		}
		select {
		case sub.ch <- event:
		default:
		}
	}
	b.mu.Unlock()

	metrics.RecordToast(context.Background(), string(kind))
	return event
}

// Dismiss removes a visible toast. Manual and timer-driven dismissal
// both land here; dismissing twice is a no-op.
func (b *Bus) Dismiss(sessionID, eventID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if timer, ok := b.timers[eventID]; ok {
		timer.Stop()
		delete(b.timers, eventID)
	}

	toasts := b.visible[sessionID]
	for i, toast := range toasts {
		if toast.ID == eventID {
			b.visible[sessionID] = append(toasts[:i], toasts[i+1:]...)
			break
		}
	}
	if len(b.visible[sessionID]) == 0 {
		delete(b.visible, sessionID)
	}
}

// Visible returns the session's currently displayed toasts in
// publication order.
func (b *Bus) Visible(sessionID string) []Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	toasts := b.visible[sessionID]
	out := make([]Event, len(toasts))
	copy(out, toasts)
	return out
}
