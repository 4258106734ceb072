// Package notify fans shortcut update events out to in-process
// subscribers.
package notify

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/bnema/bangsearch/internal/application/port"
	"github.com/bnema/bangsearch/internal/logging"
)

const defaultBuffer = 8

// Hub delivers every broadcast event to all current subscribers. Sends
// never block: a subscriber whose buffer is full misses the event.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]chan port.UpdateEvent
	buffer int
	closed bool
}

var (
	_ port.UpdateNotifier   = (*Hub)(nil)
	_ port.UpdateSubscriber = (*Hub)(nil)
)

// NewHub creates a hub. buffer <= 0 selects the default size.
func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Hub{
		subs:   make(map[string]chan port.UpdateEvent),
		buffer: buffer,
	}
}

// Subscribe registers a new subscriber. The cancel func closes the
// returned channel and may be called more than once.
func (h *Hub) Subscribe() (<-chan port.UpdateEvent, func()) {
	ch := make(chan port.UpdateEvent, h.buffer)

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := uuid.NewString()
	h.subs[id] = ch
	h.mu.Unlock()

	return ch, func() { h.remove(id) }
}

// Broadcast implements port.UpdateNotifier.
func (h *Hub) Broadcast(ctx context.Context, event port.UpdateEvent) {
	log := logging.FromContext(ctx)

	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return
	}

	for id, ch := range h.subs {
		select {
		case ch <- event:
		default:
			log.Debug().Str("subscriber", id).Str("action", event.Action).Msg("subscriber busy, event dropped")
		}
	}
}

// Len returns the number of live subscribers.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close closes every subscriber channel. Later broadcasts are ignored.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for id, ch := range h.subs {
		close(ch)
		delete(h.subs, id)
	}
}

func (h *Hub) remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subs[id]; ok {
		close(ch)
		delete(h.subs, id)
	}
}
