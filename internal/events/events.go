// Package events contains an in-process stream of interaction events.
package events

import (
	"sync"
	"time"

	"github.com/KajamHamza/Blocks/internal/entities"
)

// Type ...
type Type string

const (
	// PostKillZone is emitted when a post's net votes drop below the
	// suppression bound.
	PostKillZone Type = "post.kill_zone"
	// PostAward is emitted when a post's award tier changes.
	PostAward Type = "post.award"
	// PostTipped is emitted on every tip.
	PostTipped Type = "post.tipped"
)

// Event ...
type Event struct {
	Type     Type           `json:"type"`
	PostID   string         `json:"postId"`
	Actor    string         `json:"actor,omitempty"`
	Award    entities.Award `json:"award,omitempty"`
	NetVotes int64          `json:"netVotes,omitempty"`
	Amount   string         `json:"amount,omitempty"`
	At       time.Time      `json:"at"`
}

// Hub is a simple pub/sub for broadcasting events to subscribers.
type Hub struct {
	mu   sync.RWMutex
	subs map[int]chan Event
	next int
}

// NewHub creates new instance of Hub.
func NewHub() *Hub { return &Hub{subs: map[int]chan Event{}} }

// Subscribe registers a buffered subscriber channel.
func (h *Hub) Subscribe(buffer int) (int, <-chan Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.next++
	id := h.next
	ch := make(chan Event, buffer)
	h.subs[id] = ch

	return id, ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (h *Hub) Unsubscribe(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subs[id]; ok {
		delete(h.subs, id)
		close(ch)
	}
}

// Publish sends an event to all subscribers. A slow subscriber never blocks
// the publisher, the event is dropped for it instead.
func (h *Hub) Publish(ev Event) {
	h.mu.RLock()
	receivers := make([]chan Event, 0, len(h.subs))
	for _, ch := range h.subs {
		receivers = append(receivers, ch)
	}
	h.mu.RUnlock()

	for _, ch := range receivers {
		select {
		case ch <- ev:
		default:
		}
	}
}
