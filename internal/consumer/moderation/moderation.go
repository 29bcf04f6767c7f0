// Package moderation implements consumer interface. It watches kill-zone
// events and keeps a list of posts flagged for suppression. Nothing is done
// with the flag downstream, it is only surfaced.
package moderation

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/KajamHamza/Blocks/internal/consumer"
	"github.com/KajamHamza/Blocks/internal/events"
)

var log = logrus.WithField("package", "moderation")

const subscriberBuffer = 256

// maxFlagged caps the retained flag list, oldest entries are evicted first.
const maxFlagged = 1000

// Moderation ...
type Moderation struct {
	b *events.Hub

	mu      sync.Mutex
	flagged map[string]struct{}
	order   []string
}

// New creates new instance of moderation consumer.
func New(b *events.Hub) *Moderation {
	return &Moderation{
		b:       b,
		flagged: map[string]struct{}{},
	}
}

// Run consumes events until ctx is cancelled.
func (m *Moderation) Run(ctx context.Context) error {
	id, ch := m.b.Subscribe(subscriberBuffer)
	defer m.b.Unsubscribe(id)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-ch:
			if ev.Type != events.PostKillZone {
				continue
			}

			m.flag(ev)
		}
	}
}

// Flagged returns flagged post ids in flagging order.
func (m *Moderation) Flagged() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, len(m.order))
	copy(out, m.order)

	return out
}

func (m *Moderation) flag(ev events.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.flagged[ev.PostID]; ok {
		return
	}

	m.flagged[ev.PostID] = struct{}{}
	m.order = append(m.order, ev.PostID)

	if len(m.order) > maxFlagged {
		delete(m.flagged, m.order[0])
		m.order = m.order[1:]
	}

	log.WithField("post", ev.PostID).WithField("net_votes", ev.NetVotes).
		Warn("post flagged for suppression")
}

var _ consumer.Consumer = (*Moderation)(nil)
