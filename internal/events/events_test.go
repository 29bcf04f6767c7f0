package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishSubscribe(t *testing.T) {
	h := NewHub()

	id, ch := h.Subscribe(2)

	h.Publish(Event{Type: PostKillZone, PostID: "1"})
	h.Publish(Event{Type: PostTipped, PostID: "2"})

	ev := <-ch
	assert.Equal(t, PostKillZone, ev.Type)
	ev = <-ch
	assert.Equal(t, "2", ev.PostID)

	h.Unsubscribe(id)

	_, open := <-ch
	assert.False(t, open)
}

func TestHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	h := NewHub()

	_, ch := h.Subscribe(1)

	// second publish overflows the buffer and must be dropped, not block
	h.Publish(Event{PostID: "1"})
	h.Publish(Event{PostID: "2"})

	ev := <-ch
	assert.Equal(t, "1", ev.PostID)

	select {
	case ev, ok := <-ch:
		require.False(t, ok, "unexpected event %+v", ev)
	default:
	}
}
