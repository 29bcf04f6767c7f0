package server

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KajamHamza/Blocks/internal/events"
)

func Test_streamEvents(t *testing.T) {
	b := events.NewHub()

	router := chi.NewRouter()
	srv := server{b: b}
	router.Get("/v1/events/stream", srv.streamEvents)

	ts := httptest.NewServer(router)
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/v1/events/stream"

	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	defer conn.Close()

	// the subscription is registered before Upgrade returns to the client,
	// but give the handler goroutine a beat anyway
	require.Eventually(t, func() bool {
		b.Publish(events.Event{Type: events.PostTipped, PostID: "1", Amount: "0.5"})

		_ = conn.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
		var ev events.Event
		if err := conn.ReadJSON(&ev); err != nil {
			return false
		}

		assert.Equal(t, events.PostTipped, ev.Type)
		assert.Equal(t, "1", ev.PostID)
		assert.Equal(t, "0.5", ev.Amount)

		return true
	}, 2*time.Second, 50*time.Millisecond)

	require.NoError(t, conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second)))
}
