// Package middleware ...
package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"
)

// Storage ...
type Storage interface {
	Get(key string) []byte
	Set(key string, content []byte, duration time.Duration)
}

type cachedResponse struct {
	Header http.Header `json:"header"`
	Body   []byte      `json:"body"`
}

// Cached wraps handler and replays a stored response for repeated request
// URIs within ttl.
func Cached(ttl time.Duration, storage Storage, handler func(w http.ResponseWriter, r *http.Request)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if content := storage.Get(r.RequestURI); content != nil {
			var cached cachedResponse
			if err := json.Unmarshal(content, &cached); err == nil {
				for k, v := range cached.Header {
					w.Header()[k] = v
				}

				w.WriteHeader(http.StatusOK)
				_, _ = w.Write(cached.Body)

				return
			}
		}

		c := httptest.NewRecorder()
		handler(c, r)

		for k, v := range c.Header() {
			w.Header()[k] = v
		}

		w.WriteHeader(c.Code)
		content := c.Body.Bytes()

		if c.Code == http.StatusOK {
			if b, err := json.Marshal(cachedResponse{Header: c.Header(), Body: content}); err == nil {
				storage.Set(r.RequestURI, b, ttl)
			}
		}

		_, _ = w.Write(content)
	}
}
