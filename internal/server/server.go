// Package server Blocks
//
// The Blocks API is an off-chain service which provides access to community
// entities (posts, profiles, bookmarks, tips).
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/KajamHamza/Blocks/internal/events"
	mm "github.com/KajamHamza/Blocks/internal/middleware"
	"github.com/KajamHamza/Blocks/internal/service"
)

const maxBodySize = 64 * 1024
const listCacheTTL = 10 * time.Second

// FlagSource exposes posts flagged for suppression.
type FlagSource interface {
	Flagged() []string
}

type server struct {
	s service.Service
	b *events.Hub
	f FlagSource
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s service.Service, b *events.Hub, f FlagSource, cache mm.Storage, r chi.Router, timeout time.Duration) {
	r.Use(
		loggerMiddleware,
		middleware.StripSlashes,
		middleware.RealIP,
		cors.AllowAll().Handler,
		middleware.RequestID,
		middleware.Recoverer,
		middleware.Timeout(timeout),
		bodyLimiterMiddleware(maxBodySize),
	)

	srv := server{
		s: s,
		b: b,
		f: f,
	}

	r.Get("/health", srv.health)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/posts", srv.createPost)
		r.Get("/posts", mm.Cached(listCacheTTL, cache, srv.listPosts))
		r.Get("/posts/{id}", srv.getPost)
		r.Post("/posts/{id}/like", srv.likePost)
		r.Post("/posts/{id}/dislike", srv.dislikePost)
		r.Post("/posts/{id}/bookmark", srv.bookmarkPost)
		r.Post("/posts/{id}/tip", srv.tipPost)

		r.Post("/profiles", srv.createProfile)
		r.Get("/profiles/{address}", srv.getProfile)
		r.Get("/profiles/handle/{handle}/availability", srv.checkHandle)

		r.Get("/bookmarks/{address}", srv.listBookmarks)

		if f != nil {
			r.Get("/moderation/flagged", srv.flaggedPosts)
		}

		if b != nil {
			r.Get("/events/stream", srv.streamEvents)
		}
	})
}

func (s server) health(w http.ResponseWriter, _ *http.Request) {
	writeOK(w, http.StatusOK, struct {
		Status string `json:"status"`
	}{Status: "ok"})
}

func loggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		logrus.WithFields(logrus.Fields{
			"method":   r.Method,
			"uri":      r.RequestURI,
			"remote":   r.RemoteAddr,
			"duration": time.Since(start).String(),
		}).Debug("request handled")
	})
}

func bodyLimiterMiddleware(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)

			next.ServeHTTP(w, r)
		})
	}
}
