// Package redis is a redis-backed implementation of cache storage.
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("package", "redis")

const keyPrefix = "cache:"

// Storage ...
type Storage struct {
	client *redis.Client
}

// NewStorage creates new instance of Storage with the given client.
func NewStorage(client *redis.Client) *Storage {
	return &Storage{
		client: client,
	}
}

// Get returns stored content or nil. Redis errors degrade to a cache miss.
func (s *Storage) Get(key string) []byte {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	b, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.WithError(err).Error("failed to get cached response")
		}
		return nil
	}

	return b
}

// Set stores content for duration. Errors are logged, a cache write never
// fails the request.
func (s *Storage) Set(key string, content []byte, duration time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := s.client.Set(ctx, keyPrefix+key, content, duration).Err(); err != nil {
		log.WithError(err).Error("failed to cache response")
	}
}
