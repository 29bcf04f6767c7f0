// Package memory is an in-memory implementation of storage interface.
// It is used in development mode and in tests.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/KajamHamza/Blocks/internal/entities"
	"github.com/KajamHamza/Blocks/internal/storage"
)

type store struct {
	mu sync.Mutex

	posts     map[string]*entities.Post
	postOrder []string
	profiles  map[string]*entities.Profile
	bookmarks map[string][]*entities.Post
	collects  map[string]*entities.CollectModule
}

// New creates new instance of store.
func New() storage.Storage {
	return &store{
		posts:     map[string]*entities.Post{},
		profiles:  map[string]*entities.Profile{},
		bookmarks: map[string][]*entities.Post{},
		collects:  map[string]*entities.CollectModule{},
	}
}

// InTx serializes the whole transaction with the store mutex, the callback
// gets an unlocked view. Rollback is not supported, a failed callback may
// leave earlier writes applied, callers validate before mutating.
func (s *store) InTx(_ context.Context, f func(s storage.Storage) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return f(locked{s})
}

func (s *store) CreatePost(ctx context.Context, p *entities.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return locked{s}.CreatePost(ctx, p)
}

func (s *store) GetPost(ctx context.Context, id string) (*entities.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return locked{s}.GetPost(ctx, id)
}

func (s *store) UpdatePost(ctx context.Context, p *entities.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return locked{s}.UpdatePost(ctx, p)
}

func (s *store) ListPosts(ctx context.Context, params *storage.ListPostsParams) ([]*entities.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return locked{s}.ListPosts(ctx, params)
}

func (s *store) CreateProfile(ctx context.Context, p *entities.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return locked{s}.CreateProfile(ctx, p)
}

func (s *store) GetProfileByAddress(ctx context.Context, address string) (*entities.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return locked{s}.GetProfileByAddress(ctx, address)
}

func (s *store) GetProfileByHandle(ctx context.Context, handle string) (*entities.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return locked{s}.GetProfileByHandle(ctx, handle)
}

func (s *store) AddBookmark(ctx context.Context, owner string, p *entities.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return locked{s}.AddBookmark(ctx, owner, p)
}

func (s *store) ListBookmarks(ctx context.Context, owner, collection string) ([]*entities.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return locked{s}.ListBookmarks(ctx, owner, collection)
}

func (s *store) GetCollect(ctx context.Context, postID string) (*entities.CollectModule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return locked{s}.GetCollect(ctx, postID)
}

func (s *store) SaveCollect(ctx context.Context, c *entities.CollectModule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return locked{s}.SaveCollect(ctx, c)
}

// locked is the view handed to InTx callbacks, the mutex is already held.
type locked struct {
	s *store
}

func (l locked) InTx(_ context.Context, f func(s storage.Storage) error) error {
	return f(l)
}

func (l locked) CreatePost(_ context.Context, p *entities.Post) error {
	c := *p
	l.s.posts[p.ID] = &c
	l.s.postOrder = append(l.s.postOrder, p.ID)

	return nil
}

func (l locked) GetPost(_ context.Context, id string) (*entities.Post, error) {
	p, ok := l.s.posts[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	c := *p

	return &c, nil
}

func (l locked) UpdatePost(_ context.Context, p *entities.Post) error {
	if _, ok := l.s.posts[p.ID]; !ok {
		return storage.ErrNotFound
	}

	c := *p
	l.s.posts[p.ID] = &c

	return nil
}

func (l locked) ListPosts(_ context.Context, params *storage.ListPostsParams) ([]*entities.Post, error) {
	out := make([]*entities.Post, 0, len(l.s.postOrder))

	for _, id := range l.s.postOrder {
		p := l.s.posts[id]
		if params.Author != nil && p.AuthorAddress != *params.Author {
			continue
		}

		c := *p
		out = append(out, &c)
	}

	if params.OrderBy == storage.DescendingOrder {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}

	if params.Limit > 0 && int(params.Limit) < len(out) {
		out = out[:params.Limit]
	}

	return out, nil
}

func (l locked) CreateProfile(_ context.Context, p *entities.Profile) error {
	for _, v := range l.s.profiles {
		if v.Address != p.Address && strings.EqualFold(v.Handle, p.Handle) {
			return storage.ErrConflict
		}
	}

	c := *p
	l.s.profiles[p.Address] = &c

	return nil
}

func (l locked) GetProfileByAddress(_ context.Context, address string) (*entities.Profile, error) {
	p, ok := l.s.profiles[address]
	if !ok {
		return nil, storage.ErrNotFound
	}

	c := *p

	return &c, nil
}

func (l locked) GetProfileByHandle(_ context.Context, handle string) (*entities.Profile, error) {
	for _, v := range l.s.profiles {
		if strings.EqualFold(v.Handle, handle) {
			c := *v
			return &c, nil
		}
	}

	return nil, storage.ErrNotFound
}

func (l locked) AddBookmark(_ context.Context, owner string, p *entities.Post) error {
	for _, v := range l.s.bookmarks[owner] {
		if v.ID == p.ID && v.Collection == p.Collection {
			return nil
		}
	}

	c := *p
	l.s.bookmarks[owner] = append(l.s.bookmarks[owner], &c)

	return nil
}

func (l locked) ListBookmarks(_ context.Context, owner, collection string) ([]*entities.Post, error) {
	var out []*entities.Post

	for _, v := range l.s.bookmarks[owner] {
		if collection != "" && v.Collection != collection {
			continue
		}

		c := *v
		out = append(out, &c)
	}

	return out, nil
}

func (l locked) GetCollect(_ context.Context, postID string) (*entities.CollectModule, error) {
	c, ok := l.s.collects[postID]
	if !ok {
		return nil, storage.ErrNotFound
	}

	cc := *c

	return &cc, nil
}

func (l locked) SaveCollect(_ context.Context, c *entities.CollectModule) error {
	cc := *c
	l.s.collects[c.PostID] = &cc

	return nil
}
