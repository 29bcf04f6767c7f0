// Package storage contains a storage interface.
package storage

import (
	"context"
	"fmt"

	"github.com/KajamHamza/Blocks/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// ErrConflict returned when a unique constraint is violated.
var ErrConflict = fmt.Errorf("conflict")

// Storage provides methods for interacting with database.
type Storage interface {
	InTx(ctx context.Context, f func(s Storage) error) error

	CreatePost(ctx context.Context, p *entities.Post) error
	GetPost(ctx context.Context, id string) (*entities.Post, error)
	UpdatePost(ctx context.Context, p *entities.Post) error
	ListPosts(ctx context.Context, params *ListPostsParams) ([]*entities.Post, error)

	CreateProfile(ctx context.Context, p *entities.Profile) error
	GetProfileByAddress(ctx context.Context, address string) (*entities.Profile, error)
	GetProfileByHandle(ctx context.Context, handle string) (*entities.Profile, error)

	AddBookmark(ctx context.Context, owner string, p *entities.Post) error
	ListBookmarks(ctx context.Context, owner, collection string) ([]*entities.Post, error)

	GetCollect(ctx context.Context, postID string) (*entities.CollectModule, error)
	SaveCollect(ctx context.Context, c *entities.CollectModule) error
}

// OrderType ...
type OrderType string

const (
	// AscendingOrder ...
	AscendingOrder OrderType = "asc"
	// DescendingOrder ...
	DescendingOrder OrderType = "desc"
)

// ListPostsParams ...
type ListPostsParams struct {
	Author  *string
	OrderBy OrderType
	Limit   uint16
}
