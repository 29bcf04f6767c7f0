// Package service contains interface for service business-logic.
package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/KajamHamza/Blocks/internal/entities"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

// ErrNotFound returned when a referenced post or profile does not exist.
var ErrNotFound = errors.New("not found")

// ErrEmptyContent returned when a post is created with blank content.
var ErrEmptyContent = errors.New("post content is empty")

// ErrInvalidAmount returned when a tip amount is not positive.
var ErrInvalidAmount = errors.New("tip amount must be positive")

// ErrHandleTaken returned when a profile handle collides with an existing
// one, compared case-insensitively.
var ErrHandleTaken = errors.New("handle is already taken")

// CreatePostParams ...
type CreatePostParams struct {
	Content       string
	ImageURL      string
	AuthorAddress string
}

// CreateProfileParams ...
type CreateProfileParams struct {
	Address     string
	Handle      string
	Bio         string
	Avatar      string
	SocialLinks entities.SocialLinks
}

// ListPostsParams ...
type ListPostsParams struct {
	Author string
	Latest bool
	Limit  uint16
}

// Service ...
type Service interface {
	CreatePost(ctx context.Context, p CreatePostParams) (*entities.Post, error)
	ListPosts(ctx context.Context, p ListPostsParams) ([]*entities.Post, error)
	GetPost(ctx context.Context, id string) (*entities.Post, error)

	Like(ctx context.Context, postID, likedBy string) (*entities.Post, error)
	Dislike(ctx context.Context, postID, dislikedBy string) (*entities.Post, error)
	Bookmark(ctx context.Context, postID, owner, collection string) error
	Tip(ctx context.Context, postID, sender string, amount decimal.Decimal) (*entities.CollectModule, error)

	CreateProfile(ctx context.Context, p CreateProfileParams) (*entities.Profile, error)
	GetProfileByAddress(ctx context.Context, address string) (*entities.Profile, error)
	CheckHandle(ctx context.Context, handle string) (bool, error)

	ListBookmarks(ctx context.Context, owner, collection string) ([]*entities.Post, error)
}
