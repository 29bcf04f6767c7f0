// Package impl is implementation of service interface.
package impl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/KajamHamza/Blocks/internal/entities"
	"github.com/KajamHamza/Blocks/internal/events"
	"github.com/KajamHamza/Blocks/internal/service"
	"github.com/KajamHamza/Blocks/internal/storage"
)

var log = logrus.WithField("layer", "service")

type srv struct {
	s storage.Storage
	b *events.Hub
}

// New creates new instance of service.
func New(s storage.Storage, b *events.Hub) service.Service {
	return srv{
		s: s,
		b: b,
	}
}

func (s srv) CreatePost(ctx context.Context, p service.CreatePostParams) (*entities.Post, error) {
	if strings.TrimSpace(p.Content) == "" {
		return nil, service.ErrEmptyContent
	}

	// snapshot the author's credit rating, posts are not live-linked to
	// the profile
	rating := entities.DefaultCreditRating
	profile, err := s.s.GetProfileByAddress(ctx, p.AuthorAddress)
	switch {
	case err == nil:
		rating = profile.UserCreditRating
	case errors.Is(err, storage.ErrNotFound):
	default:
		return nil, fmt.Errorf("failed to get author profile: %w", err)
	}

	post := &entities.Post{
		ID:               uuid.NewString(),
		AuthorAddress:    p.AuthorAddress,
		Content:          p.Content,
		ImageURL:         p.ImageURL,
		CreatedAt:        time.Now().UTC(),
		UserCreditRating: rating,
		Award:            entities.AwardNone,
	}

	if err := s.s.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

func (s srv) ListPosts(ctx context.Context, p service.ListPostsParams) ([]*entities.Post, error) {
	params := storage.ListPostsParams{
		Limit: p.Limit,
	}

	if p.Author != "" {
		params.Author = &p.Author
	}

	if p.Latest {
		params.OrderBy = storage.DescendingOrder
	}

	posts, err := s.s.ListPosts(ctx, &params)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

func (s srv) GetPost(ctx context.Context, id string) (*entities.Post, error) {
	post, err := s.s.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}

		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

// Like is not deduplicated per user, repeated likes from the same address
// keep counting.
func (s srv) Like(ctx context.Context, postID, likedBy string) (*entities.Post, error) {
	var (
		post    *entities.Post
		awarded bool
	)

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		p, err := tx.GetPost(ctx, postID)
		if err != nil {
			return err
		}

		p.Likes++
		p.NetVotes++

		prev := p.Award
		p.Award = entities.AwardForLikes(p.Likes)
		awarded = p.Award != prev

		if err := tx.UpdatePost(ctx, p); err != nil {
			return err
		}

		post = p

		return nil
	}); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}

		return nil, fmt.Errorf("failed to like post: %w", err)
	}

	// publish only after the tx committed
	if awarded {
		s.publish(events.Event{
			Type:   events.PostAward,
			PostID: post.ID,
			Actor:  likedBy,
			Award:  post.Award,
			At:     time.Now().UTC(),
		})
	}

	return post, nil
}

// Dislike touches net votes only, likes and award stay as they are.
func (s srv) Dislike(ctx context.Context, postID, dislikedBy string) (*entities.Post, error) {
	var (
		post    *entities.Post
		crossed bool
	)

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		p, err := tx.GetPost(ctx, postID)
		if err != nil {
			return err
		}

		wasInKillZone := p.InKillZone()

		p.NetVotes--
		crossed = !wasInKillZone && p.InKillZone()

		if err := tx.UpdatePost(ctx, p); err != nil {
			return err
		}

		post = p

		return nil
	}); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}

		return nil, fmt.Errorf("failed to dislike post: %w", err)
	}

	if crossed {
		log.WithField("post", post.ID).WithField("net_votes", post.NetVotes).
			Warn("post entered the kill zone")

		s.publish(events.Event{
			Type:     events.PostKillZone,
			PostID:   post.ID,
			Actor:    dislikedBy,
			NetVotes: post.NetVotes,
			At:       time.Now().UTC(),
		})
	}

	return post, nil
}

// Bookmark copies the current post state into the owner's collection.
// Re-bookmarking the same post into the same collection is a silent no-op.
func (s srv) Bookmark(ctx context.Context, postID, owner, collection string) error {
	if collection == "" {
		collection = entities.DefaultCollection
	}

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		p, err := tx.GetPost(ctx, postID)
		if err != nil {
			return err
		}

		p.Collection = collection

		return tx.AddBookmark(ctx, owner, p)
	}); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return service.ErrNotFound
		}

		return fmt.Errorf("failed to bookmark post: %w", err)
	}

	return nil
}

// Tip adds amount to the post's collect ledger. The ledger is created lazily
// on the first tip. Self-tips and repeated tips from one sender all count,
// settlement happens elsewhere.
func (s srv) Tip(ctx context.Context, postID, sender string, amount decimal.Decimal) (*entities.CollectModule, error) {
	if !amount.IsPositive() {
		return nil, service.ErrInvalidAmount
	}

	var collect *entities.CollectModule

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		p, err := tx.GetPost(ctx, postID)
		if err != nil {
			return err
		}

		c, err := tx.GetCollect(ctx, postID)
		switch {
		case errors.Is(err, storage.ErrNotFound):
			c = &entities.CollectModule{
				ID:               uuid.NewString(),
				PostID:           postID,
				RecipientAddress: p.AuthorAddress,
				CollectPrice:     decimal.Zero,
				TotalCollected:   decimal.Zero,
			}
		case err != nil:
			return err
		}

		c.TotalCollected = c.TotalCollected.Add(amount)
		c.CollectorsCount++

		if err := tx.SaveCollect(ctx, c); err != nil {
			return err
		}

		collect = c

		return nil
	}); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}

		return nil, fmt.Errorf("failed to tip post: %w", err)
	}

	s.publish(events.Event{
		Type:   events.PostTipped,
		PostID: postID,
		Actor:  sender,
		Amount: amount.String(),
		At:     time.Now().UTC(),
	})

	return collect, nil
}

func (s srv) CreateProfile(ctx context.Context, p service.CreateProfileParams) (*entities.Profile, error) {
	taken, err := s.handleTaken(ctx, p.Address, p.Handle)
	if err != nil {
		return nil, err
	}

	if taken {
		return nil, service.ErrHandleTaken
	}

	now := time.Now().UTC()

	profile := &entities.Profile{
		ID:               uuid.NewString(),
		Address:          p.Address,
		Handle:           p.Handle,
		Bio:              p.Bio,
		Avatar:           p.Avatar,
		SocialLinks:      p.SocialLinks,
		UserCreditRating: entities.DefaultCreditRating,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.s.CreateProfile(ctx, profile); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, service.ErrHandleTaken
		}

		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return profile, nil
}

func (s srv) GetProfileByAddress(ctx context.Context, address string) (*entities.Profile, error) {
	p, err := s.s.GetProfileByAddress(ctx, address)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}

		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return p, nil
}

func (s srv) CheckHandle(ctx context.Context, handle string) (bool, error) {
	taken, err := s.handleTaken(ctx, "", handle)
	if err != nil {
		return false, err
	}

	return !taken, nil
}

func (s srv) ListBookmarks(ctx context.Context, owner, collection string) ([]*entities.Post, error) {
	out, err := s.s.ListBookmarks(ctx, owner, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}

	return out, nil
}

// handleTaken reports whether the handle belongs to a profile of another
// address. Re-creating a profile with the same address and handle is allowed,
// last write wins.
func (s srv) handleTaken(ctx context.Context, address, handle string) (bool, error) {
	p, err := s.s.GetProfileByHandle(ctx, handle)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("failed to get profile by handle: %w", err)
	}

	return p.Address != address, nil
}

func (s srv) publish(ev events.Event) {
	if s.b != nil {
		s.b.Publish(ev)
	}
}
