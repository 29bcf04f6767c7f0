package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KajamHamza/Blocks/internal/entities"
	"github.com/KajamHamza/Blocks/internal/storage"
)

var ctx = context.Background()

func TestStore_Posts(t *testing.T) {
	s := New()

	_, err := s.GetPost(ctx, "missing")
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	p := &entities.Post{
		ID:            "1",
		AuthorAddress: "addr",
		Content:       "hello",
		CreatedAt:     time.Unix(1, 0),
	}
	require.NoError(t, s.CreatePost(ctx, p))

	got, err := s.GetPost(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, p, got)

	// a returned post is a snapshot
	got.Likes = 100
	got2, err := s.GetPost(ctx, "1")
	require.NoError(t, err)
	assert.EqualValues(t, 0, got2.Likes)

	got2.Likes = 7
	require.NoError(t, s.UpdatePost(ctx, got2))

	got, err = s.GetPost(ctx, "1")
	require.NoError(t, err)
	assert.EqualValues(t, 7, got.Likes)

	assert.True(t, errors.Is(s.UpdatePost(ctx, &entities.Post{ID: "missing"}), storage.ErrNotFound))
}

func TestStore_ListPosts(t *testing.T) {
	s := New()

	for i, a := range []string{"a", "b", "a"} {
		require.NoError(t, s.CreatePost(ctx, &entities.Post{
			ID:            string(rune('1' + i)),
			AuthorAddress: a,
			Content:       "text",
			CreatedAt:     time.Unix(int64(i), 0),
		}))
	}

	out, err := s.ListPosts(ctx, &storage.ListPostsParams{})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "1", out[0].ID) // storage order

	author := "a"
	out, err = s.ListPosts(ctx, &storage.ListPostsParams{Author: &author})
	require.NoError(t, err)
	require.Len(t, out, 2)

	out, err = s.ListPosts(ctx, &storage.ListPostsParams{OrderBy: storage.DescendingOrder, Limit: 1})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "3", out[0].ID)
}

func TestStore_Profiles(t *testing.T) {
	s := New()

	require.NoError(t, s.CreateProfile(ctx, &entities.Profile{Address: "addr", Handle: "alice"}))

	// case-insensitive collision with another address
	err := s.CreateProfile(ctx, &entities.Profile{Address: "addr2", Handle: "Alice"})
	assert.True(t, errors.Is(err, storage.ErrConflict))

	// same address overwrites
	require.NoError(t, s.CreateProfile(ctx, &entities.Profile{Address: "addr", Handle: "alice", Bio: "bio"}))

	p, err := s.GetProfileByAddress(ctx, "addr")
	require.NoError(t, err)
	assert.Equal(t, "bio", p.Bio)

	p, err = s.GetProfileByHandle(ctx, "ALICE")
	require.NoError(t, err)
	assert.Equal(t, "addr", p.Address)

	_, err = s.GetProfileByHandle(ctx, "bob")
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestStore_Bookmarks(t *testing.T) {
	s := New()

	p := &entities.Post{ID: "1", Content: "text", Collection: "Favorites"}

	require.NoError(t, s.AddBookmark(ctx, "user", p))
	require.NoError(t, s.AddBookmark(ctx, "user", p)) // idempotent

	out, err := s.ListBookmarks(ctx, "user", "Favorites")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Favorites", out[0].Collection)

	// same post in a different collection is a separate entry
	p2 := *p
	p2.Collection = "Later"
	require.NoError(t, s.AddBookmark(ctx, "user", &p2))

	out, err = s.ListBookmarks(ctx, "user", "")
	require.NoError(t, err)
	assert.Len(t, out, 2)

	out, err = s.ListBookmarks(ctx, "other", "")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestStore_InTx(t *testing.T) {
	s := New()

	require.NoError(t, s.InTx(ctx, func(s storage.Storage) error {
		if err := s.CreatePost(ctx, &entities.Post{ID: "1", Content: "text"}); err != nil {
			return err
		}

		p, err := s.GetPost(ctx, "1")
		if err != nil {
			return err
		}

		p.Likes++

		return s.UpdatePost(ctx, p)
	}))

	p, err := s.GetPost(ctx, "1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, p.Likes)
}
