package impl

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KajamHamza/Blocks/internal/entities"
	"github.com/KajamHamza/Blocks/internal/events"
	"github.com/KajamHamza/Blocks/internal/service"
	storageinterface "github.com/KajamHamza/Blocks/internal/storage"
	storage "github.com/KajamHamza/Blocks/internal/storage/mock"
)

func TestSrv_CreatePost_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := storage.NewMockStorage(ctrl)
	srv := New(s, nil)

	s.EXPECT().GetProfileByAddress(gomock.Any(), "author").Return(nil, storageinterface.ErrNotFound)
	s.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Return(context.Canceled)

	_, err := srv.CreatePost(ctx, service.CreatePostParams{Content: "hello", AuthorAddress: "author"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestSrv_Like_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := storage.NewMockStorage(ctrl)
	srv := New(s, nil)

	s.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f func(s storageinterface.Storage) error) error {
		return f(s)
	})
	s.EXPECT().GetPost(gomock.Any(), "1").Return(nil, context.Canceled)

	_, err := srv.Like(ctx, "1", "user")
	require.Error(t, err)
	assert.False(t, errors.Is(err, service.ErrNotFound))
}

func TestSrv_Dislike_NoEventOnCommitFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := storage.NewMockStorage(ctrl)
	b := events.NewHub()
	srv := New(s, b)

	_, ch := b.Subscribe(16)

	// the callback succeeds and crosses the kill zone, but the commit fails
	s.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f func(s storageinterface.Storage) error) error {
		if err := f(s); err != nil {
			return err
		}

		return errors.New("failed to commit tx")
	})
	s.EXPECT().GetPost(gomock.Any(), "1").Return(&entities.Post{ID: "1", NetVotes: -2}, nil)
	s.EXPECT().UpdatePost(gomock.Any(), gomock.Any()).Return(nil)

	_, err := srv.Dislike(ctx, "1", "user")
	require.Error(t, err)

	select {
	case ev := <-ch:
		t.Fatalf("unexpected event %+v", ev)
	default:
	}
}

func TestSrv_Tip_NoWriteOnInvalidAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no storage calls are expected at all
	s := storage.NewMockStorage(ctrl)
	srv := New(s, nil)

	_, err := srv.Tip(ctx, "1", "sender", decimal.Zero)
	assert.True(t, errors.Is(err, service.ErrInvalidAmount))
}
