package server

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KajamHamza/Blocks/internal/entities"
	"github.com/KajamHamza/Blocks/internal/service"
	"github.com/KajamHamza/Blocks/internal/service/mock"
)

func newTestRouter(t *testing.T) (*mock.MockService, chi.Router) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	svc := mock.NewMockService(ctrl)

	router := chi.NewRouter()
	srv := server{s: svc}

	router.Post("/v1/posts", srv.createPost)
	router.Get("/v1/posts", srv.listPosts)
	router.Get("/v1/posts/{id}", srv.getPost)
	router.Post("/v1/posts/{id}/like", srv.likePost)
	router.Post("/v1/posts/{id}/dislike", srv.dislikePost)
	router.Post("/v1/posts/{id}/bookmark", srv.bookmarkPost)
	router.Post("/v1/posts/{id}/tip", srv.tipPost)
	router.Post("/v1/profiles", srv.createProfile)
	router.Get("/v1/profiles/{address}", srv.getProfile)
	router.Get("/v1/profiles/handle/{handle}/availability", srv.checkHandle)

	return svc, router
}

func doRequest(router chi.Router, method, target, body string) *httptest.ResponseRecorder {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	return w
}

func Test_createPost(t *testing.T) {
	svc, router := newTestRouter(t)

	timestamp := time.Unix(100, 0)

	svc.EXPECT().CreatePost(gomock.Any(), service.CreatePostParams{
		Content:       "hello",
		ImageURL:      "img",
		AuthorAddress: "author",
	}).Return(&entities.Post{
		ID:               "id",
		AuthorAddress:    "author",
		Content:          "hello",
		ImageURL:         "img",
		CreatedAt:        timestamp,
		UserCreditRating: 0.01,
	}, nil)

	w := doRequest(router, http.MethodPost, "/v1/posts",
		`{"content": "hello", "imageUrl": "img", "authorAddress": "author"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t,
		`{"id":"id","authorAddress":"author","content":"hello","imageUrl":"img","createdAt":100,"likes":0,"comments":0,"reposts":0,"netVotes":0,"userCreditRating":"0.01","killZone":false}`,
		w.Body.String())
}

func Test_createPost_validation(t *testing.T) {
	svc, router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/v1/posts", `{"content": "hello"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodPost, "/v1/posts", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	svc.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Return(nil, service.ErrEmptyContent)

	w = doRequest(router, http.MethodPost, "/v1/posts", `{"content": " ", "authorAddress": "author"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_listPosts(t *testing.T) {
	svc, router := newTestRouter(t)

	svc.EXPECT().ListPosts(gomock.Any(), service.ListPostsParams{
		Author: "addr",
		Latest: true,
		Limit:  10,
	}).Return([]*entities.Post{
		{ID: "1", Content: "a", CreatedAt: time.Unix(2, 0)},
		{ID: "2", Content: "b", CreatedAt: time.Unix(1, 0)},
	}, nil)

	w := doRequest(router, http.MethodGet, "/v1/posts?author=addr&latest=true&limit=10", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"1"`)
	assert.Contains(t, w.Body.String(), `"id":"2"`)
}

func Test_listPosts_invalidQuery(t *testing.T) {
	_, router := newTestRouter(t)

	for _, q := range []string{"limit=0", "limit=101", "limit=x", "latest=x"} {
		w := doRequest(router, http.MethodGet, fmt.Sprintf("/v1/posts?%s", q), "")
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}

func Test_getPost_notFound(t *testing.T) {
	svc, router := newTestRouter(t)

	svc.EXPECT().GetPost(gomock.Any(), "missing").Return(nil, service.ErrNotFound)

	w := doRequest(router, http.MethodGet, "/v1/posts/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_likePost(t *testing.T) {
	svc, router := newTestRouter(t)

	svc.EXPECT().Like(gomock.Any(), "1", "user").Return(&entities.Post{
		ID:    "1",
		Likes: 6,
		Award: entities.AwardBronze,
	}, nil)

	w := doRequest(router, http.MethodPost, "/v1/posts/1/like", `{"userAddress": "user"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"award":"bronze"`)

	w = doRequest(router, http.MethodPost, "/v1/posts/1/like", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_dislikePost_killZone(t *testing.T) {
	svc, router := newTestRouter(t)

	svc.EXPECT().Dislike(gomock.Any(), "1", "user").Return(&entities.Post{
		ID:       "1",
		NetVotes: -3,
	}, nil)

	w := doRequest(router, http.MethodPost, "/v1/posts/1/dislike", `{"userAddress": "user"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"killZone":true`)
}

func Test_bookmarkPost(t *testing.T) {
	svc, router := newTestRouter(t)

	svc.EXPECT().Bookmark(gomock.Any(), "1", "user", "Favorites").Return(nil)

	w := doRequest(router, http.MethodPost, "/v1/posts/1/bookmark",
		`{"userAddress": "user", "collection": "Favorites"}`)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func Test_tipPost(t *testing.T) {
	svc, router := newTestRouter(t)

	svc.EXPECT().Tip(gomock.Any(), "1", "sender", decimal.RequireFromString("0.1")).
		Return(&entities.CollectModule{
			ID:               "cid",
			PostID:           "1",
			RecipientAddress: "author",
			TotalCollected:   decimal.RequireFromString("0.1"),
			CollectorsCount:  1,
		}, nil)

	w := doRequest(router, http.MethodPost, "/v1/posts/1/tip",
		`{"senderAddress": "sender", "amount": "0.1"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"id":"cid","postId":"1","recipientAddress":"author","collectPrice":"0","totalCollected":"0.1","collectorsCount":1}`,
		w.Body.String())
}

func Test_tipPost_invalidAmount(t *testing.T) {
	svc, router := newTestRouter(t)

	svc.EXPECT().Tip(gomock.Any(), "1", "sender", gomock.Any()).Return(nil, service.ErrInvalidAmount)

	w := doRequest(router, http.MethodPost, "/v1/posts/1/tip",
		`{"senderAddress": "sender", "amount": "0"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_createProfile_conflict(t *testing.T) {
	svc, router := newTestRouter(t)

	svc.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).Return(nil, service.ErrHandleTaken)

	w := doRequest(router, http.MethodPost, "/v1/profiles",
		`{"address": "addr2", "handle": "Alice"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func Test_checkHandle(t *testing.T) {
	svc, router := newTestRouter(t)

	svc.EXPECT().CheckHandle(gomock.Any(), "alice").Return(false, nil)

	w := doRequest(router, http.MethodGet, "/v1/profiles/handle/alice/availability", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"available":false}`, w.Body.String())
}

func Test_getProfile(t *testing.T) {
	svc, router := newTestRouter(t)

	timestamp := time.Unix(100, 0)

	svc.EXPECT().GetProfileByAddress(gomock.Any(), "addr").Return(&entities.Profile{
		ID:               "pid",
		Address:          "addr",
		Handle:           "alice",
		UserCreditRating: 0.01,
		CreatedAt:        timestamp,
		UpdatedAt:        timestamp,
	}, nil)

	w := doRequest(router, http.MethodGet, "/v1/profiles/addr", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"id":"pid","address":"addr","handle":"alice","socialLinks":{},"userCreditRating":"0.01","createdAt":100,"updatedAt":100}`,
		w.Body.String())
}
