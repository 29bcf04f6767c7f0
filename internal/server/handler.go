package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/KajamHamza/Blocks/internal/service"
)

var errInvalidRequest = errors.New("invalid request")

// createPost handles POST /v1/posts.
func (s server) createPost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode request")
		return
	}

	if req.AuthorAddress == "" {
		writeError(w, http.StatusBadRequest, "authorAddress is required")
		return
	}

	post, err := s.s.CreatePost(r.Context(), service.CreatePostParams{
		Content:       req.Content,
		ImageURL:      req.ImageURL,
		AuthorAddress: req.AuthorAddress,
	})
	if err != nil {
		s.writeServiceError(w, r, err, "failed to create post")
		return
	}

	writeOK(w, http.StatusCreated, toAPIPost(post))
}

// listPosts handles GET /v1/posts.
//
// Supported query parameters: author, latest, limit.
func (s server) listPosts(w http.ResponseWriter, r *http.Request) {
	params, err := extractListParamsFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	posts, err := s.s.ListPosts(r.Context(), *params)
	if err != nil {
		s.writeServiceError(w, r, err, "failed to list posts")
		return
	}

	writeOK(w, http.StatusOK, ListPostsResponse{Posts: toAPIPosts(posts)})
}

// getPost handles GET /v1/posts/{id}.
func (s server) getPost(w http.ResponseWriter, r *http.Request) {
	post, err := s.s.GetPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err, "failed to get post")
		return
	}

	writeOK(w, http.StatusOK, toAPIPost(post))
}

// likePost handles POST /v1/posts/{id}/like.
func (s server) likePost(w http.ResponseWriter, r *http.Request) {
	req, ok := extractInteraction(w, r)
	if !ok {
		return
	}

	post, err := s.s.Like(r.Context(), chi.URLParam(r, "id"), req.UserAddress)
	if err != nil {
		s.writeServiceError(w, r, err, "failed to like post")
		return
	}

	writeOK(w, http.StatusOK, toAPIPost(post))
}

// dislikePost handles POST /v1/posts/{id}/dislike.
func (s server) dislikePost(w http.ResponseWriter, r *http.Request) {
	req, ok := extractInteraction(w, r)
	if !ok {
		return
	}

	post, err := s.s.Dislike(r.Context(), chi.URLParam(r, "id"), req.UserAddress)
	if err != nil {
		s.writeServiceError(w, r, err, "failed to dislike post")
		return
	}

	writeOK(w, http.StatusOK, toAPIPost(post))
}

// bookmarkPost handles POST /v1/posts/{id}/bookmark.
func (s server) bookmarkPost(w http.ResponseWriter, r *http.Request) {
	req, ok := extractInteraction(w, r)
	if !ok {
		return
	}

	if err := s.s.Bookmark(r.Context(), chi.URLParam(r, "id"), req.UserAddress, req.Collection); err != nil {
		s.writeServiceError(w, r, err, "failed to bookmark post")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// tipPost handles POST /v1/posts/{id}/tip.
func (s server) tipPost(w http.ResponseWriter, r *http.Request) {
	var req TipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode request")
		return
	}

	if req.SenderAddress == "" {
		writeError(w, http.StatusBadRequest, "senderAddress is required")
		return
	}

	collect, err := s.s.Tip(r.Context(), chi.URLParam(r, "id"), req.SenderAddress, req.Amount)
	if err != nil {
		s.writeServiceError(w, r, err, "failed to tip post")
		return
	}

	writeOK(w, http.StatusOK, toAPICollect(collect))
}

// createProfile handles POST /v1/profiles.
func (s server) createProfile(w http.ResponseWriter, r *http.Request) {
	var req CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode request")
		return
	}

	if req.Address == "" || req.Handle == "" {
		writeError(w, http.StatusBadRequest, "address and handle are required")
		return
	}

	profile, err := s.s.CreateProfile(r.Context(), service.CreateProfileParams{
		Address:     req.Address,
		Handle:      req.Handle,
		Bio:         req.Bio,
		Avatar:      req.Avatar,
		SocialLinks: entitiesSocialLinks(req.SocialLinks),
	})
	if err != nil {
		s.writeServiceError(w, r, err, "failed to create profile")
		return
	}

	writeOK(w, http.StatusCreated, toAPIProfile(profile))
}

// getProfile handles GET /v1/profiles/{address}.
func (s server) getProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.s.GetProfileByAddress(r.Context(), chi.URLParam(r, "address"))
	if err != nil {
		s.writeServiceError(w, r, err, "failed to get profile")
		return
	}

	writeOK(w, http.StatusOK, toAPIProfile(profile))
}

// checkHandle handles GET /v1/profiles/handle/{handle}/availability.
func (s server) checkHandle(w http.ResponseWriter, r *http.Request) {
	available, err := s.s.CheckHandle(r.Context(), chi.URLParam(r, "handle"))
	if err != nil {
		s.writeServiceError(w, r, err, "failed to check handle")
		return
	}

	writeOK(w, http.StatusOK, HandleAvailabilityResponse{Available: available})
}

// listBookmarks handles GET /v1/bookmarks/{address}.
func (s server) listBookmarks(w http.ResponseWriter, r *http.Request) {
	bookmarks, err := s.s.ListBookmarks(r.Context(), chi.URLParam(r, "address"), r.URL.Query().Get("collection"))
	if err != nil {
		s.writeServiceError(w, r, err, "failed to list bookmarks")
		return
	}

	writeOK(w, http.StatusOK, ListBookmarksResponse{Bookmarks: toAPIPosts(bookmarks)})
}

// flaggedPosts handles GET /v1/moderation/flagged.
func (s server) flaggedPosts(w http.ResponseWriter, _ *http.Request) {
	writeOK(w, http.StatusOK, FlaggedPostsResponse{Posts: s.f.Flagged()})
}

func (s server) writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	switch {
	case errors.Is(err, service.ErrEmptyContent), errors.Is(err, service.ErrInvalidAmount):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrHandleTaken):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeInternalError(r.Context(), w, fmt.Sprintf("%s: %s", message, err.Error()))
	}
}

func extractInteraction(w http.ResponseWriter, r *http.Request) (InteractionRequest, bool) {
	var req InteractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode request")
		return req, false
	}

	if req.UserAddress == "" {
		writeError(w, http.StatusBadRequest, "userAddress is required")
		return req, false
	}

	return req, true
}

func extractListParamsFromQuery(q url.Values) (*service.ListPostsParams, error) {
	out := service.ListPostsParams{
		Limit: defaultLimit,
	}

	out.Author = q.Get("author")

	if s := q.Get("latest"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse latest", errInvalidRequest)
		}
		out.Latest = v
	}

	if s := q.Get("limit"); s != "" {
		limit, err := strconv.ParseUint(s, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse limit", errInvalidRequest)
		}

		if limit == 0 || limit > maxLimit {
			return nil, fmt.Errorf("%w: limit is out of bounds", errInvalidRequest)
		}

		out.Limit = uint16(limit)
	}

	return &out, nil
}
