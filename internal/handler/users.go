package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GoArmGo/UnsplashGateway/internal/adapter/unsplash"
)

// User — GET /users/{username}
func (h *Handler) User(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	serve(h, w, r, "User", func(ctx context.Context) (*unsplash.User, error) {
		return h.unsplash.User(ctx, username)
	})
}

// UserPortfolio — GET /users/{username}/portfolio
func (h *Handler) UserPortfolio(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	serve(h, w, r, "UserPortfolio", func(ctx context.Context) (unsplash.Portfolio, error) {
		url, err := h.unsplash.UserPortfolio(ctx, username)
		return unsplash.Portfolio{URL: url}, err
	})
}

// UserPhotos — GET /users/{username}/photos
func (h *Handler) UserPhotos(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	q := params(r)
	opts := unsplash.UserPhotosOptions{
		Page:        q.Int("page"),
		PerPage:     q.Int("per_page"),
		OrderBy:     unsplash.OrderBy(q.String("order_by")),
		Stats:       q.Bool("stats"),
		Resolution:  unsplash.Resolution(q.String("resolution")),
		Quantity:    q.Int("quantity"),
		Orientation: unsplash.Orientation(q.String("orientation")),
	}
	if err := q.Err(); err != nil {
		h.writeError(w, r, "UserPhotos", err)
		return
	}
	serve(h, w, r, "UserPhotos", func(ctx context.Context) ([]unsplash.Photo, error) {
		return h.unsplash.UserPhotos(ctx, username, opts)
	})
}

// UserLikes — GET /users/{username}/likes
func (h *Handler) UserLikes(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	q := params(r)
	opts := userListOptions(q)
	if err := q.Err(); err != nil {
		h.writeError(w, r, "UserLikes", err)
		return
	}
	serve(h, w, r, "UserLikes", func(ctx context.Context) ([]unsplash.Photo, error) {
		return h.unsplash.UserLikes(ctx, username, opts)
	})
}

// UserCollections — GET /users/{username}/collections
func (h *Handler) UserCollections(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	q := params(r)
	opts := userListOptions(q)
	if err := q.Err(); err != nil {
		h.writeError(w, r, "UserCollections", err)
		return
	}
	serve(h, w, r, "UserCollections", func(ctx context.Context) ([]unsplash.Collection, error) {
		return h.unsplash.UserCollections(ctx, username, opts)
	})
}

// UserStatistics — GET /users/{username}/statistics
func (h *Handler) UserStatistics(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	q := params(r)
	opts := statisticsOptions(q)
	if err := q.Err(); err != nil {
		h.writeError(w, r, "UserStatistics", err)
		return
	}
	serve(h, w, r, "UserStatistics", func(ctx context.Context) (*unsplash.UserStatistics, error) {
		return h.unsplash.UserStatistics(ctx, username, opts)
	})
}

func userListOptions(q *queryParams) unsplash.UserListOptions {
	return unsplash.UserListOptions{
		Page:    q.Int("page"),
		PerPage: q.Int("per_page"),
		OrderBy: unsplash.OrderBy(q.String("order_by")),
	}
}
