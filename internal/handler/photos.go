package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GoArmGo/UnsplashGateway/internal/adapter/unsplash"
)

// Photos — GET /photos
func (h *Handler) Photos(w http.ResponseWriter, r *http.Request) {
	q := params(r)
	opts := unsplash.PhotosOptions{
		Page:    q.Int("page"),
		PerPage: q.Int("per_page"),
		OrderBy: unsplash.OrderBy(q.String("order_by")),
	}
	if err := q.Err(); err != nil {
		h.writeError(w, r, "Photos", err)
		return
	}
	serve(h, w, r, "Photos", func(ctx context.Context) ([]unsplash.Photo, error) {
		return h.unsplash.Photos(ctx, opts)
	})
}

// RandomPhotos — GET /photos/random
func (h *Handler) RandomPhotos(w http.ResponseWriter, r *http.Request) {
	q := params(r)
	opts := unsplash.RandomPhotosOptions{
		Collections:   q.List("collections"),
		Topics:        q.List("topics"),
		Username:      q.String("username"),
		Query:         q.String("query"),
		Orientation:   unsplash.Orientation(q.String("orientation")),
		ContentFilter: unsplash.ContentFilter(q.String("content_filter")),
		Count:         q.Int("count"),
	}
	if err := q.Err(); err != nil {
		h.writeError(w, r, "RandomPhotos", err)
		return
	}
	serve(h, w, r, "RandomPhotos", func(ctx context.Context) ([]unsplash.Photo, error) {
		return h.unsplash.RandomPhotos(ctx, opts)
	})
}

// Photo — GET /photos/{id}
func (h *Handler) Photo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	serve(h, w, r, "Photo", func(ctx context.Context) (*unsplash.Photo, error) {
		return h.unsplash.Photo(ctx, id)
	})
}

// SearchPhotos — GET /search/photos?query=
func (h *Handler) SearchPhotos(w http.ResponseWriter, r *http.Request) {
	q := params(r)
	query := q.String("query")
	opts := unsplash.SearchPhotosOptions{
		Page:          q.Int("page"),
		PerPage:       q.Int("per_page"),
		OrderBy:       unsplash.SearchOrderBy(q.String("order_by")),
		Collections:   q.List("collections"),
		ContentFilter: unsplash.ContentFilter(q.String("content_filter")),
		Color:         unsplash.Color(q.String("color")),
		Orientation:   unsplash.Orientation(q.String("orientation")),
	}
	if err := q.Err(); err != nil {
		h.writeError(w, r, "SearchPhotos", err)
		return
	}
	serve(h, w, r, "SearchPhotos", func(ctx context.Context) (*unsplash.SearchResult, error) {
		return h.unsplash.SearchPhotos(ctx, query, opts)
	})
}

// DownloadPhoto — GET /photos/{id}/download: регистрирует скачивание в
// Unsplash и возвращает ссылку на файл.
func (h *Handler) DownloadPhoto(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	serve(h, w, r, "DownloadPhoto", func(ctx context.Context) (*unsplash.Download, error) {
		photo, err := h.unsplash.Photo(ctx, id)
		if err != nil {
			return nil, err
		}
		return h.unsplash.DownloadPhoto(ctx, photo)
	})
}

// LikePhoto — POST /photos/{id}/like
func (h *Handler) LikePhoto(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	serve(h, w, r, "LikePhoto", func(ctx context.Context) (*unsplash.Like, error) {
		return h.unsplash.LikePhoto(ctx, id)
	})
}

// UnlikePhoto — DELETE /photos/{id}/like
func (h *Handler) UnlikePhoto(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	serve(h, w, r, "UnlikePhoto", func(ctx context.Context) (*unsplash.Like, error) {
		return h.unsplash.UnlikePhoto(ctx, id)
	})
}

// PhotoStatistics — GET /photos/{id}/statistics
func (h *Handler) PhotoStatistics(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	q := params(r)
	opts := statisticsOptions(q)
	if err := q.Err(); err != nil {
		h.writeError(w, r, "PhotoStatistics", err)
		return
	}
	serve(h, w, r, "PhotoStatistics", func(ctx context.Context) (*unsplash.PhotoStatistics, error) {
		return h.unsplash.PhotoStatistics(ctx, id, opts)
	})
}

func statisticsOptions(q *queryParams) unsplash.StatisticsOptions {
	return unsplash.StatisticsOptions{
		Resolution: unsplash.Resolution(q.String("resolution")),
		Quantity:   q.Int("quantity"),
	}
}
