package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GoArmGo/UnsplashGateway/internal/adapter/unsplash"
)

// Collections — GET /collections
func (h *Handler) Collections(w http.ResponseWriter, r *http.Request) {
	q := params(r)
	opts := unsplash.PageOptions{Page: q.Int("page"), PerPage: q.Int("per_page")}
	if err := q.Err(); err != nil {
		h.writeError(w, r, "Collections", err)
		return
	}
	serve(h, w, r, "Collections", func(ctx context.Context) ([]unsplash.Collection, error) {
		return h.unsplash.Collections(ctx, opts)
	})
}

// Collection — GET /collections/{id}
func (h *Handler) Collection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	serve(h, w, r, "Collection", func(ctx context.Context) (*unsplash.Collection, error) {
		return h.unsplash.Collection(ctx, id)
	})
}

// CollectionPhotos — GET /collections/{id}/photos
func (h *Handler) CollectionPhotos(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	q := params(r)
	opts := unsplash.CollectionPhotosOptions{
		Page:        q.Int("page"),
		PerPage:     q.Int("per_page"),
		Orientation: unsplash.Orientation(q.String("orientation")),
	}
	if err := q.Err(); err != nil {
		h.writeError(w, r, "CollectionPhotos", err)
		return
	}
	serve(h, w, r, "CollectionPhotos", func(ctx context.Context) ([]unsplash.Photo, error) {
		return h.unsplash.CollectionPhotos(ctx, id, opts)
	})
}

// RelatedCollections — GET /collections/{id}/related
func (h *Handler) RelatedCollections(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	serve(h, w, r, "RelatedCollections", func(ctx context.Context) ([]unsplash.Collection, error) {
		return h.unsplash.RelatedCollections(ctx, id)
	})
}

// Topics — GET /topics
func (h *Handler) Topics(w http.ResponseWriter, r *http.Request) {
	q := params(r)
	opts := unsplash.TopicsOptions{
		IDs:     q.List("ids"),
		Page:    q.Int("page"),
		PerPage: q.Int("per_page"),
		OrderBy: unsplash.TopicOrderBy(q.String("order_by")),
	}
	if err := q.Err(); err != nil {
		h.writeError(w, r, "Topics", err)
		return
	}
	serve(h, w, r, "Topics", func(ctx context.Context) ([]unsplash.Topic, error) {
		return h.unsplash.Topics(ctx, opts)
	})
}

// Topic — GET /topics/{id}
func (h *Handler) Topic(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	serve(h, w, r, "Topic", func(ctx context.Context) (*unsplash.Topic, error) {
		return h.unsplash.Topic(ctx, id)
	})
}

// TopicPhotos — GET /topics/{id}/photos
func (h *Handler) TopicPhotos(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	q := params(r)
	opts := unsplash.TopicPhotosOptions{
		Page:        q.Int("page"),
		PerPage:     q.Int("per_page"),
		Orientation: unsplash.Orientation(q.String("orientation")),
		OrderBy:     unsplash.OrderBy(q.String("order_by")),
	}
	if err := q.Err(); err != nil {
		h.writeError(w, r, "TopicPhotos", err)
		return
	}
	serve(h, w, r, "TopicPhotos", func(ctx context.Context) ([]unsplash.Photo, error) {
		return h.unsplash.TopicPhotos(ctx, id, opts)
	})
}
