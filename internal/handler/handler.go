package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/GoArmGo/UnsplashGateway/internal/adapter/unsplash"
	"github.com/GoArmGo/UnsplashGateway/internal/core/ports"
	"github.com/GoArmGo/UnsplashGateway/internal/placeholder"
)

var errBadParameter = errors.New("некорректный параметр запроса")

// Handler — HTTP-обработчики шлюза к Unsplash API.
type Handler struct {
	unsplash     *unsplash.Client
	placeholders *placeholder.Sequencer
	publisher    ports.DownloadJobPublisher
	defaultSize  unsplash.Size
	logger       *slog.Logger
}

// NewHandler создаёт новый экземпляр Handler. publisher может быть nil,
// тогда постановка задач на архивирование отвечает 503.
func NewHandler(
	client *unsplash.Client,
	placeholders *placeholder.Sequencer,
	publisher ports.DownloadJobPublisher,
	defaultSize unsplash.Size,
	logger *slog.Logger,
) *Handler {
	if defaultSize == "" {
		defaultSize = unsplash.SizeThumb
	}
	return &Handler{
		unsplash:     client,
		placeholders: placeholders,
		publisher:    publisher,
		defaultSize:  defaultSize,
		logger:       logger,
	}
}

// Routes регистрирует все маршруты шлюза.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/photos", func(r chi.Router) {
		r.Get("/", h.Photos)
		r.Get("/random", h.RandomPhotos)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Photo)
			r.Get("/statistics", h.PhotoStatistics)
			r.Get("/download", h.DownloadPhoto)
			r.Post("/download", h.EnqueueDownload)
			r.Post("/like", h.LikePhoto)
			r.Delete("/like", h.UnlikePhoto)
			r.Get("/placeholder", h.PhotoPlaceholder)
		})
	})
	r.Get("/search/photos", h.SearchPhotos)

	r.Route("/collections", func(r chi.Router) {
		r.Get("/", h.Collections)
		r.Get("/{id}", h.Collection)
		r.Get("/{id}/photos", h.CollectionPhotos)
		r.Get("/{id}/related", h.RelatedCollections)
	})

	r.Route("/topics", func(r chi.Router) {
		r.Get("/", h.Topics)
		r.Get("/{id}", h.Topic)
		r.Get("/{id}/photos", h.TopicPhotos)
	})

	r.Route("/users/{username}", func(r chi.Router) {
		r.Get("/", h.User)
		r.Get("/portfolio", h.UserPortfolio)
		r.Get("/photos", h.UserPhotos)
		r.Get("/likes", h.UserLikes)
		r.Get("/collections", h.UserCollections)
		r.Get("/statistics", h.UserStatistics)
	})
}

// respondWithJSON — отправляет JSON-ответ клиенту.
func respondWithJSON(w http.ResponseWriter, code int, payload any, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error("failed to marshal JSON response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// respondWithError — отправляет JSON-ответ с ошибкой.
func respondWithError(w http.ResponseWriter, code int, message string, logger *slog.Logger) {
	respondWithJSON(w, code, map[string]string{"error": message}, logger)
}

// statusFor сопоставляет ошибку клиента Unsplash с HTTP-статусом ответа.
func statusFor(err error) int {
	var apiErr *unsplash.APIError
	switch {
	case errors.Is(err, errBadParameter), unsplash.IsValidation(err):
		return http.StatusBadRequest
	case errors.As(err, &apiErr):
		return apiErr.StatusCode
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	code := statusFor(err)
	if code >= http.StatusInternalServerError {
		h.logger.Error("unsplash call failed", "op", op, "path", r.URL.Path, "status", code, "error", err)
	} else {
		h.logger.Warn("unsplash call rejected", "op", op, "path", r.URL.Path, "status", code, "error", err)
	}
	respondWithError(w, code, err.Error(), h.logger)
}

// serve выполняет вызов клиента и отдаёт результат как JSON.
func serve[T any](h *Handler, w http.ResponseWriter, r *http.Request, op string, call func(ctx context.Context) (T, error)) {
	result, err := call(r.Context())
	if err != nil {
		h.writeError(w, r, op, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result, h.logger)
}

// queryParams читает параметры строки запроса, запоминая первую ошибку разбора.
type queryParams struct {
	r   *http.Request
	err error
}

func params(r *http.Request) *queryParams {
	return &queryParams{r: r}
}

func (q *queryParams) String(name string) string {
	return strings.TrimSpace(q.r.URL.Query().Get(name))
}

func (q *queryParams) Int(name string) int {
	raw := q.String(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		q.fail(name, raw)
		return 0
	}
	return v
}

func (q *queryParams) Bool(name string) bool {
	raw := q.String(name)
	if raw == "" {
		return false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		q.fail(name, raw)
		return false
	}
	return v
}

// List читает список через запятую, поддерживая и повтор параметра.
func (q *queryParams) List(name string) []string {
	var items []string
	for _, raw := range q.r.URL.Query()[name] {
		for _, item := range strings.Split(raw, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
	}
	return items
}

func (q *queryParams) fail(name, raw string) {
	if q.err == nil {
		q.err = fmt.Errorf("%w: %s=%q", errBadParameter, name, raw)
	}
}

func (q *queryParams) Err() error {
	return q.err
}
