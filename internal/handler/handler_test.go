package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoArmGo/UnsplashGateway/internal/adapter/unsplash"
	"github.com/GoArmGo/UnsplashGateway/internal/messaging/payloads"
	"github.com/GoArmGo/UnsplashGateway/internal/placeholder"
)

const testBlurHash = "LEHV6nWB2yk8pyo0adR*.7kCMdnj"

type fakePublisher struct {
	mu       sync.Mutex
	payloads []payloads.DownloadJobPayload
	err      error
}

func (p *fakePublisher) PublishDownloadJob(ctx context.Context, payload payloads.DownloadJobPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.payloads = append(p.payloads, payload)
	return nil
}

type testEnv struct {
	router    http.Handler
	publisher *fakePublisher

	mu   sync.Mutex
	uris []string
}

func (e *testEnv) upstreamURIs() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.uris...)
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{publisher: &fakePublisher{}}

	up := chi.NewRouter()
	up.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			env.mu.Lock()
			env.uris = append(env.uris, r.Method+" "+r.URL.RequestURI())
			env.mu.Unlock()
			next.ServeHTTP(w, r)
		})
	})
	up.Get("/photos", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"id":"p1"},{"id":"p2"}]`)
	})
	up.Get("/photos/{id}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") == "missing" {
			http.Error(w, `{"errors":["Couldn't find Photo"]}`, http.StatusNotFound)
			return
		}
		_, _ = io.WriteString(w, `{"id":"abc","width":4000,"height":3000,"blur_hash":"`+testBlurHash+`",
			"urls":{"thumb":"https://images.example.com/abc-thumb","regular":"https://images.example.com/broken"},
			"links":{"download_location":"https://api.unsplash.com/photos/abc/download?ixid=1"}}`)
	})
	up.Get("/photos/{id}/download", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"url":"https://images.example.com/abc.jpg"}`)
	})
	up.Post("/photos/{id}/like", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"photo":{"id":"abc","liked_by_user":true},"user":{"username":"me"}}`)
	})
	up.Get("/search/photos", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"total":1,"total_pages":1,"results":[{"id":"s1"}]}`)
	})
	up.Get("/topics", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	})
	up.Get("/users/{username}/portfolio", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"url":"https://portfolio.example.com"}`)
	})
	upstream := httptest.NewServer(up)
	t.Cleanup(upstream.Close)

	logger := slog.New(slog.DiscardHandler)
	client := unsplash.NewClient(
		unsplash.Static(&unsplash.Config{BaseURL: upstream.URL, Credential: "Client-ID key"}),
		unsplash.WithHTTPClient(upstream.Client()),
	)
	loader := placeholder.LoaderFunc(func(ctx context.Context, url string) error {
		if strings.Contains(url, "broken") {
			return errors.New("404 from CDN")
		}
		return nil
	})
	sequencer := placeholder.NewSequencer(loader)

	r := chi.NewRouter()
	r.Use(RequestLogger(logger))
	NewHandler(client, sequencer, env.publisher, unsplash.SizeThumb, logger).Routes(r)
	env.router = r
	return env
}

func (e *testEnv) do(method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestHandler_ProxiesWithOrderedQuery(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/photos?order_by=latest&per_page=2&page=1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var photos []unsplash.Photo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &photos))
	assert.Len(t, photos, 2)

	rec = env.do(http.MethodGet, "/topics?ids=t1&ids=t2")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, []string{
		"GET /photos?page=1&per_page=2&order_by=latest",
		"GET /topics?ids=t1,t2",
	}, env.upstreamURIs())
}

func TestHandler_PortfolioAndLike(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/users/test/portfolio")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"url":"https://portfolio.example.com"}`, rec.Body.String())

	rec = env.do(http.MethodPost, "/photos/abc/like")
	require.Equal(t, http.StatusOK, rec.Code)
	var like unsplash.Like
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &like))
	assert.True(t, like.Photo.LikedByUser)
}

func TestHandler_DownloadPhotoTracksDownload(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/photos/abc/download")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"url":"https://images.example.com/abc.jpg"}`, rec.Body.String())
	assert.Equal(t, []string{"GET /photos/abc", "GET /photos/abc/download?ixid=1"}, env.upstreamURIs())
}

func TestHandler_ErrorMapping(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name   string
		method string
		target string
		want   int
	}{
		{"некорректное число", http.MethodGet, "/photos?page=abc", http.StatusBadRequest},
		{"отрицательное число", http.MethodGet, "/photos?per_page=-1", http.StatusBadRequest},
		{"некорректный bool", http.MethodGet, "/users/test/photos?stats=maybe", http.StatusBadRequest},
		{"пустой поиск", http.MethodGet, "/search/photos", http.StatusBadRequest},
		{"count вне диапазона", http.MethodGet, "/photos/random?count=31", http.StatusBadRequest},
		{"неизвестный размер", http.MethodGet, "/photos/abc/placeholder?size=huge", http.StatusBadRequest},
		{"статус Unsplash", http.MethodGet, "/photos/missing", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(tt.method, tt.target)
			assert.Equal(t, tt.want, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}

	for _, uri := range env.upstreamURIs() {
		assert.Equal(t, "GET /photos/missing", uri)
	}
}

func TestHandler_UpstreamUnavailable(t *testing.T) {
	closed := httptest.NewServer(http.NotFoundHandler())
	base := closed.URL
	closed.Close()

	logger := slog.New(slog.DiscardHandler)
	client := unsplash.NewClient(unsplash.Static(&unsplash.Config{BaseURL: base, Credential: "Client-ID key"}))
	r := chi.NewRouter()
	NewHandler(client, placeholder.NewSequencer(nil), nil, "", logger).Routes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/photos", nil))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandler_PhotoPlaceholderStream(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/photos/abc/placeholder")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	placeholderAt := strings.Index(body, "event: placeholder\ndata: data:image/png;base64,")
	imageAt := strings.Index(body, "event: image\ndata: https://images.example.com/abc-thumb\n\n")
	require.GreaterOrEqual(t, placeholderAt, 0)
	require.Greater(t, imageAt, placeholderAt)
	assert.NotContains(t, body, "event: error")
}

func TestHandler_PhotoPlaceholderLoadFailure(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/photos/abc/placeholder?size=regular")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "event: placeholder\n")
	assert.Contains(t, body, "event: error\ndata: placeholder: не удалось загрузить изображение https://images.example.com/broken")
	assert.NotContains(t, body, "event: image")
}

func TestHandler_EnqueueDownload(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/photos/abc/download")
	require.Equal(t, http.StatusAccepted, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "abc", body["photo_id"])
	assert.Equal(t, "queued", body["status"])

	require.Len(t, env.publisher.payloads, 1)
	assert.Equal(t, "abc", env.publisher.payloads[0].PhotoID)
	assert.Equal(t, body["job_id"], env.publisher.payloads[0].JobID.String())

	env.publisher.err = errors.New("broker down")
	rec = env.do(http.MethodPost, "/photos/abc/download")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestWriteEvent(t *testing.T) {
	var b strings.Builder
	require.NoError(t, writeEvent(&b, "error", "line1\nline2"))
	assert.Equal(t, "event: error\ndata: line1\ndata: line2\n\n", b.String())
}
