package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoArmGo/UnsplashGateway/internal/adapter/unsplash"
	"github.com/GoArmGo/UnsplashGateway/internal/config"
	"github.com/GoArmGo/UnsplashGateway/internal/placeholder"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func newTestApp(reload func() (*config.Config, error)) *App {
	cfg := &config.Config{
		UnsplashURL:       "https://example.com/",
		UnsplashAccessKey: "first",
		RequestTimeout:    time.Second,
		PlaceholderSize:   "thumb",
	}
	stream := unsplash.NewStream()
	stream.Publish(cfg.Unsplash())
	logger := slog.New(slog.DiscardHandler)

	return NewApp(Deps{
		Config:       cfg,
		Logger:       logger,
		ConfigStream: stream,
		Unsplash:     unsplash.NewClient(stream),
		Placeholders: placeholder.NewSequencer(nil),
		Reload:       reload,
	})
}

func TestApp_WatchReloadRotatesCredential(t *testing.T) {
	credentials := []string{"second", ""}
	a := newTestApp(func() (*config.Config, error) {
		key := credentials[0]
		credentials = credentials[1:]
		return &config.Config{UnsplashURL: "https://example.com/", UnsplashAccessKey: key}, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	signals := make(chan os.Signal)
	done := make(chan struct{})
	go func() {
		a.watchReload(ctx, signals)
		close(done)
	}()

	signals <- syscall.SIGHUP
	require.Eventually(t, func() bool {
		cfg, err := a.ConfigStream.Next(ctx)
		return err == nil && cfg.Credential == "Client-ID second"
	}, time.Second, 5*time.Millisecond)

	// Пустой ключ публикуется и обнаруживается валидацией клиента.
	signals <- syscall.SIGHUP
	require.Eventually(t, func() bool {
		cfg, err := a.ConfigStream.Next(ctx)
		return err == nil && errors.Is(unsplash.Validate(cfg), unsplash.ErrCredentialMissing)
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done
}

func TestApp_ReloadError(t *testing.T) {
	loadErr := errors.New("bad env")
	a := newTestApp(func() (*config.Config, error) { return nil, loadErr })

	assert.ErrorIs(t, a.reloadUnsplash(), loadErr)

	cfg, err := a.ConfigStream.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Client-ID first", cfg.Credential)
}

func TestApp_RouterHealthz(t *testing.T) {
	a := newTestApp(nil)

	rec := httptest.NewRecorder()
	a.router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = httptest.NewRecorder()
	a.router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/photos/abc/download", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestApp_RouterZeroTimeoutDisablesDeadline(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"id":"abc"}`)
	}))
	t.Cleanup(upstream.Close)

	stream := unsplash.NewStream()
	stream.Publish(&unsplash.Config{BaseURL: upstream.URL, Credential: "Client-ID key"})
	a := NewApp(Deps{
		Config:       &config.Config{RequestTimeout: 0, PlaceholderSize: "thumb"},
		Logger:       slog.New(slog.DiscardHandler),
		ConfigStream: stream,
		Unsplash:     unsplash.NewClient(stream, unsplash.WithHTTPClient(upstream.Client())),
		Placeholders: placeholder.NewSequencer(nil),
	})

	rec := httptest.NewRecorder()
	a.router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/photos/abc", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"abc"`)
}

func TestApp_ShutdownClosesInReverseOrder(t *testing.T) {
	var order []string
	a := newTestApp(nil)
	a.Closers = []io.Closer{
		closerFunc(func() error { order = append(order, "logfile"); return nil }),
		closerFunc(func() error { order = append(order, "rabbitmq"); return errors.New("busy") }),
	}

	err := a.Shutdown()
	assert.Error(t, err)
	assert.Equal(t, []string{"rabbitmq", "logfile"}, order)
}

func TestApp_RunUnknownMode(t *testing.T) {
	a := newTestApp(nil)
	err := a.Run(context.Background(), "batch")
	assert.ErrorContains(t, err, "неизвестный режим")
}

func TestApp_RunWorkerRequiresDependencies(t *testing.T) {
	a := newTestApp(nil)
	err := a.Run(context.Background(), ModeWorker)
	assert.Error(t, err)
}
