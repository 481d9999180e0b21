// internal/adapter/unsplash/client.go
package unsplash

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL — базовый URL публичного Unsplash API.
	DefaultBaseURL = "https://api.unsplash.com/"

	authorizationHeader = "authorization"
	maxErrorBody        = 4 << 10
)

// Client выполняет запросы к Unsplash API. Безопасен для конкурентного
// использования: единственное общее состояние — источник конфигурации,
// который клиент только читает.
type Client struct {
	source     Source
	httpClient *http.Client
	logger     *slog.Logger
}

// Option настраивает Client.
type Option func(*Client)

// WithHTTPClient задаёт HTTP-клиент. Таймаутов сам клиент не добавляет:
// отмена и ограничение времени задаются через ctx.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger задаёт логгер; по умолчанию логи отбрасываются.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient создает клиент поверх источника конфигурации.
func NewClient(source Source, opts ...Option) *Client {
	if source == nil {
		source = Static(nil)
	}
	c := &Client{
		source:     source,
		httpClient: &http.Client{},
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// request описывает один вызов: метод, относительный путь ресурса
// (уже экранированный) и готовую строку запроса.
type request struct {
	method string
	path   string
	query  string
}

func get(path string, params ...param) request {
	return request{method: http.MethodGet, path: path, query: encodeQuery(params...)}
}

// resolveConfig получает конфигурацию для текущего вызова и проверяет её.
func (c *Client) resolveConfig(ctx context.Context) (*Config, error) {
	cfg, err := c.source.Next(ctx)
	if err != nil {
		return nil, fmt.Errorf("unsplash: ожидание конфигурации: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveURL склеивает базовый URL (с гарантированным завершающим "/")
// с относительным путём ресурса.
func resolveURL(base, path, rawQuery string) (string, error) {
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("unsplash: некорректный базовый URL %q: %w", base, err)
	}
	ref, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("unsplash: некорректный путь %q: %w", path, err)
	}
	ref.RawQuery = rawQuery
	return baseURL.ResolveReference(ref).String(), nil
}

// do выполняет запрос и декодирует тело ответа в out (если out не nil).
func (c *Client) do(ctx context.Context, req request, out any) error {
	cfg, err := c.resolveConfig(ctx)
	if err != nil {
		return err
	}

	endpoint, err := resolveURL(cfg.BaseURL, req.path, req.query)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, endpoint, nil)
	if err != nil {
		return fmt.Errorf("ошибка создания HTTP-запроса: %w", err)
	}
	httpReq.Header.Set(authorizationHeader, cfg.Credential)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Warn("unsplash request failed",
			"method", req.method,
			"path", req.path,
			"error", err,
		)
		return fmt.Errorf("ошибка выполнения HTTP-запроса к Unsplash: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("unsplash request",
		"method", req.method,
		"path", req.path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{
			Method:     req.method,
			URL:        endpoint,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("ошибка декодирования JSON ответа Unsplash: %w", err)
	}
	return nil
}

// call выполняет запрос и возвращает декодированный ответ типа T.
func call[T any](ctx context.Context, c *Client, req request) (T, error) {
	var out T
	if err := c.do(ctx, req, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func resourcePath(prefix, id string, suffix ...string) string {
	parts := append([]string{prefix, url.PathEscape(id)}, suffix...)
	return strings.Join(parts, "/")
}
