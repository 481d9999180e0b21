package unsplash

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const (
	photosPath = "photos"
	randomPath = "photos/random"
	searchPath = "search/photos"
)

// PhotosOptions — параметры списка фотографий.
type PhotosOptions struct {
	Page    int
	PerPage int
	OrderBy OrderBy
}

// RandomPhotosOptions — параметры photos/random. Count от 1 до 30,
// ноль означает значение по умолчанию на стороне API.
type RandomPhotosOptions struct {
	Collections   []string
	Topics        []string
	Username      string
	Query         string
	Orientation   Orientation
	ContentFilter ContentFilter
	Count         int
}

// SearchPhotosOptions — параметры поиска фотографий.
type SearchPhotosOptions struct {
	Page          int
	PerPage       int
	OrderBy       SearchOrderBy
	Collections   []string
	ContentFilter ContentFilter
	Color         Color
	Orientation   Orientation
}

// StatisticsOptions — параметры исторической статистики.
type StatisticsOptions struct {
	Resolution Resolution
	Quantity   int
}

// Photos получает одну страницу общего списка фотографий.
func (c *Client) Photos(ctx context.Context, opts PhotosOptions) ([]Photo, error) {
	return call[[]Photo](ctx, c, get(photosPath,
		number("page", opts.Page),
		number("per_page", opts.PerPage),
		text("order_by", opts.OrderBy),
	))
}

// Photo получает одну фотографию по ID.
func (c *Client) Photo(ctx context.Context, id string) (*Photo, error) {
	if id == "" {
		return nil, ErrPhotoIDMissing
	}
	return call[*Photo](ctx, c, get(resourcePath(photosPath, id)))
}

// RandomPhotos получает случайные фотографии. Без Count API отвечает
// одним объектом, он возвращается как срез из одного элемента.
func (c *Client) RandomPhotos(ctx context.Context, opts RandomPhotosOptions) ([]Photo, error) {
	if opts.Count < 0 || opts.Count > MaxRandomCount {
		return nil, ErrCountOutOfRange
	}

	raw, err := call[json.RawMessage](ctx, c, get(randomPath,
		list("collections", opts.Collections),
		list("topics", opts.Topics),
		text("username", opts.Username),
		text("query", opts.Query),
		text("orientation", opts.Orientation),
		text("content_filter", opts.ContentFilter),
		number("count", opts.Count),
	))
	if err != nil {
		return nil, err
	}
	return decodePhotoList(raw)
}

func decodePhotoList(raw json.RawMessage) ([]Photo, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] == '{' {
		var photo Photo
		if err := json.Unmarshal(trimmed, &photo); err != nil {
			return nil, fmt.Errorf("ошибка декодирования JSON ответа Unsplash: %w", err)
		}
		return []Photo{photo}, nil
	}
	var photos []Photo
	if err := json.Unmarshal(trimmed, &photos); err != nil {
		return nil, fmt.Errorf("ошибка декодирования JSON ответа Unsplash: %w", err)
	}
	return photos, nil
}

// SearchPhotos получает одну страницу результатов поиска.
func (c *Client) SearchPhotos(ctx context.Context, query string, opts SearchPhotosOptions) (*SearchResult, error) {
	if query == "" {
		return nil, ErrQueryMissing
	}
	return call[*SearchResult](ctx, c, get(searchPath,
		text("query", query),
		number("page", opts.Page),
		number("per_page", opts.PerPage),
		text("order_by", opts.OrderBy),
		list("collections", opts.Collections),
		text("content_filter", opts.ContentFilter),
		text("color", opts.Color),
		text("orientation", opts.Orientation),
	))
}

// DownloadPhoto отмечает скачивание фотографии. Адрес берётся из
// links.download_location и пересаживается на настроенный базовый URL
// с сохранением строки запроса, так что один базовый URL (например,
// прокси) обслуживает и каталог, и учёт скачиваний.
func (c *Client) DownloadPhoto(ctx context.Context, photo *Photo) (*Download, error) {
	if photo == nil || photo.Links.DownloadLocation == "" {
		return nil, ErrDownloadLocationMissing
	}
	location, err := url.Parse(photo.Links.DownloadLocation)
	if err != nil {
		return nil, fmt.Errorf("unsplash: некорректный download_location %q: %w", photo.Links.DownloadLocation, err)
	}
	return call[*Download](ctx, c, request{
		method: http.MethodGet,
		path:   strings.TrimPrefix(location.EscapedPath(), "/"),
		query:  location.RawQuery,
	})
}

// LikePhoto ставит отметку "нравится" от имени текущего пользователя.
func (c *Client) LikePhoto(ctx context.Context, id string) (*Like, error) {
	return c.like(ctx, http.MethodPost, id)
}

// UnlikePhoto снимает отметку "нравится".
func (c *Client) UnlikePhoto(ctx context.Context, id string) (*Like, error) {
	return c.like(ctx, http.MethodDelete, id)
}

func (c *Client) like(ctx context.Context, method, id string) (*Like, error) {
	if id == "" {
		return nil, ErrPhotoIDMissing
	}
	return call[*Like](ctx, c, request{method: method, path: resourcePath(photosPath, id, "like")})
}

// PhotoStatistics получает статистику фотографии.
func (c *Client) PhotoStatistics(ctx context.Context, id string, opts StatisticsOptions) (*PhotoStatistics, error) {
	if id == "" {
		return nil, ErrPhotoIDMissing
	}
	return call[*PhotoStatistics](ctx, c, get(resourcePath(photosPath, id, "statistics"),
		text("resolution", opts.Resolution),
		number("quantity", opts.Quantity),
	))
}
