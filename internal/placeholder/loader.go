package placeholder

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strings"

	_ "golang.org/x/image/webp"
)

// Loader загружает реальное изображение. Возврат nil означает, что
// изображение готово к показу.
type Loader interface {
	Load(ctx context.Context, url string) error
}

// LoaderFunc позволяет использовать функцию как Loader.
type LoaderFunc func(ctx context.Context, url string) error

func (f LoaderFunc) Load(ctx context.Context, url string) error {
	return f(ctx, url)
}

// HTTPLoader скачивает изображение по HTTP и проверяет, что тело
// действительно является картинкой.
type HTTPLoader struct {
	Client *http.Client
}

func (l HTTPLoader) Load(ctx context.Context, url string) error {
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("ошибка создания запроса изображения: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("ошибка загрузки изображения: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("изображение недоступно, статус: %d", resp.StatusCode)
	}

	if _, _, err := image.DecodeConfig(resp.Body); err != nil {
		// Незнакомый формат (например, AVIF) принимаем по Content-Type.
		if errors.Is(err, image.ErrFormat) && strings.HasPrefix(resp.Header.Get("Content-Type"), "image/") {
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}
		return fmt.Errorf("ответ не является изображением: %w", err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
