package ports

import (
	"context"
	"io"
)

// FileStorage — порт для хранения бинарных данных (самих изображений).
type FileStorage interface {
	// UploadFile загружает файл под ключом key и возвращает его URL.
	UploadFile(ctx context.Context, key string, reader io.Reader, contentType string) (string, error)
}
