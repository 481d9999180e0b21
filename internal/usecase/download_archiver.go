package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/GoArmGo/UnsplashGateway/internal/adapter/unsplash"
	"github.com/GoArmGo/UnsplashGateway/internal/core/ports"
	"github.com/GoArmGo/UnsplashGateway/internal/domain"
	"github.com/GoArmGo/UnsplashGateway/internal/messaging/payloads"
)

const archivePrefix = "unsplash-photos"

// PhotoDownloader — часть клиента Unsplash, нужная для архивирования.
type PhotoDownloader interface {
	Photo(ctx context.Context, id string) (*unsplash.Photo, error)
	DownloadPhoto(ctx context.Context, photo *unsplash.Photo) (*unsplash.Download, error)
}

// DownloadArchiver скачивает фотографию через учёт скачиваний Unsplash
// и кладёт файл в объектное хранилище.
type DownloadArchiver struct {
	photos     PhotoDownloader
	files      ports.FileStorage
	httpClient *http.Client
	logger     *slog.Logger
}

// NewDownloadArchiver создает архиватор. nil httpClient заменяется на http.DefaultClient.
func NewDownloadArchiver(photos PhotoDownloader, files ports.FileStorage, httpClient *http.Client, logger *slog.Logger) *DownloadArchiver {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &DownloadArchiver{
		photos:     photos,
		files:      files,
		httpClient: httpClient,
		logger:     logger,
	}
}

// HandleDownloadJob обрабатывает задачу из очереди.
func (a *DownloadArchiver) HandleDownloadJob(ctx context.Context, payload payloads.DownloadJobPayload) error {
	archive, err := a.ArchivePhoto(ctx, payload.JobID, payload.PhotoID)
	if err != nil {
		return err
	}
	a.logger.Info("photo archived",
		"archive_id", archive.ID,
		"job_id", archive.JobID,
		"photo_id", archive.UnsplashID,
		"author", archive.AuthorName,
		"object_key", archive.ObjectKey,
		"object_url", archive.ObjectURL,
		"content_type", archive.ContentType,
		"width", archive.Width,
		"height", archive.Height,
		"archived_at", archive.ArchivedAt,
	)
	return nil
}

// IsPermanent сообщает, что задача не выполнится и при повторе: неверные
// параметры или конфигурация, либо Unsplash ответил 4xx (кроме 408 и 429).
// Сетевые ошибки, 5xx и сбои хранилища считаются временными.
func IsPermanent(err error) bool {
	if err == nil {
		return false
	}
	if unsplash.IsValidation(err) {
		return true
	}
	var apiErr *unsplash.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusRequestTimeout, http.StatusTooManyRequests:
			return false
		}
		return apiErr.StatusCode >= 400 && apiErr.StatusCode < 500
	}
	return false
}

// ArchivePhoto получает фото, регистрирует скачивание в Unsplash, скачивает
// файл по выданной ссылке и загружает его в хранилище.
func (a *DownloadArchiver) ArchivePhoto(ctx context.Context, jobID uuid.UUID, photoID string) (*domain.Archive, error) {
	if photoID == "" {
		return nil, unsplash.ErrPhotoIDMissing
	}
	log := a.logger.With("job_id", jobID, "photo_id", photoID)

	photo, err := a.photos.Photo(ctx, photoID)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении фото %s из Unsplash API: %w", photoID, err)
	}
	if photo == nil {
		return nil, fmt.Errorf("usecase: фото %s не найдено во внешнем API", photoID)
	}

	download, err := a.photos.DownloadPhoto(ctx, photo)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при запросе ссылки на скачивание фото %s: %w", photoID, err)
	}
	if download == nil || download.URL == "" {
		return nil, errors.New("usecase: Unsplash не вернул ссылку на скачивание")
	}

	log.Debug("downloading photo", "url", download.URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, download.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка создания запроса на скачивание: %w", err)
	}
	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при скачивании фото %s: %w", photoID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("usecase: неуспешный статус при скачивании фото %s: %s", photoID, resp.Status)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := fmt.Sprintf("%s/%s", archivePrefix, photo.ID)
	objectURL, err := a.files.UploadFile(ctx, key, resp.Body, contentType)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка загрузки фото %s в S3: %w", photoID, err)
	}

	archive := &domain.Archive{
		ID:          uuid.New(),
		JobID:       jobID,
		UnsplashID:  photo.ID,
		ObjectKey:   key,
		ObjectURL:   objectURL,
		ContentType: contentType,
		Width:       photo.Width,
		Height:      photo.Height,
		ArchivedAt:  time.Now().UTC(),
	}
	if photo.User != nil {
		archive.AuthorName = photo.User.Name
	}

	log.Debug("photo uploaded", "object_url", objectURL)
	return archive, nil
}
