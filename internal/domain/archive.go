package domain

import (
	"time"

	"github.com/google/uuid"
)

// Archive — результат архивирования фотографии Unsplash в объектное хранилище.
type Archive struct {
	ID          uuid.UUID `json:"id"`
	JobID       uuid.UUID `json:"job_id"`
	UnsplashID  string    `json:"unsplash_id"`
	AuthorName  string    `json:"author_name"`
	ObjectKey   string    `json:"object_key"`
	ObjectURL   string    `json:"object_url"`
	ContentType string    `json:"content_type"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	ArchivedAt  time.Time `json:"archived_at"`
}
