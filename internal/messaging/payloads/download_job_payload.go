package payloads

import "github.com/google/uuid"

// DownloadJobPayload — задача на архивирование одной фотографии,
// передаётся через RabbitMQ.
type DownloadJobPayload struct {
	JobID   uuid.UUID `json:"job_id"`
	PhotoID string    `json:"photo_id"`
}
