package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/GoArmGo/UnsplashGateway/internal/messaging/payloads"
)

// EnqueueDownload — POST /photos/{id}/download: ставит задачу на
// архивирование фотографии в очередь и сразу отвечает 202.
func (h *Handler) EnqueueDownload(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if h.publisher == nil {
		respondWithError(w, http.StatusServiceUnavailable, "очередь задач недоступна", h.logger)
		return
	}

	payload := payloads.DownloadJobPayload{JobID: uuid.New(), PhotoID: id}
	if err := h.publisher.PublishDownloadJob(r.Context(), payload); err != nil {
		h.logger.Error("failed to publish download job", "photo_id", id, "error", err)
		respondWithError(w, http.StatusServiceUnavailable, "не удалось поставить задачу в очередь", h.logger)
		return
	}

	h.logger.Info("download job queued", "job_id", payload.JobID, "photo_id", id)
	respondWithJSON(w, http.StatusAccepted, map[string]string{
		"job_id":   payload.JobID.String(),
		"photo_id": id,
		"status":   "queued",
	}, h.logger)
}
