package handler

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/GoArmGo/UnsplashGateway/internal/adapter/unsplash"
)

const (
	eventPlaceholder = "placeholder"
	eventImage       = "image"
	eventError       = "error"
)

var knownSizes = map[unsplash.Size]bool{
	unsplash.SizeRaw:     true,
	unsplash.SizeFull:    true,
	unsplash.SizeRegular: true,
	unsplash.SizeSmall:   true,
	unsplash.SizeThumb:   true,
}

// PhotoPlaceholder — GET /photos/{id}/placeholder?size=
// Отдаёт Server-Sent Events: сначала заглушку, затем адрес изображения
// или ошибку загрузки.
func (h *Handler) PhotoPlaceholder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	size := unsplash.Size(params(r).String("size"))
	if size == "" {
		size = h.defaultSize
	}
	if !knownSizes[size] {
		h.writeError(w, r, "PhotoPlaceholder", fmt.Errorf("%w: size=%q", errBadParameter, size))
		return
	}

	photo, err := h.unsplash.Photo(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "PhotoPlaceholder", err)
		return
	}

	rc := http.NewResponseController(w)
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	sub := h.placeholders.Sequence(photo, size).Subscribe(r.Context())
	defer sub.Cancel()

	event := eventPlaceholder
	for value := range sub.C {
		if err := writeEvent(w, event, value); err != nil {
			h.logger.Warn("failed to write event", "photo_id", id, "error", err)
			return
		}
		if err := rc.Flush(); err != nil {
			h.logger.Warn("failed to flush event", "photo_id", id, "error", err)
		}
		event = eventImage
	}

	<-sub.Done()
	if err := sub.Err(); err != nil {
		h.logger.Warn("placeholder sequence failed", "photo_id", id, "state", sub.State(), "error", err)
		_ = writeEvent(w, eventError, err.Error())
		_ = rc.Flush()
		return
	}
	h.logger.Debug("placeholder sequence finished", "photo_id", id, "state", sub.State())
}

// writeEvent пишет одно событие; многострочные данные разбиваются на
// несколько полей data.
func writeEvent(w io.Writer, event, data string) error {
	var b strings.Builder
	b.WriteString("event: ")
	b.WriteString(event)
	b.WriteByte('\n')
	for _, line := range strings.Split(data, "\n") {
		b.WriteString("data: ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}
