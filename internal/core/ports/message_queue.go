package ports

import (
	"context"

	"github.com/GoArmGo/UnsplashGateway/internal/messaging/payloads"
)

// DownloadJobPublisher публикует задачи на архивирование.
// Используется HTTP-обработчиком.
type DownloadJobPublisher interface {
	PublishDownloadJob(ctx context.Context, payload payloads.DownloadJobPayload) error
}

// DownloadJobConsumer отдаёт задачи из очереди воркеру.
type DownloadJobConsumer interface {
	// StartConsumingDownloadJobs начинает прослушивание очереди и вызывает handler
	// для каждого сообщения. Ошибка handler возвращает сообщение в очередь.
	StartConsumingDownloadJobs(ctx context.Context, handler func(context.Context, payloads.DownloadJobPayload) error) error
}
