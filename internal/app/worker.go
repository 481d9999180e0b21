package app

import (
	"context"
	"errors"
	"fmt"
)

// runWorker потребляет задачи архивирования, пока ctx не отменён.
func (a *App) runWorker(ctx context.Context) error {
	if a.Consumer == nil || a.Archiver == nil {
		return errors.New("воркер требует RabbitMQ и MinIO")
	}

	if err := a.Consumer.StartConsumingDownloadJobs(ctx, a.Archiver.HandleDownloadJob); err != nil {
		return fmt.Errorf("ошибка при запуске потребителя RabbitMQ: %w", err)
	}
	a.Logger.Info("worker started, waiting for download jobs")

	<-ctx.Done()
	a.Logger.Info("worker stopped")
	return nil
}
