package di

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/GoArmGo/UnsplashGateway/internal/adapter/storage/minio"
	"github.com/GoArmGo/UnsplashGateway/internal/adapter/unsplash"
	"github.com/GoArmGo/UnsplashGateway/internal/app"
	"github.com/GoArmGo/UnsplashGateway/internal/config"
	"github.com/GoArmGo/UnsplashGateway/internal/logger"
	"github.com/GoArmGo/UnsplashGateway/internal/placeholder"
	"github.com/GoArmGo/UnsplashGateway/internal/rabbitmq"
	"github.com/GoArmGo/UnsplashGateway/internal/usecase"
)

// BuildApp инициализирует все зависимости для выбранного режима и
// возвращает готовый объект App.
func BuildApp(ctx context.Context, mode string) (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogger, logCloser := logger.NewSlog(logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// 2. Поток конфигурации Unsplash: ключ можно сменить по SIGHUP
	stream := unsplash.NewStream()
	unsplashCfg := cfg.Unsplash()
	if err := unsplash.Validate(unsplashCfg); err != nil {
		slogger.Warn("unsplash configuration incomplete, requests will fail until reload", "error", err)
	}
	stream.Publish(unsplashCfg)

	// 3. Клиенты внешних сервисов
	httpClient := &http.Client{}
	unsplashClient := unsplash.NewClient(stream,
		unsplash.WithHTTPClient(httpClient),
		unsplash.WithLogger(slogger.With("component", "unsplash")),
	)
	sequencer := placeholder.NewSequencer(
		placeholder.HTTPLoader{Client: httpClient},
		placeholder.WithLogger(slogger.With("component", "placeholder")),
	)

	deps := app.Deps{
		Config:       cfg,
		Logger:       slogger,
		ConfigStream: stream,
		Unsplash:     unsplashClient,
		Placeholders: sequencer,
	}
	// Файл лога закрывается последним.
	if logCloser != nil {
		deps.Closers = append(deps.Closers, logCloser)
	}

	// 4. RabbitMQ: серверу нужен publisher, воркеру consumer
	if err := connectRabbitMQ(cfg, mode, slogger, &deps); err != nil {
		closeAll(deps.Closers)
		return nil, err
	}

	// 5. Объектное хранилище и архиватор нужны только воркеру
	if mode == app.ModeWorker {
		fileStorage, err := minio.NewMinioClient(ctx, cfg, slogger.With("component", "minio"))
		if err != nil {
			closeAll(deps.Closers)
			return nil, fmt.Errorf("ошибка инициализации MinIO: %w", err)
		}
		deps.Archiver = usecase.NewDownloadArchiver(unsplashClient, fileStorage, httpClient, slogger.With("component", "archiver"))
	}

	slogger.Info("all dependencies initialized", "mode", mode)
	return app.NewApp(deps), nil
}

// connectRabbitMQ подключает очередь задач. Серверу она не обязательна:
// без неё POST /photos/{id}/download отвечает 503.
func connectRabbitMQ(cfg *config.Config, mode string, slogger *slog.Logger, deps *app.Deps) error {
	if !cfg.RabbitMQConfigured() {
		if mode == app.ModeWorker {
			return errors.New("воркеру требуется RABBITMQ_URL")
		}
		slogger.Warn("RABBITMQ_URL not set, download jobs disabled")
		return nil
	}

	rabbitMQClient, err := rabbitmq.NewClient(cfg, slogger.With("component", "rabbitmq"))
	if err != nil {
		if mode == app.ModeWorker {
			return err
		}
		slogger.Warn("rabbitmq unavailable, download jobs disabled", "error", err)
		return nil
	}
	deps.Publisher = rabbitMQClient
	deps.Consumer = rabbitMQClient
	deps.Closers = append(deps.Closers, rabbitMQClient)
	return nil
}

func closeAll(closers []io.Closer) {
	for _, c := range closers {
		_ = c.Close()
	}
}
