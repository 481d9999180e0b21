package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/UnsplashGateway/internal/adapter/unsplash"
	"github.com/GoArmGo/UnsplashGateway/internal/config"
	"github.com/GoArmGo/UnsplashGateway/internal/core/ports"
	"github.com/GoArmGo/UnsplashGateway/internal/placeholder"
	"github.com/GoArmGo/UnsplashGateway/internal/usecase"
)

const (
	ModeServer = "server"
	ModeWorker = "worker"
)

// Deps — собранные зависимости приложения.
type Deps struct {
	Config       *config.Config
	Logger       *slog.Logger
	ConfigStream *unsplash.Stream
	Unsplash     *unsplash.Client
	Placeholders *placeholder.Sequencer
	Publisher    ports.DownloadJobPublisher
	Consumer     ports.DownloadJobConsumer
	Archiver     *usecase.DownloadArchiver
	// Closers закрываются при завершении в обратном порядке.
	Closers []io.Closer
	// Reload перечитывает конфигурацию по SIGHUP; по умолчанию config.ReloadConfig.
	Reload func() (*config.Config, error)
}

type App struct {
	Deps
}

func NewApp(deps Deps) *App {
	if deps.Reload == nil {
		deps.Reload = config.ReloadConfig
	}
	return &App{Deps: deps}
}

// LoggerIns возвращает основной логгер приложения.
func (a *App) LoggerIns() *slog.Logger {
	return a.Logger
}

// Run запускает приложение в выбранном режиме и блокируется до SIGINT/SIGTERM.
func (a *App) Run(ctx context.Context, mode string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	go a.watchReload(ctx, hup)

	a.Logger.Info("starting", "mode", mode)

	var err error
	switch mode {
	case ModeServer:
		err = a.runServer(ctx)
	case ModeWorker:
		err = a.runWorker(ctx)
	default:
		err = fmt.Errorf("неизвестный режим: %s (используйте 'server' или 'worker')", mode)
	}

	a.Logger.Info("shutting down")
	if closeErr := a.Shutdown(); closeErr != nil {
		a.Logger.Error("shutdown failed", "error", closeErr)
	}
	return err
}

// watchReload публикует новую конфигурацию Unsplash в поток на каждый сигнал.
// Следующий вызов клиента уже использует новый ключ.
func (a *App) watchReload(ctx context.Context, signals <-chan os.Signal) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-signals:
			if err := a.reloadUnsplash(); err != nil {
				a.Logger.Error("config reload failed", "error", err)
				continue
			}
			a.Logger.Info("unsplash configuration reloaded")
		}
	}
}

func (a *App) reloadUnsplash() error {
	cfg, err := a.Reload()
	if err != nil {
		return err
	}
	// Неполная конфигурация тоже публикуется: вызовы сообщат, чего не
	// хватает, а следующая корректная публикация восстановит работу.
	next := cfg.Unsplash()
	a.ConfigStream.Publish(next)
	return unsplash.Validate(next)
}

// Shutdown закрывает все ресурсы приложения
func (a *App) Shutdown() error {
	var errs []error
	for i := len(a.Closers) - 1; i >= 0; i-- {
		if err := a.Closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
