package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// SlogConfig описывает параметры логгера
type SlogConfig struct {
	Level  string // "debug", "info", "warn", "error"
	Format string // "json" или "text"
	File   string // дополнительный файл с ротацией, пусто — только stdout
}

// NewSlog создаёт и настраивает slog.Logger. Возвращаемый io.Closer закрывает
// файл лога; nil, если лог пишется только в stdout.
func NewSlog(cfg SlogConfig) (*slog.Logger, io.Closer) {
	w, closer := output(cfg.File)
	return slog.New(newHandler(w, cfg)), closer
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func output(file string) (io.Writer, io.Closer) {
	if file == "" {
		return os.Stdout, nil
	}
	rotating := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    100, // MB
		MaxBackups: 5,
		MaxAge:     30, // дней
		Compress:   true,
	}
	return io.MultiWriter(os.Stdout, rotating), rotating
}

func newHandler(w io.Writer, cfg SlogConfig) slog.Handler {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	if cfg.Format == "text" {
		return slog.NewTextHandler(w, opts)
	}

	// Время в человекочитаемом виде
	opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey && len(groups) == 0 {
			a.Value = slog.StringValue(a.Value.Time().Format(time.RFC3339))
		}
		return a
	}
	return slog.NewJSONHandler(w, opts)
}
