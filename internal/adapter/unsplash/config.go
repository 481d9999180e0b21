package unsplash

import (
	"context"
	"sync"
)

// Config хранит общие для всех запросов параметры: базовый URL API
// и строку авторизации, которая передаётся в заголовке как есть
// (вместе со схемой, например "Client-ID ..." или "Bearer ...").
type Config struct {
	BaseURL    string
	Credential string
}

func (c *Config) clone() *Config {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

// Validate проверяет конфигурацию перед построением запроса.
// Проверки идут по порядку, возвращается первая нарушенная.
func Validate(cfg *Config) error {
	if cfg == nil {
		return ErrConfigurationMissing
	}
	if cfg.BaseURL == "" {
		return ErrBaseURLMissing
	}
	if cfg.Credential == "" {
		return ErrCredentialMissing
	}
	return nil
}

// Source отдаёт клиенту актуальную конфигурацию. Клиент вызывает Next
// на каждый запрос и ничего не кэширует, поэтому смена ключа
// вступает в силу со следующего вызова.
type Source interface {
	// Next блокируется, пока конфигурация не станет доступна или ctx не завершится.
	Next(ctx context.Context) (*Config, error)
}

type staticSource struct {
	cfg *Config
}

// Static оборачивает готовое значение в источник из одного элемента.
// nil допустим: каждый вызов клиента тогда завершится ErrConfigurationMissing.
func Static(cfg *Config) Source {
	return staticSource{cfg: cfg.clone()}
}

func (s staticSource) Next(ctx context.Context) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.cfg.clone(), nil
}

// Stream — изменяемый во времени источник конфигурации.
// Каждый Next получает последнее опубликованное значение; до первой
// публикации Next ждёт. Неверное значение не ломает поток: следующая
// корректная публикация используется последующими вызовами как обычно.
type Stream struct {
	mu      sync.RWMutex
	cfg     *Config
	emitted bool
	ready   chan struct{}
}

// NewStream создаёт пустой поток конфигурации.
func NewStream() *Stream {
	return &Stream{ready: make(chan struct{})}
}

// Publish публикует новое значение конфигурации. Безопасен для конкурентного вызова.
func (s *Stream) Publish(cfg *Config) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg = cfg.clone()
	if !s.emitted {
		s.emitted = true
		close(s.ready)
	}
}

func (s *Stream) Next(ctx context.Context) (*Config, error) {
	select {
	case <-s.ready:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.clone(), nil
}

// FromChannel перекладывает значения из канала в Stream, пока канал
// не закрыт или ctx не завершён.
func FromChannel(ctx context.Context, ch <-chan *Config) *Stream {
	s := NewStream()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case cfg, ok := <-ch:
				if !ok {
					return
				}
				s.Publish(cfg)
			}
		}
	}()
	return s
}
