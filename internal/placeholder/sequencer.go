// Package placeholder строит двухшаговую последовательность адресов
// изображения: сначала размытая заглушка из blur hash, затем реальный URL.
package placeholder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/GoArmGo/UnsplashGateway/internal/adapter/unsplash"
)

// ReferenceWidth — ширина, к которой приводится заглушка.
const ReferenceWidth = 240

var (
	ErrPhotoMissing    = errors.New("placeholder: photo missing")
	ErrBlurHashMissing = errors.New("placeholder: photo has no blur hash")
	ErrImageURLMissing = errors.New("placeholder: photo has no url for requested size")
)

// ImageLoadError — реальное изображение не загрузилось.
type ImageLoadError struct {
	URL string
	Err error
}

func (e *ImageLoadError) Error() string {
	return fmt.Sprintf("placeholder: не удалось загрузить изображение %s: %v", e.URL, e.Err)
}

func (e *ImageLoadError) Unwrap() error {
	return e.Err
}

// State — состояние подписки.
type State int

const (
	StateStart State = iota
	StateLoading
	StateDone
	StateFailed
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateLoading:
		return "loading"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	case StateCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Sequencer создаёт последовательности для фотографий.
type Sequencer struct {
	loader   Loader
	decoder  Decoder
	renderer Renderer
	logger   *slog.Logger
}

type SequencerOption func(*Sequencer)

func WithLogger(logger *slog.Logger) SequencerOption {
	return func(s *Sequencer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithDecoder(d Decoder) SequencerOption {
	return func(s *Sequencer) {
		if d != nil {
			s.decoder = d
		}
	}
}

func WithRenderer(r Renderer) SequencerOption {
	return func(s *Sequencer) {
		if r != nil {
			s.renderer = r
		}
	}
}

// NewSequencer создает Sequencer. nil loader заменяется на HTTPLoader.
func NewSequencer(loader Loader, opts ...SequencerOption) *Sequencer {
	if loader == nil {
		loader = HTTPLoader{}
	}
	s := &Sequencer{
		loader:   loader,
		decoder:  BlurHashDecoder{},
		renderer: PNGRenderer{},
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sequence — ленивая последовательность для одной фотографии.
// До Subscribe ничего не декодируется и не загружается.
type Sequence struct {
	seq     *Sequencer
	photoID string
	hash    string
	width   int
	height  int
	url     string
	valid   bool
}

// Sequence запоминает нужные поля фотографии. Пустой size означает thumb.
func (s *Sequencer) Sequence(photo *unsplash.Photo, size unsplash.Size) *Sequence {
	if size == "" {
		size = unsplash.SizeThumb
	}
	if photo == nil {
		return &Sequence{seq: s}
	}
	return &Sequence{
		seq:     s,
		photoID: photo.ID,
		hash:    photo.BlurHash,
		width:   photo.Width,
		height:  photo.Height,
		url:     photo.URLs.BySize(size),
		valid:   true,
	}
}

// dimensions вычисляет размер заглушки: ширина всегда ReferenceWidth,
// высота пропорциональна фотографии.
func dimensions(width, height int) (int, int) {
	h := height
	if width > 0 {
		h = int(math.Round(float64(height) * ReferenceWidth / float64(width)))
	}
	if height <= 0 {
		h = ReferenceWidth
	}
	if h < 1 {
		h = 1
	}
	return ReferenceWidth, h
}

func (q *Sequence) render() (string, error) {
	if !q.valid {
		return "", ErrPhotoMissing
	}
	if q.hash == "" {
		return "", ErrBlurHashMissing
	}
	w, h := dimensions(q.width, q.height)
	img, err := q.seq.decoder.Decode(q.hash, w, h)
	if err != nil {
		return "", err
	}
	return q.seq.renderer.Render(img)
}

// Subscribe запускает последовательность. Заглушка уже лежит в C к моменту
// возврата; реальный URL придёт после загрузки, затем C закроется.
// Каждый вызов декодирует заглушку заново.
func (q *Sequence) Subscribe(ctx context.Context) *Subscription {
	ctx, cancel := context.WithCancel(ctx)
	ch := make(chan string, 2)
	sub := &Subscription{
		C:      ch,
		ch:     ch,
		state:  StateStart,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	logger := q.seq.logger.With("photo_id", q.photoID)

	placeholder, err := q.render()
	if err != nil {
		logger.Warn("placeholder render failed", "error", err)
		sub.finish(StateFailed, err)
		return sub
	}
	ch <- placeholder

	if q.url == "" {
		sub.finish(StateFailed, ErrImageURLMissing)
		return sub
	}

	sub.setState(StateLoading)
	go sub.load(ctx, q.seq.loader, q.url, logger)
	return sub
}

// Subscription — одна активная подписка на последовательность.
type Subscription struct {
	// C отдаёт не более двух значений и закрывается в конце.
	C <-chan string

	ch     chan string
	mu     sync.Mutex
	state  State
	err    error
	once   sync.Once
	cancel context.CancelFunc
	done   chan struct{}
}

func (s *Subscription) load(ctx context.Context, loader Loader, url string, logger *slog.Logger) {
	err := loader.Load(ctx, url)
	if ctx.Err() != nil {
		logger.Debug("image load abandoned", "url", url)
		s.finish(StateCancelled, nil)
		return
	}
	if err != nil {
		logger.Warn("image load failed", "url", url, "error", err)
		s.finish(StateFailed, &ImageLoadError{URL: url, Err: err})
		return
	}
	if !s.deliver(ctx, url) {
		logger.Debug("image load abandoned", "url", url)
		s.finish(StateCancelled, nil)
		return
	}
	s.finish(StateDone, nil)
}

// deliver отправляет URL, только если подписка ещё не отменена. Проверка и
// отправка идут под mu, как и Cancel, поэтому после возврата Cancel новых
// значений в C не появится.
func (s *Subscription) deliver(ctx context.Context, url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ctx.Err() != nil {
		return false
	}
	s.ch <- url
	return true
}

func (s *Subscription) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func (s *Subscription) finish(state State, err error) {
	s.once.Do(func() {
		s.mu.Lock()
		s.state = state
		s.err = err
		s.mu.Unlock()
		close(s.ch)
		s.cancel()
		close(s.done)
	})
}

// State возвращает текущее состояние.
func (s *Subscription) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Err возвращает ошибку завершения; nil при успехе и при отмене.
func (s *Subscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Cancel прекращает ожидание загрузки. После Cancel значений больше не будет.
func (s *Subscription) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancel()
}

// Done закрывается, когда подписка перешла в конечное состояние.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}
