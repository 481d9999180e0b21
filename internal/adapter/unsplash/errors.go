package unsplash

import (
	"errors"
	"fmt"
)

// Ошибки проверки конфигурации. Проверяются в порядке объявления,
// возвращается только первая.
var (
	ErrConfigurationMissing = errors.New("unsplash: configuration undefined")
	ErrBaseURLMissing       = errors.New("unsplash: configuration url undefined")
	ErrCredentialMissing    = errors.New("unsplash: configuration authorization undefined")
)

// Ошибки проверки параметров вызова. Возвращаются до обращения к сети.
var (
	ErrPhotoIDMissing          = errors.New("unsplash: photo id missing")
	ErrCollectionIDMissing     = errors.New("unsplash: collection id missing")
	ErrTopicIDMissing          = errors.New("unsplash: topic id missing")
	ErrUsernameMissing         = errors.New("unsplash: username missing")
	ErrQueryMissing            = errors.New("unsplash: search query missing")
	ErrDownloadLocationMissing = errors.New("unsplash: photo download location missing")
	ErrCountOutOfRange         = errors.New("unsplash: count must be between 1 and 30")
)

var validationErrors = []error{
	ErrConfigurationMissing,
	ErrBaseURLMissing,
	ErrCredentialMissing,
	ErrPhotoIDMissing,
	ErrCollectionIDMissing,
	ErrTopicIDMissing,
	ErrUsernameMissing,
	ErrQueryMissing,
	ErrDownloadLocationMissing,
	ErrCountOutOfRange,
}

// IsValidation сообщает, была ли ошибка получена на этапе проверки
// параметров или конфигурации, то есть запрос в сеть не отправлялся.
func IsValidation(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// APIError возвращается, когда Unsplash ответил статусом вне диапазона 2xx.
type APIError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("unsplash API вернул статус %d на %s %s: %s", e.StatusCode, e.Method, e.URL, e.Body)
}
