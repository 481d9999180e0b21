package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/GoArmGo/UnsplashGateway/internal/adapter/unsplash"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	// Unsplash. Authorization передаётся в заголовке как есть;
	// если его нет, из AccessKey собирается "Client-ID <key>".
	UnsplashURL           string `env:"UNSPLASH_URL" envDefault:"https://api.unsplash.com/"`
	UnsplashAuthorization string `env:"UNSPLASH_AUTHORIZATION"`
	UnsplashAccessKey     string `env:"UNSPLASH_ACCESS_KEY"`

	ServerPort      string        `env:"SERVER_PORT" envDefault:"8080"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	PlaceholderSize string        `env:"PLACEHOLDER_SIZE" envDefault:"thumb"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	LogFile   string `env:"LOG_FILE"`

	// Настройки для MinIO (нужны только воркеру)
	MinioEndpoint        string `env:"MINIO_ENDPOINT"`
	MinioAccessKeyID     string `env:"MINIO_ACCESS_KEY_ID"`
	MinioSecretAccessKey string `env:"MINIO_SECRET_ACCESS_KEY"`
	MinioUseSSL          bool   `env:"MINIO_USE_SSL"`
	MinioBucketName      string `env:"MINIO_BUCKET_NAME" envDefault:"unsplash-archive"`
	MinioRegion          string `env:"MINIO_REGION" envDefault:"us-east-1"`

	// Без RabbitMQ сервер работает без очереди архивирования, воркер не стартует.
	RabbitMQ struct {
		RabbitMQURL       string `env:"RABBITMQ_URL"`
		RabbitMQQueueName string `env:"RABBITMQ_QUEUE_NAME" envDefault:"photo_download_queue"`
	}
}

// LoadConfig загружает конфигурацию из переменных окружения.
// В режиме разработки пытается загрузить .env файл.
func LoadConfig() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("ошибка загрузки .env файла: %w", err)
		}
	}
	return parse()
}

// ReloadConfig перечитывает конфигурацию для ротации ключей. В отличие от
// LoadConfig значения из .env перекрывают уже выставленные переменные.
func ReloadConfig() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Overload(); err != nil {
			return nil, fmt.Errorf("ошибка повторной загрузки .env файла: %w", err)
		}
	}
	return parse()
}

func parse() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("ошибка парсинга конфигурации из окружения: %w", err)
	}
	return &cfg, nil
}

// Unsplash собирает конфигурацию клиента Unsplash. Пустые значения
// не подменяются: клиент сам сообщит, чего не хватает.
func (c *Config) Unsplash() *unsplash.Config {
	credential := c.UnsplashAuthorization
	if credential == "" && c.UnsplashAccessKey != "" {
		credential = "Client-ID " + c.UnsplashAccessKey
	}
	return &unsplash.Config{
		BaseURL:    c.UnsplashURL,
		Credential: credential,
	}
}

// MinioConfigured сообщает, заданы ли параметры объектного хранилища.
func (c *Config) MinioConfigured() bool {
	return c.MinioEndpoint != "" && c.MinioAccessKeyID != "" && c.MinioSecretAccessKey != ""
}

// RabbitMQConfigured сообщает, задан ли адрес брокера.
func (c *Config) RabbitMQConfigured() bool {
	return c.RabbitMQ.RabbitMQURL != ""
}
