package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/GoArmGo/UnsplashGateway/internal/config"
	"github.com/GoArmGo/UnsplashGateway/internal/messaging/payloads"
	"github.com/GoArmGo/UnsplashGateway/internal/usecase"
)

const publishTimeout = 5 * time.Second

// Client представляет собой клиент RabbitMQ для очереди задач архивирования.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   amqp.Queue
	logger  *slog.Logger
}

// NewClient подключается к RabbitMQ и объявляет очередь.
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	conn, err := amqp.Dial(cfg.RabbitMQ.RabbitMQURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	// Идемпотентно: очередь создаётся, только если её нет.
	q, err := ch.QueueDeclare(
		cfg.RabbitMQ.RabbitMQQueueName, // name
		true,                           // durable
		false,                          // delete when unused
		false,                          // exclusive
		false,                          // no-wait
		nil,                            // arguments
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare a queue: %w", err)
	}

	logger.Info("rabbitmq queue declared", "queue", q.Name, "messages", q.Messages)

	return &Client{
		conn:    conn,
		channel: ch,
		queue:   q,
		logger:  logger,
	}, nil
}

// Close закрывает канал и соединение RabbitMQ.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, fmt.Errorf("close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, fmt.Errorf("close connection: %w", err))
		}
	}
	return errors.Join(errs...)
}

// PublishDownloadJob публикует задачу на архивирование в очередь.
func (c *Client) PublishDownloadJob(ctx context.Context, payload payloads.DownloadJobPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload to JSON: %w", err)
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = c.channel.PublishWithContext(
		publishCtx,
		"",           // exchange
		c.queue.Name, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    payload.JobID.String(),
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish a message: %w", err)
	}

	c.logger.Debug("download job published", "queue", c.queue.Name, "job_id", payload.JobID, "photo_id", payload.PhotoID)
	return nil
}

// StartConsumingDownloadJobs регистрирует потребителя и обрабатывает сообщения
// в отдельной горутине, пока ctx не завершён или канал не закрыт.
func (c *Client) StartConsumingDownloadJobs(ctx context.Context, handler func(context.Context, payloads.DownloadJobPayload) error) error {
	msgs, err := c.channel.Consume(
		c.queue.Name, // queue
		"",           // consumer
		false,        // auto-ack (подтверждаем вручную)
		false,        // exclusive
		false,        // no-local
		false,        // no-wait
		nil,          // args
	)
	if err != nil {
		return fmt.Errorf("failed to register a consumer: %w", err)
	}

	c.logger.Info("consumer registered", "queue", c.queue.Name)

	go c.consume(ctx, msgs, handler)
	return nil
}

func (c *Client) consume(ctx context.Context, msgs <-chan amqp.Delivery, handler func(context.Context, payloads.DownloadJobPayload) error) {
	for {
		select {
		case msg, ok := <-msgs:
			if !ok {
				c.logger.Info("rabbitmq channel closed, stopping consumer")
				return
			}
			handleDelivery(ctx, c.logger, msg, handler)
		case <-ctx.Done():
			c.logger.Info("context cancelled, stopping rabbitmq consumer")
			return
		}
	}
}

// handleDelivery обрабатывает одно сообщение: битый JSON и постоянные ошибки
// обработчика отклоняются без возврата в очередь, временные возвращают
// сообщение в очередь.
func handleDelivery(ctx context.Context, logger *slog.Logger, msg amqp.Delivery, handler func(context.Context, payloads.DownloadJobPayload) error) {
	var payload payloads.DownloadJobPayload
	if err := json.Unmarshal(msg.Body, &payload); err != nil {
		logger.Error("failed to unmarshal message", "error", err, "body", string(msg.Body))
		if err := msg.Nack(false, false); err != nil {
			logger.Error("failed to nack message", "error", err)
		}
		return
	}

	log := logger.With("job_id", payload.JobID, "photo_id", payload.PhotoID)

	if err := handler(ctx, payload); err != nil {
		requeue := !usecase.IsPermanent(err)
		log.Error("failed to process download job", "error", err, "requeue", requeue)
		if err := msg.Nack(false, requeue); err != nil {
			log.Error("failed to nack message", "error", err)
		}
		return
	}

	if err := msg.Ack(false); err != nil {
		log.Error("failed to ack message", "error", err)
		return
	}
	log.Info("download job processed")
}
