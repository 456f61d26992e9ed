// Package queue publishes domain events to RabbitMQ for downstream
// consumers (analytics, mailers). Publishing is best effort: failures are
// logged and never interrupt the request that triggered them.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/vivekmohanraj/EventSphere/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const (
	eventPublishedQueue        = "event.published"
	registrationConfirmedQueue = "registration.confirmed"
)

type EventPublishedMessage struct {
	EventID   string    `json:"event_id"`
	Name      string    `json:"name"`
	EventTime time.Time `json:"event_time"`
	CreatedBy string    `json:"created_by"`
}

type RegistrationConfirmedMessage struct {
	RegistrationID string    `json:"registration_id"`
	EventID        string    `json:"event_id"`
	UserID         string    `json:"user_id"`
	RegisteredAt   time.Time `json:"registered_at"`
}

type Publisher struct {
	conn   *amqp.Connection
	ch     *amqp.Channel
	logger logger.Logger
}

// NewPublisher connects to RabbitMQ and declares the queues. An empty url
// disables publishing; the returned Publisher is still safe to use.
func NewPublisher(url string, log logger.Logger) (*Publisher, error) {
	p := &Publisher{logger: log}
	if url == "" {
		log.Warn("rabbitmq url is empty, stream publishing disabled")
		return p, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	for _, name := range []string{eventPublishedQueue, registrationConfirmedQueue} {
		// durable so messages survive broker restarts
		if _, err := ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
			ch.Close()
			conn.Close()
			return nil, fmt.Errorf("declare queue %s: %w", name, err)
		}
	}

	p.conn = conn
	p.ch = ch
	return p, nil
}

func (p *Publisher) PublishEventPublished(ctx context.Context, event *domain.Event) error {
	return p.publish(ctx, eventPublishedQueue, EventPublishedMessage{
		EventID:   event.ID,
		Name:      event.Name,
		EventTime: event.EventTime,
		CreatedBy: event.CreatedBy,
	})
}

func (p *Publisher) PublishRegistrationConfirmed(ctx context.Context, reg *domain.Registration) error {
	return p.publish(ctx, registrationConfirmedQueue, RegistrationConfirmedMessage{
		RegistrationID: reg.ID,
		EventID:        reg.EventID,
		UserID:         reg.UserID,
		RegisteredAt:   reg.RegisteredAt,
	})
}

func (p *Publisher) publish(ctx context.Context, queueName string, msg any) error {
	if p.ch == nil {
		return nil
	}

	body, err := json.Marshal(msg)
	if err != nil {
		p.logger.Error("marshal stream message failed",
			logger.String("queue", queueName),
			logger.String("error", err.Error()),
		)
		return err
	}

	err = p.ch.PublishWithContext(ctx,
		"",        // default exchange
		queueName, // routing key = queue name
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		p.logger.Error("publish stream message failed",
			logger.String("queue", queueName),
			logger.String("error", err.Error()),
		)
		return err
	}

	return nil
}

func (p *Publisher) Close() error {
	if p.ch != nil {
		p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
