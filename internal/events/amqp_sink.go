package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/manual_journal_service/internal/core/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// Publisher is the subset of *amqp.Channel used to publish events.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQPSink publishes events as JSON to a topic exchange, routed by event name.
type AMQPSink struct {
	publisher Publisher
	exchange  string
	logger    *slog.Logger
}

func NewAMQPSink(publisher Publisher, exchange string, logger *slog.Logger) *AMQPSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &AMQPSink{publisher: publisher, exchange: exchange, logger: logger}
}

// Emit publishes the event. Publishing is detached from ctx cancellation so a
// finished request does not drop its notification.
func (s *AMQPSink) Emit(ctx context.Context, event domain.ManualJournalEvent) {
	body, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("Failed to encode manual journal event", slog.String("event", string(event.Name)), slog.String("error", err.Error()))
		return
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	err = s.publisher.PublishWithContext(pubCtx, s.exchange, string(event.Name), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredAt,
		Type:         string(event.Name),
		Headers:      amqp.Table{"tenant_id": event.TenantID},
		Body:         body,
	})
	if err != nil {
		s.logger.Error("Failed to publish manual journal event",
			slog.String("event", string(event.Name)),
			slog.String("exchange", s.exchange),
			slog.String("error", err.Error()))
	}
}

// AMQPConnection owns the broker connection and channel behind an AMQPSink.
type AMQPConnection struct {
	conn    *amqp.Connection
	Channel *amqp.Channel
}

// DialAMQP connects to the broker and declares a durable topic exchange.
func DialAMQP(url, exchange string) (*AMQPConnection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to AMQP broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open AMQP channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}
	return &AMQPConnection{conn: conn, Channel: ch}, nil
}

func (c *AMQPConnection) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	if c.Channel != nil {
		_ = c.Channel.Close()
	}
	return c.conn.Close()
}
