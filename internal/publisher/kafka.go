package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/orderflow/internal/config"
	"github.com/SergeyBogomolovv/orderflow/internal/entities"
	"github.com/segmentio/kafka-go"
)

const eventTypeHeader = "eventType"

// OrderEventMessage плоский документ события в топике заказов.
type OrderEventMessage struct {
	EventType   string `json:"eventType"`
	OrderID     string `json:"orderId"`
	UserID      int64  `json:"userId"`
	TotalAmount string `json:"totalAmount,omitempty"`
	ItemCount   *int   `json:"itemCount,omitempty"`
	Reason      string `json:"reason,omitempty"`
	Timestamp   int64  `json:"timestamp"`
}

func NewOrderEventMessage(e entities.DomainEvent) OrderEventMessage {
	msg := OrderEventMessage{
		EventType: string(e.Type),
		OrderID:   e.OrderID,
		UserID:    e.UserID,
		Timestamp: e.OccurredAt.UnixMilli(),
	}
	switch e.Type {
	case entities.EventOrderCreated:
		itemCount := e.ItemCount
		msg.TotalAmount = e.TotalAmount.String()
		msg.ItemCount = &itemCount
	case entities.EventOrderCancelled:
		msg.Reason = e.Reason
	}
	return msg
}

// EncodeEvent готовит сообщение с ключом по id заказа.
func EncodeEvent(e entities.DomainEvent) (kafka.Message, error) {
	if e.OrderID == "" {
		return kafka.Message{}, fmt.Errorf("event %s has no order id", e.Type)
	}
	value, err := json.Marshal(NewOrderEventMessage(e))
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal event: %w", err)
	}
	return kafka.Message{
		Key:     []byte(e.OrderID),
		Value:   value,
		Time:    e.OccurredAt,
		Headers: []kafka.Header{{Key: eventTypeHeader, Value: []byte(e.Type)}},
	}, nil
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher публикует события без ожидания подтверждения.
// Ошибки доставки только логируются и считаются в метриках.
type KafkaPublisher struct {
	logger *slog.Logger
	writer messageWriter
}

func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *KafkaPublisher {
	p := &KafkaPublisher{
		logger: logger.With(slog.String("publisher", "kafka")),
	}
	p.writer = &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.OrderTopic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: cfg.BatchTimeout,
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		Completion:   p.onCompletion,
	}
	return p
}

func (p *KafkaPublisher) Publish(ctx context.Context, events ...entities.DomainEvent) {
	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		msg, err := EncodeEvent(e)
		if err != nil {
			p.logger.ErrorContext(ctx, "failed to encode event",
				slog.String("event_type", string(e.Type)),
				slog.String("order_id", e.OrderID),
				slog.Any("error", err),
			)
			eventsFailed.WithLabelValues(string(e.Type), "encode").Inc()
			continue
		}
		msgs = append(msgs, msg)
	}
	if len(msgs) == 0 {
		return
	}

	start := time.Now()
	// Запись переживает завершение HTTP запроса
	if err := p.writer.WriteMessages(context.WithoutCancel(ctx), msgs...); err != nil {
		for _, m := range msgs {
			eventsFailed.WithLabelValues(eventType(m), "write").Inc()
		}
		p.logger.ErrorContext(ctx, "failed to publish events", slog.Int("count", len(msgs)), slog.Any("error", err))
		return
	}
	publishDuration.Observe(time.Since(start).Seconds())
}

func (p *KafkaPublisher) onCompletion(messages []kafka.Message, err error) {
	if err != nil {
		for _, m := range messages {
			eventsFailed.WithLabelValues(eventType(m), "delivery").Inc()
			p.logger.Error("event lost",
				slog.String("event_type", eventType(m)),
				slog.String("order_id", string(m.Key)),
				slog.Any("error", err),
			)
		}
		return
	}
	for _, m := range messages {
		eventsPublished.WithLabelValues(eventType(m)).Inc()
	}
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func eventType(m kafka.Message) string {
	for _, h := range m.Headers {
		if h.Key == eventTypeHeader {
			return string(h.Value)
		}
	}
	return "unknown"
}
