package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/orderflow/internal/config"
	"github.com/SergeyBogomolovv/orderflow/internal/entities"
	"github.com/SergeyBogomolovv/orderflow/pkg/utils"
	"github.com/segmentio/kafka-go"
	"golang.org/x/sync/errgroup"
)

var (
	errMalformedEvent = errors.New("malformed event")
	errUnknownEvent   = errors.New("unknown event type")
)

const unknownCancelReason = "Unknown reason"

type NotificationCreator interface {
	OrderCreated(ctx context.Context, userID int64, orderID, totalAmount string, itemCount int) error
	OrderConfirmed(ctx context.Context, userID int64, orderID string) error
	OrderShipped(ctx context.Context, userID int64, orderID string) error
	OrderDelivered(ctx context.Context, userID int64, orderID string) error
	OrderCancelled(ctx context.Context, userID int64, orderID, reason string) error
	LowStock(ctx context.Context, articleID int64, articleName string, stock int) error
}

// OrderEvent событие из топика заказов
type OrderEvent struct {
	EventType   string      `json:"eventType" validate:"required"`
	OrderID     string      `json:"orderId" validate:"required"`
	UserID      int64       `json:"userId" validate:"required,gt=0"`
	TotalAmount json.Number `json:"totalAmount"`
	ItemCount   int         `json:"itemCount"`
	Reason      string      `json:"reason"`
	Timestamp   int64       `json:"timestamp"`
}

// ArticleEvent событие из топика каталога
type ArticleEvent struct {
	EventType   string `json:"eventType" validate:"required"`
	ArticleID   int64  `json:"articleId" validate:"required,gt=0"`
	ArticleName string `json:"articleName"`
	NewStock    *int   `json:"newStock"`
	OldStock    *int   `json:"oldStock"`
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaHandler struct {
	logger            *slog.Logger
	orders            messageReader
	articles          messageReader
	orderTopic        string
	articleTopic      string
	creator           NotificationCreator
	lowStockThreshold int
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, creator NotificationCreator, lowStockThreshold int) *KafkaHandler {
	newReader := func(topic string) *kafka.Reader {
		return kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   topic,
			MaxWait: cfg.ReaderMaxWait,
		})
	}

	return &KafkaHandler{
		logger:            logger.With(slog.String("handler", "kafka")),
		orders:            newReader(cfg.OrderTopic),
		articles:          newReader(cfg.ArticleTopic),
		orderTopic:        cfg.OrderTopic,
		articleTopic:      cfg.ArticleTopic,
		creator:           creator,
		lowStockThreshold: lowStockThreshold,
	}
}

// Consume читает оба топика до отмены контекста.
func (h *KafkaHandler) Consume(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return h.consume(ctx, h.orderTopic, h.orders, h.HandleOrderEvent)
	})
	g.Go(func() error {
		return h.consume(ctx, h.articleTopic, h.articles, h.HandleArticleEvent)
	})
	return g.Wait()
}

func (h *KafkaHandler) consume(
	ctx context.Context,
	topic string,
	reader messageReader,
	handle func(ctx context.Context, payload []byte) error,
) error {
	logger := h.logger.With(slog.String("topic", topic))

	for {
		m, err := reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return nil
			}
			fetchErrors.WithLabelValues(topic).Inc()
			logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		eventsInProgress.Inc()
		start := time.Now()

		err = handle(ctx, m.Value)
		eventsConsumed.WithLabelValues(topic, outcome(err)).Inc()
		eventProcessingDuration.WithLabelValues(topic).Observe(time.Since(start).Seconds())
		eventsInProgress.Dec()

		if err != nil {
			logger.Warn("event dropped",
				slog.Int64("offset", m.Offset),
				slog.Int("partition", m.Partition),
				slog.Any("error", err),
			)
		}

		// Коммитим и обработанные, и отброшенные сообщения
		if err := reader.CommitMessages(ctx, m); err != nil {
			commitErrors.WithLabelValues(topic).Inc()
			logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return outcomeHandled
	case errors.Is(err, errUnknownEvent):
		return outcomeIgnored
	case errors.Is(err, errMalformedEvent):
		return outcomeMalformed
	default:
		return outcomeFailed
	}
}

func (h *KafkaHandler) HandleOrderEvent(ctx context.Context, payload []byte) error {
	var e OrderEvent
	if err := json.Unmarshal(payload, &e); err != nil {
		return fmt.Errorf("%w: %w", errMalformedEvent, err)
	}
	if err := utils.Validate(e); err != nil {
		return fmt.Errorf("%w: %w", errMalformedEvent, err)
	}

	switch entities.EventType(e.EventType) {
	case entities.EventOrderCreated:
		total := e.TotalAmount.String()
		if total == "" {
			total = "0"
		}
		return h.creator.OrderCreated(ctx, e.UserID, e.OrderID, total, e.ItemCount)
	case entities.EventOrderConfirmed:
		return h.creator.OrderConfirmed(ctx, e.UserID, e.OrderID)
	case entities.EventOrderShipped:
		return h.creator.OrderShipped(ctx, e.UserID, e.OrderID)
	case entities.EventOrderDelivered:
		return h.creator.OrderDelivered(ctx, e.UserID, e.OrderID)
	case entities.EventOrderCancelled:
		reason := e.Reason
		if reason == "" {
			reason = unknownCancelReason
		}
		return h.creator.OrderCancelled(ctx, e.UserID, e.OrderID, reason)
	default:
		return fmt.Errorf("%w: %s", errUnknownEvent, e.EventType)
	}
}

func (h *KafkaHandler) HandleArticleEvent(ctx context.Context, payload []byte) error {
	var e ArticleEvent
	if err := json.Unmarshal(payload, &e); err != nil {
		return fmt.Errorf("%w: %w", errMalformedEvent, err)
	}
	if err := utils.Validate(e); err != nil {
		return fmt.Errorf("%w: %w", errMalformedEvent, err)
	}

	logger := h.logger.With(
		slog.String("event_type", e.EventType),
		slog.Int64("article_id", e.ArticleID),
		slog.String("article_name", e.ArticleName),
	)

	switch entities.EventType(e.EventType) {
	case entities.EventArticleCreated, entities.EventArticleUpdated,
		entities.EventArticleDeleted, entities.EventStockLow:
		logger.InfoContext(ctx, "article event received")
		return nil
	case entities.EventStockChanged:
		if e.NewStock == nil {
			return fmt.Errorf("%w: newStock is required for %s", errMalformedEvent, e.EventType)
		}
		if e.ArticleName == "" {
			return fmt.Errorf("%w: articleName is required for %s", errMalformedEvent, e.EventType)
		}
		logger.InfoContext(ctx, "stock changed",
			slog.String("old_stock", optionalInt(e.OldStock)),
			slog.Int("new_stock", *e.NewStock),
		)
		if *e.NewStock >= h.lowStockThreshold {
			return nil
		}
		lowStockAlerts.Inc()
		return h.creator.LowStock(ctx, e.ArticleID, e.ArticleName, *e.NewStock)
	default:
		return fmt.Errorf("%w: %s", errUnknownEvent, e.EventType)
	}
}

func (h *KafkaHandler) Close() error {
	return errors.Join(h.orders.Close(), h.articles.Close())
}

func optionalInt(v *int) string {
	if v == nil {
		return "unknown"
	}
	return strconv.Itoa(*v)
}
