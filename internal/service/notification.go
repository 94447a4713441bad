package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/orderflow/internal/entities"
	"github.com/SergeyBogomolovv/orderflow/pkg/trm"
	"github.com/google/uuid"
)

type NotificationRepo interface {
	SaveNotification(ctx context.Context, n entities.Notification) error
	ListByUser(ctx context.Context, userID int64, unreadOnly bool) ([]entities.Notification, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	GetNotificationByID(ctx context.Context, id string) (entities.Notification, error)
	MarkAsRead(ctx context.Context, id string) error
	MarkAllAsRead(ctx context.Context, userID int64) (int64, error)
}

type notificationService struct {
	logger      *slog.Logger
	txManager   trm.Manager
	repo        NotificationRepo
	adminUserID int64
	now         func() time.Time
}

func NewNotificationService(logger *slog.Logger, txManager trm.Manager, repo NotificationRepo, adminUserID int64) *notificationService {
	return &notificationService{
		logger:      logger.With(slog.String("service", "notification")),
		txManager:   txManager,
		repo:        repo,
		adminUserID: adminUserID,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *notificationService) OrderCreated(ctx context.Context, userID int64, orderID, totalAmount string, itemCount int) error {
	return s.create(ctx, userID, entities.NotificationOrderCreated, "Order Created",
		fmt.Sprintf("Your order #%s has been created successfully with %d items (Total: %s €)", orderID, itemCount, totalAmount),
		orderID)
}

func (s *notificationService) OrderConfirmed(ctx context.Context, userID int64, orderID string) error {
	return s.create(ctx, userID, entities.NotificationOrderConfirmed, "Order Confirmed",
		fmt.Sprintf("Your order #%s has been confirmed and is being processed", orderID),
		orderID)
}

func (s *notificationService) OrderShipped(ctx context.Context, userID int64, orderID string) error {
	return s.create(ctx, userID, entities.NotificationOrderShipped, "Order Shipped",
		fmt.Sprintf("Your order #%s has been shipped and is on its way!", orderID),
		orderID)
}

func (s *notificationService) OrderDelivered(ctx context.Context, userID int64, orderID string) error {
	return s.create(ctx, userID, entities.NotificationOrderDelivered, "Order Delivered",
		fmt.Sprintf("Your order #%s has been delivered successfully. Enjoy your purchase!", orderID),
		orderID)
}

func (s *notificationService) OrderCancelled(ctx context.Context, userID int64, orderID, reason string) error {
	return s.create(ctx, userID, entities.NotificationOrderCancelled, "Order Cancelled",
		fmt.Sprintf("Your order #%s has been cancelled. Reason: %s", orderID, reason),
		orderID)
}

// LowStock адресуется администратору из конфигурации.
func (s *notificationService) LowStock(ctx context.Context, articleID int64, articleName string, stock int) error {
	return s.create(ctx, s.adminUserID, entities.NotificationStockLow, "Low Stock Alert",
		fmt.Sprintf("Article '%s' is running low on stock. Current stock: %d units", articleName, stock),
		strconv.FormatInt(articleID, 10))
}

func (s *notificationService) ListNotifications(ctx context.Context, userID int64) ([]entities.Notification, error) {
	return s.repo.ListByUser(ctx, userID, false)
}

func (s *notificationService) ListUnread(ctx context.Context, userID int64) ([]entities.Notification, error) {
	return s.repo.ListByUser(ctx, userID, true)
}

func (s *notificationService) CountUnread(ctx context.Context, userID int64) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

// MarkAsRead не различает отсутствующее и чужое уведомление.
func (s *notificationService) MarkAsRead(ctx context.Context, id string, userID int64) (entities.Notification, error) {
	var notification entities.Notification
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		n, err := s.repo.GetNotificationByID(ctx, id)
		if err != nil {
			return err
		}
		if n.UserID != userID {
			return entities.ErrNotificationNotFound
		}
		if !n.IsRead {
			if err := s.repo.MarkAsRead(ctx, id); err != nil {
				return err
			}
			n.IsRead = true
		}
		notification = n
		return nil
	})
	if errors.Is(err, entities.ErrNotificationNotFound) {
		return entities.Notification{}, err
	}
	if err != nil {
		return entities.Notification{}, fmt.Errorf("failed to mark notification as read: %w", err)
	}
	return notification, nil
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, userID int64) (int64, error) {
	updated, err := s.repo.MarkAllAsRead(ctx, userID)
	if err != nil {
		return 0, err
	}
	s.logger.Info("marked notifications as read", slog.Int64("user_id", userID), slog.Int64("updated", updated))
	return updated, nil
}

func (s *notificationService) create(ctx context.Context, userID int64, kind entities.NotificationType, title, message, relatedID string) error {
	n := entities.Notification{
		ID:              uuid.NewString(),
		UserID:          userID,
		Type:            kind,
		Title:           title,
		Message:         message,
		RelatedEntityID: relatedID,
		CreatedAt:       s.now(),
	}
	if err := s.repo.SaveNotification(ctx, n); err != nil {
		return fmt.Errorf("failed to save %s notification: %w", kind, err)
	}
	s.logger.Info("notification created",
		slog.String("type", string(kind)),
		slog.Int64("user_id", userID),
		slog.String("related_id", relatedID),
	)
	return nil
}
