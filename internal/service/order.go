package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/orderflow/internal/entities"
	"github.com/SergeyBogomolovv/orderflow/pkg/trm"
)

const (
	reasonCancelledByUser  = "Cancelled by user"
	reasonCancelledByAdmin = "Cancelled by admin"
)

type OrderRepo interface {
	SaveOrder(ctx context.Context, o entities.Order) error
	SaveItems(ctx context.Context, orderID string, items []entities.OrderItem) error
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	ListOrdersByUser(ctx context.Context, userID int64) ([]entities.Order, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)

	// Оптимистичная блокировка по Version, при гонке ErrOrderConflict
	UpdateOrderStatus(ctx context.Context, o entities.Order) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type CatalogLookup interface {
	FindArticle(ctx context.Context, articleID int64) (entities.Article, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, events ...entities.DomainEvent)
}

type ItemRequest struct {
	ArticleID int64
	Quantity  int
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	cache     Cache
	catalog   CatalogLookup
	publisher EventPublisher
	now       func() time.Time
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	cache Cache,
	catalog CatalogLookup,
	publisher EventPublisher,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		cache:     cache,
		catalog:   catalog,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreateOrder собирает заказ из снимков каталога. Ничего не сохраняется,
// пока все позиции не найдены и не проверены по остаткам.
func (s *orderService) CreateOrder(ctx context.Context, userID int64, items []ItemRequest) (entities.Order, error) {
	if len(items) == 0 {
		return entities.Order{}, entities.ErrEmptyOrder
	}
	for _, it := range items {
		if it.Quantity <= 0 {
			return entities.Order{}, fmt.Errorf("%w: article %d quantity %d", entities.ErrInvalidQuantity, it.ArticleID, it.Quantity)
		}
	}

	order := entities.NewOrder(userID, s.now())
	for _, it := range items {
		article, err := s.catalog.FindArticle(ctx, it.ArticleID)
		if errors.Is(err, entities.ErrArticleNotFound) {
			return entities.Order{}, fmt.Errorf("%w: %d", entities.ErrArticleNotFound, it.ArticleID)
		}
		if err != nil {
			return entities.Order{}, fmt.Errorf("failed to find article %d: %w", it.ArticleID, err)
		}

		if article.Stock < it.Quantity {
			return entities.Order{}, &entities.InsufficientStockError{
				ArticleID:   article.ID,
				ArticleName: article.Name,
				Available:   article.Stock,
				Requested:   it.Quantity,
			}
		}

		item, err := entities.NewOrderItem(article, it.Quantity)
		if err != nil {
			return entities.Order{}, err
		}
		if err := order.AddItem(item); err != nil {
			return entities.Order{}, err
		}
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.SaveOrder(ctx, *order); err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}
		if err := s.repo.SaveItems(ctx, order.ID, order.Items); err != nil {
			return fmt.Errorf("failed to save items: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	order.MarkPersisted()
	order.RegisterCreated(s.now())
	s.logger.Debug("order created", slog.String("order_id", order.ID), slog.Int("items", len(order.Items)))

	s.cacheOrder(*order)
	s.publisher.Publish(ctx, order.PullEvents()...)

	return *order, nil
}

// GetOrder возвращает заказ владельца. Чужой заказ неотличим от несуществующего.
func (s *orderService) GetOrder(ctx context.Context, orderID string, userID int64) (entities.Order, error) {
	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.UserID != userID {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return order, nil
}

func (s *orderService) ListUserOrders(ctx context.Context, userID int64) ([]entities.Order, error) {
	orders, err := s.repo.ListOrdersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateOrderStatus административная смена статуса. CANCELLED уходит в отмену.
func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID string, target entities.OrderStatus) (entities.Order, error) {
	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	if target == entities.OrderStatusCancelled {
		return s.applyTransition(ctx, order, func(o *entities.Order) error {
			return o.Cancel(reasonCancelledByAdmin, s.now())
		})
	}
	return s.applyTransition(ctx, order, func(o *entities.Order) error {
		return o.ChangeStatus(target, s.now())
	})
}

func (s *orderService) CancelOrder(ctx context.Context, orderID string, userID int64) (entities.Order, error) {
	order, err := s.GetOrder(ctx, orderID, userID)
	if err != nil {
		return entities.Order{}, err
	}
	return s.applyTransition(ctx, order, func(o *entities.Order) error {
		return o.Cancel(reasonCancelledByUser, s.now())
	})
}

func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.LatestOrders(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to load latest orders: %w", err)
	}
	for _, order := range orders {
		s.cacheOrder(order)
	}
	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

// applyTransition сохраняет переход и публикует события только после успешной записи.
func (s *orderService) applyTransition(ctx context.Context, order entities.Order, transition func(o *entities.Order) error) (entities.Order, error) {
	if err := transition(&order); err != nil {
		return entities.Order{}, err
	}

	if err := s.repo.UpdateOrderStatus(ctx, order); err != nil {
		// В кэше могла остаться устаревшая версия
		s.cache.Delete(order.ID)
		if errors.Is(err, entities.ErrOrderConflict) {
			return entities.Order{}, err
		}
		return entities.Order{}, fmt.Errorf("failed to update order status: %w", err)
	}
	order.Version++

	s.logger.Debug("order status changed", slog.String("order_id", order.ID), slog.String("status", string(order.Status)))

	s.cacheOrder(order)
	s.publisher.Publish(ctx, order.PullEvents()...)

	return order, nil
}

func (s *orderService) loadOrder(ctx context.Context, orderID string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderID); ok {
		var order entities.Order
		err := order.Unmarshal(data)
		if err == nil {
			return order, nil
		}
		s.logger.Error("failed to unmarshal cached order", slog.String("order_id", orderID), slog.Any("error", err))
		s.cache.Delete(orderID)
	}

	order, err := s.repo.GetOrderByID(ctx, orderID)
	if errors.Is(err, entities.ErrOrderNotFound) {
		return entities.Order{}, err
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	s.cacheOrder(order)
	return order, nil
}

func (s *orderService) cacheOrder(order entities.Order) {
	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", order.ID), slog.Any("error", err))
		return
	}
	s.cache.Set(order.ID, data)
}
