package entities

import (
	"errors"
	"fmt"
)

var (
	// Ошибки валидации
	ErrEmptyOrder      = errors.New("order must contain at least one item")
	ErrInvalidQuantity = errors.New("item quantity must be greater than zero")
	ErrNegativeMoney   = errors.New("money value cannot be negative")

	// Not found; чужой объект отдаётся так же
	ErrOrderNotFound        = errors.New("order not found")
	ErrArticleNotFound      = errors.New("article not found")
	ErrNotificationNotFound = errors.New("notification not found")

	// Конфликты состояния
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrOrderNotDraft     = errors.New("items can only be added to a new order")
	ErrOrderConflict     = errors.New("order was modified concurrently")

	ErrCatalogUnavailable = errors.New("articles catalog unavailable")
)

type InvalidTransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

type InsufficientStockError struct {
	ArticleID   int64
	ArticleName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for article %s (id %d): available %d, requested %d",
		e.ArticleName, e.ArticleID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
