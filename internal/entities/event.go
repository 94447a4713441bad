package entities

import "time"

type EventType string

const (
	EventOrderCreated   EventType = "ORDER_CREATED"
	EventOrderConfirmed EventType = "ORDER_CONFIRMED"
	EventOrderShipped   EventType = "ORDER_SHIPPED"
	EventOrderDelivered EventType = "ORDER_DELIVERED"
	EventOrderCancelled EventType = "ORDER_CANCELLED"

	EventArticleCreated EventType = "ARTICLE_CREATED"
	EventArticleUpdated EventType = "ARTICLE_UPDATED"
	EventArticleDeleted EventType = "ARTICLE_DELETED"
	EventStockChanged   EventType = "STOCK_CHANGED"
	EventStockLow       EventType = "STOCK_LOW"
)

// DomainEvent не сохраняется, живёт до публикации.
type DomainEvent struct {
	Type        EventType
	OrderID     string
	UserID      int64
	TotalAmount Money
	ItemCount   int
	Reason      string
	OccurredAt  time.Time
}

type Article struct {
	ID    int64
	Name  string
	Price Money
	Stock int
}
