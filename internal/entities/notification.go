package entities

import "time"

type NotificationType string

const (
	NotificationOrderCreated   NotificationType = "ORDER_CREATED"
	NotificationOrderConfirmed NotificationType = "ORDER_CONFIRMED"
	NotificationOrderShipped   NotificationType = "ORDER_SHIPPED"
	NotificationOrderDelivered NotificationType = "ORDER_DELIVERED"
	NotificationOrderCancelled NotificationType = "ORDER_CANCELLED"
	NotificationArticleCreated NotificationType = "ARTICLE_CREATED"
	NotificationArticleUpdated NotificationType = "ARTICLE_UPDATED"
	NotificationStockLow       NotificationType = "STOCK_LOW"
	NotificationStockChanged   NotificationType = "STOCK_CHANGED"
)

type Notification struct {
	ID              string
	UserID          int64
	Type            NotificationType
	Title           string
	Message         string
	IsRead          bool
	RelatedEntityID string
	CreatedAt       time.Time
}
