package repo

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/orderflow/internal/entities"
)

var (
	orderColumns = []string{
		"id", "user_id", "total_amount", "status", "version", "created_at", "updated_at",
	}
	itemColumns = []string{
		"order_id", "position", "article_id", "article_name", "quantity", "unit_price", "subtotal",
	}
	notificationColumns = []string{
		"id", "user_id", "type", "title", "message", "is_read", "related_entity_id", "created_at",
	}
)

type Order struct {
	ID          string    `db:"id"`
	UserID      int64     `db:"user_id"`
	TotalAmount string    `db:"total_amount"`
	Status      string    `db:"status"`
	Version     int64     `db:"version"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type Item struct {
	OrderID     string `db:"order_id"`
	Position    int    `db:"position"`
	ArticleID   int64  `db:"article_id"`
	ArticleName string `db:"article_name"`
	Quantity    int    `db:"quantity"`
	UnitPrice   string `db:"unit_price"`
	Subtotal    string `db:"subtotal"`
}

type Notification struct {
	ID              string         `db:"id"`
	UserID          int64          `db:"user_id"`
	Type            string         `db:"type"`
	Title           string         `db:"title"`
	Message         string         `db:"message"`
	IsRead          bool           `db:"is_read"`
	RelatedEntityID sql.NullString `db:"related_entity_id"`
	CreatedAt       time.Time      `db:"created_at"`
}

func ItemToEntity(i Item) (entities.OrderItem, error) {
	unitPrice, err := entities.ParseMoney(i.UnitPrice)
	if err != nil {
		return entities.OrderItem{}, err
	}
	subtotal, err := entities.ParseMoney(i.Subtotal)
	if err != nil {
		return entities.OrderItem{}, err
	}
	return entities.OrderItem{
		ArticleID:   i.ArticleID,
		ArticleName: i.ArticleName,
		Quantity:    i.Quantity,
		UnitPrice:   unitPrice,
		Subtotal:    subtotal,
	}, nil
}

func OrderToEntity(o Order, items []Item) (entities.Order, error) {
	total, err := entities.ParseMoney(o.TotalAmount)
	if err != nil {
		return entities.Order{}, fmt.Errorf("order %s: %w", o.ID, err)
	}

	order := entities.Order{
		ID:          o.ID,
		UserID:      o.UserID,
		TotalAmount: total,
		Status:      entities.OrderStatus(o.Status),
		Version:     o.Version,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			item, err := ItemToEntity(it)
			if err != nil {
				return entities.Order{}, fmt.Errorf("order %s item %d: %w", o.ID, it.Position, err)
			}
			order.Items = append(order.Items, item)
		}
	}

	return order, nil
}

func NotificationToEntity(n Notification) entities.Notification {
	return entities.Notification{
		ID:              n.ID,
		UserID:          n.UserID,
		Type:            entities.NotificationType(n.Type),
		Title:           n.Title,
		Message:         n.Message,
		IsRead:          n.IsRead,
		RelatedEntityID: nullStringToString(n.RelatedEntityID),
		CreatedAt:       n.CreatedAt,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
