package handler

import (
	"time"

	"github.com/SergeyBogomolovv/orderflow/internal/entities"
	"github.com/SergeyBogomolovv/orderflow/internal/service"
)

// CreateOrderRequest тело запроса на создание заказа
type CreateOrderRequest struct {
	Items []CreateOrderItem `json:"items" validate:"required,min=1,dive"`
}

// CreateOrderItem позиция нового заказа
type CreateOrderItem struct {
	ArticleID int64 `json:"articleId" validate:"required,gt=0" example:"5"`
	Quantity  int   `json:"quantity" validate:"required,gt=0" example:"2"`
}

// Order представляет заказ
type Order struct {
	ID          string      `json:"id" example:"0f8fad5b-d9cb-469f-a165-70867728950e"`
	UserID      int64       `json:"userId" example:"42"`
	Items       []OrderItem `json:"items"`
	TotalAmount string      `json:"totalAmount" example:"36.50"`
	Status      string      `json:"status" example:"PENDING"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// OrderItem позиция заказа со снимком имени и цены
type OrderItem struct {
	ArticleID   int64  `json:"articleId" example:"5"`
	ArticleName string `json:"articleName" example:"Keyboard"`
	Quantity    int    `json:"quantity" example:"2"`
	UnitPrice   string `json:"unitPrice" example:"10.00"`
	Subtotal    string `json:"subtotal" example:"20.00"`
}

// Notification уведомление пользователя
type Notification struct {
	ID              string    `json:"id"`
	UserID          int64     `json:"userId"`
	Type            string    `json:"type" example:"ORDER_SHIPPED"`
	Title           string    `json:"title"`
	Message         string    `json:"message"`
	IsRead          bool      `json:"isRead"`
	RelatedEntityID string    `json:"relatedEntityId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

type UnreadCountResponse struct {
	UnreadCount int64 `json:"unreadCount"`
}

type MarkAllReadResponse struct {
	Message string `json:"message"`
	Updated int64  `json:"updated"`
}

type HealthResponse struct {
	Status string `json:"status" example:"UP"`
}

func (r CreateOrderRequest) ToItemRequests() []service.ItemRequest {
	items := make([]service.ItemRequest, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, service.ItemRequest{ArticleID: it.ArticleID, Quantity: it.Quantity})
	}
	return items
}

func OrderItemEntityToJSON(i entities.OrderItem) OrderItem {
	return OrderItem{
		ArticleID:   i.ArticleID,
		ArticleName: i.ArticleName,
		Quantity:    i.Quantity,
		UnitPrice:   i.UnitPrice.String(),
		Subtotal:    i.Subtotal.String(),
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemEntityToJSON(it))
	}

	return Order{
		ID:          o.ID,
		UserID:      o.UserID,
		Items:       items,
		TotalAmount: o.TotalAmount.String(),
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	return res
}

func NotificationEntityToJSON(n entities.Notification) Notification {
	return Notification{
		ID:              n.ID,
		UserID:          n.UserID,
		Type:            string(n.Type),
		Title:           n.Title,
		Message:         n.Message,
		IsRead:          n.IsRead,
		RelatedEntityID: n.RelatedEntityID,
		CreatedAt:       n.CreatedAt,
	}
}

func NotificationsEntityToJSON(list []entities.Notification) []Notification {
	res := make([]Notification, 0, len(list))
	for _, n := range list {
		res = append(res, NotificationEntityToJSON(n))
	}
	return res
}
