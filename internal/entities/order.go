package entities

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Из DELIVERED и CANCELLED переходов нет.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered, OrderStatusCancelled},
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return status, nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	return slices.Contains(orderTransitions[s], target)
}

func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

type OrderItem struct {
	ArticleID   int64
	ArticleName string
	Quantity    int
	UnitPrice   Money
	Subtotal    Money
}

// NewOrderItem фиксирует снимок имени и цены товара на момент заказа.
func NewOrderItem(article Article, quantity int) (OrderItem, error) {
	if quantity <= 0 {
		return OrderItem{}, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	subtotal, err := article.Price.Mul(quantity)
	if err != nil {
		return OrderItem{}, err
	}
	return OrderItem{
		ArticleID:   article.ID,
		ArticleName: article.Name,
		Quantity:    quantity,
		UnitPrice:   article.Price,
		Subtotal:    subtotal,
	}, nil
}

type Order struct {
	ID          string
	UserID      int64
	Items       []OrderItem
	TotalAmount Money
	Status      OrderStatus
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time

	draft  bool
	events []DomainEvent
}

func NewOrder(userID int64, now time.Time) *Order {
	return &Order{
		ID:          uuid.NewString(),
		UserID:      userID,
		TotalAmount: ZeroMoney(),
		Status:      OrderStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
		draft:       true,
	}
}

func (o *Order) AddItem(item OrderItem) error {
	if !o.draft {
		return ErrOrderNotDraft
	}
	o.Items = append(o.Items, item)
	return o.recalculateTotal()
}

// MarkPersisted закрывает заказ для добавления позиций.
func (o *Order) MarkPersisted() {
	o.draft = false
}

func (o *Order) recalculateTotal() error {
	total := ZeroMoney()
	for _, item := range o.Items {
		var err error
		if total, err = total.Add(item.Subtotal); err != nil {
			return err
		}
	}
	o.TotalAmount = total
	return nil
}

func (o *Order) Confirm(now time.Time) error {
	return o.transition(OrderStatusConfirmed, EventOrderConfirmed, "", now)
}

func (o *Order) Ship(now time.Time) error {
	return o.transition(OrderStatusShipped, EventOrderShipped, "", now)
}

func (o *Order) Deliver(now time.Time) error {
	return o.transition(OrderStatusDelivered, EventOrderDelivered, "", now)
}

func (o *Order) Cancel(reason string, now time.Time) error {
	return o.transition(OrderStatusCancelled, EventOrderCancelled, reason, now)
}

// ChangeStatus двигает заказ вперёд по жизненному циклу.
// Отмена идёт только через Cancel, возврат в PENDING запрещён.
func (o *Order) ChangeStatus(target OrderStatus, now time.Time) error {
	switch target {
	case OrderStatusConfirmed:
		return o.Confirm(now)
	case OrderStatusShipped:
		return o.Ship(now)
	case OrderStatusDelivered:
		return o.Deliver(now)
	default:
		return &InvalidTransitionError{From: o.Status, To: target}
	}
}

func (o *Order) transition(target OrderStatus, eventType EventType, reason string, now time.Time) error {
	if !o.Status.CanTransitionTo(target) {
		return &InvalidTransitionError{From: o.Status, To: target}
	}
	o.Status = target
	o.UpdatedAt = now
	o.registerEvent(eventType, reason, now)
	return nil
}

func (o *Order) RegisterCreated(now time.Time) {
	o.registerEvent(EventOrderCreated, "", now)
}

func (o *Order) registerEvent(eventType EventType, reason string, now time.Time) {
	o.events = append(o.events, DomainEvent{
		Type:        eventType,
		OrderID:     o.ID,
		UserID:      o.UserID,
		TotalAmount: o.TotalAmount,
		ItemCount:   len(o.Items),
		Reason:      reason,
		OccurredAt:  now,
	})
}

// PullEvents отдаёт накопленные события и очищает очередь.
func (o *Order) PullEvents() []DomainEvent {
	events := o.events
	o.events = nil
	return events
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(o)
}
