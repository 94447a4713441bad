package repo

import (
	"database/sql"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/orderflow/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderToEntity(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	row := Order{
		ID:          "5f0c6c5e-8a3e-4a55-9a0c-1c2b1b0d7f10",
		UserID:      7,
		TotalAmount: "36.5",
		Status:      "SHIPPED",
		Version:     3,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	items := []Item{
		{OrderID: row.ID, Position: 0, ArticleID: 1, ArticleName: "a", Quantity: 2, UnitPrice: "10.00", Subtotal: "20.00"},
		{OrderID: row.ID, Position: 1, ArticleID: 2, ArticleName: "b", Quantity: 3, UnitPrice: "5.50", Subtotal: "16.50"},
	}

	order, err := OrderToEntity(row, items)
	require.NoError(t, err)

	assert.Equal(t, "36.50", order.TotalAmount.String())
	assert.Equal(t, entities.OrderStatusShipped, order.Status)
	assert.Equal(t, int64(3), order.Version)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "16.50", order.Items[1].Subtotal.String())
	assert.Equal(t, int64(2), order.Items[1].ArticleID)
}

func TestOrderToEntity_InvalidMoney(t *testing.T) {
	_, err := OrderToEntity(Order{ID: "x", TotalAmount: "abc"}, nil)
	assert.Error(t, err)

	_, err = OrderToEntity(Order{ID: "x", TotalAmount: "1.00"}, []Item{{UnitPrice: "-1", Subtotal: "1"}})
	assert.ErrorIs(t, err, entities.ErrNegativeMoney)
}

func TestNotificationToEntity(t *testing.T) {
	n := NotificationToEntity(Notification{
		ID:     "id",
		UserID: 1,
		Type:   "STOCK_LOW",
	})
	assert.Equal(t, entities.NotificationStockLow, n.Type)
	assert.Empty(t, n.RelatedEntityID)

	n = NotificationToEntity(Notification{RelatedEntityID: sql.NullString{String: "42", Valid: true}})
	assert.Equal(t, "42", n.RelatedEntityID)
}
