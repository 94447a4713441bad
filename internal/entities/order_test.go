package entities_test

import (
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/orderflow/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestOrder(t *testing.T) *entities.Order {
	t.Helper()
	order := entities.NewOrder(42, now)
	item, err := entities.NewOrderItem(entities.Article{
		ID: 1, Name: "Keyboard", Price: entities.MustParseMoney("10.00"), Stock: 5,
	}, 2)
	require.NoError(t, err)
	require.NoError(t, order.AddItem(item))
	order.MarkPersisted()
	return order
}

func TestOrder_AddItemRecalculatesTotal(t *testing.T) {
	order := entities.NewOrder(42, now)

	first, err := entities.NewOrderItem(entities.Article{ID: 1, Name: "a", Price: entities.MustParseMoney("10.00")}, 2)
	require.NoError(t, err)
	second, err := entities.NewOrderItem(entities.Article{ID: 2, Name: "b", Price: entities.MustParseMoney("5.50")}, 3)
	require.NoError(t, err)

	require.NoError(t, order.AddItem(first))
	require.NoError(t, order.AddItem(second))

	assert.Equal(t, "36.50", order.TotalAmount.String())
	assert.Equal(t, "16.50", order.Items[1].Subtotal.String())
	assert.Equal(t, int64(1), order.Items[0].ArticleID)
	assert.Equal(t, entities.OrderStatusPending, order.Status)
}

func TestOrder_AddItemAfterPersist(t *testing.T) {
	order := newTestOrder(t)
	item, err := entities.NewOrderItem(entities.Article{ID: 3, Name: "c", Price: entities.MustParseMoney("1")}, 1)
	require.NoError(t, err)

	assert.ErrorIs(t, order.AddItem(item), entities.ErrOrderNotDraft)
	assert.Len(t, order.Items, 1)
}

func TestNewOrderItem_InvalidQuantity(t *testing.T) {
	_, err := entities.NewOrderItem(entities.Article{ID: 1, Price: entities.MustParseMoney("1")}, 0)
	assert.ErrorIs(t, err, entities.ErrInvalidQuantity)
}

func TestOrder_HappyPathLifecycle(t *testing.T) {
	order := newTestOrder(t)
	later := now.Add(time.Hour)

	require.NoError(t, order.ChangeStatus(entities.OrderStatusConfirmed, later))
	require.NoError(t, order.ChangeStatus(entities.OrderStatusShipped, later))
	require.NoError(t, order.ChangeStatus(entities.OrderStatusDelivered, later))

	assert.Equal(t, entities.OrderStatusDelivered, order.Status)
	assert.Equal(t, later, order.UpdatedAt)

	events := order.PullEvents()
	require.Len(t, events, 3)
	assert.Equal(t, entities.EventOrderConfirmed, events[0].Type)
	assert.Equal(t, entities.EventOrderShipped, events[1].Type)
	assert.Equal(t, entities.EventOrderDelivered, events[2].Type)
	assert.Empty(t, order.PullEvents())
}

func TestOrder_TransitionTable(t *testing.T) {
	all := []entities.OrderStatus{
		entities.OrderStatusPending,
		entities.OrderStatusConfirmed,
		entities.OrderStatusShipped,
		entities.OrderStatusDelivered,
		entities.OrderStatusCancelled,
	}
	allowed := map[entities.OrderStatus]entities.OrderStatus{
		entities.OrderStatusPending:   entities.OrderStatusConfirmed,
		entities.OrderStatusConfirmed: entities.OrderStatusShipped,
		entities.OrderStatusShipped:   entities.OrderStatusDelivered,
	}

	for _, from := range all {
		for _, to := range []entities.OrderStatus{
			entities.OrderStatusConfirmed,
			entities.OrderStatusShipped,
			entities.OrderStatusDelivered,
		} {
			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				order := newTestOrder(t)
				order.Status = from

				err := order.ChangeStatus(to, now)
				if allowed[from] == to {
					require.NoError(t, err)
					assert.Equal(t, to, order.Status)
					assert.Len(t, order.PullEvents(), 1)
					return
				}

				var transitionErr *entities.InvalidTransitionError
				require.True(t, errors.As(err, &transitionErr))
				assert.ErrorIs(t, err, entities.ErrInvalidTransition)
				assert.Equal(t, from, transitionErr.From)
				assert.Equal(t, to, transitionErr.To)
				assert.Equal(t, from, order.Status)
				assert.Empty(t, order.PullEvents())
			})
		}
	}
}

func TestOrder_ChangeStatusRejectsPendingAndCancelled(t *testing.T) {
	for _, target := range []entities.OrderStatus{entities.OrderStatusPending, entities.OrderStatusCancelled} {
		order := newTestOrder(t)
		err := order.ChangeStatus(target, now)
		assert.ErrorIs(t, err, entities.ErrInvalidTransition)
		assert.Equal(t, entities.OrderStatusPending, order.Status)
	}
}

func TestOrder_Cancel(t *testing.T) {
	for _, from := range []entities.OrderStatus{
		entities.OrderStatusPending,
		entities.OrderStatusConfirmed,
		entities.OrderStatusShipped,
	} {
		t.Run(string(from), func(t *testing.T) {
			order := newTestOrder(t)
			order.Status = from

			require.NoError(t, order.Cancel("out of stock", now))
			assert.Equal(t, entities.OrderStatusCancelled, order.Status)

			events := order.PullEvents()
			require.Len(t, events, 1)
			assert.Equal(t, entities.EventOrderCancelled, events[0].Type)
			assert.Equal(t, "out of stock", events[0].Reason)

			// повторная отмена не идемпотентна
			assert.ErrorIs(t, order.Cancel("again", now), entities.ErrInvalidTransition)
		})
	}
}

func TestOrder_CancelDelivered(t *testing.T) {
	order := newTestOrder(t)
	order.Status = entities.OrderStatusDelivered

	assert.ErrorIs(t, order.Cancel("late", now), entities.ErrInvalidTransition)
	assert.Equal(t, entities.OrderStatusDelivered, order.Status)
}

func TestOrder_RegisterCreated(t *testing.T) {
	order := newTestOrder(t)
	order.RegisterCreated(now)

	events := order.PullEvents()
	require.Len(t, events, 1)
	assert.Equal(t, entities.EventOrderCreated, events[0].Type)
	assert.Equal(t, order.ID, events[0].OrderID)
	assert.Equal(t, int64(42), events[0].UserID)
	assert.Equal(t, "20.00", events[0].TotalAmount.String())
	assert.Equal(t, 1, events[0].ItemCount)
}

func TestOrder_MarshalRoundTrip(t *testing.T) {
	order := newTestOrder(t)

	data, err := order.Marshal()
	require.NoError(t, err)

	var decoded entities.Order
	require.NoError(t, decoded.Unmarshal(data))
	assert.Equal(t, order.ID, decoded.ID)
	assert.Equal(t, "20.00", decoded.TotalAmount.String())
	assert.Equal(t, "10.00", decoded.Items[0].UnitPrice.String())

	assert.Error(t, decoded.Unmarshal([]byte("broken")))
}

func TestParseOrderStatus(t *testing.T) {
	status, err := entities.ParseOrderStatus("shipped")
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusShipped, status)

	_, err = entities.ParseOrderStatus("LOST")
	assert.Error(t, err)

	assert.True(t, entities.OrderStatusDelivered.IsTerminal())
	assert.True(t, entities.OrderStatusCancelled.IsTerminal())
	assert.False(t, entities.OrderStatusShipped.IsTerminal())
}
