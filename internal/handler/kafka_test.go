package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	mocks "github.com/SergeyBogomolovv/orderflow/internal/handler/mocks"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testOrderID = "0f8fad5b-d9cb-469f-a165-70867728950e"

func newTestKafkaHandler(t *testing.T, orders, articles messageReader) (*KafkaHandler, *mocks.MockNotificationCreator) {
	creator := mocks.NewMockNotificationCreator(t)
	return &KafkaHandler{
		logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
		orders:            orders,
		articles:          articles,
		orderTopic:        "order-events",
		articleTopic:      "article-events",
		creator:           creator,
		lowStockThreshold: 10,
	}, creator
}

func TestKafkaHandler_HandleOrderEvent(t *testing.T) {
	type MockBehavior func(c *mocks.MockNotificationCreator)

	testCases := []struct {
		name         string
		payload      string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:    "Created",
			payload: `{"eventType":"ORDER_CREATED","orderId":"` + testOrderID + `","userId":42,"totalAmount":"36.50","itemCount":2,"timestamp":1}`,
			mockBehavior: func(c *mocks.MockNotificationCreator) {
				c.EXPECT().OrderCreated(mock.Anything, int64(42), testOrderID, "36.50", 2).Return(nil).Once()
			},
		},
		{
			name:    "Created with numeric total",
			payload: `{"eventType":"ORDER_CREATED","orderId":"` + testOrderID + `","userId":42,"totalAmount":36.5,"itemCount":2}`,
			mockBehavior: func(c *mocks.MockNotificationCreator) {
				c.EXPECT().OrderCreated(mock.Anything, int64(42), testOrderID, "36.5", 2).Return(nil).Once()
			},
		},
		{
			name:    "Created without total and count",
			payload: `{"eventType":"ORDER_CREATED","orderId":"` + testOrderID + `","userId":42}`,
			mockBehavior: func(c *mocks.MockNotificationCreator) {
				c.EXPECT().OrderCreated(mock.Anything, int64(42), testOrderID, "0", 0).Return(nil).Once()
			},
		},
		{
			name:    "Confirmed",
			payload: `{"eventType":"ORDER_CONFIRMED","orderId":"` + testOrderID + `","userId":42}`,
			mockBehavior: func(c *mocks.MockNotificationCreator) {
				c.EXPECT().OrderConfirmed(mock.Anything, int64(42), testOrderID).Return(nil).Once()
			},
		},
		{
			name:    "Shipped",
			payload: `{"eventType":"ORDER_SHIPPED","orderId":"` + testOrderID + `","userId":42}`,
			mockBehavior: func(c *mocks.MockNotificationCreator) {
				c.EXPECT().OrderShipped(mock.Anything, int64(42), testOrderID).Return(nil).Once()
			},
		},
		{
			name:    "Delivered",
			payload: `{"eventType":"ORDER_DELIVERED","orderId":"` + testOrderID + `","userId":42}`,
			mockBehavior: func(c *mocks.MockNotificationCreator) {
				c.EXPECT().OrderDelivered(mock.Anything, int64(42), testOrderID).Return(nil).Once()
			},
		},
		{
			name:    "Cancelled",
			payload: `{"eventType":"ORDER_CANCELLED","orderId":"` + testOrderID + `","userId":42,"reason":"Cancelled by user"}`,
			mockBehavior: func(c *mocks.MockNotificationCreator) {
				c.EXPECT().OrderCancelled(mock.Anything, int64(42), testOrderID, "Cancelled by user").Return(nil).Once()
			},
		},
		{
			name:    "Cancelled without reason",
			payload: `{"eventType":"ORDER_CANCELLED","orderId":"` + testOrderID + `","userId":42}`,
			mockBehavior: func(c *mocks.MockNotificationCreator) {
				c.EXPECT().OrderCancelled(mock.Anything, int64(42), testOrderID, "Unknown reason").Return(nil).Once()
			},
		},
		{
			name:         "Unknown type",
			payload:      `{"eventType":"ORDER_LOST","orderId":"` + testOrderID + `","userId":42}`,
			mockBehavior: func(c *mocks.MockNotificationCreator) {},
			wantErr:      errUnknownEvent,
		},
		{
			name:         "Missing user",
			payload:      `{"eventType":"ORDER_SHIPPED","orderId":"` + testOrderID + `"}`,
			mockBehavior: func(c *mocks.MockNotificationCreator) {},
			wantErr:      errMalformedEvent,
		},
		{
			name:         "Missing type",
			payload:      `{"orderId":"` + testOrderID + `","userId":42}`,
			mockBehavior: func(c *mocks.MockNotificationCreator) {},
			wantErr:      errMalformedEvent,
		},
		{
			name:         "Not json",
			payload:      `hello`,
			mockBehavior: func(c *mocks.MockNotificationCreator) {},
			wantErr:      errMalformedEvent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, creator := newTestKafkaHandler(t, nil, nil)
			tc.mockBehavior(creator)

			err := h.HandleOrderEvent(context.Background(), []byte(tc.payload))

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestKafkaHandler_HandleArticleEvent(t *testing.T) {
	type MockBehavior func(c *mocks.MockNotificationCreator)

	testCases := []struct {
		name         string
		payload      string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:    "Stock below threshold",
			payload: `{"eventType":"STOCK_CHANGED","articleId":5,"articleName":"Mouse","oldStock":12,"newStock":3}`,
			mockBehavior: func(c *mocks.MockNotificationCreator) {
				c.EXPECT().LowStock(mock.Anything, int64(5), "Mouse", 3).Return(nil).Once()
			},
		},
		{
			name:    "Stock drops to zero",
			payload: `{"eventType":"STOCK_CHANGED","articleId":5,"articleName":"Mouse","newStock":0}`,
			mockBehavior: func(c *mocks.MockNotificationCreator) {
				c.EXPECT().LowStock(mock.Anything, int64(5), "Mouse", 0).Return(nil).Once()
			},
		},
		{
			name:         "Stock at threshold",
			payload:      `{"eventType":"STOCK_CHANGED","articleId":5,"articleName":"Mouse","oldStock":12,"newStock":10}`,
			mockBehavior: func(c *mocks.MockNotificationCreator) {},
		},
		{
			name:         "Stock without new value",
			payload:      `{"eventType":"STOCK_CHANGED","articleId":5,"articleName":"Mouse"}`,
			mockBehavior: func(c *mocks.MockNotificationCreator) {},
			wantErr:      errMalformedEvent,
		},
		{
			name:         "Article created is logged only",
			payload:      `{"eventType":"ARTICLE_CREATED","articleId":5,"articleName":"Mouse"}`,
			mockBehavior: func(c *mocks.MockNotificationCreator) {},
		},
		{
			name:         "Stock low from catalog is logged only",
			payload:      `{"eventType":"STOCK_LOW","articleId":5,"articleName":"Mouse","newStock":1}`,
			mockBehavior: func(c *mocks.MockNotificationCreator) {},
		},
		{
			name:         "Unknown type",
			payload:      `{"eventType":"PRICE_CHANGED","articleId":5,"articleName":"Mouse"}`,
			mockBehavior: func(c *mocks.MockNotificationCreator) {},
			wantErr:      errUnknownEvent,
		},
		{
			name:         "Missing article name",
			payload:      `{"eventType":"STOCK_CHANGED","articleId":5,"newStock":1}`,
			mockBehavior: func(c *mocks.MockNotificationCreator) {},
			wantErr:      errMalformedEvent,
		},
		{
			name:         "Article deleted without name is logged only",
			payload:      `{"eventType":"ARTICLE_DELETED","articleId":5}`,
			mockBehavior: func(c *mocks.MockNotificationCreator) {},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, creator := newTestKafkaHandler(t, nil, nil)
			tc.mockBehavior(creator)

			err := h.HandleArticleEvent(context.Background(), []byte(tc.payload))

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

type fakeReader struct {
	messages  []kafka.Message
	committed []kafka.Message
	closed    bool
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.messages) == 0 {
		return kafka.Message{}, context.Canceled
	}
	m := r.messages[0]
	r.messages = r.messages[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error {
	r.closed = true
	return nil
}

func TestKafkaHandler_ConsumeCommitsEverything(t *testing.T) {
	orders := &fakeReader{messages: []kafka.Message{
		{Offset: 1, Value: []byte(`{"eventType":"ORDER_SHIPPED","orderId":"` + testOrderID + `","userId":42}`)},
		{Offset: 2, Value: []byte(`broken`)},
		{Offset: 3, Value: []byte(`{"eventType":"ORDER_DELIVERED","orderId":"` + testOrderID + `","userId":42}`)},
	}}
	articles := &fakeReader{messages: []kafka.Message{
		{Offset: 7, Value: []byte(`{"eventType":"STOCK_CHANGED","articleId":5,"articleName":"Mouse","newStock":2}`)},
	}}

	h, creator := newTestKafkaHandler(t, orders, articles)
	creator.EXPECT().OrderShipped(mock.Anything, int64(42), testOrderID).Return(nil).Once()
	creator.EXPECT().OrderDelivered(mock.Anything, int64(42), testOrderID).Return(errors.New("db error")).Once()
	creator.EXPECT().LowStock(mock.Anything, int64(5), "Mouse", 2).Return(nil).Once()

	malformed := testutil.ToFloat64(eventsConsumed.WithLabelValues("order-events", outcomeMalformed))
	failed := testutil.ToFloat64(eventsConsumed.WithLabelValues("order-events", outcomeFailed))

	require.NoError(t, h.Consume(context.Background()))

	assert.Len(t, orders.committed, 3)
	assert.Len(t, articles.committed, 1)
	assert.Equal(t, malformed+1, testutil.ToFloat64(eventsConsumed.WithLabelValues("order-events", outcomeMalformed)))
	assert.Equal(t, failed+1, testutil.ToFloat64(eventsConsumed.WithLabelValues("order-events", outcomeFailed)))

	require.NoError(t, h.Close())
	assert.True(t, orders.closed)
	assert.True(t, articles.closed)
}
