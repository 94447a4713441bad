package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SergeyBogomolovv/orderflow/internal/auth"
	"github.com/SergeyBogomolovv/orderflow/internal/entities"
	"github.com/SergeyBogomolovv/orderflow/internal/handler"
	mocks "github.com/SergeyBogomolovv/orderflow/internal/handler/mocks"
	"github.com/SergeyBogomolovv/orderflow/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testOrder() entities.Order {
	return entities.Order{
		ID:     orderID,
		UserID: userID,
		Items: []entities.OrderItem{{
			ArticleID:   5,
			ArticleName: "Keyboard",
			Quantity:    2,
			UnitPrice:   entities.MustParseMoney("10"),
			Subtotal:    entities.MustParseMoney("20"),
		}},
		TotalAmount: entities.MustParseMoney("20"),
		Status:      entities.OrderStatusPending,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

func newOrderRouter(t *testing.T, svc *mocks.MockOrderService, tokens *auth.TokenService) chi.Router {
	r := chi.NewRouter()
	handler.NewOrderHandler(discardLogger(), svc, tokens).Init(r)
	return r
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	type MockBehavior func(svc *mocks.MockOrderService)

	items := []service.ItemRequest{{ArticleID: 5, Quantity: 2}}

	testCases := []struct {
		name         string
		body         string
		mockBehavior MockBehavior
		wantStatus   int
		wantBody     string
	}{
		{
			name: "Created",
			body: `{"items":[{"articleId":5,"quantity":2}]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, userID, items).Return(testOrder(), nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"totalAmount":"20.00"`,
		},
		{
			name:         "Empty items",
			body:         `{"items":[]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Items":"min"`,
		},
		{
			name:         "Zero quantity",
			body:         `{"items":[{"articleId":5,"quantity":0}]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Items[0].Quantity":"required"`,
		},
		{
			name:         "Broken json",
			body:         `{"items":`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `invalid json body`,
		},
		{
			name: "Article not found",
			body: `{"items":[{"articleId":5,"quantity":2}]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, userID, items).
					Return(entities.Order{}, fmt.Errorf("%w: 5", entities.ErrArticleNotFound)).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `article not found`,
		},
		{
			name: "Insufficient stock",
			body: `{"items":[{"articleId":5,"quantity":2}]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, userID, items).
					Return(entities.Order{}, &entities.InsufficientStockError{
						ArticleID: 5, ArticleName: "Keyboard", Available: 1, Requested: 2,
					}).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `available 1, requested 2`,
		},
		{
			name: "Catalog unavailable",
			body: `{"items":[{"articleId":5,"quantity":2}]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, userID, items).
					Return(entities.Order{}, fmt.Errorf("failed to find article 5: %w", entities.ErrCatalogUnavailable)).Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `articles catalog unavailable`,
		},
		{
			name: "Internal error",
			body: `{"items":[{"articleId":5,"quantity":2}]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, userID, items).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)
			tokens := newTokens(t)
			r := newOrderRouter(t, svc, tokens)

			res := do(t, r, http.MethodPost, "/api/orders", issue(t, tokens, userID, auth.RoleUser), tc.body)

			assert.Equal(t, tc.wantStatus, res.status)
			assert.Contains(t, res.body, tc.wantBody)
		})
	}
}

func TestOrderHandler_CreateOrderResponse(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	svc.EXPECT().CreateOrder(mock.Anything, userID, mock.Anything).Return(testOrder(), nil).Once()
	tokens := newTokens(t)
	r := newOrderRouter(t, svc, tokens)

	res := do(t, r, http.MethodPost, "/api/orders", issue(t, tokens, userID, auth.RoleUser), `{"items":[{"articleId":5,"quantity":2}]}`)
	require.Equal(t, http.StatusCreated, res.status)

	var got handler.Order
	require.NoError(t, json.Unmarshal([]byte(res.body), &got))
	assert.Equal(t, orderID, got.ID)
	assert.Equal(t, "PENDING", got.Status)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Keyboard", got.Items[0].ArticleName)
	assert.Equal(t, "10.00", got.Items[0].UnitPrice)
	assert.Equal(t, "20.00", got.Items[0].Subtotal)
}

func TestOrderHandler_GetOrder(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "OK", wantStatus: http.StatusOK, wantBody: `"id":"` + orderID + `"`},
		{name: "Not found", err: entities.ErrOrderNotFound, wantStatus: http.StatusNotFound, wantBody: `"order not found"`},
		{name: "Internal error", err: errors.New("db error"), wantStatus: http.StatusInternalServerError, wantBody: `"internal server error"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			order := testOrder()
			if tc.err != nil {
				order = entities.Order{}
			}
			svc.EXPECT().GetOrder(mock.Anything, orderID, userID).Return(order, tc.err).Once()
			tokens := newTokens(t)

			res := do(t, newOrderRouter(t, svc, tokens), http.MethodGet, "/api/orders/"+orderID, issue(t, tokens, userID, auth.RoleUser), "")

			assert.Equal(t, tc.wantStatus, res.status)
			assert.Contains(t, res.body, tc.wantBody)
		})
	}
}

func TestOrderHandler_ListOrders(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	svc.EXPECT().ListUserOrders(mock.Anything, userID).Return([]entities.Order{testOrder(), testOrder()}, nil).Once()
	tokens := newTokens(t)

	res := do(t, newOrderRouter(t, svc, tokens), http.MethodGet, "/api/orders", issue(t, tokens, userID, auth.RoleUser), "")
	require.Equal(t, http.StatusOK, res.status)

	var got []handler.Order
	require.NoError(t, json.Unmarshal([]byte(res.body), &got))
	assert.Len(t, got, 2)
}

func TestOrderHandler_ListOrdersEmpty(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	svc.EXPECT().ListUserOrders(mock.Anything, userID).Return(nil, nil).Once()
	tokens := newTokens(t)

	res := do(t, newOrderRouter(t, svc, tokens), http.MethodGet, "/api/orders", issue(t, tokens, userID, auth.RoleAdmin), "")
	assert.Equal(t, http.StatusOK, res.status)
	assert.JSONEq(t, `[]`, res.body)
}

func TestOrderHandler_UpdateOrderStatus(t *testing.T) {
	type MockBehavior func(svc *mocks.MockOrderService)

	testCases := []struct {
		name         string
		query        string
		role         auth.Role
		mockBehavior MockBehavior
		wantStatus   int
		wantBody     string
	}{
		{
			name:  "Confirmed",
			query: "?status=CONFIRMED",
			role:  auth.RoleAdmin,
			mockBehavior: func(svc *mocks.MockOrderService) {
				order := testOrder()
				order.Status = entities.OrderStatusConfirmed
				svc.EXPECT().UpdateOrderStatus(mock.Anything, orderID, entities.OrderStatusConfirmed).Return(order, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"CONFIRMED"`,
		},
		{
			name:  "Lowercase status",
			query: "?status=shipped",
			role:  auth.RoleAdmin,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().UpdateOrderStatus(mock.Anything, orderID, entities.OrderStatusShipped).Return(testOrder(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:         "Missing status",
			role:         auth.RoleAdmin,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `status parameter is required`,
		},
		{
			name:         "Unknown status",
			query:        "?status=LOST",
			role:         auth.RoleAdmin,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `unknown order status`,
		},
		{
			name:  "Invalid transition",
			query: "?status=DELIVERED",
			role:  auth.RoleAdmin,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().UpdateOrderStatus(mock.Anything, orderID, entities.OrderStatusDelivered).
					Return(entities.Order{}, &entities.InvalidTransitionError{
						From: entities.OrderStatusPending, To: entities.OrderStatusDelivered,
					}).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `invalid order status transition`,
		},
		{
			name:  "Conflict",
			query: "?status=CONFIRMED",
			role:  auth.RoleAdmin,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().UpdateOrderStatus(mock.Anything, orderID, entities.OrderStatusConfirmed).
					Return(entities.Order{}, entities.ErrOrderConflict).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `modified concurrently`,
		},
		{
			name:  "Not found",
			query: "?status=CANCELLED",
			role:  auth.RoleAdmin,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().UpdateOrderStatus(mock.Anything, orderID, entities.OrderStatusCancelled).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:         "User is forbidden",
			query:        "?status=CONFIRMED",
			role:         auth.RoleUser,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)
			tokens := newTokens(t)

			res := do(t, newOrderRouter(t, svc, tokens), http.MethodPatch,
				"/api/orders/"+orderID+"/status"+tc.query, issue(t, tokens, 1, tc.role), "")

			assert.Equal(t, tc.wantStatus, res.status)
			assert.Contains(t, res.body, tc.wantBody)
		})
	}
}

func TestOrderHandler_CancelOrder(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "No content", wantStatus: http.StatusNoContent},
		{name: "Already delivered", err: &entities.InvalidTransitionError{From: entities.OrderStatusDelivered, To: entities.OrderStatusCancelled}, wantStatus: http.StatusBadRequest},
		{name: "Foreign order", err: entities.ErrOrderNotFound, wantStatus: http.StatusNotFound},
		{name: "Conflict", err: entities.ErrOrderConflict, wantStatus: http.StatusConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			svc.EXPECT().CancelOrder(mock.Anything, orderID, userID).Return(entities.Order{}, tc.err).Once()
			tokens := newTokens(t)

			res := do(t, newOrderRouter(t, svc, tokens), http.MethodDelete, "/api/orders/"+orderID, issue(t, tokens, userID, auth.RoleUser), "")

			assert.Equal(t, tc.wantStatus, res.status)
		})
	}
}

func TestOrderHandler_Unauthorized(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	tokens := newTokens(t)
	r := newOrderRouter(t, svc, tokens)

	for _, target := range []string{"/api/orders", "/api/orders/" + orderID} {
		res := do(t, r, http.MethodGet, target, "", "")
		assert.Equal(t, http.StatusUnauthorized, res.status)
	}
}
