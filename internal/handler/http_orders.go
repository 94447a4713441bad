package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/orderflow/internal/auth"
	"github.com/SergeyBogomolovv/orderflow/internal/entities"
	"github.com/SergeyBogomolovv/orderflow/internal/middleware"
	"github.com/SergeyBogomolovv/orderflow/internal/service"
	"github.com/SergeyBogomolovv/orderflow/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type OrderService interface {
	CreateOrder(ctx context.Context, userID int64, items []service.ItemRequest) (entities.Order, error)
	GetOrder(ctx context.Context, orderID string, userID int64) (entities.Order, error)
	ListUserOrders(ctx context.Context, userID int64) ([]entities.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, target entities.OrderStatus) (entities.Order, error)
	CancelOrder(ctx context.Context, orderID string, userID int64) (entities.Order, error)
}

type OrderHandler struct {
	logger   *slog.Logger
	svc      OrderService
	verifier middleware.TokenVerifier
}

func NewOrderHandler(logger *slog.Logger, svc OrderService, verifier middleware.TokenVerifier) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("handler", "orders")),
		svc:      svc,
		verifier: verifier,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Use(middleware.Auth(h.logger, h.verifier))
		r.Use(middleware.RequireRole(auth.RoleUser, auth.RoleAdmin))

		r.Post("/", h.CreateOrder)
		r.Get("/", h.ListOrders)
		r.Get("/{id}", h.GetOrder)
		r.Delete("/{id}", h.CancelOrder)
		r.With(middleware.RequireRole(auth.RoleAdmin)).Patch("/{id}/status", h.UpdateOrderStatus)
	})
}

// CreateOrder создаёт заказ текущего пользователя.
// @Summary      Создать заказ
// @Description  Цены и имена товаров фиксируются по данным каталога на момент создания
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      CreateOrderRequest  true  "Позиции заказа"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации или нехватка товара"
// @Failure      401  {object}  utils.ErrorResponse "Нет токена"
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Failure      502  {object}  utils.ErrorResponse "Каталог недоступен"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.CreateOrder(ctx, currentUser(r).UserID, req.ToItemRequests())
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "create order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// ListOrders возвращает заказы текущего пользователя.
// @Summary      Мои заказы
// @Description  Заказы отсортированы от новых к старым
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   Order
// @Failure      401  {object}  utils.ErrorResponse "Нет токена"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := h.svc.ListUserOrders(ctx, currentUser(r).UserID)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "list orders")
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// GetOrder возвращает заказ по ID.
// @Summary      Получить заказ
// @Description  Чужой заказ отдаётся как несуществующий
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      401  {object}  utils.ErrorResponse "Нет токена"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "id")

	order, err := h.svc.GetOrder(ctx, orderID, currentUser(r).UserID)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "get order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// UpdateOrderStatus двигает заказ по жизненному циклу.
// @Summary      Сменить статус заказа
// @Description  Только для ADMIN. CANCELLED отменяет заказ с причиной "Cancelled by admin"
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string  true  "Идентификатор заказа"
// @Param        status  query     string  true  "Новый статус"  Enums(CONFIRMED, SHIPPED, DELIVERED, CANCELLED)
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Недопустимый переход"
// @Failure      401  {object}  utils.ErrorResponse "Нет токена"
// @Failure      403  {object}  utils.ErrorResponse "Недостаточно прав"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ изменён параллельно"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders/{id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "id")

	raw := r.URL.Query().Get("status")
	if raw == "" {
		utils.WriteError(w, "status parameter is required", http.StatusBadRequest)
		return
	}
	target, err := entities.ParseOrderStatus(raw)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.svc.UpdateOrderStatus(ctx, orderID, target)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "update order status")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// CancelOrder отменяет заказ владельцем.
// @Summary      Отменить заказ
// @Tags         orders
// @Security     BearerAuth
// @Param        id   path      string  true  "Идентификатор заказа"
// @Success      204
// @Failure      400  {object}  utils.ErrorResponse "Заказ уже доставлен или отменён"
// @Failure      401  {object}  utils.ErrorResponse "Нет токена"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ изменён параллельно"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "id")

	if _, err := h.svc.CancelOrder(ctx, orderID, currentUser(r).UserID); err != nil {
		writeServiceError(ctx, h.logger, w, err, "cancel order")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
