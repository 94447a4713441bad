package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/orderflow/internal/auth"
	"github.com/SergeyBogomolovv/orderflow/internal/entities"
	"github.com/SergeyBogomolovv/orderflow/internal/middleware"
	"github.com/SergeyBogomolovv/orderflow/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type NotificationService interface {
	ListNotifications(ctx context.Context, userID int64) ([]entities.Notification, error)
	ListUnread(ctx context.Context, userID int64) ([]entities.Notification, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	MarkAsRead(ctx context.Context, id string, userID int64) (entities.Notification, error)
	MarkAllAsRead(ctx context.Context, userID int64) (int64, error)
}

type NotificationHandler struct {
	logger   *slog.Logger
	svc      NotificationService
	verifier middleware.TokenVerifier
}

func NewNotificationHandler(logger *slog.Logger, svc NotificationService, verifier middleware.TokenVerifier) *NotificationHandler {
	return &NotificationHandler{
		logger:   logger.With(slog.String("handler", "notifications")),
		svc:      svc,
		verifier: verifier,
	}
}

func (h *NotificationHandler) Init(r chi.Router) {
	r.Route("/api/notifications", func(r chi.Router) {
		r.Use(middleware.Auth(h.logger, h.verifier))
		r.Use(middleware.RequireRole(auth.RoleUser, auth.RoleAdmin))

		r.Get("/", h.ListNotifications)
		r.Get("/unread", h.ListUnread)
		r.Get("/unread/count", h.CountUnread)
		r.Patch("/read-all", h.MarkAllAsRead)
		r.Patch("/{id}/read", h.MarkAsRead)
	})
}

// ListNotifications
// @Summary      Все уведомления
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   Notification
// @Failure      401  {object}  utils.ErrorResponse "Нет токена"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/notifications [get]
func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	list, err := h.svc.ListNotifications(ctx, currentUser(r).UserID)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "list notifications")
		return
	}

	utils.WriteJSON(w, NotificationsEntityToJSON(list), http.StatusOK)
}

// ListUnread
// @Summary      Непрочитанные уведомления
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   Notification
// @Failure      401  {object}  utils.ErrorResponse "Нет токена"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/notifications/unread [get]
func (h *NotificationHandler) ListUnread(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	list, err := h.svc.ListUnread(ctx, currentUser(r).UserID)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "list unread notifications")
		return
	}

	utils.WriteJSON(w, NotificationsEntityToJSON(list), http.StatusOK)
}

// CountUnread
// @Summary      Число непрочитанных
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  UnreadCountResponse
// @Failure      401  {object}  utils.ErrorResponse "Нет токена"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/notifications/unread/count [get]
func (h *NotificationHandler) CountUnread(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	count, err := h.svc.CountUnread(ctx, currentUser(r).UserID)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "count unread notifications")
		return
	}

	utils.WriteJSON(w, UnreadCountResponse{UnreadCount: count}, http.StatusOK)
}

// MarkAsRead
// @Summary      Отметить уведомление прочитанным
// @Description  Чужое уведомление отдаётся как несуществующее
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Идентификатор уведомления"
// @Success      200  {object}  Notification
// @Failure      401  {object}  utils.ErrorResponse "Нет токена"
// @Failure      404  {object}  utils.ErrorResponse "Уведомление не найдено"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/notifications/{id}/read [patch]
func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	n, err := h.svc.MarkAsRead(ctx, id, currentUser(r).UserID)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "mark notification as read")
		return
	}

	utils.WriteJSON(w, NotificationEntityToJSON(n), http.StatusOK)
}

// MarkAllAsRead
// @Summary      Отметить все прочитанными
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  MarkAllReadResponse
// @Failure      401  {object}  utils.ErrorResponse "Нет токена"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/notifications/read-all [patch]
func (h *NotificationHandler) MarkAllAsRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	updated, err := h.svc.MarkAllAsRead(ctx, currentUser(r).UserID)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "mark all notifications as read")
		return
	}

	utils.WriteJSON(w, MarkAllReadResponse{
		Message: "All notifications marked as read",
		Updated: updated,
	}, http.StatusOK)
}
