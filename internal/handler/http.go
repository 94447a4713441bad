package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/orderflow/internal/auth"
	"github.com/SergeyBogomolovv/orderflow/internal/entities"
	"github.com/SergeyBogomolovv/orderflow/pkg/utils"
)

// writeServiceError переводит доменную ошибку в HTTP ответ.
// Неизвестные ошибки логируются и отдаются как 500.
func writeServiceError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, entities.ErrEmptyOrder),
		errors.Is(err, entities.ErrInvalidQuantity),
		errors.Is(err, entities.ErrInsufficientStock),
		errors.Is(err, entities.ErrInvalidTransition):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)

	case errors.Is(err, entities.ErrOrderNotFound),
		errors.Is(err, entities.ErrNotificationNotFound),
		errors.Is(err, entities.ErrArticleNotFound):
		utils.WriteError(w, err.Error(), http.StatusNotFound)

	case errors.Is(err, entities.ErrOrderConflict):
		utils.WriteError(w, err.Error(), http.StatusConflict)

	case errors.Is(err, entities.ErrCatalogUnavailable):
		logger.WarnContext(ctx, "catalog unavailable", slog.String("action", action), slog.Any("error", err))
		utils.WriteError(w, entities.ErrCatalogUnavailable.Error(), http.StatusBadGateway)

	default:
		logger.ErrorContext(ctx, "failed to "+action, slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

// currentUser достаёт claims, положенные middleware.Auth.
func currentUser(r *http.Request) auth.Claims {
	claims, _ := auth.ClaimsFromContext(r.Context())
	return claims
}
