package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/orderflow/pkg/utils"
	"github.com/go-chi/chi/v5"
)

const healthCheckTimeout = 2 * time.Second

type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	logger *slog.Logger
	db     Pinger
}

func NewHealthHandler(logger *slog.Logger, db Pinger) *HealthHandler {
	return &HealthHandler{
		logger: logger.With(slog.String("handler", "health")),
		db:     db,
	}
}

func (h *HealthHandler) Init(r chi.Router) {
	r.Get("/health", h.Health)
}

// Health проверяет доступность базы.
// @Summary      Проверка здоровья
// @Tags         health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Failure      503  {object}  HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.WarnContext(ctx, "database ping failed", slog.Any("error", err))
		utils.WriteJSON(w, HealthResponse{Status: "DOWN"}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, HealthResponse{Status: "UP"}, http.StatusOK)
}
