package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/SergeyBogomolovv/orderflow/internal/handler"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	testCases := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantBody   string
	}{
		{name: "Up", wantStatus: http.StatusOK, wantBody: `{"status":"UP"}`},
		{name: "Down", pingErr: errors.New("connection refused"), wantStatus: http.StatusServiceUnavailable, wantBody: `{"status":"DOWN"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := chi.NewRouter()
			handler.NewHealthHandler(discardLogger(), pingerFunc(func(ctx context.Context) error {
				_, hasDeadline := ctx.Deadline()
				assert.True(t, hasDeadline)
				return tc.pingErr
			})).Init(r)

			res := do(t, r, http.MethodGet, "/health", "", "")

			assert.Equal(t, tc.wantStatus, res.status)
			assert.JSONEq(t, tc.wantBody, res.body)
		})
	}
}
