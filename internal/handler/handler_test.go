package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/orderflow/internal/auth"
	"github.com/stretchr/testify/require"
)

const (
	testKey = "707172737475767778797a7b7c7d7e7f808182838485868788898a8b8c8d8e8f"
	orderID = "0f8fad5b-d9cb-469f-a165-70867728950e"
	userID  = int64(42)
)

var createdAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTokens(t *testing.T) *auth.TokenService {
	t.Helper()
	tokens, err := auth.NewTokenService(testKey)
	require.NoError(t, err)
	return tokens
}

func issue(t *testing.T, tokens *auth.TokenService, id int64, role auth.Role) string {
	t.Helper()
	token, err := tokens.Issue(auth.Claims{UserID: id, Role: role}, time.Hour)
	require.NoError(t, err)
	return token
}

type response struct {
	status int
	body   string
}

func do(t *testing.T, h http.Handler, method, target, token, body string) response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return response{status: res.StatusCode, body: string(data)}
}
