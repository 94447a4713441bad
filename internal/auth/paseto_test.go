package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/orderflow/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testKey  = "707172737475767778797a7b7c7d7e7f808182838485868788898a8b8c8d8e8f"
	otherKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"
)

func TestTokenService_IssueVerify(t *testing.T) {
	svc, err := auth.NewTokenService(testKey)
	require.NoError(t, err)

	token, err := svc.Issue(auth.Claims{UserID: 42, Role: auth.RoleAdmin}, time.Hour)
	require.NoError(t, err)
	assert.Contains(t, token, "v4.local.")

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, auth.RoleAdmin, claims.Role)
}

func TestTokenService_VerifyRejects(t *testing.T) {
	svc, err := auth.NewTokenService(testKey)
	require.NoError(t, err)
	other, err := auth.NewTokenService(otherKey)
	require.NoError(t, err)

	foreign, err := other.Issue(auth.Claims{UserID: 1, Role: auth.RoleUser}, time.Hour)
	require.NoError(t, err)
	expired, err := svc.Issue(auth.Claims{UserID: 1, Role: auth.RoleUser}, -time.Minute)
	require.NoError(t, err)
	badRole, err := svc.Issue(auth.Claims{UserID: 1, Role: "ROOT"}, time.Hour)
	require.NoError(t, err)
	noUser, err := svc.Issue(auth.Claims{Role: auth.RoleUser}, time.Hour)
	require.NoError(t, err)

	testCases := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "other key", token: foreign},
		{name: "expired", token: expired},
		{name: "unknown role", token: badRole},
		{name: "no user", token: noUser},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Verify(tc.token)
			assert.ErrorIs(t, err, auth.ErrInvalidToken)
		})
	}
}

func TestNewTokenService_BadKey(t *testing.T) {
	_, err := auth.NewTokenService("abc")
	assert.Error(t, err)
}

func TestClaimsContext(t *testing.T) {
	_, ok := auth.ClaimsFromContext(context.Background())
	assert.False(t, ok)

	ctx := auth.WithClaims(context.Background(), auth.Claims{UserID: 7, Role: auth.RoleUser})
	claims, ok := auth.ClaimsFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, int64(7), claims.UserID)
	assert.True(t, claims.HasRole(auth.RoleAdmin, auth.RoleUser))
	assert.False(t, claims.HasRole(auth.RoleAdmin))
}
