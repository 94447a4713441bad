package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

var ErrInvalidToken = errors.New("invalid token")

const (
	claimUserID = "userId"
	claimRole   = "role"
)

type Claims struct {
	UserID int64
	Role   Role
}

func (c Claims) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if c.Role == r {
			return true
		}
	}
	return false
}

// TokenService проверяет токены PASETO v4.local.
// Выпуск токенов нужен только тестам и утилитам разработки.
type TokenService struct {
	parser paseto.Parser
	key    paseto.V4SymmetricKey
}

func NewTokenService(hexKey string) (*TokenService, error) {
	key, err := paseto.V4SymmetricKeyFromHex(hexKey)
	if err != nil {
		return nil, fmt.Errorf("invalid symmetric key: %w", err)
	}
	return &TokenService{
		parser: paseto.NewParser(),
		key:    key,
	}, nil
}

func (s *TokenService) Issue(claims Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	token := paseto.NewToken()
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(now.Add(ttl))

	if err := token.Set(claimUserID, claims.UserID); err != nil {
		return "", fmt.Errorf("failed to set user id claim: %w", err)
	}
	token.SetString(claimRole, string(claims.Role))

	return token.V4Encrypt(s.key, nil), nil
}

func (s *TokenService) Verify(token string) (Claims, error) {
	parsed, err := s.parser.ParseV4Local(s.key, token, nil)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	var claims Claims
	if err := parsed.Get(claimUserID, &claims.UserID); err != nil {
		return Claims{}, fmt.Errorf("%w: missing %s claim", ErrInvalidToken, claimUserID)
	}
	role, err := parsed.GetString(claimRole)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: missing %s claim", ErrInvalidToken, claimRole)
	}
	claims.Role = Role(role)

	if claims.UserID <= 0 || !claims.HasRole(RoleUser, RoleAdmin) {
		return Claims{}, fmt.Errorf("%w: bad claims", ErrInvalidToken)
	}
	return claims, nil
}

type claimsKey struct{}

func WithClaims(ctx context.Context, c Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, c)
}

func ClaimsFromContext(ctx context.Context) (Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(Claims)
	return c, ok
}
