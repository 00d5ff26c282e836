package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrTokenConsumed is returned when a refresh token was already rotated
// or never registered.
var ErrTokenConsumed = errors.New("refresh token already consumed")

const (
	refreshKeyPrefix  = "refresh:"
	cooldownKeyPrefix = "verify:cooldown:"
)

// TokenStore tracks single-use refresh tokens and verification resend
// cooldowns in Redis.
type TokenStore struct{}

var (
	setTokenValue    = Set
	getDelTokenValue = GetDel
	setNXTokenValue  = SetNX
	delTokenValue    = Del
)

// NewTokenStore creates a new token store
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// RegisterRefresh records a refresh token's jti as usable for the token lifetime
func (s *TokenStore) RegisterRefresh(ctx context.Context, jti, subject string, ttl time.Duration) error {
	return setTokenValue(ctx, refreshKeyPrefix+jti, subject, ttl)
}

// ConsumeRefresh atomically claims a refresh token's jti. A jti that was
// already consumed, expired or never registered fails with
// ErrTokenConsumed — replaying a rotated token is a hard failure.
func (s *TokenStore) ConsumeRefresh(ctx context.Context, jti string) (string, error) {
	subject, err := getDelTokenValue(ctx, refreshKeyPrefix+jti)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrTokenConsumed
		}
		return "", err
	}
	return subject, nil
}

// RevokeRefresh drops a registered refresh token, if present
func (s *TokenStore) RevokeRefresh(ctx context.Context, jti string) error {
	return delTokenValue(ctx, refreshKeyPrefix+jti)
}

// AcquireResendCooldown reports whether a verification code may be
// re-requested for the address. The first caller within the window wins.
func (s *TokenStore) AcquireResendCooldown(ctx context.Context, email string, window time.Duration) (bool, error) {
	return setNXTokenValue(ctx, cooldownKeyPrefix+email, "1", window)
}
