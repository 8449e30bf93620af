package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrTokenNotFound    = errors.New("token not found")
	ErrRedisUnavailable = errors.New("redis unavailable")
	ErrExtendFailed     = errors.New("token extend failed")
	ErrTokenDeleted     = errors.New("token delete failed")
)

const (
	SessionTokenPrefix = "session:user:token"
	SessionTokenExpire = 60 * 60
)

// SessionRepository mirrors issued access tokens so a signin invalidates any
// earlier session for the same user.
type SessionRepository struct{}

func (r *SessionRepository) AddUserToken(ctx context.Context, userID, token string) error {
	key := fmt.Sprintf("%s:%s", SessionTokenPrefix, userID)
	if err := Client.Set(ctx, key, token, time.Second*SessionTokenExpire).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}

func (r *SessionRepository) GetUserToken(ctx context.Context, userID string) (string, error) {
	key := fmt.Sprintf("%s:%s", SessionTokenPrefix, userID)
	token, err := Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", ErrRedisUnavailable
	}
	return token, nil
}

func (r *SessionRepository) ExtendUserToken(ctx context.Context, userID string) error {
	key := fmt.Sprintf("%s:%s", SessionTokenPrefix, userID)
	if _, err := Client.Expire(ctx, key, time.Second*SessionTokenExpire).Result(); err != nil {
		return ErrExtendFailed
	}
	return nil
}

func (r *SessionRepository) DeleteUserToken(ctx context.Context, userID string) error {
	key := fmt.Sprintf("%s:%s", SessionTokenPrefix, userID)
	if err := Client.Del(ctx, key).Err(); err != nil {
		return ErrTokenDeleted
	}
	return nil
}
