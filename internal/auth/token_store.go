package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore keeps the currently valid refresh token per user so that logout
// actually revokes it. One active session per user.
type TokenStore interface {
	SaveRefreshToken(ctx context.Context, userID uint, token string, ttl time.Duration) error
	GetRefreshToken(ctx context.Context, userID uint) (string, error)
	DeleteRefreshToken(ctx context.Context, userID uint) error
}

type redisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) TokenStore {
	return &redisTokenStore{client: client}
}

func refreshKey(userID uint) string {
	return fmt.Sprintf("auth:refresh:%d", userID)
}

func (s *redisTokenStore) SaveRefreshToken(ctx context.Context, userID uint, token string, ttl time.Duration) error {
	return s.client.Set(ctx, refreshKey(userID), token, ttl).Err()
}

func (s *redisTokenStore) GetRefreshToken(ctx context.Context, userID uint) (string, error) {
	val, err := s.client.Get(ctx, refreshKey(userID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func (s *redisTokenStore) DeleteRefreshToken(ctx context.Context, userID uint) error {
	return s.client.Del(ctx, refreshKey(userID)).Err()
}
