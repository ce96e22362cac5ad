package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/eventra/eventra-backend/config"
)

// RedisClient is the shared client, set by InitRedis
var RedisClient *redis.Client

// InitRedis connects the shared Redis client. The client backs the rate
// limiter store and the refresh-token whitelist.
func InitRedis(cfg *config.Config) error {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	RedisClient = client
	log.Println("✅ Redis connected")
	return nil
}
