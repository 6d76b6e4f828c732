package config

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient returns nil when no address is configured. A configured
// but unreachable server is logged and also yields nil so the API keeps
// serving without the sweep lock.
func NewRedisClient(cfg RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 2,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	pong, err := rdb.Ping(ctx).Result()
	if err != nil {
		log.Printf("⚠️  Redis at %s unreachable: %v (sweeper runs without lock)", cfg.Addr, err)
		_ = rdb.Close()
		return nil
	}
	log.Printf("✅ Redis connected: %s", pong)
	return rdb
}
