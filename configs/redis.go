package configs

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

var rdb *redis.Client

// Redis returns the shared client, or nil when the catalog cache is disabled.
func Redis() *redis.Client {
	return rdb
}

func ConnectRedis(cfg *Config) error {
	if cfg.RedisAddr == "" {
		return nil
	}

	c := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		return err
	}
	rdb = c
	return nil
}
