// Package redisclient opens the connection used by the session store.
package redisclient

import (
	"time"

	"ev-newsroom/internal/config"

	"github.com/redis/go-redis/v9"
)

// New returns a client for cfg. Timeouts are short: the CLI falls back to
// in-memory overlays rather than wait on an unreachable server.
func New(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Username:     cfg.Username,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
		MaxRetries:   1,
	})
}
