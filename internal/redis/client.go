package redis

import (
	"fmt"
	"time"

	"chatter-api/config"

	"github.com/redis/go-redis/v9"
)

// NewClient builds a client for the event broker. Timeouts are short because
// publishing happens inline with requests.
func NewClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
}
