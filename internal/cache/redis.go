package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to redis at addr, or returns nil when addr is
// empty or the server is unreachable. Callers treat a nil client as
// "caching disabled".
func NewRedisClient(addr string) *redis.Client {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[Cache] redis unreachable at %s, caching disabled: %v", addr, err)
		return nil
	}
	return client
}
