// Package cache provides a redis-backed cache for court availability
// lookups. A nil client disables caching; callers degrade to hitting the
// database directly.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/courtside/courtside/internal/pricing"
	"github.com/redis/go-redis/v9"
)

const availabilityTTL = 5 * time.Minute

type AvailabilityCache struct {
	rdb *redis.Client
}

func NewAvailabilityCache(rdb *redis.Client) *AvailabilityCache {
	return &AvailabilityCache{rdb: rdb}
}

func key(courtID uint, date time.Time) string {
	return fmt.Sprintf("availability:court:%d:%s", courtID, date.Format("2006-01-02"))
}

// Get returns the cached slots for (court, day), or ok=false on miss,
// decode failure, or when caching is disabled.
func (c *AvailabilityCache) Get(ctx context.Context, courtID uint, date time.Time) ([]pricing.TimeSlot, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, key(courtID, date)).Bytes()
	if err != nil {
		return nil, false
	}
	var slots []pricing.TimeSlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

// Set stores the slots for (court, day). Errors are swallowed: the cache is
// best-effort and the caller already has the answer.
func (c *AvailabilityCache) Set(ctx context.Context, courtID uint, date time.Time, slots []pricing.TimeSlot) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	_ = c.rdb.SetEx(ctx, key(courtID, date), raw, availabilityTTL).Err()
}
