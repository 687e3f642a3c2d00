package cache

import (
	"cargo-feasibility-service/internal/domain"
	"cargo-feasibility-service/internal/ports"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultHoursTTL = 24 * time.Hour

// RedisHoursCache decorates a FacilityHoursProvider with a shared Redis
// cache so repeated lookups for the same airport/carrier/day-category do
// not hit the backing store. Cache faults degrade to the inner provider.
type RedisHoursCache struct {
	redis *redis.Client
	inner ports.FacilityHoursProvider
	ttl   time.Duration
}

func NewRedisHoursCache(rdb *redis.Client, inner ports.FacilityHoursProvider, ttl time.Duration) *RedisHoursCache {
	if ttl <= 0 {
		ttl = DefaultHoursTTL
	}
	return &RedisHoursCache{redis: rdb, inner: inner, ttl: ttl}
}

// cachedHours distinguishes "no row" from an empty hours string.
type cachedHours struct {
	Hours string `json:"hours"`
	Found bool   `json:"found"`
}

func (c *RedisHoursCache) CarrierHours(
	ctx context.Context,
	airport string,
	carrier string,
	category domain.DayCategory,
) (string, bool, error) {
	key := fmt.Sprintf("hours:%s:%s:%s", airport, carrier, category)
	return c.lookup(ctx, key, func() (string, bool, error) {
		return c.inner.CarrierHours(ctx, airport, carrier, category)
	})
}

func (c *RedisHoursCache) AirportHours(
	ctx context.Context,
	airport string,
	category domain.DayCategory,
) (string, bool, error) {
	key := fmt.Sprintf("hours:%s:-:%s", airport, category)
	return c.lookup(ctx, key, func() (string, bool, error) {
		return c.inner.AirportHours(ctx, airport, category)
	})
}

func (c *RedisHoursCache) lookup(
	ctx context.Context,
	key string,
	fetch func() (string, bool, error),
) (string, bool, error) {
	data, err := c.redis.Get(ctx, key).Result()
	if err == nil {
		var entry cachedHours
		if err := json.Unmarshal([]byte(data), &entry); err == nil {
			return entry.Hours, entry.Found, nil
		}
		log.Printf("hours cache: discarding malformed entry key=%q", key)
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("hours cache: redis get failed key=%q err=%v", key, err)
	}

	hours, found, err := fetch()
	if err != nil {
		return "", false, err
	}

	payload, err := json.Marshal(cachedHours{Hours: hours, Found: found})
	if err != nil {
		return hours, found, nil
	}
	if err := c.redis.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		log.Printf("hours cache: redis set failed key=%q err=%v", key, err)
	}

	return hours, found, nil
}
