package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "slots"

// RedisSlotCache keeps resolved slot starts per host and local date.
// Every host has a version counter that is part of the data key; bumping it
// orphans all cached dates of the host at once, TTL cleans them up.
type RedisSlotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSlotCache(client *redis.Client, ttl time.Duration) *RedisSlotCache {
	return &RedisSlotCache{client: client, ttl: ttl}
}

// NewRedisClient connects to addr and checks the connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (c *RedisSlotCache) Get(ctx context.Context, hostID, date string) ([]time.Time, int64, bool, error) {
	ver, err := c.version(ctx, hostID)
	if err != nil {
		return nil, 0, false, err
	}

	raw, err := c.client.Get(ctx, dataKey(hostID, ver, date)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ver, false, nil
	}
	if err != nil {
		return nil, ver, false, fmt.Errorf("get slots: %w", err)
	}

	var starts []time.Time
	if err = json.Unmarshal(raw, &starts); err != nil {
		return nil, ver, false, fmt.Errorf("decode slots: %w", err)
	}
	return starts, ver, true, nil
}

// Set stores starts under version ver. If the host was invalidated since ver was
// read, the entry lands on an orphaned key and expires unseen.
func (c *RedisSlotCache) Set(ctx context.Context, hostID, date string, ver int64, starts []time.Time) error {
	raw, err := json.Marshal(starts)
	if err != nil {
		return fmt.Errorf("encode slots: %w", err)
	}

	if err = c.client.Set(ctx, dataKey(hostID, ver, date), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("set slots: %w", err)
	}
	return nil
}

func (c *RedisSlotCache) Invalidate(ctx context.Context, hostID string) error {
	if err := c.client.Incr(ctx, versionKey(hostID)).Err(); err != nil {
		return fmt.Errorf("bump slots version: %w", err)
	}
	return nil
}

func (c *RedisSlotCache) version(ctx context.Context, hostID string) (int64, error) {
	ver, err := c.client.Get(ctx, versionKey(hostID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get slots version: %w", err)
	}
	return ver, nil
}

func versionKey(hostID string) string {
	return fmt.Sprintf("%s:%s:version", keyPrefix, hostID)
}

func dataKey(hostID string, ver int64, date string) string {
	return fmt.Sprintf("%s:%s:%d:%s", keyPrefix, hostID, ver, date)
}
