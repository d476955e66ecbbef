package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

var ErrNotFound = errors.New("cache key not found")

type Client struct {
	rdb *redis.Client
}

// Enrollment is the parked state of a 2FA setup: the secret is held here until
// the user proves possession of it with a valid code.
type Enrollment struct {
	UserID    uint      `json:"user_id"`
	Secret    string    `json:"secret"`
	CreatedAt time.Time `json:"created_at"`
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

// Enrollment state

func (c *Client) SetEnrollment(ctx context.Context, id string, e *Enrollment, ttl time.Duration) error {
	jsonData, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal enrollment: %w", err)
	}
	return c.rdb.Set(ctx, "enroll:"+id, jsonData, ttl).Err()
}

func (c *Client) GetEnrollment(ctx context.Context, id string) (*Enrollment, error) {
	val, err := c.rdb.Get(ctx, "enroll:"+id).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get enrollment: %w", err)
	}

	var e Enrollment
	if err := json.Unmarshal([]byte(val), &e); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enrollment: %w", err)
	}
	return &e, nil
}

func (c *Client) DeleteEnrollment(ctx context.Context, id string) error {
	return c.rdb.Del(ctx, "enroll:"+id).Err()
}

// Generic JSON cache, used for the dashboard summary.

func (c *Client) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return c.rdb.Set(ctx, "cache:"+key, jsonData, ttl).Err()
}

func (c *Client) GetJSON(ctx context.Context, key string, dest interface{}) error {
	val, err := c.rdb.Get(ctx, "cache:"+key).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get cache value: %w", err)
	}
	return json.Unmarshal([]byte(val), dest)
}

func (c *Client) Invalidate(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, "cache:"+key).Err()
}
