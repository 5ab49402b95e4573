// Package dedup drops Telegram updates that were already processed.
//
// Telegram redelivers an update when it does not see a timely 200, so the
// same update_id can arrive more than once.
package dedup

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// UpdateGuard claims update IDs. Claim reports true the first time an ID is
// seen and false for every later delivery within the retention window.
// Release forgets a claim so a redelivery of a failed update is processed.
type UpdateGuard interface {
	Claim(ctx context.Context, updateID int) (bool, error)
	Release(ctx context.Context, updateID int) error
}

// NopGuard accepts every update.
type NopGuard struct{}

// Claim always succeeds.
func (NopGuard) Claim(context.Context, int) (bool, error) { return true, nil }

// Release is a no-op.
func (NopGuard) Release(context.Context, int) error { return nil }

// RedisGuard remembers claimed IDs in Redis for a fixed TTL.
type RedisGuard struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisGuard creates a guard storing keys in client for ttl.
func NewRedisGuard(client redis.Cmdable, ttl time.Duration) *RedisGuard {
	return &RedisGuard{client: client, ttl: ttl}
}

// Claim sets the update's key only if it is absent.
func (g *RedisGuard) Claim(ctx context.Context, updateID int) (bool, error) {
	ok, err := g.client.SetNX(ctx, updateKey(updateID), 1, g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("claiming update %d: %w", updateID, err)
	}
	return ok, nil
}

// Release deletes the update's key.
func (g *RedisGuard) Release(ctx context.Context, updateID int) error {
	if err := g.client.Del(ctx, updateKey(updateID)).Err(); err != nil {
		return fmt.Errorf("releasing update %d: %w", updateID, err)
	}
	return nil
}

func updateKey(updateID int) string {
	return fmt.Sprintf("phonebot:update:%d", updateID)
}

// Connect parses a redis:// URL and verifies the server answers.
func Connect(ctx context.Context, rawURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opt)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}
