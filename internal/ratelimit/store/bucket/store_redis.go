package bucket

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"retention/internal/ratelimit/models"
)

const keyPrefix = "retention:ratelimit:"

// RedisBucketStore keeps each window as a sorted set of request timestamps
// so replicas share one budget per key.
type RedisBucketStore struct {
	client redis.Cmdable
	now    func() time.Time
}

func NewRedisBucketStore(client redis.Cmdable) *RedisBucketStore {
	return &RedisBucketStore{client: client, now: time.Now}
}

// Allow trims the window, counts it and records the request when under the
// limit. The insert is a second round trip, so concurrent callers at the
// boundary may overshoot the limit by the number racing.
func (s *RedisBucketStore) Allow(ctx context.Context, key string, limit int, window time.Duration) (*models.RateLimitResult, error) {
	now := s.now()
	redisKey := keyPrefix + key
	cutoff := strconv.FormatInt(now.Add(-window).UnixMicro(), 10)

	var (
		count  *redis.IntCmd
		oldest *redis.ZSliceCmd
	)
	if _, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.ZRemRangeByScore(ctx, redisKey, "-inf", cutoff)
		count = p.ZCard(ctx, redisKey)
		oldest = p.ZRangeWithScores(ctx, redisKey, 0, 0)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("read rate limit window: %w", err)
	}

	resetAt := now.Add(window)
	if z := oldest.Val(); len(z) > 0 {
		resetAt = time.UnixMicro(int64(z[0].Score)).Add(window)
	}

	n := int(count.Val())
	if n >= limit {
		return &models.RateLimitResult{
			Allowed:    false,
			Limit:      limit,
			ResetAt:    resetAt,
			RetryAfter: retryAfter(now, resetAt),
		}, nil
	}

	if _, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.ZAdd(ctx, redisKey, redis.Z{Score: float64(now.UnixMicro()), Member: uuid.NewString()})
		p.PExpire(ctx, redisKey, window)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("record rate limit hit: %w", err)
	}

	return &models.RateLimitResult{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - n - 1,
		ResetAt:   resetAt,
	}, nil
}

func (s *RedisBucketStore) Reset(ctx context.Context, key string) error {
	return s.client.Del(ctx, keyPrefix+key).Err()
}
