package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"retention/internal/classification"
	"retention/internal/classification/models"
	id "retention/pkg/domain"
)

const keyPrefix = "retention:classification:"

// DefaultCacheTTL bounds how stale an administratively edited hierarchy can
// look to the validator.
const DefaultCacheTTL = 5 * time.Minute

// Cache is a read-through Redis cache in front of a classification lookup.
// Redis failures degrade to the underlying lookup; misses are not cached.
type Cache struct {
	next   classification.Lookup
	client redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

type CacheOption func(*Cache)

func WithCacheTTL(ttl time.Duration) CacheOption {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

func WithCacheLogger(logger *slog.Logger) CacheOption {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func NewCache(next classification.Lookup, client redis.Cmdable, opts ...CacheOption) *Cache {
	c := &Cache{
		next:   next,
		client: client,
		ttl:    DefaultCacheTTL,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cache) FindByID(ctx context.Context, classificationID id.ClassificationID) (*models.Classification, error) {
	key := classificationKey(classificationID)
	var cached models.Classification
	if c.get(ctx, key, &cached) {
		return &cached, nil
	}

	found, err := c.next.FindByID(ctx, classificationID)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, found)
	return found, nil
}

func (c *Cache) FindChildren(ctx context.Context, parent id.ClassificationID) ([]id.ClassificationID, error) {
	key := childrenKey(parent)
	var cached []id.ClassificationID
	if c.get(ctx, key, &cached) {
		return cached, nil
	}

	children, err := c.next.FindChildren(ctx, parent)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, children)
	return children, nil
}

// Invalidate drops cached entries, and cached child lists, for the given
// classifications. The server calls it after applying a seed file; anything
// else that edits the hierarchy should call it too.
func (c *Cache) Invalidate(ctx context.Context, ids ...id.ClassificationID) error {
	if len(ids) == 0 {
		return nil
	}
	keys := make([]string, 0, len(ids)*2)
	for _, cid := range ids {
		keys = append(keys, classificationKey(cid), childrenKey(cid))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("invalidate classification cache: %w", err)
	}
	return nil
}

func (c *Cache) get(ctx context.Context, key string, dst any) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "classification cache read failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.logger.WarnContext(ctx, "classification cache entry corrupt", "key", key, "error", err)
		return false
	}
	return true
}

func (c *Cache) set(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "classification cache write failed", "key", key, "error", err)
	}
}

func classificationKey(classificationID id.ClassificationID) string {
	return keyPrefix + classificationID.String()
}

func childrenKey(parent id.ClassificationID) string {
	return keyPrefix + parent.String() + ":children"
}
