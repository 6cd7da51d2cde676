// Package cache is the read-through cache for catalog response snapshots.
//
// The cache never decides correctness: any backend or codec failure is
// logged and behaves exactly like a miss, so dropping the cache only costs
// latency.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
)

// MenuKey, SubmenuKey and DishKey name the cached snapshot of one entity
func MenuKey(id uuid.UUID) string    { return "menu_" + id.String() }
func SubmenuKey(id uuid.UUID) string { return "submenu_" + id.String() }
func DishKey(id uuid.UUID) string    { return "dish_" + id.String() }

// Cache serializes response snapshots into a Backend
type Cache struct {
	backend Backend
	ttl     time.Duration
	encMode cbor.EncMode
	decMode cbor.DecMode
	logger  *slog.Logger
}

// New creates a Cache over backend. ttl of zero stores entries without expiry.
func New(backend Backend, ttl time.Duration, logger *slog.Logger) (*Cache, error) {
	if logger == nil {
		logger = slog.Default()
	}

	encMode, err := cbor.EncOptions{
		Sort: cbor.SortCanonical,
		Time: cbor.TimeRFC3339Nano,
	}.EncMode()
	if err != nil {
		return nil, fmt.Errorf("failed to create CBOR encoder: %w", err)
	}

	decMode, err := cbor.DecOptions{
		DupMapKey: cbor.DupMapKeyEnforcedAPF,
	}.DecMode()
	if err != nil {
		return nil, fmt.Errorf("failed to create CBOR decoder: %w", err)
	}

	return &Cache{
		backend: backend,
		ttl:     ttl,
		encMode: encMode,
		decMode: decMode,
		logger:  logger,
	}, nil
}

// Get decodes the value under key into dst and reports whether it was found
func (c *Cache) Get(ctx context.Context, key string, dst any) bool {
	raw, err := c.backend.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			c.logger.Warn("cache read failed", "key", key, "error", err)
		}
		return false
	}
	if err := c.decMode.Unmarshal(raw, dst); err != nil {
		c.logger.Warn("cache entry undecodable, dropping it", "key", key, "error", err)
		c.Delete(ctx, key)
		return false
	}
	return true
}

// Set stores a snapshot of value under key
func (c *Cache) Set(ctx context.Context, key string, value any) {
	raw, err := c.encMode.Marshal(value)
	if err != nil {
		c.logger.Warn("cache encode failed", "key", key, "error", err)
		return
	}
	if err := c.backend.Set(ctx, key, raw, c.ttl); err != nil {
		c.logger.Warn("cache write failed", "key", key, "error", err)
	}
}

// Delete invalidates keys. Deleting absent keys is a no-op.
func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := c.backend.Delete(ctx, keys...); err != nil {
		c.logger.Warn("cache invalidation failed", "keys", keys, "error", err)
	}
}

// Ping checks the backend
func (c *Cache) Ping(ctx context.Context) error {
	return c.backend.Ping(ctx)
}

// Close releases the backend
func (c *Cache) Close() error {
	return c.backend.Close()
}
