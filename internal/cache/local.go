package cache

import (
	"context"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// LocalBackend keeps cache entries in process memory
type LocalBackend struct {
	items    *ttlcache.Cache[string, []byte]
	stopOnce sync.Once
}

// NewLocalBackend creates an in-process cache and starts its expiry loop.
// Close stops the loop.
func NewLocalBackend(ttl time.Duration) *LocalBackend {
	items := ttlcache.New(
		ttlcache.WithTTL[string, []byte](ttl),
		ttlcache.WithDisableTouchOnHit[string, []byte](),
	)
	go items.Start()
	return &LocalBackend{items: items}
}

func (b *LocalBackend) Get(ctx context.Context, key string) ([]byte, error) {
	item := b.items.Get(key)
	if item == nil || item.IsExpired() {
		return nil, ErrMiss
	}
	return item.Value(), nil
}

func (b *LocalBackend) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = ttlcache.NoTTL
	}
	b.items.Set(key, value, ttl)
	return nil
}

func (b *LocalBackend) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		b.items.Delete(key)
	}
	return nil
}

func (b *LocalBackend) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (b *LocalBackend) Len() int {
	return b.items.Len()
}

func (b *LocalBackend) Close() error {
	b.stopOnce.Do(b.items.Stop)
	return nil
}
