//go:build integration
// +build integration

package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/orlangure/gnomock"
	redispreset "github.com/orlangure/gnomock/preset/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergdemc/y-lab-1/internal/models"
)

func TestRedisBackend(t *testing.T) {
	container, err := gnomock.Start(redispreset.Preset())
	require.NoError(t, err)
	t.Cleanup(func() { _ = gnomock.Stop(container) })

	ctx := context.Background()
	backend := NewRedisBackend(RedisOptions{Addr: container.DefaultAddress()})
	defer backend.Close()

	require.NoError(t, backend.Ping(ctx))

	t.Run("miss", func(t *testing.T) {
		_, err := backend.Get(ctx, "absent")
		assert.True(t, errors.Is(err, ErrMiss))
	})

	t.Run("delete absent keys", func(t *testing.T) {
		assert.NoError(t, backend.Delete(ctx, "absent", "also-absent"))
		assert.NoError(t, backend.Delete(ctx))
	})

	t.Run("ttl expiry", func(t *testing.T) {
		require.NoError(t, backend.Set(ctx, "short", []byte("v"), time.Second))
		assert.Eventually(t, func() bool {
			_, err := backend.Get(ctx, "short")
			return errors.Is(err, ErrMiss)
		}, 5*time.Second, 100*time.Millisecond)
	})

	t.Run("snapshot round trip", func(t *testing.T) {
		c, err := New(backend, 0, quietLogger())
		require.NoError(t, err)

		submenu := models.SubmenuWithDishCount{ID: uuid.New(), Title: "submenu1", DishesCount: 2}
		c.Set(ctx, SubmenuKey(submenu.ID), &submenu)

		var got models.SubmenuWithDishCount
		require.True(t, c.Get(ctx, SubmenuKey(submenu.ID), &got))
		assert.Equal(t, submenu, got)

		c.Delete(ctx, SubmenuKey(submenu.ID))
		assert.False(t, c.Get(ctx, SubmenuKey(submenu.ID), &got))
	})
}
