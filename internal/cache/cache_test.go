package cache

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergdemc/y-lab-1/internal/models"
)

type failingBackend struct{}

var errBackendDown = errors.New("backend down")

func (failingBackend) Get(context.Context, string) ([]byte, error) { return nil, errBackendDown }
func (failingBackend) Set(context.Context, string, []byte, time.Duration) error {
	return errBackendDown
}
func (failingBackend) Delete(context.Context, ...string) error { return errBackendDown }
func (failingBackend) Ping(context.Context) error              { return errBackendDown }
func (failingBackend) Close() error                            { return nil }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newLocalCache(t *testing.T) (*Cache, *LocalBackend) {
	t.Helper()
	backend := NewLocalBackend(0)
	t.Cleanup(func() { _ = backend.Close() })
	c, err := New(backend, 0, quietLogger())
	require.NoError(t, err)
	return c, backend
}

func TestKeys(t *testing.T) {
	id := uuid.MustParse("0b5c2f4e-8a7d-4c36-9f55-4f0f1e3b9a10")
	assert.Equal(t, "menu_0b5c2f4e-8a7d-4c36-9f55-4f0f1e3b9a10", MenuKey(id))
	assert.Equal(t, "submenu_0b5c2f4e-8a7d-4c36-9f55-4f0f1e3b9a10", SubmenuKey(id))
	assert.Equal(t, "dish_0b5c2f4e-8a7d-4c36-9f55-4f0f1e3b9a10", DishKey(id))
}

func TestCache_SnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, _ := newLocalCache(t)

	menu := models.MenuWithCounts{
		ID:            uuid.New(),
		Title:         "menu1",
		Description:   "description menu1",
		SubmenusCount: 1,
		DishesCount:   2,
	}
	c.Set(ctx, MenuKey(menu.ID), &menu)

	var got models.MenuWithCounts
	require.True(t, c.Get(ctx, MenuKey(menu.ID), &got))
	assert.Equal(t, menu, got)

	dish := models.DishResponse{ID: uuid.New(), Title: "dish1", Description: "d", Price: "100.00"}
	c.Set(ctx, DishKey(dish.ID), &dish)

	var gotDish models.DishResponse
	require.True(t, c.Get(ctx, DishKey(dish.ID), &gotDish))
	assert.Equal(t, dish, gotDish)
}

func TestCache_MissAndIdempotentDelete(t *testing.T) {
	ctx := context.Background()
	c, backend := newLocalCache(t)
	key := MenuKey(uuid.New())

	var dst models.MenuWithCounts
	assert.False(t, c.Get(ctx, key, &dst))

	c.Delete(ctx, key)
	c.Delete(ctx, key, SubmenuKey(uuid.New()))
	c.Delete(ctx)

	c.Set(ctx, key, &models.MenuWithCounts{Title: "x"})
	assert.Equal(t, 1, backend.Len())
	c.Delete(ctx, key)
	c.Delete(ctx, key)
	assert.Equal(t, 0, backend.Len())
	assert.False(t, c.Get(ctx, key, &dst))
}

func TestCache_UndecodableEntryIsDropped(t *testing.T) {
	ctx := context.Background()
	c, backend := newLocalCache(t)
	key := DishKey(uuid.New())

	require.NoError(t, backend.Set(ctx, key, []byte{0xff, 0x00, 0x13}, 0))

	var dst models.DishResponse
	assert.False(t, c.Get(ctx, key, &dst))
	assert.Equal(t, 0, backend.Len())
}

func TestCache_BackendFailureActsAsMiss(t *testing.T) {
	ctx := context.Background()
	c, err := New(failingBackend{}, time.Minute, quietLogger())
	require.NoError(t, err)

	key := MenuKey(uuid.New())
	assert.NotPanics(t, func() {
		c.Set(ctx, key, &models.MenuWithCounts{Title: "menu"})
		c.Delete(ctx, key)
	})

	var dst models.MenuWithCounts
	assert.False(t, c.Get(ctx, key, &dst))
	assert.Error(t, c.Ping(ctx))
}

func TestCache_NopBackendNeverHits(t *testing.T) {
	ctx := context.Background()
	c, err := New(NopBackend{}, 0, quietLogger())
	require.NoError(t, err)

	key := SubmenuKey(uuid.New())
	c.Set(ctx, key, &models.SubmenuWithDishCount{Title: "submenu"})

	var dst models.SubmenuWithDishCount
	assert.False(t, c.Get(ctx, key, &dst))
	assert.NoError(t, c.Ping(ctx))
}

func TestLocalBackend_TTL(t *testing.T) {
	ctx := context.Background()
	backend := NewLocalBackend(0)
	defer backend.Close()

	require.NoError(t, backend.Set(ctx, "short", []byte("v"), 20*time.Millisecond))
	require.NoError(t, backend.Set(ctx, "forever", []byte("v"), 0))

	assert.Eventually(t, func() bool {
		_, err := backend.Get(ctx, "short")
		return errors.Is(err, ErrMiss)
	}, time.Second, 10*time.Millisecond)

	value, err := backend.Get(ctx, "forever")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), value)
}
