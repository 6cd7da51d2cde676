package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by a Backend when the key holds no value
var ErrMiss = errors.New("cache miss")

// Backend is a key/value store of opaque bytes
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes the keys. Absent keys are not an error.
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
	Close() error
}

// NopBackend stores nothing; every read is a miss
type NopBackend struct{}

func (NopBackend) Get(context.Context, string) ([]byte, error) {
	return nil, ErrMiss
}

func (NopBackend) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

func (NopBackend) Delete(context.Context, ...string) error {
	return nil
}

func (NopBackend) Ping(context.Context) error {
	return nil
}

func (NopBackend) Close() error {
	return nil
}
