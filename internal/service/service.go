// Package service holds the catalog business rules: existence checks,
// aggregate assembly, read-through caching and cache invalidation around
// writes and cascading deletes.
//
// Services never return a lower-level error to their callers. Reads degrade
// to "not found" or an empty list, writes to one of the sentinel errors in
// errors.go, and every store failure is logged here.
package service

import (
	"errors"
	"log/slog"

	"github.com/sergdemc/y-lab-1/internal/cache"
	"github.com/sergdemc/y-lab-1/internal/repository"
)

type base struct {
	repos  repository.Repositories
	cache  *cache.Cache
	logger *slog.Logger
}

func newBase(repos repository.Repositories, c *cache.Cache, logger *slog.Logger) base {
	if logger == nil {
		logger = slog.Default()
	}
	return base{
		repos:  repos,
		cache:  c,
		logger: logger,
	}
}

// present reports whether a lookup found its row. Store failures count as
// absent and are logged.
func (b base) present(err error, op string, args ...any) bool {
	if err == nil {
		return true
	}
	if !errors.Is(err, repository.ErrNotFound) {
		b.logger.Error(op+" failed", append(args, "error", err)...)
	}
	return false
}

// writeFailure logs unexpected store errors and translates the rest
func (b base) writeFailure(op string, err error, notFound, exists, parentNotFound error) error {
	translated := translate(err, notFound, exists, parentNotFound)
	if errors.Is(translated, ErrStoreFailure) {
		b.logger.Error(op+" failed", "error", err)
	}
	return translated
}
