package service

import (
	"errors"
	"fmt"

	"github.com/sergdemc/y-lab-1/internal/repository"
)

// The messages double as the client-facing detail, keep them stable.
var (
	ErrMenuNotFound    = errors.New("menu not found")
	ErrSubmenuNotFound = errors.New("submenu not found")
	ErrDishNotFound    = errors.New("dish not found")

	ErrMenuExists    = errors.New("menu exists")
	ErrSubmenuExists = errors.New("submenu exists")
	ErrDishExists    = errors.New("dish exists")

	ErrStoreFailure = errors.New("store failure")
)

// translate maps a repository error of a write onto the service taxonomy
func translate(err error, notFound, exists, parentNotFound error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return notFound
	case errors.Is(err, repository.ErrDuplicateTitle):
		return exists
	case errors.Is(err, repository.ErrParentNotFound):
		return parentNotFound
	default:
		return fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
}
