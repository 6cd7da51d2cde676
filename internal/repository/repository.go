package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sergdemc/y-lab-1/internal/models"
)

var (
	// ErrNotFound signals absence of the requested row. It is not a failure.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateTitle is returned when a write violates per-kind title uniqueness.
	ErrDuplicateTitle = errors.New("duplicate title")

	// ErrParentNotFound is returned when a child is written against a missing parent.
	ErrParentNotFound = errors.New("parent record not found")
)

// MenuRepository defines the interface for menu data access
type MenuRepository interface {
	GetAll(ctx context.Context) ([]models.Menu, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Menu, error)
	GetByTitle(ctx context.Context, title string) (*models.Menu, error)
	Create(ctx context.Context, in models.MenuInput) (*models.Menu, error)
	Update(ctx context.Context, id uuid.UUID, in models.MenuInput) (*models.Menu, error)
	// Delete removes the menu with all of its submenus and dishes atomically
	// and returns the deleted menu.
	Delete(ctx context.Context, id uuid.UUID) (*models.Menu, error)
}

// SubmenuRepository defines the interface for submenu data access
type SubmenuRepository interface {
	GetAll(ctx context.Context, menuID uuid.UUID) ([]models.Submenu, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Submenu, error)
	GetByTitle(ctx context.Context, title string) (*models.Submenu, error)
	Create(ctx context.Context, menuID uuid.UUID, in models.SubmenuInput) (*models.Submenu, error)
	Update(ctx context.Context, id uuid.UUID, in models.SubmenuInput) (*models.Submenu, error)
	// Delete removes the submenu with all of its dishes atomically.
	Delete(ctx context.Context, id uuid.UUID) (*models.Submenu, error)
}

// DishRepository defines the interface for dish data access
type DishRepository interface {
	GetAll(ctx context.Context, submenuID uuid.UUID) ([]models.Dish, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Dish, error)
	GetByTitle(ctx context.Context, title string) (*models.Dish, error)
	Create(ctx context.Context, submenuID uuid.UUID, in models.DishInput) (*models.Dish, error)
	Update(ctx context.Context, id uuid.UUID, in models.DishInput) (*models.Dish, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Dish, error)
}

// AggregateRepository computes derived child counts. Parents with no
// children yield zero counts; a missing parent yields ErrNotFound.
type AggregateRepository interface {
	MenuDetails(ctx context.Context, menuID uuid.UUID) (*models.MenuDetails, error)
	SubmenuDetails(ctx context.Context, submenuID uuid.UUID) (*models.SubmenuDetails, error)
}

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Repositories bundles the per-entity repositories handed to the services
type Repositories struct {
	Menus      MenuRepository
	Submenus   SubmenuRepository
	Dishes     DishRepository
	Aggregates AggregateRepository
}
