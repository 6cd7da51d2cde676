package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sergdemc/y-lab-1/internal/cache"
	"github.com/sergdemc/y-lab-1/internal/models"
	"github.com/sergdemc/y-lab-1/internal/repository"
)

// MenuService handles menu reads and writes
type MenuService struct {
	base
}

// NewMenuService creates a new MenuService
func NewMenuService(repos repository.Repositories, c *cache.Cache, logger *slog.Logger) *MenuService {
	return &MenuService{base: newBase(repos, c, logger)}
}

// ExistsByID reports whether a menu with id exists
func (s *MenuService) ExistsByID(ctx context.Context, id uuid.UUID) bool {
	_, err := s.repos.Menus.GetByID(ctx, id)
	return s.present(err, "menu lookup", "menu_id", id)
}

// ExistsByTitle reports whether a menu titled title exists
func (s *MenuService) ExistsByTitle(ctx context.Context, title string) bool {
	_, err := s.repos.Menus.GetByTitle(ctx, title)
	return s.present(err, "menu title lookup", "title", title)
}

// GetAll returns every menu with its counts, in creation order
func (s *MenuService) GetAll(ctx context.Context) []models.MenuWithCounts {
	menus, err := s.repos.Menus.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to list menus", "error", err)
		return []models.MenuWithCounts{}
	}

	result := make([]models.MenuWithCounts, 0, len(menus))
	for _, m := range menus {
		// rows deleted between the listing and the lookup are skipped
		details, err := s.GetByID(ctx, m.ID)
		if err != nil {
			continue
		}
		result = append(result, *details)
	}
	return result
}

// GetByID returns a menu with its counts, from cache when possible
func (s *MenuService) GetByID(ctx context.Context, id uuid.UUID) (*models.MenuWithCounts, error) {
	key := cache.MenuKey(id)

	var cached models.MenuWithCounts
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	details, err := s.repos.Aggregates.MenuDetails(ctx, id)
	if !s.present(err, "menu aggregate", "menu_id", id) {
		return nil, ErrMenuNotFound
	}

	menu := models.NewMenuWithCounts(details)
	s.cache.Set(ctx, key, menu)
	return menu, nil
}

// Create stores a new menu
func (s *MenuService) Create(ctx context.Context, in models.MenuInput) (*models.MenuResponse, error) {
	menu, err := s.repos.Menus.Create(ctx, in)
	if err != nil {
		return nil, s.writeFailure("create menu", err, ErrMenuNotFound, ErrMenuExists, ErrMenuNotFound)
	}

	s.logger.Info("menu created", "menu_id", menu.ID)
	return models.NewMenuResponse(menu), nil
}

// Update replaces title and description of a menu
func (s *MenuService) Update(ctx context.Context, id uuid.UUID, in models.MenuInput) (*models.MenuResponse, error) {
	menu, err := s.repos.Menus.Update(ctx, id, in)
	if err != nil {
		return nil, s.writeFailure("update menu", err, ErrMenuNotFound, ErrMenuExists, ErrMenuNotFound)
	}

	s.cache.Delete(ctx, cache.MenuKey(id))
	return models.NewMenuResponse(menu), nil
}

// Delete removes a menu together with its submenus and dishes and drops
// every affected snapshot from the cache.
func (s *MenuService) Delete(ctx context.Context, id uuid.UUID) (*models.MenuResponse, error) {
	keys, err := s.cascadeKeys(ctx, id)
	if err != nil {
		return nil, s.writeFailure("snapshot menu cascade", err, ErrMenuNotFound, ErrMenuExists, ErrMenuNotFound)
	}

	menu, err := s.repos.Menus.Delete(ctx, id)
	if err != nil {
		return nil, s.writeFailure("delete menu", err, ErrMenuNotFound, ErrMenuExists, ErrMenuNotFound)
	}

	s.cache.Delete(ctx, keys...)
	s.logger.Info("menu deleted", "menu_id", id, "invalidated", len(keys))
	return models.NewMenuResponse(menu), nil
}

// cascadeKeys lists the cache keys of a menu and everything below it
func (s *MenuService) cascadeKeys(ctx context.Context, id uuid.UUID) ([]string, error) {
	keys := []string{cache.MenuKey(id)}

	submenus, err := s.repos.Submenus.GetAll(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, sm := range submenus {
		keys = append(keys, cache.SubmenuKey(sm.ID))

		dishes, err := s.repos.Dishes.GetAll(ctx, sm.ID)
		if err != nil {
			return nil, err
		}
		for _, d := range dishes {
			keys = append(keys, cache.DishKey(d.ID))
		}
	}
	return keys, nil
}
