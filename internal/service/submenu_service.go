package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sergdemc/y-lab-1/internal/cache"
	"github.com/sergdemc/y-lab-1/internal/models"
	"github.com/sergdemc/y-lab-1/internal/repository"
)

// SubmenuService handles submenu reads and writes
type SubmenuService struct {
	base
}

// NewSubmenuService creates a new SubmenuService
func NewSubmenuService(repos repository.Repositories, c *cache.Cache, logger *slog.Logger) *SubmenuService {
	return &SubmenuService{base: newBase(repos, c, logger)}
}

func (s *SubmenuService) ExistsByID(ctx context.Context, id uuid.UUID) bool {
	_, err := s.repos.Submenus.GetByID(ctx, id)
	return s.present(err, "submenu lookup", "submenu_id", id)
}

func (s *SubmenuService) ExistsByTitle(ctx context.Context, title string) bool {
	_, err := s.repos.Submenus.GetByTitle(ctx, title)
	return s.present(err, "submenu title lookup", "title", title)
}

// ExistsInMenu reports whether submenuID exists and belongs to menuID
func (s *SubmenuService) ExistsInMenu(ctx context.Context, menuID, submenuID uuid.UUID) bool {
	submenu, err := s.repos.Submenus.GetByID(ctx, submenuID)
	if !s.present(err, "submenu lookup", "submenu_id", submenuID) {
		return false
	}
	return submenu.MenuID == menuID
}

// GetAll returns the submenus of a menu with their dish counts
func (s *SubmenuService) GetAll(ctx context.Context, menuID uuid.UUID) []models.SubmenuWithDishCount {
	submenus, err := s.repos.Submenus.GetAll(ctx, menuID)
	if err != nil {
		s.logger.Error("failed to list submenus", "menu_id", menuID, "error", err)
		return []models.SubmenuWithDishCount{}
	}

	result := make([]models.SubmenuWithDishCount, 0, len(submenus))
	for _, sm := range submenus {
		details, err := s.GetByID(ctx, sm.ID)
		if err != nil {
			continue
		}
		result = append(result, *details)
	}
	return result
}

// GetByID returns a submenu with its dish count, from cache when possible
func (s *SubmenuService) GetByID(ctx context.Context, id uuid.UUID) (*models.SubmenuWithDishCount, error) {
	key := cache.SubmenuKey(id)

	var cached models.SubmenuWithDishCount
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	details, err := s.repos.Aggregates.SubmenuDetails(ctx, id)
	if !s.present(err, "submenu aggregate", "submenu_id", id) {
		return nil, ErrSubmenuNotFound
	}

	submenu := models.NewSubmenuWithDishCount(details)
	s.cache.Set(ctx, key, submenu)
	return submenu, nil
}

// Create stores a new submenu under menuID and invalidates the menu counts
func (s *SubmenuService) Create(ctx context.Context, menuID uuid.UUID, in models.SubmenuInput) (*models.SubmenuResponse, error) {
	submenu, err := s.repos.Submenus.Create(ctx, menuID, in)
	if err != nil {
		return nil, s.writeFailure("create submenu", err, ErrSubmenuNotFound, ErrSubmenuExists, ErrMenuNotFound)
	}

	s.cache.Delete(ctx, cache.MenuKey(submenu.MenuID))
	s.logger.Info("submenu created", "submenu_id", submenu.ID, "menu_id", submenu.MenuID)
	return models.NewSubmenuResponse(submenu), nil
}

func (s *SubmenuService) Update(ctx context.Context, id uuid.UUID, in models.SubmenuInput) (*models.SubmenuResponse, error) {
	submenu, err := s.repos.Submenus.Update(ctx, id, in)
	if err != nil {
		return nil, s.writeFailure("update submenu", err, ErrSubmenuNotFound, ErrSubmenuExists, ErrMenuNotFound)
	}

	s.cache.Delete(ctx, cache.SubmenuKey(id))
	return models.NewSubmenuResponse(submenu), nil
}

// Delete removes a submenu with its dishes. The submenu, its dishes and the
// owning menu are dropped from the cache.
func (s *SubmenuService) Delete(ctx context.Context, id uuid.UUID) (*models.SubmenuResponse, error) {
	dishes, err := s.repos.Dishes.GetAll(ctx, id)
	if err != nil {
		return nil, s.writeFailure("snapshot submenu cascade", err, ErrSubmenuNotFound, ErrSubmenuExists, ErrMenuNotFound)
	}

	submenu, err := s.repos.Submenus.Delete(ctx, id)
	if err != nil {
		return nil, s.writeFailure("delete submenu", err, ErrSubmenuNotFound, ErrSubmenuExists, ErrMenuNotFound)
	}

	keys := make([]string, 0, len(dishes)+2)
	keys = append(keys, cache.SubmenuKey(id), cache.MenuKey(submenu.MenuID))
	for _, d := range dishes {
		keys = append(keys, cache.DishKey(d.ID))
	}
	s.cache.Delete(ctx, keys...)

	s.logger.Info("submenu deleted", "submenu_id", id, "menu_id", submenu.MenuID, "invalidated", len(keys))
	return models.NewSubmenuResponse(submenu), nil
}
