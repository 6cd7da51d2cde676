package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sergdemc/y-lab-1/internal/cache"
	"github.com/sergdemc/y-lab-1/internal/models"
	"github.com/sergdemc/y-lab-1/internal/repository"
)

// DishService handles dish reads and writes
type DishService struct {
	base
}

// NewDishService creates a new DishService
func NewDishService(repos repository.Repositories, c *cache.Cache, logger *slog.Logger) *DishService {
	return &DishService{base: newBase(repos, c, logger)}
}

func (s *DishService) ExistsByID(ctx context.Context, id uuid.UUID) bool {
	_, err := s.repos.Dishes.GetByID(ctx, id)
	return s.present(err, "dish lookup", "dish_id", id)
}

func (s *DishService) ExistsByTitle(ctx context.Context, title string) bool {
	_, err := s.repos.Dishes.GetByTitle(ctx, title)
	return s.present(err, "dish title lookup", "title", title)
}

// ExistsInSubmenu reports whether dishID exists and belongs to submenuID
func (s *DishService) ExistsInSubmenu(ctx context.Context, submenuID, dishID uuid.UUID) bool {
	dish, err := s.repos.Dishes.GetByID(ctx, dishID)
	if !s.present(err, "dish lookup", "dish_id", dishID) {
		return false
	}
	return dish.SubmenuID == submenuID
}

// GetAll returns the dishes of a submenu
func (s *DishService) GetAll(ctx context.Context, submenuID uuid.UUID) []models.DishResponse {
	dishes, err := s.repos.Dishes.GetAll(ctx, submenuID)
	if err != nil {
		s.logger.Error("failed to list dishes", "submenu_id", submenuID, "error", err)
		return []models.DishResponse{}
	}

	result := make([]models.DishResponse, 0, len(dishes))
	for _, d := range dishes {
		dish, err := s.GetByID(ctx, d.ID)
		if err != nil {
			continue
		}
		result = append(result, *dish)
	}
	return result
}

// GetByID returns a dish, from cache when possible
func (s *DishService) GetByID(ctx context.Context, id uuid.UUID) (*models.DishResponse, error) {
	key := cache.DishKey(id)

	var cached models.DishResponse
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	d, err := s.repos.Dishes.GetByID(ctx, id)
	if !s.present(err, "dish lookup", "dish_id", id) {
		return nil, ErrDishNotFound
	}

	dish := models.NewDishResponse(d)
	s.cache.Set(ctx, key, dish)
	return dish, nil
}

// Create stores a new dish under submenuID and invalidates the counts of
// the submenu and its menu.
func (s *DishService) Create(ctx context.Context, submenuID uuid.UUID, in models.DishInput) (*models.DishResponse, error) {
	dish, err := s.repos.Dishes.Create(ctx, submenuID, in)
	if err != nil {
		return nil, s.writeFailure("create dish", err, ErrDishNotFound, ErrDishExists, ErrSubmenuNotFound)
	}

	s.cache.Delete(ctx, s.ancestorKeys(ctx, dish.SubmenuID)...)
	s.logger.Info("dish created", "dish_id", dish.ID, "submenu_id", dish.SubmenuID)
	return models.NewDishResponse(dish), nil
}

func (s *DishService) Update(ctx context.Context, id uuid.UUID, in models.DishInput) (*models.DishResponse, error) {
	dish, err := s.repos.Dishes.Update(ctx, id, in)
	if err != nil {
		return nil, s.writeFailure("update dish", err, ErrDishNotFound, ErrDishExists, ErrSubmenuNotFound)
	}

	s.cache.Delete(ctx, cache.DishKey(id))
	return models.NewDishResponse(dish), nil
}

// Delete removes a dish and drops it, its submenu and its menu from the cache
func (s *DishService) Delete(ctx context.Context, id uuid.UUID) (*models.DishResponse, error) {
	current, err := s.repos.Dishes.GetByID(ctx, id)
	if err != nil {
		return nil, s.writeFailure("lookup dish", err, ErrDishNotFound, ErrDishExists, ErrSubmenuNotFound)
	}
	keys := append([]string{cache.DishKey(id)}, s.ancestorKeys(ctx, current.SubmenuID)...)

	dish, err := s.repos.Dishes.Delete(ctx, id)
	if err != nil {
		return nil, s.writeFailure("delete dish", err, ErrDishNotFound, ErrDishExists, ErrSubmenuNotFound)
	}

	s.cache.Delete(ctx, keys...)
	s.logger.Info("dish deleted", "dish_id", id, "submenu_id", dish.SubmenuID)
	return models.NewDishResponse(dish), nil
}

// ancestorKeys returns the submenu key and, when the submenu still
// resolves, the key of its menu.
func (s *DishService) ancestorKeys(ctx context.Context, submenuID uuid.UUID) []string {
	keys := []string{cache.SubmenuKey(submenuID)}

	submenu, err := s.repos.Submenus.GetByID(ctx, submenuID)
	if !s.present(err, "submenu lookup", "submenu_id", submenuID) {
		s.logger.Warn("menu snapshot not invalidated, submenu unresolved", "submenu_id", submenuID)
		return keys
	}
	return append(keys, cache.MenuKey(submenu.MenuID))
}
