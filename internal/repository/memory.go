package repository

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sergdemc/y-lab-1/internal/models"
)

// MemoryStore implements the repositories with in-memory storage.
// Rows keep insertion order; title uniqueness and cascades mirror the
// PostgreSQL schema.
type MemoryStore struct {
	mu       sync.RWMutex
	menus    []models.Menu
	submenus []models.Submenu
	dishes   []models.Dish
	now      func() time.Time
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (s *MemoryStore) Repositories() Repositories {
	return Repositories{
		Menus:      &memoryMenus{s},
		Submenus:   &memorySubmenus{s},
		Dishes:     &memoryDishes{s},
		Aggregates: &memoryAggregates{s},
	}
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemoryStore) menuIndex(id uuid.UUID) int {
	return slices.IndexFunc(s.menus, func(m models.Menu) bool { return m.ID == id })
}

func (s *MemoryStore) submenuIndex(id uuid.UUID) int {
	return slices.IndexFunc(s.submenus, func(sm models.Submenu) bool { return sm.ID == id })
}

func (s *MemoryStore) dishIndex(id uuid.UUID) int {
	return slices.IndexFunc(s.dishes, func(d models.Dish) bool { return d.ID == id })
}

// deleteDishesOf drops every dish of the given submenus
func (s *MemoryStore) deleteDishesOf(submenuIDs ...uuid.UUID) {
	s.dishes = slices.DeleteFunc(s.dishes, func(d models.Dish) bool {
		return slices.Contains(submenuIDs, d.SubmenuID)
	})
}

type memoryMenus struct{ s *MemoryStore }

func (r *memoryMenus) GetAll(ctx context.Context) ([]models.Menu, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	menus := make([]models.Menu, len(r.s.menus))
	copy(menus, r.s.menus)
	return menus, nil
}

func (r *memoryMenus) GetByID(ctx context.Context, id uuid.UUID) (*models.Menu, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i := r.s.menuIndex(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	m := r.s.menus[i]
	return &m, nil
}

func (r *memoryMenus) GetByTitle(ctx context.Context, title string) (*models.Menu, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i := slices.IndexFunc(r.s.menus, func(m models.Menu) bool { return m.Title == title })
	if i < 0 {
		return nil, ErrNotFound
	}
	m := r.s.menus[i]
	return &m, nil
}

func (r *memoryMenus) Create(ctx context.Context, in models.MenuInput) (*models.Menu, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if slices.ContainsFunc(r.s.menus, func(m models.Menu) bool { return m.Title == in.Title }) {
		return nil, ErrDuplicateTitle
	}
	now := r.s.now()
	m := models.Menu{
		ID:          uuid.New(),
		Title:       in.Title,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.s.menus = append(r.s.menus, m)
	return &m, nil
}

func (r *memoryMenus) Update(ctx context.Context, id uuid.UUID, in models.MenuInput) (*models.Menu, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.s.menuIndex(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	if slices.ContainsFunc(r.s.menus, func(m models.Menu) bool { return m.Title == in.Title && m.ID != id }) {
		return nil, ErrDuplicateTitle
	}
	m := &r.s.menus[i]
	m.Title = in.Title
	m.Description = in.Description
	m.UpdatedAt = r.s.now()
	updated := *m
	return &updated, nil
}

func (r *memoryMenus) Delete(ctx context.Context, id uuid.UUID) (*models.Menu, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.s.menuIndex(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	deleted := r.s.menus[i]

	var submenuIDs []uuid.UUID
	for _, sm := range r.s.submenus {
		if sm.MenuID == id {
			submenuIDs = append(submenuIDs, sm.ID)
		}
	}
	r.s.deleteDishesOf(submenuIDs...)
	r.s.submenus = slices.DeleteFunc(r.s.submenus, func(sm models.Submenu) bool { return sm.MenuID == id })
	r.s.menus = slices.Delete(r.s.menus, i, i+1)
	return &deleted, nil
}

type memorySubmenus struct{ s *MemoryStore }

func (r *memorySubmenus) GetAll(ctx context.Context, menuID uuid.UUID) ([]models.Submenu, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	submenus := make([]models.Submenu, 0)
	for _, sm := range r.s.submenus {
		if sm.MenuID == menuID {
			submenus = append(submenus, sm)
		}
	}
	return submenus, nil
}

func (r *memorySubmenus) GetByID(ctx context.Context, id uuid.UUID) (*models.Submenu, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i := r.s.submenuIndex(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	sm := r.s.submenus[i]
	return &sm, nil
}

func (r *memorySubmenus) GetByTitle(ctx context.Context, title string) (*models.Submenu, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i := slices.IndexFunc(r.s.submenus, func(sm models.Submenu) bool { return sm.Title == title })
	if i < 0 {
		return nil, ErrNotFound
	}
	sm := r.s.submenus[i]
	return &sm, nil
}

func (r *memorySubmenus) Create(ctx context.Context, menuID uuid.UUID, in models.SubmenuInput) (*models.Submenu, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if slices.ContainsFunc(r.s.submenus, func(sm models.Submenu) bool { return sm.Title == in.Title }) {
		return nil, ErrDuplicateTitle
	}
	if r.s.menuIndex(menuID) < 0 {
		return nil, ErrParentNotFound
	}
	now := r.s.now()
	sm := models.Submenu{
		ID:          uuid.New(),
		Title:       in.Title,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
		MenuID:      menuID,
	}
	r.s.submenus = append(r.s.submenus, sm)
	return &sm, nil
}

func (r *memorySubmenus) Update(ctx context.Context, id uuid.UUID, in models.SubmenuInput) (*models.Submenu, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.s.submenuIndex(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	if slices.ContainsFunc(r.s.submenus, func(sm models.Submenu) bool { return sm.Title == in.Title && sm.ID != id }) {
		return nil, ErrDuplicateTitle
	}
	sm := &r.s.submenus[i]
	sm.Title = in.Title
	sm.Description = in.Description
	sm.UpdatedAt = r.s.now()
	updated := *sm
	return &updated, nil
}

func (r *memorySubmenus) Delete(ctx context.Context, id uuid.UUID) (*models.Submenu, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.s.submenuIndex(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	deleted := r.s.submenus[i]
	r.s.deleteDishesOf(id)
	r.s.submenus = slices.Delete(r.s.submenus, i, i+1)
	return &deleted, nil
}

type memoryDishes struct{ s *MemoryStore }

func (r *memoryDishes) GetAll(ctx context.Context, submenuID uuid.UUID) ([]models.Dish, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	dishes := make([]models.Dish, 0)
	for _, d := range r.s.dishes {
		if d.SubmenuID == submenuID {
			dishes = append(dishes, d)
		}
	}
	return dishes, nil
}

func (r *memoryDishes) GetByID(ctx context.Context, id uuid.UUID) (*models.Dish, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i := r.s.dishIndex(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	d := r.s.dishes[i]
	return &d, nil
}

func (r *memoryDishes) GetByTitle(ctx context.Context, title string) (*models.Dish, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i := slices.IndexFunc(r.s.dishes, func(d models.Dish) bool { return d.Title == title })
	if i < 0 {
		return nil, ErrNotFound
	}
	d := r.s.dishes[i]
	return &d, nil
}

func (r *memoryDishes) Create(ctx context.Context, submenuID uuid.UUID, in models.DishInput) (*models.Dish, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if slices.ContainsFunc(r.s.dishes, func(d models.Dish) bool { return d.Title == in.Title }) {
		return nil, ErrDuplicateTitle
	}
	if r.s.submenuIndex(submenuID) < 0 {
		return nil, ErrParentNotFound
	}
	now := r.s.now()
	d := models.Dish{
		ID:          uuid.New(),
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
		SubmenuID:   submenuID,
	}
	r.s.dishes = append(r.s.dishes, d)
	return &d, nil
}

func (r *memoryDishes) Update(ctx context.Context, id uuid.UUID, in models.DishInput) (*models.Dish, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.s.dishIndex(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	if slices.ContainsFunc(r.s.dishes, func(d models.Dish) bool { return d.Title == in.Title && d.ID != id }) {
		return nil, ErrDuplicateTitle
	}
	d := &r.s.dishes[i]
	d.Title = in.Title
	d.Description = in.Description
	d.Price = in.Price
	d.UpdatedAt = r.s.now()
	updated := *d
	return &updated, nil
}

func (r *memoryDishes) Delete(ctx context.Context, id uuid.UUID) (*models.Dish, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.s.dishIndex(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	deleted := r.s.dishes[i]
	r.s.dishes = slices.Delete(r.s.dishes, i, i+1)
	return &deleted, nil
}

type memoryAggregates struct{ s *MemoryStore }

func (r *memoryAggregates) MenuDetails(ctx context.Context, menuID uuid.UUID) (*models.MenuDetails, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i := r.s.menuIndex(menuID)
	if i < 0 {
		return nil, ErrNotFound
	}
	details := &models.MenuDetails{Menu: r.s.menus[i]}
	for _, sm := range r.s.submenus {
		if sm.MenuID != menuID {
			continue
		}
		details.SubmenusCount++
		for _, d := range r.s.dishes {
			if d.SubmenuID == sm.ID {
				details.DishesCount++
			}
		}
	}
	return details, nil
}

func (r *memoryAggregates) SubmenuDetails(ctx context.Context, submenuID uuid.UUID) (*models.SubmenuDetails, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i := r.s.submenuIndex(submenuID)
	if i < 0 {
		return nil, ErrNotFound
	}
	details := &models.SubmenuDetails{Submenu: r.s.submenus[i]}
	for _, d := range r.s.dishes {
		if d.SubmenuID == submenuID {
			details.DishesCount++
		}
	}
	return details, nil
}
