package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/sergdemc/y-lab-1/internal/models"
	"github.com/sergdemc/y-lab-1/internal/service"
)

// DishHandler handles dish requests nested under a menu and submenu
type DishHandler struct {
	menus    *service.MenuService
	submenus *service.SubmenuService
	dishes   *service.DishService
	logger   *slog.Logger
}

func NewDishHandler(menus *service.MenuService, submenus *service.SubmenuService, dishes *service.DishService, logger *slog.Logger) *DishHandler {
	return &DishHandler{
		menus:    menus,
		submenus: submenus,
		dishes:   dishes,
		logger:   logger,
	}
}

// ListDishes handles GET /api/v1/menus/{menu_id}/submenus/{submenu_id}/dishes.
// A submenu that does not belong to the menu yields an empty list.
func (h *DishHandler) ListDishes(w http.ResponseWriter, r *http.Request) {
	menuID, submenuID, ok := submenuPath(w, r, h.logger)
	if !ok {
		return
	}

	ctx := r.Context()
	if !h.menus.ExistsByID(ctx, menuID) {
		writeServiceError(w, service.ErrMenuNotFound, h.logger)
		return
	}
	if !h.submenus.ExistsInMenu(ctx, menuID, submenuID) {
		WriteJSON(w, http.StatusOK, []models.DishResponse{}, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, h.dishes.GetAll(ctx, submenuID), h.logger)
}

// GetDish handles GET /api/v1/menus/{menu_id}/submenus/{submenu_id}/dishes/{dish_id}
func (h *DishHandler) GetDish(w http.ResponseWriter, r *http.Request) {
	menuID, submenuID, dishID, ok := dishPath(w, r, h.logger)
	if !ok || !h.owned(w, r, menuID, submenuID, dishID) {
		return
	}

	dish, err := h.dishes.GetByID(r.Context(), dishID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, dish, h.logger)
}

// CreateDish handles POST /api/v1/menus/{menu_id}/submenus/{submenu_id}/dishes
func (h *DishHandler) CreateDish(w http.ResponseWriter, r *http.Request) {
	menuID, submenuID, ok := submenuPath(w, r, h.logger)
	if !ok {
		return
	}

	var in models.DishInput
	if !decodeInput(w, r, &in, h.logger) {
		return
	}
	if !checkSubmenu(w, r, h.menus, h.submenus, menuID, submenuID, h.logger) {
		return
	}

	ctx := r.Context()
	if h.dishes.ExistsByTitle(ctx, in.Title) {
		writeServiceError(w, service.ErrDishExists, h.logger)
		return
	}

	dish, err := h.dishes.Create(ctx, submenuID, in)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusCreated, dish, h.logger)
}

// UpdateDish handles PATCH /api/v1/menus/{menu_id}/submenus/{submenu_id}/dishes/{dish_id}
func (h *DishHandler) UpdateDish(w http.ResponseWriter, r *http.Request) {
	menuID, submenuID, dishID, ok := dishPath(w, r, h.logger)
	if !ok {
		return
	}

	var in models.DishInput
	if !decodeInput(w, r, &in, h.logger) {
		return
	}
	if !h.owned(w, r, menuID, submenuID, dishID) {
		return
	}

	dish, err := h.dishes.Update(r.Context(), dishID, in)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, dish, h.logger)
}

// DeleteDish handles DELETE /api/v1/menus/{menu_id}/submenus/{submenu_id}/dishes/{dish_id}
func (h *DishHandler) DeleteDish(w http.ResponseWriter, r *http.Request) {
	menuID, submenuID, dishID, ok := dishPath(w, r, h.logger)
	if !ok || !h.owned(w, r, menuID, submenuID, dishID) {
		return
	}

	dish, err := h.dishes.Delete(r.Context(), dishID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, dish, h.logger)
}

// owned checks the whole ancestry of a dish
func (h *DishHandler) owned(w http.ResponseWriter, r *http.Request, menuID, submenuID, dishID uuid.UUID) bool {
	if !checkSubmenu(w, r, h.menus, h.submenus, menuID, submenuID, h.logger) {
		return false
	}
	if !h.dishes.ExistsInSubmenu(r.Context(), submenuID, dishID) {
		writeServiceError(w, service.ErrDishNotFound, h.logger)
		return false
	}
	return true
}
