package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/sergdemc/y-lab-1/internal/models"
	"github.com/sergdemc/y-lab-1/internal/service"
)

// SubmenuHandler handles submenu requests nested under a menu
type SubmenuHandler struct {
	menus    *service.MenuService
	submenus *service.SubmenuService
	logger   *slog.Logger
}

func NewSubmenuHandler(menus *service.MenuService, submenus *service.SubmenuService, logger *slog.Logger) *SubmenuHandler {
	return &SubmenuHandler{
		menus:    menus,
		submenus: submenus,
		logger:   logger,
	}
}

// ListSubmenus handles GET /api/v1/menus/{menu_id}/submenus
func (h *SubmenuHandler) ListSubmenus(w http.ResponseWriter, r *http.Request) {
	menuID, ok := pathUUID(w, r, menuIDParam, h.logger)
	if !ok {
		return
	}

	ctx := r.Context()
	if !h.menus.ExistsByID(ctx, menuID) {
		writeServiceError(w, service.ErrMenuNotFound, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, h.submenus.GetAll(ctx, menuID), h.logger)
}

// GetSubmenu handles GET /api/v1/menus/{menu_id}/submenus/{submenu_id}
func (h *SubmenuHandler) GetSubmenu(w http.ResponseWriter, r *http.Request) {
	menuID, submenuID, ok := submenuPath(w, r, h.logger)
	if !ok || !h.owned(w, r, menuID, submenuID) {
		return
	}

	submenu, err := h.submenus.GetByID(r.Context(), submenuID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, submenu, h.logger)
}

// CreateSubmenu handles POST /api/v1/menus/{menu_id}/submenus
func (h *SubmenuHandler) CreateSubmenu(w http.ResponseWriter, r *http.Request) {
	menuID, ok := pathUUID(w, r, menuIDParam, h.logger)
	if !ok {
		return
	}

	var in models.SubmenuInput
	if !decodeInput(w, r, &in, h.logger) {
		return
	}

	ctx := r.Context()
	if !h.menus.ExistsByID(ctx, menuID) {
		writeServiceError(w, service.ErrMenuNotFound, h.logger)
		return
	}
	if h.submenus.ExistsByTitle(ctx, in.Title) {
		writeServiceError(w, service.ErrSubmenuExists, h.logger)
		return
	}

	submenu, err := h.submenus.Create(ctx, menuID, in)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusCreated, submenu, h.logger)
}

// UpdateSubmenu handles PATCH /api/v1/menus/{menu_id}/submenus/{submenu_id}
func (h *SubmenuHandler) UpdateSubmenu(w http.ResponseWriter, r *http.Request) {
	menuID, submenuID, ok := submenuPath(w, r, h.logger)
	if !ok {
		return
	}

	var in models.SubmenuInput
	if !decodeInput(w, r, &in, h.logger) {
		return
	}
	if !h.owned(w, r, menuID, submenuID) {
		return
	}

	submenu, err := h.submenus.Update(r.Context(), submenuID, in)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, submenu, h.logger)
}

// DeleteSubmenu handles DELETE /api/v1/menus/{menu_id}/submenus/{submenu_id}
func (h *SubmenuHandler) DeleteSubmenu(w http.ResponseWriter, r *http.Request) {
	menuID, submenuID, ok := submenuPath(w, r, h.logger)
	if !ok || !h.owned(w, r, menuID, submenuID) {
		return
	}

	submenu, err := h.submenus.Delete(r.Context(), submenuID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, submenu, h.logger)
}

// owned checks that the menu exists and owns the submenu.
// A failed check has already been written to w.
func (h *SubmenuHandler) owned(w http.ResponseWriter, r *http.Request, menuID, submenuID uuid.UUID) bool {
	return checkSubmenu(w, r, h.menus, h.submenus, menuID, submenuID, h.logger)
}
