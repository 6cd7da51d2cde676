package handlers

import (
	"log/slog"
	"net/http"

	"github.com/sergdemc/y-lab-1/internal/models"
	"github.com/sergdemc/y-lab-1/internal/service"
)

// MenuHandler handles menu-related HTTP requests
type MenuHandler struct {
	menus  *service.MenuService
	logger *slog.Logger
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menus *service.MenuService, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		menus:  menus,
		logger: logger,
	}
}

// ListMenus handles GET /api/v1/menus
func (h *MenuHandler) ListMenus(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.menus.GetAll(r.Context()), h.logger)
}

// GetMenu handles GET /api/v1/menus/{menu_id}
func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	menuID, ok := pathUUID(w, r, menuIDParam, h.logger)
	if !ok {
		return
	}

	menu, err := h.menus.GetByID(r.Context(), menuID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, menu, h.logger)
}

// CreateMenu handles POST /api/v1/menus
func (h *MenuHandler) CreateMenu(w http.ResponseWriter, r *http.Request) {
	var in models.MenuInput
	if !decodeInput(w, r, &in, h.logger) {
		return
	}

	ctx := r.Context()
	if h.menus.ExistsByTitle(ctx, in.Title) {
		writeServiceError(w, service.ErrMenuExists, h.logger)
		return
	}

	menu, err := h.menus.Create(ctx, in)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusCreated, menu, h.logger)
}

// UpdateMenu handles PATCH /api/v1/menus/{menu_id}
func (h *MenuHandler) UpdateMenu(w http.ResponseWriter, r *http.Request) {
	menuID, ok := pathUUID(w, r, menuIDParam, h.logger)
	if !ok {
		return
	}

	var in models.MenuInput
	if !decodeInput(w, r, &in, h.logger) {
		return
	}

	menu, err := h.menus.Update(r.Context(), menuID, in)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, menu, h.logger)
}

// DeleteMenu handles DELETE /api/v1/menus/{menu_id}
func (h *MenuHandler) DeleteMenu(w http.ResponseWriter, r *http.Request) {
	menuID, ok := pathUUID(w, r, menuIDParam, h.logger)
	if !ok {
		return
	}

	menu, err := h.menus.Delete(r.Context(), menuID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, menu, h.logger)
}
