package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sergdemc/y-lab-1/internal/service"
)

const maxBodyBytes = 1 << 20

type validator interface {
	Validate() error
}

// pathUUID parses a UUID path parameter. A malformed value is answered with 422.
func pathUUID(w http.ResponseWriter, r *http.Request, name string, logger *slog.Logger) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.Warn("invalid path id", "param", name, "value", raw, "error", err)
		WriteError(w, http.StatusUnprocessableEntity, fmt.Sprintf("invalid %s", name), logger)
		return uuid.Nil, false
	}
	return id, true
}

// decodeInput reads and validates a JSON request body into dst.
// Malformed or invalid payloads are answered with 422.
func decodeInput(w http.ResponseWriter, r *http.Request, dst validator, logger *slog.Logger) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		logger.Warn("failed to decode request body", "path", r.URL.Path, "error", err)
		WriteError(w, http.StatusUnprocessableEntity, "invalid request body", logger)
		return false
	}
	if err := dst.Validate(); err != nil {
		logger.Warn("request body rejected", "path", r.URL.Path, "error", err)
		WriteError(w, http.StatusUnprocessableEntity, err.Error(), logger)
		return false
	}
	return true
}

// writeServiceError maps a service error onto a status code
func writeServiceError(w http.ResponseWriter, err error, logger *slog.Logger) {
	switch {
	case errors.Is(err, service.ErrMenuNotFound),
		errors.Is(err, service.ErrSubmenuNotFound),
		errors.Is(err, service.ErrDishNotFound):
		logger.Info("entity not found", "error", err)
		WriteError(w, http.StatusNotFound, err.Error(), logger)
	case errors.Is(err, service.ErrMenuExists),
		errors.Is(err, service.ErrSubmenuExists),
		errors.Is(err, service.ErrDishExists):
		logger.Info("duplicate title", "error", err)
		WriteError(w, http.StatusBadRequest, err.Error(), logger)
	default:
		logger.Error("request failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "internal server error", logger)
	}
}

func submenuPath(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (menuID, submenuID uuid.UUID, ok bool) {
	if menuID, ok = pathUUID(w, r, menuIDParam, logger); !ok {
		return
	}
	submenuID, ok = pathUUID(w, r, submenuIDParam, logger)
	return
}

func dishPath(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (menuID, submenuID, dishID uuid.UUID, ok bool) {
	if menuID, submenuID, ok = submenuPath(w, r, logger); !ok {
		return
	}
	dishID, ok = pathUUID(w, r, dishIDParam, logger)
	return
}

// checkSubmenu answers 404 unless the menu exists and owns the submenu
func checkSubmenu(w http.ResponseWriter, r *http.Request, menus *service.MenuService, submenus *service.SubmenuService, menuID, submenuID uuid.UUID, logger *slog.Logger) bool {
	ctx := r.Context()
	if !menus.ExistsByID(ctx, menuID) {
		writeServiceError(w, service.ErrMenuNotFound, logger)
		return false
	}
	if !submenus.ExistsInMenu(ctx, menuID, submenuID) {
		writeServiceError(w, service.ErrSubmenuNotFound, logger)
		return false
	}
	return true
}
