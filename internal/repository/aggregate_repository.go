package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/sergdemc/y-lab-1/internal/models"
)

type aggregateRepository struct {
	store *Store
}

// MenuDetails counts distinct submenus and all dishes under them.
// The outer joins keep childless menus in the result with zero counts.
func (r *aggregateRepository) MenuDetails(ctx context.Context, menuID uuid.UUID) (*models.MenuDetails, error) {
	var d models.MenuDetails
	err := r.store.db.QueryRow(ctx, `
		SELECT m.id, m.title, m.description, m.created_at, m.updated_at,
		       COUNT(DISTINCT s.id), COUNT(d.id)
		FROM menus m
		LEFT JOIN submenus s ON s.menu_id = m.id
		LEFT JOIN dishes d ON d.submenu_id = s.id
		WHERE m.id = $1
		GROUP BY m.id`,
		menuID,
	).Scan(&d.ID, &d.Title, &d.Description, &d.CreatedAt, &d.UpdatedAt, &d.SubmenusCount, &d.DishesCount)
	if err != nil {
		return nil, classify("menu details", err)
	}
	return &d, nil
}

func (r *aggregateRepository) SubmenuDetails(ctx context.Context, submenuID uuid.UUID) (*models.SubmenuDetails, error) {
	var d models.SubmenuDetails
	err := r.store.db.QueryRow(ctx, `
		SELECT s.id, s.title, s.description, s.created_at, s.updated_at, s.menu_id,
		       COUNT(d.id)
		FROM submenus s
		LEFT JOIN dishes d ON d.submenu_id = s.id
		WHERE s.id = $1
		GROUP BY s.id`,
		submenuID,
	).Scan(&d.ID, &d.Title, &d.Description, &d.CreatedAt, &d.UpdatedAt, &d.MenuID, &d.DishesCount)
	if err != nil {
		return nil, classify("submenu details", err)
	}
	return &d, nil
}
