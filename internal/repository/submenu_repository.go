package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sergdemc/y-lab-1/internal/models"
)

const submenuColumns = `id, title, description, created_at, updated_at, menu_id`

type submenuRepository struct {
	store *Store
}

func scanSubmenu(row pgx.Row) (*models.Submenu, error) {
	var s models.Submenu
	if err := row.Scan(&s.ID, &s.Title, &s.Description, &s.CreatedAt, &s.UpdatedAt, &s.MenuID); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetAll returns the submenus of a menu in insertion order
func (r *submenuRepository) GetAll(ctx context.Context, menuID uuid.UUID) ([]models.Submenu, error) {
	rows, err := r.store.db.Query(ctx, `
		SELECT `+submenuColumns+` FROM submenus
		WHERE menu_id = $1
		ORDER BY seq`,
		menuID,
	)
	if err != nil {
		return nil, classify("list submenus", err)
	}
	submenus, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Submenu, error) {
		s, err := scanSubmenu(row)
		if err != nil {
			return models.Submenu{}, err
		}
		return *s, nil
	})
	if err != nil {
		return nil, classify("list submenus", err)
	}
	return submenus, nil
}

func (r *submenuRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Submenu, error) {
	s, err := scanSubmenu(r.store.db.QueryRow(ctx, `SELECT `+submenuColumns+` FROM submenus WHERE id = $1`, id))
	if err != nil {
		return nil, classify("get submenu", err)
	}
	return s, nil
}

func (r *submenuRepository) GetByTitle(ctx context.Context, title string) (*models.Submenu, error) {
	s, err := scanSubmenu(r.store.db.QueryRow(ctx, `SELECT `+submenuColumns+` FROM submenus WHERE title = $1`, title))
	if err != nil {
		return nil, classify("get submenu by title", err)
	}
	return s, nil
}

func (r *submenuRepository) Create(ctx context.Context, menuID uuid.UUID, in models.SubmenuInput) (*models.Submenu, error) {
	s, err := scanSubmenu(r.store.db.QueryRow(ctx, `
		INSERT INTO submenus (id, title, description, menu_id) VALUES ($1, $2, $3, $4)
		RETURNING `+submenuColumns,
		uuid.New(), in.Title, in.Description, menuID,
	))
	if err != nil {
		return nil, classify("create submenu", err)
	}
	return s, nil
}

func (r *submenuRepository) Update(ctx context.Context, id uuid.UUID, in models.SubmenuInput) (*models.Submenu, error) {
	s, err := scanSubmenu(r.store.db.QueryRow(ctx, `
		UPDATE submenus SET title = $2, description = $3, updated_at = now()
		WHERE id = $1
		RETURNING `+submenuColumns,
		id, in.Title, in.Description,
	))
	if err != nil {
		return nil, classify("update submenu", err)
	}
	return s, nil
}

func (r *submenuRepository) Delete(ctx context.Context, id uuid.UUID) (*models.Submenu, error) {
	var deleted *models.Submenu
	err := r.store.execTx(ctx, func(q querier) error {
		s, err := scanSubmenu(q.QueryRow(ctx, `SELECT `+submenuColumns+` FROM submenus WHERE id = $1 FOR UPDATE`, id))
		if err != nil {
			return err
		}
		if _, err := q.Exec(ctx, `DELETE FROM dishes WHERE submenu_id = $1`, id); err != nil {
			return err
		}
		if _, err := q.Exec(ctx, `DELETE FROM submenus WHERE id = $1`, id); err != nil {
			return err
		}
		deleted = s
		return nil
	})
	if err != nil {
		return nil, classify("delete submenu", err)
	}
	return deleted, nil
}
