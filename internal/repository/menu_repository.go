package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sergdemc/y-lab-1/internal/models"
)

const menuColumns = `id, title, description, created_at, updated_at`

type menuRepository struct {
	store *Store
}

func scanMenu(row pgx.Row) (*models.Menu, error) {
	var m models.Menu
	if err := row.Scan(&m.ID, &m.Title, &m.Description, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

// GetAll returns all menus in insertion order
func (r *menuRepository) GetAll(ctx context.Context) ([]models.Menu, error) {
	rows, err := r.store.db.Query(ctx, `SELECT `+menuColumns+` FROM menus ORDER BY seq`)
	if err != nil {
		return nil, classify("list menus", err)
	}
	menus, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Menu, error) {
		m, err := scanMenu(row)
		if err != nil {
			return models.Menu{}, err
		}
		return *m, nil
	})
	if err != nil {
		return nil, classify("list menus", err)
	}
	return menus, nil
}

func (r *menuRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Menu, error) {
	m, err := scanMenu(r.store.db.QueryRow(ctx, `SELECT `+menuColumns+` FROM menus WHERE id = $1`, id))
	if err != nil {
		return nil, classify("get menu", err)
	}
	return m, nil
}

func (r *menuRepository) GetByTitle(ctx context.Context, title string) (*models.Menu, error) {
	m, err := scanMenu(r.store.db.QueryRow(ctx, `SELECT `+menuColumns+` FROM menus WHERE title = $1`, title))
	if err != nil {
		return nil, classify("get menu by title", err)
	}
	return m, nil
}

func (r *menuRepository) Create(ctx context.Context, in models.MenuInput) (*models.Menu, error) {
	m, err := scanMenu(r.store.db.QueryRow(ctx, `
		INSERT INTO menus (id, title, description) VALUES ($1, $2, $3)
		RETURNING `+menuColumns,
		uuid.New(), in.Title, in.Description,
	))
	if err != nil {
		return nil, classify("create menu", err)
	}
	return m, nil
}

func (r *menuRepository) Update(ctx context.Context, id uuid.UUID, in models.MenuInput) (*models.Menu, error) {
	m, err := scanMenu(r.store.db.QueryRow(ctx, `
		UPDATE menus SET title = $2, description = $3, updated_at = now()
		WHERE id = $1
		RETURNING `+menuColumns,
		id, in.Title, in.Description,
	))
	if err != nil {
		return nil, classify("update menu", err)
	}
	return m, nil
}

func (r *menuRepository) Delete(ctx context.Context, id uuid.UUID) (*models.Menu, error) {
	var deleted *models.Menu
	err := r.store.execTx(ctx, func(q querier) error {
		m, err := scanMenu(q.QueryRow(ctx, `SELECT `+menuColumns+` FROM menus WHERE id = $1 FOR UPDATE`, id))
		if err != nil {
			return err
		}
		if _, err := q.Exec(ctx, `
			DELETE FROM dishes
			WHERE submenu_id IN (SELECT id FROM submenus WHERE menu_id = $1)`, id); err != nil {
			return err
		}
		if _, err := q.Exec(ctx, `DELETE FROM submenus WHERE menu_id = $1`, id); err != nil {
			return err
		}
		if _, err := q.Exec(ctx, `DELETE FROM menus WHERE id = $1`, id); err != nil {
			return err
		}
		deleted = m
		return nil
	})
	if err != nil {
		return nil, classify("delete menu", err)
	}
	return deleted, nil
}
