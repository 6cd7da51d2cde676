package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sergdemc/y-lab-1/internal/models"
)

const dishColumns = `id, title, description, price, created_at, updated_at, submenu_id`

type dishRepository struct {
	store *Store
}

func scanDish(row pgx.Row) (*models.Dish, error) {
	var d models.Dish
	if err := row.Scan(&d.ID, &d.Title, &d.Description, &d.Price, &d.CreatedAt, &d.UpdatedAt, &d.SubmenuID); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *dishRepository) GetAll(ctx context.Context, submenuID uuid.UUID) ([]models.Dish, error) {
	rows, err := r.store.db.Query(ctx, `
		SELECT `+dishColumns+` FROM dishes
		WHERE submenu_id = $1
		ORDER BY seq`,
		submenuID,
	)
	if err != nil {
		return nil, classify("list dishes", err)
	}
	dishes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Dish, error) {
		d, err := scanDish(row)
		if err != nil {
			return models.Dish{}, err
		}
		return *d, nil
	})
	if err != nil {
		return nil, classify("list dishes", err)
	}
	return dishes, nil
}

func (r *dishRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Dish, error) {
	d, err := scanDish(r.store.db.QueryRow(ctx, `SELECT `+dishColumns+` FROM dishes WHERE id = $1`, id))
	if err != nil {
		return nil, classify("get dish", err)
	}
	return d, nil
}

func (r *dishRepository) GetByTitle(ctx context.Context, title string) (*models.Dish, error) {
	d, err := scanDish(r.store.db.QueryRow(ctx, `SELECT `+dishColumns+` FROM dishes WHERE title = $1`, title))
	if err != nil {
		return nil, classify("get dish by title", err)
	}
	return d, nil
}

func (r *dishRepository) Create(ctx context.Context, submenuID uuid.UUID, in models.DishInput) (*models.Dish, error) {
	d, err := scanDish(r.store.db.QueryRow(ctx, `
		INSERT INTO dishes (id, title, description, price, submenu_id) VALUES ($1, $2, $3, $4, $5)
		RETURNING `+dishColumns,
		uuid.New(), in.Title, in.Description, in.Price, submenuID,
	))
	if err != nil {
		return nil, classify("create dish", err)
	}
	return d, nil
}

func (r *dishRepository) Update(ctx context.Context, id uuid.UUID, in models.DishInput) (*models.Dish, error) {
	d, err := scanDish(r.store.db.QueryRow(ctx, `
		UPDATE dishes SET title = $2, description = $3, price = $4, updated_at = now()
		WHERE id = $1
		RETURNING `+dishColumns,
		id, in.Title, in.Description, in.Price,
	))
	if err != nil {
		return nil, classify("update dish", err)
	}
	return d, nil
}

func (r *dishRepository) Delete(ctx context.Context, id uuid.UUID) (*models.Dish, error) {
	d, err := scanDish(r.store.db.QueryRow(ctx, `DELETE FROM dishes WHERE id = $1 RETURNING `+dishColumns, id))
	if err != nil {
		return nil, classify("delete dish", err)
	}
	return d, nil
}
