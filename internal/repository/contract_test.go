package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergdemc/y-lab-1/internal/models"
)

// runRepositoryContract exercises behavior every store implementation must share.
// newRepos must return an empty store on each call.
func runRepositoryContract(t *testing.T, newRepos func(t *testing.T) Repositories) {
	t.Run("create and read back", func(t *testing.T) {
		ctx := context.Background()
		repos := newRepos(t)

		menu, err := repos.Menus.Create(ctx, models.MenuInput{Title: "menu1", Description: "d1"})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, menu.ID)
		assert.False(t, menu.CreatedAt.IsZero())

		got, err := repos.Menus.GetByID(ctx, menu.ID)
		require.NoError(t, err)
		assert.Equal(t, "menu1", got.Title)
		assert.Equal(t, "d1", got.Description)

		byTitle, err := repos.Menus.GetByTitle(ctx, "menu1")
		require.NoError(t, err)
		assert.Equal(t, menu.ID, byTitle.ID)

		submenu, err := repos.Submenus.Create(ctx, menu.ID, models.SubmenuInput{Title: "sub1"})
		require.NoError(t, err)
		assert.Equal(t, menu.ID, submenu.MenuID)

		dish, err := repos.Dishes.Create(ctx, submenu.ID, models.DishInput{Title: "dish1", Price: "12.5"})
		require.NoError(t, err)
		assert.Equal(t, submenu.ID, dish.SubmenuID)
		assert.Equal(t, "12.5", dish.Price)

		gotDish, err := repos.Dishes.GetByTitle(ctx, "dish1")
		require.NoError(t, err)
		assert.Equal(t, dish.ID, gotDish.ID)
	})

	t.Run("absent rows", func(t *testing.T) {
		ctx := context.Background()
		repos := newRepos(t)
		missing := uuid.New()

		_, err := repos.Menus.GetByID(ctx, missing)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = repos.Submenus.GetByTitle(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = repos.Dishes.Update(ctx, missing, models.DishInput{Title: "x", Price: "1"})
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = repos.Menus.Delete(ctx, missing)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = repos.Submenus.Delete(ctx, missing)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = repos.Dishes.Delete(ctx, missing)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = repos.Aggregates.MenuDetails(ctx, missing)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = repos.Aggregates.SubmenuDetails(ctx, missing)
		assert.ErrorIs(t, err, ErrNotFound)

		menus, err := repos.Menus.GetAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, menus)
		assert.Empty(t, menus)

		submenus, err := repos.Submenus.GetAll(ctx, missing)
		require.NoError(t, err)
		assert.Empty(t, submenus)
	})

	t.Run("missing parent", func(t *testing.T) {
		ctx := context.Background()
		repos := newRepos(t)

		_, err := repos.Submenus.Create(ctx, uuid.New(), models.SubmenuInput{Title: "orphan"})
		assert.ErrorIs(t, err, ErrParentNotFound)
		_, err = repos.Dishes.Create(ctx, uuid.New(), models.DishInput{Title: "orphan", Price: "1"})
		assert.ErrorIs(t, err, ErrParentNotFound)
	})

	t.Run("titles are unique per kind", func(t *testing.T) {
		ctx := context.Background()
		repos := newRepos(t)

		a, err := repos.Menus.Create(ctx, models.MenuInput{Title: "a"})
		require.NoError(t, err)
		b, err := repos.Menus.Create(ctx, models.MenuInput{Title: "b"})
		require.NoError(t, err)

		_, err = repos.Menus.Create(ctx, models.MenuInput{Title: "a"})
		assert.ErrorIs(t, err, ErrDuplicateTitle)
		_, err = repos.Menus.Update(ctx, b.ID, models.MenuInput{Title: "a"})
		assert.ErrorIs(t, err, ErrDuplicateTitle)

		updated, err := repos.Menus.Update(ctx, a.ID, models.MenuInput{Title: "a", Description: "same title"})
		require.NoError(t, err)
		assert.Equal(t, "same title", updated.Description)

		// a submenu may share a menu title
		sa, err := repos.Submenus.Create(ctx, a.ID, models.SubmenuInput{Title: "a"})
		require.NoError(t, err)
		_, err = repos.Submenus.Create(ctx, b.ID, models.SubmenuInput{Title: "a"})
		assert.ErrorIs(t, err, ErrDuplicateTitle)

		_, err = repos.Dishes.Create(ctx, sa.ID, models.DishInput{Title: "a", Price: "1"})
		require.NoError(t, err)
		_, err = repos.Dishes.Create(ctx, sa.ID, models.DishInput{Title: "a", Price: "2"})
		assert.ErrorIs(t, err, ErrDuplicateTitle)
	})

	t.Run("listing keeps creation order", func(t *testing.T) {
		ctx := context.Background()
		repos := newRepos(t)

		menu, err := repos.Menus.Create(ctx, models.MenuInput{Title: "menu"})
		require.NoError(t, err)
		titles := []string{"zeta", "alpha", "mu"}
		for _, title := range titles {
			_, err := repos.Submenus.Create(ctx, menu.ID, models.SubmenuInput{Title: title})
			require.NoError(t, err)
		}

		submenus, err := repos.Submenus.GetAll(ctx, menu.ID)
		require.NoError(t, err)
		require.Len(t, submenus, 3)
		for i, s := range submenus {
			assert.Equal(t, titles[i], s.Title)
		}
	})

	t.Run("aggregates", func(t *testing.T) {
		ctx := context.Background()
		repos := newRepos(t)

		menu, err := repos.Menus.Create(ctx, models.MenuInput{Title: "menu"})
		require.NoError(t, err)

		details, err := repos.Aggregates.MenuDetails(ctx, menu.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), details.SubmenusCount)
		assert.Equal(t, int64(0), details.DishesCount)

		s1, err := repos.Submenus.Create(ctx, menu.ID, models.SubmenuInput{Title: "s1"})
		require.NoError(t, err)
		s2, err := repos.Submenus.Create(ctx, menu.ID, models.SubmenuInput{Title: "s2"})
		require.NoError(t, err)
		for i, title := range []string{"d1", "d2", "d3"} {
			_, err := repos.Dishes.Create(ctx, s1.ID, models.DishInput{Title: title, Price: "1"})
			require.NoError(t, err, i)
		}

		details, err = repos.Aggregates.MenuDetails(ctx, menu.ID)
		require.NoError(t, err)
		assert.Equal(t, "menu", details.Title)
		assert.Equal(t, int64(2), details.SubmenusCount)
		assert.Equal(t, int64(3), details.DishesCount)

		sd, err := repos.Aggregates.SubmenuDetails(ctx, s1.ID)
		require.NoError(t, err)
		assert.Equal(t, menu.ID, sd.MenuID)
		assert.Equal(t, int64(3), sd.DishesCount)

		sd, err = repos.Aggregates.SubmenuDetails(ctx, s2.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), sd.DishesCount)
	})

	t.Run("cascading deletes", func(t *testing.T) {
		ctx := context.Background()
		repos := newRepos(t)

		keep, err := repos.Menus.Create(ctx, models.MenuInput{Title: "keep"})
		require.NoError(t, err)
		keepSub, err := repos.Submenus.Create(ctx, keep.ID, models.SubmenuInput{Title: "keep sub"})
		require.NoError(t, err)
		keepDish, err := repos.Dishes.Create(ctx, keepSub.ID, models.DishInput{Title: "keep dish", Price: "1"})
		require.NoError(t, err)

		menu, err := repos.Menus.Create(ctx, models.MenuInput{Title: "drop"})
		require.NoError(t, err)
		s1, err := repos.Submenus.Create(ctx, menu.ID, models.SubmenuInput{Title: "drop s1"})
		require.NoError(t, err)
		s2, err := repos.Submenus.Create(ctx, menu.ID, models.SubmenuInput{Title: "drop s2"})
		require.NoError(t, err)
		d1, err := repos.Dishes.Create(ctx, s1.ID, models.DishInput{Title: "drop d1", Price: "1"})
		require.NoError(t, err)
		d2, err := repos.Dishes.Create(ctx, s2.ID, models.DishInput{Title: "drop d2", Price: "1"})
		require.NoError(t, err)

		// submenu delete takes its dishes only
		deletedSub, err := repos.Submenus.Delete(ctx, s1.ID)
		require.NoError(t, err)
		assert.Equal(t, "drop s1", deletedSub.Title)
		assert.Equal(t, menu.ID, deletedSub.MenuID)
		_, err = repos.Dishes.GetByID(ctx, d1.ID)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = repos.Dishes.GetByID(ctx, d2.ID)
		assert.NoError(t, err)

		deleted, err := repos.Menus.Delete(ctx, menu.ID)
		require.NoError(t, err)
		assert.Equal(t, "drop", deleted.Title)

		_, err = repos.Submenus.GetByID(ctx, s2.ID)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = repos.Dishes.GetByID(ctx, d2.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		// titles are free again
		_, err = repos.Dishes.Create(ctx, keepSub.ID, models.DishInput{Title: "drop d2", Price: "1"})
		assert.NoError(t, err)

		_, err = repos.Dishes.GetByID(ctx, keepDish.ID)
		assert.NoError(t, err)
		details, err := repos.Aggregates.MenuDetails(ctx, keep.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), details.SubmenusCount)
		assert.Equal(t, int64(2), details.DishesCount)

		deletedDish, err := repos.Dishes.Delete(ctx, keepDish.ID)
		require.NoError(t, err)
		assert.Equal(t, "keep dish", deletedDish.Title)
		_, err = repos.Dishes.Delete(ctx, keepDish.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update changes fields", func(t *testing.T) {
		ctx := context.Background()
		repos := newRepos(t)

		menu, err := repos.Menus.Create(ctx, models.MenuInput{Title: "menu"})
		require.NoError(t, err)
		sub, err := repos.Submenus.Create(ctx, menu.ID, models.SubmenuInput{Title: "sub"})
		require.NoError(t, err)
		dish, err := repos.Dishes.Create(ctx, sub.ID, models.DishInput{Title: "dish", Price: "1"})
		require.NoError(t, err)

		updatedSub, err := repos.Submenus.Update(ctx, sub.ID, models.SubmenuInput{Title: "sub v2", Description: "new"})
		require.NoError(t, err)
		assert.Equal(t, "sub v2", updatedSub.Title)
		assert.Equal(t, menu.ID, updatedSub.MenuID)

		updatedDish, err := repos.Dishes.Update(ctx, dish.ID, models.DishInput{Title: "dish v2", Description: "x", Price: "99.90"})
		require.NoError(t, err)
		assert.Equal(t, "99.90", updatedDish.Price)
		assert.Equal(t, sub.ID, updatedDish.SubmenuID)
		assert.False(t, updatedDish.UpdatedAt.Before(dish.UpdatedAt))
	})
}
