package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sergdemc/y-lab-1/internal/service"
)

// Services are the write paths a seed is applied through
type Services struct {
	Menus    *service.MenuService
	Submenus *service.SubmenuService
	Dishes   *service.DishService
}

// Stats summarizes one Apply call. Skipped counts every entity not written,
// including the subtree of a skipped parent.
type Stats struct {
	MenusCreated    int
	SubmenusCreated int
	DishesCreated   int
	Skipped         int
}

// Applier writes seed documents
type Applier struct {
	svc    Services
	logger *slog.Logger
}

func NewApplier(svc Services, logger *slog.Logger) *Applier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Applier{svc: svc, logger: logger}
}

// Apply validates doc and creates its entities. An entity whose title is
// already taken is skipped together with everything below it, so applying
// the same document twice is a no-op.
func (a *Applier) Apply(ctx context.Context, doc *Document) (Stats, error) {
	var stats Stats
	if err := doc.Validate(); err != nil {
		return stats, fmt.Errorf("invalid seed document: %w", err)
	}

	for _, m := range doc.Menus {
		if a.svc.Menus.ExistsByTitle(ctx, m.Title) {
			a.skip(&stats, "menu", m.Title, 1+subtreeSize(m))
			continue
		}
		menu, err := a.svc.Menus.Create(ctx, m.input())
		if errors.Is(err, service.ErrMenuExists) {
			a.skip(&stats, "menu", m.Title, 1+subtreeSize(m))
			continue
		}
		if err != nil {
			return stats, fmt.Errorf("create menu %q: %w", m.Title, err)
		}
		stats.MenusCreated++

		if err := a.applySubmenus(ctx, menu.ID, m.Submenus, &stats); err != nil {
			return stats, err
		}
	}

	a.logger.Info("seed applied",
		"menus_created", stats.MenusCreated,
		"submenus_created", stats.SubmenusCreated,
		"dishes_created", stats.DishesCreated,
		"skipped", stats.Skipped,
	)
	return stats, nil
}

func (a *Applier) applySubmenus(ctx context.Context, menuID uuid.UUID, submenus []SubmenuSeed, stats *Stats) error {
	for _, s := range submenus {
		if a.svc.Submenus.ExistsByTitle(ctx, s.Title) {
			a.skip(stats, "submenu", s.Title, 1+len(s.Dishes))
			continue
		}
		submenu, err := a.svc.Submenus.Create(ctx, menuID, s.input())
		if errors.Is(err, service.ErrSubmenuExists) {
			a.skip(stats, "submenu", s.Title, 1+len(s.Dishes))
			continue
		}
		if err != nil {
			return fmt.Errorf("create submenu %q: %w", s.Title, err)
		}
		stats.SubmenusCreated++

		for _, d := range s.Dishes {
			if a.svc.Dishes.ExistsByTitle(ctx, d.Title) {
				a.skip(stats, "dish", d.Title, 1)
				continue
			}
			_, err := a.svc.Dishes.Create(ctx, submenu.ID, d.input())
			if errors.Is(err, service.ErrDishExists) {
				a.skip(stats, "dish", d.Title, 1)
				continue
			}
			if err != nil {
				return fmt.Errorf("create dish %q: %w", d.Title, err)
			}
			stats.DishesCreated++
		}
	}
	return nil
}

func (a *Applier) skip(stats *Stats, kind, title string, n int) {
	a.logger.Debug("seed entry exists, skipping", "kind", kind, "title", title, "entities", n)
	stats.Skipped += n
}

func subtreeSize(m MenuSeed) int {
	n := len(m.Submenus)
	for _, s := range m.Submenus {
		n += len(s.Dishes)
	}
	return n
}
