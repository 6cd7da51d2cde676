package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sergdemc/y-lab-1/internal/config"
	"github.com/sergdemc/y-lab-1/internal/middleware"
	"github.com/sergdemc/y-lab-1/internal/service"
)

const (
	menuIDParam    = "menu_id"
	submenuIDParam = "submenu_id"
	dishIDParam    = "dish_id"
)

// RouterDeps is everything the HTTP surface needs
type RouterDeps struct {
	Menus          *service.MenuService
	Submenus       *service.SubmenuService
	Dishes         *service.DishService
	Health         *HealthHandler
	Auth           config.AuthConfig
	RequestTimeout time.Duration
	Logger         *slog.Logger
}

// NewRouter builds the chi router with middleware and all catalog routes
func NewRouter(deps RouterDeps) http.Handler {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	timeout := deps.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	menuHandler := NewMenuHandler(deps.Menus, log)
	submenuHandler := NewSubmenuHandler(deps.Menus, deps.Submenus, log)
	dishHandler := NewDishHandler(deps.Menus, deps.Submenus, deps.Dishes, log)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(timeout))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", middleware.APIKeyHeader},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if deps.Health != nil {
		r.Get("/health", deps.Health.ServeHTTP)
	}

	auth := middleware.APIKeyAuth(deps.Auth)

	r.Route("/api/v1/menus", func(r chi.Router) {
		r.Get("/", menuHandler.ListMenus)
		r.With(auth).Post("/", menuHandler.CreateMenu)

		r.Route("/{menu_id}", func(r chi.Router) {
			r.Get("/", menuHandler.GetMenu)
			r.With(auth).Patch("/", menuHandler.UpdateMenu)
			r.With(auth).Delete("/", menuHandler.DeleteMenu)

			r.Route("/submenus", func(r chi.Router) {
				r.Get("/", submenuHandler.ListSubmenus)
				r.With(auth).Post("/", submenuHandler.CreateSubmenu)

				r.Route("/{submenu_id}", func(r chi.Router) {
					r.Get("/", submenuHandler.GetSubmenu)
					r.With(auth).Patch("/", submenuHandler.UpdateSubmenu)
					r.With(auth).Delete("/", submenuHandler.DeleteSubmenu)

					r.Route("/dishes", func(r chi.Router) {
						r.Get("/", dishHandler.ListDishes)
						r.With(auth).Post("/", dishHandler.CreateDish)

						r.Route("/{dish_id}", func(r chi.Router) {
							r.Get("/", dishHandler.GetDish)
							r.With(auth).Patch("/", dishHandler.UpdateDish)
							r.With(auth).Delete("/", dishHandler.DeleteDish)
						})
					})
				})
			})
		})
	})

	return r
}
