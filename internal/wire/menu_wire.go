package wire

import (
	"coffee-house/internal/adaptor"
	"coffee-house/internal/data/repository"
	"coffee-house/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMenu(
	r chi.Router,
	menuHandler *adaptor.MenuHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/menu - Available items grouped by category
	r.Get("/api/menu", menuHandler.GetPublicMenu)

	// GET /api/menu/categories - List categories
	r.Get("/api/menu/categories", menuHandler.GetCategories)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/menu", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		// GET /api/admin/menu/categories - List all categories
		r.Get("/categories", menuHandler.GetCategories)

		// POST /api/admin/menu/categories - Create category
		r.Post("/categories", menuHandler.CreateCategory)

		// GET /api/admin/menu/items - List all items including unavailable
		r.Get("/items", menuHandler.GetItems)

		// POST /api/admin/menu/items - Create item
		r.Post("/items", menuHandler.CreateItem)

		// GET /api/admin/menu/items/{id} - Item details
		r.Get("/items/{id}", menuHandler.GetItem)

		// PUT /api/admin/menu/items/{id} - Update item
		r.Put("/items/{id}", menuHandler.UpdateItem)

		// DELETE /api/admin/menu/items/{id} - Remove item
		r.Delete("/items/{id}", menuHandler.DeleteItem)

		// PUT /api/admin/menu/availability - Bulk toggle availability
		r.Put("/availability", menuHandler.BulkSetAvailability)
	})
}
