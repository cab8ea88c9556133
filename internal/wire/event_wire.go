package wire

import (
	"coffee-house/internal/adaptor"
	"coffee-house/internal/data/repository"
	"coffee-house/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireEvent(
	r chi.Router,
	eventHandler *adaptor.EventHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/events - Published events
	r.Get("/api/events", eventHandler.GetPublishedEvents)

	// GET /api/events/{id} - Event details
	r.Get("/api/events/{id}", eventHandler.GetEvent)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/events", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		// GET /api/admin/events - All events including drafts
		r.Get("/", eventHandler.GetEvents)

		// POST /api/admin/events - Create event
		r.Post("/", eventHandler.CreateEvent)

		// GET /api/admin/events/categories - List event categories
		r.Get("/categories", eventHandler.GetCategories)

		// POST /api/admin/events/categories - Create event category
		r.Post("/categories", eventHandler.CreateCategory)

		// PUT /api/admin/events/{id} - Update event details
		r.Put("/{id}", eventHandler.UpdateEvent)

		// DELETE /api/admin/events/{id} - Remove event
		r.Delete("/{id}", eventHandler.DeleteEvent)
	})
}
