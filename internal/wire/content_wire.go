package wire

import (
	"coffee-house/internal/adaptor"
	"coffee-house/internal/data/repository"
	"coffee-house/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireContent(
	r chi.Router,
	contentHandler *adaptor.ContentHandler,
	analyticsHandler *adaptor.AnalyticsHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/content - Menu, events and recent posts in one payload
	r.Get("/api/content", contentHandler.GetPublicContent)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		// POST /api/admin/images - Upload a base64 encoded image
		r.Post("/api/admin/images", contentHandler.UploadImage)

		// GET /api/admin/dashboard - Headline numbers for staff
		r.Get("/api/admin/dashboard", analyticsHandler.GetDashboard)
	})
}
