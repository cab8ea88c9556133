package wire

import (
	"coffee-house/internal/adaptor"
	"coffee-house/internal/data/repository"
	"coffee-house/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMessage(
	r chi.Router,
	messageHandler *adaptor.MessageHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/messages - Contact form submission
	r.Post("/api/messages", messageHandler.CreateMessage)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/messages", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		// GET /api/admin/messages - All messages, newest first
		r.Get("/", messageHandler.GetMessages)

		// PUT /api/admin/messages/{id}/read - Mark as read
		r.Put("/{id}/read", messageHandler.MarkRead)

		// DELETE /api/admin/messages/{id} - Remove message
		r.Delete("/{id}", messageHandler.DeleteMessage)
	})
}
