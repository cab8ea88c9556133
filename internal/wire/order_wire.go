package wire

import (
	"coffee-house/internal/adaptor"
	"coffee-house/internal/data/repository"
	"coffee-house/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/orders - Place a collection or delivery order
	r.Post("/api/orders", orderHandler.CreateOrder)

	// GET /api/orders/{id} - Check an order by its id
	r.Get("/api/orders/{id}", orderHandler.GetOrder)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/orders", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		// GET /api/admin/orders - Newest orders first
		r.Get("/", orderHandler.GetOrders)

		// GET /api/admin/orders/{id} - Order with its lines
		r.Get("/{id}", orderHandler.GetOrder)

		// PUT /api/admin/orders/{id}/status - Move the order along
		r.Put("/{id}/status", orderHandler.UpdateStatus)
	})
}
