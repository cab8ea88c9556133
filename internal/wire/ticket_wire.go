package wire

import (
	"coffee-house/internal/adaptor"
	"coffee-house/internal/data/repository"
	"coffee-house/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTicket(
	r chi.Router,
	ticketHandler *adaptor.TicketHandler,
	analyticsHandler *adaptor.AnalyticsHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/tickets/intent - Start a ticket purchase
	r.Post("/api/tickets/intent", ticketHandler.CreatePaymentIntent)

	// POST /api/tickets/confirm - Record the sale after payment
	r.Post("/api/tickets/confirm", ticketHandler.ConfirmPurchase)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/tickets", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		// GET /api/admin/tickets - All sales, newest first
		r.Get("/", ticketHandler.GetSales)

		// GET /api/admin/tickets/export - Sales as CSV
		r.Get("/export", analyticsHandler.ExportTicketSales)
	})
}
