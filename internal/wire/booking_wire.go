package wire

import (
	"coffee-house/internal/adaptor"
	"coffee-house/internal/data/repository"
	"coffee-house/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/bookings - Request a table booking
	r.Post("/api/bookings", bookingHandler.CreateBooking)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		// GET /api/admin/bookings - Bookings ordered by booking time
		r.Get("/", bookingHandler.GetBookings)

		// GET /api/admin/bookings/{id} - Booking details
		r.Get("/{id}", bookingHandler.GetBooking)

		// PUT /api/admin/bookings/{id}/status - Confirm, complete or cancel
		r.Put("/{id}/status", bookingHandler.UpdateStatus)
	})
}
