package adaptor

import (
	"encoding/json"
	"net/http"

	"coffee-house/internal/dto/request"
	"coffee-house/internal/usecase"
	"coffee-house/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Booking requested", resp)
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid booking id", nil)
		return
	}

	resp, err := h.service.GetBooking(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Booking", resp)
}

func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetBookings(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Bookings", resp)
}

func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid booking id", nil)
		return
	}

	var req request.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Booking status updated", resp)
}
