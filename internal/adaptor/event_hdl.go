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

type EventHandler struct {
	service usecase.EventService
	log     *zap.Logger
}

func NewEventHandler(service usecase.EventService, log *zap.Logger) *EventHandler {
	return &EventHandler{
		service: service,
		log:     log.With(zap.String("handler", "event")),
	}
}

func (h *EventHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req request.CreateEventCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.CreateCategory(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Event category created", resp)
}

func (h *EventHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetCategories(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Event categories", resp)
}

func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req request.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.CreateEvent(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Event created", resp)
}

func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid event id", nil)
		return
	}

	resp, err := h.service.GetEvent(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Event", resp)
}

func (h *EventHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetEvents(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Events", resp)
}

func (h *EventHandler) GetPublishedEvents(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetPublishedEvents(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Events", resp)
}

func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid event id", nil)
		return
	}

	var req request.UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.UpdateEvent(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Event updated", resp)
}

func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid event id", nil)
		return
	}

	if err := h.service.DeleteEvent(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Event deleted", nil)
}
