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

type MenuHandler struct {
	service usecase.MenuService
	log     *zap.Logger
}

func NewMenuHandler(service usecase.MenuService, log *zap.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		log:     log.With(zap.String("handler", "menu")),
	}
}

func (h *MenuHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req request.CreateMenuCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.CreateCategory(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Menu category created", resp)
}

func (h *MenuHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetCategories(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Menu categories", resp)
}

func (h *MenuHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req request.CreateMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.CreateItem(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Menu item created", resp)
}

func (h *MenuHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid menu item id", nil)
		return
	}

	resp, err := h.service.GetItem(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Menu item", resp)
}

func (h *MenuHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetItems(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Menu items", resp)
}

func (h *MenuHandler) GetPublicMenu(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetPublicMenu(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Menu", resp)
}

func (h *MenuHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid menu item id", nil)
		return
	}

	var req request.UpdateMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.UpdateItem(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Menu item updated", resp)
}

func (h *MenuHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid menu item id", nil)
		return
	}

	if err := h.service.DeleteItem(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Menu item deleted", nil)
}

func (h *MenuHandler) BulkSetAvailability(w http.ResponseWriter, r *http.Request) {
	var req request.BulkAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.BulkSetAvailability(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Availability updated", resp)
}
