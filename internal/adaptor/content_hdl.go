package adaptor

import (
	"encoding/json"
	"net/http"

	"coffee-house/internal/dto/request"
	"coffee-house/internal/usecase"
	"coffee-house/pkg/utils"

	"go.uber.org/zap"
)

type ContentHandler struct {
	service usecase.ContentService
	log     *zap.Logger
}

func NewContentHandler(service usecase.ContentService, log *zap.Logger) *ContentHandler {
	return &ContentHandler{
		service: service,
		log:     log.With(zap.String("handler", "content")),
	}
}

func (h *ContentHandler) GetPublicContent(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetPublicContent(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Site content", resp)
}

func (h *ContentHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	// cap the raw body before the base64 payload is even read; the
	// envelope plus encoding overhead stays well inside 2x the image cap
	r.Body = http.MaxBytesReader(w, r.Body, 2*usecase.MaxImageBytes)

	var req request.UploadImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.UploadImage(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Image uploaded", resp)
}
