package adaptor

import (
	"net/http"

	"coffee-house/internal/usecase"
	"coffee-house/pkg/utils"

	"go.uber.org/zap"
)

type AnalyticsHandler struct {
	service usecase.AnalyticsService
	log     *zap.Logger
}

func NewAnalyticsHandler(service usecase.AnalyticsService, log *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		log:     log.With(zap.String("handler", "analytics")),
	}
}

func (h *AnalyticsHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetDashboard(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Dashboard", resp)
}

func (h *AnalyticsHandler) ExportTicketSales(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="ticket-sales.csv"`)

	if err := h.service.ExportTicketSalesCSV(r.Context(), w); err != nil {
		h.log.Error("Failed to export ticket sales", zap.Error(err))
	}
}
