package adaptor

import (
	"net/http"
	"strings"

	"coffee-house/internal/usecase"
	"coffee-house/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	Menu      *MenuHandler
	Order     *OrderHandler
	Booking   *BookingHandler
	Event     *EventHandler
	Ticket    *TicketHandler
	Blog      *BlogHandler
	Message   *MessageHandler
	Content   *ContentHandler
	Analytics *AnalyticsHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		Menu:      NewMenuHandler(service.Menu, log),
		Order:     NewOrderHandler(service.Order, log),
		Booking:   NewBookingHandler(service.Booking, log),
		Event:     NewEventHandler(service.Event, log),
		Ticket:    NewTicketHandler(service.Ticket, log),
		Blog:      NewBlogHandler(service.Blog, log),
		Message:   NewMessageHandler(service.Message, log),
		Content:   NewContentHandler(service.Content, log),
		Analytics: NewAnalyticsHandler(service.Analytics, log),
	}
}

// respondServiceError maps service error messages onto HTTP statuses.
// Services return sanitized messages, so the text is safe to echo.
func respondServiceError(w http.ResponseWriter, err error) {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "not found"):
		utils.ResponseNotFound(w, msg)
	case strings.Contains(msg, "invalid credentials"):
		utils.ResponseUnauthorized(w, msg)
	case strings.HasPrefix(msg, "failed to"):
		utils.ResponseInternalError(w, msg)
	default:
		utils.ResponseBadRequest(w, msg, nil)
	}
}
