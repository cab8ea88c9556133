package usecase

import (
	"coffee-house/internal/data/repository"
	"coffee-house/pkg/payment"
	"coffee-house/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	Menu      MenuService
	Order     OrderService
	Booking   BookingService
	Event     EventService
	Ticket    TicketService
	Blog      BlogService
	Message   MessageService
	Content   ContentService
	Analytics AnalyticsService
}

func NewService(repo *repository.Repository, config *utils.Config, gateway payment.Gateway, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo, config, log),
		Menu:      NewMenuService(repo, log),
		Order:     NewOrderService(repo, log),
		Booking:   NewBookingService(repo, log),
		Event:     NewEventService(repo, log),
		Ticket:    NewTicketService(repo, gateway, log),
		Blog:      NewBlogService(repo, log),
		Message:   NewMessageService(repo.Message, log),
		Content:   NewContentService(repo, config, log),
		Analytics: NewAnalyticsService(repo, log),
	}
}
