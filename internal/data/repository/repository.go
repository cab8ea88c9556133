package repository

import (
	"coffee-house/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User          UserRepository
	Session       SessionRepository
	MenuCategory  MenuCategoryRepository
	MenuItem      MenuItemRepository
	Order         OrderRepository
	OrderItem     OrderItemRepository
	Booking       BookingRepository
	EventCategory EventCategoryRepository
	Event         EventRepository
	TicketSale    TicketSaleRepository
	BlogCategory  BlogCategoryRepository
	BlogPost      BlogPostRepository
	Message       MessageRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:          NewUserRepository(db, log),
		Session:       NewSessionRepository(db, log),
		MenuCategory:  NewMenuCategoryRepository(db, log),
		MenuItem:      NewMenuItemRepository(db, log),
		Order:         NewOrderRepository(db, log),
		OrderItem:     NewOrderItemRepository(db, log),
		Booking:       NewBookingRepository(db, log),
		EventCategory: NewEventCategoryRepository(db, log),
		Event:         NewEventRepository(db, log),
		TicketSale:    NewTicketSaleRepository(db, log),
		BlogCategory:  NewBlogCategoryRepository(db, log),
		BlogPost:      NewBlogPostRepository(db, log),
		Message:       NewMessageRepository(db, log),
	}
}
