// Package demo provides in-memory fixture repositories used when the
// service runs without a database (demo mode) and in tests. The same
// interfaces as the Postgres repositories, backed by mutex-guarded maps.
package demo

import (
	"sync"
	"time"

	"coffee-house/internal/data/entity"
	"coffee-house/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type store struct {
	mu sync.RWMutex

	users          map[uuid.UUID]entity.User
	sessions       map[uuid.UUID]entity.Session
	menuCategories map[uuid.UUID]entity.MenuCategory
	menuItems      map[uuid.UUID]entity.MenuItem
	orders         map[uuid.UUID]entity.Order
	orderItems     map[uuid.UUID][]entity.OrderItem
	bookings       map[uuid.UUID]entity.Booking
	eventCats      map[uuid.UUID]entity.EventCategory
	events         map[uuid.UUID]entity.Event
	ticketSales    map[int64]entity.TicketSale
	nextSaleID     int64
	blogCats       map[uuid.UUID]entity.BlogCategory
	blogPosts      map[uuid.UUID]entity.BlogPost
	messages       map[uuid.UUID]entity.Message
}

func newStore() *store {
	return &store{
		users:          make(map[uuid.UUID]entity.User),
		sessions:       make(map[uuid.UUID]entity.Session),
		menuCategories: make(map[uuid.UUID]entity.MenuCategory),
		menuItems:      make(map[uuid.UUID]entity.MenuItem),
		orders:         make(map[uuid.UUID]entity.Order),
		orderItems:     make(map[uuid.UUID][]entity.OrderItem),
		bookings:       make(map[uuid.UUID]entity.Booking),
		eventCats:      make(map[uuid.UUID]entity.EventCategory),
		events:         make(map[uuid.UUID]entity.Event),
		ticketSales:    make(map[int64]entity.TicketSale),
		nextSaleID:     1,
		blogCats:       make(map[uuid.UUID]entity.BlogCategory),
		blogPosts:      make(map[uuid.UUID]entity.BlogPost),
		messages:       make(map[uuid.UUID]entity.Message),
	}
}

// NewRepository builds a Repository backed by empty in-memory stores
func NewRepository(log *zap.Logger) *repository.Repository {
	s := newStore()
	return &repository.Repository{
		User:          &userRepo{s},
		Session:       &sessionRepo{s},
		MenuCategory:  &menuCategoryRepo{s},
		MenuItem:      &menuItemRepo{s},
		Order:         &orderRepo{s},
		OrderItem:     &orderItemRepo{s},
		Booking:       &bookingRepo{s},
		EventCategory: &eventCategoryRepo{s},
		Event:         &eventRepo{s},
		TicketSale:    &ticketSaleRepo{s},
		BlogCategory:  &blogCategoryRepo{s},
		BlogPost:      &blogPostRepo{s},
		Message:       &messageRepo{s},
	}
}

// NewSeededRepository builds a Repository pre-loaded with demo content
func NewSeededRepository(log *zap.Logger) *repository.Repository {
	repo := NewRepository(log)
	seed(repo)
	log.Info("Demo fixtures loaded")
	return repo
}

func now() time.Time {
	return time.Now()
}

func strPtr(s string) *string {
	return &s
}
