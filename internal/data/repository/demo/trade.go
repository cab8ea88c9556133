package demo

import (
	"context"
	"sort"

	"coffee-house/internal/data/entity"

	"github.com/google/uuid"
)

type orderRepo struct {
	s *store
}

func (r *orderRepo) Create(ctx context.Context, order *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.orders[order.ID] = *order
	return nil
}

func (r *orderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	order, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	return &order, nil
}

func (r *orderRepo) FindAll(ctx context.Context) ([]*entity.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var orders []*entity.Order
	for _, order := range r.s.orders {
		o := order
		orders = append(orders, &o)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })
	return orders, nil
}

func (r *orderRepo) UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	order, ok := r.s.orders[orderID]
	if !ok {
		return errNotFound("order")
	}
	order.Status = status
	order.UpdatedAt = now()
	r.s.orders[orderID] = order
	return nil
}

func (r *orderRepo) CountByStatus(ctx context.Context) (map[entity.OrderStatus]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	counts := make(map[entity.OrderStatus]int64)
	for _, order := range r.s.orders {
		counts[order.Status]++
	}
	return counts, nil
}

func (r *orderRepo) SumCompletedRevenue(ctx context.Context) (float64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var revenue float64
	for _, order := range r.s.orders {
		if order.Status == entity.OrderStatusCompleted {
			revenue += order.TotalAmount
		}
	}
	return revenue, nil
}

type orderItemRepo struct {
	s *store
}

func (r *orderItemRepo) CreateBatch(ctx context.Context, items []*entity.OrderItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, item := range items {
		r.s.orderItems[item.OrderID] = append(r.s.orderItems[item.OrderID], *item)
	}
	return nil
}

func (r *orderItemRepo) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var items []*entity.OrderItem
	for _, item := range r.s.orderItems[orderID] {
		i := item
		items = append(items, &i)
	}
	return items, nil
}

type bookingRepo struct {
	s *store
}

func (r *bookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.bookings[booking.ID] = *booking
	return nil
}

func (r *bookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	booking, ok := r.s.bookings[id]
	if !ok {
		return nil, nil
	}
	return &booking, nil
}

func (r *bookingRepo) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var bookings []*entity.Booking
	for _, booking := range r.s.bookings {
		b := booking
		bookings = append(bookings, &b)
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].BookingAt.Before(bookings[j].BookingAt) })
	return bookings, nil
}

func (r *bookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	booking, ok := r.s.bookings[bookingID]
	if !ok {
		return errNotFound("booking")
	}
	booking.Status = status
	booking.UpdatedAt = now()
	r.s.bookings[bookingID] = booking
	return nil
}

func (r *bookingRepo) CountByStatus(ctx context.Context) (map[entity.BookingStatus]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	counts := make(map[entity.BookingStatus]int64)
	for _, booking := range r.s.bookings {
		counts[booking.Status]++
	}
	return counts, nil
}

type eventCategoryRepo struct {
	s *store
}

func (r *eventCategoryRepo) Create(ctx context.Context, category *entity.EventCategory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.eventCats[category.ID] = *category
	return nil
}

func (r *eventCategoryRepo) FindAll(ctx context.Context) ([]*entity.EventCategory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var categories []*entity.EventCategory
	for _, category := range r.s.eventCats {
		c := category
		categories = append(categories, &c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

type eventRepo struct {
	s *store
}

func (r *eventRepo) Create(ctx context.Context, event *entity.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.events[event.ID] = *event
	return nil
}

func (r *eventRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	event, ok := r.s.events[id]
	if !ok {
		return nil, nil
	}
	return &event, nil
}

func (r *eventRepo) FindAll(ctx context.Context) ([]*entity.Event, error) {
	return r.list(false)
}

func (r *eventRepo) FindPublished(ctx context.Context) ([]*entity.Event, error) {
	return r.list(true)
}

func (r *eventRepo) list(publishedOnly bool) ([]*entity.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var events []*entity.Event
	for _, event := range r.s.events {
		if publishedOnly && !event.IsPublished {
			continue
		}
		e := event
		events = append(events, &e)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].EventDate.Before(events[j].EventDate) })
	return events, nil
}

func (r *eventRepo) Update(ctx context.Context, event *entity.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.events[event.ID]
	if !ok {
		return errNotFound("event")
	}
	// attendee count only moves through IncrementAttendees
	updated := *event
	updated.CurrentAttendees = existing.CurrentAttendees
	r.s.events[event.ID] = updated
	return nil
}

func (r *eventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.events[id]; !ok {
		return errNotFound("event")
	}
	delete(r.s.events, id)
	return nil
}

func (r *eventRepo) IncrementAttendees(ctx context.Context, eventID uuid.UUID, quantity int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	event, ok := r.s.events[eventID]
	if !ok {
		return errNotFound("event")
	}
	event.CurrentAttendees += quantity
	event.UpdatedAt = now()
	r.s.events[eventID] = event
	return nil
}

type ticketSaleRepo struct {
	s *store
}

func (r *ticketSaleRepo) Create(ctx context.Context, sale *entity.TicketSale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sale.ID = r.s.nextSaleID
	r.s.nextSaleID++
	r.s.ticketSales[sale.ID] = *sale
	return nil
}

func (r *ticketSaleRepo) FindByPaymentRef(ctx context.Context, paymentRef string) (*entity.TicketSale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, sale := range r.s.ticketSales {
		if sale.PaymentRef == paymentRef {
			s := sale
			return &s, nil
		}
	}
	return nil, nil
}

func (r *ticketSaleRepo) FindAll(ctx context.Context) ([]*entity.TicketSale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var sales []*entity.TicketSale
	for _, sale := range r.s.ticketSales {
		s := sale
		sales = append(sales, &s)
	}
	sort.Slice(sales, func(i, j int) bool { return sales[i].PurchasedAt.After(sales[j].PurchasedAt) })
	return sales, nil
}

func (r *ticketSaleRepo) Totals(ctx context.Context) (int64, float64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var tickets int64
	var revenue float64
	for _, sale := range r.s.ticketSales {
		if sale.Status == entity.TicketSaleStatusConfirmed {
			tickets += int64(sale.Quantity)
			revenue += sale.TotalAmount
		}
	}
	return tickets, revenue, nil
}
