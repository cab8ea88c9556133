package response

import (
	"time"

	"coffee-house/internal/data/entity"
)

type EventCategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EventResponse struct {
	ID               string    `json:"id"`
	CategoryID       *string   `json:"category_id,omitempty"`
	Title            string    `json:"title"`
	Description      *string   `json:"description,omitempty"`
	EventDate        time.Time `json:"event_date"`
	ImageURL         *string   `json:"image_url,omitempty"`
	TicketPrice      float64   `json:"ticket_price"`
	MaxAttendees     int       `json:"max_attendees"`
	CurrentAttendees int       `json:"current_attendees"`
	TicketsRemaining int       `json:"tickets_remaining"`
	IsPublished      bool      `json:"is_published"`
	CreatedAt        time.Time `json:"created_at"`
}

func EventCategoryToResponse(category *entity.EventCategory) EventCategoryResponse {
	return EventCategoryResponse{
		ID:   category.ID.String(),
		Name: category.Name,
	}
}

func EventToResponse(event *entity.Event) EventResponse {
	resp := EventResponse{
		ID:               event.ID.String(),
		Title:            event.Title,
		Description:      event.Description,
		EventDate:        event.EventDate,
		ImageURL:         event.ImageURL,
		TicketPrice:      event.TicketPrice,
		MaxAttendees:     event.MaxAttendees,
		CurrentAttendees: event.CurrentAttendees,
		TicketsRemaining: event.RemainingCapacity(),
		IsPublished:      event.IsPublished,
		CreatedAt:        event.CreatedAt,
	}
	if event.CategoryID != nil {
		id := event.CategoryID.String()
		resp.CategoryID = &id
	}
	return resp
}
