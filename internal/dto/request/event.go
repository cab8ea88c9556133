package request

type CreateEventRequest struct {
	CategoryID   *string `json:"category_id,omitempty" validate:"omitempty,uuid4"`
	Title        string  `json:"title" validate:"required,min=2,max=200"`
	Description  *string `json:"description,omitempty"`
	EventDate    string  `json:"event_date" validate:"required"` // RFC 3339
	ImageURL     *string `json:"image_url,omitempty"`
	TicketPrice  float64 `json:"ticket_price" validate:"min=0"`
	MaxAttendees int     `json:"max_attendees" validate:"min=0"`
	IsPublished  bool    `json:"is_published"`
}

type UpdateEventRequest struct {
	CategoryID   *string `json:"category_id,omitempty" validate:"omitempty,uuid4"`
	Title        string  `json:"title" validate:"required,min=2,max=200"`
	Description  *string `json:"description,omitempty"`
	EventDate    string  `json:"event_date" validate:"required"`
	ImageURL     *string `json:"image_url,omitempty"`
	TicketPrice  float64 `json:"ticket_price" validate:"min=0"`
	MaxAttendees int     `json:"max_attendees" validate:"min=0"`
	IsPublished  bool    `json:"is_published"`
}

type CreateEventCategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=50"`
}
