package response

type DashboardResponse struct {
	Orders         map[string]int64 `json:"orders"`
	OrderRevenue   float64          `json:"order_revenue"`
	Bookings       map[string]int64 `json:"bookings"`
	TicketsSold    int64            `json:"tickets_sold"`
	TicketRevenue  float64          `json:"ticket_revenue"`
	UnreadMessages int64            `json:"unread_messages"`
}
