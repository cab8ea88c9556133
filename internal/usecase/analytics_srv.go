package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"coffee-house/internal/data/repository"
	"coffee-house/internal/dto/response"
	"coffee-house/pkg/utils"

	"go.uber.org/zap"
)

type AnalyticsService interface {
	GetDashboard(ctx context.Context) (*response.DashboardResponse, error)
	ExportTicketSalesCSV(ctx context.Context, w io.Writer) error
}

type analyticsService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAnalyticsService(repo *repository.Repository, log *zap.Logger) AnalyticsService {
	return &analyticsService{
		repo: repo,
		log:  log.With(zap.String("service", "analytics")),
	}
}

func (s *analyticsService) GetDashboard(ctx context.Context) (*response.DashboardResponse, error) {
	orderCounts, err := s.repo.Order.CountByStatus(ctx)
	if err != nil {
		s.log.Error("Failed to count orders", zap.Error(err))
		return nil, fmt.Errorf("failed to build dashboard")
	}

	orderRevenue, err := s.repo.Order.SumCompletedRevenue(ctx)
	if err != nil {
		s.log.Error("Failed to sum order revenue", zap.Error(err))
		return nil, fmt.Errorf("failed to build dashboard")
	}

	bookingCounts, err := s.repo.Booking.CountByStatus(ctx)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, fmt.Errorf("failed to build dashboard")
	}

	tickets, ticketRevenue, err := s.repo.TicketSale.Totals(ctx)
	if err != nil {
		s.log.Error("Failed to total ticket sales", zap.Error(err))
		return nil, fmt.Errorf("failed to build dashboard")
	}

	unread, err := s.repo.Message.CountUnread(ctx)
	if err != nil {
		s.log.Error("Failed to count unread messages", zap.Error(err))
		return nil, fmt.Errorf("failed to build dashboard")
	}

	orders := make(map[string]int64, len(orderCounts))
	for status, count := range orderCounts {
		orders[string(status)] = count
	}
	bookings := make(map[string]int64, len(bookingCounts))
	for status, count := range bookingCounts {
		bookings[string(status)] = count
	}

	return &response.DashboardResponse{
		Orders:         orders,
		OrderRevenue:   orderRevenue,
		Bookings:       bookings,
		TicketsSold:    tickets,
		TicketRevenue:  ticketRevenue,
		UnreadMessages: unread,
	}, nil
}

// ExportTicketSalesCSV streams every sale as a CSV row, newest first, with
// a header line and pound-formatted amounts.
func (s *analyticsService) ExportTicketSalesCSV(ctx context.Context, w io.Writer) error {
	sales, err := s.repo.TicketSale.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list ticket sales", zap.Error(err))
		return fmt.Errorf("failed to export ticket sales")
	}

	writer := csv.NewWriter(w)
	header := []string{
		"Confirmation Number",
		"Event ID",
		"Customer Name",
		"Customer Email",
		"Quantity",
		"Unit Price",
		"Total Amount",
		"Payment Ref",
		"Status",
		"Purchased At",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	for _, sale := range sales {
		row := []string{
			utils.FormatConfirmationNumber(sale.ID),
			sale.EventID.String(),
			sale.CustomerName,
			sale.CustomerEmail,
			strconv.Itoa(sale.Quantity),
			utils.FormatGBP(sale.UnitPrice),
			utils.FormatGBP(sale.TotalAmount),
			sale.PaymentRef,
			string(sale.Status),
			sale.PurchasedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
