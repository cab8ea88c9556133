package usecase

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"coffee-house/internal/data/entity"
	"coffee-house/internal/data/repository"
	"coffee-house/internal/data/repository/demo"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func createSale(t *testing.T, repo *repository.Repository, quantity int, unitPrice float64) *entity.TicketSale {
	t.Helper()
	sale := &entity.TicketSale{
		EventID:       uuid.New(),
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		TotalAmount:   unitPrice * float64(quantity),
		PaymentRef:    "pi_" + uuid.New().String(),
		Status:        entity.TicketSaleStatusConfirmed,
		PurchasedAt:   time.Now(),
	}
	if err := repo.TicketSale.Create(context.Background(), sale); err != nil {
		t.Fatalf("create sale: %v", err)
	}
	return sale
}

func TestExportTicketSalesCSV(t *testing.T) {
	repo := demo.NewRepository(zap.NewNop())
	service := NewAnalyticsService(repo, zap.NewNop())

	createSale(t, repo, 2, 15.00)
	createSale(t, repo, 1, 8.00)
	createSale(t, repo, 3, 12.50)

	var buf bytes.Buffer
	if err := service.ExportTicketSalesCSV(context.Background(), &buf); err != nil {
		t.Fatalf("ExportTicketSalesCSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("line count = %d, want header plus 3 rows", len(lines))
	}

	if !strings.HasPrefix(lines[0], "Confirmation Number,") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[0], "Total Amount") {
		t.Errorf("header = %q, want a Total Amount column", lines[0])
	}

	if !strings.Contains(buf.String(), "£30.00") {
		t.Error("export is missing the £30.00 total")
	}
	if !strings.Contains(buf.String(), "£12.50") {
		t.Error("export is missing the £12.50 unit price")
	}
}

func TestExportTicketSalesCSVEmpty(t *testing.T) {
	repo := demo.NewRepository(zap.NewNop())
	service := NewAnalyticsService(repo, zap.NewNop())

	var buf bytes.Buffer
	if err := service.ExportTicketSalesCSV(context.Background(), &buf); err != nil {
		t.Fatalf("ExportTicketSalesCSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 1 {
		t.Errorf("line count = %d, want header only", len(lines))
	}
}

func TestDashboardTotals(t *testing.T) {
	repo := demo.NewRepository(zap.NewNop())
	service := NewAnalyticsService(repo, zap.NewNop())

	createSale(t, repo, 2, 15.00)
	createSale(t, repo, 1, 8.00)

	now := time.Now()
	order := &entity.Order{
		Base:          entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
		Type:          entity.OrderTypeCollection,
		TotalAmount:   9.60,
		Status:        entity.OrderStatusCompleted,
	}
	if err := repo.Order.Create(context.Background(), order); err != nil {
		t.Fatalf("create order: %v", err)
	}

	message := &entity.Message{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
		Name:       "Grace Hopper",
		Email:      "grace@example.com",
		Body:       "Do you host private events?",
	}
	if err := repo.Message.Create(context.Background(), message); err != nil {
		t.Fatalf("create message: %v", err)
	}

	dashboard, err := service.GetDashboard(context.Background())
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}

	if dashboard.TicketsSold != 3 {
		t.Errorf("tickets sold = %d, want 3", dashboard.TicketsSold)
	}
	if dashboard.TicketRevenue != 38.00 {
		t.Errorf("ticket revenue = %.2f, want 38.00", dashboard.TicketRevenue)
	}
	if dashboard.Orders["completed"] != 1 {
		t.Errorf("completed orders = %d, want 1", dashboard.Orders["completed"])
	}
	if dashboard.OrderRevenue != 9.60 {
		t.Errorf("order revenue = %.2f, want 9.60", dashboard.OrderRevenue)
	}
	if dashboard.UnreadMessages != 1 {
		t.Errorf("unread messages = %d, want 1", dashboard.UnreadMessages)
	}
}
