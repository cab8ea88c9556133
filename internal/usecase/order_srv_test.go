package usecase

import (
	"context"
	"testing"
	"time"

	"coffee-house/internal/data/entity"
	"coffee-house/internal/data/repository"
	"coffee-house/internal/data/repository/demo"
	"coffee-house/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newOrderFixture(t *testing.T) (*repository.Repository, OrderService) {
	t.Helper()
	repo := demo.NewRepository(zap.NewNop())
	return repo, NewOrderService(repo, zap.NewNop())
}

func createMenuItem(t *testing.T, repo *repository.Repository, name string, price float64, available bool) *entity.MenuItem {
	t.Helper()
	now := time.Now()
	item := &entity.MenuItem{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        name,
		Price:       price,
		IsAvailable: available,
	}
	if err := repo.MenuItem.Create(context.Background(), item); err != nil {
		t.Fatalf("create menu item: %v", err)
	}
	return item
}

func TestCreateOrderPricesFromMenu(t *testing.T) {
	repo, service := newOrderFixture(t)
	flatWhite := createMenuItem(t, repo, "Flat White", 3.40, true)
	croissant := createMenuItem(t, repo, "Croissant", 2.80, true)

	resp, err := service.CreateOrder(context.Background(), &request.CreateOrderRequest{
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
		Type:          "collection",
		Items: []request.OrderLineRequest{
			{MenuItemID: flatWhite.ID.String(), Quantity: 2},
			{MenuItemID: croissant.ID.String(), Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	want := 2*3.40 + 2.80
	if resp.TotalAmount != want {
		t.Errorf("total = %.2f, want %.2f", resp.TotalAmount, want)
	}
	if resp.Status != entity.OrderStatusPending {
		t.Errorf("status = %s, want pending", resp.Status)
	}
	if len(resp.Items) != 2 {
		t.Fatalf("line count = %d, want 2", len(resp.Items))
	}
	// the snapshot keeps the name and price even if the menu changes later
	if resp.Items[0].ItemName != "Flat White" || resp.Items[0].UnitPrice != 3.40 {
		t.Errorf("first line = %q at %.2f", resp.Items[0].ItemName, resp.Items[0].UnitPrice)
	}
}

func TestCreateOrderMergesDuplicateLines(t *testing.T) {
	repo, service := newOrderFixture(t)
	flatWhite := createMenuItem(t, repo, "Flat White", 3.40, true)

	resp, err := service.CreateOrder(context.Background(), &request.CreateOrderRequest{
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
		Type:          "collection",
		Items: []request.OrderLineRequest{
			{MenuItemID: flatWhite.ID.String(), Quantity: 1},
			{MenuItemID: flatWhite.ID.String(), Quantity: 2},
		},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if len(resp.Items) != 1 {
		t.Fatalf("line count = %d, want 1 merged line", len(resp.Items))
	}
	if resp.Items[0].Quantity != 3 {
		t.Errorf("quantity = %d, want 3", resp.Items[0].Quantity)
	}
	if want := 3 * 3.40; resp.TotalAmount != want {
		t.Errorf("total = %.2f, want %.2f", resp.TotalAmount, want)
	}

	stored, err := repo.OrderItem.FindByOrderID(context.Background(), uuid.MustParse(resp.ID))
	if err != nil {
		t.Fatalf("load order items: %v", err)
	}
	if len(stored) != 1 {
		t.Errorf("stored line count = %d, want 1", len(stored))
	}
}

func TestCreateOrderRejectsUnavailableItem(t *testing.T) {
	repo, service := newOrderFixture(t)
	soldOut := createMenuItem(t, repo, "Seasonal Special", 4.50, false)

	_, err := service.CreateOrder(context.Background(), &request.CreateOrderRequest{
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
		Type:          "collection",
		Items: []request.OrderLineRequest{
			{MenuItemID: soldOut.ID.String(), Quantity: 1},
		},
	})
	if err == nil {
		t.Fatal("order with unavailable item accepted")
	}
}

func TestCreateOrderDeliveryNeedsAddress(t *testing.T) {
	repo, service := newOrderFixture(t)
	item := createMenuItem(t, repo, "Mocha", 3.90, true)

	req := &request.CreateOrderRequest{
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
		Type:          "delivery",
		Items: []request.OrderLineRequest{
			{MenuItemID: item.ID.String(), Quantity: 1},
		},
	}

	if _, err := service.CreateOrder(context.Background(), req); err == nil {
		t.Error("delivery order without address accepted")
	}

	address := "12 Roastery Lane"
	req.DeliveryAddress = &address
	if _, err := service.CreateOrder(context.Background(), req); err != nil {
		t.Errorf("delivery order with address rejected: %v", err)
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	repo, service := newOrderFixture(t)
	item := createMenuItem(t, repo, "Espresso", 2.50, true)

	resp, err := service.CreateOrder(context.Background(), &request.CreateOrderRequest{
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
		Type:          "collection",
		Items: []request.OrderLineRequest{
			{MenuItemID: item.ID.String(), Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	orderID := uuid.MustParse(resp.ID)

	// skipping ahead is blocked
	if _, err := service.UpdateStatus(context.Background(), orderID, &request.UpdateOrderStatusRequest{Status: "completed"}); err == nil {
		t.Error("pending to completed accepted")
	}

	for _, status := range []string{"confirmed", "in_progress", "completed"} {
		if _, err := service.UpdateStatus(context.Background(), orderID, &request.UpdateOrderStatusRequest{Status: status}); err != nil {
			t.Fatalf("transition to %s: %v", status, err)
		}
	}

	// a completed order stays completed
	if _, err := service.UpdateStatus(context.Background(), orderID, &request.UpdateOrderStatusRequest{Status: "cancelled"}); err == nil {
		t.Error("completed to cancelled accepted")
	}
}

func TestOrderCancelBeforeCompletion(t *testing.T) {
	repo, service := newOrderFixture(t)
	item := createMenuItem(t, repo, "Cortado", 3.20, true)

	resp, err := service.CreateOrder(context.Background(), &request.CreateOrderRequest{
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
		Type:          "collection",
		Items: []request.OrderLineRequest{
			{MenuItemID: item.ID.String(), Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	orderID := uuid.MustParse(resp.ID)

	if _, err := service.UpdateStatus(context.Background(), orderID, &request.UpdateOrderStatusRequest{Status: "cancelled"}); err != nil {
		t.Errorf("pending to cancelled rejected: %v", err)
	}

	// and cancellation is terminal
	if _, err := service.UpdateStatus(context.Background(), orderID, &request.UpdateOrderStatusRequest{Status: "confirmed"}); err == nil {
		t.Error("cancelled to confirmed accepted")
	}
}
