package usecase

import (
	"context"
	"fmt"
	"time"

	"coffee-house/internal/cart"
	"coffee-house/internal/data/entity"
	"coffee-house/internal/data/repository"
	"coffee-house/internal/dto/request"
	"coffee-house/internal/dto/response"
	"coffee-house/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	CreateOrder(ctx context.Context, req *request.CreateOrderRequest) (*response.OrderResponse, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*response.OrderResponse, error)
	GetOrders(ctx context.Context) ([]response.OrderResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error)
}

type orderService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		log:  log.With(zap.String("service", "order")),
	}
}

// CreateOrder prices every line from the live menu and folds the lines
// through the cart reducers, so duplicate lines for the same item merge
// into one. Quantities and item ids come from the client but unit prices
// never do.
func (s *orderService) CreateOrder(ctx context.Context, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	orderType := entity.OrderType(req.Type)
	if orderType == entity.OrderTypeDelivery && (req.DeliveryAddress == nil || *req.DeliveryAddress == "") {
		return nil, fmt.Errorf("delivery address is required for delivery orders")
	}

	now := time.Now()
	order := &entity.Order{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		Type:            orderType,
		DeliveryAddress: req.DeliveryAddress,
		Status:          entity.OrderStatusPending,
	}

	var basket cart.Cart
	for _, line := range req.Items {
		menuItemID, err := uuid.Parse(line.MenuItemID)
		if err != nil {
			return nil, fmt.Errorf("invalid menu item id: %s", line.MenuItemID)
		}

		menuItem, err := s.repo.MenuItem.FindByID(ctx, menuItemID)
		if err != nil {
			s.log.Error("Failed to find menu item", zap.Error(err), zap.String("item_id", menuItemID.String()))
			return nil, fmt.Errorf("failed to create order")
		}
		if menuItem == nil {
			return nil, fmt.Errorf("menu item not found: %s", line.MenuItemID)
		}
		if !menuItem.IsAvailable {
			return nil, fmt.Errorf("%s is not available", menuItem.Name)
		}

		basket = cart.Add(basket, cart.Item{
			MenuItemID: menuItem.ID,
			Name:       menuItem.Name,
			UnitPrice:  menuItem.Price,
			Quantity:   line.Quantity,
		})
	}

	items := make([]*entity.OrderItem, 0, len(basket.Items))
	for _, line := range basket.Items {
		itemID := line.MenuItemID
		items = append(items, &entity.OrderItem{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			OrderID:    order.ID,
			MenuItemID: &itemID,
			ItemName:   line.Name,
			UnitPrice:  line.UnitPrice,
			Quantity:   line.Quantity,
		})
	}

	order.TotalAmount = cart.Total(basket)

	if err := s.repo.Order.Create(ctx, order); err != nil {
		s.log.Error("Failed to create order", zap.Error(err))
		return nil, fmt.Errorf("failed to create order")
	}

	if err := s.repo.OrderItem.CreateBatch(ctx, items); err != nil {
		s.log.Error("Failed to create order items", zap.Error(err), zap.String("order_id", order.ID.String()))
		return nil, fmt.Errorf("failed to create order")
	}

	s.log.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("type", string(order.Type)),
		zap.Float64("total", order.TotalAmount),
	)

	resp := response.OrderToResponse(order, items)
	return &resp, nil
}

func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*response.OrderResponse, error) {
	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find order", zap.Error(err), zap.String("order_id", id.String()))
		return nil, fmt.Errorf("failed to find order")
	}
	if order == nil {
		return nil, fmt.Errorf("order not found")
	}

	items, err := s.repo.OrderItem.FindByOrderID(ctx, id)
	if err != nil {
		s.log.Error("Failed to load order items", zap.Error(err), zap.String("order_id", id.String()))
		return nil, fmt.Errorf("failed to find order")
	}

	resp := response.OrderToResponse(order, items)
	return &resp, nil
}

func (s *orderService) GetOrders(ctx context.Context) ([]response.OrderResponse, error) {
	orders, err := s.repo.Order.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list orders", zap.Error(err))
		return nil, fmt.Errorf("failed to list orders")
	}

	resp := make([]response.OrderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, response.OrderToResponse(order, nil))
	}
	return resp, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find order", zap.Error(err), zap.String("order_id", id.String()))
		return nil, fmt.Errorf("failed to find order")
	}
	if order == nil {
		return nil, fmt.Errorf("order not found")
	}

	next := entity.OrderStatus(req.Status)
	if !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("cannot change order status from %s to %s", order.Status, next)
	}

	if err := s.repo.Order.UpdateStatus(ctx, id, next); err != nil {
		s.log.Error("Failed to update order status", zap.Error(err), zap.String("order_id", id.String()))
		return nil, fmt.Errorf("failed to update order status")
	}

	s.log.Info("Order status updated",
		zap.String("order_id", id.String()),
		zap.String("from", string(order.Status)),
		zap.String("to", string(next)),
	)

	order.Status = next
	order.UpdatedAt = time.Now()
	resp := response.OrderToResponse(order, nil)
	return &resp, nil
}
