package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"coffee-house/internal/data/entity"
	"coffee-house/internal/data/repository"
	"coffee-house/internal/dto/request"
	"coffee-house/internal/dto/response"
	"coffee-house/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MenuService interface {
	CreateCategory(ctx context.Context, req *request.CreateMenuCategoryRequest) (*response.MenuCategoryResponse, error)
	GetCategories(ctx context.Context) ([]response.MenuCategoryResponse, error)
	CreateItem(ctx context.Context, req *request.CreateMenuItemRequest) (*response.MenuItemResponse, error)
	GetItem(ctx context.Context, id uuid.UUID) (*response.MenuItemResponse, error)
	GetItems(ctx context.Context) ([]response.MenuItemResponse, error)
	GetPublicMenu(ctx context.Context) ([]response.MenuSectionResponse, error)
	UpdateItem(ctx context.Context, id uuid.UUID, req *request.UpdateMenuItemRequest) (*response.MenuItemResponse, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
	BulkSetAvailability(ctx context.Context, req *request.BulkAvailabilityRequest) (*response.BulkAvailabilityResponse, error)
}

type menuService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMenuService(repo *repository.Repository, log *zap.Logger) MenuService {
	return &menuService{
		repo: repo,
		log:  log.With(zap.String("service", "menu")),
	}
}

func (s *menuService) CreateCategory(ctx context.Context, req *request.CreateMenuCategoryRequest) (*response.MenuCategoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	category := &entity.MenuCategory{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:         req.Name,
		DisplayOrder: req.DisplayOrder,
	}

	if err := s.repo.MenuCategory.Create(ctx, category); err != nil {
		s.log.Error("Failed to create menu category", zap.Error(err))
		return nil, fmt.Errorf("failed to create menu category")
	}

	resp := response.MenuCategoryToResponse(category)
	return &resp, nil
}

func (s *menuService) GetCategories(ctx context.Context) ([]response.MenuCategoryResponse, error) {
	categories, err := s.repo.MenuCategory.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list menu categories", zap.Error(err))
		return nil, fmt.Errorf("failed to list menu categories")
	}

	resp := make([]response.MenuCategoryResponse, 0, len(categories))
	for _, category := range categories {
		resp = append(resp, response.MenuCategoryToResponse(category))
	}
	return resp, nil
}

func (s *menuService) CreateItem(ctx context.Context, req *request.CreateMenuItemRequest) (*response.MenuItemResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	item := &entity.MenuItem{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsAvailable: req.IsAvailable,
	}

	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category id")
		}
		item.CategoryID = &categoryID
	}

	if err := s.repo.MenuItem.Create(ctx, item); err != nil {
		s.log.Error("Failed to create menu item", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create menu item")
	}

	s.log.Info("Menu item created", zap.String("item_id", item.ID.String()), zap.String("name", item.Name))

	resp := response.MenuItemToResponse(item)
	return &resp, nil
}

func (s *menuService) GetItem(ctx context.Context, id uuid.UUID) (*response.MenuItemResponse, error) {
	item, err := s.repo.MenuItem.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find menu item", zap.Error(err), zap.String("item_id", id.String()))
		return nil, fmt.Errorf("failed to find menu item")
	}
	if item == nil {
		return nil, fmt.Errorf("menu item not found")
	}

	resp := response.MenuItemToResponse(item)
	return &resp, nil
}

func (s *menuService) GetItems(ctx context.Context) ([]response.MenuItemResponse, error) {
	items, err := s.repo.MenuItem.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list menu items", zap.Error(err))
		return nil, fmt.Errorf("failed to list menu items")
	}

	resp := make([]response.MenuItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, response.MenuItemToResponse(item))
	}
	return resp, nil
}

// GetPublicMenu returns available items grouped under their categories in
// display order. Items without a category are left out of the storefront.
func (s *menuService) GetPublicMenu(ctx context.Context) ([]response.MenuSectionResponse, error) {
	categories, err := s.repo.MenuCategory.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list menu categories", zap.Error(err))
		return nil, fmt.Errorf("failed to load menu")
	}

	items, err := s.repo.MenuItem.FindAvailable(ctx)
	if err != nil {
		s.log.Error("Failed to list available menu items", zap.Error(err))
		return nil, fmt.Errorf("failed to load menu")
	}

	byCategory := make(map[uuid.UUID][]response.MenuItemResponse)
	for _, item := range items {
		if item.CategoryID == nil {
			continue
		}
		byCategory[*item.CategoryID] = append(byCategory[*item.CategoryID], response.MenuItemToResponse(item))
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].DisplayOrder < categories[j].DisplayOrder
	})

	sections := make([]response.MenuSectionResponse, 0, len(categories))
	for _, category := range categories {
		sectionItems, ok := byCategory[category.ID]
		if !ok {
			continue
		}
		sections = append(sections, response.MenuSectionResponse{
			Category: response.MenuCategoryToResponse(category),
			Items:    sectionItems,
		})
	}
	return sections, nil
}

func (s *menuService) UpdateItem(ctx context.Context, id uuid.UUID, req *request.UpdateMenuItemRequest) (*response.MenuItemResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	item, err := s.repo.MenuItem.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find menu item", zap.Error(err), zap.String("item_id", id.String()))
		return nil, fmt.Errorf("failed to find menu item")
	}
	if item == nil {
		return nil, fmt.Errorf("menu item not found")
	}

	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	item.ImageURL = req.ImageURL
	item.IsAvailable = req.IsAvailable
	item.UpdatedAt = time.Now()
	item.CategoryID = nil
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category id")
		}
		item.CategoryID = &categoryID
	}

	if err := s.repo.MenuItem.Update(ctx, item); err != nil {
		s.log.Error("Failed to update menu item", zap.Error(err), zap.String("item_id", id.String()))
		return nil, fmt.Errorf("failed to update menu item")
	}

	resp := response.MenuItemToResponse(item)
	return &resp, nil
}

func (s *menuService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.MenuItem.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete menu item", zap.Error(err), zap.String("item_id", id.String()))
		return fmt.Errorf("menu item not found")
	}

	s.log.Info("Menu item deleted", zap.String("item_id", id.String()))
	return nil
}

func (s *menuService) BulkSetAvailability(ctx context.Context, req *request.BulkAvailabilityRequest) (*response.BulkAvailabilityResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	ids := make([]uuid.UUID, 0, len(req.ItemIDs))
	for _, raw := range req.ItemIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid item id: %s", raw)
		}
		ids = append(ids, id)
	}

	updated, err := s.repo.MenuItem.BulkSetAvailability(ctx, ids, req.IsAvailable)
	if err != nil {
		s.log.Error("Failed to bulk update availability", zap.Error(err))
		return nil, fmt.Errorf("failed to update availability")
	}

	s.log.Info("Menu availability updated",
		zap.Int64("updated", updated),
		zap.Bool("available", req.IsAvailable),
	)

	return &response.BulkAvailabilityResponse{UpdatedCount: updated}, nil
}
