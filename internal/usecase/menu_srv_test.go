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

func newMenuFixture(t *testing.T) (*repository.Repository, MenuService) {
	t.Helper()
	repo := demo.NewRepository(zap.NewNop())
	return repo, NewMenuService(repo, zap.NewNop())
}

func createMenuCategory(t *testing.T, repo *repository.Repository, name string, order int) *entity.MenuCategory {
	t.Helper()
	category := &entity.MenuCategory{
		BaseSimple:   entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Name:         name,
		DisplayOrder: order,
	}
	if err := repo.MenuCategory.Create(context.Background(), category); err != nil {
		t.Fatalf("create category: %v", err)
	}
	return category
}

func createCategorisedItem(t *testing.T, repo *repository.Repository, categoryID uuid.UUID, name string, available bool) {
	t.Helper()
	now := time.Now()
	item := &entity.MenuItem{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		CategoryID:  &categoryID,
		Name:        name,
		Price:       3.00,
		IsAvailable: available,
	}
	if err := repo.MenuItem.Create(context.Background(), item); err != nil {
		t.Fatalf("create item: %v", err)
	}
}

func TestGetPublicMenuGrouping(t *testing.T) {
	repo, service := newMenuFixture(t)

	pastries := createMenuCategory(t, repo, "Pastries", 1)
	coffee := createMenuCategory(t, repo, "Coffee", 0)

	createCategorisedItem(t, repo, coffee.ID, "Flat White", true)
	createCategorisedItem(t, repo, coffee.ID, "Seasonal Special", false)
	createCategorisedItem(t, repo, pastries.ID, "Croissant", true)

	sections, err := service.GetPublicMenu(context.Background())
	if err != nil {
		t.Fatalf("GetPublicMenu: %v", err)
	}

	if len(sections) != 2 {
		t.Fatalf("section count = %d, want 2", len(sections))
	}

	// display order decides section order, not insertion order
	if sections[0].Category.Name != "Coffee" {
		t.Errorf("first section = %q, want Coffee", sections[0].Category.Name)
	}

	// the unavailable special is hidden from the storefront
	if len(sections[0].Items) != 1 {
		t.Errorf("coffee item count = %d, want 1", len(sections[0].Items))
	}
	if sections[0].Items[0].Name != "Flat White" {
		t.Errorf("coffee item = %q, want Flat White", sections[0].Items[0].Name)
	}
}

func TestGetPublicMenuSkipsEmptyCategories(t *testing.T) {
	repo, service := newMenuFixture(t)

	createMenuCategory(t, repo, "Empty Shelf", 0)
	coffee := createMenuCategory(t, repo, "Coffee", 1)
	createCategorisedItem(t, repo, coffee.ID, "Espresso", true)

	sections, err := service.GetPublicMenu(context.Background())
	if err != nil {
		t.Fatalf("GetPublicMenu: %v", err)
	}

	if len(sections) != 1 {
		t.Fatalf("section count = %d, want 1", len(sections))
	}
	if sections[0].Category.Name != "Coffee" {
		t.Errorf("section = %q, want Coffee", sections[0].Category.Name)
	}
}

func TestBulkSetAvailability(t *testing.T) {
	repo, service := newMenuFixture(t)

	first := createMenuItem(t, repo, "Flat White", 3.40, true)
	second := createMenuItem(t, repo, "Croissant", 2.80, true)

	resp, err := service.BulkSetAvailability(context.Background(), &request.BulkAvailabilityRequest{
		ItemIDs:     []string{first.ID.String(), second.ID.String()},
		IsAvailable: false,
	})
	if err != nil {
		t.Fatalf("BulkSetAvailability: %v", err)
	}

	if resp.UpdatedCount != 2 {
		t.Errorf("updated = %d, want 2", resp.UpdatedCount)
	}

	item, _ := repo.MenuItem.FindByID(context.Background(), first.ID)
	if item.IsAvailable {
		t.Error("item still available after bulk update")
	}
}
