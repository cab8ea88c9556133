package response

import (
	"time"

	"coffee-house/internal/data/entity"
)

type MenuCategoryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"display_order"`
}

type MenuItemResponse struct {
	ID          string    `json:"id"`
	CategoryID  *string   `json:"category_id,omitempty"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Price       float64   `json:"price"`
	ImageURL    *string   `json:"image_url,omitempty"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}

// MenuSectionResponse groups available items under their category for the storefront
type MenuSectionResponse struct {
	Category MenuCategoryResponse `json:"category"`
	Items    []MenuItemResponse   `json:"items"`
}

type BulkAvailabilityResponse struct {
	UpdatedCount int64 `json:"updated_count"`
}

func MenuCategoryToResponse(category *entity.MenuCategory) MenuCategoryResponse {
	return MenuCategoryResponse{
		ID:           category.ID.String(),
		Name:         category.Name,
		DisplayOrder: category.DisplayOrder,
	}
}

func MenuItemToResponse(item *entity.MenuItem) MenuItemResponse {
	resp := MenuItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		ImageURL:    item.ImageURL,
		IsAvailable: item.IsAvailable,
		CreatedAt:   item.CreatedAt,
	}
	if item.CategoryID != nil {
		id := item.CategoryID.String()
		resp.CategoryID = &id
	}
	return resp
}
