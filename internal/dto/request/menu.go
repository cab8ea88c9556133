package request

type CreateMenuItemRequest struct {
	CategoryID  *string `json:"category_id,omitempty" validate:"omitempty,uuid4"`
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	ImageURL    *string `json:"image_url,omitempty"`
	IsAvailable bool    `json:"is_available"`
}

type UpdateMenuItemRequest struct {
	CategoryID  *string `json:"category_id,omitempty" validate:"omitempty,uuid4"`
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	ImageURL    *string `json:"image_url,omitempty"`
	IsAvailable bool    `json:"is_available"`
}

type CreateMenuCategoryRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=50"`
	DisplayOrder int    `json:"display_order"`
}

type BulkAvailabilityRequest struct {
	ItemIDs     []string `json:"item_ids" validate:"required,min=1,dive,uuid4"`
	IsAvailable bool     `json:"is_available"`
}
