package entity

import (
	"github.com/google/uuid"
)

type MenuCategory struct {
	BaseSimple
	Name         string `db:"name"`
	DisplayOrder int    `db:"display_order"`
}

type MenuItem struct {
	Base
	CategoryID  *uuid.UUID `db:"category_id"`
	Name        string     `db:"name"`
	Description *string    `db:"description"`
	Price       float64    `db:"price"`
	ImageURL    *string    `db:"image_url"`
	IsAvailable bool       `db:"is_available"`
}
