package entity

import (
	"time"

	"github.com/google/uuid"
)

type BlogCategory struct {
	BaseSimple
	Name string `db:"name"`
}

type BlogPost struct {
	Base
	CategoryID  *uuid.UUID `db:"category_id"`
	Title       string     `db:"title"`
	Slug        string     `db:"slug"`
	Excerpt     *string    `db:"excerpt"`
	Content     string     `db:"content"`
	ImageURL    *string    `db:"image_url"`
	IsPublished bool       `db:"is_published"`
	PublishedAt *time.Time `db:"published_at"`
}
