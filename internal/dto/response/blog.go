package response

import (
	"time"

	"coffee-house/internal/data/entity"
)

type BlogCategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BlogPostResponse struct {
	ID          string     `json:"id"`
	CategoryID  *string    `json:"category_id,omitempty"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	Content     string     `json:"content"`
	ImageURL    *string    `json:"image_url,omitempty"`
	IsPublished bool       `json:"is_published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func BlogCategoryToResponse(category *entity.BlogCategory) BlogCategoryResponse {
	return BlogCategoryResponse{
		ID:   category.ID.String(),
		Name: category.Name,
	}
}

func BlogPostToResponse(post *entity.BlogPost) BlogPostResponse {
	resp := BlogPostResponse{
		ID:          post.ID.String(),
		Title:       post.Title,
		Slug:        post.Slug,
		Excerpt:     post.Excerpt,
		Content:     post.Content,
		ImageURL:    post.ImageURL,
		IsPublished: post.IsPublished,
		PublishedAt: post.PublishedAt,
		CreatedAt:   post.CreatedAt,
	}
	if post.CategoryID != nil {
		id := post.CategoryID.String()
		resp.CategoryID = &id
	}
	return resp
}
