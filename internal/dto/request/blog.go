package request

type CreateBlogPostRequest struct {
	CategoryID  *string `json:"category_id,omitempty" validate:"omitempty,uuid4"`
	Title       string  `json:"title" validate:"required,min=2,max=200"`
	Slug        string  `json:"slug" validate:"required,min=2,max=200"`
	Excerpt     *string `json:"excerpt,omitempty"`
	Content     string  `json:"content" validate:"required"`
	ImageURL    *string `json:"image_url,omitempty"`
	IsPublished bool    `json:"is_published"`
}

type UpdateBlogPostRequest struct {
	CategoryID  *string `json:"category_id,omitempty" validate:"omitempty,uuid4"`
	Title       string  `json:"title" validate:"required,min=2,max=200"`
	Slug        string  `json:"slug" validate:"required,min=2,max=200"`
	Excerpt     *string `json:"excerpt,omitempty"`
	Content     string  `json:"content" validate:"required"`
	ImageURL    *string `json:"image_url,omitempty"`
	IsPublished bool    `json:"is_published"`
}

type CreateBlogCategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=50"`
}
