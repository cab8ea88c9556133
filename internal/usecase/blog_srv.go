package usecase

import (
	"context"
	"fmt"
	"time"

	"coffee-house/internal/data/entity"
	"coffee-house/internal/data/repository"
	"coffee-house/internal/dto/request"
	"coffee-house/internal/dto/response"
	"coffee-house/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BlogService interface {
	CreateCategory(ctx context.Context, req *request.CreateBlogCategoryRequest) (*response.BlogCategoryResponse, error)
	GetCategories(ctx context.Context) ([]response.BlogCategoryResponse, error)
	CreatePost(ctx context.Context, req *request.CreateBlogPostRequest) (*response.BlogPostResponse, error)
	GetPost(ctx context.Context, id uuid.UUID) (*response.BlogPostResponse, error)
	GetPostBySlug(ctx context.Context, slug string) (*response.BlogPostResponse, error)
	GetPosts(ctx context.Context) ([]response.BlogPostResponse, error)
	GetPublishedPosts(ctx context.Context, limit int) ([]response.BlogPostResponse, error)
	UpdatePost(ctx context.Context, id uuid.UUID, req *request.UpdateBlogPostRequest) (*response.BlogPostResponse, error)
	DeletePost(ctx context.Context, id uuid.UUID) error
}

type blogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBlogService(repo *repository.Repository, log *zap.Logger) BlogService {
	return &blogService{
		repo: repo,
		log:  log.With(zap.String("service", "blog")),
	}
}

func (s *blogService) CreateCategory(ctx context.Context, req *request.CreateBlogCategoryRequest) (*response.BlogCategoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	category := &entity.BlogCategory{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name: req.Name,
	}

	if err := s.repo.BlogCategory.Create(ctx, category); err != nil {
		s.log.Error("Failed to create blog category", zap.Error(err))
		return nil, fmt.Errorf("failed to create blog category")
	}

	resp := response.BlogCategoryToResponse(category)
	return &resp, nil
}

func (s *blogService) GetCategories(ctx context.Context) ([]response.BlogCategoryResponse, error) {
	categories, err := s.repo.BlogCategory.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list blog categories", zap.Error(err))
		return nil, fmt.Errorf("failed to list blog categories")
	}

	resp := make([]response.BlogCategoryResponse, 0, len(categories))
	for _, category := range categories {
		resp = append(resp, response.BlogCategoryToResponse(category))
	}
	return resp, nil
}

func (s *blogService) CreatePost(ctx context.Context, req *request.CreateBlogPostRequest) (*response.BlogPostResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.BlogPost.FindBySlug(ctx, req.Slug)
	if err != nil {
		s.log.Error("Failed to check slug", zap.Error(err), zap.String("slug", req.Slug))
		return nil, fmt.Errorf("failed to create blog post")
	}
	if existing != nil {
		return nil, fmt.Errorf("a post with slug %s already exists", req.Slug)
	}

	now := time.Now()
	post := &entity.BlogPost{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Slug:        req.Slug,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
		IsPublished: req.IsPublished,
	}
	if req.IsPublished {
		post.PublishedAt = &now
	}

	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category id")
		}
		post.CategoryID = &categoryID
	}

	if err := s.repo.BlogPost.Create(ctx, post); err != nil {
		s.log.Error("Failed to create blog post", zap.Error(err), zap.String("slug", req.Slug))
		return nil, fmt.Errorf("failed to create blog post")
	}

	s.log.Info("Blog post created", zap.String("post_id", post.ID.String()), zap.String("slug", post.Slug))

	resp := response.BlogPostToResponse(post)
	return &resp, nil
}

func (s *blogService) GetPost(ctx context.Context, id uuid.UUID) (*response.BlogPostResponse, error) {
	post, err := s.repo.BlogPost.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find blog post", zap.Error(err), zap.String("post_id", id.String()))
		return nil, fmt.Errorf("failed to find blog post")
	}
	if post == nil {
		return nil, fmt.Errorf("blog post not found")
	}

	resp := response.BlogPostToResponse(post)
	return &resp, nil
}

func (s *blogService) GetPostBySlug(ctx context.Context, slug string) (*response.BlogPostResponse, error) {
	post, err := s.repo.BlogPost.FindBySlug(ctx, slug)
	if err != nil {
		s.log.Error("Failed to find blog post", zap.Error(err), zap.String("slug", slug))
		return nil, fmt.Errorf("failed to find blog post")
	}
	if post == nil || !post.IsPublished {
		return nil, fmt.Errorf("blog post not found")
	}

	resp := response.BlogPostToResponse(post)
	return &resp, nil
}

func (s *blogService) GetPosts(ctx context.Context) ([]response.BlogPostResponse, error) {
	posts, err := s.repo.BlogPost.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list blog posts", zap.Error(err))
		return nil, fmt.Errorf("failed to list blog posts")
	}

	resp := make([]response.BlogPostResponse, 0, len(posts))
	for _, post := range posts {
		resp = append(resp, response.BlogPostToResponse(post))
	}
	return resp, nil
}

func (s *blogService) GetPublishedPosts(ctx context.Context, limit int) ([]response.BlogPostResponse, error) {
	posts, err := s.repo.BlogPost.FindPublished(ctx, limit)
	if err != nil {
		s.log.Error("Failed to list published posts", zap.Error(err))
		return nil, fmt.Errorf("failed to list blog posts")
	}

	resp := make([]response.BlogPostResponse, 0, len(posts))
	for _, post := range posts {
		resp = append(resp, response.BlogPostToResponse(post))
	}
	return resp, nil
}

func (s *blogService) UpdatePost(ctx context.Context, id uuid.UUID, req *request.UpdateBlogPostRequest) (*response.BlogPostResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	post, err := s.repo.BlogPost.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find blog post", zap.Error(err), zap.String("post_id", id.String()))
		return nil, fmt.Errorf("failed to find blog post")
	}
	if post == nil {
		return nil, fmt.Errorf("blog post not found")
	}

	if req.Slug != post.Slug {
		existing, err := s.repo.BlogPost.FindBySlug(ctx, req.Slug)
		if err != nil {
			s.log.Error("Failed to check slug", zap.Error(err), zap.String("slug", req.Slug))
			return nil, fmt.Errorf("failed to update blog post")
		}
		if existing != nil {
			return nil, fmt.Errorf("a post with slug %s already exists", req.Slug)
		}
	}

	now := time.Now()
	post.Title = req.Title
	post.Slug = req.Slug
	post.Excerpt = req.Excerpt
	post.Content = req.Content
	post.ImageURL = req.ImageURL
	post.UpdatedAt = now
	if req.IsPublished && !post.IsPublished {
		post.PublishedAt = &now
	}
	post.IsPublished = req.IsPublished
	post.CategoryID = nil
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category id")
		}
		post.CategoryID = &categoryID
	}

	if err := s.repo.BlogPost.Update(ctx, post); err != nil {
		s.log.Error("Failed to update blog post", zap.Error(err), zap.String("post_id", id.String()))
		return nil, fmt.Errorf("failed to update blog post")
	}

	resp := response.BlogPostToResponse(post)
	return &resp, nil
}

func (s *blogService) DeletePost(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.BlogPost.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete blog post", zap.Error(err), zap.String("post_id", id.String()))
		return fmt.Errorf("blog post not found")
	}

	s.log.Info("Blog post deleted", zap.String("post_id", id.String()))
	return nil
}
