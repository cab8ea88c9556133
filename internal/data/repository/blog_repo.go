package repository

import (
	"context"
	"fmt"

	"coffee-house/internal/data/entity"
	"coffee-house/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BlogCategoryRepository interface {
	Create(ctx context.Context, category *entity.BlogCategory) error
	FindAll(ctx context.Context) ([]*entity.BlogCategory, error)
}

type BlogPostRepository interface {
	Create(ctx context.Context, post *entity.BlogPost) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*entity.BlogPost, error)
	FindAll(ctx context.Context) ([]*entity.BlogPost, error)
	FindPublished(ctx context.Context, limit int) ([]*entity.BlogPost, error)
	Update(ctx context.Context, post *entity.BlogPost) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type blogCategoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBlogCategoryRepository(db database.PgxIface, log *zap.Logger) BlogCategoryRepository {
	return &blogCategoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "blog_category")),
	}
}

func (r *blogCategoryRepository) Create(ctx context.Context, category *entity.BlogCategory) error {
	query := `
		INSERT INTO blog_categories (id, name, created_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query,
		category.ID,
		category.Name,
		category.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create blog category",
			zap.Error(err),
			zap.String("name", category.Name),
		)
		return fmt.Errorf("create blog category %s: %w", category.Name, err)
	}

	return nil
}

func (r *blogCategoryRepository) FindAll(ctx context.Context) ([]*entity.BlogCategory, error) {
	query := `
		SELECT id, name, created_at
		FROM blog_categories
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find blog categories", zap.Error(err))
		return nil, fmt.Errorf("find blog categories: %w", err)
	}
	defer rows.Close()

	var categories []*entity.BlogCategory
	for rows.Next() {
		var category entity.BlogCategory
		err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan blog category row", zap.Error(err))
			return nil, fmt.Errorf("scan blog category row: %w", err)
		}
		categories = append(categories, &category)
	}

	return categories, nil
}

type blogPostRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBlogPostRepository(db database.PgxIface, log *zap.Logger) BlogPostRepository {
	return &blogPostRepository{
		db:  db,
		log: log.With(zap.String("repository", "blog_post")),
	}
}

const blogPostColumns = `id, category_id, title, slug, excerpt, content, image_url, is_published, published_at, created_at, updated_at`

func scanBlogPost(row pgx.Row) (*entity.BlogPost, error) {
	var post entity.BlogPost
	err := row.Scan(
		&post.ID,
		&post.CategoryID,
		&post.Title,
		&post.Slug,
		&post.Excerpt,
		&post.Content,
		&post.ImageURL,
		&post.IsPublished,
		&post.PublishedAt,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *blogPostRepository) Create(ctx context.Context, post *entity.BlogPost) error {
	query := `
		INSERT INTO blog_posts (id, category_id, title, slug, excerpt, content, image_url, is_published, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		post.ID,
		post.CategoryID,
		post.Title,
		post.Slug,
		post.Excerpt,
		post.Content,
		post.ImageURL,
		post.IsPublished,
		post.PublishedAt,
		post.CreatedAt,
		post.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create blog post",
			zap.Error(err),
			zap.String("slug", post.Slug),
		)
		return fmt.Errorf("create blog post %s: %w", post.Slug, err)
	}

	return nil
}

func (r *blogPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BlogPost, error) {
	query := `SELECT ` + blogPostColumns + ` FROM blog_posts WHERE id = $1`

	post, err := scanBlogPost(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find blog post by ID",
			zap.Error(err),
			zap.String("post_id", id.String()),
		)
		return nil, fmt.Errorf("find blog post by ID %s: %w", id.String(), err)
	}

	return post, nil
}

func (r *blogPostRepository) FindBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	query := `SELECT ` + blogPostColumns + ` FROM blog_posts WHERE slug = $1`

	post, err := scanBlogPost(r.db.QueryRow(ctx, query, slug))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find blog post by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find blog post by slug %s: %w", slug, err)
	}

	return post, nil
}

func (r *blogPostRepository) FindAll(ctx context.Context) ([]*entity.BlogPost, error) {
	query := `SELECT ` + blogPostColumns + ` FROM blog_posts ORDER BY created_at DESC`
	return r.queryPosts(ctx, query)
}

func (r *blogPostRepository) FindPublished(ctx context.Context, limit int) ([]*entity.BlogPost, error) {
	query := `
		SELECT ` + blogPostColumns + `
		FROM blog_posts
		WHERE is_published = TRUE
		ORDER BY published_at DESC
		LIMIT $1
	`
	return r.queryPosts(ctx, query, limit)
}

func (r *blogPostRepository) queryPosts(ctx context.Context, query string, args ...any) ([]*entity.BlogPost, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query blog posts", zap.Error(err))
		return nil, fmt.Errorf("query blog posts: %w", err)
	}
	defer rows.Close()

	var posts []*entity.BlogPost
	for rows.Next() {
		post, err := scanBlogPost(rows)
		if err != nil {
			r.log.Error("Failed to scan blog post row", zap.Error(err))
			return nil, fmt.Errorf("scan blog post row: %w", err)
		}
		posts = append(posts, post)
	}

	return posts, nil
}

func (r *blogPostRepository) Update(ctx context.Context, post *entity.BlogPost) error {
	query := `
		UPDATE blog_posts
		SET category_id = $2, title = $3, slug = $4, excerpt = $5, content = $6,
		    image_url = $7, is_published = $8, published_at = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		post.ID,
		post.CategoryID,
		post.Title,
		post.Slug,
		post.Excerpt,
		post.Content,
		post.ImageURL,
		post.IsPublished,
		post.PublishedAt,
		post.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update blog post",
			zap.Error(err),
			zap.String("post_id", post.ID.String()),
		)
		return fmt.Errorf("update blog post %s: %w", post.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("blog post %s not found", post.ID.String())
	}

	return nil
}

func (r *blogPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM blog_posts WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete blog post",
			zap.Error(err),
			zap.String("post_id", id.String()),
		)
		return fmt.Errorf("delete blog post %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("blog post %s not found", id.String())
	}

	r.log.Info("Blog post deleted", zap.String("post_id", id.String()))
	return nil
}
