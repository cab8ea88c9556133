package wire

import (
	"coffee-house/internal/adaptor"
	"coffee-house/internal/data/repository"
	"coffee-house/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBlog(
	r chi.Router,
	blogHandler *adaptor.BlogHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/posts - Published posts, newest first
	r.Get("/api/posts", blogHandler.GetPublishedPosts)

	// GET /api/posts/{slug} - Published post by slug
	r.Get("/api/posts/{slug}", blogHandler.GetPostBySlug)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/posts", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		// GET /api/admin/posts - All posts including drafts
		r.Get("/", blogHandler.GetPosts)

		// POST /api/admin/posts - Create post
		r.Post("/", blogHandler.CreatePost)

		// GET /api/admin/posts/categories - List blog categories
		r.Get("/categories", blogHandler.GetCategories)

		// POST /api/admin/posts/categories - Create blog category
		r.Post("/categories", blogHandler.CreateCategory)

		// GET /api/admin/posts/{id} - Post by id, drafts included
		r.Get("/{id}", blogHandler.GetPost)

		// PUT /api/admin/posts/{id} - Update post
		r.Put("/{id}", blogHandler.UpdatePost)

		// DELETE /api/admin/posts/{id} - Remove post
		r.Delete("/{id}", blogHandler.DeletePost)
	})
}
