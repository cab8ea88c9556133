package adaptor

import (
	"encoding/json"
	"net/http"

	"coffee-house/internal/dto/request"
	"coffee-house/internal/usecase"
	"coffee-house/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// publicPostLimit is the default page size for the public blog listing
const publicPostLimit = 20

type BlogHandler struct {
	service usecase.BlogService
	log     *zap.Logger
}

func NewBlogHandler(service usecase.BlogService, log *zap.Logger) *BlogHandler {
	return &BlogHandler{
		service: service,
		log:     log.With(zap.String("handler", "blog")),
	}
}

func (h *BlogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBlogCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.CreateCategory(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Blog category created", resp)
}

func (h *BlogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetCategories(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Blog categories", resp)
}

func (h *BlogHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBlogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.CreatePost(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Blog post created", resp)
}

func (h *BlogHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid post id", nil)
		return
	}

	resp, err := h.service.GetPost(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Blog post", resp)
}

func (h *BlogHandler) GetPostBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		utils.ResponseBadRequest(w, "Invalid post slug", nil)
		return
	}

	resp, err := h.service.GetPostBySlug(r.Context(), slug)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Blog post", resp)
}

func (h *BlogHandler) GetPosts(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetPosts(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Blog posts", resp)
}

func (h *BlogHandler) GetPublishedPosts(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseInt(r.URL.Query().Get("limit"), publicPostLimit)
	if limit < 1 || limit > 100 {
		limit = publicPostLimit
	}

	resp, err := h.service.GetPublishedPosts(r.Context(), limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Blog posts", resp)
}

func (h *BlogHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid post id", nil)
		return
	}

	var req request.UpdateBlogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.UpdatePost(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Blog post updated", resp)
}

func (h *BlogHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid post id", nil)
		return
	}

	if err := h.service.DeletePost(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Blog post deleted", nil)
}
