package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"coffee-house/internal/data/repository"
	"coffee-house/internal/dto/request"
	"coffee-house/internal/dto/response"
	"coffee-house/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// recentPostLimit caps the storefront payload; the full archive lives at
// the blog endpoints.
const recentPostLimit = 3

// MaxImageBytes is the upload ceiling for a decoded image
const MaxImageBytes = 5 << 20

type ContentService interface {
	GetPublicContent(ctx context.Context) (*response.PublicContentResponse, error)
	UploadImage(ctx context.Context, req *request.UploadImageRequest) (*response.UploadImageResponse, error)
}

type contentService struct {
	menu   MenuService
	events EventService
	blog   BlogService
	config *utils.Config
	log    *zap.Logger
}

func NewContentService(repo *repository.Repository, config *utils.Config, log *zap.Logger) ContentService {
	return &contentService{
		menu:   NewMenuService(repo, log),
		events: NewEventService(repo, log),
		blog:   NewBlogService(repo, log),
		config: config,
		log:    log.With(zap.String("service", "content")),
	}
}

// GetPublicContent assembles the whole storefront in one payload: the
// grouped menu, published events and the most recent posts.
func (s *contentService) GetPublicContent(ctx context.Context) (*response.PublicContentResponse, error) {
	menu, err := s.menu.GetPublicMenu(ctx)
	if err != nil {
		return nil, err
	}

	events, err := s.events.GetPublishedEvents(ctx)
	if err != nil {
		return nil, err
	}

	posts, err := s.blog.GetPublishedPosts(ctx, recentPostLimit)
	if err != nil {
		return nil, err
	}

	return &response.PublicContentResponse{
		Menu:   menu,
		Events: events,
		Posts:  posts,
	}, nil
}

func (s *contentService) UploadImage(ctx context.Context, req *request.UploadImageRequest) (*response.UploadImageResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	data := req.ImageData
	if idx := strings.Index(data, ","); idx != -1 && strings.HasPrefix(data, "data:") {
		data = data[idx+1:]
	}

	// reject oversized payloads before decoding; base64 inflates by 4/3
	if len(data) > MaxImageBytes/3*4+4 {
		return nil, fmt.Errorf("image exceeds the %d MB limit", MaxImageBytes>>20)
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("invalid image data")
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("invalid image data")
	}
	if len(raw) > MaxImageBytes {
		return nil, fmt.Errorf("image exceeds the %d MB limit", MaxImageBytes>>20)
	}

	ext := req.ImageType
	if ext == "jpg" {
		ext = "jpeg"
	}

	if err := os.MkdirAll(s.config.App.UploadDir, 0o755); err != nil {
		s.log.Error("Failed to prepare upload directory", zap.Error(err), zap.String("dir", s.config.App.UploadDir))
		return nil, fmt.Errorf("failed to store image")
	}

	name := fmt.Sprintf("%s.%s", uuid.New().String(), ext)
	path := filepath.Join(s.config.App.UploadDir, name)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		s.log.Error("Failed to write image", zap.Error(err), zap.String("path", path))
		return nil, fmt.Errorf("failed to store image")
	}

	s.log.Info("Image uploaded", zap.String("file", name), zap.Int("bytes", len(raw)))

	return &response.UploadImageResponse{URL: "/uploads/" + name}, nil
}
