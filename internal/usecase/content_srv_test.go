package usecase

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"coffee-house/internal/data/repository/demo"
	"coffee-house/internal/dto/request"
	"coffee-house/pkg/utils"

	"go.uber.org/zap"
)

func newContentFixture(t *testing.T) ContentService {
	t.Helper()
	repo := demo.NewSeededRepository(zap.NewNop())
	config := &utils.Config{
		App: utils.AppConfig{UploadDir: t.TempDir()},
	}
	return NewContentService(repo, config, zap.NewNop())
}

func TestGetPublicContent(t *testing.T) {
	service := newContentFixture(t)

	resp, err := service.GetPublicContent(context.Background())
	if err != nil {
		t.Fatalf("GetPublicContent: %v", err)
	}

	if len(resp.Menu) == 0 {
		t.Error("menu is empty")
	}
	if len(resp.Events) == 0 {
		t.Error("events are empty")
	}
	if len(resp.Posts) == 0 {
		t.Error("posts are empty")
	}

	for _, event := range resp.Events {
		if !event.IsPublished {
			t.Errorf("unpublished event %q leaked into public content", event.Title)
		}
	}
	for _, post := range resp.Posts {
		if !post.IsPublished {
			t.Errorf("draft post %q leaked into public content", post.Title)
		}
	}
}

func TestUploadImage(t *testing.T) {
	repo := demo.NewRepository(zap.NewNop())
	dir := t.TempDir()
	config := &utils.Config{App: utils.AppConfig{UploadDir: dir}}
	service := NewContentService(repo, config, zap.NewNop())

	payload := base64.StdEncoding.EncodeToString([]byte("fake png bytes"))

	resp, err := service.UploadImage(context.Background(), &request.UploadImageRequest{
		ImageData: "data:image/png;base64," + payload,
		ImageType: "png",
	})
	if err != nil {
		t.Fatalf("UploadImage: %v", err)
	}

	if !strings.HasPrefix(resp.URL, "/uploads/") || !strings.HasSuffix(resp.URL, ".png") {
		t.Errorf("url = %q", resp.URL)
	}

	written, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(resp.URL, "/uploads/")))
	if err != nil {
		t.Fatalf("read uploaded file: %v", err)
	}
	if string(written) != "fake png bytes" {
		t.Errorf("file content = %q", written)
	}
}

func TestUploadImageRejectsOversizedPayload(t *testing.T) {
	repo := demo.NewRepository(zap.NewNop())
	dir := t.TempDir()
	config := &utils.Config{App: utils.AppConfig{UploadDir: dir}}
	service := NewContentService(repo, config, zap.NewNop())

	// just over the cap once decoded
	payload := base64.StdEncoding.EncodeToString(make([]byte, MaxImageBytes+1))

	_, err := service.UploadImage(context.Background(), &request.UploadImageRequest{
		ImageData: payload,
		ImageType: "png",
	})
	if err == nil {
		t.Fatal("oversized image accepted")
	}
	if !strings.Contains(err.Error(), "limit") {
		t.Errorf("err = %v, want a size limit message", err)
	}

	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		t.Fatalf("read upload dir: %v", readErr)
	}
	if len(entries) != 0 {
		t.Errorf("found %d files in upload dir after rejection", len(entries))
	}
}

func TestUploadImageRejectsBadData(t *testing.T) {
	repo := demo.NewRepository(zap.NewNop())
	config := &utils.Config{App: utils.AppConfig{UploadDir: t.TempDir()}}
	service := NewContentService(repo, config, zap.NewNop())

	_, err := service.UploadImage(context.Background(), &request.UploadImageRequest{
		ImageData: "not base64 at all!!!",
		ImageType: "png",
	})
	if err == nil {
		t.Error("invalid base64 accepted")
	}

	_, err = service.UploadImage(context.Background(), &request.UploadImageRequest{
		ImageData: base64.StdEncoding.EncodeToString([]byte("data")),
		ImageType: "gif",
	})
	if err == nil {
		t.Error("unsupported image type accepted")
	}
}
