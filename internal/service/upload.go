package service

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/msomdec/inkwell/internal/domain"
)

const (
	maxUploadSize = 10 * 1024 * 1024 // 10MB
)

// UploadService stores uploaded images and hands back the relative path that
// gets persisted on the owning entity.
type UploadService struct {
	files domain.FileStore
	now   func() time.Time
}

// NewUploadService creates a new UploadService.
func NewUploadService(files domain.FileStore) *UploadService {
	return &UploadService{files: files, now: time.Now}
}

// Store validates and saves an uploaded file. The storage key is the original
// filename prefixed with the ingestion timestamp in milliseconds, so repeated
// uploads of the same name never collide. Returns the public relative path.
func (s *UploadService) Store(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	if contentType != "image/jpeg" && contentType != "image/png" {
		return "", fmt.Errorf("%w: only JPEG and PNG images are accepted", domain.ErrInvalidInput)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty upload", domain.ErrInvalidInput)
	}
	if len(data) > maxUploadSize {
		return "", fmt.Errorf("%w: image exceeds 10MB limit", domain.ErrInvalidInput)
	}

	key := fmt.Sprintf("%d-%s", s.now().UnixMilli(), sanitizeFilename(filename))
	if err := s.files.Save(ctx, key, data); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}

	return "/uploads/" + key, nil
}

// Get returns the stored bytes for a previously uploaded file.
func (s *UploadService) Get(ctx context.Context, key string) ([]byte, error) {
	return s.files.Get(ctx, key)
}

// sanitizeFilename strips any directory components and characters that would
// make the key unusable as a flat filename.
func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == ".." || name == "/" || name == "" {
		return "upload"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
