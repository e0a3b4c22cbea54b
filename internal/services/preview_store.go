// internal/services/preview_store.go
package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/webmart/admin-dashboard/internal/config"
)

// PreviewURLPrefix is where staged images are served from. A preview URL under
// this prefix references a local temp file that must be released; anything
// else is a remote image URL the platform already owns.
const PreviewURLPrefix = "/v1/previews/"

var allowedImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// StagedImage is one user-selected image held as a temp file until the draft
// it belongs to is submitted or discarded.
type StagedImage struct {
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	path        string
}

// URL is the local address the dashboard can preview the image at.
func (s *StagedImage) URL() string {
	return PreviewURLPrefix + s.ID
}

// PreviewStore stages uploaded images on disk. Every staged file must be
// released exactly once; Release is idempotent so exit paths can overlap.
type PreviewStore struct {
	dir     string
	maxSize int64

	mu     sync.Mutex
	staged map[string]*StagedImage
}

func NewPreviewStore(cfg config.UploadConfig) (*PreviewStore, error) {
	dir := cfg.PreviewDir
	if dir == "" {
		tempDir, err := os.MkdirTemp("", "dashboard-previews-")
		if err != nil {
			return nil, fmt.Errorf("creating preview dir: %w", err)
		}
		dir = tempDir
	} else if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating preview dir: %w", err)
	}

	return &PreviewStore{
		dir:     dir,
		maxSize: cfg.MaxImageSize,
		staged:  make(map[string]*StagedImage),
	}, nil
}

// Stage validates and writes one uploaded image to the preview area.
func (p *PreviewStore) Stage(file multipart.File, header *multipart.FileHeader) (*StagedImage, error) {
	if p.maxSize > 0 && header.Size > p.maxSize {
		return nil, ErrImageTooLarge
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	allowed := false
	for _, allowedExt := range allowedImageExtensions {
		if ext == allowedExt {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, ErrUnsupportedImageType
	}

	id := uuid.New().String()
	path := filepath.Join(p.dir, id+ext)

	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("staging image: %w", err)
	}
	size, err := io.Copy(dst, file)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("staging image: %w", err)
	}

	image := &StagedImage{
		ID:          id,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        size,
		path:        path,
	}

	p.mu.Lock()
	p.staged[id] = image
	p.mu.Unlock()

	return image, nil
}

// Open returns the staged image and a reader over its content.
func (p *PreviewStore) Open(id string) (*StagedImage, io.ReadCloser, error) {
	p.mu.Lock()
	image, exists := p.staged[id]
	p.mu.Unlock()
	if !exists {
		return nil, nil, ErrPreviewNotFound
	}

	file, err := os.Open(image.path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening staged image: %w", err)
	}
	return image, file, nil
}

// Release deletes the staged file. Unknown IDs are a no-op so callers can
// release on every exit path without tracking what already went.
func (p *PreviewStore) Release(id string) {
	p.mu.Lock()
	image, exists := p.staged[id]
	delete(p.staged, id)
	p.mu.Unlock()
	if !exists {
		return
	}

	if err := os.Remove(image.path); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).WithField("preview_id", id).Warn("Failed to remove staged image")
	}
}

// StagedIDFromURL extracts the staged image ID from a local preview URL.
// Remote image URLs return false.
func StagedIDFromURL(url string) (string, bool) {
	if !strings.HasPrefix(url, PreviewURLPrefix) {
		return "", false
	}
	return strings.TrimPrefix(url, PreviewURLPrefix), true
}
