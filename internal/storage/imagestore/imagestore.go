// Package imagestore persists uploaded images and hands back the stable URL they are served from.
package imagestore

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"artfolio/internal/config"
)

// Store is the image storage collaborator. Delete ignores URLs it did not issue.
type Store interface {
	Store(ctx context.Context, r io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, url string) error
}

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Extension returns the file extension used for a supported image content type.
func Extension(contentType string) (string, bool) {
	ext, ok := extensions[contentType]
	return ext, ok
}

// objectKey builds yyyy/mm/dd/<uuid><ext>.
func objectKey(now time.Time, contentType string) string {
	ext, ok := Extension(contentType)
	if !ok {
		ext = ".bin"
	}
	return fmt.Sprintf("%s/%s%s", now.Format("2006/01/02"), uuid.NewString(), ext)
}

// keyFromURL strips baseURL from url. ok is false for URLs under another prefix.
func keyFromURL(baseURL, url string) (string, bool) {
	prefix := strings.TrimRight(baseURL, "/") + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}

	key := strings.TrimPrefix(url, prefix)
	if key == "" || strings.Contains(key, "..") {
		return "", false
	}

	return key, true
}

func joinURL(baseURL, key string) string {
	return strings.TrimRight(baseURL, "/") + "/" + key
}

// New picks the backend configured in cfg.ImageStorage.Backend.
func New(cfg *config.Config) (Store, error) {
	const op = "imagestore.New"

	switch cfg.ImageStorage.Backend {
	case "", "local":
		s, err := NewLocalStore(cfg.ImageStorage.BaseDir, cfg.ImageStorage.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return s, nil
	case "oss":
		return NewOSSStore(cfg.OSS), nil
	default:
		return nil, fmt.Errorf("%s: unknown backend %q", op, cfg.ImageStorage.Backend)
	}
}
