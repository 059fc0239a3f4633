package imagestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"artfolio/internal/storage"
)

// LocalStore writes images under baseDir and serves them from baseURL.
type LocalStore struct {
	baseDir string // e.g. "./uploads"
	baseURL string // e.g. "http://localhost:8080/uploads"
	now     func() time.Time
}

func NewLocalStore(baseDir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, err
	}

	return &LocalStore{
		baseDir: baseDir,
		baseURL: baseURL,
		now:     time.Now,
	}, nil
}

func (s *LocalStore) Store(ctx context.Context, r io.Reader, contentType string) (string, error) {
	const op = "imagestore.LocalStore.Store"

	if err := ctx.Err(); err != nil {
		return "", err
	}

	key := objectKey(s.now().UTC(), contentType)
	filePath := filepath.Join(s.baseDir, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return "", fmt.Errorf("%s: failed to create directories: %w", op, err)
	}

	dst, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("%s: failed to create destination file: %w", op, err)
	}
	defer dst.Close()

	done := make(chan struct{})
	var copyErr error

	go func() {
		_, copyErr = io.Copy(dst, r)
		close(done)
	}()

	select {
	case <-done:
		if copyErr != nil {
			_ = os.Remove(filePath)
			return "", fmt.Errorf("%s: failed to copy file: %w", op, copyErr)
		}
	case <-ctx.Done():
		<-done
		_ = os.Remove(filePath)
		return "", ctx.Err()
	}

	return joinURL(s.baseURL, key), nil
}

func (s *LocalStore) Delete(ctx context.Context, url string) error {
	const op = "imagestore.LocalStore.Delete"

	key, ok := keyFromURL(s.baseURL, url)
	if !ok {
		return nil
	}

	err := os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(key)))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", op, storage.ErrFileNotFound)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// BaseDir is the directory served as static files.
func (s *LocalStore) BaseDir() string {
	return s.baseDir
}
