package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"artfolio/internal/lib/logger/sl"
	"artfolio/internal/storage"
	"artfolio/internal/storage/imagestore"
	"artfolio/internal/transport/http/dto"
)

var ErrFetchFailed = errors.New("failed to fetch remote image")

// MediaService validates images and hands them to the image store.
type MediaService struct {
	log     *slog.Logger
	store   imagestore.Store
	client  *http.Client
	maxSize int64
}

func NewMediaService(log *slog.Logger, store imagestore.Store, maxSize int64) *MediaService {
	return &MediaService{
		log:     log,
		store:   store,
		client:  &http.Client{Timeout: 30 * time.Second},
		maxSize: maxSize,
	}
}

// UploadImage stores an uploaded image. size is the declared size, -1 when unknown.
func (s *MediaService) UploadImage(ctx context.Context, r io.Reader, size int64) (dto.ImageUploadResponse, error) {
	const op = "media_service.UploadImage"

	log := s.log.With(
		slog.String("op", op),
		slog.Int64("size", size),
	)

	log.Info("upload image")

	if size > s.maxSize {
		log.Warn("file too large")
		return dto.ImageUploadResponse{}, fmt.Errorf("%s: %w", op, storage.ErrFileTooLarge)
	}

	res, err := s.ingest(ctx, r)
	if err != nil {
		log.Warn("failed to store image", sl.Err(err))
		return dto.ImageUploadResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("image stored", slog.String("url", res.URL))

	return res, nil
}

// ImportFromURL downloads a remote image and stores a copy, returning its new URL.
func (s *MediaService) ImportFromURL(ctx context.Context, url string) (dto.ImageUploadResponse, error) {
	const op = "media_service.ImportFromURL"

	log := s.log.With(
		slog.String("op", op),
		slog.String("source", url),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return dto.ImageUploadResponse{}, fmt.Errorf("%s: %w: %v", op, ErrFetchFailed, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		log.Warn("download failed", sl.Err(err))
		return dto.ImageUploadResponse{}, fmt.Errorf("%s: %w: %v", op, ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn("unexpected status", slog.Int("status", resp.StatusCode))
		return dto.ImageUploadResponse{}, fmt.Errorf("%s: %w: status %d", op, ErrFetchFailed, resp.StatusCode)
	}
	if resp.ContentLength > s.maxSize {
		return dto.ImageUploadResponse{}, fmt.Errorf("%s: %w", op, storage.ErrFileTooLarge)
	}

	res, err := s.ingest(ctx, resp.Body)
	if err != nil {
		log.Warn("failed to store image", sl.Err(err))
		return dto.ImageUploadResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("remote image copied", slog.String("url", res.URL))

	return res, nil
}

func (s *MediaService) DeleteImage(ctx context.Context, url string) error {
	const op = "media_service.DeleteImage"

	if err := s.store.Delete(ctx, url); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ingest reads at most maxSize bytes, sniffs the content type and stores the image.
func (s *MediaService) ingest(ctx context.Context, r io.Reader) (dto.ImageUploadResponse, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.maxSize+1))
	if err != nil {
		return dto.ImageUploadResponse{}, err
	}
	if int64(len(data)) > s.maxSize {
		return dto.ImageUploadResponse{}, storage.ErrFileTooLarge
	}

	contentType := http.DetectContentType(data)
	if _, ok := imagestore.Extension(contentType); !ok {
		return dto.ImageUploadResponse{}, fmt.Errorf("%s: %w", contentType, storage.ErrInvalidFileType)
	}

	url, err := s.store.Store(ctx, bytes.NewReader(data), contentType)
	if err != nil {
		return dto.ImageUploadResponse{}, err
	}

	return dto.ImageUploadResponse{
		URL:         url,
		ContentType: contentType,
		Size:        int64(len(data)),
	}, nil
}
