package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"artfolio/internal/domain/models"
	"artfolio/internal/lib/logger/sl"
	"artfolio/internal/lib/slug"
	"artfolio/internal/repository"
	"artfolio/internal/storage"
	"artfolio/internal/transport/http/dto"
)

// ImageImporter copies remote images into the image store.
type ImageImporter interface {
	ImportFromURL(ctx context.Context, url string) (dto.ImageUploadResponse, error)
	DeleteImage(ctx context.Context, url string) error
}

type ArtworkReader interface {
	ArtworkSlugExists(ctx context.Context, slug string) (bool, error)
	ArtworkByID(ctx context.Context, id uuid.UUID) (models.Artwork, error)
}

type Tagger interface {
	TagEntity(ctx context.Context, kind models.TagKind, id uuid.UUID, names []string, replace bool) error
}

// ImportService stages externally imported posts and turns reviewed ones into artworks.
type ImportService struct {
	log      *slog.Logger
	repo     repository.ImportRepository
	artworks ArtworkReader
	images   ImageImporter
	tags     Tagger
}

func NewImportService(
	log *slog.Logger,
	repo repository.ImportRepository,
	artworks ArtworkReader,
	images ImageImporter,
	tags Tagger,
) *ImportService {
	return &ImportService{
		log:      log,
		repo:     repo,
		artworks: artworks,
		images:   images,
		tags:     tags,
	}
}

// Stage records an external post for review. Staging the same post twice
// fails with storage.ErrDuplicateExternalID.
func (s *ImportService) Stage(ctx context.Context, req dto.StageItemRequest) (models.InstagramImportedItem, error) {
	const op = "import_service.Stage"

	externalID := strings.TrimSpace(req.ExternalPostID)
	if externalID == "" {
		return models.InstagramImportedItem{}, fmt.Errorf("%s: external post id is required: %w", op, models.ErrInvalidInput)
	}

	item, err := s.repo.StageItem(ctx, models.InstagramImportedItem{
		ExternalPostID: externalID,
		ImageURL:       req.ImageURL,
		Caption:        req.Caption,
	})
	if err != nil {
		return models.InstagramImportedItem{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("item staged",
		slog.String("op", op),
		slog.String("id", item.ID.String()),
		slog.String("external_post_id", externalID),
	)

	return item, nil
}

// StageBatch stages every item and reports already known posts as skipped,
// so an import run can be repeated safely.
func (s *ImportService) StageBatch(ctx context.Context, items []dto.StageItemRequest) (dto.StageBatchResponse, error) {
	const op = "import_service.StageBatch"

	log := s.log.With(slog.String("op", op), slog.Int("count", len(items)))

	res := dto.StageBatchResponse{
		Staged:  make([]models.InstagramImportedItem, 0, len(items)),
		Skipped: make([]string, 0),
	}

	for _, req := range items {
		item, err := s.Stage(ctx, req)
		if err != nil {
			if errors.Is(err, storage.ErrDuplicateExternalID) {
				res.Skipped = append(res.Skipped, req.ExternalPostID)
				continue
			}
			log.Error("batch stopped", slog.String("external_post_id", req.ExternalPostID), sl.Err(err))
			return res, fmt.Errorf("%s: %w", op, err)
		}
		res.Staged = append(res.Staged, item)
	}

	log.Info("batch staged", slog.Int("staged", len(res.Staged)), slog.Int("skipped", len(res.Skipped)))

	return res, nil
}

// Promote creates an artwork from a pending item and marks the item processed.
// Without a primary image in req the external image is copied into the image store first;
// the copy is removed again if the promotion fails.
func (s *ImportService) Promote(ctx context.Context, itemID uuid.UUID, req dto.PromoteRequest) (models.Artwork, error) {
	const op = "import_service.Promote"

	log := s.log.With(
		slog.String("op", op),
		slog.String("item_id", itemID.String()),
	)

	item, err := s.repo.ItemByID(ctx, itemID)
	if err != nil {
		return models.Artwork{}, fmt.Errorf("%s: %w", op, err)
	}
	if item.Status != models.ImportStatusPendingReview {
		log.Warn("item is not pending", slog.String("status", string(item.Status)))
		return models.Artwork{}, fmt.Errorf("%s: item is %s: %w", op, item.Status, storage.ErrInvalidTransition)
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return models.Artwork{}, fmt.Errorf("%s: title is required: %w", op, models.ErrInvalidInput)
	}

	artworkSlug := req.Slug
	if artworkSlug == "" {
		artworkSlug, err = slug.Derive(ctx, title, "artwork", models.ArtworkSlugLength, s.artworks.ArtworkSlugExists)
		if err != nil {
			return models.Artwork{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	description := item.Caption
	if req.Description != nil {
		description = *req.Description
	}

	var image, rehosted string
	if req.PrimaryImage != nil && *req.PrimaryImage != "" {
		image = *req.PrimaryImage
	} else {
		copied, err := s.images.ImportFromURL(ctx, item.ImageURL)
		if err != nil {
			log.Error("failed to copy external image", sl.Err(err))
			return models.Artwork{}, fmt.Errorf("%s: %w", op, err)
		}
		rehosted = copied.URL
		image = copied.URL
	}

	artwork, err := s.repo.Promote(ctx, itemID, models.Artwork{
		Title:        title,
		Slug:         artworkSlug,
		PrimaryImage: image,
		Description:  description,
		CategoryID:   req.CategoryID,
	})
	if err != nil {
		log.Warn("promotion failed", sl.Err(err))
		if rehosted != "" {
			if delErr := s.images.DeleteImage(ctx, rehosted); delErr != nil {
				log.Error("failed to remove copied image", slog.String("url", rehosted), sl.Err(delErr))
			}
		}
		return models.Artwork{}, fmt.Errorf("%s: %w", op, err)
	}

	if len(req.Tags) > 0 {
		// The item is processed at this point; tags can be re-applied with TagArtwork.
		if err := s.tags.TagEntity(ctx, models.TagKindArtwork, artwork.ID, req.Tags, true); err != nil {
			log.Error("artwork created but tagging failed", slog.String("artwork_id", artwork.ID.String()), sl.Err(err))
		}
	}

	log.Info("item promoted", slog.String("artwork_id", artwork.ID.String()))

	created, err := s.artworks.ArtworkByID(ctx, artwork.ID)
	if err != nil {
		return models.Artwork{}, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

// Ignore moves pending items to ignored. Items in any other state are left alone.
func (s *ImportService) Ignore(ctx context.Context, ids []uuid.UUID) (int64, error) {
	const op = "import_service.Ignore"

	n, err := s.repo.Ignore(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("items ignored", slog.String("op", op), slog.Int("requested", len(ids)), slog.Int64("affected", n))

	return n, nil
}

// Reset returns processed and ignored items to review and clears their artwork link.
func (s *ImportService) Reset(ctx context.Context, ids []uuid.UUID) (int64, error) {
	const op = "import_service.Reset"

	n, err := s.repo.Reset(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("items reset", slog.String("op", op), slog.Int("requested", len(ids)), slog.Int64("affected", n))

	return n, nil
}

func (s *ImportService) GetItem(ctx context.Context, id uuid.UUID) (models.InstagramImportedItem, error) {
	const op = "import_service.GetItem"

	item, err := s.repo.ItemByID(ctx, id)
	if err != nil {
		return models.InstagramImportedItem{}, fmt.Errorf("%s: %w", op, err)
	}

	return item, nil
}

// ListItems pages through staged items, newest first. An empty status lists all.
func (s *ImportService) ListItems(ctx context.Context, status models.ImportStatus, page, perPage int) ([]models.InstagramImportedItem, int, error) {
	const op = "import_service.ListItems"

	if status != "" && !status.Valid() {
		return nil, 0, fmt.Errorf("%s: unknown status %q: %w", op, status, models.ErrInvalidInput)
	}

	items, total, err := s.repo.ListItems(ctx, status, page, perPage)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return items, total, nil
}
