package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"artfolio/internal/domain/models"
	"artfolio/internal/lib/logger/sl"
	"artfolio/internal/lib/slug"
	"artfolio/internal/repository"
	"artfolio/internal/transport/http/dto"
)

// Tagger links tag names to an entity, creating tags on first use.
type Tagger interface {
	TagEntity(ctx context.Context, kind models.TagKind, id uuid.UUID, names []string, replace bool) error
}

type ArtworkService struct {
	log  *slog.Logger
	repo repository.ArtworkRepository
	tags Tagger
}

func NewArtworkService(log *slog.Logger, repo repository.ArtworkRepository, tags Tagger) *ArtworkService {
	return &ArtworkService{
		log:  log,
		repo: repo,
		tags: tags,
	}
}

func (s *ArtworkService) CreateArtwork(ctx context.Context, req dto.CreateArtworkRequest) (models.Artwork, error) {
	const op = "artwork_service.CreateArtwork"

	log := s.log.With(
		slog.String("op", op),
		slog.String("title", req.Title),
	)

	log.Info("creating artwork")

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return models.Artwork{}, fmt.Errorf("%s: title is required: %w", op, models.ErrInvalidInput)
	}

	artworkSlug := req.Slug
	if artworkSlug == "" {
		var err error
		artworkSlug, err = slug.Derive(ctx, title, "artwork", models.ArtworkSlugLength, s.repo.ArtworkSlugExists)
		if err != nil {
			log.Error("failed to derive slug", sl.Err(err))
			return models.Artwork{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	a, err := s.repo.CreateArtwork(ctx, models.Artwork{
		Title:        title,
		Slug:         artworkSlug,
		PrimaryImage: req.PrimaryImage,
		Description:  req.Description,
		CategoryID:   req.CategoryID,
	})
	if err != nil {
		log.Warn("failed to create artwork", sl.Err(err))
		return models.Artwork{}, fmt.Errorf("%s: %w", op, err)
	}

	if len(req.Tags) > 0 {
		if err := s.tags.TagEntity(ctx, models.TagKindArtwork, a.ID, req.Tags, true); err != nil {
			log.Error("failed to tag artwork", sl.Err(err))
			return models.Artwork{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	log.Info("artwork created", slog.String("id", a.ID.String()), slog.String("slug", a.Slug))

	return s.GetArtworkByID(ctx, a.ID)
}

// UpdateArtwork applies the present fields. The slug is never re-derived from a new title.
func (s *ArtworkService) UpdateArtwork(ctx context.Context, id uuid.UUID, req dto.UpdateArtworkRequest) (models.Artwork, error) {
	const op = "artwork_service.UpdateArtwork"

	log := s.log.With(
		slog.String("op", op),
		slog.String("artwork_id", id.String()),
	)

	a, err := s.repo.ArtworkByID(ctx, id)
	if err != nil {
		return models.Artwork{}, fmt.Errorf("%s: %w", op, err)
	}

	if req.Title != nil {
		a.Title = strings.TrimSpace(*req.Title)
		if a.Title == "" {
			return models.Artwork{}, fmt.Errorf("%s: title is required: %w", op, models.ErrInvalidInput)
		}
	}
	if req.Slug != nil {
		a.Slug = *req.Slug
	}
	if req.PrimaryImage != nil {
		a.PrimaryImage = *req.PrimaryImage
	}
	if req.Description != nil {
		a.Description = *req.Description
	}
	if req.CategoryID != nil {
		a.CategoryID = *req.CategoryID
	}

	if _, err := s.repo.UpdateArtwork(ctx, a); err != nil {
		log.Warn("failed to update artwork", sl.Err(err))
		return models.Artwork{}, fmt.Errorf("%s: %w", op, err)
	}

	if req.Tags != nil {
		if err := s.tags.TagEntity(ctx, models.TagKindArtwork, id, *req.Tags, true); err != nil {
			log.Error("failed to replace tags", sl.Err(err))
			return models.Artwork{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	log.Info("artwork updated")

	return s.GetArtworkByID(ctx, id)
}

// DeleteArtwork removes the artwork with its additional images and featured slots.
// Import items that produced it keep their status and lose the back-reference.
func (s *ArtworkService) DeleteArtwork(ctx context.Context, id uuid.UUID) error {
	const op = "artwork_service.DeleteArtwork"

	if err := s.repo.DeleteArtwork(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("artwork deleted", slog.String("op", op), slog.String("artwork_id", id.String()))

	return nil
}

func (s *ArtworkService) GetArtworkByID(ctx context.Context, id uuid.UUID) (models.Artwork, error) {
	const op = "artwork_service.GetArtworkByID"

	a, err := s.repo.ArtworkByID(ctx, id)
	if err != nil {
		return models.Artwork{}, fmt.Errorf("%s: %w", op, err)
	}

	return a, nil
}

func (s *ArtworkService) GetArtworkBySlug(ctx context.Context, artworkSlug string) (models.Artwork, error) {
	const op = "artwork_service.GetArtworkBySlug"

	a, err := s.repo.ArtworkBySlug(ctx, artworkSlug)
	if err != nil {
		return models.Artwork{}, fmt.Errorf("%s: %w", op, err)
	}

	return a, nil
}

// ListArtworks returns a page of artworks, newest first, and the total count.
func (s *ArtworkService) ListArtworks(ctx context.Context, filter models.ArtworkFilter, page, perPage int) ([]models.Artwork, int, error) {
	const op = "artwork_service.ListArtworks"

	artworks, total, err := s.repo.ListArtworks(ctx, filter, page, perPage)
	if err != nil {
		s.log.Error("failed to list artworks", slog.String("op", op), sl.Err(err))
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return artworks, total, nil
}

// AddImage fails with storage.ErrCapacityExceeded once the artwork has
// models.MaxAdditionalImages additional images.
func (s *ArtworkService) AddImage(ctx context.Context, artworkID uuid.UUID, req dto.AddArtworkImageRequest) (models.AdditionalArtworkImage, error) {
	const op = "artwork_service.AddImage"

	log := s.log.With(
		slog.String("op", op),
		slog.String("artwork_id", artworkID.String()),
	)

	if req.Order < 0 {
		return models.AdditionalArtworkImage{}, fmt.Errorf("%s: negative order: %w", op, models.ErrInvalidInput)
	}

	img, err := s.repo.AddImage(ctx, models.AdditionalArtworkImage{
		ArtworkID: artworkID,
		Image:     req.Image,
		Caption:   req.Caption,
		Order:     req.Order,
	})
	if err != nil {
		log.Warn("failed to add image", sl.Err(err))
		return models.AdditionalArtworkImage{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("image added", slog.String("image_id", img.ID.String()))

	return img, nil
}

func (s *ArtworkService) RemoveImage(ctx context.Context, artworkID, imageID uuid.UUID) error {
	const op = "artwork_service.RemoveImage"

	if _, err := s.repo.RemoveImage(ctx, artworkID, imageID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("image removed",
		slog.String("op", op),
		slog.String("artwork_id", artworkID.String()),
		slog.String("image_id", imageID.String()),
	)

	return nil
}

func (s *ArtworkService) ListImages(ctx context.Context, artworkID uuid.UUID) ([]models.AdditionalArtworkImage, error) {
	const op = "artwork_service.ListImages"

	images, err := s.repo.ListImages(ctx, artworkID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return images, nil
}

// TagArtwork adds tags to the artwork, keeping the existing ones.
func (s *ArtworkService) TagArtwork(ctx context.Context, id uuid.UUID, names []string) (models.Artwork, error) {
	const op = "artwork_service.TagArtwork"

	if err := s.tags.TagEntity(ctx, models.TagKindArtwork, id, names, false); err != nil {
		return models.Artwork{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetArtworkByID(ctx, id)
}
