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

// TaxonomyService owns gallery categories and the tag vocabulary shared by artworks and posts.
type TaxonomyService struct {
	log        *slog.Logger
	categories repository.CategoryRepository
	tags       repository.TagRepository
}

func NewTaxonomyService(log *slog.Logger, categories repository.CategoryRepository, tags repository.TagRepository) *TaxonomyService {
	return &TaxonomyService{
		log:        log,
		categories: categories,
		tags:       tags,
	}
}

func (s *TaxonomyService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (models.GalleryCategory, error) {
	const op = "taxonomy_service.CreateCategory"

	log := s.log.With(
		slog.String("op", op),
		slog.String("name", req.Name),
	)

	log.Info("creating category")

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.GalleryCategory{}, fmt.Errorf("%s: name is required: %w", op, models.ErrInvalidInput)
	}

	categorySlug := req.Slug
	if categorySlug == "" {
		var err error
		categorySlug, err = slug.Derive(ctx, name, "category", models.CategorySlugLength, s.categories.CategorySlugExists)
		if err != nil {
			log.Error("failed to derive slug", sl.Err(err))
			return models.GalleryCategory{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	c, err := s.categories.CreateCategory(ctx, models.GalleryCategory{
		Name:                name,
		Slug:                categorySlug,
		RepresentativeImage: req.RepresentativeImage,
	})
	if err != nil {
		log.Warn("failed to create category", sl.Err(err))
		return models.GalleryCategory{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("category created", slog.String("id", c.ID.String()), slog.String("slug", c.Slug))

	return c, nil
}

// UpdateCategory applies the present fields. The slug only changes when given explicitly.
func (s *TaxonomyService) UpdateCategory(ctx context.Context, id uuid.UUID, req dto.UpdateCategoryRequest) (models.GalleryCategory, error) {
	const op = "taxonomy_service.UpdateCategory"

	log := s.log.With(
		slog.String("op", op),
		slog.String("category_id", id.String()),
	)

	c, err := s.categories.CategoryByID(ctx, id)
	if err != nil {
		return models.GalleryCategory{}, fmt.Errorf("%s: %w", op, err)
	}

	if req.Name != nil {
		c.Name = strings.TrimSpace(*req.Name)
		if c.Name == "" {
			return models.GalleryCategory{}, fmt.Errorf("%s: name is required: %w", op, models.ErrInvalidInput)
		}
	}
	if req.Slug != nil {
		c.Slug = *req.Slug
	}
	if req.RepresentativeImage != nil {
		c.RepresentativeImage = req.RepresentativeImage
		if *req.RepresentativeImage == "" {
			c.RepresentativeImage = nil
		}
	}

	if err := s.categories.UpdateCategory(ctx, c); err != nil {
		log.Warn("failed to update category", sl.Err(err))
		return models.GalleryCategory{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("category updated")

	return c, nil
}

// DeleteCategory fails with storage.ErrReferentialIntegrity while artworks still use it.
func (s *TaxonomyService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	const op = "taxonomy_service.DeleteCategory"

	log := s.log.With(
		slog.String("op", op),
		slog.String("category_id", id.String()),
	)

	if err := s.categories.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, storage.ErrReferentialIntegrity) {
			log.Warn("category still has artworks")
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("category deleted")

	return nil
}

func (s *TaxonomyService) GetCategoryBySlug(ctx context.Context, categorySlug string) (models.GalleryCategory, error) {
	const op = "taxonomy_service.GetCategoryBySlug"

	c, err := s.categories.CategoryBySlug(ctx, categorySlug)
	if err != nil {
		return models.GalleryCategory{}, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

func (s *TaxonomyService) ListCategories(ctx context.Context) ([]models.GalleryCategory, error) {
	const op = "taxonomy_service.ListCategories"

	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return categories, nil
}

// EnsureTags returns the ids of the named tags, creating the missing ones.
func (s *TaxonomyService) EnsureTags(ctx context.Context, names []string) ([]uuid.UUID, error) {
	const op = "taxonomy_service.EnsureTags"

	log := s.log.With(slog.String("op", op))

	names = CleanTagNames(names)
	if len(names) == 0 {
		return nil, nil
	}

	existing, err := s.tags.TagsByNames(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ids := make([]uuid.UUID, 0, len(names))
	for _, name := range names {
		if tag, ok := existing[name]; ok {
			ids = append(ids, tag.ID)
			continue
		}

		tag, err := s.createTag(ctx, name)
		if err != nil {
			log.Error("failed to create tag", slog.String("name", name), sl.Err(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		log.Debug("tag created", slog.String("name", name), slog.String("slug", tag.Slug))
		ids = append(ids, tag.ID)
	}

	return ids, nil
}

func (s *TaxonomyService) createTag(ctx context.Context, name string) (models.Tag, error) {
	tagSlug, err := slug.Derive(ctx, name, "tag", models.TagSlugLength, s.tags.TagSlugExists)
	if err != nil {
		return models.Tag{}, err
	}

	tag, err := s.tags.CreateTag(ctx, name, tagSlug)
	if errors.Is(err, storage.ErrDuplicateName) {
		// created concurrently
		found, lookupErr := s.tags.TagsByNames(ctx, []string{name})
		if lookupErr != nil {
			return models.Tag{}, lookupErr
		}
		if t, ok := found[name]; ok {
			return t, nil
		}
	}

	return tag, err
}

// TagEntity attaches the named tags to an artwork or a post.
// With replace set the entity ends up with exactly these tags.
func (s *TaxonomyService) TagEntity(ctx context.Context, kind models.TagKind, id uuid.UUID, names []string, replace bool) error {
	const op = "taxonomy_service.TagEntity"

	ids, err := s.EnsureTags(ctx, names)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if len(ids) == 0 && !replace {
		return nil
	}

	if err := s.tags.LinkTags(ctx, kind, id, ids, replace); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("tags linked",
		slog.String("op", op),
		slog.String("kind", string(kind)),
		slog.String("id", id.String()),
		slog.Int("count", len(ids)),
	)

	return nil
}

// ListTags lists the tags in use by artworks or posts with their usage counts.
func (s *TaxonomyService) ListTags(ctx context.Context, kind models.TagKind) ([]models.Tag, error) {
	const op = "taxonomy_service.ListTags"

	tags, err := s.tags.ListTags(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tags, nil
}

// CleanTagNames trims names, drops empty ones and removes duplicates keeping the first occurrence.
func CleanTagNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}

	return out
}
