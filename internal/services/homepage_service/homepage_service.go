package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"artfolio/internal/domain/models"
	"artfolio/internal/lib/logger/sl"
	"artfolio/internal/repository"
	"artfolio/internal/transport/http/dto"
)

// HomepageService manages the hero carousel, featured slots and social links,
// and assembles the public homepage.
type HomepageService struct {
	log    *slog.Logger
	repo   repository.HomepageRepository
	social repository.SocialLinkRepository
}

func NewHomepageService(log *slog.Logger, repo repository.HomepageRepository, social repository.SocialLinkRepository) *HomepageService {
	return &HomepageService{
		log:    log,
		repo:   repo,
		social: social,
	}
}

// GetHomepageContent returns the active hero slides and up to models.MaxFeaturedOnHomepage
// featured artworks. Featured rows whose artwork is gone are skipped.
func (s *HomepageService) GetHomepageContent(ctx context.Context) (models.HomepageContent, error) {
	const op = "homepage_service.GetHomepageContent"

	log := s.log.With(slog.String("op", op))

	slides, err := s.repo.ListHeroSlides(ctx, true)
	if err != nil {
		log.Error("failed to load hero slides", sl.Err(err))
		return models.HomepageContent{}, fmt.Errorf("%s: %w", op, err)
	}

	featured, err := s.repo.ListFeatured(ctx, true, models.MaxFeaturedOnHomepage)
	if err != nil {
		log.Error("failed to load featured artworks", sl.Err(err))
		return models.HomepageContent{}, fmt.Errorf("%s: %w", op, err)
	}

	artworks := make([]models.Artwork, 0, len(featured))
	for _, f := range featured {
		if f.Artwork == nil {
			log.Warn("featured row without artwork", slog.String("featured_id", f.ID.String()))
			continue
		}
		artworks = append(artworks, *f.Artwork)
	}

	return models.HomepageContent{
		HeroSlides:       slides,
		FeaturedArtworks: artworks,
	}, nil
}

func (s *HomepageService) CreateHeroSlide(ctx context.Context, req dto.CreateHeroSlideRequest) (models.HeroSlide, error) {
	const op = "homepage_service.CreateHeroSlide"

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return models.HeroSlide{}, fmt.Errorf("%s: title is required: %w", op, models.ErrInvalidInput)
	}
	if req.Order < 0 {
		return models.HeroSlide{}, fmt.Errorf("%s: negative order: %w", op, models.ErrInvalidInput)
	}

	slide, err := s.repo.CreateHeroSlide(ctx, models.HeroSlide{
		Title:    title,
		Image:    req.Image,
		LinkURL:  req.LinkURL,
		Order:    req.Order,
		IsActive: activeOrDefault(req.IsActive),
	})
	if err != nil {
		return models.HeroSlide{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("hero slide created", slog.String("op", op), slog.String("id", slide.ID.String()))

	return slide, nil
}

func (s *HomepageService) UpdateHeroSlide(ctx context.Context, id uuid.UUID, req dto.UpdateHeroSlideRequest) (models.HeroSlide, error) {
	const op = "homepage_service.UpdateHeroSlide"

	slide, err := s.repo.HeroSlideByID(ctx, id)
	if err != nil {
		return models.HeroSlide{}, fmt.Errorf("%s: %w", op, err)
	}

	if req.Title != nil {
		slide.Title = strings.TrimSpace(*req.Title)
		if slide.Title == "" {
			return models.HeroSlide{}, fmt.Errorf("%s: title is required: %w", op, models.ErrInvalidInput)
		}
	}
	if req.Image != nil {
		slide.Image = *req.Image
	}
	if req.LinkURL != nil {
		slide.LinkURL = req.LinkURL
		if *req.LinkURL == "" {
			slide.LinkURL = nil
		}
	}
	if req.Order != nil {
		if *req.Order < 0 {
			return models.HeroSlide{}, fmt.Errorf("%s: negative order: %w", op, models.ErrInvalidInput)
		}
		slide.Order = *req.Order
	}
	if req.IsActive != nil {
		slide.IsActive = *req.IsActive
	}

	slide, err = s.repo.UpdateHeroSlide(ctx, slide)
	if err != nil {
		return models.HeroSlide{}, fmt.Errorf("%s: %w", op, err)
	}

	return slide, nil
}

func (s *HomepageService) DeleteHeroSlide(ctx context.Context, id uuid.UUID) error {
	const op = "homepage_service.DeleteHeroSlide"

	if err := s.repo.DeleteHeroSlide(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ListHeroSlides lists every slide, inactive ones included.
func (s *HomepageService) ListHeroSlides(ctx context.Context) ([]models.HeroSlide, error) {
	const op = "homepage_service.ListHeroSlides"

	slides, err := s.repo.ListHeroSlides(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return slides, nil
}

func (s *HomepageService) CreateFeatured(ctx context.Context, req dto.CreateFeaturedRequest) (models.FeaturedHomepageArtwork, error) {
	const op = "homepage_service.CreateFeatured"

	if req.Order < 0 {
		return models.FeaturedHomepageArtwork{}, fmt.Errorf("%s: negative order: %w", op, models.ErrInvalidInput)
	}

	f, err := s.repo.CreateFeatured(ctx, models.FeaturedHomepageArtwork{
		ArtworkID: req.ArtworkID,
		Order:     req.Order,
		IsActive:  activeOrDefault(req.IsActive),
	})
	if err != nil {
		return models.FeaturedHomepageArtwork{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("artwork featured",
		slog.String("op", op),
		slog.String("id", f.ID.String()),
		slog.String("artwork_id", f.ArtworkID.String()),
	)

	return f, nil
}

func (s *HomepageService) UpdateFeatured(ctx context.Context, id uuid.UUID, req dto.UpdateFeaturedRequest) (models.FeaturedHomepageArtwork, error) {
	const op = "homepage_service.UpdateFeatured"

	f, err := s.repo.FeaturedByID(ctx, id)
	if err != nil {
		return models.FeaturedHomepageArtwork{}, fmt.Errorf("%s: %w", op, err)
	}

	if req.ArtworkID != nil {
		f.ArtworkID = *req.ArtworkID
	}
	if req.Order != nil {
		if *req.Order < 0 {
			return models.FeaturedHomepageArtwork{}, fmt.Errorf("%s: negative order: %w", op, models.ErrInvalidInput)
		}
		f.Order = *req.Order
	}
	if req.IsActive != nil {
		f.IsActive = *req.IsActive
	}

	f, err = s.repo.UpdateFeatured(ctx, f)
	if err != nil {
		return models.FeaturedHomepageArtwork{}, fmt.Errorf("%s: %w", op, err)
	}

	return f, nil
}

func (s *HomepageService) DeleteFeatured(ctx context.Context, id uuid.UUID) error {
	const op = "homepage_service.DeleteFeatured"

	if err := s.repo.DeleteFeatured(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ListFeatured lists every featured row with its artwork, inactive ones included.
func (s *HomepageService) ListFeatured(ctx context.Context) ([]models.FeaturedHomepageArtwork, error) {
	const op = "homepage_service.ListFeatured"

	featured, err := s.repo.ListFeatured(ctx, false, 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return featured, nil
}

func (s *HomepageService) CreateSocialLink(ctx context.Context, req dto.CreateSocialLinkRequest) (models.SocialLink, error) {
	const op = "homepage_service.CreateSocialLink"

	platform := models.Platform(req.Platform)
	if !platform.Valid() {
		return models.SocialLink{}, fmt.Errorf("%s: unknown platform %q: %w", op, req.Platform, models.ErrInvalidInput)
	}
	if req.Order < 0 {
		return models.SocialLink{}, fmt.Errorf("%s: negative order: %w", op, models.ErrInvalidInput)
	}

	link, err := s.social.CreateSocialLink(ctx, models.SocialLink{
		Platform: platform,
		URL:      req.URL,
		Icon:     req.Icon,
		Order:    req.Order,
		IsActive: activeOrDefault(req.IsActive),
	})
	if err != nil {
		return models.SocialLink{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("social link created", slog.String("op", op), slog.String("platform", req.Platform))

	return link, nil
}

func (s *HomepageService) UpdateSocialLink(ctx context.Context, id uuid.UUID, req dto.UpdateSocialLinkRequest) (models.SocialLink, error) {
	const op = "homepage_service.UpdateSocialLink"

	link, err := s.social.SocialLinkByID(ctx, id)
	if err != nil {
		return models.SocialLink{}, fmt.Errorf("%s: %w", op, err)
	}

	if req.Platform != nil {
		link.Platform = models.Platform(*req.Platform)
		if !link.Platform.Valid() {
			return models.SocialLink{}, fmt.Errorf("%s: unknown platform %q: %w", op, *req.Platform, models.ErrInvalidInput)
		}
	}
	if req.URL != nil {
		link.URL = *req.URL
	}
	if req.Icon != nil {
		link.Icon = *req.Icon
	}
	if req.Order != nil {
		if *req.Order < 0 {
			return models.SocialLink{}, fmt.Errorf("%s: negative order: %w", op, models.ErrInvalidInput)
		}
		link.Order = *req.Order
	}
	if req.IsActive != nil {
		link.IsActive = *req.IsActive
	}

	link, err = s.social.UpdateSocialLink(ctx, link)
	if err != nil {
		return models.SocialLink{}, fmt.Errorf("%s: %w", op, err)
	}

	return link, nil
}

func (s *HomepageService) DeleteSocialLink(ctx context.Context, id uuid.UUID) error {
	const op = "homepage_service.DeleteSocialLink"

	if err := s.social.DeleteSocialLink(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ListSocialLinks returns active links for visitors, or every link when all is set.
func (s *HomepageService) ListSocialLinks(ctx context.Context, all bool) ([]models.SocialLink, error) {
	const op = "homepage_service.ListSocialLinks"

	links, err := s.social.ListSocialLinks(ctx, !all)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return links, nil
}

// new rows are active unless stated otherwise
func activeOrDefault(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}
