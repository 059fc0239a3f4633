package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"artfolio/internal/domain/models"
)

type UserRepository interface {
	SaveUser(ctx context.Context, user models.User) (uuid.UUID, error)
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
	UserByEmail(ctx context.Context, email string) (models.User, error)
	UserByID(ctx context.Context, userID uuid.UUID) (models.User, error)
	TouchLastLogin(ctx context.Context, userID uuid.UUID) error
}

type TokenRepository interface {
	SaveRefreshToken(ctx context.Context, userID, token string, exp time.Duration) error
	GetRefreshToken(ctx context.Context, userID, token string) (bool, error)
	DeleteRefreshToken(ctx context.Context, userID, token string) error
	DeleteAllUserTokens(ctx context.Context, userID string) error
}

type CategoryRepository interface {
	CreateCategory(ctx context.Context, c models.GalleryCategory) (models.GalleryCategory, error)
	UpdateCategory(ctx context.Context, c models.GalleryCategory) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	CategoryByID(ctx context.Context, id uuid.UUID) (models.GalleryCategory, error)
	CategoryBySlug(ctx context.Context, slug string) (models.GalleryCategory, error)
	ListCategories(ctx context.Context) ([]models.GalleryCategory, error)
	CategorySlugExists(ctx context.Context, slug string) (bool, error)
}

type TagRepository interface {
	CreateTag(ctx context.Context, name, slug string) (models.Tag, error)
	TagsByNames(ctx context.Context, names []string) (map[string]models.Tag, error)
	TagSlugExists(ctx context.Context, slug string) (bool, error)
	LinkTags(ctx context.Context, kind models.TagKind, entityID uuid.UUID, tagIDs []uuid.UUID, replace bool) error
	ListTags(ctx context.Context, kind models.TagKind) ([]models.Tag, error)
}

type ArtworkRepository interface {
	CreateArtwork(ctx context.Context, a models.Artwork) (models.Artwork, error)
	UpdateArtwork(ctx context.Context, a models.Artwork) (models.Artwork, error)
	DeleteArtwork(ctx context.Context, id uuid.UUID) error
	ArtworkByID(ctx context.Context, id uuid.UUID) (models.Artwork, error)
	ArtworkBySlug(ctx context.Context, slug string) (models.Artwork, error)
	ListArtworks(ctx context.Context, filter models.ArtworkFilter, page, perPage int) ([]models.Artwork, int, error)
	ArtworkSlugExists(ctx context.Context, slug string) (bool, error)
	AddImage(ctx context.Context, img models.AdditionalArtworkImage) (models.AdditionalArtworkImage, error)
	RemoveImage(ctx context.Context, artworkID, imageID uuid.UUID) (models.AdditionalArtworkImage, error)
	ListImages(ctx context.Context, artworkID uuid.UUID) ([]models.AdditionalArtworkImage, error)
}

type BlogRepository interface {
	SaveBlogPost(ctx context.Context, p models.BlogPost) (models.BlogPost, error)
	UpdateBlogPost(ctx context.Context, p models.BlogPost) (models.BlogPost, error)
	DeleteBlogPost(ctx context.Context, id uuid.UUID) error
	GetBlogPostByID(ctx context.Context, id uuid.UUID) (models.BlogPost, error)
	GetBlogPostBySlug(ctx context.Context, slug string) (models.BlogPost, error)
	GetBlogPosts(ctx context.Context, tagSlug string, page, perPage int) ([]models.BlogPost, int, error)
	BlogSlugExists(ctx context.Context, slug string) (bool, error)
}

type HomepageRepository interface {
	CreateHeroSlide(ctx context.Context, s models.HeroSlide) (models.HeroSlide, error)
	UpdateHeroSlide(ctx context.Context, s models.HeroSlide) (models.HeroSlide, error)
	DeleteHeroSlide(ctx context.Context, id uuid.UUID) error
	HeroSlideByID(ctx context.Context, id uuid.UUID) (models.HeroSlide, error)
	ListHeroSlides(ctx context.Context, activeOnly bool) ([]models.HeroSlide, error)
	CreateFeatured(ctx context.Context, f models.FeaturedHomepageArtwork) (models.FeaturedHomepageArtwork, error)
	UpdateFeatured(ctx context.Context, f models.FeaturedHomepageArtwork) (models.FeaturedHomepageArtwork, error)
	DeleteFeatured(ctx context.Context, id uuid.UUID) error
	FeaturedByID(ctx context.Context, id uuid.UUID) (models.FeaturedHomepageArtwork, error)
	ListFeatured(ctx context.Context, activeOnly bool, limit int) ([]models.FeaturedHomepageArtwork, error)
}

type SocialLinkRepository interface {
	CreateSocialLink(ctx context.Context, l models.SocialLink) (models.SocialLink, error)
	UpdateSocialLink(ctx context.Context, l models.SocialLink) (models.SocialLink, error)
	DeleteSocialLink(ctx context.Context, id uuid.UUID) error
	SocialLinkByID(ctx context.Context, id uuid.UUID) (models.SocialLink, error)
	ListSocialLinks(ctx context.Context, activeOnly bool) ([]models.SocialLink, error)
}

type ImportRepository interface {
	StageItem(ctx context.Context, it models.InstagramImportedItem) (models.InstagramImportedItem, error)
	ItemByID(ctx context.Context, id uuid.UUID) (models.InstagramImportedItem, error)
	ListItems(ctx context.Context, status models.ImportStatus, page, perPage int) ([]models.InstagramImportedItem, int, error)
	Promote(ctx context.Context, itemID uuid.UUID, artwork models.Artwork) (models.Artwork, error)
	Ignore(ctx context.Context, ids []uuid.UUID) (int64, error)
	Reset(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type SubscriberRepository interface {
	CreateSubscriber(ctx context.Context, s models.Subscriber) (models.Subscriber, error)
	DeleteSubscriber(ctx context.Context, id uuid.UUID) error
	Activate(ctx context.Context, confirmationToken uuid.UUID) (models.Subscriber, bool, error)
	Deactivate(ctx context.Context, unsubscribeToken uuid.UUID) (models.Subscriber, error)
	SubscriberByEmail(ctx context.Context, email string) (models.Subscriber, error)
	ListSubscribers(ctx context.Context, active *bool, page, perPage int) ([]models.Subscriber, int, error)
}
