package http_test

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"artfolio/internal/domain/models"
	"artfolio/internal/transport/http/dto"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (models.User, *models.TokenPair, error) {
	args := m.Called(ctx, email, password)
	var r1 *models.TokenPair
	if v := args.Get(1); v != nil {
		r1 = v.(*models.TokenPair)
	}
	return args.Get(0).(models.User), r1, args.Error(2)
}

func (m *MockUserService) Logout(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserService) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, userID uuid.UUID) (models.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(models.User), args.Error(1)
}

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) RefreshTokens(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	var r0 *models.TokenPair
	if v := args.Get(0); v != nil {
		r0 = v.(*models.TokenPair)
	}
	return r0, args.Error(1)
}

func (m *MockTokenService) ValidateAccessToken(token string) (uuid.UUID, error) {
	args := m.Called(token)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

type MockTaxonomyService struct {
	mock.Mock
}

func (m *MockTaxonomyService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (models.GalleryCategory, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.GalleryCategory), args.Error(1)
}

func (m *MockTaxonomyService) UpdateCategory(ctx context.Context, id uuid.UUID, req dto.UpdateCategoryRequest) (models.GalleryCategory, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(models.GalleryCategory), args.Error(1)
}

func (m *MockTaxonomyService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaxonomyService) GetCategoryBySlug(ctx context.Context, categorySlug string) (models.GalleryCategory, error) {
	args := m.Called(ctx, categorySlug)
	return args.Get(0).(models.GalleryCategory), args.Error(1)
}

func (m *MockTaxonomyService) ListCategories(ctx context.Context) ([]models.GalleryCategory, error) {
	args := m.Called(ctx)
	var r0 []models.GalleryCategory
	if v := args.Get(0); v != nil {
		r0 = v.([]models.GalleryCategory)
	}
	return r0, args.Error(1)
}

func (m *MockTaxonomyService) ListTags(ctx context.Context, kind models.TagKind) ([]models.Tag, error) {
	args := m.Called(ctx, kind)
	var r0 []models.Tag
	if v := args.Get(0); v != nil {
		r0 = v.([]models.Tag)
	}
	return r0, args.Error(1)
}

type MockArtworkService struct {
	mock.Mock
}

func (m *MockArtworkService) CreateArtwork(ctx context.Context, req dto.CreateArtworkRequest) (models.Artwork, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.Artwork), args.Error(1)
}

func (m *MockArtworkService) UpdateArtwork(ctx context.Context, id uuid.UUID, req dto.UpdateArtworkRequest) (models.Artwork, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(models.Artwork), args.Error(1)
}

func (m *MockArtworkService) DeleteArtwork(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockArtworkService) GetArtworkByID(ctx context.Context, id uuid.UUID) (models.Artwork, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Artwork), args.Error(1)
}

func (m *MockArtworkService) GetArtworkBySlug(ctx context.Context, artworkSlug string) (models.Artwork, error) {
	args := m.Called(ctx, artworkSlug)
	return args.Get(0).(models.Artwork), args.Error(1)
}

func (m *MockArtworkService) ListArtworks(ctx context.Context, filter models.ArtworkFilter, page, perPage int) ([]models.Artwork, int, error) {
	args := m.Called(ctx, filter, page, perPage)
	var r0 []models.Artwork
	if v := args.Get(0); v != nil {
		r0 = v.([]models.Artwork)
	}
	return r0, args.Int(1), args.Error(2)
}

func (m *MockArtworkService) AddImage(ctx context.Context, artworkID uuid.UUID, req dto.AddArtworkImageRequest) (models.AdditionalArtworkImage, error) {
	args := m.Called(ctx, artworkID, req)
	return args.Get(0).(models.AdditionalArtworkImage), args.Error(1)
}

func (m *MockArtworkService) RemoveImage(ctx context.Context, artworkID, imageID uuid.UUID) error {
	args := m.Called(ctx, artworkID, imageID)
	return args.Error(0)
}

func (m *MockArtworkService) ListImages(ctx context.Context, artworkID uuid.UUID) ([]models.AdditionalArtworkImage, error) {
	args := m.Called(ctx, artworkID)
	var r0 []models.AdditionalArtworkImage
	if v := args.Get(0); v != nil {
		r0 = v.([]models.AdditionalArtworkImage)
	}
	return r0, args.Error(1)
}

func (m *MockArtworkService) TagArtwork(ctx context.Context, id uuid.UUID, names []string) (models.Artwork, error) {
	args := m.Called(ctx, id, names)
	return args.Get(0).(models.Artwork), args.Error(1)
}

type MockBlogService struct {
	mock.Mock
}

func (m *MockBlogService) CreatePost(ctx context.Context, authorID uuid.UUID, req dto.CreateBlogPostRequest) (models.BlogPost, error) {
	args := m.Called(ctx, authorID, req)
	return args.Get(0).(models.BlogPost), args.Error(1)
}

func (m *MockBlogService) UpdatePost(ctx context.Context, postID uuid.UUID, req dto.UpdateBlogPostRequest) (models.BlogPost, error) {
	args := m.Called(ctx, postID, req)
	return args.Get(0).(models.BlogPost), args.Error(1)
}

func (m *MockBlogService) DeletePost(ctx context.Context, postID uuid.UUID) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *MockBlogService) GetPostByID(ctx context.Context, id uuid.UUID) (models.BlogPost, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.BlogPost), args.Error(1)
}

func (m *MockBlogService) GetPostBySlug(ctx context.Context, postSlug string) (models.BlogPost, error) {
	args := m.Called(ctx, postSlug)
	return args.Get(0).(models.BlogPost), args.Error(1)
}

func (m *MockBlogService) ListPosts(ctx context.Context, tagSlug string, page, perPage int) ([]models.BlogPost, int, error) {
	args := m.Called(ctx, tagSlug, page, perPage)
	var r0 []models.BlogPost
	if v := args.Get(0); v != nil {
		r0 = v.([]models.BlogPost)
	}
	return r0, args.Int(1), args.Error(2)
}

func (m *MockBlogService) TagPost(ctx context.Context, postID uuid.UUID, names []string) (models.BlogPost, error) {
	args := m.Called(ctx, postID, names)
	return args.Get(0).(models.BlogPost), args.Error(1)
}

type MockHomepageService struct {
	mock.Mock
}

func (m *MockHomepageService) GetHomepageContent(ctx context.Context) (models.HomepageContent, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.HomepageContent), args.Error(1)
}

func (m *MockHomepageService) CreateHeroSlide(ctx context.Context, req dto.CreateHeroSlideRequest) (models.HeroSlide, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.HeroSlide), args.Error(1)
}

func (m *MockHomepageService) UpdateHeroSlide(ctx context.Context, id uuid.UUID, req dto.UpdateHeroSlideRequest) (models.HeroSlide, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(models.HeroSlide), args.Error(1)
}

func (m *MockHomepageService) DeleteHeroSlide(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockHomepageService) ListHeroSlides(ctx context.Context) ([]models.HeroSlide, error) {
	args := m.Called(ctx)
	var r0 []models.HeroSlide
	if v := args.Get(0); v != nil {
		r0 = v.([]models.HeroSlide)
	}
	return r0, args.Error(1)
}

func (m *MockHomepageService) CreateFeatured(ctx context.Context, req dto.CreateFeaturedRequest) (models.FeaturedHomepageArtwork, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.FeaturedHomepageArtwork), args.Error(1)
}

func (m *MockHomepageService) UpdateFeatured(ctx context.Context, id uuid.UUID, req dto.UpdateFeaturedRequest) (models.FeaturedHomepageArtwork, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(models.FeaturedHomepageArtwork), args.Error(1)
}

func (m *MockHomepageService) DeleteFeatured(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockHomepageService) ListFeatured(ctx context.Context) ([]models.FeaturedHomepageArtwork, error) {
	args := m.Called(ctx)
	var r0 []models.FeaturedHomepageArtwork
	if v := args.Get(0); v != nil {
		r0 = v.([]models.FeaturedHomepageArtwork)
	}
	return r0, args.Error(1)
}

func (m *MockHomepageService) CreateSocialLink(ctx context.Context, req dto.CreateSocialLinkRequest) (models.SocialLink, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.SocialLink), args.Error(1)
}

func (m *MockHomepageService) UpdateSocialLink(ctx context.Context, id uuid.UUID, req dto.UpdateSocialLinkRequest) (models.SocialLink, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(models.SocialLink), args.Error(1)
}

func (m *MockHomepageService) DeleteSocialLink(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockHomepageService) ListSocialLinks(ctx context.Context, all bool) ([]models.SocialLink, error) {
	args := m.Called(ctx, all)
	var r0 []models.SocialLink
	if v := args.Get(0); v != nil {
		r0 = v.([]models.SocialLink)
	}
	return r0, args.Error(1)
}

type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) UploadImage(ctx context.Context, r io.Reader, size int64) (dto.ImageUploadResponse, error) {
	args := m.Called(ctx, r, size)
	return args.Get(0).(dto.ImageUploadResponse), args.Error(1)
}

type MockImportService struct {
	mock.Mock
}

func (m *MockImportService) StageBatch(ctx context.Context, items []dto.StageItemRequest) (dto.StageBatchResponse, error) {
	args := m.Called(ctx, items)
	return args.Get(0).(dto.StageBatchResponse), args.Error(1)
}

func (m *MockImportService) Promote(ctx context.Context, itemID uuid.UUID, req dto.PromoteRequest) (models.Artwork, error) {
	args := m.Called(ctx, itemID, req)
	return args.Get(0).(models.Artwork), args.Error(1)
}

func (m *MockImportService) Ignore(ctx context.Context, ids []uuid.UUID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockImportService) Reset(ctx context.Context, ids []uuid.UUID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockImportService) GetItem(ctx context.Context, id uuid.UUID) (models.InstagramImportedItem, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.InstagramImportedItem), args.Error(1)
}

func (m *MockImportService) ListItems(ctx context.Context, status models.ImportStatus, page, perPage int) ([]models.InstagramImportedItem, int, error) {
	args := m.Called(ctx, status, page, perPage)
	var r0 []models.InstagramImportedItem
	if v := args.Get(0); v != nil {
		r0 = v.([]models.InstagramImportedItem)
	}
	return r0, args.Int(1), args.Error(2)
}

type MockSubscriptionService struct {
	mock.Mock
}

func (m *MockSubscriptionService) Subscribe(ctx context.Context, email string) (models.Subscriber, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.Subscriber), args.Error(1)
}

func (m *MockSubscriptionService) Confirm(ctx context.Context, token uuid.UUID) (models.Subscriber, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(models.Subscriber), args.Error(1)
}

func (m *MockSubscriptionService) Unsubscribe(ctx context.Context, token uuid.UUID) (models.Subscriber, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(models.Subscriber), args.Error(1)
}

func (m *MockSubscriptionService) ListSubscribers(ctx context.Context, active *bool, page, perPage int) ([]models.Subscriber, int, error) {
	args := m.Called(ctx, active, page, perPage)
	var r0 []models.Subscriber
	if v := args.Get(0); v != nil {
		r0 = v.([]models.Subscriber)
	}
	return r0, args.Int(1), args.Error(2)
}
