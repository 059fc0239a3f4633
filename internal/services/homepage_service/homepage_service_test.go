package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"artfolio/internal/domain/models"
	"artfolio/internal/lib/logger/handlers/slogdiscard"
	"artfolio/internal/storage"
	"artfolio/internal/transport/http/dto"
)

type MockHomepageRepository struct {
	mock.Mock
}

func (m *MockHomepageRepository) CreateHeroSlide(ctx context.Context, s models.HeroSlide) (models.HeroSlide, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(models.HeroSlide), args.Error(1)
}

func (m *MockHomepageRepository) UpdateHeroSlide(ctx context.Context, s models.HeroSlide) (models.HeroSlide, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(models.HeroSlide), args.Error(1)
}

func (m *MockHomepageRepository) DeleteHeroSlide(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockHomepageRepository) HeroSlideByID(ctx context.Context, id uuid.UUID) (models.HeroSlide, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.HeroSlide), args.Error(1)
}

func (m *MockHomepageRepository) ListHeroSlides(ctx context.Context, activeOnly bool) ([]models.HeroSlide, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]models.HeroSlide), args.Error(1)
}

func (m *MockHomepageRepository) CreateFeatured(ctx context.Context, f models.FeaturedHomepageArtwork) (models.FeaturedHomepageArtwork, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(models.FeaturedHomepageArtwork), args.Error(1)
}

func (m *MockHomepageRepository) UpdateFeatured(ctx context.Context, f models.FeaturedHomepageArtwork) (models.FeaturedHomepageArtwork, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(models.FeaturedHomepageArtwork), args.Error(1)
}

func (m *MockHomepageRepository) DeleteFeatured(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockHomepageRepository) FeaturedByID(ctx context.Context, id uuid.UUID) (models.FeaturedHomepageArtwork, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.FeaturedHomepageArtwork), args.Error(1)
}

func (m *MockHomepageRepository) ListFeatured(ctx context.Context, activeOnly bool, limit int) ([]models.FeaturedHomepageArtwork, error) {
	args := m.Called(ctx, activeOnly, limit)
	return args.Get(0).([]models.FeaturedHomepageArtwork), args.Error(1)
}

type MockSocialLinkRepository struct {
	mock.Mock
}

func (m *MockSocialLinkRepository) CreateSocialLink(ctx context.Context, l models.SocialLink) (models.SocialLink, error) {
	args := m.Called(ctx, l)
	return args.Get(0).(models.SocialLink), args.Error(1)
}

func (m *MockSocialLinkRepository) UpdateSocialLink(ctx context.Context, l models.SocialLink) (models.SocialLink, error) {
	args := m.Called(ctx, l)
	return args.Get(0).(models.SocialLink), args.Error(1)
}

func (m *MockSocialLinkRepository) DeleteSocialLink(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSocialLinkRepository) SocialLinkByID(ctx context.Context, id uuid.UUID) (models.SocialLink, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.SocialLink), args.Error(1)
}

func (m *MockSocialLinkRepository) ListSocialLinks(ctx context.Context, activeOnly bool) ([]models.SocialLink, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]models.SocialLink), args.Error(1)
}

func newService() (*HomepageService, *MockHomepageRepository, *MockSocialLinkRepository) {
	repo := new(MockHomepageRepository)
	social := new(MockSocialLinkRepository)
	return NewHomepageService(slogdiscard.NewDiscardLogger(), repo, social), repo, social
}

func TestGetHomepageContent(t *testing.T) {
	ctx := context.Background()

	slides := []models.HeroSlide{{ID: uuid.New(), Title: "one", IsActive: true}}
	first := models.Artwork{ID: uuid.New(), Title: "first"}
	third := models.Artwork{ID: uuid.New(), Title: "third"}

	t.Run("dangling featured rows are skipped", func(t *testing.T) {
		service, repo, _ := newService()

		repo.On("ListHeroSlides", ctx, true).Return(slides, nil).Once()
		repo.On("ListFeatured", ctx, true, models.MaxFeaturedOnHomepage).Return([]models.FeaturedHomepageArtwork{
			{ID: uuid.New(), Artwork: &first},
			{ID: uuid.New()},
			{ID: uuid.New(), Artwork: &third},
		}, nil).Once()

		content, err := service.GetHomepageContent(ctx)
		require.NoError(t, err)
		assert.Equal(t, slides, content.HeroSlides)
		assert.Equal(t, []models.Artwork{first, third}, content.FeaturedArtworks)
		repo.AssertExpectations(t)
	})

	t.Run("empty homepage", func(t *testing.T) {
		service, repo, _ := newService()

		repo.On("ListHeroSlides", ctx, true).Return([]models.HeroSlide{}, nil).Once()
		repo.On("ListFeatured", ctx, true, models.MaxFeaturedOnHomepage).Return([]models.FeaturedHomepageArtwork{}, nil).Once()

		content, err := service.GetHomepageContent(ctx)
		require.NoError(t, err)
		assert.Empty(t, content.HeroSlides)
		assert.NotNil(t, content.FeaturedArtworks)
		assert.Empty(t, content.FeaturedArtworks)
	})

	t.Run("storage error", func(t *testing.T) {
		service, repo, _ := newService()
		boom := errors.New("db down")

		repo.On("ListHeroSlides", ctx, true).Return([]models.HeroSlide(nil), boom).Once()

		_, err := service.GetHomepageContent(ctx)
		assert.ErrorIs(t, err, boom)
	})
}

func TestCreateHeroSlide_DefaultsToActive(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newService()

	repo.On("CreateHeroSlide", ctx, mock.MatchedBy(func(s models.HeroSlide) bool {
		return s.IsActive && s.Title == "Spring"
	})).Return(models.HeroSlide{ID: uuid.New(), Title: "Spring", IsActive: true}, nil).Once()

	slide, err := service.CreateHeroSlide(ctx, dto.CreateHeroSlideRequest{Title: "Spring", Image: "http://img/x.jpg"})
	require.NoError(t, err)
	assert.True(t, slide.IsActive)
	repo.AssertExpectations(t)
}

func TestUpdateHeroSlide_Deactivate(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newService()
	id := uuid.New()
	inactive := false

	repo.On("HeroSlideByID", ctx, id).Return(models.HeroSlide{ID: id, Title: "t", IsActive: true}, nil).Once()
	repo.On("UpdateHeroSlide", ctx, models.HeroSlide{ID: id, Title: "t", IsActive: false}).
		Return(models.HeroSlide{ID: id, Title: "t"}, nil).Once()

	slide, err := service.UpdateHeroSlide(ctx, id, dto.UpdateHeroSlideRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, slide.IsActive)
}

func TestCreateFeatured_UnknownArtwork(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newService()

	repo.On("CreateFeatured", ctx, mock.Anything).Return(models.FeaturedHomepageArtwork{}, storage.ErrNotFound).Once()

	_, err := service.CreateFeatured(ctx, dto.CreateFeaturedRequest{ArtworkID: uuid.New()})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUpdateFeatured_Reorders(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newService()
	id := uuid.New()
	artworkID := uuid.New()
	order := 4

	current := models.FeaturedHomepageArtwork{ID: id, ArtworkID: artworkID, Order: 1, IsActive: true}
	want := current
	want.Order = order

	repo.On("FeaturedByID", ctx, id).Return(current, nil).Once()
	repo.On("UpdateFeatured", ctx, want).Return(want, nil).Once()

	f, err := service.UpdateFeatured(ctx, id, dto.UpdateFeaturedRequest{Order: &order})
	require.NoError(t, err)
	assert.Equal(t, order, f.Order)
}

func TestSocialLinks(t *testing.T) {
	ctx := context.Background()

	t.Run("public list asks for active links", func(t *testing.T) {
		service, _, social := newService()
		social.On("ListSocialLinks", ctx, true).Return([]models.SocialLink{{Platform: models.PlatformInstagram}}, nil).Once()

		links, err := service.ListSocialLinks(ctx, false)
		require.NoError(t, err)
		assert.Len(t, links, 1)
		social.AssertExpectations(t)
	})

	t.Run("admin list asks for every link", func(t *testing.T) {
		service, _, social := newService()
		social.On("ListSocialLinks", ctx, false).Return([]models.SocialLink{}, nil).Once()

		_, err := service.ListSocialLinks(ctx, true)
		require.NoError(t, err)
		social.AssertExpectations(t)
	})

	t.Run("unknown platform", func(t *testing.T) {
		service, _, _ := newService()

		_, err := service.CreateSocialLink(ctx, dto.CreateSocialLinkRequest{Platform: "myspace", URL: "http://x"})
		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})
}
