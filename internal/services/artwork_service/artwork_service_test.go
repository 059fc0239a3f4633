package services

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"artfolio/internal/domain/models"
	"artfolio/internal/lib/logger/handlers/slogdiscard"
	"artfolio/internal/storage"
	"artfolio/internal/transport/http/dto"
)

type MockArtworkRepository struct {
	mock.Mock
}

func (m *MockArtworkRepository) CreateArtwork(ctx context.Context, a models.Artwork) (models.Artwork, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(models.Artwork), args.Error(1)
}

func (m *MockArtworkRepository) UpdateArtwork(ctx context.Context, a models.Artwork) (models.Artwork, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(models.Artwork), args.Error(1)
}

func (m *MockArtworkRepository) DeleteArtwork(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockArtworkRepository) ArtworkByID(ctx context.Context, id uuid.UUID) (models.Artwork, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Artwork), args.Error(1)
}

func (m *MockArtworkRepository) ArtworkBySlug(ctx context.Context, slug string) (models.Artwork, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(models.Artwork), args.Error(1)
}

func (m *MockArtworkRepository) ListArtworks(ctx context.Context, filter models.ArtworkFilter, page, perPage int) ([]models.Artwork, int, error) {
	args := m.Called(ctx, filter, page, perPage)
	return args.Get(0).([]models.Artwork), args.Int(1), args.Error(2)
}

func (m *MockArtworkRepository) ArtworkSlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockArtworkRepository) AddImage(ctx context.Context, img models.AdditionalArtworkImage) (models.AdditionalArtworkImage, error) {
	args := m.Called(ctx, img)
	return args.Get(0).(models.AdditionalArtworkImage), args.Error(1)
}

func (m *MockArtworkRepository) RemoveImage(ctx context.Context, artworkID, imageID uuid.UUID) (models.AdditionalArtworkImage, error) {
	args := m.Called(ctx, artworkID, imageID)
	return args.Get(0).(models.AdditionalArtworkImage), args.Error(1)
}

func (m *MockArtworkRepository) ListImages(ctx context.Context, artworkID uuid.UUID) ([]models.AdditionalArtworkImage, error) {
	args := m.Called(ctx, artworkID)
	return args.Get(0).([]models.AdditionalArtworkImage), args.Error(1)
}

type MockTagger struct {
	mock.Mock
}

func (m *MockTagger) TagEntity(ctx context.Context, kind models.TagKind, id uuid.UUID, names []string, replace bool) error {
	args := m.Called(ctx, kind, id, names, replace)
	return args.Error(0)
}

func newService() (*ArtworkService, *MockArtworkRepository, *MockTagger) {
	repo := new(MockArtworkRepository)
	tagger := new(MockTagger)
	return NewArtworkService(slogdiscard.NewDiscardLogger(), repo, tagger), repo, tagger
}

func TestCreateArtwork(t *testing.T) {
	ctx := context.Background()
	categoryID := uuid.New()
	id := uuid.New()

	req := dto.CreateArtworkRequest{
		Title:        "Sunset",
		PrimaryImage: gofakeit.URL(),
		CategoryID:   categoryID,
		Tags:         []string{"sky"},
	}

	t.Run("second artwork with the same title gets a suffix", func(t *testing.T) {
		service, repo, tagger := newService()

		repo.On("ArtworkSlugExists", ctx, "sunset").Return(true, nil).Once()
		repo.On("ArtworkSlugExists", ctx, "sunset-1").Return(false, nil).Once()
		repo.On("CreateArtwork", ctx, mock.MatchedBy(func(a models.Artwork) bool {
			return a.Slug == "sunset-1" && a.CategoryID == categoryID
		})).Return(models.Artwork{ID: id, Slug: "sunset-1"}, nil).Once()
		tagger.On("TagEntity", ctx, models.TagKindArtwork, id, []string{"sky"}, true).Return(nil).Once()
		repo.On("ArtworkByID", ctx, id).Return(models.Artwork{ID: id, Slug: "sunset-1", Tags: []string{"sky"}}, nil).Once()

		a, err := service.CreateArtwork(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "sunset-1", a.Slug)
		assert.Equal(t, []string{"sky"}, a.Tags)
		repo.AssertExpectations(t)
		tagger.AssertExpectations(t)
	})

	t.Run("unknown category", func(t *testing.T) {
		service, repo, tagger := newService()

		repo.On("ArtworkSlugExists", ctx, "sunset").Return(false, nil).Once()
		repo.On("CreateArtwork", ctx, mock.Anything).Return(models.Artwork{}, storage.ErrNotFound).Once()

		_, err := service.CreateArtwork(ctx, req)
		assert.ErrorIs(t, err, storage.ErrNotFound)
		tagger.AssertNotCalled(t, "TagEntity", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("explicit slug collision", func(t *testing.T) {
		service, repo, _ := newService()
		withSlug := req
		withSlug.Slug = "taken"

		repo.On("CreateArtwork", ctx, mock.Anything).Return(models.Artwork{}, storage.ErrDuplicateSlug).Once()

		_, err := service.CreateArtwork(ctx, withSlug)
		assert.ErrorIs(t, err, storage.ErrDuplicateSlug)
	})
}

func TestUpdateArtwork(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	created := time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)

	current := models.Artwork{
		ID:        id,
		Title:     "Old",
		Slug:      "old",
		CreatedAt: created,
	}

	t.Run("title change keeps slug and replaces tags", func(t *testing.T) {
		service, repo, tagger := newService()
		title := "New title"
		tags := []string{"a"}

		repo.On("ArtworkByID", ctx, id).Return(current, nil).Once()
		repo.On("UpdateArtwork", ctx, mock.MatchedBy(func(a models.Artwork) bool {
			return a.Title == title && a.Slug == "old" && a.CreatedAt.Equal(created)
		})).Return(current, nil).Once()
		tagger.On("TagEntity", ctx, models.TagKindArtwork, id, tags, true).Return(nil).Once()
		repo.On("ArtworkByID", ctx, id).Return(models.Artwork{ID: id, Title: title, Slug: "old"}, nil).Once()

		a, err := service.UpdateArtwork(ctx, id, dto.UpdateArtworkRequest{Title: &title, Tags: &tags})
		require.NoError(t, err)
		assert.Equal(t, "old", a.Slug)
		repo.AssertExpectations(t)
		tagger.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		service, repo, _ := newService()
		repo.On("ArtworkByID", ctx, id).Return(models.Artwork{}, storage.ErrNotFound).Once()

		_, err := service.UpdateArtwork(ctx, id, dto.UpdateArtworkRequest{})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestAddImage_Capacity(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newService()
	artworkID := uuid.New()

	repo.On("AddImage", ctx, mock.Anything).Return(models.AdditionalArtworkImage{}, storage.ErrCapacityExceeded).Once()

	_, err := service.AddImage(ctx, artworkID, dto.AddArtworkImageRequest{Image: gofakeit.URL()})
	assert.ErrorIs(t, err, storage.ErrCapacityExceeded)
}

func TestRemoveImage_NotFound(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newService()
	artworkID, imageID := uuid.New(), uuid.New()

	repo.On("RemoveImage", ctx, artworkID, imageID).Return(models.AdditionalArtworkImage{}, storage.ErrNotFound).Once()

	assert.ErrorIs(t, service.RemoveImage(ctx, artworkID, imageID), storage.ErrNotFound)
}

func TestTagArtwork_AddsWithoutReplacing(t *testing.T) {
	ctx := context.Background()
	service, repo, tagger := newService()
	id := uuid.New()

	tagger.On("TagEntity", ctx, models.TagKindArtwork, id, []string{"b"}, false).Return(nil).Once()
	repo.On("ArtworkByID", ctx, id).Return(models.Artwork{ID: id, Tags: []string{"a", "b"}}, nil).Once()

	a, err := service.TagArtwork(ctx, id, []string{"b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, a.Tags)
	tagger.AssertExpectations(t)
}
