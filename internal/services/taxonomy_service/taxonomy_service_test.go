package services

import (
	"context"
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

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) CreateCategory(ctx context.Context, c models.GalleryCategory) (models.GalleryCategory, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(models.GalleryCategory), args.Error(1)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, c models.GalleryCategory) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) CategoryByID(ctx context.Context, id uuid.UUID) (models.GalleryCategory, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.GalleryCategory), args.Error(1)
}

func (m *MockCategoryRepository) CategoryBySlug(ctx context.Context, slug string) (models.GalleryCategory, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(models.GalleryCategory), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context) ([]models.GalleryCategory, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.GalleryCategory), args.Error(1)
}

func (m *MockCategoryRepository) CategorySlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) CreateTag(ctx context.Context, name, slug string) (models.Tag, error) {
	args := m.Called(ctx, name, slug)
	return args.Get(0).(models.Tag), args.Error(1)
}

func (m *MockTagRepository) TagsByNames(ctx context.Context, names []string) (map[string]models.Tag, error) {
	args := m.Called(ctx, names)
	return args.Get(0).(map[string]models.Tag), args.Error(1)
}

func (m *MockTagRepository) TagSlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockTagRepository) LinkTags(ctx context.Context, kind models.TagKind, entityID uuid.UUID, tagIDs []uuid.UUID, replace bool) error {
	args := m.Called(ctx, kind, entityID, tagIDs, replace)
	return args.Error(0)
}

func (m *MockTagRepository) ListTags(ctx context.Context, kind models.TagKind) ([]models.Tag, error) {
	args := m.Called(ctx, kind)
	return args.Get(0).([]models.Tag), args.Error(1)
}

func newService() (*TaxonomyService, *MockCategoryRepository, *MockTagRepository) {
	categories := new(MockCategoryRepository)
	tags := new(MockTagRepository)
	return NewTaxonomyService(slogdiscard.NewDiscardLogger(), categories, tags), categories, tags
}

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("derives a suffixed slug", func(t *testing.T) {
		service, categories, _ := newService()
		categories.On("CategorySlugExists", ctx, "oil-paintings").Return(true, nil).Once()
		categories.On("CategorySlugExists", ctx, "oil-paintings-1").Return(false, nil).Once()
		categories.On("CreateCategory", ctx, mock.MatchedBy(func(c models.GalleryCategory) bool {
			return c.Name == "Oil Paintings" && c.Slug == "oil-paintings-1"
		})).Return(models.GalleryCategory{ID: uuid.New(), Name: "Oil Paintings", Slug: "oil-paintings-1"}, nil).Once()

		c, err := service.CreateCategory(ctx, dto.CreateCategoryRequest{Name: " Oil Paintings "})
		require.NoError(t, err)
		assert.Equal(t, "oil-paintings-1", c.Slug)
		categories.AssertExpectations(t)
	})

	t.Run("explicit slug is used verbatim", func(t *testing.T) {
		service, categories, _ := newService()
		categories.On("CreateCategory", ctx, mock.MatchedBy(func(c models.GalleryCategory) bool {
			return c.Slug == "oils"
		})).Return(models.GalleryCategory{Slug: "oils"}, nil).Once()

		_, err := service.CreateCategory(ctx, dto.CreateCategoryRequest{Name: "Oil", Slug: "oils"})
		require.NoError(t, err)
		categories.AssertNotCalled(t, "CategorySlugExists", mock.Anything, mock.Anything)
	})

	t.Run("duplicate name", func(t *testing.T) {
		service, categories, _ := newService()
		categories.On("CategorySlugExists", ctx, "oil").Return(false, nil).Once()
		categories.On("CreateCategory", ctx, mock.Anything).
			Return(models.GalleryCategory{}, storage.ErrDuplicateName).Once()

		_, err := service.CreateCategory(ctx, dto.CreateCategoryRequest{Name: "Oil"})
		assert.ErrorIs(t, err, storage.ErrDuplicateName)
	})

	t.Run("blank name", func(t *testing.T) {
		service, _, _ := newService()

		_, err := service.CreateCategory(ctx, dto.CreateCategoryRequest{Name: "  "})
		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})
}

func TestUpdateCategory_KeepsSlug(t *testing.T) {
	ctx := context.Background()
	service, categories, _ := newService()

	id := uuid.New()
	current := models.GalleryCategory{ID: id, Name: "Oil", Slug: "oil"}
	newName := "Oil on canvas"

	categories.On("CategoryByID", ctx, id).Return(current, nil).Once()
	categories.On("UpdateCategory", ctx, models.GalleryCategory{ID: id, Name: newName, Slug: "oil"}).Return(nil).Once()

	c, err := service.UpdateCategory(ctx, id, dto.UpdateCategoryRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "oil", c.Slug)
	categories.AssertExpectations(t)
}

func TestDeleteCategory_Referenced(t *testing.T) {
	ctx := context.Background()
	service, categories, _ := newService()
	id := uuid.New()

	categories.On("DeleteCategory", ctx, id).Return(storage.ErrReferentialIntegrity).Once()

	err := service.DeleteCategory(ctx, id)
	assert.ErrorIs(t, err, storage.ErrReferentialIntegrity)
}

func TestTagEntity(t *testing.T) {
	ctx := context.Background()
	artworkID := uuid.New()
	landscapeID := uuid.New()
	blueID := uuid.New()

	t.Run("creates missing tags and links them", func(t *testing.T) {
		service, _, tags := newService()

		tags.On("TagsByNames", ctx, []string{"landscape", "Blue"}).
			Return(map[string]models.Tag{"landscape": {ID: landscapeID, Name: "landscape"}}, nil).Once()
		tags.On("TagSlugExists", ctx, "blue").Return(false, nil).Once()
		tags.On("CreateTag", ctx, "Blue", "blue").Return(models.Tag{ID: blueID, Name: "Blue", Slug: "blue"}, nil).Once()
		tags.On("LinkTags", ctx, models.TagKindArtwork, artworkID, []uuid.UUID{landscapeID, blueID}, false).Return(nil).Once()

		err := service.TagEntity(ctx, models.TagKindArtwork, artworkID, []string{" landscape", "Blue", "", "landscape"}, false)
		require.NoError(t, err)
		tags.AssertExpectations(t)
	})

	t.Run("concurrent creation reuses the winner", func(t *testing.T) {
		service, _, tags := newService()

		tags.On("TagsByNames", ctx, []string{"Blue"}).Return(map[string]models.Tag{}, nil).Once()
		tags.On("TagSlugExists", ctx, "blue").Return(false, nil).Once()
		tags.On("CreateTag", ctx, "Blue", "blue").Return(models.Tag{}, storage.ErrDuplicateName).Once()
		tags.On("TagsByNames", ctx, []string{"Blue"}).
			Return(map[string]models.Tag{"Blue": {ID: blueID, Name: "Blue"}}, nil).Once()
		tags.On("LinkTags", ctx, models.TagKindPost, artworkID, []uuid.UUID{blueID}, false).Return(nil).Once()

		err := service.TagEntity(ctx, models.TagKindPost, artworkID, []string{"Blue"}, false)
		require.NoError(t, err)
		tags.AssertExpectations(t)
	})

	t.Run("empty replace clears the set", func(t *testing.T) {
		service, _, tags := newService()
		tags.On("LinkTags", ctx, models.TagKindArtwork, artworkID, []uuid.UUID(nil), true).Return(nil).Once()

		require.NoError(t, service.TagEntity(ctx, models.TagKindArtwork, artworkID, nil, true))
		tags.AssertExpectations(t)
	})

	t.Run("empty add is a no-op", func(t *testing.T) {
		service, _, tags := newService()

		require.NoError(t, service.TagEntity(ctx, models.TagKindArtwork, artworkID, []string{" "}, false))
		tags.AssertNotCalled(t, "LinkTags", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing entity", func(t *testing.T) {
		service, _, tags := newService()
		tags.On("TagsByNames", ctx, []string{"x"}).
			Return(map[string]models.Tag{"x": {ID: blueID, Name: "x"}}, nil).Once()
		tags.On("LinkTags", ctx, models.TagKindArtwork, artworkID, []uuid.UUID{blueID}, false).
			Return(storage.ErrNotFound).Once()

		err := service.TagEntity(ctx, models.TagKindArtwork, artworkID, []string{"x"}, false)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestCleanTagNames(t *testing.T) {
	assert.Equal(t, []string{"a", "B", "b"}, CleanTagNames([]string{" a", "B", "", "a ", "b", "  "}))
	assert.Empty(t, CleanTagNames(nil))
}
