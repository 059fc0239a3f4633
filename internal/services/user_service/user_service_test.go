package services

import (
	"context"
	"errors"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"artfolio/internal/domain/models"
	"artfolio/internal/lib/logger/handlers/slogdiscard"
	"artfolio/internal/storage"
	"artfolio/internal/transport/http/dto"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user models.User) (uuid.UUID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockUserRepository) UserByEmail(ctx context.Context, email string) (models.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserRepository) UserByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserRepository) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) TouchLastLogin(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateTokens(ctx context.Context, user models.User) (*models.TokenPair, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TokenPair), args.Error(1)
}

func (m *MockTokenService) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func newService() (*UserService, *MockUserRepository, *MockTokenService) {
	repo := new(MockUserRepository)
	tokens := new(MockTokenService)
	return NewUserService(slogdiscard.NewDiscardLogger(), repo, tokens), repo, tokens
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()

	testEmail := "test@example.com"
	testPassword := "password123"
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	admin := models.User{
		ID:       uuid.New(),
		Email:    testEmail,
		Password: hashedPassword,
		IsAdmin:  true,
	}

	expectedTokens := &models.TokenPair{
		UserID:       admin.ID,
		AccessToken:  "test_access_token",
		RefreshToken: "test_refresh_token",
	}

	t.Run("successful login", func(t *testing.T) {
		service, repo, tokens := newService()
		repo.On("UserByEmail", ctx, testEmail).Return(admin, nil).Once()
		repo.On("TouchLastLogin", ctx, admin.ID).Return(nil).Once()
		tokens.On("GenerateTokens", ctx, admin).Return(expectedTokens, nil).Once()

		user, pair, err := service.Login(ctx, " Test@Example.com ", testPassword)
		require.NoError(t, err)
		assert.Equal(t, admin.ID, user.ID)
		assert.Equal(t, expectedTokens, pair)
		repo.AssertExpectations(t)
		tokens.AssertExpectations(t)
	})

	t.Run("last login failure does not fail login", func(t *testing.T) {
		service, repo, tokens := newService()
		repo.On("UserByEmail", ctx, testEmail).Return(admin, nil).Once()
		repo.On("TouchLastLogin", ctx, admin.ID).Return(errors.New("db error")).Once()
		tokens.On("GenerateTokens", ctx, admin).Return(expectedTokens, nil).Once()

		_, _, err := service.Login(ctx, testEmail, testPassword)
		assert.NoError(t, err)
	})

	t.Run("invalid password", func(t *testing.T) {
		service, repo, _ := newService()
		repo.On("UserByEmail", ctx, testEmail).Return(admin, nil).Once()

		_, _, err := service.Login(ctx, testEmail, "wrong_password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("not an admin", func(t *testing.T) {
		service, repo, _ := newService()
		visitor := admin
		visitor.IsAdmin = false
		repo.On("UserByEmail", ctx, testEmail).Return(visitor, nil).Once()

		_, _, err := service.Login(ctx, testEmail, testPassword)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("user not found", func(t *testing.T) {
		service, repo, _ := newService()
		repo.On("UserByEmail", ctx, "nonexistent@example.com").
			Return(models.User{}, storage.ErrUserNotFound).Once()

		_, _, err := service.Login(ctx, "nonexistent@example.com", testPassword)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("repository error", func(t *testing.T) {
		service, repo, _ := newService()
		repo.On("UserByEmail", ctx, testEmail).
			Return(models.User{}, errors.New("db error")).Once()

		_, _, err := service.Login(ctx, testEmail, testPassword)
		assert.ErrorContains(t, err, "db error")
	})
}

func TestUserService_RegisterAdmin(t *testing.T) {
	ctx := context.Background()

	testInput := dto.AdminInput{
		Name:     gofakeit.Name(),
		Email:    gofakeit.Email(),
		Password: gofakeit.Password(true, true, true, false, false, 12),
	}

	t.Run("successful registration", func(t *testing.T) {
		service, repo, _ := newService()
		expectedID := uuid.New()
		repo.On("SaveUser", ctx, mock.MatchedBy(func(u models.User) bool {
			return u.IsAdmin &&
				bcrypt.CompareHashAndPassword(u.Password, []byte(testInput.Password)) == nil
		})).Return(expectedID, nil).Once()

		id, err := service.RegisterAdmin(ctx, testInput)
		require.NoError(t, err)
		assert.Equal(t, expectedID, id)
		repo.AssertExpectations(t)
	})

	t.Run("user already exists", func(t *testing.T) {
		service, repo, _ := newService()
		repo.On("SaveUser", ctx, mock.Anything).
			Return(uuid.Nil, storage.ErrUserExists).Once()

		_, err := service.RegisterAdmin(ctx, testInput)
		assert.ErrorIs(t, err, ErrUserExist)
	})

	t.Run("repository error", func(t *testing.T) {
		service, repo, _ := newService()
		repo.On("SaveUser", ctx, mock.Anything).
			Return(uuid.Nil, errors.New("db error")).Once()

		_, err := service.RegisterAdmin(ctx, testInput)
		assert.ErrorContains(t, err, "db error")
	})

	t.Run("password too long for bcrypt", func(t *testing.T) {
		service, _, _ := newService()
		longPassInput := testInput
		longPassInput.Password = string(make([]byte, 100))

		_, err := service.RegisterAdmin(ctx, longPassInput)
		assert.Error(t, err)
	})
}

func TestUserService_IsAdmin(t *testing.T) {
	ctx := context.Background()
	testUserID := uuid.New()

	t.Run("user is admin", func(t *testing.T) {
		service, repo, _ := newService()
		repo.On("IsAdmin", ctx, testUserID).Return(true, nil).Once()

		isAdmin, err := service.IsAdmin(ctx, testUserID)
		require.NoError(t, err)
		assert.True(t, isAdmin)
	})

	t.Run("unknown user", func(t *testing.T) {
		service, repo, _ := newService()
		repo.On("IsAdmin", ctx, testUserID).Return(false, storage.ErrUserNotFound).Once()

		_, err := service.IsAdmin(ctx, testUserID)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("repository error", func(t *testing.T) {
		service, repo, _ := newService()
		repo.On("IsAdmin", ctx, testUserID).
			Return(false, errors.New("db error")).Once()

		_, err := service.IsAdmin(ctx, testUserID)
		assert.ErrorContains(t, err, "db error")
	})
}

func TestUserService_Logout(t *testing.T) {
	ctx := context.Background()
	service, _, tokens := newService()
	id := uuid.New()

	tokens.On("RevokeAll", ctx, id).Return(nil).Once()

	assert.NoError(t, service.Logout(ctx, id))
	tokens.AssertExpectations(t)
}
