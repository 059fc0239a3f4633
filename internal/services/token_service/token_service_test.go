package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"artfolio/internal/domain/models"
	"artfolio/internal/lib/jwt"
	"artfolio/internal/lib/logger/handlers/slogdiscard"
)

type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) SaveRefreshToken(ctx context.Context, userID, token string, exp time.Duration) error {
	args := m.Called(ctx, userID, token, exp)
	return args.Error(0)
}

func (m *MockTokenRepository) GetRefreshToken(ctx context.Context, userID, token string) (bool, error) {
	args := m.Called(ctx, userID, token)
	return args.Bool(0), args.Error(1)
}

func (m *MockTokenRepository) DeleteRefreshToken(ctx context.Context, userID, token string) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

func (m *MockTokenRepository) DeleteAllUserTokens(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

const testSecret = "test-secret"

var (
	testUser = models.User{
		ID:    uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
		Email: "test@example.com",
	}
	testCtx = context.Background()
)

func newTestService(repo *MockTokenRepository) *TokenService {
	return NewTokenService(slogdiscard.NewDiscardLogger(), repo, testSecret, 15*time.Minute, time.Hour)
}

func TestGenerateTokens_Success(t *testing.T) {
	repo := new(MockTokenRepository)
	service := newTestService(repo)

	repo.On("SaveRefreshToken", testCtx, testUser.ID.String(), mock.Anything, time.Hour).
		Return(nil)

	tokens, err := service.GenerateTokens(testCtx, testUser)

	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, testUser.ID, tokens.UserID)

	id, err := service.ValidateAccessToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, testUser.ID, id)

	_, err = service.ValidateAccessToken(tokens.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	repo.AssertExpectations(t)
}

func TestGenerateTokens_RepoError(t *testing.T) {
	repo := new(MockTokenRepository)
	service := newTestService(repo)

	expectedErr := errors.New("storage error")
	repo.On("SaveRefreshToken", testCtx, testUser.ID.String(), mock.Anything, mock.Anything).
		Return(expectedErr)

	tokens, err := service.GenerateTokens(testCtx, testUser)

	assert.ErrorIs(t, err, expectedErr)
	assert.Nil(t, tokens)
	repo.AssertExpectations(t)
}

func TestRefreshTokens(t *testing.T) {
	refresh, err := jwt.NewToken(testUser, jwt.KindRefresh, testSecret, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name      string
		token     string
		mockSetup func(*MockTokenRepository)
		wantErr   error
	}{
		{
			name:  "success rotates the token",
			token: refresh,
			mockSetup: func(repo *MockTokenRepository) {
				repo.On("GetRefreshToken", testCtx, testUser.ID.String(), refresh).Return(true, nil)
				repo.On("DeleteRefreshToken", testCtx, testUser.ID.String(), refresh).Return(nil)
				repo.On("SaveRefreshToken", testCtx, testUser.ID.String(), mock.Anything, time.Hour).Return(nil)
			},
		},
		{
			name:      "malformed token",
			token:     "invalid",
			mockSetup: func(*MockTokenRepository) {},
			wantErr:   ErrInvalidToken,
		},
		{
			name: "access token is not accepted",
			token: func() string {
				tok, _ := jwt.NewToken(testUser, jwt.KindAccess, testSecret, time.Hour)
				return tok
			}(),
			mockSetup: func(*MockTokenRepository) {},
			wantErr:   ErrInvalidToken,
		},
		{
			name:  "revoked token",
			token: refresh,
			mockSetup: func(repo *MockTokenRepository) {
				repo.On("GetRefreshToken", testCtx, testUser.ID.String(), refresh).Return(false, nil)
			},
			wantErr: ErrTokenNotInStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockTokenRepository)
			tt.mockSetup(repo)
			service := newTestService(repo)

			pair, err := service.RefreshTokens(testCtx, tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, pair)
			} else {
				require.NoError(t, err)
				assert.NotEqual(t, tt.token, pair.RefreshToken)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestRevokeAll(t *testing.T) {
	repo := new(MockTokenRepository)
	service := newTestService(repo)

	repo.On("DeleteAllUserTokens", testCtx, testUser.ID.String()).Return(nil)

	assert.NoError(t, service.RevokeAll(testCtx, testUser.ID))
	repo.AssertExpectations(t)
}
