package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"artfolio/internal/domain/models"
	"artfolio/internal/lib/jwt"
	"artfolio/internal/lib/logger/sl"
	"artfolio/internal/repository"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrTokenNotInStorage = errors.New("token not found in storage")
)

type TokenService struct {
	log        *slog.Logger
	repo       repository.TokenRepository
	secret     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(log *slog.Logger, repo repository.TokenRepository, secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		log:        log,
		repo:       repo,
		secret:     secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// GenerateTokens issues an access/refresh pair and stores the refresh token.
func (s *TokenService) GenerateTokens(ctx context.Context, user models.User) (*models.TokenPair, error) {
	const op = "token_service.GenerateTokens"

	accessToken, err := jwt.NewToken(user, jwt.KindAccess, s.secret, s.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refreshToken, err := jwt.NewToken(user, jwt.KindRefresh, s.secret, s.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.SaveRefreshToken(ctx, user.ID.String(), refreshToken, s.refreshTTL); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.TokenPair{
		UserID:       user.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshTokens swaps a stored refresh token for a new pair. The old token is revoked.
func (s *TokenService) RefreshTokens(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	const op = "token_service.RefreshTokens"

	log := s.log.With(slog.String("op", op))

	claims, err := jwt.Parse(refreshToken, s.secret)
	if err != nil || claims.Kind != jwt.KindRefresh {
		log.Warn("rejected refresh token", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	userID := claims.UserID.String()

	exists, err := s.repo.GetRefreshToken(ctx, userID, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		log.Warn("refresh token not in storage", slog.String("user_id", userID))
		return nil, fmt.Errorf("%s: %w", op, ErrTokenNotInStorage)
	}

	if err := s.repo.DeleteRefreshToken(ctx, userID, refreshToken); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GenerateTokens(ctx, models.User{ID: claims.UserID, Email: claims.Email})
}

// ValidateAccessToken returns the user id carried by a valid access token.
func (s *TokenService) ValidateAccessToken(token string) (uuid.UUID, error) {
	const op = "token_service.ValidateAccessToken"

	claims, err := jwt.Parse(token, s.secret)
	if err != nil || claims.Kind != jwt.KindAccess {
		return uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return claims.UserID, nil
}

func (s *TokenService) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	const op = "token_service.RevokeAll"

	if err := s.repo.DeleteAllUserTokens(ctx, userID.String()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
