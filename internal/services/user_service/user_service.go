package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"artfolio/internal/domain/models"
	"artfolio/internal/lib/logger/sl"
	"artfolio/internal/repository"
	"artfolio/internal/storage"
	"artfolio/internal/transport/http/dto"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExist          = errors.New("user already exist")
	ErrUserNotFound       = errors.New("user not found")
)

type TokenIssuer interface {
	GenerateTokens(ctx context.Context, user models.User) (*models.TokenPair, error)
	RevokeAll(ctx context.Context, userID uuid.UUID) error
}

type UserService struct {
	log    *slog.Logger
	repo   repository.UserRepository
	tokens TokenIssuer
}

func NewUserService(log *slog.Logger, repo repository.UserRepository, tokens TokenIssuer) *UserService {
	return &UserService{
		log:    log,
		repo:   repo,
		tokens: tokens,
	}
}

// RegisterAdmin creates an administrator account with a bcrypt password hash.
func (s *UserService) RegisterAdmin(ctx context.Context, input dto.AdminInput) (uuid.UUID, error) {
	const op = "user_service.RegisterAdmin"

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	log := s.log.With(
		slog.String("op", op),
		slog.String("email", input.Email),
	)

	log.Info("registering admin")

	passHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to generate password hash", sl.Err(err))

		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.repo.SaveUser(ctx, input.ToDomain(passHash))
	if err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			log.Warn("user already exist", sl.Err(err))

			return uuid.Nil, fmt.Errorf("%s: %w", op, ErrUserExist)
		}

		log.Error("failed to save user", sl.Err(err))

		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("admin registered", slog.String("user_id", id.String()))

	return id, nil
}

// Login checks the credentials of an administrator and issues a token pair.
func (s *UserService) Login(ctx context.Context, email, password string) (models.User, *models.TokenPair, error) {
	const op = "user_service.Login"

	email = strings.ToLower(strings.TrimSpace(email))

	log := s.log.With(
		slog.String("op", op),
		slog.String("email", email),
	)

	log.Info("attempting to login user")

	user, err := s.repo.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			log.Warn("user not found", sl.Err(err))

			return models.User{}, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		log.Error("failed to get user", sl.Err(err))

		return models.User{}, nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(password)); err != nil {
		log.Info("invalid credentials", sl.Err(err))

		return models.User{}, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	if !user.IsAdmin {
		log.Warn("non-admin login rejected")

		return models.User{}, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	tokens, err := s.tokens.GenerateTokens(ctx, user)
	if err != nil {
		log.Error("failed to generate tokens", sl.Err(err))

		return models.User{}, nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.TouchLastLogin(ctx, user.ID); err != nil {
		log.Warn("failed to update last login", sl.Err(err))
	}

	log.Info("user logged in successfully")

	return user, tokens, nil
}

// Logout revokes every refresh token of the user.
func (s *UserService) Logout(ctx context.Context, userID uuid.UUID) error {
	const op = "user_service.Logout"

	if err := s.tokens.RevokeAll(ctx, userID); err != nil {
		s.log.Error("failed to revoke tokens", slog.String("op", op), sl.Err(err))

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *UserService) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	const op = "user_service.IsAdmin"

	isAdmin, err := s.repo.IsAdmin(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return false, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return isAdmin, nil
}

func (s *UserService) GetUser(ctx context.Context, userID uuid.UUID) (models.User, error) {
	const op = "user_service.GetUser"

	user, err := s.repo.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return models.User{}, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}
