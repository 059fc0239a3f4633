package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"artfolio/internal/domain/models"
	"artfolio/internal/storage"
)

var userUnique = map[string]error{
	"users_email_key": storage.ErrUserExists,
}

type UserRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewUserRepository(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var userColumns = []string{"id", "name", "email", "password", "is_admin", "created_at", "last_login"}

func (r *UserRepo) SaveUser(ctx context.Context, user models.User) (uuid.UUID, error) {
	const op = "repository.UserRepo.SaveUser"

	query, args, err := r.sb.Insert("users").
		SetMap(map[string]interface{}{
			"name":     user.Name,
			"email":    user.Email,
			"password": user.Password,
			"is_admin": user.IsAdmin,
		}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, mapPgError(err, userUnique))
	}

	return id, nil
}

func (r *UserRepo) UserByEmail(ctx context.Context, email string) (models.User, error) {
	u, err := r.findUser(ctx, sq.Eq{"email": email})
	if err != nil {
		return models.User{}, fmt.Errorf("repository.UserRepo.UserByEmail: %w", err)
	}
	return u, nil
}

func (r *UserRepo) UserByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	u, err := r.findUser(ctx, sq.Eq{"id": userID})
	if err != nil {
		return models.User{}, fmt.Errorf("repository.UserRepo.UserByID: %w", err)
	}
	return u, nil
}

// IsAdmin returns storage.ErrUserNotFound for unknown ids, so a deleted
// account loses access even with a still valid token.
func (r *UserRepo) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	u, err := r.findUser(ctx, sq.Eq{"id": userID})
	if err != nil {
		return false, fmt.Errorf("repository.UserRepo.IsAdmin: %w", err)
	}
	return u.IsAdmin, nil
}

func (r *UserRepo) findUser(ctx context.Context, where sq.Eq) (models.User, error) {
	query, args, err := r.sb.Select(userColumns...).From("users").Where(where).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("build query: %w", err)
	}

	var u models.User
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.Name, &u.Email, &u.Password, &u.IsAdmin, &u.CreatedAt, &u.LastLogin,
	)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return models.User{}, storage.ErrUserNotFound
	case err != nil:
		return models.User{}, err
	}

	return u, nil
}

func (r *UserRepo) TouchLastLogin(ctx context.Context, userID uuid.UUID) error {
	const op = "repository.UserRepo.TouchLastLogin"

	query, args, err := r.sb.Update("users").Set("last_login", sq.Expr("NOW()")).Where(sq.Eq{"id": userID}).ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
