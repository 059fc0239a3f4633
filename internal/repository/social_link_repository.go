package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"

	"artfolio/internal/domain/models"
)

type SocialLinkRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewSocialLinkRepo(db *pgxpool.Pool) *SocialLinkRepo {
	return &SocialLinkRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *SocialLinkRepo) CreateSocialLink(ctx context.Context, l models.SocialLink) (models.SocialLink, error) {
	const op = "repository.SocialLinkRepo.CreateSocialLink"

	query, args, err := r.sb.Insert("social_links").
		Columns("platform", "url", "icon", "sort_order", "is_active").
		Values(l.Platform, l.URL, l.Icon, l.Order, l.IsActive).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return models.SocialLink{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&l.ID, &l.CreatedAt); err != nil {
		return models.SocialLink{}, fmt.Errorf("%s: %w", op, err)
	}

	return l, nil
}

func (r *SocialLinkRepo) UpdateSocialLink(ctx context.Context, l models.SocialLink) (models.SocialLink, error) {
	const op = "repository.SocialLinkRepo.UpdateSocialLink"

	query, args, err := r.sb.Update("social_links").
		Set("platform", l.Platform).
		Set("url", l.URL).
		Set("icon", l.Icon).
		Set("sort_order", l.Order).
		Set("is_active", l.IsActive).
		Where(sq.Eq{"id": l.ID}).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return models.SocialLink{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&l.CreatedAt); err != nil {
		return models.SocialLink{}, fmt.Errorf("%s: %w", op, notFound(err))
	}

	return l, nil
}

func (r *SocialLinkRepo) DeleteSocialLink(ctx context.Context, id uuid.UUID) error {
	const op = "repository.SocialLinkRepo.DeleteSocialLink"

	if err := deleteByID(ctx, r.db, r.sb, "social_links", id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *SocialLinkRepo) SocialLinkByID(ctx context.Context, id uuid.UUID) (models.SocialLink, error) {
	const op = "repository.SocialLinkRepo.SocialLinkByID"

	query, args, err := r.sb.Select("id", "platform", "url", "icon", "sort_order", "is_active", "created_at").
		From("social_links").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.SocialLink{}, fmt.Errorf("%s: %w", op, err)
	}

	var l models.SocialLink
	err = r.db.QueryRow(ctx, query, args...).Scan(&l.ID, &l.Platform, &l.URL, &l.Icon, &l.Order, &l.IsActive, &l.CreatedAt)
	if err != nil {
		return models.SocialLink{}, fmt.Errorf("%s: %w", op, notFound(err))
	}

	return l, nil
}

func (r *SocialLinkRepo) ListSocialLinks(ctx context.Context, activeOnly bool) ([]models.SocialLink, error) {
	const op = "repository.SocialLinkRepo.ListSocialLinks"

	b := r.sb.Select("id", "platform", "url", "icon", "sort_order", "is_active", "created_at").
		From("social_links").
		OrderBy("sort_order", "created_at", "id")
	if activeOnly {
		b = b.Where(sq.Eq{"is_active": true})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	links := make([]models.SocialLink, 0)
	for rows.Next() {
		var l models.SocialLink
		if err := rows.Scan(&l.ID, &l.Platform, &l.URL, &l.Icon, &l.Order, &l.IsActive, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		links = append(links, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return links, nil
}
