package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"

	"artfolio/internal/domain/models"
	"artfolio/internal/storage"
)

var categoryUnique = map[string]error{
	"gallery_categories_name_key": storage.ErrDuplicateName,
	"gallery_categories_slug_key": storage.ErrDuplicateSlug,
}

type CategoryRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewCategoryRepo(db *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *CategoryRepo) CreateCategory(ctx context.Context, c models.GalleryCategory) (models.GalleryCategory, error) {
	const op = "repository.CategoryRepo.CreateCategory"

	query, args, err := r.sb.Insert("gallery_categories").
		Columns("name", "slug", "representative_image").
		Values(c.Name, c.Slug, c.RepresentativeImage).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return models.GalleryCategory{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&c.ID, &c.CreatedAt); err != nil {
		return models.GalleryCategory{}, fmt.Errorf("%s: %w", op, mapPgError(err, categoryUnique))
	}

	return c, nil
}

func (r *CategoryRepo) UpdateCategory(ctx context.Context, c models.GalleryCategory) error {
	const op = "repository.CategoryRepo.UpdateCategory"

	query, args, err := r.sb.Update("gallery_categories").
		Set("name", c.Name).
		Set("slug", c.Slug).
		Set("representative_image", c.RepresentativeImage).
		Where(sq.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapPgError(err, categoryUnique))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// DeleteCategory fails with storage.ErrReferentialIntegrity while artworks use the category.
func (r *CategoryRepo) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	const op = "repository.CategoryRepo.DeleteCategory"

	query, args, err := r.sb.Delete("gallery_categories").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapPgError(err, nil))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (r *CategoryRepo) selectCategories() sq.SelectBuilder {
	return r.sb.Select(
		"c.id",
		"c.name",
		"c.slug",
		"c.representative_image",
		"c.created_at",
		"(SELECT COUNT(*) FROM artworks a WHERE a.category_id = c.id)",
	).From("gallery_categories c")
}

func (r *CategoryRepo) CategoryByID(ctx context.Context, id uuid.UUID) (models.GalleryCategory, error) {
	const op = "repository.CategoryRepo.CategoryByID"
	return r.oneCategory(ctx, op, sq.Eq{"c.id": id})
}

func (r *CategoryRepo) CategoryBySlug(ctx context.Context, slug string) (models.GalleryCategory, error) {
	const op = "repository.CategoryRepo.CategoryBySlug"
	return r.oneCategory(ctx, op, sq.Eq{"c.slug": slug})
}

func (r *CategoryRepo) oneCategory(ctx context.Context, op string, where sq.Eq) (models.GalleryCategory, error) {
	query, args, err := r.selectCategories().Where(where).ToSql()
	if err != nil {
		return models.GalleryCategory{}, fmt.Errorf("%s: %w", op, err)
	}

	var c models.GalleryCategory
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&c.ID,
		&c.Name,
		&c.Slug,
		&c.RepresentativeImage,
		&c.CreatedAt,
		&c.ArtworkCount,
	)
	if err != nil {
		return models.GalleryCategory{}, fmt.Errorf("%s: %w", op, notFound(err))
	}

	return c, nil
}

// ListCategories returns every category ordered by name together with its artwork count.
func (r *CategoryRepo) ListCategories(ctx context.Context) ([]models.GalleryCategory, error) {
	const op = "repository.CategoryRepo.ListCategories"

	query, args, err := r.selectCategories().OrderBy("c.name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	categories := make([]models.GalleryCategory, 0)
	for rows.Next() {
		var c models.GalleryCategory
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Slug,
			&c.RepresentativeImage,
			&c.CreatedAt,
			&c.ArtworkCount,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return categories, nil
}

func (r *CategoryRepo) CategorySlugExists(ctx context.Context, slug string) (bool, error) {
	const op = "repository.CategoryRepo.CategorySlugExists"

	exists, err := slugExists(ctx, r.db, r.sb, "gallery_categories", slug)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

func slugExists(ctx context.Context, q Querier, sb sq.StatementBuilderType, table, slug string) (bool, error) {
	query, args, err := sb.Select("1").From(table).Where(sq.Eq{"slug": slug}).Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, err
	}

	var exists bool
	if err := q.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}
