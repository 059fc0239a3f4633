package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"artfolio/internal/domain/models"
	"artfolio/internal/storage"
)

const artworkCategoryFK = "artworks_category_id_fkey"

var artworkUnique = map[string]error{
	"artworks_slug_key": storage.ErrDuplicateSlug,
}

var artworkColumns = []string{
	"a.id",
	"a.title",
	"a.slug",
	"a.primary_image",
	"a.description",
	"a.category_id",
	"a.created_at",
	"a.updated_at",
}

type ArtworkRepo struct {
	db   *pgxpool.Pool
	sb   sq.StatementBuilderType
	tags *TagRepo
}

func NewArtworkRepo(db *pgxpool.Pool, tags *TagRepo) *ArtworkRepo {
	return &ArtworkRepo{
		db:   db,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		tags: tags,
	}
}

func scanArtwork(row pgx.Row, a *models.Artwork) error {
	return row.Scan(
		&a.ID,
		&a.Title,
		&a.Slug,
		&a.PrimaryImage,
		&a.Description,
		&a.CategoryID,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
}

// insertArtwork is shared with the import promotion transaction.
func insertArtwork(ctx context.Context, q Querier, sb sq.StatementBuilderType, a models.Artwork) (models.Artwork, error) {
	query, args, err := sb.Insert("artworks").
		Columns("title", "slug", "primary_image", "description", "category_id").
		Values(a.Title, a.Slug, a.PrimaryImage, a.Description, a.CategoryID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return models.Artwork{}, err
	}

	if err := q.QueryRow(ctx, query, args...).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if isForeignKeyViolation(err, artworkCategoryFK) {
			return models.Artwork{}, fmt.Errorf("category %s: %w", a.CategoryID, storage.ErrNotFound)
		}
		return models.Artwork{}, mapPgError(err, artworkUnique)
	}

	return a, nil
}

func (r *ArtworkRepo) CreateArtwork(ctx context.Context, a models.Artwork) (models.Artwork, error) {
	const op = "repository.ArtworkRepo.CreateArtwork"

	created, err := insertArtwork(ctx, r.db, r.sb, a)
	if err != nil {
		return models.Artwork{}, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

// UpdateArtwork never touches created_at.
func (r *ArtworkRepo) UpdateArtwork(ctx context.Context, a models.Artwork) (models.Artwork, error) {
	const op = "repository.ArtworkRepo.UpdateArtwork"

	query, args, err := r.sb.Update("artworks").
		Set("title", a.Title).
		Set("slug", a.Slug).
		Set("primary_image", a.PrimaryImage).
		Set("description", a.Description).
		Set("category_id", a.CategoryID).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": a.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return models.Artwork{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&a.CreatedAt, &a.UpdatedAt); err != nil {
		if isForeignKeyViolation(err, artworkCategoryFK) {
			return models.Artwork{}, fmt.Errorf("%s: category %s: %w", op, a.CategoryID, storage.ErrNotFound)
		}
		return models.Artwork{}, fmt.Errorf("%s: %w", op, mapPgError(notFound(err), artworkUnique))
	}

	return a, nil
}

// DeleteArtwork removes the artwork. Images and featured rows cascade, import items lose the reference.
func (r *ArtworkRepo) DeleteArtwork(ctx context.Context, id uuid.UUID) error {
	const op = "repository.ArtworkRepo.DeleteArtwork"

	query, args, err := r.sb.Delete("artworks").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (r *ArtworkRepo) ArtworkByID(ctx context.Context, id uuid.UUID) (models.Artwork, error) {
	const op = "repository.ArtworkRepo.ArtworkByID"
	return r.oneArtwork(ctx, op, sq.Eq{"a.id": id})
}

func (r *ArtworkRepo) ArtworkBySlug(ctx context.Context, slug string) (models.Artwork, error) {
	const op = "repository.ArtworkRepo.ArtworkBySlug"
	return r.oneArtwork(ctx, op, sq.Eq{"a.slug": slug})
}

// oneArtwork loads the artwork with its ordered additional images and tags.
func (r *ArtworkRepo) oneArtwork(ctx context.Context, op string, where sq.Eq) (models.Artwork, error) {
	query, args, err := r.sb.Select(artworkColumns...).From("artworks a").Where(where).ToSql()
	if err != nil {
		return models.Artwork{}, fmt.Errorf("%s: %w", op, err)
	}

	var a models.Artwork
	if err := scanArtwork(r.db.QueryRow(ctx, query, args...), &a); err != nil {
		return models.Artwork{}, fmt.Errorf("%s: %w", op, notFound(err))
	}

	a.AdditionalImages, err = r.ListImages(ctx, a.ID)
	if err != nil {
		return models.Artwork{}, fmt.Errorf("%s: %w", op, err)
	}

	tags, err := r.tags.TagNames(ctx, models.TagKindArtwork, []uuid.UUID{a.ID})
	if err != nil {
		return models.Artwork{}, fmt.Errorf("%s: %w", op, err)
	}
	a.Tags = nonNil(tags[a.ID])

	return a, nil
}

// ListArtworks returns a page of artworks, newest first, and the total matching count.
func (r *ArtworkRepo) ListArtworks(ctx context.Context, filter models.ArtworkFilter, page, perPage int) ([]models.Artwork, int, error) {
	const op = "repository.ArtworkRepo.ListArtworks"

	filtered := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.CategorySlug != "" {
			b = b.Where("a.category_id = (SELECT id FROM gallery_categories WHERE slug = ?)", filter.CategorySlug)
		}
		if filter.TagSlug != "" {
			b = b.Where(
				"EXISTS (SELECT 1 FROM artwork_tags at JOIN tags t ON t.id = at.tag_id WHERE at.artwork_id = a.id AND t.slug = ?)",
				filter.TagSlug,
			)
		}
		return b
	}

	countQuery, countArgs, err := filtered(r.sb.Select("COUNT(*)").From("artworks a")).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	var total int
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	limit, offset := pageBounds(page, perPage)
	query, args, err := filtered(r.sb.Select(artworkColumns...).From("artworks a")).
		OrderBy("a.created_at DESC", "a.id").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	artworks, err := r.queryArtworks(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return artworks, total, nil
}

// queryArtworks scans artwork rows and attaches their tags.
func (r *ArtworkRepo) queryArtworks(ctx context.Context, query string, args ...interface{}) ([]models.Artwork, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	artworks := make([]models.Artwork, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var a models.Artwork
		if err := scanArtwork(rows, &a); err != nil {
			return nil, err
		}
		artworks = append(artworks, a)
		ids = append(ids, a.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	tags, err := r.tags.TagNames(ctx, models.TagKindArtwork, ids)
	if err != nil {
		return nil, err
	}
	for i := range artworks {
		artworks[i].Tags = nonNil(tags[artworks[i].ID])
	}

	return artworks, nil
}

func (r *ArtworkRepo) ArtworkSlugExists(ctx context.Context, slug string) (bool, error) {
	const op = "repository.ArtworkRepo.ArtworkSlugExists"

	exists, err := slugExists(ctx, r.db, r.sb, "artworks", slug)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

// AddImage appends an additional image. The artwork row is locked while counting so
// concurrent inserts cannot exceed models.MaxAdditionalImages.
func (r *ArtworkRepo) AddImage(ctx context.Context, img models.AdditionalArtworkImage) (models.AdditionalArtworkImage, error) {
	const op = "repository.ArtworkRepo.AddImage"

	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		lockQuery, lockArgs, err := r.sb.Select("id").From("artworks").Where(sq.Eq{"id": img.ArtworkID}).Suffix("FOR UPDATE").ToSql()
		if err != nil {
			return err
		}

		var id uuid.UUID
		if err := tx.QueryRow(ctx, lockQuery, lockArgs...).Scan(&id); err != nil {
			return notFound(err)
		}

		countQuery, countArgs, err := r.sb.Select("COUNT(*)").From("additional_artwork_images").Where(sq.Eq{"artwork_id": img.ArtworkID}).ToSql()
		if err != nil {
			return err
		}

		var count int
		if err := tx.QueryRow(ctx, countQuery, countArgs...).Scan(&count); err != nil {
			return err
		}
		if count >= models.MaxAdditionalImages {
			return fmt.Errorf("artwork %s already has %d images: %w", img.ArtworkID, count, storage.ErrCapacityExceeded)
		}

		query, args, err := r.sb.Insert("additional_artwork_images").
			Columns("artwork_id", "image", "caption", "sort_order").
			Values(img.ArtworkID, img.Image, img.Caption, img.Order).
			Suffix("RETURNING id, created_at").
			ToSql()
		if err != nil {
			return err
		}

		return tx.QueryRow(ctx, query, args...).Scan(&img.ID, &img.CreatedAt)
	})
	if err != nil {
		return models.AdditionalArtworkImage{}, fmt.Errorf("%s: %w", op, err)
	}

	return img, nil
}

// RemoveImage deletes an additional image and returns the removed row.
func (r *ArtworkRepo) RemoveImage(ctx context.Context, artworkID, imageID uuid.UUID) (models.AdditionalArtworkImage, error) {
	const op = "repository.ArtworkRepo.RemoveImage"

	query, args, err := r.sb.Delete("additional_artwork_images").
		Where(sq.Eq{"id": imageID, "artwork_id": artworkID}).
		Suffix("RETURNING id, artwork_id, image, caption, sort_order, created_at").
		ToSql()
	if err != nil {
		return models.AdditionalArtworkImage{}, fmt.Errorf("%s: %w", op, err)
	}

	var img models.AdditionalArtworkImage
	err = r.db.QueryRow(ctx, query, args...).Scan(&img.ID, &img.ArtworkID, &img.Image, &img.Caption, &img.Order, &img.CreatedAt)
	if err != nil {
		return models.AdditionalArtworkImage{}, fmt.Errorf("%s: %w", op, notFound(err))
	}

	return img, nil
}

// ListImages orders by sort_order with insertion order breaking ties.
func (r *ArtworkRepo) ListImages(ctx context.Context, artworkID uuid.UUID) ([]models.AdditionalArtworkImage, error) {
	const op = "repository.ArtworkRepo.ListImages"

	query, args, err := r.sb.Select("id", "artwork_id", "image", "caption", "sort_order", "created_at").
		From("additional_artwork_images").
		Where(sq.Eq{"artwork_id": artworkID}).
		OrderBy("sort_order", "created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	images := make([]models.AdditionalArtworkImage, 0)
	for rows.Next() {
		var img models.AdditionalArtworkImage
		if err := rows.Scan(&img.ID, &img.ArtworkID, &img.Image, &img.Caption, &img.Order, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		images = append(images, img)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return images, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
