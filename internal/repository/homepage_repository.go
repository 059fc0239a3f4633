package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"

	"artfolio/internal/domain/models"
	"artfolio/internal/storage"
)

const featuredArtworkFK = "featured_homepage_artworks_artwork_id_fkey"

// HomepageRepo stores hero slides and featured artwork selections.
type HomepageRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewHomepageRepo(db *pgxpool.Pool) *HomepageRepo {
	return &HomepageRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *HomepageRepo) CreateHeroSlide(ctx context.Context, s models.HeroSlide) (models.HeroSlide, error) {
	const op = "repository.HomepageRepo.CreateHeroSlide"

	query, args, err := r.sb.Insert("hero_slides").
		Columns("title", "image", "link_url", "sort_order", "is_active").
		Values(s.Title, s.Image, s.LinkURL, s.Order, s.IsActive).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return models.HeroSlide{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&s.ID, &s.CreatedAt); err != nil {
		return models.HeroSlide{}, fmt.Errorf("%s: %w", op, err)
	}

	return s, nil
}

func (r *HomepageRepo) UpdateHeroSlide(ctx context.Context, s models.HeroSlide) (models.HeroSlide, error) {
	const op = "repository.HomepageRepo.UpdateHeroSlide"

	query, args, err := r.sb.Update("hero_slides").
		Set("title", s.Title).
		Set("image", s.Image).
		Set("link_url", s.LinkURL).
		Set("sort_order", s.Order).
		Set("is_active", s.IsActive).
		Where(sq.Eq{"id": s.ID}).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return models.HeroSlide{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&s.CreatedAt); err != nil {
		return models.HeroSlide{}, fmt.Errorf("%s: %w", op, notFound(err))
	}

	return s, nil
}

func (r *HomepageRepo) DeleteHeroSlide(ctx context.Context, id uuid.UUID) error {
	const op = "repository.HomepageRepo.DeleteHeroSlide"

	if err := deleteByID(ctx, r.db, r.sb, "hero_slides", id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *HomepageRepo) HeroSlideByID(ctx context.Context, id uuid.UUID) (models.HeroSlide, error) {
	const op = "repository.HomepageRepo.HeroSlideByID"

	query, args, err := r.sb.Select("id", "title", "image", "link_url", "sort_order", "is_active", "created_at").
		From("hero_slides").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.HeroSlide{}, fmt.Errorf("%s: %w", op, err)
	}

	var s models.HeroSlide
	err = r.db.QueryRow(ctx, query, args...).Scan(&s.ID, &s.Title, &s.Image, &s.LinkURL, &s.Order, &s.IsActive, &s.CreatedAt)
	if err != nil {
		return models.HeroSlide{}, fmt.Errorf("%s: %w", op, notFound(err))
	}

	return s, nil
}

// ListHeroSlides orders by sort_order then creation. activeOnly hides inactive slides.
func (r *HomepageRepo) ListHeroSlides(ctx context.Context, activeOnly bool) ([]models.HeroSlide, error) {
	const op = "repository.HomepageRepo.ListHeroSlides"

	b := r.sb.Select("id", "title", "image", "link_url", "sort_order", "is_active", "created_at").
		From("hero_slides").
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

	slides := make([]models.HeroSlide, 0)
	for rows.Next() {
		var s models.HeroSlide
		if err := rows.Scan(&s.ID, &s.Title, &s.Image, &s.LinkURL, &s.Order, &s.IsActive, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		slides = append(slides, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return slides, nil
}

func (r *HomepageRepo) CreateFeatured(ctx context.Context, f models.FeaturedHomepageArtwork) (models.FeaturedHomepageArtwork, error) {
	const op = "repository.HomepageRepo.CreateFeatured"

	query, args, err := r.sb.Insert("featured_homepage_artworks").
		Columns("artwork_id", "sort_order", "is_active").
		Values(f.ArtworkID, f.Order, f.IsActive).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return models.FeaturedHomepageArtwork{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&f.ID, &f.CreatedAt); err != nil {
		if isForeignKeyViolation(err, featuredArtworkFK) {
			return models.FeaturedHomepageArtwork{}, fmt.Errorf("%s: artwork %s: %w", op, f.ArtworkID, storage.ErrNotFound)
		}
		return models.FeaturedHomepageArtwork{}, fmt.Errorf("%s: %w", op, err)
	}

	return f, nil
}

func (r *HomepageRepo) UpdateFeatured(ctx context.Context, f models.FeaturedHomepageArtwork) (models.FeaturedHomepageArtwork, error) {
	const op = "repository.HomepageRepo.UpdateFeatured"

	query, args, err := r.sb.Update("featured_homepage_artworks").
		Set("artwork_id", f.ArtworkID).
		Set("sort_order", f.Order).
		Set("is_active", f.IsActive).
		Where(sq.Eq{"id": f.ID}).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return models.FeaturedHomepageArtwork{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&f.CreatedAt); err != nil {
		if isForeignKeyViolation(err, featuredArtworkFK) {
			return models.FeaturedHomepageArtwork{}, fmt.Errorf("%s: artwork %s: %w", op, f.ArtworkID, storage.ErrNotFound)
		}
		return models.FeaturedHomepageArtwork{}, fmt.Errorf("%s: %w", op, notFound(err))
	}

	return f, nil
}

func (r *HomepageRepo) DeleteFeatured(ctx context.Context, id uuid.UUID) error {
	const op = "repository.HomepageRepo.DeleteFeatured"

	if err := deleteByID(ctx, r.db, r.sb, "featured_homepage_artworks", id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *HomepageRepo) FeaturedByID(ctx context.Context, id uuid.UUID) (models.FeaturedHomepageArtwork, error) {
	const op = "repository.HomepageRepo.FeaturedByID"

	query, args, err := r.sb.Select("id", "artwork_id", "sort_order", "is_active", "created_at").
		From("featured_homepage_artworks").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.FeaturedHomepageArtwork{}, fmt.Errorf("%s: %w", op, err)
	}

	var f models.FeaturedHomepageArtwork
	if err := r.db.QueryRow(ctx, query, args...).Scan(&f.ID, &f.ArtworkID, &f.Order, &f.IsActive, &f.CreatedAt); err != nil {
		return models.FeaturedHomepageArtwork{}, fmt.Errorf("%s: %w", op, notFound(err))
	}

	return f, nil
}

// ListFeatured returns featured rows ordered by sort_order. The referenced artwork is
// joined with LEFT JOIN so a row whose artwork is gone comes back with a nil Artwork.
// limit <= 0 means no limit.
func (r *HomepageRepo) ListFeatured(ctx context.Context, activeOnly bool, limit int) ([]models.FeaturedHomepageArtwork, error) {
	const op = "repository.HomepageRepo.ListFeatured"

	b := r.sb.Select(
		"f.id", "f.artwork_id", "f.sort_order", "f.is_active", "f.created_at",
		"a.id", "a.title", "a.slug", "a.primary_image", "a.description", "a.category_id", "a.created_at", "a.updated_at",
	).
		From("featured_homepage_artworks f").
		LeftJoin("artworks a ON a.id = f.artwork_id").
		OrderBy("f.sort_order", "f.created_at", "f.id")
	if activeOnly {
		b = b.Where(sq.Eq{"f.is_active": true})
	}
	if limit > 0 {
		b = b.Limit(uint64(limit))
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

	featured := make([]models.FeaturedHomepageArtwork, 0)
	for rows.Next() {
		var (
			f           models.FeaturedHomepageArtwork
			artworkID   uuid.NullUUID
			title       *string
			slug        *string
			image       *string
			description *string
			categoryID  uuid.NullUUID
			createdAt   *time.Time
			updatedAt   *time.Time
		)
		if err := rows.Scan(
			&f.ID, &f.ArtworkID, &f.Order, &f.IsActive, &f.CreatedAt,
			&artworkID, &title, &slug, &image, &description, &categoryID, &createdAt, &updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if artworkID.Valid {
			f.Artwork = &models.Artwork{
				ID:           artworkID.UUID,
				Title:        *title,
				Slug:         *slug,
				PrimaryImage: *image,
				Description:  *description,
				CategoryID:   categoryID.UUID,
				CreatedAt:    *createdAt,
				UpdatedAt:    *updatedAt,
				Tags:         []string{},
			}
		}

		featured = append(featured, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return featured, nil
}

func deleteByID(ctx context.Context, q Querier, sb sq.StatementBuilderType, table string, id uuid.UUID) error {
	query, args, err := sb.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	return nil
}
