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

const blogAuthorFK = "blog_posts_author_id_fkey"

var blogUnique = map[string]error{
	"blog_posts_slug_key": storage.ErrDuplicateSlug,
}

var blogColumns = []string{
	"p.id",
	"p.title",
	"p.slug",
	"p.cover_image",
	"p.content",
	"p.summary",
	"p.author_id",
	"u.name",
	"p.published_at",
	"p.updated_at",
}

type BlogRepo struct {
	db   *pgxpool.Pool
	sb   sq.StatementBuilderType
	tags *TagRepo
}

func NewBlogRepo(db *pgxpool.Pool, tags *TagRepo) *BlogRepo {
	return &BlogRepo{
		db:   db,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		tags: tags,
	}
}

func scanPost(row pgx.Row, p *models.BlogPost) error {
	return row.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.CoverImage,
		&p.Content,
		&p.Summary,
		&p.AuthorID,
		&p.AuthorName,
		&p.PublishedAt,
		&p.UpdatedAt,
	)
}

func (r *BlogRepo) SaveBlogPost(ctx context.Context, p models.BlogPost) (models.BlogPost, error) {
	const op = "repository.BlogRepo.SaveBlogPost"

	query, args, err := r.sb.Insert("blog_posts").
		Columns("title", "slug", "cover_image", "content", "summary", "author_id").
		Values(p.Title, p.Slug, p.CoverImage, p.Content, p.Summary, p.AuthorID).
		Suffix("RETURNING id, published_at, updated_at").
		ToSql()
	if err != nil {
		return models.BlogPost{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&p.ID, &p.PublishedAt, &p.UpdatedAt); err != nil {
		if isForeignKeyViolation(err, blogAuthorFK) {
			return models.BlogPost{}, fmt.Errorf("%s: author %s: %w", op, p.AuthorID, storage.ErrUserNotFound)
		}
		return models.BlogPost{}, fmt.Errorf("%s: %w", op, mapPgError(err, blogUnique))
	}

	return p, nil
}

// UpdateBlogPost leaves author_id and published_at untouched.
func (r *BlogRepo) UpdateBlogPost(ctx context.Context, p models.BlogPost) (models.BlogPost, error) {
	const op = "repository.BlogRepo.UpdateBlogPost"

	query, args, err := r.sb.Update("blog_posts").
		Set("title", p.Title).
		Set("slug", p.Slug).
		Set("cover_image", p.CoverImage).
		Set("content", p.Content).
		Set("summary", p.Summary).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": p.ID}).
		Suffix("RETURNING author_id, published_at, updated_at").
		ToSql()
	if err != nil {
		return models.BlogPost{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&p.AuthorID, &p.PublishedAt, &p.UpdatedAt); err != nil {
		return models.BlogPost{}, fmt.Errorf("%s: %w", op, mapPgError(notFound(err), blogUnique))
	}

	return p, nil
}

func (r *BlogRepo) DeleteBlogPost(ctx context.Context, id uuid.UUID) error {
	const op = "repository.BlogRepo.DeleteBlogPost"

	query, args, err := r.sb.Delete("blog_posts").Where(sq.Eq{"id": id}).ToSql()
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

func (r *BlogRepo) GetBlogPostByID(ctx context.Context, id uuid.UUID) (models.BlogPost, error) {
	const op = "repository.BlogRepo.GetBlogPostByID"
	return r.onePost(ctx, op, sq.Eq{"p.id": id})
}

func (r *BlogRepo) GetBlogPostBySlug(ctx context.Context, slug string) (models.BlogPost, error) {
	const op = "repository.BlogRepo.GetBlogPostBySlug"
	return r.onePost(ctx, op, sq.Eq{"p.slug": slug})
}

func (r *BlogRepo) selectPosts(columns ...string) sq.SelectBuilder {
	return r.sb.Select(columns...).
		From("blog_posts p").
		Join("users u ON u.id = p.author_id")
}

func (r *BlogRepo) onePost(ctx context.Context, op string, where sq.Eq) (models.BlogPost, error) {
	query, args, err := r.selectPosts(blogColumns...).Where(where).ToSql()
	if err != nil {
		return models.BlogPost{}, fmt.Errorf("%s: %w", op, err)
	}

	var p models.BlogPost
	if err := scanPost(r.db.QueryRow(ctx, query, args...), &p); err != nil {
		return models.BlogPost{}, fmt.Errorf("%s: %w", op, notFound(err))
	}

	tags, err := r.tags.TagNames(ctx, models.TagKindPost, []uuid.UUID{p.ID})
	if err != nil {
		return models.BlogPost{}, fmt.Errorf("%s: %w", op, err)
	}
	p.Tags = nonNil(tags[p.ID])

	return p, nil
}

// GetBlogPosts returns a page of posts, newest first, optionally restricted to a tag slug.
func (r *BlogRepo) GetBlogPosts(ctx context.Context, tagSlug string, page, perPage int) ([]models.BlogPost, int, error) {
	const op = "repository.BlogRepo.GetBlogPosts"

	filtered := func(b sq.SelectBuilder) sq.SelectBuilder {
		if tagSlug != "" {
			b = b.Where(
				"EXISTS (SELECT 1 FROM blog_post_tags pt JOIN tags t ON t.id = pt.tag_id WHERE pt.post_id = p.id AND t.slug = ?)",
				tagSlug,
			)
		}
		return b
	}

	countQuery, countArgs, err := filtered(r.sb.Select("COUNT(*)").From("blog_posts p")).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	var total int
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	limit, offset := pageBounds(page, perPage)
	query, args, err := filtered(r.selectPosts(blogColumns...)).
		OrderBy("p.published_at DESC", "p.id").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	posts := make([]models.BlogPost, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var p models.BlogPost
		if err := scanPost(rows, &p); err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		posts = append(posts, p)
		ids = append(ids, p.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	tags, err := r.tags.TagNames(ctx, models.TagKindPost, ids)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	for i := range posts {
		posts[i].Tags = nonNil(tags[posts[i].ID])
	}

	return posts, total, nil
}

func (r *BlogRepo) BlogSlugExists(ctx context.Context, slug string) (bool, error) {
	const op = "repository.BlogRepo.BlogSlugExists"

	exists, err := slugExists(ctx, r.db, r.sb, "blog_posts", slug)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}
