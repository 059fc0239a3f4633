package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/lib/pq"

	"artfolio/internal/domain/models"
	"artfolio/internal/storage"
)

var tagUnique = map[string]error{
	"tags_name_key": storage.ErrDuplicateName,
	"tags_slug_key": storage.ErrDuplicateSlug,
}

// tagLink describes the join table connecting tags to one kind of entity.
type tagLink struct {
	table  string
	column string
	// owner is the tagged table, used to verify the entity exists.
	owner string
}

func linkFor(kind models.TagKind) (tagLink, error) {
	switch kind {
	case models.TagKindArtwork:
		return tagLink{table: "artwork_tags", column: "artwork_id", owner: "artworks"}, nil
	case models.TagKindPost:
		return tagLink{table: "blog_post_tags", column: "post_id", owner: "blog_posts"}, nil
	}
	return tagLink{}, fmt.Errorf("unknown tag kind %q", kind)
}

type TagRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewTagRepo(db *pgxpool.Pool) *TagRepo {
	return &TagRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *TagRepo) CreateTag(ctx context.Context, name, slug string) (models.Tag, error) {
	const op = "repository.TagRepo.CreateTag"

	query, args, err := r.sb.Insert("tags").
		Columns("name", "slug").
		Values(name, slug).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.Tag{}, fmt.Errorf("%s: %w", op, err)
	}

	tag := models.Tag{Name: name, Slug: slug}
	if err := r.db.QueryRow(ctx, query, args...).Scan(&tag.ID); err != nil {
		return models.Tag{}, fmt.Errorf("%s: %w", op, mapPgError(err, tagUnique))
	}

	return tag, nil
}

// TagsByNames returns the existing tags among names, keyed by name.
func (r *TagRepo) TagsByNames(ctx context.Context, names []string) (map[string]models.Tag, error) {
	const op = "repository.TagRepo.TagsByNames"

	out := make(map[string]models.Tag, len(names))
	if len(names) == 0 {
		return out, nil
	}

	query, args, err := r.sb.Select("id", "name", "slug").
		From("tags").
		Where("name = ANY(?)", pq.Array(names)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		out[t.Name] = t
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (r *TagRepo) TagSlugExists(ctx context.Context, slug string) (bool, error) {
	const op = "repository.TagRepo.TagSlugExists"

	exists, err := slugExists(ctx, r.db, r.sb, "tags", slug)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

// LinkTags attaches tags to an entity. With replace set the previous links are removed first.
func (r *TagRepo) LinkTags(ctx context.Context, kind models.TagKind, entityID uuid.UUID, tagIDs []uuid.UUID, replace bool) error {
	const op = "repository.TagRepo.LinkTags"

	link, err := linkFor(kind)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = inTx(ctx, r.db, func(tx pgx.Tx) error {
		lockQuery, lockArgs, err := r.sb.Select("id").From(link.owner).Where(sq.Eq{"id": entityID}).Suffix("FOR UPDATE").ToSql()
		if err != nil {
			return err
		}

		var id uuid.UUID
		if err := tx.QueryRow(ctx, lockQuery, lockArgs...).Scan(&id); err != nil {
			return notFound(err)
		}

		if replace {
			query, args, err := r.sb.Delete(link.table).Where(sq.Eq{link.column: entityID}).ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, query, args...); err != nil {
				return err
			}
		}

		if len(tagIDs) == 0 {
			return nil
		}

		insert := r.sb.Insert(link.table).Columns(link.column, "tag_id")
		for _, tagID := range tagIDs {
			insert = insert.Values(entityID, tagID)
		}

		query, args, err := insert.Suffix("ON CONFLICT DO NOTHING").ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, query, args...)
		return mapPgError(err, nil)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// TagNames loads tag names for a set of entities, sorted by name.
func (r *TagRepo) TagNames(ctx context.Context, kind models.TagKind, ids []uuid.UUID) (map[uuid.UUID][]string, error) {
	const op = "repository.TagRepo.TagNames"

	out := make(map[uuid.UUID][]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	link, err := linkFor(kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query, args, err := r.sb.Select("l."+link.column, "t.name").
		From(link.table + " l").
		Join("tags t ON t.id = l.tag_id").
		Where("l."+link.column+" = ANY(?)", pq.Array(uuidStrings(ids))).
		OrderBy("t.name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id   uuid.UUID
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		out[id] = append(out[id], name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// ListTags returns tags used by at least one entity of the given kind, with usage counts.
func (r *TagRepo) ListTags(ctx context.Context, kind models.TagKind) ([]models.Tag, error) {
	const op = "repository.TagRepo.ListTags"

	link, err := linkFor(kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query, args, err := r.sb.Select("t.id", "t.name", "t.slug", "COUNT(*)").
		From("tags t").
		Join(link.table + " l ON l.tag_id = t.id").
		GroupBy("t.id", "t.name", "t.slug").
		OrderBy("t.name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	tags := make([]models.Tag, 0)
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.Count); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		tags = append(tags, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tags, nil
}
