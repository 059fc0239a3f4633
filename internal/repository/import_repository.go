package repository

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/lib/pq"

	"artfolio/internal/domain/models"
	"artfolio/internal/storage"
)

var importUnique = map[string]error{
	"instagram_imported_items_external_post_id_key": storage.ErrDuplicateExternalID,
}

var importColumns = []string{
	"id",
	"external_post_id",
	"image_url",
	"caption",
	"imported_at",
	"status",
	"created_artwork_id",
}

// ImportRepo stages instagram items and drives their review status.
type ImportRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewImportRepo(db *pgxpool.Pool) *ImportRepo {
	return &ImportRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func scanImportItem(row pgx.Row, it *models.InstagramImportedItem) error {
	return row.Scan(
		&it.ID,
		&it.ExternalPostID,
		&it.ImageURL,
		&it.Caption,
		&it.ImportedAt,
		&it.Status,
		&it.CreatedArtworkID,
	)
}

func (r *ImportRepo) StageItem(ctx context.Context, it models.InstagramImportedItem) (models.InstagramImportedItem, error) {
	const op = "repository.ImportRepo.StageItem"

	query, args, err := r.sb.Insert("instagram_imported_items").
		Columns("external_post_id", "image_url", "caption", "status").
		Values(it.ExternalPostID, it.ImageURL, it.Caption, models.ImportStatusPendingReview).
		Suffix("RETURNING " + strings.Join(importColumns, ", ")).
		ToSql()
	if err != nil {
		return models.InstagramImportedItem{}, fmt.Errorf("%s: %w", op, err)
	}

	var staged models.InstagramImportedItem
	if err := scanImportItem(r.db.QueryRow(ctx, query, args...), &staged); err != nil {
		return models.InstagramImportedItem{}, fmt.Errorf("%s: %w", op, mapPgError(err, importUnique))
	}

	return staged, nil
}

func (r *ImportRepo) ItemByID(ctx context.Context, id uuid.UUID) (models.InstagramImportedItem, error) {
	const op = "repository.ImportRepo.ItemByID"

	query, args, err := r.sb.Select(importColumns...).
		From("instagram_imported_items").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.InstagramImportedItem{}, fmt.Errorf("%s: %w", op, err)
	}

	var it models.InstagramImportedItem
	if err := scanImportItem(r.db.QueryRow(ctx, query, args...), &it); err != nil {
		return models.InstagramImportedItem{}, fmt.Errorf("%s: %w", op, notFound(err))
	}

	return it, nil
}

// ListItems pages staged items newest first. An empty status lists every item.
func (r *ImportRepo) ListItems(ctx context.Context, status models.ImportStatus, page, perPage int) ([]models.InstagramImportedItem, int, error) {
	const op = "repository.ImportRepo.ListItems"

	filtered := func(b sq.SelectBuilder) sq.SelectBuilder {
		if status != "" {
			b = b.Where(sq.Eq{"status": status})
		}
		return b
	}

	countQuery, countArgs, err := filtered(r.sb.Select("COUNT(*)").From("instagram_imported_items")).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	var total int
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	limit, offset := pageBounds(page, perPage)
	query, args, err := filtered(r.sb.Select(importColumns...).From("instagram_imported_items")).
		OrderBy("imported_at DESC", "id").
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

	items := make([]models.InstagramImportedItem, 0)
	for rows.Next() {
		var it models.InstagramImportedItem
		if err := scanImportItem(rows, &it); err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return items, total, nil
}

// Promote creates the artwork and marks the item processed in one transaction.
// The item row is locked and must still be pending review.
func (r *ImportRepo) Promote(ctx context.Context, itemID uuid.UUID, artwork models.Artwork) (models.Artwork, error) {
	const op = "repository.ImportRepo.Promote"

	var created models.Artwork
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		lockQuery, lockArgs, err := r.sb.Select("status").
			From("instagram_imported_items").
			Where(sq.Eq{"id": itemID}).
			Suffix("FOR UPDATE").
			ToSql()
		if err != nil {
			return err
		}

		var status models.ImportStatus
		if err := tx.QueryRow(ctx, lockQuery, lockArgs...).Scan(&status); err != nil {
			return notFound(err)
		}
		if status != models.ImportStatusPendingReview {
			return fmt.Errorf("item %s is %s: %w", itemID, status, storage.ErrInvalidTransition)
		}

		created, err = insertArtwork(ctx, tx, r.sb, artwork)
		if err != nil {
			return err
		}

		query, args, err := r.sb.Update("instagram_imported_items").
			Set("status", models.ImportStatusProcessed).
			Set("created_artwork_id", created.ID).
			Where(sq.Eq{"id": itemID}).
			ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, query, args...)
		return err
	})
	if err != nil {
		return models.Artwork{}, fmt.Errorf("%s: %w", op, err)
	}

	created.Tags = []string{}
	return created, nil
}

// Ignore moves pending items to ignored. Items in any other state are skipped.
func (r *ImportRepo) Ignore(ctx context.Context, ids []uuid.UUID) (int64, error) {
	const op = "repository.ImportRepo.Ignore"

	n, err := r.transition(ctx, ids,
		[]models.ImportStatus{models.ImportStatusPendingReview},
		r.sb.Update("instagram_imported_items").Set("status", models.ImportStatusIgnored),
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}

// Reset returns processed or ignored items to pending review and always clears the artwork reference.
func (r *ImportRepo) Reset(ctx context.Context, ids []uuid.UUID) (int64, error) {
	const op = "repository.ImportRepo.Reset"

	n, err := r.transition(ctx, ids,
		[]models.ImportStatus{models.ImportStatusProcessed, models.ImportStatusIgnored},
		r.sb.Update("instagram_imported_items").
			Set("status", models.ImportStatusPendingReview).
			Set("created_artwork_id", nil),
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}

func (r *ImportRepo) transition(ctx context.Context, ids []uuid.UUID, from []models.ImportStatus, update sq.UpdateBuilder) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	fromStrings := make([]string, len(from))
	for i, s := range from {
		fromStrings[i] = string(s)
	}

	query, args, err := update.
		Where("id = ANY(?)", pq.Array(uuidStrings(ids))).
		Where("status = ANY(?)", pq.Array(fromStrings)).
		ToSql()
	if err != nil {
		return 0, err
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
