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

var subscriberUnique = map[string]error{
	"subscribers_email_key": storage.ErrDuplicateEmail,
}

const subscriberReturning = "RETURNING id, email, is_active, confirmation_token, unsubscribe_token, subscribed_at"

type SubscriberRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewSubscriberRepo(db *pgxpool.Pool) *SubscriberRepo {
	return &SubscriberRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func scanSubscriber(row pgx.Row, s *models.Subscriber) error {
	return row.Scan(&s.ID, &s.Email, &s.IsActive, &s.ConfirmationToken, &s.UnsubscribeToken, &s.SubscribedAt)
}

func (r *SubscriberRepo) CreateSubscriber(ctx context.Context, s models.Subscriber) (models.Subscriber, error) {
	const op = "repository.SubscriberRepo.CreateSubscriber"

	query, args, err := r.sb.Insert("subscribers").
		Columns("email", "is_active", "confirmation_token", "unsubscribe_token").
		Values(s.Email, false, s.ConfirmationToken, s.UnsubscribeToken).
		Suffix(subscriberReturning).
		ToSql()
	if err != nil {
		return models.Subscriber{}, fmt.Errorf("%s: %w", op, err)
	}

	var created models.Subscriber
	if err := scanSubscriber(r.db.QueryRow(ctx, query, args...), &created); err != nil {
		return models.Subscriber{}, fmt.Errorf("%s: %w", op, mapPgError(err, subscriberUnique))
	}

	return created, nil
}

func (r *SubscriberRepo) DeleteSubscriber(ctx context.Context, id uuid.UUID) error {
	const op = "repository.SubscriberRepo.DeleteSubscriber"

	if err := deleteByID(ctx, r.db, r.sb, "subscribers", id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Activate sets is_active for the confirmation token. activated is false when the
// subscriber was already active, so repeated confirmations are harmless.
func (r *SubscriberRepo) Activate(ctx context.Context, confirmationToken uuid.UUID) (sub models.Subscriber, activated bool, err error) {
	const op = "repository.SubscriberRepo.Activate"

	query, args, err := r.sb.Update("subscribers").
		Set("is_active", true).
		Where(sq.Eq{"confirmation_token": confirmationToken, "is_active": false}).
		Suffix(subscriberReturning).
		ToSql()
	if err != nil {
		return models.Subscriber{}, false, fmt.Errorf("%s: %w", op, err)
	}

	err = scanSubscriber(r.db.QueryRow(ctx, query, args...), &sub)
	if err == nil {
		return sub, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return models.Subscriber{}, false, fmt.Errorf("%s: %w", op, err)
	}

	sub, err = r.subscriberBy(ctx, sq.Eq{"confirmation_token": confirmationToken})
	if err != nil {
		return models.Subscriber{}, false, fmt.Errorf("%s: %w", op, err)
	}

	return sub, false, nil
}

// Deactivate clears is_active for the unsubscribe token, confirmed or not.
func (r *SubscriberRepo) Deactivate(ctx context.Context, unsubscribeToken uuid.UUID) (models.Subscriber, error) {
	const op = "repository.SubscriberRepo.Deactivate"

	query, args, err := r.sb.Update("subscribers").
		Set("is_active", false).
		Where(sq.Eq{"unsubscribe_token": unsubscribeToken}).
		Suffix(subscriberReturning).
		ToSql()
	if err != nil {
		return models.Subscriber{}, fmt.Errorf("%s: %w", op, err)
	}

	var sub models.Subscriber
	if err := scanSubscriber(r.db.QueryRow(ctx, query, args...), &sub); err != nil {
		return models.Subscriber{}, fmt.Errorf("%s: %w", op, notFound(err))
	}

	return sub, nil
}

func (r *SubscriberRepo) SubscriberByEmail(ctx context.Context, email string) (models.Subscriber, error) {
	const op = "repository.SubscriberRepo.SubscriberByEmail"

	sub, err := r.subscriberBy(ctx, sq.Eq{"email": email})
	if err != nil {
		return models.Subscriber{}, fmt.Errorf("%s: %w", op, err)
	}

	return sub, nil
}

func (r *SubscriberRepo) subscriberBy(ctx context.Context, where sq.Eq) (models.Subscriber, error) {
	query, args, err := r.sb.Select("id", "email", "is_active", "confirmation_token", "unsubscribe_token", "subscribed_at").
		From("subscribers").
		Where(where).
		ToSql()
	if err != nil {
		return models.Subscriber{}, err
	}

	var sub models.Subscriber
	if err := scanSubscriber(r.db.QueryRow(ctx, query, args...), &sub); err != nil {
		return models.Subscriber{}, notFound(err)
	}

	return sub, nil
}

// ListSubscribers pages subscribers, newest first. A nil active lists both states.
func (r *SubscriberRepo) ListSubscribers(ctx context.Context, active *bool, page, perPage int) ([]models.Subscriber, int, error) {
	const op = "repository.SubscriberRepo.ListSubscribers"

	filtered := func(b sq.SelectBuilder) sq.SelectBuilder {
		if active != nil {
			b = b.Where(sq.Eq{"is_active": *active})
		}
		return b
	}

	countQuery, countArgs, err := filtered(r.sb.Select("COUNT(*)").From("subscribers")).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	var total int
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	limit, offset := pageBounds(page, perPage)
	query, args, err := filtered(
		r.sb.Select("id", "email", "is_active", "confirmation_token", "unsubscribe_token", "subscribed_at").From("subscribers"),
	).
		OrderBy("subscribed_at DESC", "id").
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

	subs := make([]models.Subscriber, 0)
	for rows.Next() {
		var s models.Subscriber
		if err := scanSubscriber(rows, &s); err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		subs = append(subs, s)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return subs, total, nil
}
