package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"

	"github.com/clientnudge/invoicing/internal/entity"
)

func (r *Repository) CreateSubscription(ctx context.Context, s entity.Subscription) error {
	const q = `
	INSERT INTO subscriptions (id, user_id, plan, status, start_date, end_date, cancelled_at, cancellation_reason, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		s.ID,
		s.UserID,
		s.Plan,
		s.Status,
		s.StartDate,
		s.EndDate,
		s.CancelledAt,
		zeronull.Text(s.CancellationReason),
		s.CreatedAt,
	)

	return err
}

func (r *Repository) ActiveSubscriptions(ctx context.Context) ([]entity.Subscription, error) {
	const fetchLimit = 10000

	q := selectSubscription + " WHERE status = $1 LIMIT $2"

	rows, err := r.db.Query(ctx, q, entity.SubscriptionStatusActive, fetchLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []entity.Subscription

	for rows.Next() {
		s, err := scanSubscription(rows)
		if err != nil {
			return nil, err
		}

		subs = append(subs, s)
	}

	return subs, rows.Err()
}

func (r *Repository) SubscriptionForUser(ctx context.Context, userID uuid.UUID) (entity.Subscription, error) {
	q := selectSubscription + " WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1"
	return scanSubscription(r.db.QueryRow(ctx, q, userID))
}

func (r *Repository) CancelSubscription(ctx context.Context, id uuid.UUID, cancelledAt time.Time, reason string) error {
	const q = `UPDATE subscriptions SET status = $1, cancelled_at = $2, cancellation_reason = $3 WHERE id = $4`

	result, err := r.db.Exec(ctx, q, entity.SubscriptionStatusCancelled, cancelledAt, reason, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func scanSubscription(row pgx.Row) (s entity.Subscription, err error) {
	err = row.Scan(
		&s.ID,
		&s.UserID,
		&s.Plan,
		&s.Status,
		&s.StartDate,
		&s.EndDate,
		&s.CancelledAt,
		(*zeronull.Text)(&s.CancellationReason),
		&s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Subscription{}, entity.ErrNotFound
		}

		return entity.Subscription{}, err
	}

	return s, nil
}
