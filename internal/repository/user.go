package repository

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/clientnudge/invoicing/internal/entity"
)

func (r *Repository) CreateUser(ctx context.Context, u entity.User) error {
	const q = `
	INSERT INTO users (id, email, full_name, base_currency, plan, subscription_status, invoice_count, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, q, u.ID, u.Email, u.FullName, u.BaseCurrency, u.Plan, u.SubscriptionStatus, u.InvoiceCount, u.CreatedAt)

	return err
}

func (r *Repository) User(ctx context.Context, id uuid.UUID) (entity.User, error) {
	q := selectUser + " WHERE id = $1"
	return scanUser(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) UpdateUserPlan(ctx context.Context, id uuid.UUID, plan entity.Plan, status entity.SubscriptionState) error {
	const q = `UPDATE users SET plan = $1, subscription_status = $2 WHERE id = $3`

	result, err := r.db.Exec(ctx, q, plan, status, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) IncrementUserInvoiceCount(ctx context.Context, id uuid.UUID) error {
	const q = `UPDATE users SET invoice_count = invoice_count + 1 WHERE id = $1`

	result, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func scanUser(row pgx.Row) (u entity.User, err error) {
	err = row.Scan(
		&u.ID,
		&u.Email,
		&u.FullName,
		&u.BaseCurrency,
		&u.Plan,
		&u.SubscriptionStatus,
		&u.InvoiceCount,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, entity.ErrNotFound
		}

		return entity.User{}, err
	}

	return u, nil
}
