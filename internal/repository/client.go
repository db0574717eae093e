package repository

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/shopspring/decimal"

	"github.com/clientnudge/invoicing/internal/entity"
)

func (r *Repository) CreateClient(ctx context.Context, c entity.Client) error {
	const q = `
	INSERT INTO clients (
		id,
		user_id,
		name,
		email,
		phone,
		company,
		payment_score,
		avg_payment_days,
		total_paid,
		total_pending,
		created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		c.ID,
		c.UserID,
		c.Name,
		c.Email,
		zeronull.Text(c.Phone),
		zeronull.Text(c.Company),
		c.PaymentScore,
		c.AvgPaymentDays,
		c.TotalPaid,
		c.TotalPending,
		c.CreatedAt,
	)

	return err
}

func (r *Repository) Client(ctx context.Context, userID, id uuid.UUID) (entity.Client, error) {
	q := selectClient + " WHERE id = $1 AND user_id = $2"
	return scanClient(r.db.QueryRow(ctx, q, id, userID))
}

// ClientByID is the unscoped lookup used by the sweep, which acts on behalf
// of the invoice owner.
func (r *Repository) ClientByID(ctx context.Context, id uuid.UUID) (entity.Client, error) {
	q := selectClient + " WHERE id = $1"
	return scanClient(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) Clients(ctx context.Context, userID uuid.UUID) ([]entity.Client, error) {
	q := selectClient + " WHERE user_id = $1 ORDER BY created_at"

	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []entity.Client

	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}

		clients = append(clients, c)
	}

	return clients, rows.Err()
}

func (r *Repository) UpdateClient(ctx context.Context, c entity.Client) error {
	const q = `UPDATE clients SET name = $1, email = $2, phone = $3, company = $4 WHERE id = $5 AND user_id = $6`

	result, err := r.db.Exec(ctx, q, c.Name, c.Email, zeronull.Text(c.Phone), zeronull.Text(c.Company), c.ID, c.UserID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteClient(ctx context.Context, userID, id uuid.UUID) error {
	const q = `DELETE FROM clients WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(ctx, q, id, userID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// AddClientTotalPaid increments the client's paid aggregate on payment
// completion. Stats are opportunistic, never recomputed from history.
func (r *Repository) AddClientTotalPaid(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	const q = `UPDATE clients SET total_paid = total_paid + $1 WHERE id = $2`

	result, err := r.db.Exec(ctx, q, amount, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func scanClient(row pgx.Row) (c entity.Client, err error) {
	err = row.Scan(
		&c.ID,
		&c.UserID,
		&c.Name,
		&c.Email,
		(*zeronull.Text)(&c.Phone),
		(*zeronull.Text)(&c.Company),
		&c.PaymentScore,
		&c.AvgPaymentDays,
		&c.TotalPaid,
		&c.TotalPending,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Client{}, entity.ErrNotFound
		}

		return entity.Client{}, err
	}

	return c, nil
}
