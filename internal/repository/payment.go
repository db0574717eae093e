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

func (r *Repository) CreatePayment(ctx context.Context, p entity.Payment) error {
	const q = `
	INSERT INTO payments (id, invoice_id, processor, provider_session_id, provider_payment_id, amount, currency, status, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		p.ID,
		p.InvoiceID,
		p.Processor,
		zeronull.Text(p.ProviderSessionID),
		zeronull.Text(p.ProviderPaymentID),
		p.Amount,
		p.Currency,
		p.Status,
		p.CreatedAt,
		p.UpdatedAt,
	)

	return err
}

func (r *Repository) PaymentBySession(ctx context.Context, processor entity.PaymentProcessor, sessionID string) (entity.Payment, error) {
	q := selectPayment + " WHERE processor = $1 AND provider_session_id = $2"
	return scanPayment(r.db.QueryRow(ctx, q, processor, sessionID))
}

func (r *Repository) UpdatePaymentStatus(
	ctx context.Context,
	id uuid.UUID,
	status entity.PaymentStatus,
	providerPaymentID string,
	updatedAt time.Time,
) error {
	const q = `UPDATE payments SET status = $1, provider_payment_id = $2, updated_at = $3 WHERE id = $4`

	result, err := r.db.Exec(ctx, q, status, zeronull.Text(providerPaymentID), updatedAt, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) CreateDeliverable(ctx context.Context, d entity.Deliverable) error {
	const q = `
	INSERT INTO deliverables (id, invoice_id, file_name, file_path, file_type, file_size, is_locked, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, q, d.ID, d.InvoiceID, d.FileName, d.FilePath, d.FileType, d.FileSize, d.IsLocked, d.CreatedAt)

	return err
}

func (r *Repository) Deliverables(ctx context.Context, invoiceID uuid.UUID) ([]entity.Deliverable, error) {
	const q = `SELECT id, invoice_id, file_name, file_path, file_type, file_size, is_locked, created_at
	FROM deliverables WHERE invoice_id = $1`

	rows, err := r.db.Query(ctx, q, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deliverables []entity.Deliverable

	for rows.Next() {
		var d entity.Deliverable

		err = rows.Scan(&d.ID, &d.InvoiceID, &d.FileName, &d.FilePath, &d.FileType, &d.FileSize, &d.IsLocked, &d.CreatedAt)
		if err != nil {
			return nil, err
		}

		deliverables = append(deliverables, d)
	}

	return deliverables, rows.Err()
}

// UnlockDeliverables releases all of an invoice's deliverables once it is
// paid.
func (r *Repository) UnlockDeliverables(ctx context.Context, invoiceID uuid.UUID) error {
	const q = `UPDATE deliverables SET is_locked = FALSE WHERE invoice_id = $1`

	_, err := r.db.Exec(ctx, q, invoiceID)

	return err
}

func scanPayment(row pgx.Row) (p entity.Payment, err error) {
	err = row.Scan(
		&p.ID,
		&p.InvoiceID,
		&p.Processor,
		(*zeronull.Text)(&p.ProviderSessionID),
		(*zeronull.Text)(&p.ProviderPaymentID),
		&p.Amount,
		&p.Currency,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Payment{}, entity.ErrNotFound
		}

		return entity.Payment{}, err
	}

	return p, nil
}
