package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/clientnudge/invoicing/internal/entity"
)

func (r *Repository) CreateReminder(ctx context.Context, rem entity.Reminder) error {
	const q = `
	INSERT INTO reminders (id, invoice_id, reminder_type, message, sent_at, channel, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, q, rem.ID, rem.InvoiceID, rem.Type, rem.Message, rem.SentAt, rem.Channel, rem.CreatedAt)

	return err
}

func (r *Repository) Reminder(ctx context.Context, id uuid.UUID) (entity.Reminder, error) {
	q := selectReminder + " WHERE id = $1"
	return scanReminder(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) Reminders(ctx context.Context, invoiceID uuid.UUID) ([]entity.Reminder, error) {
	q := selectReminder + " WHERE invoice_id = $1 ORDER BY created_at"

	rows, err := r.db.Query(ctx, q, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []entity.Reminder

	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}

		reminders = append(reminders, rem)
	}

	return reminders, rows.Err()
}

// LastSentReminder returns the reminder with the most recent non-null
// sent_at, the sole piece of history the escalation engine consults.
// Returns ErrNotFound when the invoice has no sent reminders.
func (r *Repository) LastSentReminder(ctx context.Context, invoiceID uuid.UUID) (entity.Reminder, error) {
	q := selectReminder + " WHERE invoice_id = $1 AND sent_at IS NOT NULL ORDER BY sent_at DESC LIMIT 1"
	return scanReminder(r.db.QueryRow(ctx, q, invoiceID))
}

func (r *Repository) MarkReminderSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error {
	const q = `UPDATE reminders SET sent_at = $1 WHERE id = $2`

	result, err := r.db.Exec(ctx, q, sentAt, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func scanReminder(row pgx.Row) (rem entity.Reminder, err error) {
	err = row.Scan(
		&rem.ID,
		&rem.InvoiceID,
		&rem.Type,
		&rem.Message,
		&rem.SentAt,
		&rem.Channel,
		&rem.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Reminder{}, entity.ErrNotFound
		}

		return entity.Reminder{}, err
	}

	return rem, nil
}
