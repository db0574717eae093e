package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/clientnudge/invoicing/internal/entity"
)

func (r *Repository) CreateInvoice(ctx context.Context, inv entity.Invoice, items []entity.InvoiceItem) error {
	const q = `
	INSERT INTO invoices (
		id,
		user_id,
		client_id,
		project_id,
		number,
		subtotal,
		tax_amount,
		tax_percentage,
		discount_amount,
		discount_type,
		discount_value,
		late_fee_amount,
		late_fee_enabled,
		late_fee_percentage,
		late_fee_days,
		total_amount,
		currency,
		exchange_rate,
		due_date,
		status,
		auto_reminders,
		created_at,
		sent_at,
		paid_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
	`

	const itemQ = `
	INSERT INTO invoice_items (id, invoice_id, description, quantity, rate, amount)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck

	_, err = tx.Exec(
		ctx,
		q,
		inv.ID,
		inv.UserID,
		inv.ClientID,
		inv.ProjectID,
		inv.Number,
		inv.Subtotal,
		inv.TaxAmount,
		inv.TaxPercentage,
		inv.DiscountAmount,
		inv.DiscountType,
		inv.DiscountValue,
		inv.LateFeeAmount,
		inv.LateFeeEnabled,
		inv.LateFeePercentage,
		inv.LateFeeDays,
		inv.TotalAmount,
		inv.Currency,
		inv.ExchangeRate,
		inv.DueDate,
		inv.Status,
		inv.AutoReminders,
		inv.CreatedAt,
		inv.SentAt,
		inv.PaidAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}

	for _, item := range items {
		_, err = tx.Exec(ctx, itemQ, item.ID, item.InvoiceID, item.Description, item.Quantity, item.Rate, item.Amount)
		if err != nil {
			return fmt.Errorf("insert invoice item: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// Invoice returns the user's invoice. Lookups are always scoped to the
// owning user so one user can never read another's invoice.
func (r *Repository) Invoice(ctx context.Context, userID, id uuid.UUID) (entity.Invoice, error) {
	q := selectInvoice + " WHERE id = $1 AND user_id = $2"
	return scanInvoice(r.db.QueryRow(ctx, q, id, userID))
}

// InvoiceByID is the unscoped lookup used by the sweep and public portal
// paths.
func (r *Repository) InvoiceByID(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	q := selectInvoice + " WHERE id = $1"
	return scanInvoice(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) Invoices(ctx context.Context, userID uuid.UUID, f entity.InvoiceFilter) ([]entity.Invoice, error) {
	stmt := sq.Select(
		"id",
		"user_id",
		"client_id",
		"project_id",
		"number",
		"subtotal",
		"tax_amount",
		"tax_percentage",
		"discount_amount",
		"discount_type",
		"discount_value",
		"late_fee_amount",
		"late_fee_enabled",
		"late_fee_percentage",
		"late_fee_days",
		"total_amount",
		"currency",
		"exchange_rate",
		"due_date",
		"status",
		"auto_reminders",
		"created_at",
		"sent_at",
		"paid_at",
	).From("invoices").Where(sq.Eq{"user_id": userID}).PlaceholderFormat(sq.Dollar)

	stmt = applyInvoiceFilter(stmt, f).OrderBy("created_at DESC")

	if f.Limit > 0 {
		stmt = stmt.Limit(f.Limit)

		if f.Page > 1 {
			stmt = stmt.Offset(f.Page*f.Limit - f.Limit)
		}
	}

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []entity.Invoice

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}

		invoices = append(invoices, inv)
	}

	return invoices, rows.Err()
}

func applyInvoiceFilter(stmt sq.SelectBuilder, f entity.InvoiceFilter) sq.SelectBuilder {
	if f.Status != nil {
		stmt = stmt.Where(sq.Eq{"status": *f.Status})
	}

	if f.ClientID != nil {
		stmt = stmt.Where(sq.Eq{"client_id": *f.ClientID})
	}

	if f.DueBefore != nil {
		stmt = stmt.Where(sq.Lt{"due_date": *f.DueBefore})
	}

	return stmt
}

// RemindableInvoices returns all invoices the dunning sweep may act on.
func (r *Repository) RemindableInvoices(ctx context.Context) ([]entity.Invoice, error) {
	const fetchLimit = 10000

	q := selectInvoice + ` WHERE status = ANY($1) AND auto_reminders ORDER BY due_date LIMIT $2`

	statuses := []string{
		entity.InvoiceStatusSent.String(),
		entity.InvoiceStatusViewed.String(),
		entity.InvoiceStatusOverdue.String(),
	}

	rows, err := r.db.Query(ctx, q, statuses, fetchLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []entity.Invoice

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}

		invoices = append(invoices, inv)
	}

	return invoices, rows.Err()
}

func (r *Repository) InvoiceItems(ctx context.Context, invoiceID uuid.UUID) ([]entity.InvoiceItem, error) {
	const q = `SELECT id, invoice_id, description, quantity, rate, amount FROM invoice_items WHERE invoice_id = $1`

	rows, err := r.db.Query(ctx, q, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []entity.InvoiceItem

	for rows.Next() {
		var item entity.InvoiceItem

		err = rows.Scan(&item.ID, &item.InvoiceID, &item.Description, &item.Quantity, &item.Rate, &item.Amount)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *Repository) UpdateInvoiceStatus(ctx context.Context, id uuid.UUID, status entity.InvoiceStatus) error {
	const q = `UPDATE invoices SET status = $1 WHERE id = $2`

	result, err := r.db.Exec(ctx, q, status, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) MarkInvoiceSent(ctx context.Context, userID, id uuid.UUID, sentAt time.Time) error {
	const q = `UPDATE invoices SET status = $1, sent_at = $2 WHERE id = $3 AND user_id = $4`

	result, err := r.db.Exec(ctx, q, entity.InvoiceStatusSent, sentAt, id, userID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// MarkInvoiceViewed flips sent to viewed. Any other status is left alone.
func (r *Repository) MarkInvoiceViewed(ctx context.Context, id uuid.UUID) error {
	const q = `UPDATE invoices SET status = $1 WHERE id = $2 AND status = $3`

	_, err := r.db.Exec(ctx, q, entity.InvoiceStatusViewed, id, entity.InvoiceStatusSent)

	return err
}

func (r *Repository) MarkInvoicePaid(ctx context.Context, id uuid.UUID, paidAt time.Time) error {
	const q = `UPDATE invoices SET status = $1, paid_at = $2 WHERE id = $3`

	result, err := r.db.Exec(ctx, q, entity.InvoiceStatusPaid, paidAt, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// ApplyInvoiceLateFee writes the overdue late fee and the updated total in
// one statement. The status guard keeps the write idempotent against a
// concurrent sweep.
func (r *Repository) ApplyInvoiceLateFee(ctx context.Context, id uuid.UUID, fee, total decimal.Decimal) error {
	const q = `UPDATE invoices SET late_fee_amount = $1, total_amount = $2 WHERE id = $3 AND late_fee_amount = 0`

	result, err := r.db.Exec(ctx, q, fee, total, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func scanInvoice(row pgx.Row) (inv entity.Invoice, err error) {
	err = row.Scan(
		&inv.ID,
		&inv.UserID,
		&inv.ClientID,
		&inv.ProjectID,
		&inv.Number,
		&inv.Subtotal,
		&inv.TaxAmount,
		&inv.TaxPercentage,
		&inv.DiscountAmount,
		&inv.DiscountType,
		&inv.DiscountValue,
		&inv.LateFeeAmount,
		&inv.LateFeeEnabled,
		&inv.LateFeePercentage,
		&inv.LateFeeDays,
		&inv.TotalAmount,
		&inv.Currency,
		&inv.ExchangeRate,
		&inv.DueDate,
		&inv.Status,
		&inv.AutoReminders,
		&inv.CreatedAt,
		&inv.SentAt,
		&inv.PaidAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Invoice{}, entity.ErrNotFound
		}

		return entity.Invoice{}, err
	}

	return inv, nil
}
