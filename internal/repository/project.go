package repository

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/clientnudge/invoicing/internal/entity"
)

func (r *Repository) CreateProject(ctx context.Context, p entity.Project) error {
	const q = `
	INSERT INTO projects (
		id,
		user_id,
		client_id,
		name,
		total_value,
		currency,
		completion_percentage,
		earned_amount,
		remaining_balance,
		deadline,
		linked_invoice_id,
		created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		p.ID,
		p.UserID,
		p.ClientID,
		p.Name,
		p.TotalValue,
		p.Currency,
		p.CompletionPercentage,
		p.EarnedAmount,
		p.RemainingBalance,
		p.Deadline,
		p.LinkedInvoiceID,
		p.CreatedAt,
	)

	return err
}

func (r *Repository) Project(ctx context.Context, userID, id uuid.UUID) (entity.Project, error) {
	q := selectProject + " WHERE id = $1 AND user_id = $2"
	return scanProject(r.db.QueryRow(ctx, q, id, userID))
}

func (r *Repository) Projects(ctx context.Context, userID uuid.UUID) ([]entity.Project, error) {
	q := selectProject + " WHERE user_id = $1 ORDER BY created_at"

	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []entity.Project

	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}

		projects = append(projects, p)
	}

	return projects, rows.Err()
}

func (r *Repository) UpdateProjectCompletion(ctx context.Context, p entity.Project) error {
	const q = `UPDATE projects SET completion_percentage = $1, earned_amount = $2, remaining_balance = $3
	WHERE id = $4 AND user_id = $5`

	result, err := r.db.Exec(ctx, q, p.CompletionPercentage, p.EarnedAmount, p.RemainingBalance, p.ID, p.UserID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func scanProject(row pgx.Row) (p entity.Project, err error) {
	err = row.Scan(
		&p.ID,
		&p.UserID,
		&p.ClientID,
		&p.Name,
		&p.TotalValue,
		&p.Currency,
		&p.CompletionPercentage,
		&p.EarnedAmount,
		&p.RemainingBalance,
		&p.Deadline,
		&p.LinkedInvoiceID,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Project{}, entity.ErrNotFound
		}

		return entity.Project{}, err
	}

	return p, nil
}
