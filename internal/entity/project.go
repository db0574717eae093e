package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type Project struct {
	ID                   uuid.UUID
	UserID               uuid.UUID
	ClientID             uuid.UUID
	Name                 string
	TotalValue           decimal.Decimal
	Currency             string
	CompletionPercentage decimal.Decimal
	EarnedAmount         decimal.Decimal
	RemainingBalance     decimal.Decimal
	Deadline             *time.Time
	LinkedInvoiceID      uuid.NullUUID
	CreatedAt            time.Time
}

// ApplyCompletion recalculates earned and remaining amounts for the given
// completion percentage.
func (p *Project) ApplyCompletion(pct decimal.Decimal) {
	p.CompletionPercentage = pct
	p.EarnedAmount = p.TotalValue.Mul(pct).Div(oneHundred).Round(2)
	p.RemainingBalance = p.TotalValue.Sub(p.EarnedAmount).Round(2)
}
