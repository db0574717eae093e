package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type PaymentScore string

const (
	PaymentScoreFast     PaymentScore = "fast"
	PaymentScoreMedium   PaymentScore = "medium"
	PaymentScoreSlow     PaymentScore = "slow"
	PaymentScoreHighRisk PaymentScore = "high_risk"
)

func (p PaymentScore) String() string {
	return string(p)
}

// Client is a payer the user issues invoices to. Aggregate payment stats are
// updated opportunistically on payment completion, never recomputed from
// history.
type Client struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Email          string
	Phone          string
	Company        string
	PaymentScore   PaymentScore
	AvgPaymentDays decimal.Decimal
	TotalPaid      decimal.Decimal
	TotalPending   decimal.Decimal
	CreatedAt      time.Time
}
