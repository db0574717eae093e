package entity

import (
	"github.com/shopspring/decimal"
)

// DashboardStats is the owner-facing summary computed over all of a user's
// invoices.
type DashboardStats struct {
	TotalOutstanding   decimal.Decimal
	PaidThisMonth      decimal.Decimal
	OverdueAmount      decimal.Decimal
	AveragePaymentDays decimal.Decimal
	LateFeeCollected   decimal.Decimal
	TotalInvoices      int
	PaidInvoices       int
	PendingInvoices    int
	OverdueInvoices    int
}

// MonthRevenue is one point of the paid-revenue trend, keyed by "2006-01".
type MonthRevenue struct {
	Month   string
	Revenue decimal.Decimal
}
