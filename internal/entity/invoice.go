package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.New(100, 0)

type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusViewed  InvoiceStatus = "viewed"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

// Reminderable reports whether the automated dunning engine may act on an
// invoice in this status. Draft and paid invoices are never touched.
func (s InvoiceStatus) Reminderable() bool {
	switch s {
	case InvoiceStatusSent, InvoiceStatusViewed, InvoiceStatusOverdue:
		return true
	}

	return false
}

type DiscountType string

const (
	DiscountTypeNone       DiscountType = "none"
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

func (d DiscountType) Validate() error {
	switch d {
	case DiscountTypeNone, DiscountTypePercentage, DiscountTypeFixed:
		return nil
	default:
		return fmt.Errorf("%w: unknown discount type %q", ErrInvalidArgument, string(d))
	}
}

type Invoice struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	ClientID          uuid.UUID
	ProjectID         uuid.NullUUID
	Number            string
	Subtotal          decimal.Decimal
	TaxAmount         decimal.Decimal
	TaxPercentage     decimal.Decimal
	DiscountAmount    decimal.Decimal
	DiscountType      DiscountType
	DiscountValue     decimal.Decimal
	LateFeeAmount     decimal.Decimal
	LateFeeEnabled    bool
	LateFeePercentage decimal.Decimal
	LateFeeDays       int32
	TotalAmount       decimal.Decimal
	Currency          string
	ExchangeRate      decimal.Decimal
	DueDate           time.Time
	Status            InvoiceStatus
	AutoReminders     bool
	CreatedAt         time.Time
	SentAt            *time.Time
	PaidAt            *time.Time
}

type InvoiceItem struct {
	ID          uuid.UUID
	InvoiceID   uuid.UUID
	Description string
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
	Amount      decimal.Decimal
}

type InvoiceFilter struct {
	Status    *InvoiceStatus
	ClientID  *uuid.UUID
	DueBefore *time.Time
	Page      uint64
	Limit     uint64
}

type Totals struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	LateFeeAmount  decimal.Decimal
	TotalAmount    decimal.Decimal
}

// CalculateTotals computes invoice money fields from line items and policy
// parameters. Every component is rounded to 2 decimal places independently
// before being combined; the per-step rounding is a compatibility requirement
// for existing invoices, do not collapse it into a single final round.
//
// The late fee here applies only when the invoice is created after its due
// date has already passed. The recurring overdue late fee is applied by the
// reminder sweep instead.
func CalculateTotals(
	items []InvoiceItem,
	taxPercentage decimal.Decimal,
	discountType DiscountType,
	discountValue decimal.Decimal,
	lateFeeEnabled bool,
	lateFeePercentage decimal.Decimal,
	dueDate time.Time,
	now time.Time,
) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Quantity.Mul(item.Rate))
	}

	discount := decimal.Zero

	switch discountType {
	case DiscountTypePercentage:
		discount = subtotal.Mul(discountValue).Div(oneHundred)
	case DiscountTypeFixed:
		discount = discountValue
	}

	taxable := subtotal.Sub(discount)
	tax := taxable.Mul(taxPercentage).Div(oneHundred)

	lateFee := decimal.Zero
	if lateFeeEnabled && now.After(dueDate) {
		lateFee = taxable.Mul(lateFeePercentage).Div(oneHundred)
	}

	subtotal = subtotal.Round(2)
	discount = discount.Round(2)
	tax = tax.Round(2)
	lateFee = lateFee.Round(2)

	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		TaxAmount:      tax,
		LateFeeAmount:  lateFee,
		TotalAmount:    subtotal.Sub(discount).Add(tax).Add(lateFee).Round(2),
	}
}

// GenerateInvoiceNumber builds a timestamp-based invoice number, e.g.
// INV-20250901120000.
func GenerateInvoiceNumber(now time.Time) string {
	return "INV-" + now.UTC().Format("20060102150405")
}
