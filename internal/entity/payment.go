package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

func (p PaymentStatus) String() string {
	return string(p)
}

type PaymentProcessor string

const (
	PaymentProcessorStripe   PaymentProcessor = "stripe"
	PaymentProcessorRazorpay PaymentProcessor = "razorpay"
)

// Payment tracks one checkout attempt against an invoice. ProviderSessionID
// is the Stripe checkout session or the Razorpay order id.
type Payment struct {
	ID                uuid.UUID
	InvoiceID         uuid.UUID
	Processor         PaymentProcessor
	ProviderSessionID string
	ProviderPaymentID string
	Amount            decimal.Decimal
	Currency          string
	Status            PaymentStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CheckoutSession is the provider-hosted payment page handed to the payer.
type CheckoutSession struct {
	SessionID string
	URL       string
	Amount    decimal.Decimal
	Currency  string
}

// Deliverable is a work product gated behind payment of its invoice.
type Deliverable struct {
	ID        uuid.UUID
	InvoiceID uuid.UUID
	FileName  string
	FilePath  string
	FileType  string
	FileSize  int64
	IsLocked  bool
	CreatedAt time.Time
}
