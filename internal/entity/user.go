package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type Plan string

const (
	PlanFree   Plan = "free"
	PlanPro    Plan = "pro"
	PlanAgency Plan = "agency"
)

func (p Plan) String() string {
	return string(p)
}

func (p Plan) IsValid() bool {
	switch p {
	case PlanFree, PlanPro, PlanAgency:
		return true
	}

	return false
}

// InvoiceLimit is the number of invoices a plan may create. Zero means unlimited.
func (p Plan) InvoiceLimit() int64 {
	if p == PlanFree {
		return 3
	}

	return 0
}

type SubscriptionState string

const (
	SubscriptionStateActive   SubscriptionState = "active"
	SubscriptionStateInactive SubscriptionState = "inactive"
)

type User struct {
	ID                 uuid.UUID
	Email              string
	FullName           string
	BaseCurrency       string
	Plan               Plan
	SubscriptionStatus SubscriptionState
	InvoiceCount       int64
	CreatedAt          time.Time
}
