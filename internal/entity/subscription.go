package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

const CancellationReasonExpiredUnpaid = "expired_unpaid"

// Subscription is a paid plan period. It is created on upgrade verification
// and transitions to cancelled only via the expiry sweep.
type Subscription struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	Plan               Plan
	Status             SubscriptionStatus
	StartDate          time.Time
	EndDate            *time.Time
	CancelledAt        *time.Time
	CancellationReason string
	CreatedAt          time.Time
}

// Expired reports whether the subscription's paid period has lapsed.
func (s Subscription) Expired(now time.Time) bool {
	return s.EndDate != nil && now.After(*s.EndDate)
}
