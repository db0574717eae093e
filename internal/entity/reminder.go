package entity

import (
	"fmt"
	"math"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type ReminderType string

const (
	ReminderTypePolite         ReminderType = "polite"
	ReminderTypeDueToday       ReminderType = "due_today"
	ReminderTypeFirm           ReminderType = "firm"
	ReminderTypeFinal          ReminderType = "final"
	ReminderTypeLateFeeWarning ReminderType = "late_fee_warning"
)

func (r ReminderType) String() string {
	return string(r)
}

func (r ReminderType) Validate() error {
	switch r {
	case ReminderTypePolite, ReminderTypeDueToday, ReminderTypeFirm,
		ReminderTypeFinal, ReminderTypeLateFeeWarning:
		return nil
	default:
		return fmt.Errorf("%w: unknown reminder type %q", ErrInvalidArgument, string(r))
	}
}

const ChannelEmail = "email"

// Reminder is an append-only record of a dunning message. Rows are never
// updated except for stamping SentAt in the interactive flow.
type Reminder struct {
	ID        uuid.UUID
	InvoiceID uuid.UUID
	Type      ReminderType
	Message   string
	SentAt    *time.Time
	Channel   string
	CreatedAt time.Time
}

// EscalationDecision is the outcome of evaluating one invoice on one sweep.
type EscalationDecision struct {
	Tier ReminderType

	// MarkOverdue escalates invoice status to overdue before sending.
	MarkOverdue bool

	// ApplyLateFee injects the one-time overdue late fee before composing
	// the message. Guarded by LateFeeAmount == 0 so repeated sweeps can
	// never double-charge.
	ApplyLateFee bool
}

// DaysUntil returns whole days from now until t, rounded toward negative
// infinity. An invoice 25 hours past due is -2 days, not -1.
func DaysUntil(t, now time.Time) int {
	return int(math.Floor(t.Sub(now).Hours() / 24))
}

// EvaluateEscalation decides whether a reminder tier fires for the invoice at
// the given instant. lastSent is the SentAt of the most recent sent reminder,
// nil when none exists. The first matching rule wins, so at most one tier
// fires per invoice per sweep.
func EvaluateEscalation(inv Invoice, lastSent *time.Time, now time.Time) (EscalationDecision, bool) {
	if !inv.Status.Reminderable() || !inv.AutoReminders {
		return EscalationDecision{}, false
	}

	daysUntilDue := DaysUntil(inv.DueDate, now)

	cooledDown := func(d time.Duration) bool {
		return lastSent == nil || now.Sub(*lastSent) >= d
	}

	switch {
	case daysUntilDue == 3 && lastSent == nil:
		return EscalationDecision{Tier: ReminderTypePolite}, true

	case daysUntilDue == 0 && cooledDown(24*time.Hour):
		return EscalationDecision{Tier: ReminderTypeDueToday}, true

	case daysUntilDue == -1 && cooledDown(24*time.Hour):
		return EscalationDecision{
			Tier:        ReminderTypeFirm,
			MarkOverdue: true,
		}, true

	case daysUntilDue <= -7 && cooledDown(3*24*time.Hour):
		return EscalationDecision{
			Tier:         ReminderTypeFinal,
			ApplyLateFee: inv.LateFeeEnabled && inv.LateFeeAmount.IsZero(),
		}, true
	}

	return EscalationDecision{}, false
}

// OverdueLateFee computes the late fee and new total injected by the final
// tier: fee = total * pct / 100, both results rounded to 2 decimal places.
func (i Invoice) OverdueLateFee() (fee, newTotal decimal.Decimal) {
	fee = i.TotalAmount.Mul(i.LateFeePercentage).Div(oneHundred).Round(2)
	return fee, i.TotalAmount.Add(fee).Round(2)
}
