package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/clientnudge/invoicing/internal/entity"
)

var evalNow = time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

func reminderableInvoice(dueIn time.Duration) entity.Invoice {
	return entity.Invoice{
		Status:        entity.InvoiceStatusSent,
		AutoReminders: true,
		DueDate:       evalNow.Add(dueIn),
		TotalAmount:   decimal.RequireFromString("1000.00"),
	}
}

func TestDaysUntil(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name  string
		delta time.Duration
		want  int
	}{
		{"due in 3 days sharp", 72 * time.Hour, 3},
		{"due in 3 and a half days", 84 * time.Hour, 3},
		{"due in one hour", time.Hour, 0},
		{"one hour past due", -time.Hour, -1},
		{"25 hours past due rounds down", -25 * time.Hour, -2},
		{"a week past due", -7 * 24 * time.Hour, -7},
	} {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := entity.DaysUntil(evalNow.Add(tt.delta), evalNow)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateEscalation_Tiers(t *testing.T) {
	t.Parallel()

	dayAgo := evalNow.Add(-25 * time.Hour)
	halfDayAgo := evalNow.Add(-12 * time.Hour)
	fourDaysAgo := evalNow.Add(-4 * 24 * time.Hour)

	for _, tt := range []struct {
		name     string
		dueIn    time.Duration
		lastSent *time.Time
		wantTier entity.ReminderType
		wantOK   bool
	}{
		{
			name:     "polite three days out with no history",
			dueIn:    73 * time.Hour,
			wantTier: entity.ReminderTypePolite,
			wantOK:   true,
		},
		{
			name:     "polite suppressed by any prior reminder",
			dueIn:    73 * time.Hour,
			lastSent: &fourDaysAgo,
			wantOK:   false,
		},
		{
			name:     "due today with no history",
			dueIn:    2 * time.Hour,
			wantTier: entity.ReminderTypeDueToday,
			wantOK:   true,
		},
		{
			name:     "due today after cooldown",
			dueIn:    2 * time.Hour,
			lastSent: &dayAgo,
			wantTier: entity.ReminderTypeDueToday,
			wantOK:   true,
		},
		{
			name:     "due today within cooldown",
			dueIn:    2 * time.Hour,
			lastSent: &halfDayAgo,
			wantOK:   false,
		},
		{
			name:     "firm one day overdue",
			dueIn:    -26 * time.Hour,
			wantTier: entity.ReminderTypeFirm,
			wantOK:   true,
		},
		{
			name:     "firm blocked by 12 hour old reminder",
			dueIn:    -26 * time.Hour,
			lastSent: &halfDayAgo,
			wantOK:   false,
		},
		{
			name:     "firm fires once cooldown elapsed",
			dueIn:    -26 * time.Hour,
			lastSent: &dayAgo,
			wantTier: entity.ReminderTypeFirm,
			wantOK:   true,
		},
		{
			name:     "final a week overdue",
			dueIn:    -8 * 24 * time.Hour,
			wantTier: entity.ReminderTypeFinal,
			wantOK:   true,
		},
		{
			name:     "final within three day cooldown",
			dueIn:    -8 * 24 * time.Hour,
			lastSent: &dayAgo,
			wantOK:   false,
		},
		{
			name:     "final after three day cooldown",
			dueIn:    -8 * 24 * time.Hour,
			lastSent: &fourDaysAgo,
			wantTier: entity.ReminderTypeFinal,
			wantOK:   true,
		},
		{
			name:   "no tier between two and six days overdue",
			dueIn:  -4 * 24 * time.Hour,
			wantOK: false,
		},
		{
			name:   "no tier two days out",
			dueIn:  49 * time.Hour,
			wantOK: false,
		},
	} {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			inv := reminderableInvoice(tt.dueIn)

			decision, ok := entity.EvaluateEscalation(inv, tt.lastSent, evalNow)
			require.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				require.Equal(t, tt.wantTier, decision.Tier)
			}
		})
	}
}

func TestEvaluateEscalation_SideEffects(t *testing.T) {
	t.Parallel()

	t.Run("firm marks overdue", func(t *testing.T) {
		t.Parallel()

		inv := reminderableInvoice(-26 * time.Hour)

		decision, ok := entity.EvaluateEscalation(inv, nil, evalNow)
		require.True(t, ok)
		require.True(t, decision.MarkOverdue)
		require.False(t, decision.ApplyLateFee)
	})

	t.Run("final applies late fee once", func(t *testing.T) {
		t.Parallel()

		inv := reminderableInvoice(-8 * 24 * time.Hour)
		inv.LateFeeEnabled = true
		inv.LateFeePercentage = decimal.RequireFromString("5")

		decision, ok := entity.EvaluateEscalation(inv, nil, evalNow)
		require.True(t, ok)
		require.Equal(t, entity.ReminderTypeFinal, decision.Tier)
		require.True(t, decision.ApplyLateFee)

		// A fee already on the invoice must never be charged again.
		inv.LateFeeAmount = decimal.RequireFromString("50.00")

		decision, ok = entity.EvaluateEscalation(inv, nil, evalNow)
		require.True(t, ok)
		require.False(t, decision.ApplyLateFee)
	})

	t.Run("final without late fee enabled", func(t *testing.T) {
		t.Parallel()

		inv := reminderableInvoice(-10 * 24 * time.Hour)

		decision, ok := entity.EvaluateEscalation(inv, nil, evalNow)
		require.True(t, ok)
		require.False(t, decision.ApplyLateFee)
	})
}

func TestEvaluateEscalation_Eligibility(t *testing.T) {
	t.Parallel()

	for _, status := range []entity.InvoiceStatus{
		entity.InvoiceStatusDraft,
		entity.InvoiceStatusPaid,
	} {
		status := status

		t.Run(string(status), func(t *testing.T) {
			t.Parallel()

			inv := reminderableInvoice(-26 * time.Hour)
			inv.Status = status

			_, ok := entity.EvaluateEscalation(inv, nil, evalNow)
			require.False(t, ok)
		})
	}

	t.Run("auto reminders disabled", func(t *testing.T) {
		t.Parallel()

		inv := reminderableInvoice(-26 * time.Hour)
		inv.AutoReminders = false

		_, ok := entity.EvaluateEscalation(inv, nil, evalNow)
		require.False(t, ok)
	})
}

func TestInvoice_OverdueLateFee(t *testing.T) {
	t.Parallel()

	inv := entity.Invoice{
		TotalAmount:       decimal.RequireFromString("1033.33"),
		LateFeePercentage: decimal.RequireFromString("5"),
	}

	fee, newTotal := inv.OverdueLateFee()
	require.Equal(t, "51.67", fee.StringFixed(2))
	require.Equal(t, "1085.00", newTotal.StringFixed(2))
}
