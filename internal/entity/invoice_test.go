package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clientnudge/invoicing/internal/entity"
)

func TestCalculateTotals(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	item := func(q, rate string) entity.InvoiceItem {
		return entity.InvoiceItem{
			Quantity: decimal.RequireFromString(q),
			Rate:     decimal.RequireFromString(rate),
		}
	}

	for _, tt := range []struct {
		name           string
		items          []entity.InvoiceItem
		taxPct         string
		discountType   entity.DiscountType
		discountValue  string
		lateFeeEnabled bool
		lateFeePct     string
		dueDate        time.Time
		wantSubtotal   string
		wantDiscount   string
		wantTax        string
		wantLateFee    string
		wantTotal      string
	}{
		{
			name:         "plain sum",
			items:        []entity.InvoiceItem{item("2", "150"), item("1", "99.50")},
			taxPct:       "0",
			discountType: entity.DiscountTypeNone,
			dueDate:      now.AddDate(0, 0, 14),
			wantSubtotal: "399.5",
			wantDiscount: "0",
			wantTax:      "0",
			wantLateFee:  "0",
			wantTotal:    "399.5",
		},
		{
			name:         "intermediate rounding",
			items:        []entity.InvoiceItem{item("2", "19.995")},
			taxPct:       "10",
			discountType: entity.DiscountTypeNone,
			dueDate:      now.AddDate(0, 0, 14),
			wantSubtotal: "39.99",
			wantDiscount: "0",
			wantTax:      "4",
			wantLateFee:  "0",
			wantTotal:    "43.99",
		},
		{
			name:          "percentage discount before tax",
			items:         []entity.InvoiceItem{item("10", "100")},
			taxPct:        "18",
			discountType:  entity.DiscountTypePercentage,
			discountValue: "10",
			dueDate:       now.AddDate(0, 0, 7),
			wantSubtotal:  "1000",
			wantDiscount:  "100",
			wantTax:       "162",
			wantLateFee:   "0",
			wantTotal:     "1062",
		},
		{
			name:          "fixed discount",
			items:         []entity.InvoiceItem{item("1", "500")},
			taxPct:        "20",
			discountType:  entity.DiscountTypeFixed,
			discountValue: "50",
			dueDate:       now.AddDate(0, 0, 7),
			wantSubtotal:  "500",
			wantDiscount:  "50",
			wantTax:       "90",
			wantLateFee:   "0",
			wantTotal:     "540",
		},
		{
			name:           "late fee only when already past due",
			items:          []entity.InvoiceItem{item("1", "200")},
			taxPct:         "0",
			discountType:   entity.DiscountTypeNone,
			lateFeeEnabled: true,
			lateFeePct:     "5",
			dueDate:        now.AddDate(0, 0, -3),
			wantSubtotal:   "200",
			wantDiscount:   "0",
			wantTax:        "0",
			wantLateFee:    "10",
			wantTotal:      "210",
		},
		{
			name:           "late fee disabled before due date",
			items:          []entity.InvoiceItem{item("1", "200")},
			taxPct:         "0",
			discountType:   entity.DiscountTypeNone,
			lateFeeEnabled: true,
			lateFeePct:     "5",
			dueDate:        now.AddDate(0, 0, 3),
			wantSubtotal:   "200",
			wantDiscount:   "0",
			wantTax:        "0",
			wantLateFee:    "0",
			wantTotal:      "200",
		},
	} {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			taxPct := decimal.RequireFromString(tt.taxPct)

			discountValue := decimal.Zero
			if tt.discountValue != "" {
				discountValue = decimal.RequireFromString(tt.discountValue)
			}

			lateFeePct := decimal.Zero
			if tt.lateFeePct != "" {
				lateFeePct = decimal.RequireFromString(tt.lateFeePct)
			}

			got := entity.CalculateTotals(
				tt.items, taxPct, tt.discountType, discountValue,
				tt.lateFeeEnabled, lateFeePct, tt.dueDate, now,
			)

			assertDecimalEq(t, "subtotal", tt.wantSubtotal, got.Subtotal)
			assertDecimalEq(t, "discount", tt.wantDiscount, got.DiscountAmount)
			assertDecimalEq(t, "tax", tt.wantTax, got.TaxAmount)
			assertDecimalEq(t, "late fee", tt.wantLateFee, got.LateFeeAmount)
			assertDecimalEq(t, "total", tt.wantTotal, got.TotalAmount)
		})
	}
}

func assertDecimalEq(t *testing.T, field, want string, got decimal.Decimal) {
	t.Helper()

	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("%s = %s, want %s", field, got, want)
	}
}

func TestGenerateInvoiceNumber(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 9, 1, 9, 30, 15, 0, time.UTC)

	got := entity.GenerateInvoiceNumber(now)
	if got != "INV-20250901093015" {
		t.Errorf("GenerateInvoiceNumber() = %q", got)
	}
}
