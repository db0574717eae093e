package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clientnudge/invoicing/internal/entity"
)

const analyticsFetchLimit = 10000

// DashboardStats aggregates the caller's invoices into the owner dashboard
// numbers. Computed on read; invoice volumes per user are small enough that
// precomputing is not worth the bookkeeping.
func (s *Service) DashboardStats(ctx context.Context) (entity.DashboardStats, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.DashboardStats{}, err
	}

	invs, err := s.repo.Invoices(ctx, user.ID, entity.InvoiceFilter{Limit: analyticsFetchLimit})
	if err != nil {
		return entity.DashboardStats{}, fmt.Errorf("get invoices: %w", err)
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	stats := entity.DashboardStats{TotalInvoices: len(invs)}

	var paymentDays []int64

	for _, inv := range invs {
		switch inv.Status {
		case entity.InvoiceStatusPaid:
			stats.PaidInvoices++
			stats.LateFeeCollected = stats.LateFeeCollected.Add(inv.LateFeeAmount)

			if inv.PaidAt != nil {
				if !inv.PaidAt.Before(monthStart) {
					stats.PaidThisMonth = stats.PaidThisMonth.Add(inv.TotalAmount)
				}

				paymentDays = append(paymentDays, int64(inv.PaidAt.Sub(inv.CreatedAt).Hours()/24))
			}

		case entity.InvoiceStatusSent, entity.InvoiceStatusViewed:
			stats.PendingInvoices++
			stats.TotalOutstanding = stats.TotalOutstanding.Add(inv.TotalAmount)

			if now.After(inv.DueDate) {
				stats.OverdueInvoices++
				stats.OverdueAmount = stats.OverdueAmount.Add(inv.TotalAmount)
			}

		case entity.InvoiceStatusOverdue:
			stats.OverdueInvoices++
			stats.OverdueAmount = stats.OverdueAmount.Add(inv.TotalAmount)
			stats.TotalOutstanding = stats.TotalOutstanding.Add(inv.TotalAmount)
		}
	}

	if len(paymentDays) > 0 {
		var sum int64
		for _, d := range paymentDays {
			sum += d
		}

		stats.AveragePaymentDays = decimal.New(sum, 0).
			Div(decimal.New(int64(len(paymentDays)), 0)).
			Round(1)
	}

	return stats, nil
}

// RevenueTrend returns paid revenue grouped by month over the last half
// year, oldest month first.
func (s *Service) RevenueTrend(ctx context.Context) ([]entity.MonthRevenue, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	paid := entity.InvoiceStatusPaid

	invs, err := s.repo.Invoices(ctx, user.ID, entity.InvoiceFilter{
		Status: &paid,
		Limit:  analyticsFetchLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("get paid invoices: %w", err)
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -180)

	byMonth := make(map[string]decimal.Decimal)

	for _, inv := range invs {
		if inv.PaidAt == nil || inv.PaidAt.Before(cutoff) {
			continue
		}

		key := inv.PaidAt.UTC().Format("2006-01")
		byMonth[key] = byMonth[key].Add(inv.TotalAmount)
	}

	trend := make([]entity.MonthRevenue, 0, len(byMonth))
	for month, revenue := range byMonth {
		trend = append(trend, entity.MonthRevenue{Month: month, Revenue: revenue})
	}

	sort.Slice(trend, func(i, j int) bool { return trend[i].Month < trend[j].Month })

	return trend, nil
}
