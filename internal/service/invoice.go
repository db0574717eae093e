package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/clientnudge/invoicing/internal/entity"
)

type InvoiceItemParams struct {
	Description string
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
}

type CreateInvoiceParams struct {
	ClientID          uuid.UUID
	ProjectID         uuid.NullUUID
	Items             []InvoiceItemParams
	TaxPercentage     decimal.Decimal
	DiscountType      entity.DiscountType
	DiscountValue     decimal.Decimal
	LateFeeEnabled    bool
	LateFeePercentage decimal.Decimal
	LateFeeDays       int32
	Currency          string
	ExchangeRate      decimal.Decimal
	DueDate           time.Time
	AutoReminders     bool
}

func (s *Service) CreateInvoice(ctx context.Context, p CreateInvoiceParams) (entity.Invoice, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Invoice{}, err
	}

	if len(p.Items) == 0 {
		return entity.Invoice{}, fmt.Errorf("%w: invoice needs at least one item", entity.ErrInvalidArgument)
	}

	if err := p.DiscountType.Validate(); err != nil {
		return entity.Invoice{}, err
	}

	if limit := user.Plan.InvoiceLimit(); limit > 0 && user.InvoiceCount >= limit {
		return entity.Invoice{}, fmt.Errorf("%w: plan %q allows %d invoices", entity.ErrQuotaExceeded, user.Plan, limit)
	}

	// The client must belong to the caller.
	_, err = s.repo.Client(ctx, user.ID, p.ClientID)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("get client %s: %w", p.ClientID, err)
	}

	now := time.Now()

	invoiceID := uuid.Must(uuid.NewV4())

	items := make([]entity.InvoiceItem, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, entity.InvoiceItem{
			ID:          uuid.Must(uuid.NewV4()),
			InvoiceID:   invoiceID,
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Amount:      item.Quantity.Mul(item.Rate).Round(2),
		})
	}

	totals := entity.CalculateTotals(
		items, p.TaxPercentage, p.DiscountType, p.DiscountValue,
		p.LateFeeEnabled, p.LateFeePercentage, p.DueDate, now,
	)

	exchangeRate := p.ExchangeRate
	if exchangeRate.IsZero() {
		exchangeRate = decimal.New(1, 0)
	}

	inv := entity.Invoice{
		ID:                invoiceID,
		UserID:            user.ID,
		ClientID:          p.ClientID,
		ProjectID:         p.ProjectID,
		Number:            entity.GenerateInvoiceNumber(now),
		Subtotal:          totals.Subtotal,
		TaxAmount:         totals.TaxAmount,
		TaxPercentage:     p.TaxPercentage,
		DiscountAmount:    totals.DiscountAmount,
		DiscountType:      p.DiscountType,
		DiscountValue:     p.DiscountValue,
		LateFeeAmount:     totals.LateFeeAmount,
		LateFeeEnabled:    p.LateFeeEnabled,
		LateFeePercentage: p.LateFeePercentage,
		LateFeeDays:       p.LateFeeDays,
		TotalAmount:       totals.TotalAmount,
		Currency:          p.Currency,
		ExchangeRate:      exchangeRate,
		DueDate:           p.DueDate,
		Status:            entity.InvoiceStatusDraft,
		AutoReminders:     p.AutoReminders,
		CreatedAt:         now,
	}

	err = s.repo.CreateInvoice(ctx, inv, items)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("create invoice: %w", err)
	}

	err = s.repo.IncrementUserInvoiceCount(ctx, user.ID)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("increment invoice count for user %s: %w", user.ID, err)
	}

	slog.InfoContext(ctx, fmt.Sprintf("Invoice %s created for client %s, total %s %s",
		inv.Number, inv.ClientID, inv.TotalAmount, inv.Currency))

	return inv, nil
}

func (s *Service) Invoices(ctx context.Context, f entity.InvoiceFilter) ([]entity.Invoice, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	invs, err := s.repo.Invoices(ctx, user.ID, f)
	if err != nil {
		return nil, fmt.Errorf("get invoices: %w", err)
	}

	return invs, nil
}

func (s *Service) Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, []entity.InvoiceItem, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Invoice{}, nil, err
	}

	inv, err := s.repo.Invoice(ctx, user.ID, id)
	if err != nil {
		return entity.Invoice{}, nil, fmt.Errorf("get invoice %s: %w", id, err)
	}

	items, err := s.repo.InvoiceItems(ctx, id)
	if err != nil {
		return entity.Invoice{}, nil, fmt.Errorf("get invoice %s items: %w", id, err)
	}

	return inv, items, nil
}

// SendInvoice emails the invoice to the client and moves it to sent. The
// status flips only after the email is accepted by the mail provider.
func (s *Service) SendInvoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Invoice{}, err
	}

	inv, err := s.repo.Invoice(ctx, user.ID, id)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("get invoice %s: %w", id, err)
	}

	if inv.Status == entity.InvoiceStatusPaid {
		return entity.Invoice{}, fmt.Errorf("invoice %s: %w", inv.ID, entity.ErrAlreadyPaid)
	}

	client, err := s.repo.Client(ctx, user.ID, inv.ClientID)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("get client %s: %w", inv.ClientID, err)
	}

	subject := fmt.Sprintf("Invoice %s from %s", inv.Number, user.FullName)
	body := invoiceEmailHTML(inv, client, user, s.payLink(inv.ID))

	_, err = s.sender.Send(ctx, client.Email, subject, body)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("send invoice email to %q: %w", client.Email, err)
	}

	now := time.Now()

	err = s.repo.MarkInvoiceSent(ctx, user.ID, inv.ID, now)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("mark invoice %s sent: %w", inv.ID, err)
	}

	inv.Status = entity.InvoiceStatusSent
	inv.SentAt = &now

	slog.InfoContext(ctx, fmt.Sprintf("Invoice %s sent to %q", inv.Number, client.Email))

	return inv, nil
}

// PublicInvoiceView is what the payer sees on the hosted invoice page. No
// authentication, looked up by invoice id alone.
type PublicInvoiceView struct {
	Invoice      entity.Invoice
	Items        []entity.InvoiceItem
	Deliverables []entity.Deliverable
	ClientName   string
	IssuerName   string
}

func (s *Service) PublicInvoice(ctx context.Context, id uuid.UUID) (PublicInvoiceView, error) {
	inv, err := s.repo.InvoiceByID(ctx, id)
	if err != nil {
		return PublicInvoiceView{}, fmt.Errorf("get invoice %s: %w", id, err)
	}

	items, err := s.repo.InvoiceItems(ctx, id)
	if err != nil {
		return PublicInvoiceView{}, fmt.Errorf("get invoice %s items: %w", id, err)
	}

	deliverables, err := s.repo.Deliverables(ctx, id)
	if err != nil {
		return PublicInvoiceView{}, fmt.Errorf("get invoice %s deliverables: %w", id, err)
	}

	client, err := s.repo.ClientByID(ctx, inv.ClientID)
	if err != nil {
		return PublicInvoiceView{}, fmt.Errorf("get client %s: %w", inv.ClientID, err)
	}

	issuer, err := s.repo.User(ctx, inv.UserID)
	if err != nil {
		return PublicInvoiceView{}, fmt.Errorf("get user %s: %w", inv.UserID, err)
	}

	return PublicInvoiceView{
		Invoice:      inv,
		Items:        items,
		Deliverables: deliverables,
		ClientName:   client.Name,
		IssuerName:   issuer.FullName,
	}, nil
}

// MarkInvoiceViewed records that the payer opened the hosted invoice page.
// Only a sent invoice transitions; any other status is a no-op.
func (s *Service) MarkInvoiceViewed(ctx context.Context, id uuid.UUID) error {
	err := s.repo.MarkInvoiceViewed(ctx, id)
	if err != nil {
		return fmt.Errorf("mark invoice %s viewed: %w", id, err)
	}

	return nil
}

func (s *Service) payLink(invoiceID uuid.UUID) string {
	return fmt.Sprintf("%s/portal/%s", s.frontendURL, invoiceID)
}
