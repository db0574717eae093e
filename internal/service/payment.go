package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/clientnudge/invoicing/internal/entity"
	"github.com/clientnudge/invoicing/pkg/broker"
)

// CreateCheckoutSession opens a Stripe checkout for the invoice from the
// public portal. A pending payment row ties the session back to the invoice.
func (s *Service) CreateCheckoutSession(ctx context.Context, invoiceID uuid.UUID, originURL string) (entity.CheckoutSession, error) {
	inv, err := s.repo.InvoiceByID(ctx, invoiceID)
	if err != nil {
		return entity.CheckoutSession{}, fmt.Errorf("get invoice %s: %w", invoiceID, err)
	}

	if inv.Status == entity.InvoiceStatusPaid {
		return entity.CheckoutSession{}, fmt.Errorf("invoice %s: %w", inv.ID, entity.ErrAlreadyPaid)
	}

	successURL := fmt.Sprintf("%s/portal/%s?payment=success&session_id={CHECKOUT_SESSION_ID}", originURL, inv.ID)
	cancelURL := fmt.Sprintf("%s/portal/%s?payment=cancelled", originURL, inv.ID)

	session, err := s.stripe.CreateCheckoutSession(ctx, inv, successURL, cancelURL)
	if err != nil {
		return entity.CheckoutSession{}, fmt.Errorf("create checkout session: %w", err)
	}

	now := time.Now()

	err = s.repo.CreatePayment(ctx, entity.Payment{
		ID:                uuid.Must(uuid.NewV4()),
		InvoiceID:         inv.ID,
		Processor:         entity.PaymentProcessorStripe,
		ProviderSessionID: session.SessionID,
		Amount:            inv.TotalAmount,
		Currency:          inv.Currency,
		Status:            entity.PaymentStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if err != nil {
		return entity.CheckoutSession{}, fmt.Errorf("create payment record: %w", err)
	}

	return session, nil
}

// CheckoutStatus polls a Stripe session and settles the invoice once the
// provider reports it paid. Safe to call repeatedly from the portal.
func (s *Service) CheckoutStatus(ctx context.Context, sessionID string) (entity.Payment, error) {
	payment, err := s.repo.PaymentBySession(ctx, entity.PaymentProcessorStripe, sessionID)
	if err != nil {
		return entity.Payment{}, fmt.Errorf("get payment for session %q: %w", sessionID, err)
	}

	if payment.Status == entity.PaymentStatusCompleted {
		return payment, nil
	}

	paid, err := s.stripe.SessionPaid(ctx, sessionID)
	if err != nil {
		return entity.Payment{}, fmt.Errorf("get session %q status: %w", sessionID, err)
	}

	if !paid {
		return payment, nil
	}

	err = s.completePayment(ctx, payment, sessionID)
	if err != nil && !errors.Is(err, entity.ErrAlreadyPaid) {
		return entity.Payment{}, err
	}

	payment.Status = entity.PaymentStatusCompleted

	return payment, nil
}

// CreateInvoiceOrder opens a Razorpay order for the invoice from the public
// portal.
func (s *Service) CreateInvoiceOrder(ctx context.Context, invoiceID uuid.UUID) (entity.CheckoutSession, error) {
	inv, err := s.repo.InvoiceByID(ctx, invoiceID)
	if err != nil {
		return entity.CheckoutSession{}, fmt.Errorf("get invoice %s: %w", invoiceID, err)
	}

	if inv.Status == entity.InvoiceStatusPaid {
		return entity.CheckoutSession{}, fmt.Errorf("invoice %s: %w", inv.ID, entity.ErrAlreadyPaid)
	}

	receipt := fmt.Sprintf("invoice_%s", inv.ID.String()[:8])

	session, err := s.razorpay.CreateOrder(ctx, inv.TotalAmount, inv.Currency, receipt, map[string]string{
		"invoice_id": inv.ID.String(),
		"type":       "invoice",
	})
	if err != nil {
		return entity.CheckoutSession{}, fmt.Errorf("create order: %w", err)
	}

	now := time.Now()

	err = s.repo.CreatePayment(ctx, entity.Payment{
		ID:                uuid.Must(uuid.NewV4()),
		InvoiceID:         inv.ID,
		Processor:         entity.PaymentProcessorRazorpay,
		ProviderSessionID: session.SessionID,
		Amount:            inv.TotalAmount,
		Currency:          inv.Currency,
		Status:            entity.PaymentStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if err != nil {
		return entity.CheckoutSession{}, fmt.Errorf("create payment record: %w", err)
	}

	return session, nil
}

// VerifyInvoicePayment checks the Razorpay signature returned by the payer's
// browser and settles the invoice.
func (s *Service) VerifyInvoicePayment(ctx context.Context, orderID, paymentID, signature string) error {
	err := s.razorpay.VerifySignature(orderID, paymentID, signature)
	if err != nil {
		return fmt.Errorf("verify payment %q: %w", paymentID, err)
	}

	payment, err := s.repo.PaymentBySession(ctx, entity.PaymentProcessorRazorpay, orderID)
	if err != nil {
		return fmt.Errorf("get payment for order %q: %w", orderID, err)
	}

	if payment.Status == entity.PaymentStatusCompleted {
		return nil
	}

	return s.completePayment(ctx, payment, paymentID)
}

type razorpayWebhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// HandleRazorpayWebhook settles payments reported server-to-server. It backs
// up the browser verify flow, so a payer closing the tab after paying still
// gets their invoice marked paid.
func (s *Service) HandleRazorpayWebhook(ctx context.Context, payload []byte, signature string) error {
	err := s.razorpay.VerifyWebhook(payload, signature)
	if err != nil {
		return fmt.Errorf("verify webhook: %w", err)
	}

	var event razorpayWebhookEvent

	err = json.Unmarshal(payload, &event)
	if err != nil {
		return fmt.Errorf("%w: decode webhook payload: %s", entity.ErrInvalidArgument, err)
	}

	if event.Event != "payment.captured" {
		slog.InfoContext(ctx, fmt.Sprintf("Ignoring webhook event %q", event.Event))
		return nil
	}

	entityPayment := event.Payload.Payment.Entity

	payment, err := s.repo.PaymentBySession(ctx, entity.PaymentProcessorRazorpay, entityPayment.OrderID)
	if err != nil {
		return fmt.Errorf("get payment for order %q: %w", entityPayment.OrderID, err)
	}

	if payment.Status == entity.PaymentStatusCompleted {
		return nil
	}

	return s.completePayment(ctx, payment, entityPayment.ID)
}

// completePayment settles an invoice: marks it paid, unlocks its
// deliverables, rolls the amount into the client's totals and emits the paid
// event.
func (s *Service) completePayment(ctx context.Context, payment entity.Payment, providerPaymentID string) error {
	inv, err := s.repo.InvoiceByID(ctx, payment.InvoiceID)
	if err != nil {
		return fmt.Errorf("get invoice %s: %w", payment.InvoiceID, err)
	}

	if inv.Status == entity.InvoiceStatusPaid {
		return fmt.Errorf("invoice %s: %w", inv.ID, entity.ErrAlreadyPaid)
	}

	now := time.Now()

	err = s.repo.MarkInvoicePaid(ctx, inv.ID, now)
	if err != nil {
		return fmt.Errorf("mark invoice %s paid: %w", inv.ID, err)
	}

	err = s.repo.UpdatePaymentStatus(ctx, payment.ID, entity.PaymentStatusCompleted, providerPaymentID, now)
	if err != nil {
		return fmt.Errorf("update payment %s status: %w", payment.ID, err)
	}

	err = s.repo.UnlockDeliverables(ctx, inv.ID)
	if err != nil {
		return fmt.Errorf("unlock deliverables for invoice %s: %w", inv.ID, err)
	}

	err = s.repo.AddClientTotalPaid(ctx, inv.ClientID, inv.TotalAmount)
	if err != nil {
		return fmt.Errorf("update client %s totals: %w", inv.ClientID, err)
	}

	s.producer.SendInvoicePaid(ctx, broker.InvoicePaidEvent{
		InvoiceID: inv.ID,
		UserID:    inv.UserID,
		ClientID:  inv.ClientID,
		Amount:    inv.TotalAmount,
		Currency:  inv.Currency,
		PaidAt:    now,
	})

	slog.InfoContext(ctx, fmt.Sprintf("Invoice %s paid, %s %s collected",
		inv.Number, inv.TotalAmount, inv.Currency))

	return nil
}

type AddDeliverableParams struct {
	InvoiceID uuid.UUID
	FileName  string
	FilePath  string
	FileType  string
	FileSize  int64
}

// AddDeliverable attaches a locked work product to an invoice. It unlocks
// when the invoice is paid.
func (s *Service) AddDeliverable(ctx context.Context, p AddDeliverableParams) (entity.Deliverable, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Deliverable{}, err
	}

	inv, err := s.repo.Invoice(ctx, user.ID, p.InvoiceID)
	if err != nil {
		return entity.Deliverable{}, fmt.Errorf("get invoice %s: %w", p.InvoiceID, err)
	}

	d := entity.Deliverable{
		ID:        uuid.Must(uuid.NewV4()),
		InvoiceID: inv.ID,
		FileName:  p.FileName,
		FilePath:  p.FilePath,
		FileType:  p.FileType,
		FileSize:  p.FileSize,
		IsLocked:  inv.Status != entity.InvoiceStatusPaid,
		CreatedAt: time.Now(),
	}

	err = s.repo.CreateDeliverable(ctx, d)
	if err != nil {
		return entity.Deliverable{}, fmt.Errorf("create deliverable: %w", err)
	}

	return d, nil
}

func (s *Service) InvoiceDeliverables(ctx context.Context, invoiceID uuid.UUID) ([]entity.Deliverable, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	_, err = s.repo.Invoice(ctx, user.ID, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("get invoice %s: %w", invoiceID, err)
	}

	ds, err := s.repo.Deliverables(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("get deliverables: %w", err)
	}

	return ds, nil
}
