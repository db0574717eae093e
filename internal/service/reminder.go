package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/clientnudge/invoicing/internal/entity"
)

// RunReminderSweep walks every unpaid invoice with automated reminders on and
// fires at most one escalation tier per invoice. A failing invoice never
// blocks the rest of the sweep; individual failures are joined into the
// returned error.
func (s *Service) RunReminderSweep(ctx context.Context) error {
	now := time.Now()

	invs, err := s.repo.RemindableInvoices(ctx)
	if err != nil {
		return fmt.Errorf("get remindable invoices: %w", err)
	}

	var (
		errs []error
		sent int
	)

	for _, inv := range invs {
		fired, err := s.remindInvoice(ctx, inv, now)
		if err != nil {
			errs = append(errs, fmt.Errorf("invoice %s: %w", inv.ID, err))
			continue
		}

		if fired {
			sent++
		}
	}

	slog.InfoContext(ctx, fmt.Sprintf("Reminder sweep checked %d invoices, sent %d reminders", len(invs), sent))

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

func (s *Service) remindInvoice(ctx context.Context, inv entity.Invoice, now time.Time) (bool, error) {
	var lastSent *time.Time

	last, err := s.repo.LastSentReminder(ctx, inv.ID)
	switch {
	case err == nil:
		lastSent = last.SentAt
	case !errors.Is(err, entity.ErrNotFound):
		return false, fmt.Errorf("get last sent reminder: %w", err)
	}

	decision, ok := entity.EvaluateEscalation(inv, lastSent, now)
	if !ok {
		return false, nil
	}

	if decision.MarkOverdue {
		err = s.repo.UpdateInvoiceStatus(ctx, inv.ID, entity.InvoiceStatusOverdue)
		if err != nil {
			return false, fmt.Errorf("mark invoice overdue: %w", err)
		}

		inv.Status = entity.InvoiceStatusOverdue
	}

	if decision.ApplyLateFee {
		fee, total := inv.OverdueLateFee()

		err = s.repo.ApplyInvoiceLateFee(ctx, inv.ID, fee, total)
		switch {
		case err == nil:
			inv.LateFeeAmount = fee
			inv.TotalAmount = total

			slog.InfoContext(ctx, fmt.Sprintf("Late fee %s %s applied to invoice %s",
				fee, inv.Currency, inv.Number))
		case errors.Is(err, entity.ErrNotFound):
			// Another sweep already charged the fee. Keep going with the
			// stored amounts.
		default:
			return false, fmt.Errorf("apply late fee: %w", err)
		}
	}

	client, err := s.repo.ClientByID(ctx, inv.ClientID)
	if err != nil {
		return false, fmt.Errorf("get client %s: %w", inv.ClientID, err)
	}

	issuer, err := s.repo.User(ctx, inv.UserID)
	if err != nil {
		return false, fmt.Errorf("get user %s: %w", inv.UserID, err)
	}

	message := s.composeReminder(ctx, inv, client, issuer, decision.Tier)

	subject := fmt.Sprintf("Payment Reminder: Invoice %s", inv.Number)
	body := reminderEmailHTML(inv, message, s.payLink(inv.ID), issuer.FullName)

	_, err = s.sender.Send(ctx, client.Email, subject, body)
	if err != nil {
		return false, fmt.Errorf("send %s reminder to %q: %w", decision.Tier, client.Email, err)
	}

	sentAt := time.Now()

	err = s.repo.CreateReminder(ctx, entity.Reminder{
		ID:        uuid.Must(uuid.NewV4()),
		InvoiceID: inv.ID,
		Type:      decision.Tier,
		Message:   message,
		SentAt:    &sentAt,
		Channel:   entity.ChannelEmail,
		CreatedAt: sentAt,
	})
	if err != nil {
		return false, fmt.Errorf("record %s reminder: %w", decision.Tier, err)
	}

	slog.InfoContext(ctx, fmt.Sprintf("Sent %s reminder for invoice %s to %q",
		decision.Tier, inv.Number, client.Email))

	return true, nil
}

// GenerateReminder composes a reminder of the requested tier on demand and
// stores it unsent so the user can review the copy before sending.
func (s *Service) GenerateReminder(ctx context.Context, invoiceID uuid.UUID, tier entity.ReminderType) (entity.Reminder, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Reminder{}, err
	}

	if err := tier.Validate(); err != nil {
		return entity.Reminder{}, err
	}

	inv, err := s.repo.Invoice(ctx, user.ID, invoiceID)
	if err != nil {
		return entity.Reminder{}, fmt.Errorf("get invoice %s: %w", invoiceID, err)
	}

	if inv.Status == entity.InvoiceStatusPaid {
		return entity.Reminder{}, fmt.Errorf("invoice %s: %w", inv.ID, entity.ErrAlreadyPaid)
	}

	client, err := s.repo.Client(ctx, user.ID, inv.ClientID)
	if err != nil {
		return entity.Reminder{}, fmt.Errorf("get client %s: %w", inv.ClientID, err)
	}

	rem := entity.Reminder{
		ID:        uuid.Must(uuid.NewV4()),
		InvoiceID: inv.ID,
		Type:      tier,
		Message:   s.composeReminder(ctx, inv, client, user, tier),
		Channel:   entity.ChannelEmail,
		CreatedAt: time.Now(),
	}

	err = s.repo.CreateReminder(ctx, rem)
	if err != nil {
		return entity.Reminder{}, fmt.Errorf("create reminder: %w", err)
	}

	return rem, nil
}

// SendReminder delivers a previously generated reminder and stamps it sent.
func (s *Service) SendReminder(ctx context.Context, reminderID uuid.UUID) (entity.Reminder, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Reminder{}, err
	}

	rem, err := s.repo.Reminder(ctx, reminderID)
	if err != nil {
		return entity.Reminder{}, fmt.Errorf("get reminder %s: %w", reminderID, err)
	}

	if rem.SentAt != nil {
		return entity.Reminder{}, fmt.Errorf("%w: reminder %s already sent", entity.ErrInvalidArgument, rem.ID)
	}

	inv, err := s.repo.Invoice(ctx, user.ID, rem.InvoiceID)
	if err != nil {
		return entity.Reminder{}, fmt.Errorf("get invoice %s: %w", rem.InvoiceID, err)
	}

	client, err := s.repo.Client(ctx, user.ID, inv.ClientID)
	if err != nil {
		return entity.Reminder{}, fmt.Errorf("get client %s: %w", inv.ClientID, err)
	}

	subject := fmt.Sprintf("Payment Reminder: Invoice %s", inv.Number)
	body := reminderEmailHTML(inv, rem.Message, s.payLink(inv.ID), user.FullName)

	_, err = s.sender.Send(ctx, client.Email, subject, body)
	if err != nil {
		return entity.Reminder{}, fmt.Errorf("send reminder to %q: %w", client.Email, err)
	}

	sentAt := time.Now()

	err = s.repo.MarkReminderSent(ctx, rem.ID, sentAt)
	if err != nil {
		return entity.Reminder{}, fmt.Errorf("mark reminder %s sent: %w", rem.ID, err)
	}

	rem.SentAt = &sentAt

	return rem, nil
}

func (s *Service) InvoiceReminders(ctx context.Context, invoiceID uuid.UUID) ([]entity.Reminder, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	// Scope check before listing.
	_, err = s.repo.Invoice(ctx, user.ID, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("get invoice %s: %w", invoiceID, err)
	}

	rems, err := s.repo.Reminders(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("get reminders: %w", err)
	}

	return rems, nil
}
