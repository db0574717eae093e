package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/clientnudge/invoicing/internal/entity"
)

const composeTimeout = 30 * time.Second

const composerSystemMessage = "You are a professional payment reminder assistant. " +
	"Generate concise, professional reminder messages."

// composeReminder produces the reminder body for one invoice and tier. Free
// plan users get a static template; paid plans get generated copy with a
// static one-liner as fallback. It never fails: a broken generator must not
// stall the dunning sweep.
func (s *Service) composeReminder(
	ctx context.Context,
	inv entity.Invoice,
	client entity.Client,
	issuer entity.User,
	tier entity.ReminderType,
) string {
	if issuer.Plan == entity.PlanFree {
		return templateReminder(inv, client, tier)
	}

	ctx, cancel := context.WithTimeout(ctx, composeTimeout)
	defer cancel()

	prompt := composerPrompt(inv, client, tier)

	msg, err := s.generator.GenerateText(ctx, composerSystemMessage, prompt)
	if err != nil {
		slog.ErrorContext(ctx, fmt.Sprintf("Generate reminder for invoice %s: %s", inv.ID, err))

		return fmt.Sprintf("Reminder: Invoice %s for %s %s requires your attention. Due date: %s.",
			inv.Number, inv.TotalAmount, inv.Currency, inv.DueDate.Format(dueDateLayout))
	}

	return strings.TrimSpace(msg)
}

func composerPrompt(inv entity.Invoice, client entity.Client, tier entity.ReminderType) string {
	company := client.Company
	if company == "" {
		company = "Individual"
	}

	return fmt.Sprintf(`Generate a professional payment reminder email for:

Client: %s (%s)
Invoice Number: %s
Amount: %s %s
Due Date: %s
Status: %s
Reminder Type: %s

Guidelines:
- Be professional and %s
- Keep it concise (3-4 sentences)
- Don't use subject line
- Don't sign off with a name
- Focus on the payment request`,
		client.Name, company, inv.Number, inv.TotalAmount, inv.Currency,
		inv.DueDate.Format(dueDateLayout), inv.Status, tier, tier)
}

func templateReminder(inv entity.Invoice, client entity.Client, tier entity.ReminderType) string {
	amount := fmt.Sprintf("%s %s", inv.TotalAmount, inv.Currency)
	due := inv.DueDate.Format(dueDateLayout)

	switch tier {
	case entity.ReminderTypeDueToday:
		return fmt.Sprintf("Hi %s,\n\nJust a reminder that invoice %s for %s is due today.\n\n"+
			"Please arrange payment at your earliest convenience.",
			client.Name, inv.Number, amount)

	case entity.ReminderTypeFirm:
		return fmt.Sprintf("Dear %s,\n\nInvoice %s for %s is now overdue. "+
			"Please arrange payment as soon as possible.\n\nThank you",
			client.Name, inv.Number, amount)

	case entity.ReminderTypeFinal, entity.ReminderTypeLateFeeWarning:
		return fmt.Sprintf("URGENT: Dear %s,\n\nThis is a final notice for invoice %s (%s), "+
			"which is significantly overdue.\n\nPlease settle immediately.",
			client.Name, inv.Number, amount)

	default:
		return fmt.Sprintf("Hi %s,\n\nFriendly reminder that invoice %s for %s is due soon on %s.\n\nThank you!",
			client.Name, inv.Number, amount, due)
	}
}
