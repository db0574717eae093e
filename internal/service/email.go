package service

import (
	"fmt"

	"github.com/clientnudge/invoicing/internal/entity"
)

const dueDateLayout = "January 2, 2006"

// reminderEmailHTML wraps the composed reminder message with invoice details
// and the hosted payment link.
func reminderEmailHTML(inv entity.Invoice, message, payLink, issuerName string) string {
	return fmt.Sprintf(`
	<div style="font-family: Inter, sans-serif; max-width: 600px; margin: 0 auto;">
		<h2 style="color: #4361EE;">Payment Reminder</h2>
		<div style="white-space: pre-wrap; line-height: 1.6;">%s</div>
		<hr style="margin: 30px 0; border: none; border-top: 1px solid #e5e7eb;">
		<p style="font-size: 14px; color: #6b7280;">
			<strong>Invoice Details:</strong><br>
			Invoice #: %s<br>
			Amount: %s %s<br>
			Due Date: %s
		</p>
		<a href="%s" style="display: inline-block; background: #4361EE; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; margin-top: 20px;">View &amp; Pay Invoice</a>
		<p style="margin-top: 30px; font-size: 12px; color: #9ca3af;">Automated reminder from %s</p>
	</div>`,
		message, inv.Number, inv.TotalAmount, inv.Currency,
		inv.DueDate.Format(dueDateLayout), payLink, issuerName)
}

func invoiceEmailHTML(inv entity.Invoice, client entity.Client, issuer entity.User, payLink string) string {
	return fmt.Sprintf(`
	<div style="font-family: Inter, sans-serif; max-width: 600px; margin: 0 auto;">
		<h2 style="color: #4361EE;">Invoice %s</h2>
		<p>Hi %s,</p>
		<p>%s has sent you an invoice for <strong>%s %s</strong>, due on %s.</p>
		<a href="%s" style="display: inline-block; background: #4361EE; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; margin-top: 20px;">View &amp; Pay Invoice</a>
		<p style="margin-top: 30px; font-size: 12px; color: #9ca3af;">Sent by %s</p>
	</div>`,
		inv.Number, client.Name, issuer.FullName, inv.TotalAmount, inv.Currency,
		inv.DueDate.Format(dueDateLayout), payLink, issuer.FullName)
}
