package repository

const (
	selectInvoice = `SELECT
		id,
		user_id,
		client_id,
		project_id,
		number,
		subtotal,
		tax_amount,
		tax_percentage,
		discount_amount,
		discount_type,
		discount_value,
		late_fee_amount,
		late_fee_enabled,
		late_fee_percentage,
		late_fee_days,
		total_amount,
		currency,
		exchange_rate,
		due_date,
		status,
		auto_reminders,
		created_at,
		sent_at,
		paid_at
	FROM invoices`

	selectClient = `SELECT
		id,
		user_id,
		name,
		email,
		phone,
		company,
		payment_score,
		avg_payment_days,
		total_paid,
		total_pending,
		created_at
	FROM clients`

	selectUser = `SELECT
		id,
		email,
		full_name,
		base_currency,
		plan,
		subscription_status,
		invoice_count,
		created_at
	FROM users`

	selectReminder = `SELECT
		id,
		invoice_id,
		reminder_type,
		message,
		sent_at,
		channel,
		created_at
	FROM reminders`

	selectSubscription = `SELECT
		id,
		user_id,
		plan,
		status,
		start_date,
		end_date,
		cancelled_at,
		cancellation_reason,
		created_at
	FROM subscriptions`

	selectPayment = `SELECT
		id,
		invoice_id,
		processor,
		provider_session_id,
		provider_payment_id,
		amount,
		currency,
		status,
		created_at,
		updated_at
	FROM payments`

	selectProject = `SELECT
		id,
		user_id,
		client_id,
		name,
		total_value,
		currency,
		completion_percentage,
		earned_amount,
		remaining_balance,
		deadline,
		linked_invoice_id,
		created_at
	FROM projects`
)
