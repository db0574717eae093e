package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/clientnudge/invoicing/internal/entity"
	"github.com/clientnudge/invoicing/pkg/broker"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	CreateUser(ctx context.Context, u entity.User) error
	User(ctx context.Context, id uuid.UUID) (entity.User, error)
	UpdateUserPlan(ctx context.Context, id uuid.UUID, plan entity.Plan, status entity.SubscriptionState) error
	IncrementUserInvoiceCount(ctx context.Context, id uuid.UUID) error

	CreateClient(ctx context.Context, c entity.Client) error
	Client(ctx context.Context, userID, id uuid.UUID) (entity.Client, error)
	ClientByID(ctx context.Context, id uuid.UUID) (entity.Client, error)
	Clients(ctx context.Context, userID uuid.UUID) ([]entity.Client, error)
	UpdateClient(ctx context.Context, c entity.Client) error
	DeleteClient(ctx context.Context, userID, id uuid.UUID) error
	AddClientTotalPaid(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error

	CreateProject(ctx context.Context, p entity.Project) error
	Project(ctx context.Context, userID, id uuid.UUID) (entity.Project, error)
	Projects(ctx context.Context, userID uuid.UUID) ([]entity.Project, error)
	UpdateProjectCompletion(ctx context.Context, p entity.Project) error

	CreateInvoice(ctx context.Context, inv entity.Invoice, items []entity.InvoiceItem) error
	Invoice(ctx context.Context, userID, id uuid.UUID) (entity.Invoice, error)
	InvoiceByID(ctx context.Context, id uuid.UUID) (entity.Invoice, error)
	Invoices(ctx context.Context, userID uuid.UUID, f entity.InvoiceFilter) ([]entity.Invoice, error)
	RemindableInvoices(ctx context.Context) ([]entity.Invoice, error)
	InvoiceItems(ctx context.Context, invoiceID uuid.UUID) ([]entity.InvoiceItem, error)
	UpdateInvoiceStatus(ctx context.Context, id uuid.UUID, status entity.InvoiceStatus) error
	MarkInvoiceSent(ctx context.Context, userID, id uuid.UUID, sentAt time.Time) error
	MarkInvoiceViewed(ctx context.Context, id uuid.UUID) error
	MarkInvoicePaid(ctx context.Context, id uuid.UUID, paidAt time.Time) error
	ApplyInvoiceLateFee(ctx context.Context, id uuid.UUID, fee, total decimal.Decimal) error

	CreateReminder(ctx context.Context, rem entity.Reminder) error
	Reminder(ctx context.Context, id uuid.UUID) (entity.Reminder, error)
	Reminders(ctx context.Context, invoiceID uuid.UUID) ([]entity.Reminder, error)
	LastSentReminder(ctx context.Context, invoiceID uuid.UUID) (entity.Reminder, error)
	MarkReminderSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error

	CreateSubscription(ctx context.Context, s entity.Subscription) error
	ActiveSubscriptions(ctx context.Context) ([]entity.Subscription, error)
	SubscriptionForUser(ctx context.Context, userID uuid.UUID) (entity.Subscription, error)
	CancelSubscription(ctx context.Context, id uuid.UUID, cancelledAt time.Time, reason string) error

	CreatePayment(ctx context.Context, p entity.Payment) error
	PaymentBySession(ctx context.Context, processor entity.PaymentProcessor, sessionID string) (entity.Payment, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, providerPaymentID string, updatedAt time.Time) error
	CreateDeliverable(ctx context.Context, d entity.Deliverable) error
	Deliverables(ctx context.Context, invoiceID uuid.UUID) ([]entity.Deliverable, error)
	UnlockDeliverables(ctx context.Context, invoiceID uuid.UUID) error
}

// Sender delivers one email and returns the provider message id.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) (string, error)
}

// Generator produces reminder copy from a prompt. Implemented by the LLM
// client; paid plans only.
type Generator interface {
	GenerateText(ctx context.Context, system, prompt string) (string, error)
}

type Producer interface {
	SendInvoicePaid(ctx context.Context, event broker.InvoicePaidEvent)
}

type StripeGateway interface {
	CreateCheckoutSession(ctx context.Context, inv entity.Invoice, successURL, cancelURL string) (entity.CheckoutSession, error)
	SessionPaid(ctx context.Context, sessionID string) (bool, error)
}

type RazorpayGateway interface {
	CreateOrder(ctx context.Context, amount decimal.Decimal, currency, receipt string, notes map[string]string) (entity.CheckoutSession, error)
	VerifySignature(orderID, paymentID, signature string) error
	VerifyWebhook(payload []byte, signature string) error
}

type Service struct {
	repo        Repository
	sender      Sender
	generator   Generator
	producer    Producer
	stripe      StripeGateway
	razorpay    RazorpayGateway
	frontendURL string
}

func New(
	repo Repository,
	sender Sender,
	generator Generator,
	producer Producer,
	stripe StripeGateway,
	razorpay RazorpayGateway,
	frontendURL string,
) *Service {
	return &Service{
		repo:        repo,
		sender:      sender,
		generator:   generator,
		producer:    producer,
		stripe:      stripe,
		razorpay:    razorpay,
		frontendURL: frontendURL,
	}
}
