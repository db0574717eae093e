package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/clientnudge/invoicing/internal/entity"
	"github.com/clientnudge/invoicing/internal/mocks"
	"github.com/clientnudge/invoicing/internal/service"
)

const frontendURL = "https://app.example.com"

func newService(repo *mocks.MockRepository, sender *mocks.MockSender, gen *mocks.MockGenerator, producer *mocks.MockProducer) *service.Service {
	return service.New(repo, sender, gen, producer, nil, nil, frontendURL)
}

func remindableInvoice(due time.Time) entity.Invoice {
	return entity.Invoice{
		ID:                uuid.Must(uuid.NewV4()),
		UserID:            uuid.Must(uuid.NewV4()),
		ClientID:          uuid.Must(uuid.NewV4()),
		Number:            "INV-20250801120000",
		TotalAmount:       decimal.RequireFromString("1500.00"),
		Currency:          "USD",
		LateFeeEnabled:    true,
		LateFeePercentage: decimal.RequireFromString("5"),
		DueDate:           due,
		Status:            entity.InvoiceStatusSent,
		AutoReminders:     true,
		CreatedAt:         time.Now().Add(-10 * 24 * time.Hour),
	}
}

func TestService_RunReminderSweep_Polite(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	sender := mocks.NewMockSender(ctrl)

	inv := remindableInvoice(time.Now().Add(80 * time.Hour))
	client := entity.Client{ID: inv.ClientID, Name: "Acme", Email: "billing@acme.test"}
	issuer := entity.User{ID: inv.UserID, FullName: "Jordan Lee", Plan: entity.PlanFree}

	repo.EXPECT().RemindableInvoices(context.Background()).Return([]entity.Invoice{inv}, nil)
	repo.EXPECT().LastSentReminder(context.Background(), inv.ID).Return(entity.Reminder{}, entity.ErrNotFound)
	repo.EXPECT().ClientByID(context.Background(), inv.ClientID).Return(client, nil)
	repo.EXPECT().User(context.Background(), inv.UserID).Return(issuer, nil)
	sender.EXPECT().Send(context.Background(), client.Email, "Payment Reminder: Invoice "+inv.Number, gomock.Any()).
		Return("msg-1", nil)
	repo.EXPECT().CreateReminder(context.Background(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rem entity.Reminder) error {
			require.Equal(t, inv.ID, rem.InvoiceID)
			require.Equal(t, entity.ReminderTypePolite, rem.Type)
			require.NotNil(t, rem.SentAt)
			require.Contains(t, rem.Message, inv.Number)
			return nil
		})

	s := newService(repo, sender, nil, nil)

	err := s.RunReminderSweep(context.Background())
	require.NoError(t, err)
}

func TestService_RunReminderSweep_SendFailureSkipsPersistence(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	sender := mocks.NewMockSender(ctrl)

	failing := remindableInvoice(time.Now().Add(80 * time.Hour))
	healthy := remindableInvoice(time.Now().Add(80 * time.Hour))
	client := entity.Client{Name: "Acme", Email: "billing@acme.test"}
	issuer := entity.User{FullName: "Jordan Lee", Plan: entity.PlanFree}

	repo.EXPECT().RemindableInvoices(context.Background()).Return([]entity.Invoice{failing, healthy}, nil)
	repo.EXPECT().LastSentReminder(context.Background(), gomock.Any()).Return(entity.Reminder{}, entity.ErrNotFound).Times(2)
	repo.EXPECT().ClientByID(context.Background(), gomock.Any()).Return(client, nil).Times(2)
	repo.EXPECT().User(context.Background(), gomock.Any()).Return(issuer, nil).Times(2)

	sender.EXPECT().Send(context.Background(), client.Email, "Payment Reminder: Invoice "+failing.Number, gomock.Any()).
		Return("", errors.New("smtp down"))
	sender.EXPECT().Send(context.Background(), client.Email, "Payment Reminder: Invoice "+healthy.Number, gomock.Any()).
		Return("msg-2", nil)

	// Only the delivered reminder is recorded.
	repo.EXPECT().CreateReminder(context.Background(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rem entity.Reminder) error {
			require.Equal(t, healthy.ID, rem.InvoiceID)
			return nil
		})

	s := newService(repo, sender, nil, nil)

	err := s.RunReminderSweep(context.Background())
	require.ErrorContains(t, err, failing.ID.String())
	require.ErrorContains(t, err, "smtp down")
}

func TestService_RunReminderSweep_FinalTierAppliesLateFee(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	sender := mocks.NewMockSender(ctrl)

	inv := remindableInvoice(time.Now().Add(-8 * 24 * time.Hour))
	inv.Status = entity.InvoiceStatusOverdue

	lastSent := time.Now().Add(-4 * 24 * time.Hour)
	client := entity.Client{ID: inv.ClientID, Name: "Acme", Email: "billing@acme.test"}
	issuer := entity.User{ID: inv.UserID, FullName: "Jordan Lee", Plan: entity.PlanFree}

	fee, total := inv.OverdueLateFee()

	repo.EXPECT().RemindableInvoices(context.Background()).Return([]entity.Invoice{inv}, nil)
	repo.EXPECT().LastSentReminder(context.Background(), inv.ID).
		Return(entity.Reminder{SentAt: &lastSent}, nil)
	repo.EXPECT().ApplyInvoiceLateFee(context.Background(), inv.ID, fee, total).Return(nil)
	repo.EXPECT().ClientByID(context.Background(), inv.ClientID).Return(client, nil)
	repo.EXPECT().User(context.Background(), inv.UserID).Return(issuer, nil)
	sender.EXPECT().Send(context.Background(), client.Email, gomock.Any(), gomock.Any()).Return("msg-3", nil)
	repo.EXPECT().CreateReminder(context.Background(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rem entity.Reminder) error {
			require.Equal(t, entity.ReminderTypeFinal, rem.Type)
			return nil
		})

	s := newService(repo, sender, nil, nil)

	err := s.RunReminderSweep(context.Background())
	require.NoError(t, err)
}

func TestService_RunReminderSweep_FirmTierMarksOverdue(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	sender := mocks.NewMockSender(ctrl)

	inv := remindableInvoice(time.Now().Add(-30 * time.Hour))
	client := entity.Client{ID: inv.ClientID, Name: "Acme", Email: "billing@acme.test"}
	issuer := entity.User{ID: inv.UserID, FullName: "Jordan Lee", Plan: entity.PlanFree}

	repo.EXPECT().RemindableInvoices(context.Background()).Return([]entity.Invoice{inv}, nil)
	repo.EXPECT().LastSentReminder(context.Background(), inv.ID).Return(entity.Reminder{}, entity.ErrNotFound)
	repo.EXPECT().UpdateInvoiceStatus(context.Background(), inv.ID, entity.InvoiceStatusOverdue).Return(nil)
	repo.EXPECT().ClientByID(context.Background(), inv.ClientID).Return(client, nil)
	repo.EXPECT().User(context.Background(), inv.UserID).Return(issuer, nil)
	sender.EXPECT().Send(context.Background(), client.Email, gomock.Any(), gomock.Any()).Return("msg-4", nil)
	repo.EXPECT().CreateReminder(context.Background(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rem entity.Reminder) error {
			require.Equal(t, entity.ReminderTypeFirm, rem.Type)
			return nil
		})

	s := newService(repo, sender, nil, nil)

	err := s.RunReminderSweep(context.Background())
	require.NoError(t, err)
}

func TestService_RunReminderSweep_NoTierFires(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)

	// Due in 5 days: between the polite and due-today windows.
	inv := remindableInvoice(time.Now().Add(5 * 24 * time.Hour))

	repo.EXPECT().RemindableInvoices(context.Background()).Return([]entity.Invoice{inv}, nil)
	repo.EXPECT().LastSentReminder(context.Background(), inv.ID).Return(entity.Reminder{}, entity.ErrNotFound)

	s := newService(repo, nil, nil, nil)

	err := s.RunReminderSweep(context.Background())
	require.NoError(t, err)
}

func TestService_GenerateReminder_FallsBackWhenGeneratorFails(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	gen := mocks.NewMockGenerator(ctrl)

	user := entity.User{ID: uuid.Must(uuid.NewV4()), FullName: "Jordan Lee", Plan: entity.PlanPro}
	ctx := entity.CtxWithUser(context.Background(), user)

	inv := remindableInvoice(time.Now().Add(80 * time.Hour))
	inv.UserID = user.ID
	client := entity.Client{ID: inv.ClientID, Name: "Acme", Email: "billing@acme.test"}

	repo.EXPECT().Invoice(ctx, user.ID, inv.ID).Return(inv, nil)
	repo.EXPECT().Client(ctx, user.ID, inv.ClientID).Return(client, nil)
	gen.EXPECT().GenerateText(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("model unavailable"))
	repo.EXPECT().CreateReminder(ctx, gomock.Any()).Return(nil)

	s := newService(repo, nil, gen, nil)

	rem, err := s.GenerateReminder(ctx, inv.ID, entity.ReminderTypePolite)
	require.NoError(t, err)
	require.Nil(t, rem.SentAt)
	require.True(t, strings.HasPrefix(rem.Message, "Reminder: Invoice "+inv.Number))
}

func TestService_GenerateReminder_UsesGeneratorForPaidPlan(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	gen := mocks.NewMockGenerator(ctrl)

	user := entity.User{ID: uuid.Must(uuid.NewV4()), FullName: "Jordan Lee", Plan: entity.PlanAgency}
	ctx := entity.CtxWithUser(context.Background(), user)

	inv := remindableInvoice(time.Now().Add(80 * time.Hour))
	inv.UserID = user.ID
	client := entity.Client{ID: inv.ClientID, Name: "Acme", Email: "billing@acme.test"}

	repo.EXPECT().Invoice(ctx, user.ID, inv.ID).Return(inv, nil)
	repo.EXPECT().Client(ctx, user.ID, inv.ClientID).Return(client, nil)
	gen.EXPECT().GenerateText(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("  Please settle invoice "+inv.Number+" at your earliest convenience.\n", nil)
	repo.EXPECT().CreateReminder(ctx, gomock.Any()).Return(nil)

	s := newService(repo, nil, gen, nil)

	rem, err := s.GenerateReminder(ctx, inv.ID, entity.ReminderTypeFirm)
	require.NoError(t, err)
	require.Equal(t, "Please settle invoice "+inv.Number+" at your earliest convenience.", rem.Message)
}

func TestService_SendReminder_AlreadySent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)

	user := entity.User{ID: uuid.Must(uuid.NewV4()), Plan: entity.PlanFree}
	ctx := entity.CtxWithUser(context.Background(), user)

	sentAt := time.Now()
	rem := entity.Reminder{ID: uuid.Must(uuid.NewV4()), SentAt: &sentAt}

	repo.EXPECT().Reminder(ctx, rem.ID).Return(rem, nil)

	s := newService(repo, nil, nil, nil)

	_, err := s.SendReminder(ctx, rem.ID)
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}
