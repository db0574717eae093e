package service_test

import (
	"context"
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

func TestService_CreateInvoice(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)

	user := entity.User{ID: uuid.Must(uuid.NewV4()), Plan: entity.PlanFree, InvoiceCount: 1}
	ctx := entity.CtxWithUser(context.Background(), user)

	clientID := uuid.Must(uuid.NewV4())

	repo.EXPECT().Client(ctx, user.ID, clientID).Return(entity.Client{ID: clientID}, nil)
	repo.EXPECT().CreateInvoice(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv entity.Invoice, items []entity.InvoiceItem) error {
			require.Equal(t, entity.InvoiceStatusDraft, inv.Status)
			require.Equal(t, "43.99", inv.TotalAmount.String())
			require.Len(t, items, 1)
			require.Equal(t, inv.ID, items[0].InvoiceID)
			return nil
		})
	repo.EXPECT().IncrementUserInvoiceCount(ctx, user.ID).Return(nil)

	s := newService(repo, nil, nil, nil)

	inv, err := s.CreateInvoice(ctx, service.CreateInvoiceParams{
		ClientID: clientID,
		Items: []service.InvoiceItemParams{
			{Description: "Design work", Quantity: decimal.RequireFromString("2"), Rate: decimal.RequireFromString("19.995")},
		},
		TaxPercentage: decimal.RequireFromString("10"),
		DiscountType:  entity.DiscountTypeNone,
		Currency:      "USD",
		DueDate:       time.Now().Add(14 * 24 * time.Hour),
		AutoReminders: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, inv.Number)
}

func TestService_CreateInvoice_QuotaExceeded(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)

	user := entity.User{ID: uuid.Must(uuid.NewV4()), Plan: entity.PlanFree, InvoiceCount: 3}
	ctx := entity.CtxWithUser(context.Background(), user)

	s := newService(repo, nil, nil, nil)

	_, err := s.CreateInvoice(ctx, service.CreateInvoiceParams{
		ClientID: uuid.Must(uuid.NewV4()),
		Items: []service.InvoiceItemParams{
			{Description: "Work", Quantity: decimal.New(1, 0), Rate: decimal.New(100, 0)},
		},
		DiscountType: entity.DiscountTypeNone,
		DueDate:      time.Now().Add(24 * time.Hour),
	})
	require.ErrorIs(t, err, entity.ErrQuotaExceeded)
}

func TestService_CheckoutStatus_SettlesInvoice(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)
	stripe := mocks.NewMockStripeGateway(ctrl)

	inv := entity.Invoice{
		ID:          uuid.Must(uuid.NewV4()),
		UserID:      uuid.Must(uuid.NewV4()),
		ClientID:    uuid.Must(uuid.NewV4()),
		Number:      "INV-20250801120000",
		TotalAmount: decimal.RequireFromString("500.00"),
		Currency:    "USD",
		Status:      entity.InvoiceStatusViewed,
	}

	payment := entity.Payment{
		ID:                uuid.Must(uuid.NewV4()),
		InvoiceID:         inv.ID,
		Processor:         entity.PaymentProcessorStripe,
		ProviderSessionID: "cs_test_123",
		Status:            entity.PaymentStatusPending,
	}

	ctx := context.Background()

	repo.EXPECT().PaymentBySession(ctx, entity.PaymentProcessorStripe, "cs_test_123").Return(payment, nil)
	stripe.EXPECT().SessionPaid(ctx, "cs_test_123").Return(true, nil)
	repo.EXPECT().InvoiceByID(ctx, inv.ID).Return(inv, nil)
	repo.EXPECT().MarkInvoicePaid(ctx, inv.ID, gomock.Any()).Return(nil)
	repo.EXPECT().UpdatePaymentStatus(ctx, payment.ID, entity.PaymentStatusCompleted, "cs_test_123", gomock.Any()).Return(nil)
	repo.EXPECT().UnlockDeliverables(ctx, inv.ID).Return(nil)
	repo.EXPECT().AddClientTotalPaid(ctx, inv.ClientID, inv.TotalAmount).Return(nil)
	producer.EXPECT().SendInvoicePaid(ctx, gomock.Any())

	s := service.New(repo, nil, nil, producer, stripe, nil, frontendURL)

	got, err := s.CheckoutStatus(ctx, "cs_test_123")
	require.NoError(t, err)
	require.Equal(t, entity.PaymentStatusCompleted, got.Status)
}

func TestService_CheckoutStatus_StillPending(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	stripe := mocks.NewMockStripeGateway(ctrl)

	payment := entity.Payment{
		ID:                uuid.Must(uuid.NewV4()),
		Processor:         entity.PaymentProcessorStripe,
		ProviderSessionID: "cs_test_456",
		Status:            entity.PaymentStatusPending,
	}

	ctx := context.Background()

	repo.EXPECT().PaymentBySession(ctx, entity.PaymentProcessorStripe, "cs_test_456").Return(payment, nil)
	stripe.EXPECT().SessionPaid(ctx, "cs_test_456").Return(false, nil)

	s := service.New(repo, nil, nil, nil, stripe, nil, frontendURL)

	got, err := s.CheckoutStatus(ctx, "cs_test_456")
	require.NoError(t, err)
	require.Equal(t, entity.PaymentStatusPending, got.Status)
}

func TestService_RunSubscriptionSweep(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)

	expiredEnd := time.Now().Add(-time.Hour)
	activeEnd := time.Now().Add(10 * 24 * time.Hour)

	expired := entity.Subscription{
		ID:      uuid.Must(uuid.NewV4()),
		UserID:  uuid.Must(uuid.NewV4()),
		Plan:    entity.PlanPro,
		Status:  entity.SubscriptionStatusActive,
		EndDate: &expiredEnd,
	}
	active := entity.Subscription{
		ID:      uuid.Must(uuid.NewV4()),
		UserID:  uuid.Must(uuid.NewV4()),
		Plan:    entity.PlanAgency,
		Status:  entity.SubscriptionStatusActive,
		EndDate: &activeEnd,
	}

	ctx := context.Background()

	repo.EXPECT().ActiveSubscriptions(ctx).Return([]entity.Subscription{expired, active}, nil)
	repo.EXPECT().CancelSubscription(ctx, expired.ID, gomock.Any(), entity.CancellationReasonExpiredUnpaid).Return(nil)
	repo.EXPECT().UpdateUserPlan(ctx, expired.UserID, entity.PlanFree, entity.SubscriptionStateInactive).Return(nil)

	s := newService(repo, nil, nil, nil)

	err := s.RunSubscriptionSweep(ctx)
	require.NoError(t, err)
}

func TestService_ActivateSubscription(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	razorpay := mocks.NewMockRazorpayGateway(ctrl)

	user := entity.User{ID: uuid.Must(uuid.NewV4()), Plan: entity.PlanFree}
	ctx := entity.CtxWithUser(context.Background(), user)

	razorpay.EXPECT().VerifySignature("order_1", "pay_1", "sig_1").Return(nil)
	repo.EXPECT().CreateSubscription(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, sub entity.Subscription) error {
			require.Equal(t, user.ID, sub.UserID)
			require.Equal(t, entity.PlanPro, sub.Plan)
			require.NotNil(t, sub.EndDate)
			require.WithinDuration(t, time.Now().Add(30*24*time.Hour), *sub.EndDate, time.Minute)
			return nil
		})
	repo.EXPECT().UpdateUserPlan(ctx, user.ID, entity.PlanPro, entity.SubscriptionStateActive).Return(nil)

	s := service.New(repo, nil, nil, nil, nil, razorpay, frontendURL)

	sub, err := s.ActivateSubscription(ctx, entity.PlanPro, "order_1", "pay_1", "sig_1")
	require.NoError(t, err)
	require.Equal(t, entity.SubscriptionStatusActive, sub.Status)
}

func TestService_ActivateSubscription_BadSignature(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	razorpay := mocks.NewMockRazorpayGateway(ctrl)

	user := entity.User{ID: uuid.Must(uuid.NewV4())}
	ctx := entity.CtxWithUser(context.Background(), user)

	razorpay.EXPECT().VerifySignature("order_1", "pay_1", "bad").Return(entity.ErrInvalidSignature)

	s := service.New(repo, nil, nil, nil, nil, razorpay, frontendURL)

	_, err := s.ActivateSubscription(ctx, entity.PlanPro, "order_1", "pay_1", "bad")
	require.ErrorIs(t, err, entity.ErrInvalidSignature)
}

func TestService_ProvisionUser_CreatesOnFirstSight(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)

	id := uuid.Must(uuid.NewV4())
	ctx := context.Background()

	repo.EXPECT().User(ctx, id).Return(entity.User{}, entity.ErrNotFound)
	repo.EXPECT().CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u entity.User) error {
			require.Equal(t, id, u.ID)
			require.Equal(t, entity.PlanFree, u.Plan)
			return nil
		})

	s := newService(repo, nil, nil, nil)

	user, err := s.ProvisionUser(ctx, id, "jordan@example.com", "Jordan Lee")
	require.NoError(t, err)
	require.Equal(t, "jordan@example.com", user.Email)
}

func TestService_HandleRazorpayWebhook_SettlesInvoice(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)
	razorpay := mocks.NewMockRazorpayGateway(ctrl)

	inv := entity.Invoice{
		ID:          uuid.Must(uuid.NewV4()),
		UserID:      uuid.Must(uuid.NewV4()),
		ClientID:    uuid.Must(uuid.NewV4()),
		Number:      "INV-20250801130000",
		TotalAmount: decimal.RequireFromString("900.00"),
		Currency:    "INR",
		Status:      entity.InvoiceStatusSent,
	}

	payment := entity.Payment{
		ID:                uuid.Must(uuid.NewV4()),
		InvoiceID:         inv.ID,
		Processor:         entity.PaymentProcessorRazorpay,
		ProviderSessionID: "order_9A33XWu170gUtm",
		Status:            entity.PaymentStatusPending,
	}

	payload := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_29QQoUBi66xm2f","order_id":"order_9A33XWu170gUtm"}}}}`)

	ctx := context.Background()

	razorpay.EXPECT().VerifyWebhook(payload, "sig").Return(nil)
	repo.EXPECT().PaymentBySession(ctx, entity.PaymentProcessorRazorpay, "order_9A33XWu170gUtm").Return(payment, nil)
	repo.EXPECT().InvoiceByID(ctx, inv.ID).Return(inv, nil)
	repo.EXPECT().MarkInvoicePaid(ctx, inv.ID, gomock.Any()).Return(nil)
	repo.EXPECT().UpdatePaymentStatus(ctx, payment.ID, entity.PaymentStatusCompleted, "pay_29QQoUBi66xm2f", gomock.Any()).Return(nil)
	repo.EXPECT().UnlockDeliverables(ctx, inv.ID).Return(nil)
	repo.EXPECT().AddClientTotalPaid(ctx, inv.ClientID, inv.TotalAmount).Return(nil)
	producer.EXPECT().SendInvoicePaid(ctx, gomock.Any())

	s := service.New(repo, nil, nil, producer, nil, razorpay, frontendURL)

	require.NoError(t, s.HandleRazorpayWebhook(ctx, payload, "sig"))
}

func TestService_HandleRazorpayWebhook_IgnoresOtherEvents(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	razorpay := mocks.NewMockRazorpayGateway(ctrl)

	payload := []byte(`{"event":"payment.failed","payload":{"payment":{"entity":{"id":"pay_1","order_id":"order_1"}}}}`)

	razorpay.EXPECT().VerifyWebhook(payload, "sig").Return(nil)

	s := service.New(repo, nil, nil, nil, nil, razorpay, frontendURL)

	require.NoError(t, s.HandleRazorpayWebhook(context.Background(), payload, "sig"))
}

func TestService_HandleRazorpayWebhook_BadSignature(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	razorpay := mocks.NewMockRazorpayGateway(ctrl)

	payload := []byte(`{}`)

	razorpay.EXPECT().VerifyWebhook(payload, "forged").Return(entity.ErrInvalidSignature)

	s := service.New(repo, nil, nil, nil, nil, razorpay, frontendURL)

	err := s.HandleRazorpayWebhook(context.Background(), payload, "forged")
	require.ErrorIs(t, err, entity.ErrInvalidSignature)
}
