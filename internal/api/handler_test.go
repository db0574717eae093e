package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/clientnudge/invoicing/internal/api"
	"github.com/clientnudge/invoicing/internal/entity"
	"github.com/clientnudge/invoicing/internal/mocks"
	"github.com/clientnudge/invoicing/internal/service"
)

const jwtSecret = "test-secret"

type testAPI struct {
	svc   *mocks.MockService
	users *mocks.MockUserService
	srv   *httptest.Server
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	users := mocks.NewMockUserService(ctrl)

	srv := httptest.NewServer(api.NewRouter(api.NewHandler(svc), api.NewMiddleware(users, jwtSecret)))
	t.Cleanup(srv.Close)

	return &testAPI{svc: svc, users: users, srv: srv}
}

// signIn mints a token for the user and primes the provisioning expectation
// that BearerAuth triggers on every authenticated request.
func (a *testAPI) signIn(t *testing.T, user entity.User) string {
	t.Helper()

	claims := struct {
		Email string `json:"email"`
		Name  string `json:"name"`
		jwt.RegisteredClaims
	}{
		Email: user.Email,
		Name:  user.FullName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtSecret))
	require.NoError(t, err)

	a.users.EXPECT().ProvisionUser(gomock.Any(), user.ID, user.Email, user.FullName).Return(user, nil).AnyTimes()

	return token
}

func (a *testAPI) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, a.srv.URL+path, &buf)
	require.NoError(t, err)

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func testUser() entity.User {
	return entity.User{
		ID:           uuid.Must(uuid.NewV4()),
		Email:        "freelancer@example.com",
		FullName:     "Test Freelancer",
		BaseCurrency: "USD",
		Plan:         entity.PlanFree,
	}
}

func TestHandler_CreateInvoice(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	user := testUser()
	token := a.signIn(t, user)

	clientID := uuid.Must(uuid.NewV4())
	dueDate := time.Now().Add(14 * 24 * time.Hour).UTC().Truncate(time.Second)

	a.svc.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, p service.CreateInvoiceParams) (entity.Invoice, error) {
			require.Equal(t, clientID, p.ClientID)
			require.Len(t, p.Items, 1)
			require.Equal(t, "Design work", p.Items[0].Description)
			require.True(t, p.Items[0].Rate.Equal(decimal.RequireFromString("250.00")))
			require.Equal(t, entity.DiscountTypeNone, p.DiscountType)
			require.True(t, p.AutoReminders)

			return entity.Invoice{
				ID:          uuid.Must(uuid.NewV4()),
				UserID:      user.ID,
				ClientID:    p.ClientID,
				Number:      "INV-20250901120000",
				Subtotal:    decimal.RequireFromString("500.00"),
				TotalAmount: decimal.RequireFromString("500.00"),
				Currency:    "USD",
				DueDate:     p.DueDate,
				Status:      entity.InvoiceStatusDraft,
			}, nil
		},
	)

	resp := a.do(t, http.MethodPost, "/api/invoices", token, map[string]any{
		"clientId": clientID,
		"items": []map[string]any{
			{"description": "Design work", "quantity": "2", "rate": "250.00"},
		},
		"currency":      "USD",
		"dueDate":       dueDate,
		"autoReminders": true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got api.InvoiceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, "draft", got.Status)
	require.Equal(t, "INV-20250901120000", got.Number)
	require.True(t, got.TotalAmount.Equal(decimal.RequireFromString("500.00")))
}

func TestHandler_CreateInvoice_NoToken(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	resp := a.do(t, http.MethodPost, "/api/invoices", "", map[string]any{})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandler_CreateInvoice_BadToken(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: uuid.Must(uuid.NewV4()).String(),
	}).SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	resp := a.do(t, http.MethodPost, "/api/invoices", token, map[string]any{})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandler_CreateInvoice_QuotaExceeded(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	token := a.signIn(t, testUser())

	a.svc.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
		Return(entity.Invoice{}, fmt.Errorf("wrap: %w", entity.ErrQuotaExceeded))

	resp := a.do(t, http.MethodPost, "/api/invoices", token, map[string]any{
		"clientId": uuid.Must(uuid.NewV4()),
	})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestHandler_Invoice_NotFound(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	token := a.signIn(t, testUser())

	id := uuid.Must(uuid.NewV4())
	a.svc.EXPECT().Invoice(gomock.Any(), id).
		Return(entity.Invoice{}, nil, fmt.Errorf("get invoice: %w", entity.ErrNotFound))

	resp := a.do(t, http.MethodGet, "/api/invoices/"+id.String(), token, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_Invoices_Filter(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	token := a.signIn(t, testUser())

	clientID := uuid.Must(uuid.NewV4())

	a.svc.EXPECT().Invoices(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, f entity.InvoiceFilter) ([]entity.Invoice, error) {
			require.NotNil(t, f.Status)
			require.Equal(t, entity.InvoiceStatusOverdue, *f.Status)
			require.NotNil(t, f.ClientID)
			require.Equal(t, clientID, *f.ClientID)
			require.Equal(t, uint64(2), f.Page)
			require.Equal(t, uint64(10), f.Limit)

			return []entity.Invoice{}, nil
		},
	)

	resp := a.do(t, http.MethodGet,
		"/api/invoices?status=overdue&client_id="+clientID.String()+"&page=2&limit=10", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_PublicInvoice_NoAuthRequired(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	id := uuid.Must(uuid.NewV4())

	a.svc.EXPECT().PublicInvoice(gomock.Any(), id).Return(service.PublicInvoiceView{
		Invoice: entity.Invoice{
			ID:          id,
			Number:      "INV-20250801090000",
			TotalAmount: decimal.RequireFromString("320.50"),
			Status:      entity.InvoiceStatusSent,
		},
		Deliverables: []entity.Deliverable{
			{ID: uuid.Must(uuid.NewV4()), InvoiceID: id, FileName: "final.zip", FilePath: "s3://bucket/final.zip", IsLocked: true},
		},
		ClientName: "Acme Co",
		IssuerName: "Test Freelancer",
	}, nil)

	resp := a.do(t, http.MethodGet, "/api/portal/invoices/"+id.String(), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got api.PublicInvoiceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, "Acme Co", got.ClientName)
	require.Equal(t, "INV-20250801090000", got.Invoice.Number)

	// Locked files never leak their storage path to the payer.
	require.Len(t, got.Deliverables, 1)
	require.True(t, got.Deliverables[0].IsLocked)
	require.Empty(t, got.Deliverables[0].FilePath)
}

func TestHandler_VerifyInvoicePayment_BadSignature(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	a.svc.EXPECT().VerifyInvoicePayment(gomock.Any(), "order_1", "pay_1", "bad").
		Return(fmt.Errorf("verify: %w", entity.ErrInvalidSignature))

	resp := a.do(t, http.MethodPost, "/api/portal/payments/verify", "", map[string]any{
		"orderId":   "order_1",
		"paymentId": "pay_1",
		"signature": "bad",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_CheckoutStatus(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	a.svc.EXPECT().CheckoutStatus(gomock.Any(), "cs_test_123").Return(entity.Payment{
		ID:     uuid.Must(uuid.NewV4()),
		Status: entity.PaymentStatusCompleted,
	}, nil)

	resp := a.do(t, http.MethodGet, "/api/portal/checkout/cs_test_123", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got api.CheckoutStatusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, "completed", got.Status)
	require.Equal(t, "cs_test_123", got.SessionID)
}

func TestHandler_SendInvoice_AlreadyPaid(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	token := a.signIn(t, testUser())

	id := uuid.Must(uuid.NewV4())
	a.svc.EXPECT().SendInvoice(gomock.Any(), id).
		Return(entity.Invoice{}, fmt.Errorf("send invoice: %w", entity.ErrAlreadyPaid))

	resp := a.do(t, http.MethodPost, "/api/invoices/"+id.String()+"/send", token, nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestHandler_GenerateReminder(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	token := a.signIn(t, testUser())

	id := uuid.Must(uuid.NewV4())

	a.svc.EXPECT().GenerateReminder(gomock.Any(), id, entity.ReminderTypeFirm).Return(entity.Reminder{
		ID:        uuid.Must(uuid.NewV4()),
		InvoiceID: id,
		Type:      entity.ReminderTypeFirm,
		Message:   "Your payment is overdue.",
		Channel:   "email",
	}, nil)

	resp := a.do(t, http.MethodPost, "/api/invoices/"+id.String()+"/reminders", token, map[string]any{
		"type": "firm",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got api.ReminderResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, "firm", got.Type)
	require.Nil(t, got.SentAt)
}

func TestHandler_UpdateProjectCompletion(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	token := a.signIn(t, testUser())

	id := uuid.Must(uuid.NewV4())
	pct := decimal.RequireFromString("62.5")

	a.svc.EXPECT().UpdateProjectCompletion(gomock.Any(), id, gomock.Any()).DoAndReturn(
		func(_ any, _ uuid.UUID, got decimal.Decimal) (entity.Project, error) {
			require.True(t, got.Equal(pct))

			return entity.Project{
				ID:                   id,
				CompletionPercentage: got,
				EarnedAmount:         decimal.RequireFromString("625.00"),
				RemainingBalance:     decimal.RequireFromString("375.00"),
			}, nil
		},
	)

	resp := a.do(t, http.MethodPatch, "/api/projects/"+id.String()+"/completion", token, map[string]any{
		"completionPercentage": "62.5",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got api.ProjectResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.True(t, got.EarnedAmount.Equal(decimal.RequireFromString("625.00")))
}

func TestHandler_Subscription(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	user := testUser()
	user.Plan = entity.PlanPro
	user.SubscriptionStatus = entity.SubscriptionStateActive
	token := a.signIn(t, user)

	endDate := time.Now().Add(20 * 24 * time.Hour).UTC().Truncate(time.Second)

	a.svc.EXPECT().Subscription(gomock.Any()).Return(user, &entity.Subscription{
		ID:      uuid.Must(uuid.NewV4()),
		UserID:  user.ID,
		Plan:    entity.PlanPro,
		Status:  entity.SubscriptionStatusActive,
		EndDate: &endDate,
	}, nil)

	resp := a.do(t, http.MethodGet, "/api/subscription", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got api.AccountResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, "pro", got.Plan)
	require.NotNil(t, got.Subscription)
	require.Equal(t, "active", got.Subscription.Status)
}

func TestHandler_TriggerReminderSweep_ReportsErrors(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	token := a.signIn(t, testUser())

	a.svc.EXPECT().RunReminderSweep(gomock.Any()).
		Return(fmt.Errorf("invoice 42: smtp down"))

	resp := a.do(t, http.MethodPost, "/api/admin/reminders/run", token, nil)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var got api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Contains(t, got.Description, "smtp down")
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	resp := a.do(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
