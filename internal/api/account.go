package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/clientnudge/invoicing/internal/entity"
)

type UpgradeOrderRequest struct {
	Plan string `json:"plan"`
}

// CreateUpgradeOrder starts a paid-plan upgrade order
// @Summary Start plan upgrade
// @Tags subscription
// @Accept json
// @Produce json
// @Param UpgradeOrderRequest body UpgradeOrderRequest true "Target plan"
// @Success 201 {object} CheckoutSessionResponse
// @Failure 422 {object} ErrorResponse "Unknown plan"
// @Router /subscription/orders [post]
// @Security BearerAuth
func (h *Handler) CreateUpgradeOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UpgradeOrderRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	cs, err := h.s.CreateUpgradeOrder(ctx, entity.Plan(req.Plan))
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to create upgrade order")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, toCheckoutResponse(cs))
}

type ActivateSubscriptionRequest struct {
	Plan      string `json:"plan"`
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`
}

type SubscriptionResponse struct {
	ID        uuid.UUID  `json:"id"`
	Plan      string     `json:"plan"`
	Status    string     `json:"status"`
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

func toSubscriptionResponse(sub entity.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:        sub.ID,
		Plan:      sub.Plan.String(),
		Status:    string(sub.Status),
		StartDate: sub.StartDate,
		EndDate:   sub.EndDate,
	}
}

// ActivateSubscription verifies the upgrade payment and switches the plan
// @Summary Activate subscription
// @Tags subscription
// @Accept json
// @Produce json
// @Param ActivateSubscriptionRequest body ActivateSubscriptionRequest true "Payment proof"
// @Success 200 {object} SubscriptionResponse
// @Failure 400 {object} ErrorResponse "Signature mismatch"
// @Router /subscription/verify [post]
// @Security BearerAuth
func (h *Handler) ActivateSubscription(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ActivateSubscriptionRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	sub, err := h.s.ActivateSubscription(ctx, entity.Plan(req.Plan), req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to activate subscription")
		return
	}

	SendJSON(ctx, w, http.StatusOK, toSubscriptionResponse(sub))
}

type AccountResponse struct {
	Plan               string                `json:"plan"`
	SubscriptionStatus string                `json:"subscriptionStatus"`
	InvoiceCount       int64                 `json:"invoiceCount"`
	InvoiceLimit       int64                 `json:"invoiceLimit"`
	Subscription       *SubscriptionResponse `json:"subscription,omitempty"`
}

// Subscription returns the caller's plan and current subscription
// @Summary Get subscription
// @Tags subscription
// @Produce json
// @Success 200 {object} AccountResponse
// @Router /subscription [get]
// @Security BearerAuth
func (h *Handler) Subscription(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, sub, err := h.s.Subscription(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to get subscription")
		return
	}

	resp := AccountResponse{
		Plan:               user.Plan.String(),
		SubscriptionStatus: string(user.SubscriptionStatus),
		InvoiceCount:       user.InvoiceCount,
		InvoiceLimit:       user.Plan.InvoiceLimit(),
	}

	if sub != nil {
		subResp := toSubscriptionResponse(*sub)
		resp.Subscription = &subResp
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

type DashboardResponse struct {
	TotalOutstanding   decimal.Decimal `json:"totalOutstanding"`
	PaidThisMonth      decimal.Decimal `json:"paidThisMonth"`
	OverdueAmount      decimal.Decimal `json:"overdueAmount"`
	AveragePaymentDays decimal.Decimal `json:"averagePaymentDays"`
	LateFeeCollected   decimal.Decimal `json:"lateFeeCollected"`
	TotalInvoices      int             `json:"totalInvoices"`
	PaidInvoices       int             `json:"paidInvoices"`
	PendingInvoices    int             `json:"pendingInvoices"`
	OverdueInvoices    int             `json:"overdueInvoices"`
}

// DashboardStats aggregates invoice health for the dashboard
// @Summary Dashboard stats
// @Tags analytics
// @Produce json
// @Success 200 {object} DashboardResponse
// @Router /analytics/dashboard [get]
// @Security BearerAuth
func (h *Handler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.s.DashboardStats(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to compute dashboard stats")
		return
	}

	SendJSON(ctx, w, http.StatusOK, DashboardResponse(stats))
}

type MonthRevenueResponse struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}

// RevenueTrend returns monthly paid revenue for the last six months
// @Summary Revenue trend
// @Tags analytics
// @Produce json
// @Success 200 {array} MonthRevenueResponse
// @Router /analytics/revenue-trend [get]
// @Security BearerAuth
func (h *Handler) RevenueTrend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	trend, err := h.s.RevenueTrend(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to compute revenue trend")
		return
	}

	resp := make([]MonthRevenueResponse, 0, len(trend))
	for _, m := range trend {
		resp = append(resp, MonthRevenueResponse(m))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

// TriggerReminderSweep runs the dunning sweep on demand
// @Summary Run reminder sweep
// @Tags admin
// @Success 204
// @Failure 500 {object} ErrorResponse "Sweep finished with errors"
// @Router /admin/reminders/run [post]
// @Security BearerAuth
func (h *Handler) TriggerReminderSweep(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.s.RunReminderSweep(ctx)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Reminder sweep finished with errors")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// TriggerSubscriptionSweep runs the subscription expiry sweep on demand
// @Summary Run subscription sweep
// @Tags admin
// @Success 204
// @Failure 500 {object} ErrorResponse "Sweep finished with errors"
// @Router /admin/subscriptions/run [post]
// @Security BearerAuth
func (h *Handler) TriggerSubscriptionSweep(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.s.RunSubscriptionSweep(ctx)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Subscription sweep finished with errors")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
