package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/clientnudge/invoicing/internal/entity"
	"github.com/clientnudge/invoicing/internal/service"
)

// Portal handlers serve the client-facing payment page. They are mounted
// without BearerAuth: the payer only holds the invoice link.

type DeliverableResponse struct {
	ID        uuid.UUID `json:"id"`
	InvoiceID uuid.UUID `json:"invoiceId"`
	FileName  string    `json:"fileName"`
	FilePath  string    `json:"filePath,omitempty"`
	FileType  string    `json:"fileType,omitempty"`
	FileSize  int64     `json:"fileSize"`
	IsLocked  bool      `json:"isLocked"`
	CreatedAt time.Time `json:"createdAt"`
}

func toDeliverableResponse(d entity.Deliverable) DeliverableResponse {
	resp := DeliverableResponse{
		ID:        d.ID,
		InvoiceID: d.InvoiceID,
		FileName:  d.FileName,
		FileType:  d.FileType,
		FileSize:  d.FileSize,
		IsLocked:  d.IsLocked,
		CreatedAt: d.CreatedAt,
	}

	// The download path stays hidden until payment unlocks the file.
	if !d.IsLocked {
		resp.FilePath = d.FilePath
	}

	return resp
}

type PublicInvoiceResponse struct {
	Invoice      InvoiceResponse       `json:"invoice"`
	Items        []InvoiceItemResponse `json:"items"`
	Deliverables []DeliverableResponse `json:"deliverables"`
	ClientName   string                `json:"clientName"`
	IssuerName   string                `json:"issuerName"`
}

// PublicInvoice returns the payer view of an invoice
// @Summary Portal invoice view
// @Tags portal
// @Produce json
// @Param id path string true "Invoice id"
// @Success 200 {object} PublicInvoiceResponse
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Router /portal/invoices/{id} [get]
func (h *Handler) PublicInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice id")
		return
	}

	view, err := h.s.PublicInvoice(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to get invoice")
		return
	}

	resp := PublicInvoiceResponse{
		Invoice:      toInvoiceResponse(view.Invoice),
		Items:        toItemResponses(view.Items),
		Deliverables: make([]DeliverableResponse, 0, len(view.Deliverables)),
		ClientName:   view.ClientName,
		IssuerName:   view.IssuerName,
	}

	for _, d := range view.Deliverables {
		resp.Deliverables = append(resp.Deliverables, toDeliverableResponse(d))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

// MarkInvoiceViewed records that the payer opened the invoice
// @Summary Mark invoice viewed
// @Tags portal
// @Param id path string true "Invoice id"
// @Success 204
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Router /portal/invoices/{id}/viewed [post]
func (h *Handler) MarkInvoiceViewed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice id")
		return
	}

	err = h.s.MarkInvoiceViewed(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to mark invoice viewed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type CheckoutRequest struct {
	OriginURL string `json:"originUrl"`
}

type CheckoutSessionResponse struct {
	SessionID string          `json:"sessionId"`
	URL       string          `json:"url,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
}

func toCheckoutResponse(cs entity.CheckoutSession) CheckoutSessionResponse {
	return CheckoutSessionResponse{
		SessionID: cs.SessionID,
		URL:       cs.URL,
		Amount:    cs.Amount,
		Currency:  cs.Currency,
	}
}

// CreateCheckoutSession starts a hosted card checkout for an invoice
// @Summary Start card checkout
// @Tags portal
// @Accept json
// @Produce json
// @Param id path string true "Invoice id"
// @Param CheckoutRequest body CheckoutRequest true "Checkout origin"
// @Success 201 {object} CheckoutSessionResponse
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Failure 409 {object} ErrorResponse "Invoice already paid"
// @Router /portal/invoices/{id}/checkout [post]
func (h *Handler) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice id")
		return
	}

	var req CheckoutRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	cs, err := h.s.CreateCheckoutSession(ctx, id, req.OriginURL)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to create checkout session")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, toCheckoutResponse(cs))
}

type CheckoutStatusResponse struct {
	SessionID string `json:"sessionId"`
	Status    string `json:"status"`
}

// CheckoutStatus polls a checkout session and settles the invoice on success
// @Summary Checkout status
// @Tags portal
// @Produce json
// @Param session_id path string true "Checkout session id"
// @Success 200 {object} CheckoutStatusResponse
// @Failure 404 {object} ErrorResponse "Session not found"
// @Router /portal/checkout/{session_id} [get]
func (h *Handler) CheckoutStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID := chi.URLParam(r, "session_id")
	if sessionID == "" {
		SendJSONErr(ctx, w, http.StatusBadRequest, nil, "Missing session id")
		return
	}

	payment, err := h.s.CheckoutStatus(ctx, sessionID)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to get checkout status")
		return
	}

	SendJSON(ctx, w, http.StatusOK, CheckoutStatusResponse{
		SessionID: sessionID,
		Status:    payment.Status.String(),
	})
}

// CreateInvoiceOrder starts a UPI/netbanking order for an invoice
// @Summary Start order checkout
// @Tags portal
// @Produce json
// @Param id path string true "Invoice id"
// @Success 201 {object} CheckoutSessionResponse
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Failure 409 {object} ErrorResponse "Invoice already paid"
// @Router /portal/invoices/{id}/orders [post]
func (h *Handler) CreateInvoiceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice id")
		return
	}

	cs, err := h.s.CreateInvoiceOrder(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to create payment order")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, toCheckoutResponse(cs))
}

type VerifyPaymentRequest struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`
}

// VerifyInvoicePayment verifies an order signature and settles the invoice
// @Summary Verify payment
// @Tags portal
// @Accept json
// @Param VerifyPaymentRequest body VerifyPaymentRequest true "Payment proof"
// @Success 204
// @Failure 400 {object} ErrorResponse "Signature mismatch"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Router /portal/payments/verify [post]
func (h *Handler) VerifyInvoicePayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req VerifyPaymentRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	err = h.s.VerifyInvoicePayment(ctx, req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to verify payment")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RazorpayWebhook settles payments reported server-to-server
// @Summary Razorpay webhook
// @Tags portal
// @Success 204
// @Failure 400 {object} ErrorResponse "Signature mismatch"
// @Router /portal/webhooks/razorpay [post]
func (h *Handler) RazorpayWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Failed to read payload")
		return
	}

	err = h.s.HandleRazorpayWebhook(ctx, payload, r.Header.Get("X-Razorpay-Signature"))
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to process webhook")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type AddDeliverableRequest struct {
	FileName string `json:"fileName"`
	FilePath string `json:"filePath"`
	FileType string `json:"fileType"`
	FileSize int64  `json:"fileSize"`
}

// AddDeliverable attaches a payment-gated file to an invoice
// @Summary Add deliverable
// @Tags deliverables
// @Accept json
// @Produce json
// @Param id path string true "Invoice id"
// @Param AddDeliverableRequest body AddDeliverableRequest true "Deliverable"
// @Success 201 {object} DeliverableResponse
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Router /invoices/{id}/deliverables [post]
// @Security BearerAuth
func (h *Handler) AddDeliverable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice id")
		return
	}

	var req AddDeliverableRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	d, err := h.s.AddDeliverable(ctx, service.AddDeliverableParams{
		InvoiceID: id,
		FileName:  req.FileName,
		FilePath:  req.FilePath,
		FileType:  req.FileType,
		FileSize:  req.FileSize,
	})
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to add deliverable")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, toDeliverableResponse(d))
}

// InvoiceDeliverables lists the files attached to an invoice
// @Summary List deliverables
// @Tags deliverables
// @Produce json
// @Param id path string true "Invoice id"
// @Success 200 {array} DeliverableResponse
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Router /invoices/{id}/deliverables [get]
// @Security BearerAuth
func (h *Handler) InvoiceDeliverables(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice id")
		return
	}

	deliverables, err := h.s.InvoiceDeliverables(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to list deliverables")
		return
	}

	resp := make([]DeliverableResponse, 0, len(deliverables))
	for _, d := range deliverables {
		resp = append(resp, toDeliverableResponse(d))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}
