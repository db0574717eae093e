package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/clientnudge/invoicing/internal/entity"
	"github.com/clientnudge/invoicing/internal/service"
)

// @title ClientNudge Invoicing API
// @version 1.0
// @description Freelancer invoicing with automated payment reminders
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

//go:generate mockgen -source=handler.go -destination=../mocks/handler.go -package=mocks

type Service interface {
	CreateInvoice(ctx context.Context, p service.CreateInvoiceParams) (entity.Invoice, error)
	Invoices(ctx context.Context, f entity.InvoiceFilter) ([]entity.Invoice, error)
	Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, []entity.InvoiceItem, error)
	SendInvoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error)
	PublicInvoice(ctx context.Context, id uuid.UUID) (service.PublicInvoiceView, error)
	MarkInvoiceViewed(ctx context.Context, id uuid.UUID) error

	CreateClient(ctx context.Context, p service.ClientParams) (entity.Client, error)
	Clients(ctx context.Context) ([]entity.Client, error)
	Client(ctx context.Context, id uuid.UUID) (entity.Client, error)
	UpdateClient(ctx context.Context, id uuid.UUID, p service.ClientParams) (entity.Client, error)
	DeleteClient(ctx context.Context, id uuid.UUID) error

	CreateProject(ctx context.Context, p service.ProjectParams) (entity.Project, error)
	Projects(ctx context.Context) ([]entity.Project, error)
	UpdateProjectCompletion(ctx context.Context, id uuid.UUID, pct decimal.Decimal) (entity.Project, error)

	GenerateReminder(ctx context.Context, invoiceID uuid.UUID, tier entity.ReminderType) (entity.Reminder, error)
	SendReminder(ctx context.Context, reminderID uuid.UUID) (entity.Reminder, error)
	InvoiceReminders(ctx context.Context, invoiceID uuid.UUID) ([]entity.Reminder, error)

	CreateCheckoutSession(ctx context.Context, invoiceID uuid.UUID, originURL string) (entity.CheckoutSession, error)
	CheckoutStatus(ctx context.Context, sessionID string) (entity.Payment, error)
	CreateInvoiceOrder(ctx context.Context, invoiceID uuid.UUID) (entity.CheckoutSession, error)
	VerifyInvoicePayment(ctx context.Context, orderID, paymentID, signature string) error
	HandleRazorpayWebhook(ctx context.Context, payload []byte, signature string) error

	AddDeliverable(ctx context.Context, p service.AddDeliverableParams) (entity.Deliverable, error)
	InvoiceDeliverables(ctx context.Context, invoiceID uuid.UUID) ([]entity.Deliverable, error)

	CreateUpgradeOrder(ctx context.Context, plan entity.Plan) (entity.CheckoutSession, error)
	ActivateSubscription(ctx context.Context, plan entity.Plan, orderID, paymentID, signature string) (entity.Subscription, error)
	Subscription(ctx context.Context) (entity.User, *entity.Subscription, error)

	DashboardStats(ctx context.Context) (entity.DashboardStats, error)
	RevenueTrend(ctx context.Context) ([]entity.MonthRevenue, error)

	RunReminderSweep(ctx context.Context) error
	RunSubscriptionSweep(ctx context.Context) error
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{s: s}
}

func sendServiceErr(ctx context.Context, w http.ResponseWriter, err error, msgToSend string) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, msgToSend)
	case errors.Is(err, entity.ErrInvalidArgument):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, msgToSend)
	case errors.Is(err, entity.ErrAlreadyPaid):
		SendJSONErr(ctx, w, http.StatusConflict, err, msgToSend)
	case errors.Is(err, entity.ErrQuotaExceeded):
		SendJSONErr(ctx, w, http.StatusForbidden, err, msgToSend)
	case errors.Is(err, entity.ErrUnauthenticated):
		SendJSONErr(ctx, w, http.StatusUnauthorized, err, msgToSend)
	case errors.Is(err, entity.ErrForbidden):
		SendJSONErr(ctx, w, http.StatusForbidden, err, msgToSend)
	case errors.Is(err, entity.ErrInvalidSignature):
		SendJSONErr(ctx, w, http.StatusBadRequest, err, msgToSend)
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, msgToSend)
	}
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.FromString(chi.URLParam(r, name))
}

// HealthHandler reports readiness
// @Summary Health check
// @Tags system
// @Success 200 {string} string "OK"
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

type InvoiceItemRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
}

type CreateInvoiceRequest struct {
	ClientID          uuid.UUID            `json:"clientId"`
	ProjectID         *uuid.UUID           `json:"projectId,omitempty"`
	Items             []InvoiceItemRequest `json:"items"`
	TaxPercentage     decimal.Decimal      `json:"taxPercentage"`
	DiscountType      string               `json:"discountType"`
	DiscountValue     decimal.Decimal      `json:"discountValue"`
	LateFeeEnabled    bool                 `json:"lateFeeEnabled"`
	LateFeePercentage decimal.Decimal      `json:"lateFeePercentage"`
	LateFeeDays       int32                `json:"lateFeeDays"`
	Currency          string               `json:"currency"`
	ExchangeRate      decimal.Decimal      `json:"exchangeRate"`
	DueDate           time.Time            `json:"dueDate"`
	AutoReminders     bool                 `json:"autoReminders"`
}

type InvoiceResponse struct {
	ID             uuid.UUID       `json:"id"`
	ClientID       uuid.UUID       `json:"clientId"`
	ProjectID      *uuid.UUID      `json:"projectId,omitempty"`
	Number         string          `json:"number"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	LateFeeAmount  decimal.Decimal `json:"lateFeeAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	Currency       string          `json:"currency"`
	DueDate        time.Time       `json:"dueDate"`
	Status         string          `json:"status"`
	AutoReminders  bool            `json:"autoReminders"`
	CreatedAt      time.Time       `json:"createdAt"`
	SentAt         *time.Time      `json:"sentAt,omitempty"`
	PaidAt         *time.Time      `json:"paidAt,omitempty"`
}

func toInvoiceResponse(inv entity.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:             inv.ID,
		ClientID:       inv.ClientID,
		Number:         inv.Number,
		Subtotal:       inv.Subtotal,
		TaxAmount:      inv.TaxAmount,
		DiscountAmount: inv.DiscountAmount,
		LateFeeAmount:  inv.LateFeeAmount,
		TotalAmount:    inv.TotalAmount,
		Currency:       inv.Currency,
		DueDate:        inv.DueDate,
		Status:         inv.Status.String(),
		AutoReminders:  inv.AutoReminders,
		CreatedAt:      inv.CreatedAt,
		SentAt:         inv.SentAt,
		PaidAt:         inv.PaidAt,
	}

	if inv.ProjectID.Valid {
		projectID := inv.ProjectID.UUID
		resp.ProjectID = &projectID
	}

	return resp
}

// CreateInvoice creates a draft invoice
// @Summary Create invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param CreateInvoiceRequest body CreateInvoiceRequest true "Invoice"
// @Success 201 {object} InvoiceResponse
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 403 {object} ErrorResponse "Plan invoice limit reached"
// @Failure 404 {object} ErrorResponse "Client not found"
// @Failure 422 {object} ErrorResponse "Invalid invoice data"
// @Router /invoices [post]
// @Security BearerAuth
func (h *Handler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateInvoiceRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	params := service.CreateInvoiceParams{
		ClientID:          req.ClientID,
		Items:             make([]service.InvoiceItemParams, 0, len(req.Items)),
		TaxPercentage:     req.TaxPercentage,
		DiscountType:      entity.DiscountType(req.DiscountType),
		DiscountValue:     req.DiscountValue,
		LateFeeEnabled:    req.LateFeeEnabled,
		LateFeePercentage: req.LateFeePercentage,
		LateFeeDays:       req.LateFeeDays,
		Currency:          req.Currency,
		ExchangeRate:      req.ExchangeRate,
		DueDate:           req.DueDate,
		AutoReminders:     req.AutoReminders,
	}

	if req.DiscountType == "" {
		params.DiscountType = entity.DiscountTypeNone
	}

	if req.ProjectID != nil {
		params.ProjectID = uuid.NullUUID{UUID: *req.ProjectID, Valid: true}
	}

	for _, item := range req.Items {
		params.Items = append(params.Items, service.InvoiceItemParams{
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
		})
	}

	inv, err := h.s.CreateInvoice(ctx, params)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to create invoice")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, toInvoiceResponse(inv))
}

// Invoices lists the caller's invoices
// @Summary List invoices
// @Tags invoices
// @Produce json
// @Param status query string false "Filter by status"
// @Param client_id query string false "Filter by client"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {array} InvoiceResponse
// @Router /invoices [get]
// @Security BearerAuth
func (h *Handler) Invoices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var filter entity.InvoiceFilter

	if s := r.URL.Query().Get("status"); s != "" {
		status := entity.InvoiceStatus(s)
		filter.Status = &status
	}

	if c := r.URL.Query().Get("client_id"); c != "" {
		clientID, err := uuid.FromString(c)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid client id")
			return
		}

		filter.ClientID = &clientID
	}

	if p := r.URL.Query().Get("page"); p != "" {
		filter.Page, _ = strconv.ParseUint(p, 10, 64)
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		filter.Limit, _ = strconv.ParseUint(l, 10, 64)
	}

	invs, err := h.s.Invoices(ctx, filter)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to list invoices")
		return
	}

	resp := make([]InvoiceResponse, 0, len(invs))
	for _, inv := range invs {
		resp = append(resp, toInvoiceResponse(inv))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

type InvoiceItemResponse struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

type InvoiceDetailResponse struct {
	InvoiceResponse
	Items []InvoiceItemResponse `json:"items"`
}

func toItemResponses(items []entity.InvoiceItem) []InvoiceItemResponse {
	resp := make([]InvoiceItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, InvoiceItemResponse{
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Amount:      item.Amount,
		})
	}

	return resp
}

// Invoice returns one invoice with its line items
// @Summary Get invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice id"
// @Success 200 {object} InvoiceDetailResponse
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Router /invoices/{id} [get]
// @Security BearerAuth
func (h *Handler) Invoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice id")
		return
	}

	inv, items, err := h.s.Invoice(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to get invoice")
		return
	}

	SendJSON(ctx, w, http.StatusOK, InvoiceDetailResponse{
		InvoiceResponse: toInvoiceResponse(inv),
		Items:           toItemResponses(items),
	})
}

// SendInvoice emails the invoice to the client
// @Summary Send invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice id"
// @Success 200 {object} InvoiceResponse
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Failure 409 {object} ErrorResponse "Invoice already paid"
// @Router /invoices/{id}/send [post]
// @Security BearerAuth
func (h *Handler) SendInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice id")
		return
	}

	inv, err := h.s.SendInvoice(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to send invoice")
		return
	}

	SendJSON(ctx, w, http.StatusOK, toInvoiceResponse(inv))
}

type GenerateReminderRequest struct {
	Type string `json:"type"`
}

type ReminderResponse struct {
	ID        uuid.UUID  `json:"id"`
	InvoiceID uuid.UUID  `json:"invoiceId"`
	Type      string     `json:"type"`
	Message   string     `json:"message"`
	Channel   string     `json:"channel"`
	SentAt    *time.Time `json:"sentAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func toReminderResponse(rem entity.Reminder) ReminderResponse {
	return ReminderResponse{
		ID:        rem.ID,
		InvoiceID: rem.InvoiceID,
		Type:      rem.Type.String(),
		Message:   rem.Message,
		Channel:   rem.Channel,
		SentAt:    rem.SentAt,
		CreatedAt: rem.CreatedAt,
	}
}

// GenerateReminder composes a reminder draft for review
// @Summary Generate reminder
// @Tags reminders
// @Accept json
// @Produce json
// @Param id path string true "Invoice id"
// @Param GenerateReminderRequest body GenerateReminderRequest true "Reminder tier"
// @Success 201 {object} ReminderResponse
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Failure 422 {object} ErrorResponse "Unknown reminder type"
// @Router /invoices/{id}/reminders [post]
// @Security BearerAuth
func (h *Handler) GenerateReminder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice id")
		return
	}

	var req GenerateReminderRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	rem, err := h.s.GenerateReminder(ctx, id, entity.ReminderType(req.Type))
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to generate reminder")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, toReminderResponse(rem))
}

// InvoiceReminders lists reminders for an invoice
// @Summary List reminders
// @Tags reminders
// @Produce json
// @Param id path string true "Invoice id"
// @Success 200 {array} ReminderResponse
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Router /invoices/{id}/reminders [get]
// @Security BearerAuth
func (h *Handler) InvoiceReminders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice id")
		return
	}

	rems, err := h.s.InvoiceReminders(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to list reminders")
		return
	}

	resp := make([]ReminderResponse, 0, len(rems))
	for _, rem := range rems {
		resp = append(resp, toReminderResponse(rem))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

// SendReminder delivers a generated reminder
// @Summary Send reminder
// @Tags reminders
// @Produce json
// @Param id path string true "Reminder id"
// @Success 200 {object} ReminderResponse
// @Failure 404 {object} ErrorResponse "Reminder not found"
// @Failure 422 {object} ErrorResponse "Reminder already sent"
// @Router /reminders/{id}/send [post]
// @Security BearerAuth
func (h *Handler) SendReminder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid reminder id")
		return
	}

	rem, err := h.s.SendReminder(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to send reminder")
		return
	}

	SendJSON(ctx, w, http.StatusOK, toReminderResponse(rem))
}

type ClientRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

type ClientResponse struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone,omitempty"`
	Company        string          `json:"company,omitempty"`
	PaymentScore   string          `json:"paymentScore"`
	AvgPaymentDays decimal.Decimal `json:"avgPaymentDays"`
	TotalPaid      decimal.Decimal `json:"totalPaid"`
	TotalPending   decimal.Decimal `json:"totalPending"`
	CreatedAt      time.Time       `json:"createdAt"`
}

func toClientResponse(c entity.Client) ClientResponse {
	return ClientResponse{
		ID:             c.ID,
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		Company:        c.Company,
		PaymentScore:   c.PaymentScore.String(),
		AvgPaymentDays: c.AvgPaymentDays,
		TotalPaid:      c.TotalPaid,
		TotalPending:   c.TotalPending,
		CreatedAt:      c.CreatedAt,
	}
}

// CreateClient registers a payer
// @Summary Create client
// @Tags clients
// @Accept json
// @Produce json
// @Param ClientRequest body ClientRequest true "Client"
// @Success 201 {object} ClientResponse
// @Failure 422 {object} ErrorResponse "Name and email are required"
// @Router /clients [post]
// @Security BearerAuth
func (h *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ClientRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	c, err := h.s.CreateClient(ctx, service.ClientParams(req))
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to create client")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, toClientResponse(c))
}

// Clients lists the caller's clients
// @Summary List clients
// @Tags clients
// @Produce json
// @Success 200 {array} ClientResponse
// @Router /clients [get]
// @Security BearerAuth
func (h *Handler) Clients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clients, err := h.s.Clients(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to list clients")
		return
	}

	resp := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		resp = append(resp, toClientResponse(c))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

// Client returns one client
// @Summary Get client
// @Tags clients
// @Produce json
// @Param id path string true "Client id"
// @Success 200 {object} ClientResponse
// @Failure 404 {object} ErrorResponse "Client not found"
// @Router /clients/{id} [get]
// @Security BearerAuth
func (h *Handler) Client(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid client id")
		return
	}

	c, err := h.s.Client(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to get client")
		return
	}

	SendJSON(ctx, w, http.StatusOK, toClientResponse(c))
}

// UpdateClient updates client contact fields
// @Summary Update client
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client id"
// @Param ClientRequest body ClientRequest true "Client"
// @Success 200 {object} ClientResponse
// @Failure 404 {object} ErrorResponse "Client not found"
// @Router /clients/{id} [put]
// @Security BearerAuth
func (h *Handler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid client id")
		return
	}

	var req ClientRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	c, err := h.s.UpdateClient(ctx, id, service.ClientParams(req))
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to update client")
		return
	}

	SendJSON(ctx, w, http.StatusOK, toClientResponse(c))
}

// DeleteClient removes a client
// @Summary Delete client
// @Tags clients
// @Param id path string true "Client id"
// @Success 204
// @Failure 404 {object} ErrorResponse "Client not found"
// @Router /clients/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid client id")
		return
	}

	err = h.s.DeleteClient(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to delete client")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type ProjectRequest struct {
	ClientID   uuid.UUID       `json:"clientId"`
	Name       string          `json:"name"`
	TotalValue decimal.Decimal `json:"totalValue"`
	Currency   string          `json:"currency"`
	Deadline   *time.Time      `json:"deadline,omitempty"`
}

type ProjectResponse struct {
	ID                   uuid.UUID       `json:"id"`
	ClientID             uuid.UUID       `json:"clientId"`
	Name                 string          `json:"name"`
	TotalValue           decimal.Decimal `json:"totalValue"`
	Currency             string          `json:"currency"`
	CompletionPercentage decimal.Decimal `json:"completionPercentage"`
	EarnedAmount         decimal.Decimal `json:"earnedAmount"`
	RemainingBalance     decimal.Decimal `json:"remainingBalance"`
	Deadline             *time.Time      `json:"deadline,omitempty"`
	CreatedAt            time.Time       `json:"createdAt"`
}

func toProjectResponse(p entity.Project) ProjectResponse {
	return ProjectResponse{
		ID:                   p.ID,
		ClientID:             p.ClientID,
		Name:                 p.Name,
		TotalValue:           p.TotalValue,
		Currency:             p.Currency,
		CompletionPercentage: p.CompletionPercentage,
		EarnedAmount:         p.EarnedAmount,
		RemainingBalance:     p.RemainingBalance,
		Deadline:             p.Deadline,
		CreatedAt:            p.CreatedAt,
	}
}

// CreateProject registers a project for a client
// @Summary Create project
// @Tags projects
// @Accept json
// @Produce json
// @Param ProjectRequest body ProjectRequest true "Project"
// @Success 201 {object} ProjectResponse
// @Failure 404 {object} ErrorResponse "Client not found"
// @Router /projects [post]
// @Security BearerAuth
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ProjectRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	p, err := h.s.CreateProject(ctx, service.ProjectParams(req))
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to create project")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, toProjectResponse(p))
}

// Projects lists the caller's projects
// @Summary List projects
// @Tags projects
// @Produce json
// @Success 200 {array} ProjectResponse
// @Router /projects [get]
// @Security BearerAuth
func (h *Handler) Projects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	projects, err := h.s.Projects(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to list projects")
		return
	}

	resp := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		resp = append(resp, toProjectResponse(p))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

type UpdateCompletionRequest struct {
	CompletionPercentage decimal.Decimal `json:"completionPercentage"`
}

// UpdateProjectCompletion moves the completion slider
// @Summary Update project completion
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project id"
// @Param UpdateCompletionRequest body UpdateCompletionRequest true "Completion"
// @Success 200 {object} ProjectResponse
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 422 {object} ErrorResponse "Percentage out of range"
// @Router /projects/{id}/completion [patch]
// @Security BearerAuth
func (h *Handler) UpdateProjectCompletion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid project id")
		return
	}

	var req UpdateCompletionRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	p, err := h.s.UpdateProjectCompletion(ctx, id, req.CompletionPercentage)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to update project")
		return
	}

	SendJSON(ctx, w, http.StatusOK, toProjectResponse(p))
}
