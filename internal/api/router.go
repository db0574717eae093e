package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/clientnudge/invoicing/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Route("/portal", func(r chi.Router) {
			r.Get("/invoices/{id}", h.PublicInvoice)
			r.Post("/invoices/{id}/viewed", h.MarkInvoiceViewed)
			r.Post("/invoices/{id}/checkout", h.CreateCheckoutSession)
			r.Post("/invoices/{id}/orders", h.CreateInvoiceOrder)
			r.Get("/checkout/{session_id}", h.CheckoutStatus)
			r.Post("/payments/verify", h.VerifyInvoicePayment)
			r.Post("/webhooks/razorpay", h.RazorpayWebhook)
		})

		r.Route("/invoices", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Post("/", h.CreateInvoice)
			r.Get("/", h.Invoices)
			r.Get("/{id}", h.Invoice)
			r.Post("/{id}/send", h.SendInvoice)
			r.Get("/{id}/reminders", h.InvoiceReminders)
			r.Post("/{id}/reminders", h.GenerateReminder)
			r.Get("/{id}/deliverables", h.InvoiceDeliverables)
			r.Post("/{id}/deliverables", h.AddDeliverable)
		})

		r.Route("/reminders", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Post("/{id}/send", h.SendReminder)
		})

		r.Route("/clients", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Post("/", h.CreateClient)
			r.Get("/", h.Clients)
			r.Get("/{id}", h.Client)
			r.Put("/{id}", h.UpdateClient)
			r.Delete("/{id}", h.DeleteClient)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Post("/", h.CreateProject)
			r.Get("/", h.Projects)
			r.Patch("/{id}/completion", h.UpdateProjectCompletion)
		})

		r.Route("/subscription", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Get("/", h.Subscription)
			r.Post("/orders", h.CreateUpgradeOrder)
			r.Post("/verify", h.ActivateSubscription)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Get("/dashboard", h.DashboardStats)
			r.Get("/revenue-trend", h.RevenueTrend)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Post("/reminders/run", h.TriggerReminderSweep)
			r.Post("/subscriptions/run", h.TriggerSubscriptionSweep)
		})
	})

	return mux
}
