// Package router sets up the HTTP route tree and middleware chains for the
// portal service. Routes are organized into public, client portal, and
// admin console groups with their own middleware stacks.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"studioportal/internal/auth"
	"studioportal/internal/handlers"
	"studioportal/internal/metrics"
	"studioportal/internal/middleware"
)

// New creates the configured chi router with all middleware and route
// groups wired up.
func New(verifier *auth.Verifier, limiter *middleware.RateLimiter, m *metrics.Metrics, public *handlers.Public, portal *handlers.Portal, admin *handlers.Admin) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request. Authenticate runs before
	// Logger so request logs carry the profile id when a token is present.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.Logger)
	r.Use(middleware.Metrics(m))
	r.Use(limiter.Middleware)

	// Operational endpoints, no auth.
	r.Get("/health", healthHandler)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Public marketing site API.
	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog", public.Catalog)
		r.Get("/catalog/templates/{slug}", public.TemplateDetail)
		r.Get("/catalog/categories/{slug}", public.CategoryDetail)
		r.Get("/campaigns", public.Campaigns)
		r.Post("/contact", public.Contact)

		// Client portal, scoped to the authenticated profile.
		r.Route("/portal", func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Get("/me", portal.Me)
			r.Get("/dashboard", portal.Dashboard)
			r.Get("/projects", portal.Projects)
			r.Get("/invoices", portal.Invoices)
			r.Get("/orders", portal.Orders)
			r.Post("/orders", portal.OrderCreate)
			r.Get("/messages", portal.Messages)
			r.Post("/messages", portal.MessageSend)
		})

		// Admin console, agency staff only.
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.RequireAdmin)

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", admin.Orders)
				r.Get("/{id}", admin.OrderShow)
				r.Put("/{id}/status", admin.OrderStatus)
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", admin.Projects)
				r.Post("/", admin.ProjectCreate)
				r.Put("/{id}/status", admin.ProjectStatus)
				r.Delete("/{id}", admin.ProjectDelete)
			})

			r.Route("/invoices", func(r chi.Router) {
				r.Get("/", admin.Invoices)
				r.Post("/", admin.InvoiceCreate)
				r.Get("/summary", admin.InvoiceSummary)
				r.Get("/{id}", admin.InvoiceShow)
				r.Put("/{id}/status", admin.InvoiceStatus)
			})

			r.Route("/contacts", func(r chi.Router) {
				r.Get("/", admin.Contacts)
				r.Get("/{id}", admin.ContactShow)
				r.Put("/{id}/status", admin.ContactStatus)
				r.Put("/{id}/notes", admin.ContactNotes)
			})

			r.Route("/threads", func(r chi.Router) {
				r.Get("/", admin.Threads)
				r.Get("/{userID}", admin.ThreadOpen)
				r.Post("/{userID}/reply", admin.ThreadReply)
			})

			r.Route("/campaigns", func(r chi.Router) {
				r.Get("/", admin.Campaigns)
				r.Post("/", admin.CampaignCreate)
				r.Get("/{id}", admin.CampaignShow)
				r.Put("/{id}", admin.CampaignSave)
				r.Put("/{id}/active", admin.CampaignToggle)
			})

			r.Put("/templates/{id}/active", admin.TemplateToggle)
			r.Get("/categories", admin.Categories)
			r.Put("/categories/{id}/active", admin.CategoryToggle)

			r.Route("/payments", func(r chi.Router) {
				r.Get("/", admin.PaymentSettings)
				r.Put("/{key}", admin.PaymentSettingsSave)
			})

			r.Get("/clients", admin.Clients)
			r.Post("/clients", admin.ClientCreate)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
