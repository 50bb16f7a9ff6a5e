// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"

	"studioportal/internal/cache"
	"studioportal/internal/dashboard"
	"studioportal/internal/middleware"
	"studioportal/internal/models"
	"studioportal/internal/store"
)

// Portal groups the authenticated client handlers. Every handler is scoped
// to the profile carried by the verified token; clients can never reach
// another client's rows.
type Portal struct {
	dashboard    *dashboard.Service
	projects     *store.ProjectStore
	invoices     *store.InvoiceStore
	orders       *store.OrderStore
	messages     *store.MessageStore
	profiles     *store.ProfileStore
	profileCache *cache.ProfileCache // nil disables caching
}

// NewPortal creates the portal handler group. profileCache may be nil.
func NewPortal(dash *dashboard.Service, projects *store.ProjectStore, invoices *store.InvoiceStore, orders *store.OrderStore, messages *store.MessageStore, profiles *store.ProfileStore, pc *cache.ProfileCache) *Portal {
	return &Portal{
		dashboard:    dash,
		projects:     projects,
		invoices:     invoices,
		orders:       orders,
		messages:     messages,
		profiles:     profiles,
		profileCache: pc,
	}
}

// Me returns the authenticated client's profile.
func (p *Portal) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())

	if p.profileCache != nil {
		if cached := p.profileCache.Get(r.Context(), claims.ProfileID); cached != nil {
			writeJSON(w, http.StatusOK, cached)
			return
		}
	}

	profile, err := p.profiles.FindByID(claims.ProfileID)
	if err != nil {
		serviceError(w, "find profile failed", err)
		return
	}
	if profile == nil {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}

	if p.profileCache != nil {
		p.profileCache.Set(r.Context(), profile)
	}
	writeJSON(w, http.StatusOK, profile)
}

// Dashboard returns the client's dashboard stats.
func (p *Portal) Dashboard(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())

	stats, err := p.dashboard.Stats(r.Context(), claims.ProfileID)
	if err != nil {
		serviceError(w, "dashboard stats failed", err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Projects lists the client's projects.
func (p *Portal) Projects(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())

	items, err := p.projects.ListByClient(claims.ProfileID)
	if err != nil {
		serviceError(w, "list client projects failed", err)
		return
	}
	if items == nil {
		items = []models.Project{}
	}
	writeJSON(w, http.StatusOK, items)
}

// Invoices lists the client's invoices.
func (p *Portal) Invoices(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())

	items, err := p.invoices.ListByClient(claims.ProfileID)
	if err != nil {
		serviceError(w, "list client invoices failed", err)
		return
	}
	if items == nil {
		items = []models.Invoice{}
	}
	writeJSON(w, http.StatusOK, items)
}

// Orders lists the client's template orders, newest first.
func (p *Portal) Orders(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())

	items, err := p.orders.ListByClient(claims.ProfileID)
	if err != nil {
		serviceError(w, "list client orders failed", err)
		return
	}
	if items == nil {
		items = []models.TemplateOrder{}
	}
	writeJSON(w, http.StatusOK, items)
}

// orderRequest is a client's template purchase request.
type orderRequest struct {
	BusinessName string  `json:"business_name"`
	Price        float64 `json:"price"`
}

// OrderCreate records a new template order for the client. The order number
// is generated server-side and the order starts in the pending status.
func (p *Portal) OrderCreate(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())

	var req orderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateOrder(req.BusinessName, req.Price); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	order, err := p.orders.Create(&models.TemplateOrder{
		ClientID:     claims.ProfileID,
		BusinessName: strings.TrimSpace(req.BusinessName),
		Price:        req.Price,
	})
	if err != nil {
		serviceError(w, "create order failed", err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

// Messages returns the client's conversation with the agency and marks all
// unread agency messages read in one batch. The response carries the
// locally patched read flags rather than a refetched thread.
func (p *Portal) Messages(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())

	msgs, err := p.messages.ListByUser(claims.ProfileID)
	if err != nil {
		serviceError(w, "list client messages failed", err)
		return
	}

	if _, err := p.messages.MarkThreadRead(claims.ProfileID, true); err != nil {
		serviceError(w, "mark thread read failed", err)
		return
	}
	for i := range msgs {
		if msgs[i].FromAdmin {
			msgs[i].Read = true
		}
	}
	if msgs == nil {
		msgs = []models.Message{}
	}
	writeJSON(w, http.StatusOK, msgs)
}

// messageRequest is a client's outbound message.
type messageRequest struct {
	Subject *string `json:"subject"`
	Content string  `json:"content"`
}

// MessageSend appends a client message to the conversation and returns the
// refetched thread so the new message lands in order.
func (p *Portal) MessageSend(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())

	var req messageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		writeError(w, http.StatusBadRequest, "Message content is required.")
		return
	}

	_, err := p.messages.Create(&models.Message{
		Content: content,
		Subject: req.Subject,
		UserID:  claims.ProfileID,
	})
	if err != nil {
		serviceError(w, "send message failed", err)
		return
	}

	msgs, err := p.messages.ListByUser(claims.ProfileID)
	if err != nil {
		serviceError(w, "refetch client messages failed", err)
		return
	}
	writeJSON(w, http.StatusCreated, msgs)
}
