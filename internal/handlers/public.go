// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"studioportal/internal/catalog"
	"studioportal/internal/models"
	"studioportal/internal/store"
)

// Public groups the unauthenticated handlers: the template catalog, active
// campaigns, and the contact form.
type Public struct {
	catalog   *catalog.Service
	campaigns *store.CampaignStore
	contacts  *store.ContactStore
}

// NewPublic creates the public handler group.
func NewPublic(cat *catalog.Service, campaigns *store.CampaignStore, contacts *store.ContactStore) *Public {
	return &Public{catalog: cat, campaigns: campaigns, contacts: contacts}
}

// catalogResponse carries whatever part of the catalog loaded. Error is set
// when one of the two fetches failed; the other side is still served.
type catalogResponse struct {
	Categories []models.Category `json:"categories"`
	Templates  []models.Template `json:"templates"`
	Error      string            `json:"error,omitempty"`
}

// Catalog serves the template catalog, filtered by the optional `category`
// (slug) and `q` (search) query parameters. Filtering happens in memory on
// the loaded snapshot, so category and search compose freely.
func (p *Public) Catalog(w http.ResponseWriter, r *http.Request) {
	snap, err := p.catalog.Load(r.Context())

	resp := catalogResponse{
		Categories: snap.Categories,
		Templates: catalog.Filter(snap.Templates,
			r.URL.Query().Get("category"),
			r.URL.Query().Get("q")),
	}
	if err != nil {
		resp.Error = "part of the catalog is temporarily unavailable"
	}
	if resp.Categories == nil {
		resp.Categories = []models.Category{}
	}
	if resp.Templates == nil {
		resp.Templates = []models.Template{}
	}
	writeJSON(w, http.StatusOK, resp)
}

// TemplateDetail serves one active template by slug for the template
// detail page.
func (p *Public) TemplateDetail(w http.ResponseWriter, r *http.Request) {
	tmpl, err := p.catalog.TemplateBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		serviceError(w, "load template failed", err)
		return
	}
	if tmpl == nil {
		writeError(w, http.StatusNotFound, "template not found")
		return
	}
	writeJSON(w, http.StatusOK, tmpl)
}

// categoryResponse is a category landing page: the category itself plus its
// active templates.
type categoryResponse struct {
	Category  *models.Category  `json:"category"`
	Templates []models.Template `json:"templates"`
	Error     string            `json:"error,omitempty"`
}

// CategoryDetail serves one active category and its templates by slug.
func (p *Public) CategoryDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	cat, err := p.catalog.CategoryBySlug(slug)
	if err != nil {
		serviceError(w, "load category failed", err)
		return
	}
	if cat == nil {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}

	snap, err := p.catalog.Load(r.Context())
	resp := categoryResponse{
		Category:  cat,
		Templates: catalog.Filter(snap.Templates, slug, ""),
	}
	if err != nil {
		resp.Error = "part of the catalog is temporarily unavailable"
	}
	if resp.Templates == nil {
		resp.Templates = []models.Template{}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Campaigns serves the currently active campaigns inside their date window,
// for the marketing site's banner/hero/popup/pricing placements.
func (p *Public) Campaigns(w http.ResponseWriter, r *http.Request) {
	items, err := p.campaigns.ListActivePlacements()
	if err != nil {
		serviceError(w, "list active campaigns failed", err)
		return
	}
	if items == nil {
		items = []models.Campaign{}
	}
	writeJSON(w, http.StatusOK, items)
}

// contactRequest is the public contact form payload.
type contactRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Company *string `json:"company"`
	Subject *string `json:"subject"`
	Message string  `json:"message"`
}

// Contact accepts a contact form submission. New submissions always start
// in the "new" status for the admin console's triage view.
func (p *Public) Contact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateContactForm(req.Name, req.Email, req.Message); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	sub, err := p.contacts.Create(&models.ContactSubmission{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Company: req.Company,
		Subject: req.Subject,
		Message: strings.TrimSpace(req.Message),
	})
	if err != nil {
		serviceError(w, "create contact submission failed", err)
		return
	}

	slog.Info("contact submission received", "id", sub.ID, "email", sub.Email)
	writeJSON(w, http.StatusCreated, sub)
}
