// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"studioportal/internal/catalog"
	"studioportal/internal/console"
	"studioportal/internal/lifecycle"
	"studioportal/internal/models"
	"studioportal/internal/payments"
	"studioportal/internal/store"
)

// Admin groups the agency console handlers: order/project/invoice
// lifecycle, contact triage, message threads, campaigns, payment settings,
// and the client roster.
type Admin struct {
	lifecycle  *lifecycle.Manager
	console    *console.Console
	payments   *payments.Service
	catalog    *catalog.Service
	orders     *store.OrderStore
	projects   *store.ProjectStore
	invoices   *store.InvoiceStore
	profiles   *store.ProfileStore
	templates  *store.TemplateStore
	categories *store.CategoryStore
}

// NewAdmin creates the admin handler group with the given dependencies.
func NewAdmin(lm *lifecycle.Manager, con *console.Console, pay *payments.Service, cat *catalog.Service, orders *store.OrderStore, projects *store.ProjectStore, invoices *store.InvoiceStore, profiles *store.ProfileStore, templates *store.TemplateStore, categories *store.CategoryStore) *Admin {
	return &Admin{
		lifecycle:  lm,
		console:    con,
		payments:   pay,
		catalog:    cat,
		orders:     orders,
		projects:   projects,
		invoices:   invoices,
		profiles:   profiles,
		templates:  templates,
		categories: categories,
	}
}

// pathID parses the {id} URL parameter as a UUID.
func pathID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	return id, err == nil
}

// statusRequest carries a bare status change for any lifecycle entity.
type statusRequest struct {
	Status string `json:"status"`
}

// --- Template orders ---

// Orders lists every template order with joined client name and email.
func (a *Admin) Orders(w http.ResponseWriter, r *http.Request) {
	items, err := a.orders.List()
	if err != nil {
		serviceError(w, "list orders failed", err)
		return
	}
	if items == nil {
		items = []models.TemplateOrder{}
	}
	writeJSON(w, http.StatusOK, items)
}

// OrderStatus sets an order's status and returns the patched order.
func (a *Admin) OrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := a.lifecycle.SetOrderStatus(id, models.WorkStatus(req.Status))
	if err != nil {
		serviceError(w, "set order status failed", err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// OrderShow returns one order for the console's detail pane.
func (a *Admin) OrderShow(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	order, err := a.orders.FindByID(id)
	if err != nil {
		serviceError(w, "find order failed", err)
		return
	}
	if order == nil {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// --- Projects ---

// Projects lists every project with joined client name and email.
func (a *Admin) Projects(w http.ResponseWriter, r *http.Request) {
	items, err := a.projects.List()
	if err != nil {
		serviceError(w, "list projects failed", err)
		return
	}
	if items == nil {
		items = []models.Project{}
	}
	writeJSON(w, http.StatusOK, items)
}

// projectRequest is the admin's new-project form.
type projectRequest struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Tier        models.Tier `json:"tier"`
	ClientID    uuid.UUID   `json:"client_id"`
	URL         *string     `json:"url"`
	StartDate   *string     `json:"start_date"`
	Notes       *string     `json:"notes"`
}

// ProjectCreate inserts a new project and returns the refetched full list.
func (a *Admin) ProjectCreate(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	list, err := a.lifecycle.CreateProject(lifecycle.ProjectDraft{
		Name:        req.Name,
		Description: req.Description,
		Tier:        req.Tier,
		ClientID:    req.ClientID,
		URL:         req.URL,
		StartDate:   req.StartDate,
		Notes:       req.Notes,
	})
	if err != nil {
		serviceError(w, "create project failed", err)
		return
	}
	writeJSON(w, http.StatusCreated, list)
}

// ProjectStatus sets a project's status and returns the patched project.
func (a *Admin) ProjectStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	project, err := a.lifecycle.SetProjectStatus(id, models.WorkStatus(req.Status))
	if err != nil {
		serviceError(w, "set project status failed", err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// ProjectDelete hard-deletes a project. The `confirm` query parameter must
// carry the exact project name; the delete is irreversible.
func (a *Admin) ProjectDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	err := a.lifecycle.DeleteProject(id, r.URL.Query().Get("confirm"))
	if err != nil {
		serviceError(w, "delete project failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Invoices ---

// Invoices lists every invoice with joined client name and email.
func (a *Admin) Invoices(w http.ResponseWriter, r *http.Request) {
	items, err := a.invoices.List()
	if err != nil {
		serviceError(w, "list invoices failed", err)
		return
	}
	if items == nil {
		items = []models.Invoice{}
	}
	writeJSON(w, http.StatusOK, items)
}

// invoiceRequest is the admin's new-invoice form.
type invoiceRequest struct {
	InvoiceNumber string     `json:"invoice_number"`
	Amount        float64    `json:"amount"`
	Currency      string     `json:"currency"`
	Description   string     `json:"description"`
	DueDate       *string    `json:"due_date"`
	ClientID      uuid.UUID  `json:"client_id"`
	ProjectID     *uuid.UUID `json:"project_id"`
}

// InvoiceCreate inserts a new draft invoice and returns the refetched list.
func (a *Admin) InvoiceCreate(w http.ResponseWriter, r *http.Request) {
	var req invoiceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	list, err := a.lifecycle.CreateInvoice(lifecycle.InvoiceDraft{
		InvoiceNumber: req.InvoiceNumber,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Description:   req.Description,
		DueDate:       req.DueDate,
		ClientID:      req.ClientID,
		ProjectID:     req.ProjectID,
	})
	if err != nil {
		serviceError(w, "create invoice failed", err)
		return
	}
	writeJSON(w, http.StatusCreated, list)
}

// InvoiceStatus sets an invoice's status and returns the patched invoice.
// Moving to paid stamps the paid date exactly once.
func (a *Admin) InvoiceStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid invoice id")
		return
	}
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	invoice, err := a.lifecycle.SetInvoiceStatus(id, models.InvoiceStatus(req.Status))
	if err != nil {
		serviceError(w, "set invoice status failed", err)
		return
	}
	writeJSON(w, http.StatusOK, invoice)
}

// InvoiceShow returns one invoice for the console's detail pane.
func (a *Admin) InvoiceShow(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid invoice id")
		return
	}
	invoice, err := a.invoices.FindByID(id)
	if err != nil {
		serviceError(w, "find invoice failed", err)
		return
	}
	if invoice == nil {
		writeError(w, http.StatusNotFound, "invoice not found")
		return
	}
	writeJSON(w, http.StatusOK, invoice)
}

// revenueSummary aggregates invoice amounts for the console header.
type revenueSummary struct {
	TotalRevenue   float64 `json:"total_revenue"`
	PendingRevenue float64 `json:"pending_revenue"`
}

// InvoiceSummary reports collected and outstanding revenue.
func (a *Admin) InvoiceSummary(w http.ResponseWriter, r *http.Request) {
	total, err := a.invoices.TotalRevenue()
	if err != nil {
		serviceError(w, "total revenue failed", err)
		return
	}
	pending, err := a.invoices.PendingRevenue()
	if err != nil {
		serviceError(w, "pending revenue failed", err)
		return
	}
	writeJSON(w, http.StatusOK, revenueSummary{TotalRevenue: total, PendingRevenue: pending})
}

// --- Contact submissions ---

// contactListResponse pairs the submissions with per-status counts for the
// console's filter chips.
type contactListResponse struct {
	Items  []models.ContactSubmission `json:"items"`
	Counts console.StatusCounts       `json:"counts"`
}

// Contacts lists every contact submission with status counts.
func (a *Admin) Contacts(w http.ResponseWriter, r *http.Request) {
	items, counts, err := a.console.ListContacts()
	if err != nil {
		serviceError(w, "list contacts failed", err)
		return
	}
	if items == nil {
		items = []models.ContactSubmission{}
	}
	writeJSON(w, http.StatusOK, contactListResponse{Items: items, Counts: counts})
}

// contactDetail pairs a submission with the client profile registered under
// the same email, when one exists.
type contactDetail struct {
	Contact *models.ContactSubmission `json:"contact"`
	Client  *models.Profile           `json:"client"`
}

// ContactShow returns one submission plus the matching client profile, so
// the console can tell existing clients from new leads.
func (a *Admin) ContactShow(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid contact id")
		return
	}
	sub, err := a.console.FindContact(id)
	if err != nil {
		serviceError(w, "find contact failed", err)
		return
	}

	client, err := a.profiles.FindByEmail(sub.Email)
	if err != nil {
		serviceError(w, "find client by email failed", err)
		return
	}
	writeJSON(w, http.StatusOK, contactDetail{Contact: sub, Client: client})
}

// ContactStatus sets a submission's triage status.
func (a *Admin) ContactStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid contact id")
		return
	}
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sub, err := a.console.SetContactStatus(id, models.ContactStatus(req.Status))
	if err != nil {
		serviceError(w, "set contact status failed", err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

// notesRequest carries the operator notes draft.
type notesRequest struct {
	Notes string `json:"notes"`
}

// ContactNotes saves operator notes on a submission. An empty draft clears
// the notes.
func (a *Admin) ContactNotes(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid contact id")
		return
	}
	var req notesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sub, err := a.console.SaveContactNotes(id, req.Notes)
	if err != nil {
		serviceError(w, "save contact notes failed", err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

// --- Message threads ---

// Threads lists every client conversation, newest activity first.
func (a *Admin) Threads(w http.ResponseWriter, r *http.Request) {
	threads, err := a.console.ListThreads()
	if err != nil {
		serviceError(w, "list threads failed", err)
		return
	}
	if threads == nil {
		threads = []console.Thread{}
	}
	writeJSON(w, http.StatusOK, threads)
}

// ThreadOpen returns one client's thread and marks its unread client
// messages read in a single batch.
func (a *Admin) ThreadOpen(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "userID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	thread, err := a.console.OpenThread(userID)
	if err != nil {
		serviceError(w, "open thread failed", err)
		return
	}
	writeJSON(w, http.StatusOK, thread)
}

// replyRequest is the agency's reply to a client thread.
type replyRequest struct {
	Subject *string `json:"subject"`
	Content string  `json:"content"`
}

// ThreadReply appends an agency reply and returns the regrouped threads.
func (a *Admin) ThreadReply(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "userID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	var req replyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	threads, err := a.console.Reply(userID, req.Subject, req.Content)
	if err != nil {
		serviceError(w, "thread reply failed", err)
		return
	}
	writeJSON(w, http.StatusCreated, threads)
}

// --- Campaigns ---

// Campaigns lists every campaign for the console grid.
func (a *Admin) Campaigns(w http.ResponseWriter, r *http.Request) {
	items, err := a.console.ListCampaigns()
	if err != nil {
		serviceError(w, "list campaigns failed", err)
		return
	}
	if items == nil {
		items = []models.Campaign{}
	}
	writeJSON(w, http.StatusOK, items)
}

// CampaignShow returns one campaign for the console's editor.
func (a *Admin) CampaignShow(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	campaign, err := a.console.FindCampaign(id)
	if err != nil {
		serviceError(w, "find campaign failed", err)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

// CampaignCreate inserts a new campaign from the editor draft.
func (a *Admin) CampaignCreate(w http.ResponseWriter, r *http.Request) {
	var draft console.CampaignDraft
	if err := decodeJSON(r, &draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	campaign, err := a.console.CreateCampaign(draft)
	if err != nil {
		serviceError(w, "create campaign failed", err)
		return
	}
	writeJSON(w, http.StatusCreated, campaign)
}

// CampaignSave pushes every editable field of the editor draft in one
// update.
func (a *Admin) CampaignSave(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	var draft console.CampaignDraft
	if err := decodeJSON(r, &draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	campaign, err := a.console.SaveCampaign(id, draft)
	if err != nil {
		serviceError(w, "save campaign failed", err)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

// toggleRequest carries the active flag for a campaign or catalog row.
type toggleRequest struct {
	Active bool `json:"active"`
}

// CampaignToggle flips only a campaign's active flag. Unsaved editor drafts
// are not carried by this call.
func (a *Admin) CampaignToggle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	var req toggleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	campaign, err := a.console.ToggleCampaign(id, req.Active)
	if err != nil {
		serviceError(w, "toggle campaign failed", err)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

// --- Catalog administration ---

// TemplateToggle flips a template's active flag and invalidates the cached
// catalog snapshot.
func (a *Admin) TemplateToggle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid template id")
		return
	}
	var req toggleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tmpl, err := a.templates.FindByID(id)
	if err != nil {
		serviceError(w, "find template failed", err)
		return
	}
	if tmpl == nil {
		writeError(w, http.StatusNotFound, "template not found")
		return
	}

	if err := a.templates.SetActive(id, req.Active); err != nil {
		serviceError(w, "toggle template failed", err)
		return
	}
	a.catalog.Invalidate(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// CategoryToggle flips a category's active flag and invalidates the cached
// catalog snapshot.
func (a *Admin) CategoryToggle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}
	var req toggleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cat, err := a.categories.FindByID(id)
	if err != nil {
		serviceError(w, "find category failed", err)
		return
	}
	if cat == nil {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}

	if err := a.categories.SetActive(id, req.Active); err != nil {
		serviceError(w, "toggle category failed", err)
		return
	}
	a.catalog.Invalidate(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// Categories lists every category, inactive ones included, for the
// console's catalog management view.
func (a *Admin) Categories(w http.ResponseWriter, r *http.Request) {
	items, err := a.categories.List()
	if err != nil {
		serviceError(w, "list categories failed", err)
		return
	}
	if items == nil {
		items = []models.Category{}
	}
	writeJSON(w, http.StatusOK, items)
}

// --- Payment settings ---

// PaymentSettings returns the merged payment settings.
func (a *Admin) PaymentSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := a.payments.Get()
	if err != nil {
		serviceError(w, "read payment settings failed", err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// PaymentSettingsSave replaces the JSON blob for one payment key.
func (a *Admin) PaymentSettingsSave(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var raw json.RawMessage
	if err := decodeJSON(r, &raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.payments.Set(key, raw); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	settings, err := a.payments.Get()
	if err != nil {
		serviceError(w, "read payment settings failed", err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// --- Clients ---

// Clients lists every profile for the console's client pickers.
func (a *Admin) Clients(w http.ResponseWriter, r *http.Request) {
	items, err := a.profiles.List()
	if err != nil {
		serviceError(w, "list clients failed", err)
		return
	}
	if items == nil {
		items = []models.Profile{}
	}
	writeJSON(w, http.StatusOK, items)
}

// clientRequest is the console's register-client form.
type clientRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Company *string `json:"company"`
	Phone   *string `json:"phone"`
	Country *string `json:"country"`
}

// ClientCreate registers a client profile ahead of its first portal login,
// upserting by email so re-registering an address updates the details
// instead of failing.
func (a *Admin) ClientCreate(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "Name is required.")
		return
	}
	if msg := validateEmail(req.Email); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	profile, err := a.profiles.Upsert(&models.Profile{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Company: req.Company,
		Phone:   req.Phone,
		Country: req.Country,
		Role:    models.RoleClient,
	})
	if err != nil {
		serviceError(w, "upsert client failed", err)
		return
	}
	writeJSON(w, http.StatusCreated, profile)
}
