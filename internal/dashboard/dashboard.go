// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package dashboard derives the client portal's dashboard stats from four
// independent, concurrently issued queries.
package dashboard

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"studioportal/internal/models"
	"studioportal/internal/store"
)

// recentLimit caps the recent orders and recent projects shown on the
// dashboard.
const recentLimit = 3

// Stats is the dashboard payload for one client.
//
// RecentTemplateOrders is the length of the capped recent-orders fetch,
// not a total order count.
type Stats struct {
	ActiveProjects       int                    `json:"active_projects"`
	PendingInvoices      int                    `json:"pending_invoices"`
	UnreadMessages       int                    `json:"unread_messages"`
	RecentTemplateOrders int                    `json:"recent_template_orders"`
	RecentProjects       []models.Project       `json:"recent_projects"`
	Orders               []models.TemplateOrder `json:"orders"`
}

// Service computes dashboard stats for portal clients.
type Service struct {
	projects *store.ProjectStore
	invoices *store.InvoiceStore
	messages *store.MessageStore
	orders   *store.OrderStore
}

// New returns a dashboard service over the given stores.
func New(projects *store.ProjectStore, invoices *store.InvoiceStore, messages *store.MessageStore, orders *store.OrderStore) *Service {
	return &Service{projects: projects, invoices: invoices, messages: messages, orders: orders}
}

// Stats runs the four client-scoped queries concurrently and derives the
// dashboard numbers. The queries are independent; a failure in one does not
// cancel the others, and the first error is reported after all settle.
func (s *Service) Stats(ctx context.Context, clientID uuid.UUID) (*Stats, error) {
	var (
		projects    []models.Project
		outstanding []models.Invoice
		unread      int
		orders      []models.TemplateOrder
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		projects, err = s.projects.ListByClient(clientID)
		return err
	})
	g.Go(func() error {
		var err error
		outstanding, err = s.invoices.ListOutstandingByClient(clientID)
		return err
	})
	g.Go(func() error {
		var err error
		unread, err = s.messages.CountUnread(clientID, true)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = s.orders.RecentByClient(clientID, recentLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Stats{
		ActiveProjects:       CountActive(projects),
		PendingInvoices:      len(outstanding),
		UnreadMessages:       unread,
		RecentTemplateOrders: len(orders),
		RecentProjects:       RecentProjects(projects, recentLimit),
		Orders:               orders,
	}, nil
}

// CountActive counts projects whose status is pending, in progress, or in
// review. Completed and archived projects are excluded.
func CountActive(projects []models.Project) int {
	n := 0
	for _, p := range projects {
		if p.Status.Active() {
			n++
		}
	}
	return n
}

// RecentProjects returns the top n projects by updated_at descending,
// computed from the full fetched set.
func RecentProjects(projects []models.Project, n int) []models.Project {
	sorted := make([]models.Project, len(projects))
	copy(sorted, projects)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
