// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package payments reads and writes payment provider settings stored as
// JSON blobs in site_settings. Reads merge stored JSON over compiled-in
// defaults so missing keys fall back silently; writes replace one key's
// blob at a time.
package payments

import (
	"encoding/json"
	"fmt"

	"studioportal/internal/models"
)

// Setting keys in the site_settings table.
const (
	KeyStripe      = "payment_stripe"
	KeyPayPal      = "payment_paypal"
	KeyBank        = "payment_bank"
	KeyPreferences = "payment_preferences"
)

// Keys lists every payment setting key this service manages.
var Keys = []string{KeyStripe, KeyPayPal, KeyBank, KeyPreferences}

// StripeSettings configures the Stripe checkout surface.
type StripeSettings struct {
	Enabled        bool   `json:"enabled"`
	PublishableKey string `json:"publishable_key"`
	AccountEmail   string `json:"account_email"`
}

// PayPalSettings configures the PayPal checkout surface.
type PayPalSettings struct {
	Enabled bool   `json:"enabled"`
	Email   string `json:"email"`
	Sandbox bool   `json:"sandbox"`
}

// BankSettings configures manual bank-transfer instructions.
type BankSettings struct {
	Enabled     bool   `json:"enabled"`
	AccountName string `json:"account_name"`
	IBAN        string `json:"iban"`
	BIC         string `json:"bic"`
	BankName    string `json:"bank_name"`
}

// Preferences holds cross-provider invoicing preferences.
type Preferences struct {
	DefaultMethod  string `json:"default_method"`
	Currency       string `json:"currency"`
	InvoiceDueDays int    `json:"invoice_due_days"`
}

// Settings aggregates every payment configuration blob.
type Settings struct {
	Stripe      StripeSettings `json:"stripe"`
	PayPal      PayPalSettings `json:"paypal"`
	Bank        BankSettings   `json:"bank"`
	Preferences Preferences    `json:"preferences"`
}

// Defaults returns the compiled-in payment settings used when nothing is
// stored yet.
func Defaults() Settings {
	return Settings{
		Preferences: Preferences{
			DefaultMethod:  "bank",
			Currency:       "EUR",
			InvoiceDueDays: 14,
		},
	}
}

// SettingStore is the slice of the site settings store this service needs.
type SettingStore interface {
	All() (models.SiteSettings, error)
	Set(key, value string) error
}

// Service reads and writes payment settings.
type Service struct {
	settings SettingStore
}

// New returns a payments service over the site settings store.
func New(settings SettingStore) *Service {
	return &Service{settings: settings}
}

// Get returns the merged payment settings: stored JSON decoded over the
// compiled-in defaults. Keys absent from storage, and fields absent from a
// stored blob, keep their default values.
func (s *Service) Get() (Settings, error) {
	merged := Defaults()

	stored, err := s.settings.All()
	if err != nil {
		return merged, fmt.Errorf("read payment settings: %w", err)
	}

	if err := mergeKey(stored, KeyStripe, &merged.Stripe); err != nil {
		return merged, err
	}
	if err := mergeKey(stored, KeyPayPal, &merged.PayPal); err != nil {
		return merged, err
	}
	if err := mergeKey(stored, KeyBank, &merged.Bank); err != nil {
		return merged, err
	}
	if err := mergeKey(stored, KeyPreferences, &merged.Preferences); err != nil {
		return merged, err
	}
	return merged, nil
}

// mergeKey decodes the stored blob for key into dst, which already holds
// defaults. A missing or empty blob leaves dst untouched.
func mergeKey(stored models.SiteSettings, key string, dst any) error {
	raw := stored.Get(key, "")
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// Set replaces the JSON blob for one payment key. The blob must be valid
// JSON; other keys are unaffected.
func (s *Service) Set(key string, raw json.RawMessage) error {
	if !validKey(key) {
		return fmt.Errorf("unknown payment setting key %q", key)
	}
	if !json.Valid(raw) {
		return fmt.Errorf("payment setting %s: invalid JSON", key)
	}
	if err := s.settings.Set(key, string(raw)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func validKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}
