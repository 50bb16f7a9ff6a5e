package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for public form and order inputs.
const (
	maxNameLen     = 200
	maxEmailLen    = 320
	maxCompanyLen  = 200
	maxSubjectLen  = 300
	maxMessageLen  = 10_000
	maxBusinessLen = 200
)

// validateContactForm checks the public contact form inputs and returns
// the first error found, or "".
func validateContactForm(name, email, message string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Name is too long (max 200 characters)."
	}
	if msg := validateEmail(email); msg != "" {
		return msg
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return "Message is required."
	}
	if utf8.RuneCountInString(message) > maxMessageLen {
		return "Message is too long (max 10,000 characters)."
	}
	return ""
}

// validateEmail performs a shallow shape check. Real verification is the
// mail server's problem.
func validateEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return "Email is required."
	}
	if utf8.RuneCountInString(email) > maxEmailLen {
		return "Email is too long."
	}
	at := strings.IndexByte(email, '@')
	if at < 1 || at == len(email)-1 || !strings.Contains(email[at+1:], ".") {
		return "Email does not look valid."
	}
	return ""
}

// validateOrder checks a new template order request.
func validateOrder(businessName string, price float64) string {
	businessName = strings.TrimSpace(businessName)
	if businessName == "" {
		return "Business name is required."
	}
	if utf8.RuneCountInString(businessName) > maxBusinessLen {
		return "Business name is too long (max 200 characters)."
	}
	if price < 0 {
		return "Price cannot be negative."
	}
	return ""
}
