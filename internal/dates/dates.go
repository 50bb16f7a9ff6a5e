// Package dates normalizes user-entered date strings into UTC instants.
// Date fields arrive from forms either as a bare date or a full RFC 3339
// timestamp; storage always holds a UTC instant or NULL.
package dates

import (
	"fmt"
	"strings"
	"time"
)

// Parse converts a date string to a UTC instant. An empty or whitespace
// string yields nil (stored as NULL). Accepted layouts are RFC 3339 and
// bare dates (2006-01-02, interpreted as midnight UTC).
func Parse(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		utc := t.UTC()
		return &utc, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		utc := t.UTC()
		return &utc, nil
	}
	return nil, fmt.Errorf("unrecognized date %q", s)
}
