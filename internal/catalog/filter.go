// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"strings"

	"studioportal/internal/models"
)

// Filter returns the templates that pass both the category and search
// filters. A template passes when:
//
//   - categorySlug is empty, or the template's joined category has that slug;
//   - the trimmed query is empty, or the template's name or description
//     contains it case-insensitively.
//
// A template whose category join is nil is excluded whenever a category
// filter is active, but included under no filter.
func Filter(templates []models.Template, categorySlug, query string) []models.Template {
	query = strings.ToLower(strings.TrimSpace(query))

	var out []models.Template
	for _, t := range templates {
		if categorySlug != "" {
			if t.Category == nil || t.Category.Slug != categorySlug {
				continue
			}
		}
		if query != "" {
			name := strings.ToLower(t.Name)
			desc := strings.ToLower(t.Description)
			if !strings.Contains(name, query) && !strings.Contains(desc, query) {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}
