// Package catalog holds the static organization and template tables and
// the lookups the renderer and gateway run against them. The tables are
// compiled in; Validate asserts their completeness once at startup so a
// missing (organization, language) pair is a boot failure, not a request
// time surprise.
package catalog

import (
	"fmt"
	"sort"

	"github.com/jpretorius/email-gateway/internal/model"
)

// Organization returns the static record for the given identifier.
func Organization(o model.Organization) (model.OrganizationConfig, bool) {
	cfg, ok := organizations[o]
	return cfg, ok
}

// Organizations lists all organizations in stable (alphabetical) order.
func Organizations() []model.OrganizationConfig {
	out := make([]model.OrganizationConfig, 0, len(organizations))
	for _, cfg := range organizations {
		out = append(out, cfg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Template resolves the template for (organization, language).
func Template(o model.Organization, l model.Language) (model.EmailTemplate, bool) {
	t, ok := templates[templateKey{o, l}]
	return t, ok
}

// Validate checks that every organization resolves to a complete template
// in every supported language. Serve and render commands call this before
// doing anything else and exit non-zero on failure.
func Validate() error {
	for org := range organizations {
		for _, lang := range model.Languages() {
			t, ok := templates[templateKey{org, lang}]
			if !ok {
				return fmt.Errorf("catalog: no template for %q language %q", org, lang)
			}
			if t.Subject == "" || t.Greeting == "" || t.Body == "" {
				return fmt.Errorf("catalog: incomplete template for %q language %q", org, lang)
			}
			if t.Footer.Closing == "" || t.Footer.Department == "" {
				return fmt.Errorf("catalog: template for %q language %q has no footer", org, lang)
			}
		}
	}
	for key := range templates {
		if _, ok := organizations[key.Org]; !ok {
			return fmt.Errorf("catalog: template for unknown organization %q", key.Org)
		}
	}
	return nil
}
