package search

import (
	"strings"

	"github.com/heartmarshall/leadfinder-backend/internal/domain"
)

// ApplyResidual runs the in-memory filters the data source does not
// evaluate: keywords first, then locations. Input order is preserved.
func ApplyResidual(leads []domain.Lead, f domain.Filters) []domain.Lead {
	leads = FilterByKeywords(leads, f.Keywords)
	return FilterByLocations(leads, f.Locations)
}

// FilterByKeywords keeps the leads whose company name, contact name,
// industry or notes contain any keyword, case-insensitively.
// An empty keyword list keeps every lead.
func FilterByKeywords(leads []domain.Lead, keywords []string) []domain.Lead {
	return filterAny(leads, keywords, func(l *domain.Lead) string {
		return strings.Join([]string{l.CompanyName, l.ContactName, deref(l.Industry), deref(l.Notes)}, " ")
	})
}

// FilterByLocations keeps the leads whose company name or notes contain
// any location, case-insensitively. An empty list keeps every lead.
func FilterByLocations(leads []domain.Lead, locations []string) []domain.Lead {
	return filterAny(leads, locations, func(l *domain.Lead) string {
		return l.CompanyName + " " + deref(l.Notes)
	})
}

func filterAny(leads []domain.Lead, needles []string, haystack func(*domain.Lead) string) []domain.Lead {
	terms := make([]string, 0, len(needles))
	for _, n := range needles {
		if n = strings.ToLower(strings.TrimSpace(n)); n != "" {
			terms = append(terms, n)
		}
	}
	if len(terms) == 0 {
		return leads
	}

	out := make([]domain.Lead, 0, len(leads))
	for i := range leads {
		text := strings.ToLower(haystack(&leads[i]))
		for _, term := range terms {
			if strings.Contains(text, term) {
				out = append(out, leads[i])
				break
			}
		}
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
