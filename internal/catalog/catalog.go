// Package catalog holds the compiled-in record collections and binds each
// one to a filter.Spec.
package catalog

import (
	"edu-finder-backend/internal/domain"
	"edu-finder-backend/internal/eligibility"
	"edu-finder-backend/internal/filter"
)

const (
	NameOpportunities   = "opportunities"
	NameEntranceExams   = "entrance-exams"
	NameGovernmentExams = "government-exams"
	NameCounselling     = "counselling"
	NameNews            = "news"
)

// Sentinel selections shared by several catalogs.
const (
	AnyValue   = "All"
	AllStates  = "All States"
	AllClasses = "All Classes"
)

// static is a Catalog over an immutable slice of T.
type static[T any] struct {
	info    domain.CatalogInfo
	records []T
	spec    filter.Spec[T]
	id      func(T) string
	title   func(T) string
	// target is nil for catalogs whose listings carry no eligibility tag.
	target func(T) *domain.Target
}

func (c *static[T]) Info() domain.CatalogInfo {
	info := c.info
	info.Size = len(c.records)
	info.Filters = append([]domain.FilterOption(nil), c.info.Filters...)
	return info
}

func (c *static[T]) Search(q filter.Query, profile *domain.UserProfile, saved domain.SavedSet) []domain.Listing {
	matches := c.spec.Apply(c.records, q)
	out := make([]domain.Listing, 0, len(matches))
	for _, r := range matches {
		out = append(out, c.listing(r, profile, saved))
	}
	return out
}

func (c *static[T]) Lookup(id string, profile *domain.UserProfile, saved domain.SavedSet) (domain.Listing, bool) {
	for _, r := range c.records {
		if c.id(r) == id {
			return c.listing(r, profile, saved), true
		}
	}
	return domain.Listing{}, false
}

func (c *static[T]) listing(r T, profile *domain.UserProfile, saved domain.SavedSet) domain.Listing {
	id := c.id(r)
	l := domain.Listing{
		ID:      id,
		Catalog: c.info.Name,
		Title:   c.title(r),
		Saved:   saved.Contains(id),
		Record:  r,
	}
	if c.target != nil {
		l.Eligibility = eligibility.Classify(c.target(r), profile)
	}
	return l
}

func selectOption(name, label, def string, choices ...string) domain.FilterOption {
	return domain.FilterOption{Name: name, Label: label, Kind: domain.FilterSelect, Default: def, Choices: choices}
}

func flagOption(name, label string) domain.FilterOption {
	return domain.FilterOption{Name: name, Label: label, Kind: domain.FilterFlag}
}

func withAny(values ...string) []string {
	return append([]string{AnyValue}, values...)
}
