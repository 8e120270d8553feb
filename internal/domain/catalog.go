package domain

import (
	"context"

	"edu-finder-backend/internal/filter"
)

// Catalog is a static, immutable collection of records for one page.
type Catalog interface {
	Info() CatalogInfo
	// Search filters the catalog and annotates the matches for profile and saved.
	Search(q filter.Query, profile *UserProfile, saved SavedSet) []Listing
	Lookup(id string, profile *UserProfile, saved SavedSet) (Listing, bool)
}

type CatalogRegistry interface {
	Catalogs() []Catalog
	Get(name string) (Catalog, bool)
	// Lookup finds a record by id across every catalog.
	Lookup(id string, profile *UserProfile, saved SavedSet) (Listing, bool)
}

type SearchResult struct {
	Catalog    string       `json:"catalog"`
	Query      filter.Query `json:"query"`
	Total      int          `json:"total"`
	Matched    int          `json:"matched"`
	HasProfile bool         `json:"has_profile"`
	Items      []Listing    `json:"items"`
}

type CatalogUsecase interface {
	ListCatalogs(ctx context.Context) []CatalogInfo
	Search(ctx context.Context, clientID, name string, q filter.Query) (*SearchResult, error)
	// Recommendations lists every opportunity tagged for the client's profile.
	Recommendations(ctx context.Context, clientID string) (*SearchResult, error)
}
