package catalog

import "edu-finder-backend/internal/domain"

// Registry is the fixed set of catalogs served by the application.
type Registry struct {
	ordered []domain.Catalog
	byName  map[string]domain.Catalog
}

// NewRegistry returns the built-in catalogs.
func NewRegistry() *Registry {
	return newRegistry(
		Opportunities(),
		EntranceExams(),
		GovernmentExams(),
		Counselling(),
		News(),
	)
}

func newRegistry(catalogs ...domain.Catalog) *Registry {
	r := &Registry{byName: make(map[string]domain.Catalog, len(catalogs))}
	for _, c := range catalogs {
		r.ordered = append(r.ordered, c)
		r.byName[c.Info().Name] = c
	}
	return r
}

func (r *Registry) Catalogs() []domain.Catalog {
	return append([]domain.Catalog(nil), r.ordered...)
}

func (r *Registry) Get(name string) (domain.Catalog, bool) {
	c, ok := r.byName[name]
	return c, ok
}

func (r *Registry) Lookup(id string, profile *domain.UserProfile, saved domain.SavedSet) (domain.Listing, bool) {
	for _, c := range r.ordered {
		if l, ok := c.Lookup(id, profile, saved); ok {
			return l, true
		}
	}
	return domain.Listing{}, false
}
