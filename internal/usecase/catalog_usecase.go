package usecase

import (
	"context"

	"edu-finder-backend/internal/catalog"
	"edu-finder-backend/internal/domain"
	"edu-finder-backend/internal/filter"
	"edu-finder-backend/pkg/apperror"
)

type catalogUsecase struct {
	catalogs domain.CatalogRegistry
	profiles domain.ProfileUsecase
	saved    domain.SavedUsecase
}

func NewCatalogUsecase(catalogs domain.CatalogRegistry, profiles domain.ProfileUsecase, saved domain.SavedUsecase) domain.CatalogUsecase {
	return &catalogUsecase{
		catalogs: catalogs,
		profiles: profiles,
		saved:    saved,
	}
}

func (u *catalogUsecase) ListCatalogs(ctx context.Context) []domain.CatalogInfo {
	all := u.catalogs.Catalogs()
	infos := make([]domain.CatalogInfo, 0, len(all))
	for _, c := range all {
		infos = append(infos, c.Info())
	}
	return infos
}

func (u *catalogUsecase) Search(ctx context.Context, clientID, name string, q filter.Query) (*domain.SearchResult, error) {
	c, ok := u.catalogs.Get(name)
	if !ok {
		return nil, apperror.NotFound("Catalog not found: " + name)
	}

	profile, err := u.profiles.GetProfile(ctx, clientID)
	if err != nil {
		return nil, err
	}
	saved, err := u.saved.GetSaved(ctx, clientID)
	if err != nil {
		return nil, err
	}

	info := c.Info()
	items := c.Search(q, profile, saved)
	return &domain.SearchResult{
		Catalog:    info.Name,
		Query:      q,
		Total:      info.Size,
		Matched:    len(items),
		HasProfile: profile != nil,
		Items:      items,
	}, nil
}

func (u *catalogUsecase) Recommendations(ctx context.Context, clientID string) (*domain.SearchResult, error) {
	return u.Search(ctx, clientID, catalog.NameOpportunities, filter.Query{})
}
