package usecase

import (
	"context"
	"net/http"
	"strings"

	"edu-finder-backend/internal/domain"
	"edu-finder-backend/pkg/apperror"
)

type savedUsecase struct {
	store    domain.SlotStore
	catalogs domain.CatalogRegistry
	profiles domain.ProfileUsecase
}

func NewSavedUsecase(store domain.SlotStore, catalogs domain.CatalogRegistry, profiles domain.ProfileUsecase) domain.SavedUsecase {
	return &savedUsecase{
		store:    store,
		catalogs: catalogs,
		profiles: profiles,
	}
}

func (u *savedUsecase) GetSaved(ctx context.Context, clientID string) (domain.SavedSet, error) {
	saved := domain.SavedSet{}
	if _, err := loadSlot(ctx, u.store, clientID, domain.SlotSaved, &saved); err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to load saved items", err)
	}
	if saved == nil {
		saved = domain.SavedSet{}
	}
	return saved, nil
}

// ListSavedItems resolves every saved id against the catalogs. Ids that no
// longer resolve are skipped but kept in the set.
func (u *savedUsecase) ListSavedItems(ctx context.Context, clientID string) (*domain.SavedItems, error) {
	saved, err := u.GetSaved(ctx, clientID)
	if err != nil {
		return nil, err
	}
	profile, err := u.profiles.GetProfile(ctx, clientID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.Listing, 0, len(saved))
	for _, id := range saved {
		if l, ok := u.catalogs.Lookup(id, profile, saved); ok {
			items = append(items, l)
		}
	}
	return &domain.SavedItems{IDs: saved, Items: items}, nil
}

func (u *savedUsecase) ToggleSaved(ctx context.Context, clientID, recordID string) (*domain.ToggleResult, error) {
	recordID = strings.TrimSpace(recordID)
	if recordID == "" {
		return nil, apperror.BadRequest("Record id is required")
	}
	if _, ok := u.catalogs.Lookup(recordID, nil, nil); !ok {
		return nil, apperror.NotFound("Record not found")
	}

	saved, err := u.GetSaved(ctx, clientID)
	if err != nil {
		return nil, err
	}

	next, added := saved.Toggle(recordID)
	if err := storeSlot(ctx, u.store, clientID, domain.SlotSaved, next); err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to update tracker", err)
	}

	return &domain.ToggleResult{ID: recordID, Saved: added, IDs: next}, nil
}
