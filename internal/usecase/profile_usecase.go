package usecase

import (
	"context"
	"net/http"
	"strings"

	"edu-finder-backend/internal/domain"
	"edu-finder-backend/pkg/apperror"
	"edu-finder-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	store    domain.SlotStore
	validate *validator.Validate
}

func NewProfileUsecase(store domain.SlotStore, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		store:    store,
		validate: validate,
	}
}

func (u *profileUsecase) GetProfile(ctx context.Context, clientID string) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	found, err := loadSlot(ctx, u.store, clientID, domain.SlotProfile, &profile)
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to load profile", err)
	}
	if !found {
		return nil, nil
	}
	return &profile, nil
}

func (u *profileUsecase) SaveProfile(ctx context.Context, clientID string, profile *domain.UserProfile) error {
	if profile == nil {
		return apperror.BadRequest("Please fill in all required fields")
	}

	profile.FullName = strings.TrimSpace(profile.FullName)
	if err := u.validate.Struct(profile); err != nil {
		return apperror.BadRequest("Validation failed: " + strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	if err := storeSlot(ctx, u.store, clientID, domain.SlotProfile, profile); err != nil {
		return apperror.New(http.StatusInternalServerError, "Failed to save profile", err)
	}
	return nil
}

func (u *profileUsecase) DeleteProfile(ctx context.Context, clientID string) error {
	if err := u.store.Delete(ctx, clientID, domain.SlotProfile); err != nil {
		return apperror.New(http.StatusInternalServerError, "Failed to delete profile", err)
	}
	return nil
}
