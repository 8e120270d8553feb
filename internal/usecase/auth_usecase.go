package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"edu-finder-backend/internal/domain"
	"edu-finder-backend/pkg/apperror"
	"edu-finder-backend/pkg/auth"
	"edu-finder-backend/pkg/logger"
)

const minSecretLength = 6

type authUsecase struct {
	store         domain.SlotStore
	authenticator domain.Authenticator
}

func NewAuthUsecase(store domain.SlotStore, authenticator domain.Authenticator) domain.AuthUsecase {
	return &authUsecase{
		store:         store,
		authenticator: authenticator,
	}
}

func (u *authUsecase) Login(ctx context.Context, clientID, identifier, secret string) (*domain.AuthMarker, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || secret == "" {
		return nil, apperror.BadRequest("Please fill in all fields")
	}
	if len(secret) < minSecretLength {
		return nil, apperror.BadRequest("Password must be at least 6 characters")
	}

	if err := u.authenticator.Authenticate(ctx, identifier, secret); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			logger.Log.Info("Login rejected", "client_id", clientID)
			return nil, apperror.Unauthorized("Invalid credentials")
		}
		return nil, apperror.New(http.StatusInternalServerError, "Authentication failed", err)
	}

	marker := &domain.AuthMarker{Email: identifier, IsAuthenticated: true}
	if err := storeSlot(ctx, u.store, clientID, domain.SlotUser, marker); err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to store session", err)
	}
	return marker, nil
}

func (u *authUsecase) Logout(ctx context.Context, clientID string) error {
	if err := u.store.Delete(ctx, clientID, domain.SlotUser); err != nil {
		return apperror.New(http.StatusInternalServerError, "Failed to clear session", err)
	}
	return nil
}

func (u *authUsecase) CurrentUser(ctx context.Context, clientID string) (*domain.AuthMarker, error) {
	var marker domain.AuthMarker
	found, err := loadSlot(ctx, u.store, clientID, domain.SlotUser, &marker)
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to load session", err)
	}
	if !found || !marker.IsAuthenticated {
		return nil, nil
	}
	return &marker, nil
}
