package domain

import "context"

// Authenticator checks an identifier/secret pair. Implementations are
// pluggable; the default accepts a single configured pair.
type Authenticator interface {
	Authenticate(ctx context.Context, identifier, secret string) error
}

// AuthMarker is stored in the "user" slot after a successful login.
type AuthMarker struct {
	Email           string `json:"email"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}

type AuthUsecase interface {
	Login(ctx context.Context, clientID, identifier, secret string) (*AuthMarker, error)
	Logout(ctx context.Context, clientID string) error
	// CurrentUser returns nil without error for a guest.
	CurrentUser(ctx context.Context, clientID string) (*AuthMarker, error)
}
