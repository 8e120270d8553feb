package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// MockAuthenticator accepts exactly one identifier/secret pair. It stands in
// for a real identity provider and offers no protection beyond that.
type MockAuthenticator struct {
	identifier string
	hash       []byte
}

// NewMockAuthenticator builds the authenticator from a bcrypt hash. When
// passwordHash is empty, password is hashed instead.
func NewMockAuthenticator(identifier, password, passwordHash string) (*MockAuthenticator, error) {
	if identifier == "" {
		return nil, errors.New("mock auth identifier is required")
	}

	hash := []byte(passwordHash)
	if len(hash) == 0 {
		if password == "" {
			return nil, errors.New("mock auth password or password hash is required")
		}
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash mock password: %w", err)
		}
	} else if _, err := bcrypt.Cost(hash); err != nil {
		return nil, fmt.Errorf("mock password hash: %w", err)
	}

	return &MockAuthenticator{identifier: identifier, hash: hash}, nil
}

func (a *MockAuthenticator) Authenticate(ctx context.Context, identifier, secret string) error {
	if identifier != a.identifier {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(secret)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
