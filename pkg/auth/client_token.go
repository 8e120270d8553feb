package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const clientTokenIssuer = "edu-finder"

// ClientTokens signs and verifies the opaque client identity handed to
// every caller. The subject is a random UUID that partitions the slot store.
type ClientTokens struct {
	secret []byte
}

func NewClientTokens(secret string) (*ClientTokens, error) {
	if len(secret) < 16 {
		return nil, errors.New("client token secret must be at least 16 characters")
	}
	return &ClientTokens{secret: []byte(secret)}, nil
}

// NewClientID mints a fresh client identifier.
func NewClientID() string {
	return uuid.NewString()
}

// Issue returns a signed HS256 token for clientID.
func (t *ClientTokens) Issue(clientID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:  clientID,
		Issuer:   clientTokenIssuer,
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign client token: %w", err)
	}
	return signed, nil
}

// Parse verifies tokenString and returns the client id it carries.
func (t *ClientTokens) Parse(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(clientTokenIssuer),
	)
	if err != nil {
		return "", fmt.Errorf("parse client token: %w", err)
	}
	if !token.Valid {
		return "", errors.New("client token is not valid")
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return "", fmt.Errorf("client token subject: %w", err)
	}
	return claims.Subject, nil
}
