// Package auth issues and validates the HS256 access tokens used by the API.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vivekmohanraj/EventSphere/internal/domain"
)

var ErrInvalidToken = errors.New("invalid token")

// Identity is the authenticated caller extracted from a token. Handlers
// pass the role into core operations explicitly instead of reading it from
// ambient request state.
type Identity struct {
	UserID string
	Role   domain.Role
}

type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs an access token carrying the user id and role.
func (t *TokenIssuer) Issue(userID string, role domain.Role) (string, time.Time, error) {
	exp := time.Now().UTC().Add(t.ttl)
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"exp":  exp.Unix(),
		"iat":  time.Now().UTC().Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, exp, nil
}

// Parse validates the token signature and expiry and returns the caller's
// identity.
func (t *TokenIssuer) Parse(raw string) (*Identity, error) {
	tok, err := jwt.Parse(raw, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method", ErrInvalidToken)
		}
		return t.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	roleStr, _ := claims["role"].(string)
	role := domain.Role(roleStr)
	if sub == "" || !role.Valid() {
		return nil, ErrInvalidToken
	}

	return &Identity{UserID: sub, Role: role}, nil
}
