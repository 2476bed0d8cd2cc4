// Package token issues and validates the signed access tokens returned on
// sign-in. Tokens are HS256 JWTs carrying the user's ID, email and role.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/inclufi/account-service/internal/domain"
)

// ErrInvalidToken is returned when a token fails signature or claim checks.
var ErrInvalidToken = errors.New("invalid token")

// RoleUser is the role claim stamped on tokens issued at sign-in. Admin
// tokens carry "admin" and are minted by the operations tooling.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Claims embeds the registered JWT claims plus our custom fields.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"uid"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// Issuer signs access tokens with a shared HS256 secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates an Issuer with the given signing secret and token lifetime.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed access token for an authenticated user.
func (i *Issuer) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		UserID: user.ID,
		Email:  user.Email,
		Role:   RoleUser,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Parse validates a token string against the secret and returns its claims.
func Parse(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))

	parsed, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
