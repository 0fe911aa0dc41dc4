package helper

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SignedDetails is the claims payload carried by a session token. The
// email is the only field the access checks rely on; role is deliberately
// absent so that a demotion takes effect on the very next request instead
// of waiting out the token.
type SignedDetails struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 session tokens with a fixed
// 6 hour lifetime. There is no refresh flow: expiry forces a fresh
// sign-in.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

const tokenLifetime = 6 * time.Hour

// GenerateToken issues a signed token for the given identity.
func (s *TokenService) GenerateToken(email, name string) (string, error) {
	claims := &SignedDetails{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

var ErrInvalidToken = errors.New("token is invalid")

// ValidateToken checks signature and expiry and returns the claims.
// Any failure mode (malformed, expired, wrong signature, wrong signing
// method) comes back as an error the caller must treat as unauthenticated.
func (s *TokenService) ValidateToken(signedToken string) (*SignedDetails, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return s.secret, nil
		},
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SignedDetails)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
