package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenTTL is the signed lifetime of every issued token. The session
// cookie carries its own, shorter client-side max age; both bounds apply.
const tokenTTL = time.Hour

// ErrInvalidToken covers every verification failure: bad signature,
// malformed payload, or elapsed expiry. Callers get no finer detail.
var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and verifies signed identity tokens. Validity is
// entirely a function of signature plus expiry; nothing is stored
// server-side.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue signs an HS256 token asserting the subject's identity,
// expiring exactly one hour from now.
func (t *TokenService) Issue(subject string) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify checks signature integrity and expiry and returns the subject
// the token asserts. Expiry is a hard boundary evaluated here, at
// verification time.
func (t *TokenService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	_, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return t.secret, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}

	subject := strings.TrimSpace(claims.Subject)
	if subject == "" {
		return "", ErrInvalidToken
	}
	return subject, nil
}
