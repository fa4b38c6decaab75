package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenTTL matches the 15 minute expiry the API has always issued.
const AccessTokenTTL = 15 * time.Minute

var ErrInvalidToken = errors.New("invalid or expired token")

type AccessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Manager signs and verifies access tokens with the configured
// HMAC algorithm (ALGORITHM env, HS256 by default).
type Manager struct {
	Secret []byte
	Method jwt.SigningMethod
}

func NewManager(secret []byte, algorithm string) (*Manager, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not an HMAC method", algorithm)
	}
	return &Manager{Secret: secret, Method: method}, nil
}

func (m *Manager) CreateAccessToken(username, role string, exp time.Time) (string, error) {
	claims := AccessClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	token := jwt.NewWithClaims(m.Method, claims)
	return token.SignedString(m.Secret)
}

func (m *Manager) AccessClaimsFromToken(tokenStr string) (*AccessClaims, error) {
	var claims AccessClaims
	tkn, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != m.Method.Alg() {
			return nil, errors.New("unexpected sign method")
		}
		return m.Secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}
