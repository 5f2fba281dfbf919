package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every expected verification failure: bad signature,
// wrong algorithm, malformed structure, expiry. Callers treat it as
// "unauthenticated", never as a crash.
var ErrInvalidToken = errors.New("invalid token")

// SessionClaims carries the token subject (user id) and the access scope tag.
type SessionClaims struct {
	Access string `json:"access"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies session tokens with a process-wide secret
// loaded once at startup. Rotating the secret invalidates all outstanding
// tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a manager. A zero ttl issues non-expiring tokens.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Sign produces a signed token asserting the subject and access scope. Any
// non-zero ttl stamps an expiry; zero leaves the token non-expiring.
func (m *TokenManager) Sign(subject, access string) (string, error) {
	claims := &SessionClaims{
		Access: access,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  subject,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	if m.ttl != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(m.ttl))
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Parse verifies the token and recovers its claims. Any verification failure
// is reported as ErrInvalidToken; claims are never readable without it.
func (m *TokenManager) Parse(tokenStr string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
