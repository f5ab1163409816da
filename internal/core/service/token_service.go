package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/worldwise/trip-planner-api/internal/core/domain"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// TokenService issues and verifies HS256 bearer tokens. The claim schema is
// fixed to jwt.RegisteredClaims with a mandatory subject; tokens carrying any
// other shape are rejected rather than probed for alternative fields.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token asserting subject, issued-at, and expiry.
func (s *TokenService) Issue(subject string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks signature integrity and expiry and returns the subject.
// Any malformed, tampered, or expired token yields ErrTokenInvalid.
func (s *TokenService) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrTokenInvalid
	}
	if claims.Subject == "" {
		return "", domain.ErrTokenInvalid
	}
	return claims.Subject, nil
}
