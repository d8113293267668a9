package services

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/backend-template/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and verifies stateless HS256 bearer tokens. Expiry is
// enforced purely by claim inspection; there is no revocation list, so a
// disqualified account is only rejected when its identity is resolved.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.AccessTokenTTL,
	}
}

// Issue signs a token for the given subject (the user's email). An optional
// ttl overrides the configured default.
func (s *TokenService) Issue(subject string, ttl ...time.Duration) (string, time.Time, error) {
	expiry := s.ttl
	if len(ttl) > 0 {
		expiry = ttl[0]
	}
	expiresAt := time.Now().UTC().Add(expiry)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify validates signature and expiry and returns the subject claim. Any
// failure, including a missing subject, is ErrInvalidCredentials.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", ErrInvalidCredentials
	}
	if claims.Subject == "" {
		return "", ErrInvalidCredentials
	}
	return claims.Subject, nil
}
