package services

import (
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/backend-template/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenService(secret string, ttl time.Duration) *TokenService {
	return NewTokenService(&config.Config{JWTSecret: secret, AccessTokenTTL: ttl})
}

func TestTokenService_IssueVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTokenService("super-secret", time.Hour)

	token, expiresAt, err := svc.Issue("john.doe@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), expiresAt, 5*time.Second)

	subject, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "john.doe@example.com", subject)
}

func TestTokenService_IssueWithCustomTTL(t *testing.T) {
	t.Parallel()

	svc := newTokenService("super-secret", time.Hour)

	_, expiresAt, err := svc.Issue("a@b.com", 5*time.Minute)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC().Add(5*time.Minute), expiresAt, 5*time.Second)
}

func TestTokenService_VerifyExpired(t *testing.T) {
	t.Parallel()

	svc := newTokenService("super-secret", time.Hour)

	token, _, err := svc.Issue("a@b.com", -time.Minute)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestTokenService_VerifyWrongSecret(t *testing.T) {
	t.Parallel()

	token, _, err := newTokenService("right-secret", time.Hour).Issue("a@b.com")
	require.NoError(t, err)

	_, err = newTokenService("wrong-secret", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestTokenService_VerifyMissingSubject(t *testing.T) {
	t.Parallel()

	svc := newTokenService("super-secret", time.Hour)

	// Valid signature and expiry but no sub claim.
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := raw.SignedString([]byte("super-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestTokenService_VerifyMalformed(t *testing.T) {
	t.Parallel()

	svc := newTokenService("super-secret", time.Hour)

	for _, token := range []string{"", "not.a.jwt", "garbage"} {
		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidCredentials, "token %q", token)
	}
}

func TestTokenService_VerifyTamperedSignature(t *testing.T) {
	t.Parallel()

	svc := newTokenService("super-secret", time.Hour)

	token, _, err := svc.Issue("a@b.com")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
