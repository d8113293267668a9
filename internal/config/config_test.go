package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestParseMethodPaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []MethodPath
	}{
		{"empty", "", nil},
		{"single", "GET:/health", []MethodPath{{"GET", "/health"}}},
		{
			"multiple with spaces",
			"get:/health, POST:/auth/token",
			[]MethodPath{{"GET", "/health"}, {"POST", "/auth/token"}},
		},
		{"malformed entries dropped", "nonsense,GET:,:/x,PUT:/user", []MethodPath{{"PUT", "/user"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseMethodPaths(tt.in))
		})
	}
}

func TestSkipLogging(t *testing.T) {
	t.Parallel()

	cfg := &Config{LoggerSkipPaths: parseMethodPaths("GET:/health,POST:/auth/token")}

	assert.True(t, cfg.SkipLogging("GET", "/health"))
	assert.True(t, cfg.SkipLogging("POST", "/auth/token"))
	assert.False(t, cfg.SkipLogging("POST", "/health"))
	assert.False(t, cfg.SkipLogging("GET", "/user/"))
}

func TestParseMinutes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 15*time.Minute, parseMinutes("15"))
	assert.Equal(t, 30*time.Minute, parseMinutes("garbage"))
	assert.Equal(t, 30*time.Minute, parseMinutes("-5"))
}

func TestParseBcryptCost(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 12, parseBcryptCost("12"))
	assert.Equal(t, bcrypt.DefaultCost, parseBcryptCost(""))
	assert.Equal(t, bcrypt.DefaultCost, parseBcryptCost("99"))
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ACCESS_TOKEN_EXPIRE_MINUTES", "BCRYPT_COST", "DB_NAME"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
	assert.Contains(t, cfg.DSN(), "dbname=backend_template")
}
