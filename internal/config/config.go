package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Auth
	JWTSecret      string
	AccessTokenTTL time.Duration
	BcryptCost     int

	// Server
	Port        string
	CORSOrigins string

	// Request logging
	LoggerSkipPaths []MethodPath

	// RequestLog rows older than this are purged daily
	LogRetentionDays int
}

// MethodPath is a "METHOD:PATH" pair used to exclude endpoints from the
// request logger (health probes, endpoints with credentials in flight).
type MethodPath struct {
	Method string
	Path   string
}

func Load() *Config {
	// Local development convenience; a missing .env is not an error.
	_ = godotenv.Load()

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "backend_template"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:      getEnv("JWT_SECRET", ""),
		AccessTokenTTL: parseMinutes(getEnv("ACCESS_TOKEN_EXPIRE_MINUTES", "30")),
		BcryptCost:     parseBcryptCost(getEnv("BCRYPT_COST", "")),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		LoggerSkipPaths: parseMethodPaths(getEnv("LOGGER_SKIP_PATHS", "GET:/health,POST:/auth/token")),

		LogRetentionDays: parseInt(getEnv("LOG_RETENTION_DAYS", "30"), 30),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

// SkipLogging reports whether the request logger should stay silent for the
// given method and path.
func (c *Config) SkipLogging(method, path string) bool {
	for _, mp := range c.LoggerSkipPaths {
		if mp.Method == method && mp.Path == path {
			return true
		}
	}
	return false
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

func parseMinutes(s string) time.Duration {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(n) * time.Minute
}

func parseBcryptCost(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < bcrypt.MinCost || n > bcrypt.MaxCost {
		return bcrypt.DefaultCost
	}
	return n
}

// parseMethodPaths parses a comma-separated list of "METHOD:PATH" pairs,
// e.g. "GET:/health,POST:/auth/token". Malformed entries are dropped.
func parseMethodPaths(s string) []MethodPath {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]MethodPath, 0, len(parts))
	for _, p := range parts {
		method, path, ok := strings.Cut(strings.TrimSpace(p), ":")
		if !ok || method == "" || path == "" {
			continue
		}
		result = append(result, MethodPath{Method: strings.ToUpper(method), Path: path})
	}
	return result
}
