package services

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ahmetcoskunkizilkaya/backend-template/internal/config"
	"github.com/ahmetcoskunkizilkaya/backend-template/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService authenticates credentials, resolves the identity behind a
// bearer token, and decides own/all authorization for user CRUD.
type AuthService struct {
	db     *gorm.DB
	tokens *TokenService
	cost   int
}

func NewAuthService(db *gorm.DB, tokens *TokenService, cfg *config.Config) *AuthService {
	return &AuthService{db: db, tokens: tokens, cost: cfg.BcryptCost}
}

// HashPassword applies the configured bcrypt cost.
func (s *AuthService) HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored hash. A
// malformed hash is a mismatch, not an error.
func (s *AuthService) VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// Authenticate checks an email/password pair against a live account and
// returns the user on success. Wrong password, unknown email, and every
// liveness violation all collapse into ErrInvalidCredentials.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.db.Preload("UserType").Where("email = ?", email).First(&user).Error; err != nil {
		slog.Info("authentication failed, user not found", "email", email)
		return nil, ErrInvalidCredentials
	}

	if !s.VerifyPassword(password, user.Password) {
		slog.Info("authentication failed, password mismatch", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	if !user.CanLogin() {
		slog.Info("authentication failed, account disqualified", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// CurrentUser resolves the user behind a bearer token: verify signature and
// expiry, then look the subject email up.
func (s *AuthService) CurrentUser(tokenString string) (*models.User, error) {
	email, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.Preload("UserType").Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// CurrentActiveUser is CurrentUser plus the liveness gate: the account must
// not be deleted or blocked, must be active, and its type must permit login.
// Violations are indistinguishable from an invalid token.
func (s *AuthService) CurrentActiveUser(tokenString string) (*models.User, error) {
	user, err := s.CurrentUser(tokenString)
	if err != nil {
		return nil, err
	}
	if !user.CanLogin() {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Authorize decides a per-resource action: acting on one's own record with
// the "own" flag set allows, otherwise the "all" flag must be set. Own is
// evaluated before all.
func (s *AuthService) Authorize(actor *models.User, verb models.Verb, targetID uint) error {
	if actor.ID == targetID && actor.CanOwn(verb) {
		return nil
	}
	if actor.CanAll(verb) {
		return nil
	}
	return ErrInvalidPermissionLevel
}

// MissingPermissions returns the requested wire permission names the user's
// type does not carry, for /auth/verify-token.
func (s *AuthService) MissingPermissions(user *models.User, actions []string) []string {
	var missing []string
	for _, action := range actions {
		if !user.HasPermission(action) {
			missing = append(missing, action)
		}
	}
	return missing
}
