package services

import (
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/backend-template/internal/config"
	"github.com/ahmetcoskunkizilkaya/backend-template/internal/database"
	"github.com/ahmetcoskunkizilkaya/backend-template/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:      "test-secret",
		AccessTokenTTL: time.Hour,
		BcryptCost:     bcrypt.MinCost,
	}
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.UserType{}, &models.User{}))
	require.NoError(t, database.SeedUserTypes(db))
	return db
}

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	cfg := testConfig()
	return NewAuthService(db, NewTokenService(cfg), cfg), db
}

func createUser(t *testing.T, db *gorm.DB, auth *AuthService, email, password, typeTitle string, mutate ...func(*models.User)) *models.User {
	t.Helper()

	var userType models.UserType
	require.NoError(t, db.Where("title = ?", typeTitle).First(&userType).Error)

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		Name:       "John Doe",
		Email:      email,
		Password:   hash,
		IsActive:   true,
		UserTypeID: userType.ID,
		UserType:   userType,
	}
	for _, m := range mutate {
		m(user)
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	auth, _ := newAuthService(t)

	hash, err := auth.HashPassword("P@ssw0rd1")
	require.NoError(t, err)
	assert.NotEqual(t, "P@ssw0rd1", hash)

	assert.True(t, auth.VerifyPassword("P@ssw0rd1", hash))
	assert.False(t, auth.VerifyPassword("wrong", hash))
	assert.False(t, auth.VerifyPassword("P@ssw0rd1", "not-a-bcrypt-hash"))
}

func TestAuthenticate_Success(t *testing.T) {
	t.Parallel()

	auth, db := newAuthService(t)
	created := createUser(t, db, auth, "john@example.com", "P@ssw0rd1", models.TypeUser)

	user, err := auth.Authenticate("john@example.com", "P@ssw0rd1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, models.TypeUser, user.UserType.Title)
}

func TestAuthenticate_NormalizesEmail(t *testing.T) {
	t.Parallel()

	auth, db := newAuthService(t)
	createUser(t, db, auth, "john@example.com", "P@ssw0rd1", models.TypeUser)

	user, err := auth.Authenticate("  John@Example.COM ", "P@ssw0rd1")
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", user.Email)
}

func TestAuthenticate_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		typ      string
		mutate   func(*models.User)
		email    string
		password string
	}{
		{"unknown email", models.TypeUser, nil, "nobody@example.com", "P@ssw0rd1"},
		{"wrong password", models.TypeUser, nil, "john@example.com", "wrong"},
		{"blocked flag", models.TypeUser, func(u *models.User) { u.IsBlocked = true }, "john@example.com", "P@ssw0rd1"},
		{"inactive", models.TypeUser, func(u *models.User) { u.IsActive = false }, "john@example.com", "P@ssw0rd1"},
		{"blocked type", models.TypeBlocked, nil, "john@example.com", "P@ssw0rd1"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			auth, db := newAuthService(t)
			mutations := []func(*models.User){}
			if tt.mutate != nil {
				mutations = append(mutations, tt.mutate)
			}
			createUser(t, db, auth, "john@example.com", "P@ssw0rd1", tt.typ, mutations...)

			_, err := auth.Authenticate(tt.email, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestAuthenticate_SoftDeletedUser(t *testing.T) {
	t.Parallel()

	auth, db := newAuthService(t)
	user := createUser(t, db, auth, "john@example.com", "P@ssw0rd1", models.TypeUser)
	require.NoError(t, db.Delete(user).Error)

	_, err := auth.Authenticate("john@example.com", "P@ssw0rd1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCurrentActiveUser(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	db := newTestDB(t)
	tokens := NewTokenService(cfg)
	auth := NewAuthService(db, tokens, cfg)
	created := createUser(t, db, auth, "john@example.com", "P@ssw0rd1", models.TypeUser)

	token, _, err := tokens.Issue(created.Email)
	require.NoError(t, err)

	user, err := auth.CurrentActiveUser(token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	// A valid token stops working the moment the account is deleted.
	require.NoError(t, db.Delete(created).Error)
	_, err = auth.CurrentActiveUser(token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCurrentUser_UnknownSubject(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	tokens := NewTokenService(cfg)
	auth := NewAuthService(newTestDB(t), tokens, cfg)

	token, _, err := tokens.Issue("ghost@example.com")
	require.NoError(t, err)

	_, err = auth.CurrentUser(token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthorize_OwnAllMatrix(t *testing.T) {
	t.Parallel()

	auth, _ := newAuthService(t)

	actor := func(own, all bool) *models.User {
		return &models.User{
			ID:       7,
			IsActive: true,
			UserType: models.UserType{Title: models.TypeUser, CanReadOwn: own, CanReadAll: all},
		}
	}

	tests := []struct {
		name     string
		actor    *models.User
		targetID uint
		allowed  bool
	}{
		{"own flag, own id", actor(true, false), 7, true},
		{"own flag, other id", actor(true, false), 8, false},
		{"all flag, own id", actor(false, true), 7, true},
		{"all flag, other id", actor(false, true), 8, true},
		{"both flags, other id", actor(true, true), 8, true},
		{"no flags, own id", actor(false, false), 7, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := auth.Authorize(tt.actor, models.VerbRead, tt.targetID)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidPermissionLevel)
			}
		})
	}
}

func TestMissingPermissions(t *testing.T) {
	t.Parallel()

	auth, _ := newAuthService(t)
	user := &models.User{UserType: models.UserType{CanReadOwn: true}}

	assert.Empty(t, auth.MissingPermissions(user, []string{"can_read_own"}))
	assert.Equal(t,
		[]string{"can_read_all", "can_delete_own"},
		auth.MissingPermissions(user, []string{"can_read_own", "can_read_all", "can_delete_own"}),
	)
}
