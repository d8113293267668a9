package services

import (
	"testing"

	"github.com/ahmetcoskunkizilkaya/backend-template/internal/database"
	"github.com/ahmetcoskunkizilkaya/backend-template/internal/dto"
	"github.com/ahmetcoskunkizilkaya/backend-template/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolptr(b bool) *bool { return &b }

func TestUserTypeGetAll_Seeded(t *testing.T) {
	t.Parallel()

	svc := NewUserTypeService(newTestDB(t))

	types, err := svc.GetAll()
	require.NoError(t, err)
	assert.Len(t, types, len(database.DefaultUserTypes))

	titles := make(map[string]bool)
	for _, ut := range types {
		titles[ut.Title] = true
	}
	for _, want := range []string{
		models.TypeSuperAdmin, models.TypeAdmin, models.TypeInternal,
		models.TypeUser, models.TypeGuest, models.TypeBlocked,
	} {
		assert.True(t, titles[want], want)
	}
}

func TestUserTypeCreate(t *testing.T) {
	t.Parallel()

	svc := NewUserTypeService(newTestDB(t))

	created, err := svc.Create(&dto.UserTypeRequest{
		Title:        "  Auditor ",
		Description:  "Read-only access to everything",
		CanReadAll:   boolptr(true),
		CanUpdateOwn: boolptr(false),
		CanDeleteOwn: boolptr(false),
	})
	require.NoError(t, err)

	assert.Equal(t, "auditor", created.Title, "title is normalized")
	assert.True(t, created.CanLogin, "unset flags take their defaults")
	assert.True(t, created.CanReadAll)
	assert.False(t, created.CanUpdateOwn)
	assert.False(t, created.CanCreateAll)
}

func TestUserTypeCreate_DuplicateTitle(t *testing.T) {
	t.Parallel()

	svc := NewUserTypeService(newTestDB(t))

	_, err := svc.Create(&dto.UserTypeRequest{
		Title: "Admin", Description: "duplicate of the seeded profile",
	})
	assert.ErrorIs(t, err, ErrTitleTaken)
}

func TestUserTypeUpdate_AppliesImmediatelyToUsers(t *testing.T) {
	t.Parallel()

	auth, db := newAuthService(t)
	svc := NewUserTypeService(db)
	users := NewUserService(db, auth)

	user, err := users.Register(&dto.RegisterRequest{
		Name: "John Doe", Email: "john@example.com", Password: "P@ssw0rd1",
	})
	require.NoError(t, err)

	// Grant read-all to the whole "user" profile.
	_, err = svc.Update(user.UserTypeID, &dto.UserTypeRequest{
		Title:       models.TypeUser,
		Description: "Standard registered user, manages own data",
		CanReadAll:  boolptr(true),
	})
	require.NoError(t, err)

	// Permissions are read live through the relation.
	reloaded, err := users.Get(user.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.CanAll(models.VerbRead))
}

func TestUserTypeDelete(t *testing.T) {
	t.Parallel()

	svc := NewUserTypeService(newTestDB(t))

	created, err := svc.Create(&dto.UserTypeRequest{
		Title: "temporary", Description: "about to disappear",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))
	_, err = svc.Get(created.ID)
	assert.ErrorIs(t, err, ErrUserTypeNotFound)

	assert.ErrorIs(t, svc.Delete(created.ID), ErrUserTypeNotFound)
}
