package database

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/backend-template/internal/models"
	"gorm.io/gorm"
)

// DefaultUserTypes are the permission profiles seeded on startup:
// super_admin and admin hold the full matrix, internal can additionally read
// everything, user manages only its own record, guest can only read its own,
// blocked cannot even log in.
var DefaultUserTypes = []models.UserType{
	{
		Title:       models.TypeSuperAdmin,
		Description: "Super administrator with all permissions",
		CanLogin:    true,
		CanCreateOwn: true, CanReadOwn: true, CanUpdateOwn: true, CanDeleteOwn: true,
		CanCreateAll: true, CanReadAll: true, CanUpdateAll: true, CanDeleteAll: true,
	},
	{
		Title:       models.TypeAdmin,
		Description: "Administrator with full read and write access",
		CanLogin:    true,
		CanCreateOwn: true, CanReadOwn: true, CanUpdateOwn: true, CanDeleteOwn: true,
		CanCreateAll: true, CanReadAll: true, CanUpdateAll: true, CanDeleteAll: true,
	},
	{
		Title:       models.TypeInternal,
		Description: "Internal staff, can read all data",
		CanLogin:    true,
		CanCreateOwn: true, CanReadOwn: true, CanUpdateOwn: true, CanDeleteOwn: true,
		CanReadAll: true,
	},
	{
		Title:       models.TypeUser,
		Description: "Standard registered user, manages own data",
		CanLogin:    true,
		CanCreateOwn: true, CanReadOwn: true, CanUpdateOwn: true, CanDeleteOwn: true,
	},
	{
		Title:       models.TypeGuest,
		Description: "Guest with read-only access to own data",
		CanLogin:    true,
		CanReadOwn:  true,
	},
	{
		Title:       models.TypeBlocked,
		Description: "Blocked user with no access",
		CanLogin:    false,
	},
}

// SeedUserTypes inserts the default user types that do not exist yet.
// Existing rows are left untouched so administrative edits survive restarts.
func SeedUserTypes(db *gorm.DB) error {
	seeded := 0

	for _, ut := range DefaultUserTypes {
		var existing models.UserType
		err := db.Where("title = ?", ut.Title).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&ut).Error; err != nil {
			return err
		}
		seeded++
	}

	if seeded > 0 {
		slog.Info("seeded user types", "new", seeded, "total", len(DefaultUserTypes))
	}
	return nil
}
