package models

import "time"

// Default user type titles. The title column is free text so deployments can
// add their own profiles, but these six are seeded and carry the role
// hierarchy semantics (super_admin ⊇ admin ⊇ internal).
const (
	TypeSuperAdmin = "super_admin"
	TypeAdmin      = "admin"
	TypeInternal   = "internal"
	TypeUser       = "user"
	TypeGuest      = "guest"
	TypeBlocked    = "blocked"
)

// UserType is a named permission profile shared by many users. The eight
// capability flags are not hierarchical: each profile carries exactly the
// flags it needs, nothing is inferred from role rank.
type UserType struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:50;not null;uniqueIndex" json:"title"`
	Description string `gorm:"size:255;not null" json:"description"`

	// No column defaults on the flags: a default tag makes GORM omit explicit
	// false values on insert, which would silently widen restricted profiles.
	// Defaults for absent request fields live in the service layer.
	CanLogin bool `gorm:"not null" json:"can_login"`

	CanCreateOwn bool `gorm:"not null" json:"can_create_own"`
	CanReadOwn   bool `gorm:"not null" json:"can_read_own"`
	CanUpdateOwn bool `gorm:"not null" json:"can_update_own"`
	CanDeleteOwn bool `gorm:"not null" json:"can_delete_own"`

	CanCreateAll bool `gorm:"not null" json:"can_create_all"`
	CanReadAll   bool `gorm:"not null" json:"can_read_all"`
	CanUpdateAll bool `gorm:"not null" json:"can_update_all"`
	CanDeleteAll bool `gorm:"not null" json:"can_delete_all"`

	Users []User `gorm:"foreignKey:UserTypeID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
