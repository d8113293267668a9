package models

import (
	"time"

	"gorm.io/gorm"
)

// User is the identity record. Email is unique and stored lower-cased;
// deletion is a soft delete (gorm.DeletedAt keeps the row and excludes it
// from queries). Effective permissions are always read live through the
// UserType relation, never copied onto the user.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255;not null;index" json:"name"`
	Email    string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"`

	IsActive  bool `gorm:"not null" json:"is_active"`
	IsBlocked bool `gorm:"not null" json:"is_blocked"`

	UserTypeID uint     `gorm:"not null;index" json:"user_type_id"`
	UserType   UserType `gorm:"foreignKey:UserTypeID" json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
