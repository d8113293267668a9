package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ahmetcoskunkizilkaya/backend-template/internal/dto"
	"github.com/ahmetcoskunkizilkaya/backend-template/internal/models"
	"gorm.io/gorm"
)

// UserService handles user CRUD. Authorization happens in the handlers; this
// layer only enforces data integrity (email uniqueness, lower-casing, soft
// delete) and delegates to GORM.
type UserService struct {
	db   *gorm.DB
	auth *AuthService
}

func NewUserService(db *gorm.DB, auth *AuthService) *UserService {
	return &UserService{db: db, auth: auth}
}

func (s *UserService) GetAll() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *UserService) Get(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.Preload("UserType").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

func (s *UserService) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Preload("UserType").Where("email = ?", strings.ToLower(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

// Register creates an account with the default "user" type. Self-registration
// is the one operation reachable without a prior token.
func (s *UserService) Register(req *dto.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	slog.Info("registering user", "email", email)

	// The unique index covers soft-deleted rows, so the conflict check must
	// look at them too or the insert fails on the index instead.
	var existing models.User
	if err := s.db.Unscoped().Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	var userType models.UserType
	if err := s.db.Where("title = ?", models.TypeUser).First(&userType).Error; err != nil {
		return nil, fmt.Errorf("default user type missing: %w", err)
	}

	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:       strings.TrimSpace(req.Name),
		Email:      email,
		Password:   hash,
		IsActive:   true,
		UserTypeID: userType.ID,
		UserType:   userType,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// Update overwrites only the provided fields. A new email is lower-cased and
// must not belong to another account.
func (s *UserService) Update(id uint, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}

	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		var other models.User
		if err := s.db.Unscoped().Where("email = ? AND id <> ?", email, id).First(&other).Error; err == nil {
			return nil, ErrEmailTaken
		}
		updates["email"] = email
	}
	if req.Password != nil {
		hash, err := s.auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		updates["password"] = hash
	}

	if len(updates) == 0 {
		return user, nil
	}

	if err := s.db.Model(user).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// Delete soft-deletes the user: the deleted_at timestamp is set and the row
// disappears from every query. Deleting an already-deleted or unknown id is
// ErrUserNotFound.
func (s *UserService) Delete(id uint) error {
	user, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(user).Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	slog.Info("user deleted", "user_id", id)
	return nil
}
