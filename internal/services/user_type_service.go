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

// UserTypeService administers permission profiles. Title is unique across
// rows; users always read their effective permissions live through the
// relation, so edits here apply immediately.
type UserTypeService struct {
	db *gorm.DB
}

func NewUserTypeService(db *gorm.DB) *UserTypeService {
	return &UserTypeService{db: db}
}

func (s *UserTypeService) GetAll() ([]models.UserType, error) {
	var types []models.UserType
	if err := s.db.Order("id").Find(&types).Error; err != nil {
		return nil, fmt.Errorf("failed to list user types: %w", err)
	}
	return types, nil
}

func (s *UserTypeService) Get(id uint) (*models.UserType, error) {
	var userType models.UserType
	if err := s.db.First(&userType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserTypeNotFound
		}
		return nil, fmt.Errorf("failed to load user type: %w", err)
	}
	return &userType, nil
}

func (s *UserTypeService) Create(req *dto.UserTypeRequest) (*models.UserType, error) {
	title := strings.ToLower(strings.TrimSpace(req.Title))

	var existing models.UserType
	if err := s.db.Where("title = ?", title).First(&existing).Error; err == nil {
		return nil, ErrTitleTaken
	}

	userType := models.UserType{
		Title:       title,
		Description: strings.TrimSpace(req.Description),

		CanLogin: dto.BoolOr(req.CanLogin, true),

		CanCreateOwn: dto.BoolOr(req.CanCreateOwn, true),
		CanReadOwn:   dto.BoolOr(req.CanReadOwn, true),
		CanUpdateOwn: dto.BoolOr(req.CanUpdateOwn, true),
		CanDeleteOwn: dto.BoolOr(req.CanDeleteOwn, true),

		CanCreateAll: dto.BoolOr(req.CanCreateAll, false),
		CanReadAll:   dto.BoolOr(req.CanReadAll, false),
		CanUpdateAll: dto.BoolOr(req.CanUpdateAll, false),
		CanDeleteAll: dto.BoolOr(req.CanDeleteAll, false),
	}

	if err := s.db.Create(&userType).Error; err != nil {
		return nil, fmt.Errorf("failed to create user type: %w", err)
	}
	slog.Info("user type created", "title", userType.Title)
	return &userType, nil
}

func (s *UserTypeService) Update(id uint, req *dto.UserTypeRequest) (*models.UserType, error) {
	userType, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	title := strings.ToLower(strings.TrimSpace(req.Title))
	var other models.UserType
	if err := s.db.Where("title = ? AND id <> ?", title, id).First(&other).Error; err == nil {
		return nil, ErrTitleTaken
	}

	userType.Title = title
	userType.Description = strings.TrimSpace(req.Description)
	userType.CanLogin = dto.BoolOr(req.CanLogin, userType.CanLogin)
	userType.CanCreateOwn = dto.BoolOr(req.CanCreateOwn, userType.CanCreateOwn)
	userType.CanReadOwn = dto.BoolOr(req.CanReadOwn, userType.CanReadOwn)
	userType.CanUpdateOwn = dto.BoolOr(req.CanUpdateOwn, userType.CanUpdateOwn)
	userType.CanDeleteOwn = dto.BoolOr(req.CanDeleteOwn, userType.CanDeleteOwn)
	userType.CanCreateAll = dto.BoolOr(req.CanCreateAll, userType.CanCreateAll)
	userType.CanReadAll = dto.BoolOr(req.CanReadAll, userType.CanReadAll)
	userType.CanUpdateAll = dto.BoolOr(req.CanUpdateAll, userType.CanUpdateAll)
	userType.CanDeleteAll = dto.BoolOr(req.CanDeleteAll, userType.CanDeleteAll)

	if err := s.db.Save(userType).Error; err != nil {
		return nil, fmt.Errorf("failed to update user type: %w", err)
	}
	return userType, nil
}

func (s *UserTypeService) Delete(id uint) error {
	userType, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(userType).Error; err != nil {
		return fmt.Errorf("failed to delete user type: %w", err)
	}
	return nil
}
