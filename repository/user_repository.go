package repository

import (
	"errors"
	"fmt"

	"github.com/ManasaYK17/MindPulse-AI/models"

	"gorm.io/gorm"
)

// UserRepository is the store for user accounts.
type UserRepository interface {
	CreateUser(user *models.User) error
	// GetUserByUsername returns (nil, nil) when no such user exists.
	GetUserByUsername(username string) (*models.User, error)
	// GetUserByID returns (nil, nil) when no such user exists.
	GetUserByID(id uint) (*models.User, error)
	// ListRegularUsers returns all non-admin users ordered by id.
	ListRegularUsers() ([]models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user '%s': %w", user.Username, err)
	}
	return nil
}

func (r *userRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user '%s': %w", username, err)
	}
	return &user, nil
}

func (r *userRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %d: %w", id, err)
	}
	return &user, nil
}

func (r *userRepository) ListRegularUsers() ([]models.User, error) {
	var users []models.User
	if err := r.db.Where("is_admin = ?", false).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
