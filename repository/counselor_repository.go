package repository

import (
	"fmt"

	"github.com/ManasaYK17/MindPulse-AI/models"

	"gorm.io/gorm"
)

// CounselorRepository is the store for counselors.
type CounselorRepository interface {
	ListCounselors() ([]models.Counselor, error)
	CreateCounselor(counselor *models.Counselor) error
}

type counselorRepository struct {
	db *gorm.DB
}

// NewCounselorRepository creates a new instance of CounselorRepository.
func NewCounselorRepository(db *gorm.DB) CounselorRepository {
	return &counselorRepository{db: db}
}

func (r *counselorRepository) ListCounselors() ([]models.Counselor, error) {
	var counselors []models.Counselor
	if err := r.db.Order("name").Find(&counselors).Error; err != nil {
		return nil, fmt.Errorf("failed to list counselors: %w", err)
	}
	return counselors, nil
}

func (r *counselorRepository) CreateCounselor(counselor *models.Counselor) error {
	if err := r.db.Create(counselor).Error; err != nil {
		return fmt.Errorf("failed to create counselor: %w", err)
	}
	return nil
}
