package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/ManasaYK17/MindPulse-AI/models"

	"gorm.io/gorm"
)

// WellnessRepository is the store for wellness task templates and assignments.
type WellnessRepository interface {
	CountAssignedTasks(userID uint) (int64, error)
	// NextTemplate returns the template at the given position in order, or
	// (nil, nil) when the sequence is exhausted.
	NextTemplate(offset int) (*models.TemplateWellnessTask, error)
	TaskExistsForDay(userID uint, day time.Time, task string) (bool, error)
	CreateTask(task *models.WellnessTask) error
	// TaskForDay returns the user's task for the given day, or (nil, nil).
	TaskForDay(userID uint, day time.Time) (*models.WellnessTask, error)
	ListTasksByUser(userID uint) ([]models.WellnessTask, error)
	// GetTask returns (nil, nil) when no such task exists.
	GetTask(taskID uint) (*models.WellnessTask, error)
	UpdateTask(task *models.WellnessTask) error
	CreateTemplate(template *models.TemplateWellnessTask) error
}

type wellnessRepository struct {
	db *gorm.DB
}

// NewWellnessRepository creates a new instance of WellnessRepository.
func NewWellnessRepository(db *gorm.DB) WellnessRepository {
	return &wellnessRepository{db: db}
}

// dayRange normalizes a timestamp to the [midnight, next midnight) interval
// so "today's task" matches regardless of time-of-day.
func dayRange(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 0, 1)
}

func (r *wellnessRepository) CountAssignedTasks(userID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.WellnessTask{}).Where("assigned_to_id = ?", userID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tasks for user %d: %w", userID, err)
	}
	return count, nil
}

func (r *wellnessRepository) NextTemplate(offset int) (*models.TemplateWellnessTask, error) {
	var template models.TemplateWellnessTask
	err := r.db.Order("`order`").Offset(offset).First(&template).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch template at offset %d: %w", offset, err)
	}
	return &template, nil
}

func (r *wellnessRepository) TaskExistsForDay(userID uint, day time.Time, task string) (bool, error) {
	start, end := dayRange(day)
	var count int64
	err := r.db.Model(&models.WellnessTask{}).
		Where("assigned_to_id = ? AND task = ? AND date >= ? AND date < ?", userID, task, start, end).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check task for user %d: %w", userID, err)
	}
	return count > 0, nil
}

func (r *wellnessRepository) CreateTask(task *models.WellnessTask) error {
	if err := r.db.Create(task).Error; err != nil {
		return fmt.Errorf("failed to create wellness task: %w", err)
	}
	return nil
}

func (r *wellnessRepository) TaskForDay(userID uint, day time.Time) (*models.WellnessTask, error) {
	start, end := dayRange(day)
	var task models.WellnessTask
	err := r.db.Where("assigned_to_id = ? AND date >= ? AND date < ?", userID, start, end).First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch today's task for user %d: %w", userID, err)
	}
	return &task, nil
}

func (r *wellnessRepository) ListTasksByUser(userID uint) ([]models.WellnessTask, error) {
	var tasks []models.WellnessTask
	if err := r.db.Where("assigned_to_id = ?", userID).Order("date DESC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks for user %d: %w", userID, err)
	}
	return tasks, nil
}

func (r *wellnessRepository) GetTask(taskID uint) (*models.WellnessTask, error) {
	var task models.WellnessTask
	err := r.db.First(&task, taskID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch task %d: %w", taskID, err)
	}
	return &task, nil
}

func (r *wellnessRepository) UpdateTask(task *models.WellnessTask) error {
	if err := r.db.Save(task).Error; err != nil {
		return fmt.Errorf("failed to update task %d: %w", task.ID, err)
	}
	return nil
}

func (r *wellnessRepository) CreateTemplate(template *models.TemplateWellnessTask) error {
	if err := r.db.Create(template).Error; err != nil {
		return fmt.Errorf("failed to create task template: %w", err)
	}
	return nil
}
