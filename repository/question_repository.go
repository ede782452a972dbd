package repository

import (
	"fmt"

	"github.com/ManasaYK17/MindPulse-AI/models"

	"gorm.io/gorm"
)

// QuestionRepository is the read/write store for assessment questions.
type QuestionRepository interface {
	// ListQuestions returns all questions ordered by (category, id). This
	// ordering defines the sequence the assessment flow walks through.
	ListQuestions() ([]models.AssessmentQuestion, error)
	CreateQuestion(question *models.AssessmentQuestion) error
}

type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a new instance of QuestionRepository.
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) ListQuestions() ([]models.AssessmentQuestion, error) {
	var questions []models.AssessmentQuestion
	if err := r.db.Order("category, id").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to list assessment questions: %w", err)
	}
	return questions, nil
}

func (r *questionRepository) CreateQuestion(question *models.AssessmentQuestion) error {
	if err := r.db.Create(question).Error; err != nil {
		return fmt.Errorf("failed to create assessment question: %w", err)
	}
	return nil
}
