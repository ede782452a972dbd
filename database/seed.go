package database

import (
	"log"

	"github.com/ManasaYK17/MindPulse-AI/models"

	"gorm.io/gorm"
)

// SeedQuestions inserts the standard PHQ-9 and GAD-7 items when the question
// table is empty. Admins can add or replace questions afterwards.
func SeedQuestions(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.AssessmentQuestion{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	prefix := "Over the last 2 weeks, how often have you been bothered by "
	phq9 := []string{
		"little interest or pleasure in doing things?",
		"feeling down, depressed, or hopeless?",
		"trouble falling or staying asleep, or sleeping too much?",
		"feeling tired or having little energy?",
		"poor appetite or overeating?",
		"feeling bad about yourself, or that you are a failure, or have let yourself or your family down?",
		"trouble concentrating on things, such as reading or watching television?",
		"moving or speaking so slowly that other people could have noticed? Or the opposite, being fidgety or restless?",
		"thoughts that you would be better off dead, or of hurting yourself in some way?",
	}
	gad7 := []string{
		"feeling nervous, anxious, or on edge?",
		"not being able to stop or control worrying?",
		"worrying too much about different things?",
		"trouble relaxing?",
		"being so restless that it is hard to sit still?",
		"becoming easily annoyed or irritable?",
		"feeling afraid, as if something awful might happen?",
	}

	questions := make([]models.AssessmentQuestion, 0, len(phq9)+len(gad7))
	for _, text := range phq9 {
		questions = append(questions, models.AssessmentQuestion{Text: prefix + text, Category: models.CategoryPHQ9})
	}
	for _, text := range gad7 {
		questions = append(questions, models.AssessmentQuestion{Text: prefix + text, Category: models.CategoryGAD7})
	}

	if err := db.Create(&questions).Error; err != nil {
		return err
	}
	log.Printf("INFO: [Database] Seeded %d assessment questions (PHQ-9: %d, GAD-7: %d).", len(questions), len(phq9), len(gad7))
	return nil
}

// SeedWellnessTemplates inserts a starter set of daily wellness tasks when
// the template table is empty.
func SeedWellnessTemplates(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.TemplateWellnessTask{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tasks := []models.TemplateWellnessTask{
		{Task: "Take a 15-minute walk outside.", Order: 1},
		{Task: "Write down three things you are grateful for.", Order: 2},
		{Task: "Do a 5-minute breathing exercise.", Order: 3},
		{Task: "Reach out to a friend or family member.", Order: 4},
		{Task: "Spend 30 minutes away from all screens.", Order: 5},
	}
	if err := db.Create(&tasks).Error; err != nil {
		return err
	}
	log.Printf("INFO: [Database] Seeded %d wellness task templates.", len(tasks))
	return nil
}
