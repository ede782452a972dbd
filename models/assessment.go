package models

import (
	"time"
)

// QuestionCategory identifies which screening questionnaire a question belongs to.
type QuestionCategory string

const (
	CategoryPHQ9 QuestionCategory = "PHQ9" // 9-item depression screen
	CategoryGAD7 QuestionCategory = "GAD7" // 7-item anxiety screen
)

// AssessmentQuestion is one item of the PHQ-9/GAD-7 questionnaire.
// The global ordering (category, id) is significant: it defines the sequence
// the flow walks through.
type AssessmentQuestion struct {
	ID        uint             `json:"id" gorm:"primaryKey"`
	Text      string           `json:"text" gorm:"not null"`
	Category  QuestionCategory `json:"category" gorm:"index;size:8;not null"`
	CreatedAt time.Time        `json:"created_at"`
}

// RiskLevel is the coarse triage bucket derived from the summed screening scores.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// ScoreResult carries the computed sub-scores and risk classification of a
// finished assessment. It lives in session storage with read-once semantics:
// the result view consumes it exactly once.
type ScoreResult struct {
	PHQ9Score int       `json:"phq9_score"`
	GAD7Score int       `json:"gad7_score"`
	RiskLevel RiskLevel `json:"risk_level"`
}
