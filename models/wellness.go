package models

import (
	"time"
)

// TemplateWellnessTask is a predefined task handed out to students one per
// day, in `Order` sequence.
type TemplateWellnessTask struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Task  string `json:"task" gorm:"not null"`
	Order int    `json:"order" gorm:"index;not null"`
}

// WellnessTask is a task assigned to a specific student for a specific day.
type WellnessTask struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Task         string    `json:"task" gorm:"not null"`
	AssignedByID *uint     `json:"assigned_by_id,omitempty"` // nil when assigned automatically
	AssignedToID uint      `json:"assigned_to_id" gorm:"index;not null"`
	Date         time.Time `json:"date" gorm:"index;not null"` // day granularity
	Completed    bool      `json:"completed" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"created_at"`
}
