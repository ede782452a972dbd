package models

import (
	"time"
)

// Counselor is a bookable mental-health professional.
type Counselor struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Location  string    `json:"location"`
	Hospital  string    `json:"hospital"`
	Contact   string    `json:"contact"` // WhatsApp-reachable phone number
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppointmentSlot is a counselor's bookable time slot.
type AppointmentSlot struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CounselorID uint      `json:"counselor_id" gorm:"index;not null"`
	Counselor   Counselor `json:"counselor"`
	SlotTime    time.Time `json:"slot_time" gorm:"index;not null"`
	IsBooked    bool      `json:"is_booked" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"created_at"`
}

// AppointmentStatus is the lifecycle state of a booked appointment.
type AppointmentStatus string

const (
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment is a confirmed counseling session for a student.
type Appointment struct {
	ID          uint              `json:"id" gorm:"primaryKey"`
	UserID      uint              `json:"user_id" gorm:"index;not null"`
	CounselorID uint              `json:"counselor_id" gorm:"not null"`
	Counselor   Counselor         `json:"counselor"`
	Date        time.Time         `json:"date" gorm:"not null"`
	Status      AppointmentStatus `json:"status" gorm:"size:16;not null"`
	MeetingURL  string            `json:"meeting_url,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}
