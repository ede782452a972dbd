package repository

import (
	"errors"
	"fmt"

	"github.com/ManasaYK17/MindPulse-AI/models"

	"gorm.io/gorm"
)

// ErrSlotTaken is returned when a booking races with another and loses.
var ErrSlotTaken = errors.New("selected slot is no longer available")

// AppointmentRepository is the store for counselor slots and bookings.
type AppointmentRepository interface {
	// ListOpenSlots returns unbooked slots ordered by time, counselor preloaded.
	ListOpenSlots() ([]models.AppointmentSlot, error)
	CreateSlot(slot *models.AppointmentSlot) error
	// BookSlot atomically claims the slot and creates the appointment. It
	// returns ErrSlotTaken when the slot is already booked; nothing partial
	// persists in that case.
	BookSlot(slotID uint, userID uint) (*models.Appointment, error)
	ListAppointmentsByUser(userID uint) ([]models.Appointment, error)
	UpdateAppointment(appointment *models.Appointment) error
}

type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new instance of AppointmentRepository.
func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) ListOpenSlots() ([]models.AppointmentSlot, error) {
	var slots []models.AppointmentSlot
	if err := r.db.Preload("Counselor").Where("is_booked = ?", false).Order("slot_time").Find(&slots).Error; err != nil {
		return nil, fmt.Errorf("failed to list open slots: %w", err)
	}
	return slots, nil
}

func (r *appointmentRepository) CreateSlot(slot *models.AppointmentSlot) error {
	if err := r.db.Create(slot).Error; err != nil {
		return fmt.Errorf("failed to create slot: %w", err)
	}
	return nil
}

func (r *appointmentRepository) BookSlot(slotID uint, userID uint) (*models.Appointment, error) {
	var appointment *models.Appointment
	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Claim the slot with a conditional update so a concurrent booking
		// of the same slot loses cleanly instead of double-booking.
		res := tx.Model(&models.AppointmentSlot{}).
			Where("id = ? AND is_booked = ?", slotID, false).
			Update("is_booked", true)
		if res.Error != nil {
			return fmt.Errorf("failed to claim slot %d: %w", slotID, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrSlotTaken
		}

		var slot models.AppointmentSlot
		if err := tx.Preload("Counselor").First(&slot, slotID).Error; err != nil {
			return fmt.Errorf("failed to load slot %d: %w", slotID, err)
		}

		appointment = &models.Appointment{
			UserID:      userID,
			CounselorID: slot.CounselorID,
			Counselor:   slot.Counselor,
			Date:        slot.SlotTime,
			Status:      models.AppointmentConfirmed,
		}
		if err := tx.Create(appointment).Error; err != nil {
			return fmt.Errorf("failed to create appointment for slot %d: %w", slotID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return appointment, nil
}

func (r *appointmentRepository) ListAppointmentsByUser(userID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := r.db.Preload("Counselor").Where("user_id = ?", userID).Order("date").Find(&appointments).Error; err != nil {
		return nil, fmt.Errorf("failed to list appointments for user %d: %w", userID, err)
	}
	return appointments, nil
}

func (r *appointmentRepository) UpdateAppointment(appointment *models.Appointment) error {
	if err := r.db.Save(appointment).Error; err != nil {
		return fmt.Errorf("failed to update appointment %d: %w", appointment.ID, err)
	}
	return nil
}
