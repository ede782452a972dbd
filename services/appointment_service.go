package services

import (
	"context"
	"fmt"
	"log"

	"github.com/ManasaYK17/MindPulse-AI/models"
	"github.com/ManasaYK17/MindPulse-AI/repository"
)

// AppointmentService lists counselor slots and books counseling sessions.
type AppointmentService interface {
	ListOpenSlots() ([]models.AppointmentSlot, error)
	ListAppointments(userID uint) ([]models.Appointment, error)
	// Book claims the slot for the user, then notifies the counselor over
	// WhatsApp and creates a Zoom meeting. The booking itself is
	// transactional; the external calls are best-effort and never fail the
	// booking. Returns repository.ErrSlotTaken when the slot was claimed
	// first by someone else.
	Book(ctx context.Context, userID uint, slotID uint) (*models.Appointment, error)
}

type appointmentService struct {
	appointments repository.AppointmentRepository
	users        repository.UserRepository
	notify       NotifyService
	meetings     MeetingService
}

// NewAppointmentService creates a new instance of AppointmentService.
func NewAppointmentService(
	appointments repository.AppointmentRepository,
	users repository.UserRepository,
	notify NotifyService,
	meetings MeetingService,
) AppointmentService {
	return &appointmentService{
		appointments: appointments,
		users:        users,
		notify:       notify,
		meetings:     meetings,
	}
}

func (s *appointmentService) ListOpenSlots() ([]models.AppointmentSlot, error) {
	return s.appointments.ListOpenSlots()
}

func (s *appointmentService) ListAppointments(userID uint) ([]models.Appointment, error) {
	return s.appointments.ListAppointmentsByUser(userID)
}

func (s *appointmentService) Book(ctx context.Context, userID uint, slotID uint) (*models.Appointment, error) {
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %d not found", userID)
	}

	appointment, err := s.appointments.BookSlot(slotID, userID)
	if err != nil {
		return nil, err
	}
	log.Printf("INFO: [AppointmentService] User %d booked slot %d with counselor %d at %s.",
		userID, slotID, appointment.CounselorID, appointment.Date.Format("2006-01-02 15:04"))

	counselor := appointment.Counselor
	notice := fmt.Sprintf("You have a new booking with %s on %s.", user.Username, appointment.Date.Format("2006-01-02 15:04"))
	if err := s.notify.SendMessage(ctx, counselor.Contact, notice); err != nil {
		log.Printf("WARN: [AppointmentService] Failed to notify counselor %d: %v", counselor.ID, err)
	}

	topic := fmt.Sprintf("Counseling Session: %s", user.Username)
	meetingURL, err := s.meetings.CreateMeeting(ctx, topic, appointment.Date, 30)
	if err != nil {
		log.Printf("WARN: [AppointmentService] Failed to create meeting for appointment %d: %v", appointment.ID, err)
		return appointment, nil
	}

	appointment.MeetingURL = meetingURL
	if err := s.appointments.UpdateAppointment(appointment); err != nil {
		log.Printf("WARN: [AppointmentService] Failed to store meeting URL on appointment %d: %v", appointment.ID, err)
	}
	if err := s.notify.SendMessage(ctx, counselor.Contact, "Zoom meeting link: "+meetingURL); err != nil {
		log.Printf("WARN: [AppointmentService] Failed to send meeting link to counselor %d: %v", counselor.ID, err)
	}
	if user.Phone != "" {
		if err := s.notify.SendMessage(ctx, user.Phone, "Your counseling session Zoom link: "+meetingURL); err != nil {
			log.Printf("WARN: [AppointmentService] Failed to send meeting link to user %d: %v", userID, err)
		}
	}
	return appointment, nil
}
