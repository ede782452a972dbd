package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ManasaYK17/MindPulse-AI/models"
	"github.com/ManasaYK17/MindPulse-AI/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) ListOpenSlots() ([]models.AppointmentSlot, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AppointmentSlot), args.Error(1)
}

func (m *MockAppointmentRepository) CreateSlot(slot *models.AppointmentSlot) error {
	args := m.Called(slot)
	return args.Error(0)
}

func (m *MockAppointmentRepository) BookSlot(slotID uint, userID uint) (*models.Appointment, error) {
	args := m.Called(slotID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) ListAppointmentsByUser(userID uint) ([]models.Appointment, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) UpdateAppointment(appointment *models.Appointment) error {
	args := m.Called(appointment)
	return args.Error(0)
}

type stubNotify struct {
	sent []string
	err  error
}

func (s *stubNotify) SendMessage(ctx context.Context, to, text string) error {
	s.sent = append(s.sent, to+": "+text)
	return s.err
}

type stubMeeting struct {
	url string
	err error
}

func (s *stubMeeting) CreateMeeting(ctx context.Context, topic string, start time.Time, durationMinutes int) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}

func bookingFixture() (*MockAppointmentRepository, *MockUserRepository, *stubNotify, *stubMeeting, *models.Appointment) {
	appointments := new(MockAppointmentRepository)
	users := new(MockUserRepository)
	notify := &stubNotify{}
	meeting := &stubMeeting{url: "https://zoom.example/j/123"}

	appointment := &models.Appointment{
		ID:          40,
		UserID:      1,
		CounselorID: 2,
		Counselor:   models.Counselor{ID: 2, Name: "Dr. Mwangi", Contact: "+254700000001"},
		Date:        time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC),
		Status:      models.AppointmentConfirmed,
	}
	users.On("GetUserByID", uint(1)).Return(&models.User{ID: 1, Username: "wanjiku", Phone: "+254711111111"}, nil)
	return appointments, users, notify, meeting, appointment
}

func TestAppointmentService_Book(t *testing.T) {
	appointments, users, notify, meeting, appointment := bookingFixture()
	service := NewAppointmentService(appointments, users, notify, meeting)

	appointments.On("BookSlot", uint(10), uint(1)).Return(appointment, nil)
	appointments.On("UpdateAppointment", appointment).Return(nil)

	booked, err := service.Book(context.Background(), 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, "https://zoom.example/j/123", booked.MeetingURL)

	// Counselor gets the booking notice and the link; user gets the link too.
	assert.Len(t, notify.sent, 3)
	assert.Contains(t, notify.sent[0], "wanjiku")
	assert.Contains(t, notify.sent[1], "https://zoom.example/j/123")
	assert.Contains(t, notify.sent[2], "+254711111111")
	appointments.AssertExpectations(t)
}

func TestAppointmentService_Book_SlotTaken(t *testing.T) {
	appointments, users, notify, meeting, _ := bookingFixture()
	service := NewAppointmentService(appointments, users, notify, meeting)

	appointments.On("BookSlot", uint(10), uint(1)).Return(nil, repository.ErrSlotTaken)

	_, err := service.Book(context.Background(), 1, 10)
	assert.ErrorIs(t, err, repository.ErrSlotTaken)
	assert.Empty(t, notify.sent)
}

func TestAppointmentService_Book_ExternalFailuresDoNotFailBooking(t *testing.T) {
	appointments, users, _, _, appointment := bookingFixture()
	notify := &stubNotify{err: errors.New("whatsapp down")}
	meeting := &stubMeeting{err: errors.New("zoom down")}
	service := NewAppointmentService(appointments, users, notify, meeting)

	appointments.On("BookSlot", uint(10), uint(1)).Return(appointment, nil)

	booked, err := service.Book(context.Background(), 1, 10)
	assert.NoError(t, err)
	assert.Empty(t, booked.MeetingURL)
	appointments.AssertNotCalled(t, "UpdateAppointment", mock.Anything)
}
