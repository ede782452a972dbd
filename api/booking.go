package api

import (
	"errors"
	"net/http"

	"github.com/ManasaYK17/MindPulse-AI/middleware"
	"github.com/ManasaYK17/MindPulse-AI/repository"
	"github.com/ManasaYK17/MindPulse-AI/utils"

	"github.com/gin-gonic/gin"
)

// CounselorListHandler lists all counselors.
// GET /api/counselors
func (h *APIHandler) CounselorListHandler(c *gin.Context) {
	counselors, err := h.counselorRepo.ListCounselors()
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to load counselors.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 200, "message": "OK", "data": counselors})
}

// OpenSlotsHandler lists slots still available for booking.
// GET /api/slots
func (h *APIHandler) OpenSlotsHandler(c *gin.Context) {
	slots, err := h.appointmentService.ListOpenSlots()
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to load slots.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 200, "message": "OK", "data": slots})
}

type bookSlotRequest struct {
	SlotID uint `json:"slot_id" binding:"required"`
}

// BookSlotHandler books a slot for the signed-in user. Notification and
// meeting creation failures do not fail the booking.
// POST /api/appointments
func (h *APIHandler) BookSlotHandler(c *gin.Context) {
	var req bookSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}

	appointment, err := h.appointmentService.Book(c.Request.Context(), middleware.UserID(c), req.SlotID)
	if err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			utils.SendJSONError(c, http.StatusConflict, err.Error(), nil)
			return
		}
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to book appointment.", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"code":    201,
		"message": "Appointment booked",
		"data":    appointment,
	})
}

// AppointmentListHandler lists the signed-in user's appointments.
// GET /api/appointments
func (h *APIHandler) AppointmentListHandler(c *gin.Context) {
	appointments, err := h.appointmentService.ListAppointments(middleware.UserID(c))
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to load appointments.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 200, "message": "OK", "data": appointments})
}
