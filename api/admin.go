package api

import (
	"net/http"
	"time"

	"github.com/ManasaYK17/MindPulse-AI/middleware"
	"github.com/ManasaYK17/MindPulse-AI/models"
	"github.com/ManasaYK17/MindPulse-AI/utils"

	"github.com/gin-gonic/gin"
)

// AdminUserListHandler lists the non-admin users.
// GET /api/admin/users
func (h *APIHandler) AdminUserListHandler(c *gin.Context) {
	users, err := h.userRepo.ListRegularUsers()
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to load users.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 200, "message": "OK", "data": users})
}

type createQuestionRequest struct {
	Text     string `json:"text" binding:"required"`
	Category string `json:"category" binding:"required"`
}

// AdminCreateQuestionHandler adds an assessment question.
// POST /api/admin/questions
func (h *APIHandler) AdminCreateQuestionHandler(c *gin.Context) {
	var req createQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}

	category := models.QuestionCategory(req.Category)
	if category != models.CategoryPHQ9 && category != models.CategoryGAD7 {
		utils.SendJSONError(c, http.StatusBadRequest, "Category must be PHQ9 or GAD7.", nil)
		return
	}

	question := &models.AssessmentQuestion{Text: req.Text, Category: category}
	if err := h.questionRepo.CreateQuestion(question); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to create question.", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"code": 201, "message": "Question created", "data": question})
}

type createCounselorRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
	Hospital string `json:"hospital"`
	Contact  string `json:"contact" binding:"required"`
}

// AdminCreateCounselorHandler adds a counselor.
// POST /api/admin/counselors
func (h *APIHandler) AdminCreateCounselorHandler(c *gin.Context) {
	var req createCounselorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}

	counselor := &models.Counselor{
		Name:     req.Name,
		Location: req.Location,
		Hospital: req.Hospital,
		Contact:  req.Contact,
	}
	if err := h.counselorRepo.CreateCounselor(counselor); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to create counselor.", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"code": 201, "message": "Counselor created", "data": counselor})
}

type createSlotRequest struct {
	CounselorID uint      `json:"counselor_id" binding:"required"`
	SlotTime    time.Time `json:"slot_time" binding:"required"`
}

// AdminCreateSlotHandler opens a bookable appointment slot.
// POST /api/admin/slots
func (h *APIHandler) AdminCreateSlotHandler(c *gin.Context) {
	var req createSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}

	slot := &models.AppointmentSlot{CounselorID: req.CounselorID, SlotTime: req.SlotTime}
	if err := h.appointmentRepo.CreateSlot(slot); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to create slot.", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"code": 201, "message": "Slot created", "data": slot})
}

type createTemplateRequest struct {
	Task  string `json:"task" binding:"required"`
	Order int    `json:"order"`
}

// AdminCreateTemplateHandler adds a template task to the daily rotation.
// POST /api/admin/wellness/templates
func (h *APIHandler) AdminCreateTemplateHandler(c *gin.Context) {
	var req createTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}

	template := &models.TemplateWellnessTask{Task: req.Task, Order: req.Order}
	if err := h.wellnessRepo.CreateTemplate(template); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to create template task.", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"code": 201, "message": "Template created", "data": template})
}

type assignTaskRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Task   string `json:"task" binding:"required"`
	Date   string `json:"date"` // YYYY-MM-DD, defaults to today
}

// AdminAssignTaskHandler assigns an ad-hoc wellness task to a user.
// POST /api/admin/wellness/assign
func (h *APIHandler) AdminAssignTaskHandler(c *gin.Context) {
	var req assignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}

	day := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			utils.SendJSONError(c, http.StatusBadRequest, "Date must be in YYYY-MM-DD format.", nil)
			return
		}
		day = parsed
	}

	task, err := h.wellnessService.AssignTask(req.Task, middleware.UserID(c), req.UserID, day)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to assign task.", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"code": 201, "message": "Task assigned", "data": task})
}
