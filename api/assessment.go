package api

import (
	"errors"
	"net/http"

	"github.com/ManasaYK17/MindPulse-AI/middleware"
	"github.com/ManasaYK17/MindPulse-AI/models"
	"github.com/ManasaYK17/MindPulse-AI/services"
	"github.com/ManasaYK17/MindPulse-AI/utils"

	"github.com/gin-gonic/gin"
)

// AssessmentStepHandler returns the current step of the assessment flow,
// creating the intro state on first visit.
// GET /api/assessment
func (h *APIHandler) AssessmentStepHandler(c *gin.Context) {
	view, err := h.assessmentService.CurrentStep(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to load assessment.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 200, "message": "OK", "data": view})
}

type assessmentSubmitRequest struct {
	Input string `json:"input"`
}

// AssessmentSubmitHandler feeds one submission into the flow: the intro
// acknowledgement, a digit answer, or free text for the AI assistant.
// POST /api/assessment
func (h *APIHandler) AssessmentSubmitHandler(c *gin.Context) {
	var req assessmentSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}

	view, err := h.assessmentService.Submit(c.Request.Context(), middleware.UserID(c), req.Input)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to process answer.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 200, "message": "OK", "data": view})
}

// AssessmentFinishHandler handles the explicit "view results" signal.
// POST /api/assessment/finish
func (h *APIHandler) AssessmentFinishHandler(c *gin.Context) {
	_, err := h.assessmentService.FinishAssessment(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, services.ErrAssessmentNotFinished) {
			utils.SendJSONError(c, http.StatusBadRequest, "Please answer all questions before viewing results.", nil)
			return
		}
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to compute results.", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/api/assessment/result")
}

// AssessmentResultHandler consumes the stored result (read-once) and
// attaches the downstream affordance for the risk level. Visiting it again
// without a fresh assessment redirects back to the start of the flow.
// GET /api/assessment/result
func (h *APIHandler) AssessmentResultHandler(c *gin.Context) {
	result, err := h.assessmentService.ConsumeResult(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to load results.", err)
		return
	}
	if result == nil {
		c.Redirect(http.StatusSeeOther, "/api/assessment")
		return
	}

	data := gin.H{
		"phq9_score": result.PHQ9Score,
		"gad7_score": result.GAD7Score,
		"risk_level": result.RiskLevel,
	}
	switch result.RiskLevel {
	case models.RiskMedium:
		data["peer_support"] = true
	case models.RiskHigh:
		counselors, err := h.counselorRepo.ListCounselors()
		if err != nil {
			utils.SendJSONError(c, http.StatusInternalServerError, "Failed to load counselors.", err)
			return
		}
		data["counselors"] = counselors
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "message": "Assessment result", "data": data})
}
