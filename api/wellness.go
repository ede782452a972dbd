package api

import (
	"errors"
	"net/http"

	"github.com/ManasaYK17/MindPulse-AI/middleware"
	"github.com/ManasaYK17/MindPulse-AI/services"
	"github.com/ManasaYK17/MindPulse-AI/utils"

	"github.com/gin-gonic/gin"
)

// TodayTaskHandler returns (assigning on first visit) today's wellness task.
// GET /api/wellness/today
func (h *APIHandler) TodayTaskHandler(c *gin.Context) {
	task, err := h.wellnessService.TodayTask(middleware.UserID(c))
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to load today's task.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 200, "message": "OK", "data": task})
}

// WellnessTaskListHandler lists all of the user's wellness tasks.
// GET /api/wellness/tasks
func (h *APIHandler) WellnessTaskListHandler(c *gin.Context) {
	tasks, err := h.wellnessService.ListTasks(middleware.UserID(c))
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to load tasks.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 200, "message": "OK", "data": tasks})
}

// CompleteTaskHandler marks one of the user's tasks as completed.
// POST /api/wellness/tasks/:id/complete
func (h *APIHandler) CompleteTaskHandler(c *gin.Context) {
	taskID, err := parseUint(c.Param("id"))
	if err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	task, err := h.wellnessService.MarkCompleted(taskID, middleware.UserID(c))
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			utils.SendJSONError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to update task.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 200, "message": "Task completed", "data": task})
}
