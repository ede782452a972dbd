package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/ManasaYK17/MindPulse-AI/repository"
	"github.com/ManasaYK17/MindPulse-AI/services"

	"github.com/gin-gonic/gin"
)

// APIHandler holds all dependencies for API handlers.
type APIHandler struct {
	authService        services.AuthService
	assessmentService  services.AssessmentService
	chatService        services.ChatService
	peerService        services.PeerService
	appointmentService services.AppointmentService
	wellnessService    services.WellnessService
	questionRepo       repository.QuestionRepository
	counselorRepo      repository.CounselorRepository
	userRepo           repository.UserRepository
	appointmentRepo    repository.AppointmentRepository
	wellnessRepo       repository.WellnessRepository
}

// NewAPIHandler creates a new APIHandler with necessary dependencies.
func NewAPIHandler(
	authService services.AuthService,
	assessmentService services.AssessmentService,
	chatService services.ChatService,
	peerService services.PeerService,
	appointmentService services.AppointmentService,
	wellnessService services.WellnessService,
	questionRepo repository.QuestionRepository,
	counselorRepo repository.CounselorRepository,
	userRepo repository.UserRepository,
	appointmentRepo repository.AppointmentRepository,
	wellnessRepo repository.WellnessRepository,
) *APIHandler {
	return &APIHandler{
		authService:        authService,
		assessmentService:  assessmentService,
		chatService:        chatService,
		peerService:        peerService,
		appointmentService: appointmentService,
		wellnessService:    wellnessService,
		questionRepo:       questionRepo,
		counselorRepo:      counselorRepo,
		userRepo:           userRepo,
		appointmentRepo:    appointmentRepo,
		wellnessRepo:       wellnessRepo,
	}
}

// RecommendationsHandler returns the self-help content offered to low-risk
// (and all other) users.
// GET /api/recommendations
func (h *APIHandler) RecommendationsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "Recommendations retrieved successfully",
		"data": gin.H{
			"relaxation_tips": []string{
				"Practice deep breathing for 5 minutes.",
				"Take short breaks between study sessions.",
				"Keep a consistent sleep schedule.",
			},
			"meditation_videos": []string{
				"https://www.youtube.com/watch?v=inpok4MKVLM",
				"https://www.youtube.com/watch?v=ZToicYcHIOU",
			},
			"mental_exercises": []string{
				"Write down three things that went well today.",
				"Name five things you can see, four you can hear, three you can touch.",
			},
		},
	})
}

// parseUint parses a numeric path parameter.
func parseUint(s string) (uint, error) {
	u, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric ID: %s", s)
	}
	return uint(u), nil
}
