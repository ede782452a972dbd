package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/ManasaYK17/MindPulse-AI/api"
	"github.com/ManasaYK17/MindPulse-AI/config"
	"github.com/ManasaYK17/MindPulse-AI/database"
	"github.com/ManasaYK17/MindPulse-AI/middleware"
	"github.com/ManasaYK17/MindPulse-AI/repository"
	"github.com/ManasaYK17/MindPulse-AI/services"
	"github.com/ManasaYK17/MindPulse-AI/session"
)

func main() {
	config.LoadConfig()

	db, err := database.Init()
	if err != nil {
		log.Fatalf("FATAL: [Main] Failed to initialize database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("FATAL: [Main] Failed to auto-migrate database: %v", err)
	}
	if err := database.SeedQuestions(db); err != nil {
		log.Fatalf("FATAL: [Main] Failed to seed assessment questions: %v", err)
	}
	if err := database.SeedWellnessTemplates(db); err != nil {
		log.Fatalf("FATAL: [Main] Failed to seed wellness templates: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.Redis.Addr,
		Password: config.AppConfig.Redis.Password,
		DB:       config.AppConfig.Redis.DB,
	})
	sessionStore := session.NewRedisStore(redisClient, config.SessionTTL())
	log.Printf("INFO: [Main] Session store connected to Redis at %s.", config.AppConfig.Redis.Addr)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	counselorRepo := repository.NewCounselorRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	peerRepo := repository.NewPeerChatRepository(db)
	wellnessRepo := repository.NewWellnessRepository(db)
	log.Println("INFO: [Main] Repositories initialized.")

	// Services
	assistService := services.NewAssistService(
		config.AppConfig.LLM.APIKey,
		config.AppConfig.LLM.BaseURL,
		config.AppConfig.LLM.Model,
		config.AssistTimeout(),
	)
	notifyService := services.NewNotifyService(
		config.AppConfig.WhatsApp.BaseURL,
		config.AppConfig.WhatsApp.Token,
		config.AppConfig.WhatsApp.Sender,
	)
	meetingService := services.NewMeetingService(
		config.AppConfig.Zoom.BaseURL,
		config.AppConfig.Zoom.Token,
	)
	authService := services.NewAuthService(userRepo, sessionStore)
	assessmentService := services.NewAssessmentService(questionRepo, sessionStore, assistService)
	chatService := services.NewChatService(assistService, sessionStore)
	peerService := services.NewPeerService(peerRepo, userRepo)
	appointmentService := services.NewAppointmentService(appointmentRepo, userRepo, notifyService, meetingService)
	wellnessService := services.NewWellnessService(wellnessRepo)
	log.Println("INFO: [Main] Services initialized.")

	apiHandler := api.NewAPIHandler(
		authService,
		assessmentService,
		chatService,
		peerService,
		appointmentService,
		wellnessService,
		questionRepo,
		counselorRepo,
		userRepo,
		appointmentRepo,
		wellnessRepo,
	)
	log.Println("INFO: [Main] API Handler initialized.")

	r := gin.New()
	r.SetTrustedProxies(nil)
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	log.Println("INFO: [Main] Middlewares registered.")

	registerRoutes(r, apiHandler, authService)
	log.Println("INFO: [Main] Routes registered.")

	serverPort := ":" + config.AppConfig.Server.Port
	log.Printf("INFO: [Main] Starting server on port %s", serverPort)
	if err := r.Run(serverPort); err != nil {
		log.Fatalf("FATAL: [Main] Server failed to start: %v", err)
	}
}

func registerRoutes(r *gin.Engine, handler *api.APIHandler, authService services.AuthService) {
	apiGroup := r.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", handler.RegisterHandler)
			authGroup.POST("/login", handler.LoginHandler)
			authGroup.POST("/logout", handler.LogoutHandler)
		}

		// Everything past this point needs a signed-in user.
		authed := apiGroup.Group("")
		authed.Use(middleware.RequireAuth(authService))
		{
			authed.GET("/assessment", handler.AssessmentStepHandler)
			authed.POST("/assessment", handler.AssessmentSubmitHandler)
			authed.POST("/assessment/finish", handler.AssessmentFinishHandler)
			authed.GET("/assessment/result", handler.AssessmentResultHandler)

			authed.GET("/recommendations", handler.RecommendationsHandler)

			authed.POST("/chatbot", handler.ChatbotHandler)
			authed.POST("/future-self", handler.FutureSelfHandler)

			authed.GET("/peer-support", handler.PeerSupportHandler)
			authed.POST("/peer-support/messages", handler.PeerMessageHandler)

			authed.GET("/counselors", handler.CounselorListHandler)
			authed.GET("/slots", handler.OpenSlotsHandler)
			authed.GET("/appointments", handler.AppointmentListHandler)
			authed.POST("/appointments", handler.BookSlotHandler)

			authed.GET("/wellness/today", handler.TodayTaskHandler)
			authed.GET("/wellness/tasks", handler.WellnessTaskListHandler)
			authed.POST("/wellness/tasks/:id/complete", handler.CompleteTaskHandler)

			adminGroup := authed.Group("/admin")
			adminGroup.Use(middleware.RequireAdmin())
			{
				adminGroup.GET("/users", handler.AdminUserListHandler)
				adminGroup.POST("/questions", handler.AdminCreateQuestionHandler)
				adminGroup.POST("/counselors", handler.AdminCreateCounselorHandler)
				adminGroup.POST("/slots", handler.AdminCreateSlotHandler)
				adminGroup.POST("/wellness/templates", handler.AdminCreateTemplateHandler)
				adminGroup.POST("/wellness/assign", handler.AdminAssignTaskHandler)
			}
		}
	}
}
