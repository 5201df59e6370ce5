package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/talentgrid/interview-management-api/internal/config"
	"github.com/talentgrid/interview-management-api/internal/constants"
	"github.com/talentgrid/interview-management-api/internal/database"
	"github.com/talentgrid/interview-management-api/internal/handlers"
	"github.com/talentgrid/interview-management-api/internal/middleware"
	"github.com/talentgrid/interview-management-api/internal/models"
	"github.com/talentgrid/interview-management-api/internal/repository"
	"github.com/talentgrid/interview-management-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations and seed defaults
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.Seed(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// CORS for the SPA front end
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.AllowedOrigin}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // username (empty for default user)
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	// Configure session options based on environment
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	db := database.GetDB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	candidateRepo := repository.NewCandidateRepository(db)
	interviewRepo := repository.NewInterviewRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)

	// Notifier: SMTP when configured, logging fallback otherwise
	var notifier services.Notifier = services.LogNotifier{}
	if cfg.SMTPHost != "" {
		notifier = services.NewSMTPNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom)
	}

	// AI question drafting is optional
	var aiService *services.AIService
	if cfg.OpenAIAPIKey != "" {
		aiService = services.NewAIService(cfg.OpenAIAPIKey)
	}

	// Services
	authService := services.NewAuthService(userRepo)
	questionService := services.NewQuestionService(questionRepo)
	candidateService := services.NewCandidateService(candidateRepo)
	interviewService := services.NewInterviewService(interviewRepo, candidateRepo, questionRepo)
	applicationService := services.NewApplicationService(applicationRepo, candidateRepo, notifier)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(authService)
	questionHandler := handlers.NewQuestionHandler(questionService, aiService)
	candidateHandler := handlers.NewCandidateHandler(candidateService)
	interviewHandler := handlers.NewInterviewHandler(interviewService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	uploadHandler := handlers.NewUploadHandler(cfg.UploadDir)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Interview Management API is running",
		})
	})

	staffRoles := []models.Role{models.RoleAdmin, models.RoleHR, models.RoleTechnicalInterviewer, models.RoleDirector}
	hrRoles := []models.Role{models.RoleAdmin, models.RoleHR}
	scoringRoles := []models.Role{models.RoleAdmin, models.RoleHR, models.RoleTechnicalInterviewer}

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
			auth.PUT("/password", middleware.RequireAuth(), authHandler.ChangePassword)
		}

		// Public job board
		public := api.Group("/public")
		{
			public.GET("/positions", applicationHandler.ListOpenPositions)
			public.POST("/applications", applicationHandler.SubmitApplication)
			public.POST("/uploads/resumes", uploadHandler.UploadResume)
		}

		// User management (admin only)
		users := api.Group("/users")
		users.Use(middleware.RequireAuth(), middleware.RequireRoles(models.RoleAdmin))
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		// Question bank
		questions := api.Group("/questions")
		questions.Use(middleware.RequireAuth())
		{
			questions.GET("", middleware.RequireRoles(staffRoles...), questionHandler.ListQuestions)
			questions.GET("/random", middleware.RequireRoles(scoringRoles...), questionHandler.GetRandomQuestions)
			questions.GET("/:id", middleware.RequireRoles(staffRoles...), questionHandler.GetQuestion)
			questions.POST("", middleware.RequireRoles(scoringRoles...), questionHandler.CreateQuestion)
			questions.POST("/suggest", middleware.RequireRoles(scoringRoles...), questionHandler.SuggestQuestions)
			questions.PUT("/:id", middleware.RequireRoles(scoringRoles...), questionHandler.UpdateQuestion)
			questions.DELETE("/:id", middleware.RequireRoles(hrRoles...), questionHandler.DeleteQuestion)
		}

		// Lookup tables
		api.GET("/lookups", middleware.RequireAuth(), questionHandler.ListLookups)

		// Candidates (HR)
		candidates := api.Group("/candidates")
		candidates.Use(middleware.RequireAuth())
		{
			candidates.GET("", middleware.RequireRoles(staffRoles...), candidateHandler.ListCandidates)
			candidates.GET("/:id", middleware.RequireRoles(staffRoles...), candidateHandler.GetCandidate)
			candidates.POST("", middleware.RequireRoles(hrRoles...), candidateHandler.CreateCandidate)
			candidates.PUT("/:id", middleware.RequireRoles(hrRoles...), candidateHandler.UpdateCandidate)
			candidates.DELETE("/:id", middleware.RequireRoles(hrRoles...), candidateHandler.DeleteCandidate)
		}

		// Interviews
		interviews := api.Group("/interviews")
		interviews.Use(middleware.RequireAuth())
		{
			interviews.GET("", interviewHandler.ListInterviews)
			interviews.POST("", middleware.RequireRoles(hrRoles...), interviewHandler.CreateInterview)
			interviews.POST("/score-preview", middleware.RequireRoles(scoringRoles...), interviewHandler.PreviewScore)
			interviews.GET("/:id", middleware.RequireInterviewAccess(), interviewHandler.GetInterview)
			interviews.PUT("/:id", middleware.RequireRoles(hrRoles...), middleware.RequireInterviewAccess(), interviewHandler.UpdateInterview)
			interviews.DELETE("/:id", middleware.RequireRoles(hrRoles...), middleware.RequireInterviewAccess(), interviewHandler.DeleteInterview)
			interviews.POST("/:id/start", middleware.RequireRoles(scoringRoles...), middleware.RequireInterviewAccess(), interviewHandler.StartInterview)
			interviews.POST("/:id/cancel", middleware.RequireRoles(hrRoles...), middleware.RequireInterviewAccess(), interviewHandler.CancelInterview)
			interviews.GET("/:id/questions", middleware.RequireInterviewAccess(), interviewHandler.ListInterviewQuestions)
			interviews.POST("/:id/questions", middleware.RequireRoles(scoringRoles...), middleware.RequireInterviewAccess(), interviewHandler.AttachQuestion)
			interviews.POST("/:id/summary", middleware.RequireRoles(scoringRoles...), middleware.RequireInterviewAccess(), interviewHandler.GenerateSummary)
			interviews.PUT("/:id/decision", middleware.RequireRoles(hrRoles...), middleware.RequireInterviewAccess(), interviewHandler.Decide)
		}

		// Interview question rows (incremental scoring path)
		interviewQuestions := api.Group("/interview-questions")
		interviewQuestions.Use(middleware.RequireAuth(), middleware.RequireRoles(scoringRoles...))
		{
			interviewQuestions.PUT("/:id", interviewHandler.UpdateInterviewQuestion)
			interviewQuestions.DELETE("/:id", interviewHandler.DeleteInterviewQuestion)
		}

		// Job board management (HR)
		positions := api.Group("/positions")
		positions.Use(middleware.RequireAuth(), middleware.RequireRoles(hrRoles...))
		{
			positions.GET("", applicationHandler.ListPositions)
			positions.POST("", applicationHandler.CreatePosition)
			positions.PUT("/:id", applicationHandler.UpdatePosition)
			positions.DELETE("/:id", applicationHandler.DeletePosition)
		}

		applications := api.Group("/applications")
		applications.Use(middleware.RequireAuth(), middleware.RequireRoles(hrRoles...))
		{
			applications.GET("", applicationHandler.ListApplications)
			applications.GET("/:id", applicationHandler.GetApplication)
			applications.POST("/:id/accept", applicationHandler.AcceptApplication)
			applications.POST("/:id/reject", applicationHandler.RejectApplication)
		}
	}

	// Start server
	log.Println("Server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
