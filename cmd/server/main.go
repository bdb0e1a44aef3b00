package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/officehub/office-management-api/internal/config"
	"github.com/officehub/office-management-api/internal/constants"
	"github.com/officehub/office-management-api/internal/database"
	"github.com/officehub/office-management-api/internal/handlers"
	"github.com/officehub/office-management-api/internal/middleware"
	"github.com/officehub/office-management-api/internal/models"
	"github.com/officehub/office-management-api/internal/oauth"
	"github.com/officehub/office-management-api/internal/repository"
	"github.com/officehub/office-management-api/internal/services"
	"github.com/officehub/office-management-api/internal/storage"
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

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Document blob storage on local disk
	store, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to prepare upload directory: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// CORS for the browser frontend
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.BaseURL, "http://localhost:3000"}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	sessionStore, err := redisStore.NewStore(
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
	isProduction := cfg.GinMode == "release"
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, sessionStore))

	// Repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	leaveRepo := repository.NewLeaveRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Services
	authService := services.NewAuthService(userRepo)
	socialService := services.NewSocialService(userRepo)
	attendanceService := services.NewAttendanceService(attendanceRepo)
	leaveService := services.NewLeaveService(leaveRepo)
	documentService := services.NewDocumentService(documentRepo, store)
	taskService := services.NewTaskService(taskRepo)
	employeeService := services.NewEmployeeService(userRepo)

	// OAuth provider registry
	oauthRegistry := oauth.NewRegistry(cfg)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	socialHandler := handlers.NewSocialHandler(oauthRegistry, socialService)
	dashboardHandler := handlers.NewDashboardHandler()
	announcementHandler := handlers.NewAnnouncementHandler()
	assetHandler := handlers.NewAssetHandler()
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService)
	leaveHandler := handlers.NewLeaveHandler(leaveService)
	holidayHandler := handlers.NewHolidayHandler()
	documentHandler := handlers.NewDocumentHandler(documentService)
	projectHandler := handlers.NewProjectHandler()
	taskHandler := handlers.NewTaskHandler(taskService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)

	// Role gates
	managerOrAdmin := middleware.RequireRoles(models.RoleManager, models.RoleAdmin)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)
	employeeOnly := middleware.RequireRoles(models.RoleEmployee)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Office Management API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
			auth.GET("/:provider/login", socialHandler.Login)
			auth.GET("/:provider/callback", socialHandler.Callback)
		}

		// Everything below requires a session
		protected := api.Group("")
		protected.Use(middleware.RequireAuth())

		protected.GET("/dashboard", dashboardHandler.Get)

		announcements := protected.Group("/announcements")
		{
			announcements.GET("", announcementHandler.List)
			announcements.POST("", managerOrAdmin, announcementHandler.Create)
			announcements.PUT("/:id", announcementHandler.Update)
			announcements.DELETE("/:id", adminOnly, announcementHandler.Delete)
		}

		assets := protected.Group("/assets")
		{
			assets.GET("", assetHandler.List)
			assets.POST("", adminOnly, assetHandler.Create)
			assets.PUT("/:id", adminOnly, assetHandler.Update)
			assets.DELETE("/:id", adminOnly, assetHandler.Delete)
		}

		attendance := protected.Group("/attendance")
		{
			attendance.GET("", attendanceHandler.History)
			attendance.POST("/clock-in", employeeOnly, attendanceHandler.ClockIn)
			attendance.POST("/clock-out", employeeOnly, attendanceHandler.ClockOut)
		}

		leave := protected.Group("/leave-requests")
		{
			leave.GET("", leaveHandler.List)
			leave.POST("", employeeOnly, leaveHandler.Create)
			leave.PUT("/:id/decision", managerOrAdmin, leaveHandler.Decide)
		}

		holidays := protected.Group("/holidays")
		{
			holidays.GET("", holidayHandler.List)
			holidays.POST("", adminOnly, holidayHandler.Create)
			holidays.PUT("/:id", adminOnly, holidayHandler.Update)
			holidays.DELETE("/:id", adminOnly, holidayHandler.Delete)
		}

		documents := protected.Group("/documents")
		{
			documents.GET("", documentHandler.List)
			documents.POST("", managerOrAdmin, documentHandler.Upload)
			documents.PUT("/:id", managerOrAdmin, documentHandler.Update)
			documents.DELETE("/:id", adminOnly, documentHandler.Delete)
			documents.GET("/:id/download", documentHandler.Download)
		}

		projects := protected.Group("/projects")
		{
			projects.GET("", projectHandler.List)
			projects.POST("", managerOrAdmin, projectHandler.Create)
			projects.PUT("/:id", managerOrAdmin, projectHandler.Update)
			projects.DELETE("/:id", adminOnly, projectHandler.Delete)
		}

		tasks := protected.Group("/tasks")
		{
			tasks.GET("", taskHandler.List)
			tasks.GET("/:id", taskHandler.Get)
			tasks.POST("", managerOrAdmin, taskHandler.Create)
			tasks.PUT("/:id", taskHandler.Update)
			tasks.DELETE("/:id", adminOnly, taskHandler.Delete)
		}

		employees := protected.Group("/employees")
		{
			employees.GET("", managerOrAdmin, employeeHandler.List)
			employees.POST("", adminOnly, employeeHandler.Create)
			employees.PUT("/:id", adminOnly, employeeHandler.Update)
			employees.DELETE("/:id", adminOnly, employeeHandler.Delete)
		}
	}

	// Start server
	log.Println("Server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
