package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"hospital-portal-server/internal/care"
	"hospital-portal-server/internal/config"
	"hospital-portal-server/internal/handlers"
	"hospital-portal-server/internal/middleware"
	"hospital-portal-server/internal/models"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	careService := care.NewService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db)
	recordHandler := handlers.NewMedicalRecordHandler(db)
	messageHandler := handlers.NewMessageHandler(db, careService)
	callHandler := handlers.NewNurseCallHandler(careService)
	pharmacyHandler := handlers.NewPharmacyHandler(db)
	financeHandler := handlers.NewFinanceHandler(db)
	claimHandler := handlers.NewInsuranceClaimHandler(db)
	chatbotHandler := handlers.NewChatbotHandler()

	router.Use(middleware.PrometheusMiddleware())

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh-token", authHandler.RefreshToken)
		}

		// Keyword chatbot needs no identity
		public.POST("/chatbot", chatbotHandler.Chat)
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg))
	{
		authRoutesPrivate := private.Group("/auth")
		{
			authRoutesPrivate.POST("/logout", authHandler.Logout)
			authRoutesPrivate.GET("/profile", authHandler.GetProfile)
			authRoutesPrivate.PUT("/profile", authHandler.UpdateProfile)
		}

		// User management routes
		userRoutes := private.Group("/users")
		{
			// Directory endpoints, scoped per role
			userRoutes.GET("/doctors", userHandler.GetDoctors)
			userRoutes.GET("/patients", middleware.RoleAuthMiddleware(models.RoleDoctor, models.RoleAdmin), userHandler.GetPatients)
			userRoutes.GET("/nurses", middleware.RoleAuthMiddleware(models.RoleDoctor, models.RoleAdmin), userHandler.GetNurses)

			// Admin-only routes
			adminRoutes := userRoutes.Group("")
			adminRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
			{
				adminRoutes.POST("", userHandler.CreateUser)
				adminRoutes.GET("", userHandler.GetUsers)
				adminRoutes.GET("/:id", userHandler.GetUserByID)
				adminRoutes.PUT("/:id", userHandler.UpdateUser)
				adminRoutes.DELETE("/:id", userHandler.DeleteUser)
			}
		}

		// Treatment record routes
		recordRoutes := private.Group("/medical-records")
		{
			recordRoutes.POST("", middleware.RoleAuthMiddleware(models.RoleDoctor), recordHandler.CreateMedicalRecord)
			recordRoutes.GET("/patient/:patientId", recordHandler.GetMedicalRecordsForPatient) // auth in handler
			recordRoutes.GET("/my-patients", middleware.RoleAuthMiddleware(models.RoleDoctor), recordHandler.GetMyPatients)
			recordRoutes.GET("/stats", middleware.RoleAuthMiddleware(models.RoleDoctor), recordHandler.GetMyStats)
			recordRoutes.GET("/:id", recordHandler.GetMedicalRecordByID) // auth in handler
		}

		// Care-coordination: message threads
		messageRoutes := private.Group("/messages")
		{
			messageRoutes.POST("/patient", middleware.RoleAuthMiddleware(models.RolePatient), messageHandler.SendPatientMessage)
			messageRoutes.POST("/doctor", middleware.RoleAuthMiddleware(models.RoleDoctor), messageHandler.SendDoctorMessage)
			messageRoutes.GET("/thread", messageHandler.GetThread) // participants or admin, checked in handler
			messageRoutes.PATCH("/:messageId/read", messageHandler.MarkMessageAsRead)
		}

		// Care-coordination: nurse calls
		callRoutes := private.Group("/nurse-calls")
		{
			callRoutes.POST("", middleware.RoleAuthMiddleware(models.RoleDoctor), callHandler.RequestNurse)
			callRoutes.GET("/open", middleware.RoleAuthMiddleware(models.RoleNurse), callHandler.ListOpenCalls)
			callRoutes.POST("/:callId/accept", middleware.RoleAuthMiddleware(models.RoleNurse), callHandler.AcceptCall)
		}

		// Pharmacy inventory
		pharmacyRoutes := private.Group("/pharmacy")
		{
			pharmacyRoutes.GET("", pharmacyHandler.GetInventory)
			pharmacyRoutes.POST("", middleware.RoleAuthMiddleware(models.RoleAdmin), pharmacyHandler.CreatePharmacyItem)
			pharmacyRoutes.PATCH("/:id/stock", middleware.RoleAuthMiddleware(models.RoleAdmin), pharmacyHandler.UpdateStock)
		}

		// Hospital ledger (admin)
		financeRoutes := private.Group("/finances")
		financeRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
		{
			financeRoutes.GET("/summary", financeHandler.GetSummary)
			financeRoutes.GET("", financeHandler.GetRecords)
			financeRoutes.POST("", financeHandler.CreateRecord)
		}

		// Insurance claims
		claimRoutes := private.Group("/insurance-claims")
		{
			claimRoutes.POST("", middleware.RoleAuthMiddleware(models.RolePatient), claimHandler.SubmitClaim)
			claimRoutes.GET("/mine", middleware.RoleAuthMiddleware(models.RolePatient), claimHandler.GetMyClaims)
			claimRoutes.GET("", middleware.RoleAuthMiddleware(models.RoleAdmin), claimHandler.GetAllClaims)
			claimRoutes.PATCH("/:id/decision", middleware.RoleAuthMiddleware(models.RoleAdmin), claimHandler.DecideClaim)
		}
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
