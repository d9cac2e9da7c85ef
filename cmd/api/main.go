package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/config"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/database"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/handlers"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/logger"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/middleware"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/services"
	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/validator"

	_ "github.com/stads98/tunji-real-estate-analyzer-sub002/internal/docs" // Import swagger docs
)

// @title           Tunji Real Estate Analyzer API
// @version         1.0
// @description     Deterministic deal-analysis engine for small multifamily acquisitions: rental strategy projections, offer solving, condition scoring, and rehab cost estimation.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	propertyService := services.NewPropertyService(db)
	assumptionService := services.NewAssumptionService(db)
	analysisService := services.NewAnalysisService(db, propertyService, assumptionService)
	rehabService := services.NewRehabService(db, propertyService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	assumptionHandler := handlers.NewAssumptionHandler(assumptionService)
	analysisHandler := handlers.NewAnalysisHandler(analysisService)
	rehabHandler := handlers.NewRehabHandler(rehabService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Property routes
	properties := protected.Group("/properties")
	properties.POST("", propertyHandler.CreateProperty)
	properties.GET("", propertyHandler.GetProperties)
	properties.GET("/:id", propertyHandler.GetProperty)
	properties.PUT("/:id", propertyHandler.UpdateProperty)
	properties.DELETE("/:id", propertyHandler.DeleteProperty)

	// Analysis routes
	properties.POST("/:id/analyze", analysisHandler.AnalyzeProperty)
	properties.POST("/:id/max-offer", analysisHandler.MaxOffer)
	properties.GET("/:id/snapshots", analysisHandler.GetSnapshots)
	protected.GET("/snapshots/:ref", analysisHandler.GetSnapshot)
	protected.GET("/snapshots/:ref/export", analysisHandler.ExportSnapshot)

	// Condition and rehab routes
	properties.PUT("/:id/condition", rehabHandler.UpsertConditionReport)
	properties.GET("/:id/condition", rehabHandler.GetConditionReport)
	properties.GET("/:id/condition/score", rehabHandler.ScoreProperty)
	rehab := protected.Group("/rehab")
	rehab.POST("/estimate", rehabHandler.EstimateCost)
	rehab.POST("/capital", rehabHandler.CapitalNeeded)

	// Assumption routes
	assumptions := protected.Group("/assumptions")
	assumptions.GET("", assumptionHandler.GetAssumptions)
	assumptions.PATCH("", assumptionHandler.UpdateAssumptions)
	assumptions.POST("/reset", assumptionHandler.ResetAssumptions)

	// Voucher rent table routes
	voucherRents := protected.Group("/voucher-rents")
	voucherRents.PUT("", assumptionHandler.UpsertVoucherRent)
	voucherRents.GET("", assumptionHandler.ListVoucherRents)

	log.Infof("Starting analyzer backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
