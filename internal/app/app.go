package app

import (
	"context"
	"fmt"

	"delivery_management/internal/config"
	"delivery_management/internal/email"
	"delivery_management/internal/handlers"
	"delivery_management/internal/logger"
	"delivery_management/internal/middleware"
	"delivery_management/internal/repositories"
	"delivery_management/internal/routes"
	"delivery_management/internal/services"
	"delivery_management/internal/validator"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to MongoDB...", "database", cfg.MongoDB.Database)
	db, err := repositories.Connect(context.Background(), cfg)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", "error", err)
	}
	logger.Info("MongoDB connected")

	ginRouter := SetupRouter(cfg, db)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services and handlers into a gin engine.
// Separated from Run so tests can mount the same router on httptest.
func SetupRouter(cfg *config.Config, db *mongo.Database) *gin.Engine {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost == "" {
		logger.Warn("No SMTP host configured, outbound email is mocked")
		emailProvider = &MockEmailProvider{}
	} else {
		emailProvider = email.NewGomailProvider(cfg)
	}

	driverRepo := repositories.NewDriverRepository(db, cfg.MongoDB.DriverCollection)
	assignmentRepo := repositories.NewDeliveryAssignmentRepository(db, cfg.MongoDB.AssignmentCollection)
	notificationRepo := repositories.NewNotificationRepository(db, cfg.MongoDB.NotificationCollection)

	notificationService := services.NewNotificationService(notificationRepo, emailProvider)
	driverService := services.NewDriverService(driverRepo, notificationService)
	assignmentService := services.NewDeliveryAssignmentService(assignmentRepo, driverService, notificationService)

	base := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		DriverHandler:             handlers.NewDriverHandler(base, driverService),
		DeliveryAssignmentHandler: handlers.NewDeliveryAssignmentHandler(base, assignmentService),
		NotificationHandler:       handlers.NewNotificationHandler(base, notificationService),
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(),
	)

	routes.RegisterRoutes(ginRouter, appHandlers, db)

	return ginRouter
}
