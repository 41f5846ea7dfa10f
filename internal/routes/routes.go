package routes

import (
	"context"
	"net/http"
	"time"

	"delivery_management/internal/handlers"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// RegisterRoutes mounts all HTTP routes.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, db *mongo.Database) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.DriverHandler.RegisterRoutes(api)
		appHandlers.DeliveryAssignmentHandler.RegisterRoutes(api)
		appHandlers.NotificationHandler.RegisterRoutes(api)
	}

	ginRouter.GET("/health", healthHandler(db))
}

func healthHandler(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if db != nil {
			if err := db.Client().Ping(ctx, readpref.Primary()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
