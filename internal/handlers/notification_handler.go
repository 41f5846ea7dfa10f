package handlers

import (
	"net/http"

	"delivery_management/internal/models"
	"delivery_management/internal/services"
	"delivery_management/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService services.NotificationService
}

func NewNotificationHandler(base *BaseHandler, notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         base,
		notificationService: notificationService,
	}
}

func (h *NotificationHandler) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/notifications")
	{
		notifications.GET("", h.List)
		notifications.GET("/user/:userId", h.ListByUser)
		notifications.GET("/:id", h.Get)
		notifications.POST("", h.Create)
		notifications.PUT("/:id", h.Update)
		notifications.PUT("/:id/read", h.MarkAsRead)
	}
}

func (h *NotificationHandler) List(c *gin.Context) {
	notifications, err := h.notificationService.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) Get(c *gin.Context) {
	id, ok := h.ParseObjectIDParam(c, "id")
	if !ok {
		return
	}

	notification, err := h.notificationService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notification)
}

func (h *NotificationHandler) ListByUser(c *gin.Context) {
	notifications, err := h.notificationService.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) Create(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	notification := &models.Notification{
		UserID:     req.UserID,
		Type:       models.NotificationType(req.Type),
		Title:      req.Title,
		Message:    req.Message,
		DeliveryID: req.DeliveryID,
		Status:     models.NotificationStatus(req.Status),
	}

	if err := h.notificationService.Create(c.Request.Context(), notification); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, notification)
}

func (h *NotificationHandler) Update(c *gin.Context) {
	id, ok := h.ParseObjectIDParam(c, "id")
	if !ok {
		return
	}

	existing, err := h.notificationService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateNotificationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	notification := &models.Notification{
		ID:         existing.ID,
		UserID:     req.UserID,
		Type:       models.NotificationType(req.Type),
		Title:      req.Title,
		Message:    req.Message,
		IsRead:     req.IsRead,
		CreatedAt:  existing.CreatedAt,
		DeliveryID: req.DeliveryID,
		Status:     models.NotificationStatus(req.Status),
	}

	if err := h.notificationService.Update(c.Request.Context(), id, notification); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notification)
}

func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	id, ok := h.ParseObjectIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.notificationService.Get(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.notificationService.MarkAsRead(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}
