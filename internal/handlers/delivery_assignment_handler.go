package handlers

import (
	"net/http"

	"delivery_management/internal/services"
	"delivery_management/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type DeliveryAssignmentHandler struct {
	*BaseHandler
	assignmentService services.DeliveryAssignmentService
}

func NewDeliveryAssignmentHandler(base *BaseHandler, assignmentService services.DeliveryAssignmentService) *DeliveryAssignmentHandler {
	return &DeliveryAssignmentHandler{
		BaseHandler:       base,
		assignmentService: assignmentService,
	}
}

func (h *DeliveryAssignmentHandler) RegisterRoutes(r *gin.RouterGroup) {
	assignments := r.Group("/assignments")
	{
		assignments.GET("", h.List)
		assignments.GET("/driver/:driverId", h.GetByDriverID)
		assignments.GET("/:id", h.Get)
		assignments.POST("", h.Create)
		assignments.PUT("/:id", h.Update)
		assignments.DELETE("/:id", h.Delete)
	}
}

func (h *DeliveryAssignmentHandler) List(c *gin.Context) {
	assignments, err := h.assignmentService.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

func (h *DeliveryAssignmentHandler) Get(c *gin.Context) {
	id, ok := h.ParseObjectIDParam(c, "id")
	if !ok {
		return
	}

	assignment, err := h.assignmentService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignment)
}

func (h *DeliveryAssignmentHandler) GetByDriverID(c *gin.Context) {
	driverID, ok := h.ParseObjectIDParam(c, "driverId")
	if !ok {
		return
	}

	assignments, err := h.assignmentService.GetByDriverID(c.Request.Context(), driverID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

func (h *DeliveryAssignmentHandler) Create(c *gin.Context) {
	var req dto.CreateDeliveryAssignmentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	assignment, err := h.assignmentService.Create(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

func (h *DeliveryAssignmentHandler) Update(c *gin.Context) {
	id, ok := h.ParseObjectIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateDeliveryAssignmentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	assignment, err := h.assignmentService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignment)
}

func (h *DeliveryAssignmentHandler) Delete(c *gin.Context) {
	id, ok := h.ParseObjectIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.assignmentService.Get(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.assignmentService.Remove(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Delivery assignment deleted"})
}
