package handlers

import (
	"net/http"

	"delivery_management/internal/services"
	"delivery_management/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type DriverHandler struct {
	*BaseHandler
	driverService services.DriverService
}

func NewDriverHandler(base *BaseHandler, driverService services.DriverService) *DriverHandler {
	return &DriverHandler{
		BaseHandler:   base,
		driverService: driverService,
	}
}

func (h *DriverHandler) RegisterRoutes(r *gin.RouterGroup) {
	drivers := r.Group("/drivers")
	{
		drivers.GET("", h.List)
		drivers.GET("/active", h.GetActiveDrivers)
		drivers.GET("/email/:email", h.GetByEmail)
		drivers.GET("/:id", h.Get)
		drivers.POST("", h.Create)
		drivers.PUT("/:id", h.Update)
		drivers.DELETE("/:id", h.Delete)
	}
}

func (h *DriverHandler) List(c *gin.Context) {
	drivers, err := h.driverService.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, drivers)
}

func (h *DriverHandler) Get(c *gin.Context) {
	id, ok := h.ParseObjectIDParam(c, "id")
	if !ok {
		return
	}

	driver, err := h.driverService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, driver)
}

func (h *DriverHandler) GetByEmail(c *gin.Context) {
	driver, err := h.driverService.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, driver)
}

func (h *DriverHandler) GetActiveDrivers(c *gin.Context) {
	drivers, err := h.driverService.GetActiveDrivers(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, drivers)
}

func (h *DriverHandler) Create(c *gin.Context) {
	var req dto.CreateDriverRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	driver, err := h.driverService.Create(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, driver)
}

func (h *DriverHandler) Update(c *gin.Context) {
	id, ok := h.ParseObjectIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateDriverRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	driver, err := h.driverService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, driver)
}

func (h *DriverHandler) Delete(c *gin.Context) {
	id, ok := h.ParseObjectIDParam(c, "id")
	if !ok {
		return
	}

	// 404 for unknown ids; the service's removal itself is tolerant.
	if _, err := h.driverService.Get(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.driverService.Remove(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Driver deleted"})
}
