package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlbertoAlexandre/Apontador/internal/model"
)

// ListVehicles returns the fleet ordered by name.
func (h *Handler) ListVehicles(c *gin.Context) {
	vehicles, err := h.store.ListVehicles(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

type createVehicleRequest struct {
	Name       string  `json:"name" binding:"required"`
	Plate      string  `json:"plate" binding:"required"`
	CapacityM3 float64 `json:"capacity_m3" binding:"required,gt=0"`
	Driver     string  `json:"driver" binding:"required"`
}

// CreateVehicle registers a vehicle with its capacity and current driver.
func (h *Handler) CreateVehicle(c *gin.Context) {
	var req createVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicle := model.Vehicle{
		Name:       req.Name,
		Plate:      req.Plate,
		CapacityM3: req.CapacityM3,
		Driver:     req.Driver,
	}
	if err := h.store.CreateVehicle(c.Request.Context(), &vehicle); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}
