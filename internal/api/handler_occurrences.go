package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AlbertoAlexandre/Apontador/internal/model"
	"github.com/AlbertoAlexandre/Apontador/internal/mw"
	"github.com/AlbertoAlexandre/Apontador/internal/parse"
)

// ListOccurrences returns downtime occurrences newest-first.
func (h *Handler) ListOccurrences(c *gin.Context) {
	occurrences, err := h.store.ListOccurrences(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, occurrences)
}

type createOccurrenceRequest struct {
	// SiteLocation is the "<site_id>-<location_id>" pair key from the
	// site-locations listing.
	SiteLocation     string                 `json:"site_location" binding:"required"`
	VehicleID        int64                  `json:"vehicle_id" binding:"required"`
	StopReason       model.StopReason       `json:"stop_reason" binding:"required"`
	MaintenanceType  *model.MaintenanceType `json:"maintenance_type"`
	MaintenanceNotes string                 `json:"maintenance_notes"`
	StartedAt        time.Time              `json:"started_at" binding:"required"`
	ReturnedAt       *time.Time             `json:"returned_at"`
	Remarks          string                 `json:"remarks"`
	PhotoPath        string                 `json:"photo_path"`
}

// CreateOccurrence opens a downtime occurrence. When the return time is
// already known the occurrence is recorded closed in one step.
func (h *Handler) CreateOccurrence(c *gin.Context) {
	var req createOccurrenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair, err := parse.Pair(req.SiteLocation)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	occurrence := model.Occurrence{
		SiteID:           pair.SiteID,
		LocationID:       pair.LocationID,
		VehicleID:        req.VehicleID,
		StopReason:       req.StopReason,
		MaintenanceType:  req.MaintenanceType,
		MaintenanceNotes: req.MaintenanceNotes,
		StartedAt:        req.StartedAt,
		ReturnedAt:       req.ReturnedAt,
		Remarks:          req.Remarks,
		PhotoPath:        req.PhotoPath,
		UserID:           mw.SessionFrom(c).UserID,
	}
	if req.ReturnedAt != nil {
		occurrence.Status = model.OccurrenceCompleted
	}

	if err := h.store.CreateOccurrence(c.Request.Context(), &occurrence); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, occurrence)
}

type closeOccurrenceRequest struct {
	ReturnedAt time.Time `json:"returned_at" binding:"required"`
	Remarks    string    `json:"remarks"`
}

// CloseOccurrence records the vehicle's return and completes the
// occurrence, recomputing the total downtime minutes.
func (h *Handler) CloseOccurrence(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid occurrence id"})
		return
	}

	var req closeOccurrenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.CloseOccurrence(c.Request.Context(), id, req.ReturnedAt, req.Remarks); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "occurrence not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
