package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlbertoAlexandre/Apontador/internal/model"
)

type tripListItem struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	Site      string `json:"site"`
	Service   string `json:"service"`
	Location  string `json:"location"`
	Vehicle   string `json:"vehicle"`
	Driver    string `json:"driver"`
	TripCount int    `json:"trip_count"`
}

// ListTrips returns recorded trips newest-first with resolved names.
func (h *Handler) ListTrips(c *gin.Context) {
	trips, err := h.store.ListTrips(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := make([]tripListItem, 0, len(trips))
	for _, t := range trips {
		item := tripListItem{
			ID:        t.ID,
			Date:      t.Date,
			Site:      t.Site.Name,
			Vehicle:   t.Vehicle.Name,
			Driver:    t.Vehicle.Driver,
			TripCount: t.TripCount,
		}
		if t.Service != nil {
			item.Service = t.Service.Name
		}
		if t.Location != nil {
			item.Location = t.Location.Name
		}
		items = append(items, item)
	}
	c.JSON(http.StatusOK, items)
}

type createTripRequest struct {
	SiteID     int64  `json:"site_id" binding:"required"`
	ServiceID  *int64 `json:"service_id"`
	LocationID *int64 `json:"location_id"`
	VehicleID  int64  `json:"vehicle_id" binding:"required"`
	Date       string `json:"date" binding:"required,datetime=2006-01-02"`
	TripCount  int    `json:"trip_count" binding:"required,gte=1"`
}

// CreateTrip records a haul entry. In strict mode the service and location
// picks must be associated with the site; the permissive default accepts
// free-form picks like the historical data does.
func (h *Handler) CreateTrip(c *gin.Context) {
	var req createTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.strict {
		snapshot, err := h.store.Snapshot(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if req.ServiceID != nil && !containsService(snapshot.ServicesForSite(req.SiteID), *req.ServiceID) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "service is not associated with the site"})
			return
		}
		if req.LocationID != nil && !containsLocation(snapshot.LocationsForSite(req.SiteID), *req.LocationID) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "location is not associated with the site"})
			return
		}
	}

	trip := model.Trip{
		SiteID:     req.SiteID,
		ServiceID:  req.ServiceID,
		LocationID: req.LocationID,
		VehicleID:  req.VehicleID,
		Date:       req.Date,
		TripCount:  req.TripCount,
	}
	if err := h.store.CreateTrip(c.Request.Context(), &trip); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, trip)
}

func containsService(services []model.Service, id int64) bool {
	for _, s := range services {
		if s.ID == id {
			return true
		}
	}
	return false
}

func containsLocation(locations []model.Location, id int64) bool {
	for _, l := range locations {
		if l.ID == id {
			return true
		}
	}
	return false
}
