package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListSites returns every site with its associated services and locations.
func (h *Handler) ListSites(c *gin.Context) {
	sites, err := h.store.ListSites(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sites)
}

type createSiteRequest struct {
	Name      string   `json:"name" binding:"required"`
	Services  []string `json:"services"`
	Locations []string `json:"locations"`
}

// CreateSite registers a site and its service/location catalog by name.
// Names that already exist are reused, so re-registering only grows the
// associations.
func (h *Handler) CreateSite(c *gin.Context) {
	var req createSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	site, err := h.store.CreateSite(c.Request.Context(), req.Name, req.Services, req.Locations)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, site)
}

// DeleteSite removes a site and its association rows. Historical trips and
// occurrences stay untouched.
func (h *Handler) DeleteSite(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid site id"})
		return
	}

	if err := h.store.DeleteSite(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// SiteVehicles returns the vehicles that have recorded trips on the site,
// derived from the trip history rather than a static association.
func (h *Handler) SiteVehicles(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid site id"})
		return
	}

	snapshot, err := h.store.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snapshot.VehiclesForSite(id))
}

// SiteDrivers returns the distinct drivers of the site's vehicles.
func (h *Handler) SiteDrivers(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid site id"})
		return
	}

	snapshot, err := h.store.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snapshot.DriversForSite(id))
}
