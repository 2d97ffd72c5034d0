package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AlbertoAlexandre/Apontador/internal/parse"
)

// ListServices returns the service catalog, optionally narrowed to the
// services associated with one site via ?site_id=.
func (h *Handler) ListServices(c *gin.Context) {
	siteID, ok := optionalIDQuery(c, "site_id")
	if !ok {
		return
	}

	if siteID != 0 {
		snapshot, err := h.store.Snapshot(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, snapshot.ServicesForSite(siteID))
		return
	}

	services, err := h.store.ListServices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, services)
}

// ListLocations returns the location catalog, optionally narrowed to one
// site via ?site_id=.
func (h *Handler) ListLocations(c *gin.Context) {
	siteID, ok := optionalIDQuery(c, "site_id")
	if !ok {
		return
	}

	if siteID != 0 {
		snapshot, err := h.store.Snapshot(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, snapshot.LocationsForSite(siteID))
		return
	}

	locations, err := h.store.ListLocations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, locations)
}

type siteLocationPair struct {
	Key      string `json:"key"`
	Site     string `json:"site"`
	Location string `json:"location"`
}

// ListSiteLocations returns every valid site/location pair as the
// "<site_id>-<location_id>" keys the occurrence and weather forms submit.
func (h *Handler) ListSiteLocations(c *gin.Context) {
	snapshot, err := h.store.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	pairs := []siteLocationPair{}
	for _, site := range snapshot.Sites {
		for _, loc := range snapshot.LocationsForSite(site.ID) {
			pairs = append(pairs, siteLocationPair{
				Key:      parse.PairKey(site.ID, loc.ID),
				Site:     site.Name,
				Location: loc.Name,
			})
		}
	}
	c.JSON(http.StatusOK, pairs)
}

// optionalIDQuery parses an optional numeric query parameter. A missing or
// empty parameter yields zero; a malformed one writes a 400 and returns
// ok=false.
func optionalIDQuery(c *gin.Context, key string) (int64, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + key})
		return 0, false
	}
	return id, true
}
