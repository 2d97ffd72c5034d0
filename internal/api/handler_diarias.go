package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AlbertoAlexandre/Apontador/internal/report"
)

// GetDiarias builds the per-vehicle daily report. The five list dimensions
// arrive as comma-separated query parameters (sites, vehicles, drivers,
// services, locations) plus an optional date_start/date_end range; an
// absent or empty parameter leaves that dimension unconstrained.
func (h *Handler) GetDiarias(c *gin.Context) {
	spec, err := filterSpecFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := h.store.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snapshot.Diarias(spec))
}

// filterSpecFromQuery parses the shared report filter parameters.
func filterSpecFromQuery(c *gin.Context) (report.FilterSpec, error) {
	spec := report.FilterSpec{
		Drivers: csvStrings(c.Query("drivers")),
	}

	var err error
	if spec.Sites, err = csvIDs(c.Query("sites"), "sites"); err != nil {
		return report.FilterSpec{}, err
	}
	if spec.Vehicles, err = csvIDs(c.Query("vehicles"), "vehicles"); err != nil {
		return report.FilterSpec{}, err
	}
	if spec.Services, err = csvIDs(c.Query("services"), "services"); err != nil {
		return report.FilterSpec{}, err
	}
	if spec.Locations, err = csvIDs(c.Query("locations"), "locations"); err != nil {
		return report.FilterSpec{}, err
	}

	start, end := c.Query("date_start"), c.Query("date_end")
	if start != "" || end != "" {
		spec.Dates = &report.DateRange{Start: start, End: end}
	}
	return spec, nil
}

func csvIDs(raw, name string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, &badQueryError{param: name, value: p}
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func csvStrings(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			values = append(values, p)
		}
	}
	return values
}

type badQueryError struct {
	param string
	value string
}

func (e *badQueryError) Error() string {
	return "invalid value " + strconv.Quote(e.value) + " in " + e.param
}
