package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AlbertoAlexandre/Apontador/internal/mw"
	"github.com/AlbertoAlexandre/Apontador/internal/report"
)

// GetKPIs returns the four indicator values for the requested month
// (current month when absent).
func (h *Handler) GetKPIs(c *gin.Context) {
	month, year, ok := monthYearQuery(c)
	if !ok {
		return
	}
	if month == 0 {
		now := time.Now()
		month, year = now.Month(), now.Year()
	}

	snapshot, err := h.store.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	summary := snapshot.Summary(int(month), year)
	c.JSON(http.StatusOK, gin.H{
		"summary": summary,
		"kpis":    report.ComputeKPIs(summary, h.heuristics),
	})
}

// GetDashboard returns the filtered cards, KPI block and downtime chart.
// Each section is computed only when the session's permissions allow it;
// gated-off sections come back null.
func (h *Handler) GetDashboard(c *gin.Context) {
	spec, err := filterSpecFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	month, year, ok := monthYearQuery(c)
	if !ok {
		return
	}
	if month == 0 {
		now := time.Now()
		month, year = now.Month(), now.Year()
	}

	snapshot, err := h.store.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	session := mw.SessionFrom(c)
	dashboard := snapshot.BuildDashboard(spec, session.Permissions, int(month), year, h.heuristics)
	c.JSON(http.StatusOK, dashboard)
}

// GetCalendar projects the month's weather events onto a calendar grid.
func (h *Handler) GetCalendar(c *gin.Context) {
	month, year, ok := monthYearQuery(c)
	if !ok {
		return
	}
	if month == 0 {
		now := time.Now()
		month, year = now.Month(), now.Year()
	}

	events, err := h.store.ListWeather(c.Request.Context(), month, year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report.ProjectCalendar(month, year, events))
}
