package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AlbertoAlexandre/Apontador/internal/model"
	"github.com/AlbertoAlexandre/Apontador/internal/mw"
	"github.com/AlbertoAlexandre/Apontador/internal/parse"
)

// ListWeather returns recorded rain events, optionally narrowed to one
// month via ?month=&year=.
func (h *Handler) ListWeather(c *gin.Context) {
	month, year, ok := monthYearQuery(c)
	if !ok {
		return
	}

	events, err := h.store.ListWeather(c.Request.Context(), month, year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, events)
}

type createWeatherRequest struct {
	SiteLocation string              `json:"site_location" binding:"required"`
	Date         string              `json:"date" binding:"required,datetime=2006-01-02"`
	Intensity    model.RainIntensity `json:"intensity" binding:"required"`
	StartTime    string              `json:"start_time" binding:"required"`
	EndTime      string              `json:"end_time" binding:"required"`
	Remarks      string              `json:"remarks"`
}

// CreateWeather records a rain interruption. Total minutes come from the
// wall-clock interval, wrapping past midnight when the end precedes the
// start.
func (h *Handler) CreateWeather(c *gin.Context) {
	var req createWeatherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair, err := parse.Pair(req.SiteLocation)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	minutes, err := parse.IntervalMinutes(req.StartTime, req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event := model.WeatherEvent{
		Date:         req.Date,
		SiteID:       pair.SiteID,
		LocationID:   pair.LocationID,
		Intensity:    req.Intensity,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		TotalMinutes: minutes,
		Remarks:      req.Remarks,
		UserID:       mw.SessionFrom(c).UserID,
	}
	if err := h.store.CreateWeather(c.Request.Context(), &event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, event)
}

// monthYearQuery parses the optional month/year pair, defaulting to zero
// (no narrowing). Malformed values write a 400 and return ok=false.
func monthYearQuery(c *gin.Context) (time.Month, int, bool) {
	rawMonth, rawYear := c.Query("month"), c.Query("year")
	if rawMonth == "" && rawYear == "" {
		return 0, 0, true
	}

	month, err := strconv.Atoi(rawMonth)
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
		return 0, 0, false
	}
	year, err := strconv.Atoi(rawYear)
	if err != nil || year < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return 0, 0, false
	}
	return time.Month(month), year, true
}
