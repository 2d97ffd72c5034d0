package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/AlbertoAlexandre/Apontador/config"
	"github.com/AlbertoAlexandre/Apontador/internal/auth"
	"github.com/AlbertoAlexandre/Apontador/internal/mw"
	"github.com/AlbertoAlexandre/Apontador/internal/report"
	"github.com/AlbertoAlexandre/Apontador/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, sessions *auth.Manager, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	heuristics := report.Heuristics{
		ShiftHoursPerOpenOccurrence: cfg.Report.ShiftHoursPerOpenOccurrence,
		TripsPerVehicleTarget:       cfg.Report.TripsPerVehicleTarget,
	}
	handler := NewHandler(s, sessions, heuristics, cfg.Report.StrictTripAssociations)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst, cfg.Server.RequestIPHeader)

	cacheTTL := time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 10*time.Minute)
	caching := mw.Cache(cacheStore, cacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)

	// Login is the only route reachable without a session.
	api.POST("/login", handler.Login)

	authed := api.Group("")
	authed.Use(mw.RequireSession(sessions), mw.FlushOnWrite(cacheStore))
	{
		authed.POST("/logout", handler.Logout)
		authed.GET("/session", handler.GetSession)

		authed.GET("/sites", caching, handler.ListSites)
		authed.POST("/sites", handler.CreateSite)
		authed.DELETE("/sites/:id", handler.DeleteSite)
		authed.GET("/sites/:id/vehicles", caching, handler.SiteVehicles)
		authed.GET("/sites/:id/drivers", caching, handler.SiteDrivers)

		authed.GET("/services", caching, handler.ListServices)
		authed.GET("/locations", caching, handler.ListLocations)
		authed.GET("/site-locations", caching, handler.ListSiteLocations)

		authed.GET("/vehicles", caching, handler.ListVehicles)
		authed.POST("/vehicles", handler.CreateVehicle)

		authed.GET("/professionals", caching, handler.ListProfessionals)
		authed.POST("/professionals", handler.CreateProfessional)
		authed.GET("/users", handler.ListUsers)
		authed.POST("/users", handler.CreateUser)
		authed.PUT("/permissions/:user_id", handler.UpdatePermissions)

		authed.GET("/trips", handler.ListTrips)
		authed.POST("/trips", handler.CreateTrip)

		authed.GET("/diarias", handler.GetDiarias)

		authed.GET("/occurrences", handler.ListOccurrences)
		authed.POST("/occurrences", handler.CreateOccurrence)
		authed.PUT("/occurrences/:id", handler.CloseOccurrence)

		authed.GET("/weather", handler.ListWeather)
		authed.POST("/weather", handler.CreateWeather)

		authed.GET("/dashboard/kpis", handler.GetKPIs)
		authed.GET("/dashboard", handler.GetDashboard)
		authed.GET("/calendar", handler.GetCalendar)
	}

	return r
}
