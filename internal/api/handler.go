package api

import (
	"github.com/AlbertoAlexandre/Apontador/internal/auth"
	"github.com/AlbertoAlexandre/Apontador/internal/report"
	"github.com/AlbertoAlexandre/Apontador/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store      store.Store
	sessions   *auth.Manager
	heuristics report.Heuristics
	// strict rejects trips whose service/location is not associated with
	// the trip's site.
	strict bool
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, sessions *auth.Manager, heuristics report.Heuristics, strict bool) *Handler {
	return &Handler{
		store:      s,
		sessions:   sessions,
		heuristics: heuristics,
		strict:     strict,
	}
}
