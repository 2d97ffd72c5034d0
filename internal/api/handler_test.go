package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlbertoAlexandre/Apontador/internal/auth"
	"github.com/AlbertoAlexandre/Apontador/internal/model"
	"github.com/AlbertoAlexandre/Apontador/internal/mw"
	"github.com/AlbertoAlexandre/Apontador/internal/report"
	"github.com/AlbertoAlexandre/Apontador/internal/store"
)

// fakeStore stubs only the methods a test exercises; anything else panics
// through the embedded nil interface.
type fakeStore struct {
	store.Store
	snapshot *report.Snapshot
}

func (f *fakeStore) Snapshot(ctx context.Context) (*report.Snapshot, error) {
	return f.snapshot, nil
}

func reportSnapshot() *report.Snapshot {
	return report.NewSnapshot(
		[]model.Site{{ID: 1, Name: "Dam Alpha"}},
		nil, nil,
		[]model.Vehicle{
			{ID: 1, Name: "Truck 01", CapacityM3: 10, Driver: "Carlos"},
			{ID: 2, Name: "Truck 02", CapacityM3: 8, Driver: "Maria"},
		},
		[]model.Trip{
			{ID: 1, SiteID: 1, VehicleID: 1, Date: "2024-03-10", TripCount: 3},
			{ID: 2, SiteID: 1, VehicleID: 2, Date: "2024-03-11", TripCount: 2},
		},
		nil, nil,
	)
}

func setupDiariasRouter(s store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewHandler(s, nil, report.DefaultHeuristics(), false)
	r.GET("/api/diarias", handler.GetDiarias)
	return r
}

func TestGetDiarias_QueryParsing(t *testing.T) {
	router := setupDiariasRouter(&fakeStore{snapshot: reportSnapshot()})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/diarias?vehicles=1&date_start=2024-03-01&date_end=2024-03-31", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got report.DiariasReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Rows, 1)
	assert.Equal(t, "Truck 01", got.Rows[0].Vehicle.Name)
	assert.Equal(t, 3, got.Rows[0].TotalTrips)
	assert.Equal(t, 30.0, got.Rows[0].TotalVolume)
	assert.Equal(t, 3, got.Totals.TotalTrips)
}

func TestGetDiarias_BadQuery(t *testing.T) {
	router := setupDiariasRouter(&fakeStore{snapshot: reportSnapshot()})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/diarias?vehicles=1,abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateTrip_BindingFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewHandler(nil, nil, report.DefaultHeuristics(), false)
	r.POST("/api/trips", handler.CreateTrip)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/trips", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequireSession_Rejection(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessions := auth.NewManager(time.Hour)

	r := gin.New()
	r.GET("/api/session", mw.RequireSession(sessions), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// No cookie at all.
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/session", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Stale token.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/session", nil)
	req.AddCookie(&http.Cookie{Name: mw.SessionCookie, Value: "stale"})
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Valid session passes.
	token, err := sessions.Create(model.User{ID: 1, Username: "adm"})
	require.NoError(t, err)
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/session", nil)
	req.AddCookie(&http.Cookie{Name: mw.SessionCookie, Value: token})
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
