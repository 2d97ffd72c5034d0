package internal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/AlbertoAlexandre/Apontador/internal/db"
	"github.com/AlbertoAlexandre/Apontador/internal/model"
	"github.com/AlbertoAlexandre/Apontador/internal/report"
	"github.com/AlbertoAlexandre/Apontador/internal/store"
)

// TestReportingLifecycle walks the full write-then-report path: register
// reference data, record trips, occurrences and weather, then verify the
// snapshot-backed diárias report, KPIs and calendar against the database.
func TestReportingLifecycle(t *testing.T) {
	// 1. Setup an in-memory SQLite database for testing.
	testDB, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to the in-memory database: %v", err)
	}
	sqlDB, _ := testDB.DB()
	defer sqlDB.Close()

	require.NoError(t, db.Migrate(testDB))
	require.NoError(t, db.SeedAdmin(testDB))

	s := store.NewGormStore(testDB)
	ctx := context.Background()

	// 2. The seeded administrator can log in with full permissions.
	admin, err := s.Authenticate(ctx, "adm", "123")
	require.NoError(t, err)
	assert.True(t, admin.Permission.Admin)
	assert.Equal(t, "Administrator", admin.Professional.Name)

	_, err = s.Authenticate(ctx, "adm", "wrong")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// 3. Register the reference data.
	site, err := s.CreateSite(ctx, "Dam Alpha", []string{"Excavation", "Paving"}, []string{"North Yard"})
	require.NoError(t, err)
	require.NotZero(t, site.ID)

	truck1 := model.Vehicle{Name: "Truck 01", Plate: "ABC-1234", CapacityM3: 10, Driver: "Carlos"}
	require.NoError(t, s.CreateVehicle(ctx, &truck1))
	truck2 := model.Vehicle{Name: "Truck 02", Plate: "DEF-5678", CapacityM3: 8, Driver: "Maria"}
	require.NoError(t, s.CreateVehicle(ctx, &truck2))

	// 4. Record trips, a closed occurrence and a rain event in March.
	require.NoError(t, s.CreateTrip(ctx, &model.Trip{
		SiteID: site.ID, VehicleID: truck1.ID, Date: "2024-03-10", TripCount: 3,
	}))
	require.NoError(t, s.CreateTrip(ctx, &model.Trip{
		SiteID: site.ID, VehicleID: truck1.ID, Date: "2024-03-11", TripCount: 2,
	}))
	require.NoError(t, s.CreateTrip(ctx, &model.Trip{
		SiteID: site.ID, VehicleID: truck2.ID, Date: "2024-03-11", TripCount: 1,
	}))

	locations, err := s.ListLocations(ctx)
	require.NoError(t, err)
	require.Len(t, locations, 1)

	startedAt := time.Date(2024, 3, 12, 8, 0, 0, 0, time.UTC)
	occurrence := model.Occurrence{
		SiteID:     site.ID,
		LocationID: locations[0].ID,
		VehicleID:  truck2.ID,
		StopReason: model.StopBreakdown,
		StartedAt:  startedAt,
		UserID:     admin.ID,
	}
	require.NoError(t, s.CreateOccurrence(ctx, &occurrence))
	assert.Equal(t, model.OccurrenceInProgress, occurrence.Status)
	assert.Nil(t, occurrence.TotalMinutes)

	require.NoError(t, s.CloseOccurrence(ctx, occurrence.ID, startedAt.Add(4*time.Hour), "engine repaired"))

	require.NoError(t, s.CreateWeather(ctx, &model.WeatherEvent{
		Date: "2024-03-11", SiteID: site.ID, LocationID: locations[0].ID,
		Intensity: model.RainHeavy, StartTime: "13:00", EndTime: "14:30", TotalMinutes: 90,
		UserID: admin.ID,
	}))

	// 5. The snapshot-backed diárias report.
	snapshot, err := s.Snapshot(ctx)
	require.NoError(t, err)

	diarias := snapshot.Diarias(report.FilterSpec{})
	require.Len(t, diarias.Rows, 2)
	assert.Equal(t, "Truck 01", diarias.Rows[0].Vehicle.Name)
	assert.Equal(t, 5, diarias.Rows[0].TotalTrips)
	assert.Equal(t, 50.0, diarias.Rows[0].TotalVolume)
	assert.Equal(t, 6, diarias.Totals.TotalTrips)
	assert.Equal(t, 58.0, diarias.Totals.TotalVolume)

	// Narrowed to the driver, the other vehicle drops out of the rows.
	byDriver := snapshot.Diarias(report.FilterSpec{Drivers: []string{"Maria"}})
	require.Len(t, byDriver.Rows, 1)
	assert.Equal(t, "Truck 02", byDriver.Rows[0].Vehicle.Name)

	// 6. Resolver answers follow the recorded history.
	assert.Len(t, snapshot.ServicesForSite(site.ID), 2)
	assert.Equal(t, []string{"Carlos", "Maria"}, snapshot.DriversForSite(site.ID))

	// 7. KPIs for March, occurrence closed so none open.
	summary := snapshot.Summary(3, 2024)
	assert.Equal(t, 0, summary.OpenOccurrences)
	assert.Equal(t, 1, summary.MonthRains)
	assert.Equal(t, 2, summary.ActiveVehicles)
	assert.Equal(t, 6, summary.TotalTrips)

	kpis := report.ComputeKPIs(summary, report.DefaultHeuristics())
	assert.Equal(t, 100, kpis.AvailabilityPct)
	assert.Equal(t, 0, kpis.DowntimeHoursEstimate)

	// 8. Calendar projection for the month.
	events, err := s.ListWeather(ctx, time.March, 2024)
	require.NoError(t, err)
	grid := report.ProjectCalendar(time.March, 2024, events)
	assert.Equal(t, 5, grid.Leading) // 2024-03-01 is a Friday
	require.Len(t, grid.Days, 31)
	assert.Empty(t, grid.Days[9].Intensity)
	assert.Equal(t, model.RainHeavy, grid.Days[10].Intensity)
}
