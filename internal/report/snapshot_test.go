package report

import (
	"time"

	"github.com/AlbertoAlexandre/Apontador/internal/model"
)

// testSnapshot builds the snapshot the report tests share: two sites with
// overlapping services/locations, three vehicles (one without trips), one
// trip against a vehicle missing from the fleet, and a mix of closed,
// open and clock-skewed occurrences.
func testSnapshot() *Snapshot {
	excavation := model.Service{ID: 1, Name: "Excavation"}
	paving := model.Service{ID: 2, Name: "Paving"}
	north := model.Location{ID: 1, Name: "North Yard"}
	south := model.Location{ID: 2, Name: "South Yard"}

	sites := []model.Site{
		{ID: 1, Name: "Dam Alpha", Services: []model.Service{excavation, paving}, Locations: []model.Location{north}},
		{ID: 2, Name: "Highway Beta", Services: []model.Service{paving}, Locations: []model.Location{south}},
	}
	services := []model.Service{excavation, paving}
	locations := []model.Location{north, south}

	vehicles := []model.Vehicle{
		{ID: 1, Name: "Truck 01", Plate: "ABC1234", CapacityM3: 10, Driver: "Carlos"},
		{ID: 2, Name: "Truck 02", Plate: "DEF5678", CapacityM3: 8, Driver: "Maria"},
		{ID: 3, Name: "Loader 01", Plate: "GHI9012", CapacityM3: 5, Driver: "Carlos"},
	}

	svc1, svc2 := int64(1), int64(2)
	loc1, loc2 := int64(1), int64(2)
	trips := []model.Trip{
		{ID: 1, SiteID: 1, ServiceID: &svc1, LocationID: &loc1, VehicleID: 1, Date: "2024-01-10", TripCount: 3},
		{ID: 2, SiteID: 1, ServiceID: &svc2, VehicleID: 1, Date: "2024-01-11", TripCount: 2},
		{ID: 3, SiteID: 2, ServiceID: &svc2, LocationID: &loc2, VehicleID: 2, Date: "2024-01-12", TripCount: 4},
		{ID: 4, SiteID: 1, VehicleID: 99, Date: "2024-01-13", TripCount: 1}, // unknown vehicle
	}

	start := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	ret := start.Add(4 * time.Hour)
	skewStart := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)
	skewRet := skewStart.Add(-4 * time.Hour) // return before start
	occurrences := []model.Occurrence{
		{ID: 1, SiteID: 1, LocationID: 1, VehicleID: 1, StopReason: model.StopBreakdown,
			StartedAt: start, ReturnedAt: &ret, Status: model.OccurrenceCompleted},
		{ID: 2, SiteID: 2, LocationID: 2, VehicleID: 2, StopReason: model.StopRefueling,
			StartedAt: start, Status: model.OccurrenceInProgress},
		{ID: 3, SiteID: 1, LocationID: 1, VehicleID: 3, StopReason: model.StopCorrective,
			StartedAt: skewStart, ReturnedAt: &skewRet, Status: model.OccurrenceCompleted},
	}

	weather := []model.WeatherEvent{
		{ID: 1, Date: "2024-01-05", SiteID: 1, LocationID: 1, Intensity: model.RainLight, StartTime: "08:00", EndTime: "10:00"},
		{ID: 2, Date: "2024-01-05", SiteID: 2, LocationID: 2, Intensity: model.RainHeavy, StartTime: "09:00", EndTime: "11:00"},
		{ID: 3, Date: "2024-02-01", SiteID: 1, LocationID: 1, Intensity: model.RainModerate, StartTime: "13:00", EndTime: "14:30"},
	}

	return NewSnapshot(sites, services, locations, vehicles, trips, occurrences, weather)
}
