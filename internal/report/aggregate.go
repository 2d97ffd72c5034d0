package report

import (
	"math"
	"strconv"
	"time"

	"github.com/AlbertoAlexandre/Apontador/internal/model"
)

// Heuristics are the business constants behind the dashboard metrics. Their
// derivation is undocumented upstream, so they are configuration rather
// than literals.
type Heuristics struct {
	// Hours charged per open occurrence, both for the downtime estimate
	// KPI and for in-progress occurrences in the downtime chart.
	ShiftHoursPerOpenOccurrence float64
	// Trips per active vehicle considered 100% efficient.
	TripsPerVehicleTarget int
}

// DefaultHeuristics returns the constants the system shipped with.
func DefaultHeuristics() Heuristics {
	return Heuristics{
		ShiftHoursPerOpenOccurrence: 8,
		TripsPerVehicleTarget:       10,
	}
}

// DiariaRow is one vehicle's line of the daily (diárias) report.
type DiariaRow struct {
	Vehicle     model.Vehicle `json:"vehicle"`
	TotalTrips  int           `json:"total_trips"`
	TotalVolume float64       `json:"total_volume"`
}

// DiariasReport is the per-vehicle daily report. Totals is the synthetic
// summary row the table renders last; it is present even when Rows is
// empty so the report always closes with a (possibly zero) total.
type DiariasReport struct {
	Rows   []DiariaRow `json:"rows"`
	Totals DiariaRow   `json:"totals"`
}

// Diarias aggregates the filtered trips per vehicle. One row per vehicle
// passing the vehicle/driver dimensions, in vehicle-name order, including
// vehicles with no matching trips (zeros), mirroring the report's full
// fleet listing.
func (s *Snapshot) Diarias(spec FilterSpec) DiariasReport {
	spec = s.narrow(spec)
	vehicles := int64Set(spec.Vehicles)
	drivers := stringSet(spec.Drivers)

	tripsByVehicle := make(map[int64][]model.Trip)
	for _, t := range s.FilterTrips(spec) {
		tripsByVehicle[t.VehicleID] = append(tripsByVehicle[t.VehicleID], t)
	}

	var report DiariasReport
	for _, v := range s.Vehicles { // name-ordered
		if vehicles != nil && !vehicles[v.ID] {
			continue
		}
		if drivers != nil && !drivers[v.Driver] {
			continue
		}
		row := DiariaRow{Vehicle: v}
		for _, t := range tripsByVehicle[v.ID] {
			row.TotalTrips += t.TripCount
			row.TotalVolume += v.CapacityM3 * float64(t.TripCount)
		}
		report.Rows = append(report.Rows, row)
		report.Totals.TotalTrips += row.TotalTrips
		report.Totals.TotalVolume += row.TotalVolume
	}
	return report
}

// DashboardCards are the headline counters of the dashboard.
type DashboardCards struct {
	DistinctSites    int     `json:"distinct_sites"`
	DistinctVehicles int     `json:"distinct_vehicles"`
	TotalTrips       int     `json:"total_trips"`
	TotalVolume      float64 `json:"total_volume"`
}

// Cards computes the headline counters over the filtered trips. A trip
// whose vehicle is missing from the snapshot contributes its trip count
// but no volume.
func (s *Snapshot) Cards(spec FilterSpec) DashboardCards {
	sites := make(map[int64]bool)
	vehicles := make(map[int64]bool)
	var cards DashboardCards
	for _, t := range s.FilterTrips(spec) {
		sites[t.SiteID] = true
		vehicles[t.VehicleID] = true
		cards.TotalTrips += t.TripCount
		if v, ok := s.vehicleByID[t.VehicleID]; ok {
			cards.TotalVolume += v.CapacityM3 * float64(t.TripCount)
		}
	}
	cards.DistinctSites = len(sites)
	cards.DistinctVehicles = len(vehicles)
	return cards
}

// DowntimeSlice is one vehicle's accumulated downtime for the chart.
type DowntimeSlice struct {
	Vehicle string  `json:"vehicle"`
	Hours   float64 `json:"hours"`
}

// DowntimeChart is the downtime-hours-per-vehicle aggregation.
type DowntimeChart struct {
	Slices          []DowntimeSlice `json:"slices"`
	TotalHours      float64         `json:"total_hours"`
	VehiclesStopped int             `json:"vehicles_stopped"`
}

// Downtime accumulates downtime hours per vehicle over the filtered
// occurrences. Closed occurrences contribute the absolute difference
// between return and start (clock skew tolerated, never rejected); open
// ones contribute the flat per-shift fallback. Vehicles with qualifying
// occurrences count as stopped even when their accumulated hours round to
// zero, but zero-hour vehicles are left out of the chart slices.
func (s *Snapshot) Downtime(spec FilterSpec, h Heuristics) DowntimeChart {
	hoursByVehicle := make(map[int64]float64)
	order := make([]int64, 0)
	var chart DowntimeChart

	for _, o := range s.FilterOccurrences(spec) {
		var hours float64
		switch {
		case o.ReturnedAt != nil:
			hours = math.Abs(o.ReturnedAt.Sub(o.StartedAt).Hours())
		case o.Status == model.OccurrenceInProgress:
			hours = h.ShiftHoursPerOpenOccurrence
		default:
			continue // completed without a return timestamp: no duration known
		}
		if _, seen := hoursByVehicle[o.VehicleID]; !seen {
			order = append(order, o.VehicleID)
			chart.VehiclesStopped++
		}
		hoursByVehicle[o.VehicleID] += hours
		chart.TotalHours += hours
	}

	for _, id := range order {
		if hoursByVehicle[id] == 0 {
			continue
		}
		chart.Slices = append(chart.Slices, DowntimeSlice{
			Vehicle: s.vehicleLabel(id),
			Hours:   hoursByVehicle[id],
		})
	}
	return chart
}

func (s *Snapshot) vehicleLabel(id int64) string {
	if v, ok := s.vehicleByID[id]; ok {
		return v.Name
	}
	return "vehicle " + strconv.FormatInt(id, 10)
}

// OccurrenceMinutes computes the stored total for a downtime occurrence:
// whole minutes between start and return, floored. Nil while still open.
func OccurrenceMinutes(startedAt time.Time, returnedAt *time.Time) *int {
	if returnedAt == nil {
		return nil
	}
	minutes := int(math.Floor(returnedAt.Sub(startedAt).Minutes()))
	return &minutes
}
