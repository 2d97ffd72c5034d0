package report

import (
	"fmt"
	"math"

	"github.com/AlbertoAlexandre/Apontador/internal/model"
)

// KPISummary are the raw dashboard counters the derived percentages are
// computed from.
type KPISummary struct {
	OpenOccurrences int `json:"open_occurrences"`
	MonthRains      int `json:"month_rains"`
	ActiveVehicles  int `json:"active_vehicles"`
	TotalTrips      int `json:"total_trips"`
}

// KPIs is the summary plus the derived dashboard metrics.
type KPIs struct {
	KPISummary
	AvailabilityPct       int `json:"availability_pct"`
	DowntimeHoursEstimate int `json:"downtime_hours_estimate"`
	EfficiencyPct         int `json:"efficiency_pct"`
	PerformanceScore      int `json:"performance_score"`
}

// ComputeKPIs derives the dashboard percentages from a summary.
//
// Availability assumes each open occurrence takes one vehicle out of
// service; with no active vehicles it is defined as 100. The downtime
// estimate charges the configured shift hours per open occurrence rather
// than wall-clock time. Efficiency measures trips against the per-vehicle
// target and is 0 with no vehicles or no trips.
func ComputeKPIs(sum KPISummary, h Heuristics) KPIs {
	k := KPIs{KPISummary: sum}

	if sum.ActiveVehicles == 0 {
		k.AvailabilityPct = 100
	} else {
		pct := float64(sum.ActiveVehicles-sum.OpenOccurrences) / float64(sum.ActiveVehicles) * 100
		k.AvailabilityPct = clampPct(int(math.Round(pct)))
	}

	k.DowntimeHoursEstimate = int(math.Round(float64(sum.OpenOccurrences) * h.ShiftHoursPerOpenOccurrence))

	if sum.ActiveVehicles > 0 && sum.TotalTrips > 0 {
		target := sum.ActiveVehicles * h.TripsPerVehicleTarget
		pct := int(math.Round(float64(sum.TotalTrips) / float64(target) * 100))
		if pct > 100 {
			pct = 100
		}
		k.EfficiencyPct = pct
	}

	k.PerformanceScore = int(math.Round(float64(k.AvailabilityPct+k.EfficiencyPct) / 2))
	return k
}

func clampPct(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// Summary counts the raw KPI inputs for the given month: open occurrences,
// rain events recorded in (month, year), active fleet size and total trips.
func (s *Snapshot) Summary(month int, year int) KPISummary {
	sum := KPISummary{ActiveVehicles: len(s.Vehicles)}
	for _, o := range s.Occurrences {
		if o.Status == model.OccurrenceInProgress {
			sum.OpenOccurrences++
		}
	}
	prefix := fmt.Sprintf("%04d-%02d", year, month)
	for _, w := range s.Weather {
		if len(w.Date) >= 7 && w.Date[:7] == prefix {
			sum.MonthRains++
		}
	}
	for _, t := range s.Trips {
		sum.TotalTrips += t.TripCount
	}
	return sum
}

// Dashboard is the permission-gated dashboard payload. Sections whose
// capability is off are never computed and stay nil.
type Dashboard struct {
	Cards    *DashboardCards `json:"cards,omitempty"`
	KPIs     *KPIs           `json:"kpis,omitempty"`
	Downtime *DowntimeChart  `json:"downtime,omitempty"`
}

// BuildDashboard assembles the dashboard for a user. The dashboard
// capability gates the cards and KPIs, view_occurrences gates the downtime
// chart, and view_weather gates the month rain counter inside the KPIs.
func (s *Snapshot) BuildDashboard(spec FilterSpec, perms model.Permission, month int, year int, h Heuristics) Dashboard {
	var d Dashboard
	if perms.Dashboard {
		cards := s.Cards(spec)
		d.Cards = &cards

		sum := s.Summary(month, year)
		if !perms.ViewWeather {
			sum.MonthRains = 0
		}
		kpis := ComputeKPIs(sum, h)
		d.KPIs = &kpis
	}
	if perms.ViewOccurrences {
		downtime := s.Downtime(spec, h)
		d.Downtime = &downtime
	}
	return d
}
