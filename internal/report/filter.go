package report

import (
	"github.com/AlbertoAlexandre/Apontador/internal/model"
)

// DateRange bounds calendar dates (YYYY-MM-DD), inclusive on both ends.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Contains reports whether the date falls inside the range. ISO dates
// compare correctly as strings.
func (r DateRange) Contains(date string) bool {
	return date >= r.Start && date <= r.End
}

// FilterSpec is the set of optional, independent selection dimensions. A
// nil or empty list leaves that dimension unconstrained; this also covers
// the "filter enabled but nothing picked yet" state, which must not zero
// out the results. Dates, when set, bounds the record date inclusively.
type FilterSpec struct {
	Sites     []int64    `json:"sites"`
	Vehicles  []int64    `json:"vehicles"`
	Drivers   []string   `json:"drivers"`
	Services  []int64    `json:"services"`
	Locations []int64    `json:"locations"`
	Dates     *DateRange `json:"dates"`
}

// TripPredicate reports whether a trip matches a composed filter.
type TripPredicate func(model.Trip) bool

// OccurrencePredicate reports whether an occurrence matches a composed filter.
type OccurrencePredicate func(model.Occurrence) bool

// narrow enforces dependent narrowing: when sites are selected, vehicle and
// driver selections outside those sites are dropped silently. Dropping can
// empty a list, which per the empty-list rule falls back to unconstrained.
func (s *Snapshot) narrow(spec FilterSpec) FilterSpec {
	if len(spec.Sites) == 0 {
		return spec
	}
	if len(spec.Vehicles) > 0 {
		allowed := s.vehicleIDsForSites(spec.Sites)
		var kept []int64
		for _, id := range spec.Vehicles {
			if allowed[id] {
				kept = append(kept, id)
			}
		}
		spec.Vehicles = kept
	}
	if len(spec.Drivers) > 0 {
		allowed := s.driversForSites(spec.Sites)
		var kept []string
		for _, d := range spec.Drivers {
			if allowed[d] {
				kept = append(kept, d)
			}
		}
		spec.Drivers = kept
	}
	return spec
}

// Compose normalizes the spec against the snapshot and builds the trip
// predicate: AND across dimensions, OR within a dimension's value list.
func (s *Snapshot) Compose(spec FilterSpec) TripPredicate {
	spec = s.narrow(spec)
	sites := int64Set(spec.Sites)
	vehicles := int64Set(spec.Vehicles)
	drivers := stringSet(spec.Drivers)
	services := int64Set(spec.Services)
	locations := int64Set(spec.Locations)
	dates := spec.Dates

	return func(t model.Trip) bool {
		if sites != nil && !sites[t.SiteID] {
			return false
		}
		if vehicles != nil && !vehicles[t.VehicleID] {
			return false
		}
		if drivers != nil {
			v, ok := s.vehicleByID[t.VehicleID]
			if !ok || !drivers[v.Driver] {
				return false
			}
		}
		if services != nil && (t.ServiceID == nil || !services[*t.ServiceID]) {
			return false
		}
		if locations != nil && (t.LocationID == nil || !locations[*t.LocationID]) {
			return false
		}
		if dates != nil && !dates.Contains(t.Date) {
			return false
		}
		return true
	}
}

// ComposeOccurrences builds the occurrence predicate for the dimensions
// that apply to downtime records: site, location, vehicle, driver and the
// date of the stop. The service dimension has no occurrence field and is
// vacuously true.
func (s *Snapshot) ComposeOccurrences(spec FilterSpec) OccurrencePredicate {
	spec = s.narrow(spec)
	sites := int64Set(spec.Sites)
	vehicles := int64Set(spec.Vehicles)
	drivers := stringSet(spec.Drivers)
	locations := int64Set(spec.Locations)
	dates := spec.Dates

	return func(o model.Occurrence) bool {
		if sites != nil && !sites[o.SiteID] {
			return false
		}
		if locations != nil && !locations[o.LocationID] {
			return false
		}
		if vehicles != nil && !vehicles[o.VehicleID] {
			return false
		}
		if drivers != nil {
			v, ok := s.vehicleByID[o.VehicleID]
			if !ok || !drivers[v.Driver] {
				return false
			}
		}
		if dates != nil && !dates.Contains(o.StartedAt.Format("2006-01-02")) {
			return false
		}
		return true
	}
}

// FilterTrips applies a composed spec to the snapshot's trips.
func (s *Snapshot) FilterTrips(spec FilterSpec) []model.Trip {
	match := s.Compose(spec)
	var trips []model.Trip
	for _, t := range s.Trips {
		if match(t) {
			trips = append(trips, t)
		}
	}
	return trips
}

// FilterOccurrences applies a composed spec to the snapshot's occurrences.
func (s *Snapshot) FilterOccurrences(spec FilterSpec) []model.Occurrence {
	match := s.ComposeOccurrences(spec)
	var occurrences []model.Occurrence
	for _, o := range s.Occurrences {
		if match(o) {
			occurrences = append(occurrences, o)
		}
	}
	return occurrences
}

// int64Set returns nil for an empty list so membership checks can treat
// the dimension as unconstrained.
func int64Set(values []int64) map[int64]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[int64]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func stringSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
