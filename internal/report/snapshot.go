// Package report implements the filtering and aggregation core: resolving
// dependent selection dimensions, computing the daily (diárias) report and
// dashboard KPIs, and projecting weather events onto a month calendar.
//
// Everything operates on an immutable Snapshot of already-fetched records.
// The package never returns errors: records pointing at rows missing from
// the snapshot contribute zero/default values so a partially consistent
// snapshot still produces a usable dashboard.
package report

import (
	"sort"

	"github.com/AlbertoAlexandre/Apontador/internal/model"
)

// Snapshot is a point-in-time copy of the records the reporting core reads.
// Callers refresh the snapshot and re-invoke rather than mutating shared
// state; the relationship indexes are built once here, not per query.
type Snapshot struct {
	Sites       []model.Site
	Services    []model.Service
	Locations   []model.Location
	Vehicles    []model.Vehicle
	Trips       []model.Trip
	Occurrences []model.Occurrence
	Weather     []model.WeatherEvent

	servicesBySite  map[int64][]model.Service
	sitesByService  map[int64][]model.Site
	locationsBySite map[int64][]model.Location
	sitesByLocation map[int64][]model.Site
	vehicleByID     map[int64]model.Vehicle
	siteVehicleIDs  map[int64]map[int64]bool // via recorded trips
}

// NewSnapshot copies the record slices and builds the bidirectional
// site/service/location indexes and the trip-derived vehicle index.
// Site.Services and Site.Locations associations are expected preloaded.
func NewSnapshot(
	sites []model.Site,
	services []model.Service,
	locations []model.Location,
	vehicles []model.Vehicle,
	trips []model.Trip,
	occurrences []model.Occurrence,
	weather []model.WeatherEvent,
) *Snapshot {
	s := &Snapshot{
		Sites:       append([]model.Site(nil), sites...),
		Services:    append([]model.Service(nil), services...),
		Locations:   append([]model.Location(nil), locations...),
		Vehicles:    append([]model.Vehicle(nil), vehicles...),
		Trips:       append([]model.Trip(nil), trips...),
		Occurrences: append([]model.Occurrence(nil), occurrences...),
		Weather:     append([]model.WeatherEvent(nil), weather...),

		servicesBySite:  make(map[int64][]model.Service),
		sitesByService:  make(map[int64][]model.Site),
		locationsBySite: make(map[int64][]model.Location),
		sitesByLocation: make(map[int64][]model.Site),
		vehicleByID:     make(map[int64]model.Vehicle, len(vehicles)),
		siteVehicleIDs:  make(map[int64]map[int64]bool),
	}

	sort.Slice(s.Sites, func(i, j int) bool { return s.Sites[i].Name < s.Sites[j].Name })
	sort.Slice(s.Services, func(i, j int) bool { return s.Services[i].Name < s.Services[j].Name })
	sort.Slice(s.Locations, func(i, j int) bool { return s.Locations[i].Name < s.Locations[j].Name })
	sort.Slice(s.Vehicles, func(i, j int) bool { return s.Vehicles[i].Name < s.Vehicles[j].Name })

	for _, site := range s.Sites {
		seenSvc := make(map[int64]bool)
		for _, svc := range site.Services {
			if seenSvc[svc.ID] {
				continue
			}
			seenSvc[svc.ID] = true
			s.servicesBySite[site.ID] = append(s.servicesBySite[site.ID], svc)
			s.sitesByService[svc.ID] = append(s.sitesByService[svc.ID], stripAssociations(site))
		}
		seenLoc := make(map[int64]bool)
		for _, loc := range site.Locations {
			if seenLoc[loc.ID] {
				continue
			}
			seenLoc[loc.ID] = true
			s.locationsBySite[site.ID] = append(s.locationsBySite[site.ID], loc)
			s.sitesByLocation[loc.ID] = append(s.sitesByLocation[loc.ID], stripAssociations(site))
		}
		sort.Slice(s.servicesBySite[site.ID], func(i, j int) bool {
			return s.servicesBySite[site.ID][i].Name < s.servicesBySite[site.ID][j].Name
		})
		sort.Slice(s.locationsBySite[site.ID], func(i, j int) bool {
			return s.locationsBySite[site.ID][i].Name < s.locationsBySite[site.ID][j].Name
		})
	}

	for _, v := range s.Vehicles {
		s.vehicleByID[v.ID] = v
	}

	// A vehicle belongs to a site once it has a recorded trip there.
	for _, t := range s.Trips {
		ids := s.siteVehicleIDs[t.SiteID]
		if ids == nil {
			ids = make(map[int64]bool)
			s.siteVehicleIDs[t.SiteID] = ids
		}
		ids[t.VehicleID] = true
	}

	return s
}

// stripAssociations keeps the reverse indexes from holding nested slices.
func stripAssociations(site model.Site) model.Site {
	site.Services = nil
	site.Locations = nil
	return site
}

// VehicleByID looks up a vehicle; ok is false when the snapshot has no
// record of it.
func (s *Snapshot) VehicleByID(id int64) (model.Vehicle, bool) {
	v, ok := s.vehicleByID[id]
	return v, ok
}
