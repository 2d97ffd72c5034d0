package report

import (
	"sort"

	"github.com/AlbertoAlexandre/Apontador/internal/model"
)

// The resolver answers the dependent-dimension queries: given a site, which
// services, locations, vehicles and drivers apply. An unknown site yields
// empty results rather than an error so selection widgets degrade to empty
// lists instead of failing. Passing siteID 0 returns the global set.

// ServicesForSite returns the services associated with a site, name-ordered.
func (s *Snapshot) ServicesForSite(siteID int64) []model.Service {
	if siteID == 0 {
		return append([]model.Service(nil), s.Services...)
	}
	return append([]model.Service(nil), s.servicesBySite[siteID]...)
}

// LocationsForSite returns the locations associated with a site, name-ordered.
func (s *Snapshot) LocationsForSite(siteID int64) []model.Location {
	if siteID == 0 {
		return append([]model.Location(nil), s.Locations...)
	}
	return append([]model.Location(nil), s.locationsBySite[siteID]...)
}

// SitesForService is the reverse join: the sites using a service.
func (s *Snapshot) SitesForService(serviceID int64) []model.Site {
	return append([]model.Site(nil), s.sitesByService[serviceID]...)
}

// SitesForLocation is the reverse join: the sites using a location.
func (s *Snapshot) SitesForLocation(locationID int64) []model.Site {
	return append([]model.Site(nil), s.sitesByLocation[locationID]...)
}

// VehiclesForSite returns the vehicles with at least one recorded trip at
// the site, name-ordered.
func (s *Snapshot) VehiclesForSite(siteID int64) []model.Vehicle {
	if siteID == 0 {
		return append([]model.Vehicle(nil), s.Vehicles...)
	}
	var vehicles []model.Vehicle
	for _, v := range s.Vehicles { // already name-ordered
		if s.siteVehicleIDs[siteID][v.ID] {
			vehicles = append(vehicles, v)
		}
	}
	return vehicles
}

// DriversForSite returns the distinct driver names of VehiclesForSite.
func (s *Snapshot) DriversForSite(siteID int64) []string {
	seen := make(map[string]bool)
	var drivers []string
	for _, v := range s.VehiclesForSite(siteID) {
		if v.Driver == "" || seen[v.Driver] {
			continue
		}
		seen[v.Driver] = true
		drivers = append(drivers, v.Driver)
	}
	sort.Strings(drivers)
	return drivers
}

// vehicleIDsForSites unions the per-site vehicle sets of the selected sites.
func (s *Snapshot) vehicleIDsForSites(siteIDs []int64) map[int64]bool {
	ids := make(map[int64]bool)
	for _, siteID := range siteIDs {
		for id := range s.siteVehicleIDs[siteID] {
			ids[id] = true
		}
	}
	return ids
}

// driversForSites unions the per-site driver sets of the selected sites.
func (s *Snapshot) driversForSites(siteIDs []int64) map[string]bool {
	drivers := make(map[string]bool)
	for id := range s.vehicleIDsForSites(siteIDs) {
		if v, ok := s.vehicleByID[id]; ok && v.Driver != "" {
			drivers[v.Driver] = true
		}
	}
	return drivers
}
