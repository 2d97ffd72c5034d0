package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AlbertoAlexandre/Apontador/internal/model"
	"github.com/AlbertoAlexandre/Apontador/internal/report"
)

// Store defines the interface for all database operations.
type Store interface {
	DB() *gorm.DB

	ListSites(ctx context.Context) ([]model.Site, error)
	CreateSite(ctx context.Context, name string, serviceNames, locationNames []string) (model.Site, error)
	DeleteSite(ctx context.Context, id int64) error
	ListServices(ctx context.Context) ([]model.Service, error)
	ListLocations(ctx context.Context) ([]model.Location, error)

	ListVehicles(ctx context.Context) ([]model.Vehicle, error)
	CreateVehicle(ctx context.Context, vehicle *model.Vehicle) error

	ListTrips(ctx context.Context) ([]model.Trip, error)
	CreateTrip(ctx context.Context, trip *model.Trip) error

	ListOccurrences(ctx context.Context) ([]model.Occurrence, error)
	CreateOccurrence(ctx context.Context, occurrence *model.Occurrence) error
	CloseOccurrence(ctx context.Context, id int64, returnedAt time.Time, remarks string) error

	ListWeather(ctx context.Context, month time.Month, year int) ([]model.WeatherEvent, error)
	CreateWeather(ctx context.Context, event *model.WeatherEvent) error

	ListProfessionals(ctx context.Context) ([]model.Professional, error)
	CreateProfessional(ctx context.Context, professional *model.Professional) error
	ListUsers(ctx context.Context) ([]model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
	Authenticate(ctx context.Context, username, password string) (model.User, error)
	UpdatePermissions(ctx context.Context, userID int64, perms model.Permission) error

	Snapshot(ctx context.Context) (*report.Snapshot, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}

// ListSites returns all sites with their service/location associations,
// ordered by name.
func (s *gormStore) ListSites(ctx context.Context) ([]model.Site, error) {
	var sites []model.Site
	err := s.db.WithContext(ctx).
		Preload("Services").
		Preload("Locations").
		Order("name").
		Find(&sites).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}
	return sites, nil
}

// CreateSite upserts the site by name and attaches the named services and
// locations, creating missing ones. Re-registering an existing site only
// extends its associations.
func (s *gormStore) CreateSite(ctx context.Context, name string, serviceNames, locationNames []string) (model.Site, error) {
	var site model.Site
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		site = model.Site{Name: name}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"updated_at"}),
		}).Create(&site).Error; err != nil {
			return fmt.Errorf("failed to upsert site %q: %w", name, err)
		}
		if site.ID == 0 {
			if err := tx.Where("name = ?", name).First(&site).Error; err != nil {
				return fmt.Errorf("failed to reload site %q: %w", name, err)
			}
		}

		for _, svcName := range serviceNames {
			svc := model.Service{Name: svcName}
			if err := tx.Where("name = ?", svcName).FirstOrCreate(&svc).Error; err != nil {
				return fmt.Errorf("failed to upsert service %q: %w", svcName, err)
			}
			if err := tx.Model(&site).Association("Services").Append(&svc); err != nil {
				return fmt.Errorf("failed to associate service %q: %w", svcName, err)
			}
		}
		for _, locName := range locationNames {
			loc := model.Location{Name: locName}
			if err := tx.Where("name = ?", locName).FirstOrCreate(&loc).Error; err != nil {
				return fmt.Errorf("failed to upsert location %q: %w", locName, err)
			}
			if err := tx.Model(&site).Association("Locations").Append(&loc); err != nil {
				return fmt.Errorf("failed to associate location %q: %w", locName, err)
			}
		}
		return nil
	})
	if err != nil {
		return model.Site{}, err
	}
	return site, nil
}

// DeleteSite removes a site and its association rows. Historical trips,
// occurrences and weather events are kept; they keep pointing at the old
// site id and the reporting layer treats missing references as zero.
func (s *gormStore) DeleteSite(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		site := model.Site{ID: id}
		if err := tx.Model(&site).Association("Services").Clear(); err != nil {
			return fmt.Errorf("failed to clear service associations for site %d: %w", id, err)
		}
		if err := tx.Model(&site).Association("Locations").Clear(); err != nil {
			return fmt.Errorf("failed to clear location associations for site %d: %w", id, err)
		}
		if err := tx.Delete(&model.Site{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete site %d: %w", id, err)
		}
		return nil
	})
}

func (s *gormStore) ListServices(ctx context.Context) ([]model.Service, error) {
	var services []model.Service
	if err := s.db.WithContext(ctx).Order("name").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (s *gormStore) ListLocations(ctx context.Context) ([]model.Location, error) {
	var locations []model.Location
	if err := s.db.WithContext(ctx).Order("name").Find(&locations).Error; err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locations, nil
}

func (s *gormStore) ListVehicles(ctx context.Context) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	if err := s.db.WithContext(ctx).Order("name").Find(&vehicles).Error; err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return vehicles, nil
}

func (s *gormStore) CreateVehicle(ctx context.Context, vehicle *model.Vehicle) error {
	if err := s.db.WithContext(ctx).Create(vehicle).Error; err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

// ListTrips returns all trips newest-first with their references preloaded
// for listing.
func (s *gormStore) ListTrips(ctx context.Context) ([]model.Trip, error) {
	var trips []model.Trip
	err := s.db.WithContext(ctx).
		Preload("Site").
		Preload("Service").
		Preload("Location").
		Preload("Vehicle").
		Order("date DESC").
		Find(&trips).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	return trips, nil
}

func (s *gormStore) CreateTrip(ctx context.Context, trip *model.Trip) error {
	if err := s.db.WithContext(ctx).Create(trip).Error; err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}
	return nil
}

func (s *gormStore) ListOccurrences(ctx context.Context) ([]model.Occurrence, error) {
	var occurrences []model.Occurrence
	err := s.db.WithContext(ctx).
		Preload("Vehicle").
		Order("started_at DESC").
		Find(&occurrences).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list occurrences: %w", err)
	}
	return occurrences, nil
}

// CreateOccurrence stores a downtime occurrence, deriving the preventive
// flag and total minutes when the record already carries a return time.
func (s *gormStore) CreateOccurrence(ctx context.Context, occurrence *model.Occurrence) error {
	occurrence.Preventive = occurrence.StopReason == model.StopPreventiveMaintenance
	occurrence.TotalMinutes = report.OccurrenceMinutes(occurrence.StartedAt, occurrence.ReturnedAt)
	if occurrence.Status == "" {
		occurrence.Status = model.OccurrenceInProgress
	}
	if err := s.db.WithContext(ctx).Create(occurrence).Error; err != nil {
		return fmt.Errorf("failed to create occurrence: %w", err)
	}
	return nil
}

// CloseOccurrence records the vehicle's return, recomputes the total
// minutes from the stored start and marks the occurrence completed.
func (s *gormStore) CloseOccurrence(ctx context.Context, id int64, returnedAt time.Time, remarks string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var occurrence model.Occurrence
		if err := tx.First(&occurrence, id).Error; err != nil {
			return fmt.Errorf("failed to load occurrence %d: %w", id, err)
		}
		updates := map[string]any{
			"returned_at":   returnedAt,
			"total_minutes": report.OccurrenceMinutes(occurrence.StartedAt, &returnedAt),
			"status":        model.OccurrenceCompleted,
			"remarks":       remarks,
		}
		if err := tx.Model(&occurrence).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to close occurrence %d: %w", id, err)
		}
		return nil
	})
}

// ListWeather returns weather events newest-first, optionally narrowed to
// one month. A zero month or year returns everything.
func (s *gormStore) ListWeather(ctx context.Context, month time.Month, year int) ([]model.WeatherEvent, error) {
	q := s.db.WithContext(ctx).Order("date DESC")
	if month > 0 && year > 0 {
		q = q.Where("date LIKE ?", fmt.Sprintf("%04d-%02d-%%", year, month))
	}
	var events []model.WeatherEvent
	if err := q.Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list weather events: %w", err)
	}
	return events, nil
}

func (s *gormStore) CreateWeather(ctx context.Context, event *model.WeatherEvent) error {
	if err := s.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to create weather event: %w", err)
	}
	return nil
}

func (s *gormStore) ListProfessionals(ctx context.Context) ([]model.Professional, error) {
	var professionals []model.Professional
	if err := s.db.WithContext(ctx).Order("name").Find(&professionals).Error; err != nil {
		return nil, fmt.Errorf("failed to list professionals: %w", err)
	}
	return professionals, nil
}

func (s *gormStore) CreateProfessional(ctx context.Context, professional *model.Professional) error {
	if err := s.db.WithContext(ctx).Create(professional).Error; err != nil {
		return fmt.Errorf("failed to create professional: %w", err)
	}
	return nil
}

func (s *gormStore) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := s.db.WithContext(ctx).
		Preload("Professional").
		Preload("Permission").
		Order("username").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// CreateUser stores the login and its default permission row with every
// capability off; access is granted afterwards through UpdatePermissions.
func (s *gormStore) CreateUser(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Professional", "Permission").Create(user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		permission := model.Permission{UserID: user.ID}
		if err := tx.Create(&permission).Error; err != nil {
			return fmt.Errorf("failed to create default permissions: %w", err)
		}
		user.Permission = permission
		return nil
	})
}

// Authenticate looks the login up by credentials with its professional and
// permission rows preloaded. gorm.ErrRecordNotFound means bad credentials.
func (s *gormStore) Authenticate(ctx context.Context, username, password string) (model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).
		Preload("Professional").
		Preload("Permission").
		Where("username = ? AND password = ?", username, password).
		First(&user).Error
	if err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (s *gormStore) UpdatePermissions(ctx context.Context, userID int64, perms model.Permission) error {
	perms.UserID = userID
	err := s.db.WithContext(ctx).
		Model(&model.Permission{}).
		Where("user_id = ?", userID).
		Select("admin", "dashboard", "trip_registration", "sites", "vehicles",
			"professionals", "daily_report", "control_panel", "view_occurrences", "view_weather").
		Updates(perms).Error
	if err != nil {
		return fmt.Errorf("failed to update permissions for user %d: %w", userID, err)
	}
	return nil
}

// Snapshot fetches every collection the reporting core reads and builds
// the immutable snapshot with its relationship indexes.
func (s *gormStore) Snapshot(ctx context.Context) (*report.Snapshot, error) {
	sites, err := s.ListSites(ctx)
	if err != nil {
		return nil, err
	}
	services, err := s.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	locations, err := s.ListLocations(ctx)
	if err != nil {
		return nil, err
	}
	vehicles, err := s.ListVehicles(ctx)
	if err != nil {
		return nil, err
	}
	var trips []model.Trip
	if err := s.db.WithContext(ctx).Find(&trips).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch trips for snapshot: %w", err)
	}
	var occurrences []model.Occurrence
	if err := s.db.WithContext(ctx).Find(&occurrences).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch occurrences for snapshot: %w", err)
	}
	var weather []model.WeatherEvent
	if err := s.db.WithContext(ctx).Find(&weather).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch weather events for snapshot: %w", err)
	}

	return report.NewSnapshot(sites, services, locations, vehicles, trips, occurrences, weather), nil
}
