package model

import "time"

// StopReason classifies why a vehicle was taken out of operation.
type StopReason string

const (
	StopPreventiveMaintenance StopReason = "preventive_maintenance"
	StopCorrective            StopReason = "corrective"
	StopBreakdown             StopReason = "breakdown"
	StopRefueling             StopReason = "refueling"
)

// MaintenanceType classifies the maintenance performed, when any.
type MaintenanceType string

const (
	MaintenanceMechanical MaintenanceType = "mechanical"
	MaintenanceElectrical MaintenanceType = "electrical"
	MaintenanceHydraulic  MaintenanceType = "hydraulic"
	MaintenanceTires      MaintenanceType = "tires"
	MaintenanceOther      MaintenanceType = "other"
)

// OccurrenceStatus is the lifecycle state of a downtime occurrence.
type OccurrenceStatus string

const (
	OccurrenceInProgress OccurrenceStatus = "in_progress"
	OccurrenceCompleted  OccurrenceStatus = "completed"
)

// Occurrence is a vehicle downtime event tied to a site/location pair.
// ReturnedAt and TotalMinutes stay nil while the occurrence is open;
// status in_progress implies ReturnedAt is nil.
type Occurrence struct {
	ID               int64            `gorm:"primaryKey" json:"id"`
	SiteID           int64            `gorm:"index;not null" json:"site_id"`
	LocationID       int64            `gorm:"index;not null" json:"location_id"`
	VehicleID        int64            `gorm:"index;not null" json:"vehicle_id"`
	StopReason       StopReason       `gorm:"size:32;not null" json:"stop_reason"`
	MaintenanceType  *MaintenanceType `gorm:"size:32" json:"maintenance_type"`
	MaintenanceNotes string           `json:"maintenance_notes"`
	StartedAt        time.Time        `gorm:"not null;index" json:"started_at"`
	ReturnedAt       *time.Time       `json:"returned_at"`
	TotalMinutes     *int             `json:"total_minutes"`
	Remarks          string           `json:"remarks"`
	UserID           int64            `gorm:"index" json:"user_id"`
	PhotoPath        string           `json:"photo_path"`
	Status           OccurrenceStatus `gorm:"size:16;not null;default:in_progress" json:"status"`
	Preventive       bool             `gorm:"not null" json:"preventive"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`

	Vehicle Vehicle `json:"-"`
}
