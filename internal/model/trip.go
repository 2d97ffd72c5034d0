package model

import "time"

// Trip is one recorded haul event. TripCount is the number of repetitions
// recorded in a single entry; volume contribution is the vehicle capacity
// times TripCount. ServiceID and LocationID are optional free-form picks.
type Trip struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	SiteID     int64     `gorm:"index;not null" json:"site_id"`
	ServiceID  *int64    `gorm:"index" json:"service_id"`
	LocationID *int64    `gorm:"index" json:"location_id"`
	VehicleID  int64     `gorm:"index;not null" json:"vehicle_id"`
	Date       string    `gorm:"size:10;not null;index" json:"date"` // YYYY-MM-DD
	TripCount  int       `gorm:"not null" json:"trip_count"`
	CreatedAt  time.Time `json:"created_at"`

	// Associations (preloaded for listings)
	Site     Site      `json:"-"`
	Service  *Service  `json:"-"`
	Location *Location `json:"-"`
	Vehicle  Vehicle   `json:"-"`
}
