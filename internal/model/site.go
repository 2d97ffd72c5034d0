package model

import "time"

// Site represents a construction site, the top-level grouping entity.
// Services and locations are shared between sites (many-to-many).
type Site struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:128;not null" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	Services  []Service  `gorm:"many2many:site_services" json:"services,omitempty"`
	Locations []Location `gorm:"many2many:site_locations" json:"locations,omitempty"`
}

// Service is a kind of work performed at one or more sites.
type Service struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:128;not null" json:"name"`
	CreatedAt time.Time `json:"-"`

	Sites []Site `gorm:"many2many:site_services" json:"-"`
}

// Location is a work location shared between sites.
type Location struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:128;not null" json:"name"`
	CreatedAt time.Time `json:"-"`

	Sites []Site `gorm:"many2many:site_locations" json:"-"`
}
