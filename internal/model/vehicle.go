package model

import "time"

// Vehicle is a haul vehicle of the fleet. CapacityM3 is the load volume
// used to derive trip volume (capacity times trip count).
type Vehicle struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:128;not null" json:"name"`
	Plate      string    `gorm:"uniqueIndex;size:16;not null" json:"plate"`
	CapacityM3 float64   `gorm:"not null" json:"capacity_m3"`
	Driver     string    `gorm:"size:128;not null" json:"driver"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}
