package model

import "time"

// RainIntensity classifies a recorded rain interruption.
type RainIntensity string

const (
	RainLight    RainIntensity = "light"
	RainModerate RainIntensity = "moderate"
	RainHeavy    RainIntensity = "heavy"
)

// WeatherEvent is a rain interruption for a site/location pair on a given
// day. StartTime and EndTime are wall-clock "HH:MM" values; TotalMinutes
// accounts for intervals that cross midnight.
type WeatherEvent struct {
	ID           int64         `gorm:"primaryKey" json:"id"`
	Date         string        `gorm:"size:10;not null;index" json:"date"` // YYYY-MM-DD
	SiteID       int64         `gorm:"index;not null" json:"site_id"`
	LocationID   int64         `gorm:"index;not null" json:"location_id"`
	Intensity    RainIntensity `gorm:"size:16;not null" json:"intensity"`
	StartTime    string        `gorm:"size:5;not null" json:"start_time"` // HH:MM
	EndTime      string        `gorm:"size:5;not null" json:"end_time"`   // HH:MM
	TotalMinutes int           `gorm:"not null" json:"total_minutes"`
	Remarks      string        `json:"remarks"`
	UserID       int64         `gorm:"index" json:"user_id"`
	CreatedAt    time.Time     `json:"created_at"`
}
