package model

import "time"

// Professional is a registered worker (driver, foreman, administrator).
type Professional struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	Role      string    `gorm:"size:64;not null" json:"role"`
	Phone     string    `gorm:"size:32" json:"phone"`
	Email     string    `gorm:"size:128" json:"email"`
	CreatedAt time.Time `json:"-"`
}

// User is a login bound to a professional.
type User struct {
	ID             int64     `gorm:"primaryKey" json:"id"`
	ProfessionalID int64     `gorm:"index;not null" json:"professional_id"`
	Username       string    `gorm:"uniqueIndex;size:64;not null" json:"username"`
	Password       string    `gorm:"size:128;not null" json:"-"`
	CreatedAt      time.Time `json:"-"`

	Professional Professional `json:"professional"`
	Permission   Permission   `json:"permission"`
}

// Permission holds the per-user capability flags that gate which sections
// and aggregations are served. A new user starts with everything off.
type Permission struct {
	ID               int64 `gorm:"primaryKey" json:"-"`
	UserID           int64 `gorm:"uniqueIndex;not null" json:"-"`
	Admin            bool  `gorm:"not null" json:"admin"`
	Dashboard        bool  `gorm:"not null" json:"dashboard"`
	TripRegistration bool  `gorm:"not null" json:"trip_registration"`
	Sites            bool  `gorm:"not null" json:"sites"`
	Vehicles         bool  `gorm:"not null" json:"vehicles"`
	Professionals    bool  `gorm:"not null" json:"professionals"`
	DailyReport      bool  `gorm:"not null" json:"daily_report"`
	ControlPanel     bool  `gorm:"not null" json:"control_panel"`
	ViewOccurrences  bool  `gorm:"not null" json:"view_occurrences"`
	ViewWeather      bool  `gorm:"not null" json:"view_weather"`
}

// AllPermissions returns a fully enabled permission row, used for the
// seeded administrator.
func AllPermissions(userID int64) Permission {
	return Permission{
		UserID:           userID,
		Admin:            true,
		Dashboard:        true,
		TripRegistration: true,
		Sites:            true,
		Vehicles:         true,
		Professionals:    true,
		DailyReport:      true,
		ControlPanel:     true,
		ViewOccurrences:  true,
		ViewWeather:      true,
	}
}
