package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Session  SessionConfig  `yaml:"session"`
	Report   ReportConfig   `yaml:"report"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RequestIPHeader string  `yaml:"request_ip_header"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
	CacheTTLSeconds int     `yaml:"cache_ttl_seconds"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	Driver                 string `yaml:"driver"` // "sqlite" or "postgres"
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

// SessionConfig holds the login session settings.
type SessionConfig struct {
	TTLMinutes int           `yaml:"ttl_minutes"`
	TTL        time.Duration `yaml:"-"` // Ignored by YAML parser
}

// ReportConfig holds the reporting heuristics and validation policy. The
// hour/trip constants were inherited as fixed business numbers; they are
// configurable because their derivation is undocumented.
type ReportConfig struct {
	ShiftHoursPerOpenOccurrence float64 `yaml:"shift_hours_per_open_occurrence"`
	TripsPerVehicleTarget       int     `yaml:"trips_per_vehicle_target"`
	// StrictTripAssociations rejects trips whose service/location is not
	// associated with the trip's site. Off by default: the system has
	// historically accepted free-form picks.
	StrictTripAssociations bool `yaml:"strict_trip_associations"`
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}
	if cfg.Server.CacheTTLSeconds <= 0 {
		cfg.Server.CacheTTLSeconds = 60
	}

	switch cfg.Database.Driver {
	case "":
		cfg.Database.Driver = "sqlite"
	case "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	if cfg.Database.DSN == "" {
		if cfg.Database.Driver != "sqlite" {
			return nil, fmt.Errorf("database.dsn must be set for driver %q", cfg.Database.Driver)
		}
		cfg.Database.DSN = "apontador.db"
	}

	if cfg.Session.TTLMinutes <= 0 {
		cfg.Session.TTLMinutes = 8 * 60
	}
	cfg.Session.TTL = time.Duration(cfg.Session.TTLMinutes) * time.Minute

	if cfg.Report.ShiftHoursPerOpenOccurrence <= 0 {
		cfg.Report.ShiftHoursPerOpenOccurrence = 8
	}
	if cfg.Report.TripsPerVehicleTarget <= 0 {
		cfg.Report.TripsPerVehicleTarget = 10
	}

	return &cfg, nil
}
