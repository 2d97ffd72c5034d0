package db

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/AlbertoAlexandre/Apontador/config"
	"github.com/AlbertoAlexandre/Apontador/internal/model"
)

// Init initializes the database connection and runs migrations.
func Init(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetimeMinutes > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)
	}

	log.Println("Running database migrations...")
	if err := Migrate(db); err != nil {
		return nil, err
	}

	if err := SeedAdmin(db); err != nil {
		return nil, err
	}

	log.Println("Database initialization complete.")
	return db, nil
}

// Migrate runs the schema migrations for all entities.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Site{},
		&model.Service{},
		&model.Location{},
		&model.Vehicle{},
		&model.Trip{},
		&model.Occurrence{},
		&model.WeatherEvent{},
		&model.Professional{},
		&model.User{},
		&model.Permission{},
	); err != nil {
		return fmt.Errorf("automigrate failed: %w", err)
	}
	return nil
}

// SeedAdmin creates the default administrator with full permissions on the
// first run. Existing installations are left untouched.
func SeedAdmin(db *gorm.DB) error {
	var user model.User
	err := db.Where("username = ?", "adm").First(&user).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check admin user: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		professional := model.Professional{Name: "Administrator", Role: "Administrator"}
		if err := tx.Create(&professional).Error; err != nil {
			return fmt.Errorf("failed to seed admin professional: %w", err)
		}
		admin := model.User{ProfessionalID: professional.ID, Username: "adm", Password: "123"}
		if err := tx.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to seed admin user: %w", err)
		}
		permission := model.AllPermissions(admin.ID)
		if err := tx.Create(&permission).Error; err != nil {
			return fmt.Errorf("failed to seed admin permissions: %w", err)
		}
		log.Println("Seeded default administrator account")
		return nil
	})
}
