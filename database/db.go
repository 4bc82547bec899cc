package database

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"travel-booking/logger"
	"travel-booking/models/booking"
	"travel-booking/models/log"
	"travel-booking/models/travelpackage"
	"travel-booking/models/user"
)

var DB *gorm.DB

// InitDB initializes the database connection, runs migrations and creates
// indexes.
func InitDB() (*gorm.DB, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	username := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, username, password, database, sslmode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := autoMigrate(DB); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	if err := createIndexes(DB); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	return DB, nil
}

// autoMigrate migrates models in dependency order so foreign keys resolve.
func autoMigrate(db *gorm.DB) error {
	// Stage 1: tables without foreign keys
	if err := db.AutoMigrate(&user.User{}, &travelpackage.TravelPackage{}, &log.Log{}); err != nil {
		return err
	}

	// Stage 2: tables referencing stage 1
	if err := db.AutoMigrate(&booking.Booking{}); err != nil {
		return err
	}

	return nil
}

// createIndexes adds indexes for the hot query paths.
func createIndexes(db *gorm.DB) error {
	statements := []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users (email) WHERE deleted_at IS NULL",
		"CREATE INDEX IF NOT EXISTS idx_travel_packages_destination ON travel_packages (destination)",
		"CREATE INDEX IF NOT EXISTS idx_travel_packages_active ON travel_packages (is_active) WHERE deleted_at IS NULL",
		"CREATE INDEX IF NOT EXISTS idx_bookings_user_id ON bookings (user_id)",
		"CREATE INDEX IF NOT EXISTS idx_bookings_travel_package_id ON bookings (travel_package_id)",
		"CREATE INDEX IF NOT EXISTS idx_bookings_status ON bookings (status)",
		"CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs (created_at)",
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("index creation failed: %w", err)
		}
	}

	return nil
}

// RunMigration is the entry point used by the migrate tool.
func RunMigration() error {
	_, err := InitDB()
	return err
}
