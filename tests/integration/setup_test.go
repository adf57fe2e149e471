//go:build integration

package integration

import (
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/courtside/courtside/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "5434"),
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_NAME", "courtside_test_db"),
	)

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to test database: %v", err)
	}

	// Drop and recreate tables for clean state
	dropTables()

	if err := testDB.AutoMigrate(
		&models.Court{},
		&models.OpeningHours{},
		&models.CourtAvailability{},
		&models.Game{},
		&models.Player{},
		&models.JoinRequest{},
		&models.Booking{},
	); err != nil {
		log.Fatalf("failed to auto-migrate test database: %v", err)
	}

	testDB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_join_request_per_user
		ON join_requests (game_id, user_id)
	`)

	code := m.Run()

	dropTables()

	os.Exit(code)
}

func dropTables() {
	testDB.Exec("DROP TABLE IF EXISTS bookings")
	testDB.Exec("DROP TABLE IF EXISTS join_requests")
	testDB.Exec("DROP TABLE IF EXISTS players")
	testDB.Exec("DROP TABLE IF EXISTS games")
	testDB.Exec("DROP TABLE IF EXISTS court_availabilities")
	testDB.Exec("DROP TABLE IF EXISTS opening_hours")
	testDB.Exec("DROP TABLE IF EXISTS courts")
}

func cleanTables() {
	testDB.Exec("DELETE FROM bookings")
	testDB.Exec("DELETE FROM join_requests")
	testDB.Exec("DELETE FROM players")
	testDB.Exec("DELETE FROM games")
	testDB.Exec("DELETE FROM court_availabilities")
	testDB.Exec("DELETE FROM courts")
	testDB.Exec("ALTER SEQUENCE IF EXISTS games_id_seq RESTART WITH 1")
	testDB.Exec("ALTER SEQUENCE IF EXISTS courts_id_seq RESTART WITH 1")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
