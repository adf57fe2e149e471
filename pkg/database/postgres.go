package database

import (
	"log"

	"github.com/courtside/courtside/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Court{},
		&models.OpeningHours{},
		&models.CourtAvailability{},
		&models.Game{},
		&models.Player{},
		&models.JoinRequest{},
		&models.Booking{},
	); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Partial unique index: one live join request per (game, user). A denied
	// request is terminal and keeps its row, so it stays covered too; only
	// rows that never existed read as not_joined.
	db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_join_request_per_user
		ON join_requests (game_id, user_id)
	`)

	return db
}
