package repository

import (
	"context"
	"time"

	"github.com/courtside/courtside/internal/models"
	"gorm.io/gorm"
)

type GameFilter struct {
	Sport string
	Date  *time.Time // calendar-day match
}

type GameRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Game, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Game, error)
	FindAll(ctx context.Context, filter GameFilter) ([]models.Game, error)
	AddPlayer(ctx context.Context, tx *gorm.DB, player *models.Player) error
	UpdateCounts(ctx context.Context, tx *gorm.DB, gameID uint, current int, status models.GameStatus) error
	GetDB() *gorm.DB
}

type gameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *gameRepository) FindByID(ctx context.Context, id uint) (*models.Game, error) {
	var game models.Game
	if err := r.db.WithContext(ctx).
		Preload("Players").
		First(&game, id).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

// FindByIDForUpdate acquires a row-level lock on the game within the given
// transaction, serializing concurrent approvals against the same roster.
func (r *gameRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Game, error) {
	var game models.Game
	if err := tx.WithContext(ctx).
		Set("gorm:query_option", "FOR UPDATE").
		First(&game, id).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *gameRepository) FindAll(ctx context.Context, filter GameFilter) ([]models.Game, error) {
	q := r.db.WithContext(ctx)
	if filter.Sport != "" {
		q = q.Where("sport = ?", filter.Sport)
	}
	if filter.Date != nil {
		dayStart := truncateToDay(*filter.Date)
		q = q.Where("datetime >= ? AND datetime < ?", dayStart, dayStart.AddDate(0, 0, 1))
	}

	var games []models.Game
	if err := q.Order("datetime ASC").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (r *gameRepository) AddPlayer(ctx context.Context, tx *gorm.DB, player *models.Player) error {
	return tx.WithContext(ctx).Create(player).Error
}

func (r *gameRepository) UpdateCounts(ctx context.Context, tx *gorm.DB, gameID uint, current int, status models.GameStatus) error {
	return tx.WithContext(ctx).
		Model(&models.Game{}).
		Where("id = ?", gameID).
		Updates(map[string]any{"current_players": current, "status": status}).Error
}
