package repository

import (
	"context"

	"github.com/courtside/courtside/internal/join"
	"github.com/courtside/courtside/internal/models"
	"gorm.io/gorm"
)

type JoinRequestRepository interface {
	Create(ctx context.Context, tx *gorm.DB, req *models.JoinRequest) error
	FindByGameAndUser(ctx context.Context, gameID uint, userID string) (*models.JoinRequest, error)
	FindByGameAndUserForUpdate(ctx context.Context, tx *gorm.DB, gameID uint, userID string) (*models.JoinRequest, error)
	FindByGame(ctx context.Context, gameID uint, status *join.Status) ([]models.JoinRequest, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, id string, status join.Status) error
	GetDB() *gorm.DB
}

type joinRequestRepository struct {
	db *gorm.DB
}

func NewJoinRequestRepository(db *gorm.DB) JoinRequestRepository {
	return &joinRequestRepository{db: db}
}

func (r *joinRequestRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *joinRequestRepository) Create(ctx context.Context, tx *gorm.DB, req *models.JoinRequest) error {
	return tx.WithContext(ctx).Create(req).Error
}

func (r *joinRequestRepository) FindByGameAndUser(ctx context.Context, gameID uint, userID string) (*models.JoinRequest, error) {
	var req models.JoinRequest
	err := r.db.WithContext(ctx).
		Where("game_id = ? AND user_id = ?", gameID, userID).
		Order("created_at DESC").
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *joinRequestRepository) FindByGameAndUserForUpdate(ctx context.Context, tx *gorm.DB, gameID uint, userID string) (*models.JoinRequest, error) {
	var req models.JoinRequest
	err := tx.WithContext(ctx).
		Set("gorm:query_option", "FOR UPDATE").
		Where("game_id = ? AND user_id = ?", gameID, userID).
		Order("created_at DESC").
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *joinRequestRepository) FindByGame(ctx context.Context, gameID uint, status *join.Status) ([]models.JoinRequest, error) {
	q := r.db.WithContext(ctx).Where("game_id = ?", gameID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	var reqs []models.JoinRequest
	if err := q.Order("created_at ASC").Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *joinRequestRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, id string, status join.Status) error {
	return tx.WithContext(ctx).
		Model(&models.JoinRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}
