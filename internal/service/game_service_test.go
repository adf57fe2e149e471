package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/courtside/courtside/internal/join"
	"github.com/courtside/courtside/internal/models"
	"github.com/courtside/courtside/internal/repository"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --- Mock GameRepository ---

type mockGameRepo struct {
	findByIDFn func(ctx context.Context, id uint) (*models.Game, error)
	findAllFn  func(ctx context.Context, filter repository.GameFilter) ([]models.Game, error)
}

func (m *mockGameRepo) FindByID(ctx context.Context, id uint) (*models.Game, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockGameRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Game, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockGameRepo) FindAll(ctx context.Context, filter repository.GameFilter) ([]models.Game, error) {
	return m.findAllFn(ctx, filter)
}
func (m *mockGameRepo) AddPlayer(ctx context.Context, tx *gorm.DB, player *models.Player) error {
	return nil
}
func (m *mockGameRepo) UpdateCounts(ctx context.Context, tx *gorm.DB, gameID uint, current int, status models.GameStatus) error {
	return nil
}
func (m *mockGameRepo) GetDB() *gorm.DB { return nil }

// --- Mock JoinRequestRepository ---

type mockJoinRepo struct {
	findFn       func(ctx context.Context, gameID uint, userID string) (*models.JoinRequest, error)
	findByGameFn func(ctx context.Context, gameID uint, status *join.Status) ([]models.JoinRequest, error)
}

func (m *mockJoinRepo) Create(ctx context.Context, tx *gorm.DB, req *models.JoinRequest) error {
	return nil
}
func (m *mockJoinRepo) FindByGameAndUser(ctx context.Context, gameID uint, userID string) (*models.JoinRequest, error) {
	return m.findFn(ctx, gameID, userID)
}
func (m *mockJoinRepo) FindByGameAndUserForUpdate(ctx context.Context, tx *gorm.DB, gameID uint, userID string) (*models.JoinRequest, error) {
	return m.findFn(ctx, gameID, userID)
}
func (m *mockJoinRepo) FindByGame(ctx context.Context, gameID uint, status *join.Status) ([]models.JoinRequest, error) {
	if m.findByGameFn != nil {
		return m.findByGameFn(ctx, gameID, status)
	}
	return nil, nil
}
func (m *mockJoinRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, id string, status join.Status) error {
	return nil
}
func (m *mockJoinRepo) GetDB() *gorm.DB { return nil }

func sampleGame() *models.Game {
	return &models.Game{
		ID:             1,
		Title:          "Friendly Basketball Match",
		Sport:          "basketball",
		Datetime:       time.Date(2024, 5, 3, 18, 0, 0, 0, time.UTC),
		Status:         models.GameOpen,
		SkillLevel:     models.SkillIntermediate,
		CurrentPlayers: 8,
		MaxPlayers:     10,
	}
}

// --- Tests ---

func TestGetGame_Success(t *testing.T) {
	gameRepo := &mockGameRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Game, error) {
			return sampleGame(), nil
		},
	}

	svc := NewGameService(gameRepo, &mockJoinRepo{}, nil)
	game, err := svc.GetGame(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, "Friendly Basketball Match", game.Title)
	assert.Equal(t, 8, game.CurrentPlayers)
}

func TestGetGame_NotFound(t *testing.T) {
	gameRepo := &mockGameRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Game, error) {
			return nil, errors.New("record not found")
		},
	}

	svc := NewGameService(gameRepo, &mockJoinRepo{}, nil)
	game, err := svc.GetGame(context.Background(), 999)

	assert.ErrorIs(t, err, ErrGameNotFound)
	assert.Nil(t, game)
}

func TestGetJoinStatus_NoRequestReadsAsNotJoined(t *testing.T) {
	gameRepo := &mockGameRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Game, error) {
			return sampleGame(), nil
		},
	}
	joinRepo := &mockJoinRepo{
		findFn: func(ctx context.Context, gameID uint, userID string) (*models.JoinRequest, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewGameService(gameRepo, joinRepo, nil)
	status, game, err := svc.GetJoinStatus(context.Background(), 1, "user-1")

	assert.NoError(t, err)
	assert.Equal(t, join.StatusNotJoined, status)
	assert.NotNil(t, game)
}

func TestGetJoinStatus_ExistingRequest(t *testing.T) {
	gameRepo := &mockGameRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Game, error) {
			return sampleGame(), nil
		},
	}
	joinRepo := &mockJoinRepo{
		findFn: func(ctx context.Context, gameID uint, userID string) (*models.JoinRequest, error) {
			return &models.JoinRequest{GameID: gameID, UserID: userID, Status: join.StatusPending}, nil
		},
	}

	svc := NewGameService(gameRepo, joinRepo, nil)
	status, _, err := svc.GetJoinStatus(context.Background(), 1, "user-1")

	assert.NoError(t, err)
	assert.Equal(t, join.StatusPending, status)
}

func TestGetJoinStatus_GameNotFound(t *testing.T) {
	gameRepo := &mockGameRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Game, error) {
			return nil, errors.New("record not found")
		},
	}

	svc := NewGameService(gameRepo, &mockJoinRepo{}, nil)
	_, _, err := svc.GetJoinStatus(context.Background(), 404, "user-1")

	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestListGames_PassesFilter(t *testing.T) {
	var captured repository.GameFilter
	gameRepo := &mockGameRepo{
		findAllFn: func(ctx context.Context, filter repository.GameFilter) ([]models.Game, error) {
			captured = filter
			return []models.Game{*sampleGame()}, nil
		},
	}

	svc := NewGameService(gameRepo, &mockJoinRepo{}, nil)
	date := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)
	games, err := svc.ListGames(context.Background(), repository.GameFilter{Sport: "basketball", Date: &date})

	assert.NoError(t, err)
	assert.Len(t, games, 1)
	assert.Equal(t, "basketball", captured.Sport)
	assert.NotNil(t, captured.Date)
}

func TestListJoinRequests_FiltersByStatus(t *testing.T) {
	gameRepo := &mockGameRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Game, error) {
			return sampleGame(), nil
		},
	}
	var captured *join.Status
	joinRepo := &mockJoinRepo{
		findByGameFn: func(ctx context.Context, gameID uint, status *join.Status) ([]models.JoinRequest, error) {
			captured = status
			return []models.JoinRequest{{ID: "r1", GameID: gameID, UserID: "user-1", Status: join.StatusPending}}, nil
		},
	}

	svc := NewGameService(gameRepo, joinRepo, nil)
	pending := join.StatusPending
	reqs, err := svc.ListJoinRequests(context.Background(), 1, &pending)

	assert.NoError(t, err)
	assert.Len(t, reqs, 1)
	assert.Equal(t, &pending, captured)
}

func TestListJoinRequests_GameNotFound(t *testing.T) {
	gameRepo := &mockGameRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Game, error) {
			return nil, errors.New("record not found")
		},
	}

	svc := NewGameService(gameRepo, &mockJoinRepo{}, nil)
	_, err := svc.ListJoinRequests(context.Background(), 404, nil)

	assert.ErrorIs(t, err, ErrGameNotFound)
}
