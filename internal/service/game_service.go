package service

import (
	"context"
	"errors"

	"github.com/courtside/courtside/internal/join"
	"github.com/courtside/courtside/internal/models"
	"github.com/courtside/courtside/internal/repository"
	"github.com/courtside/courtside/pkg/rabbitmq"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrGameNotFound     = errors.New("game not found")
	ErrGameFull         = errors.New("game is at full capacity")
	ErrAlreadyRequested = errors.New("user already has a join request for this game")
	ErrRequestNotFound  = errors.New("join request not found")
	ErrNotPending       = errors.New("join request is not pending")
)

// JoinInput is the validated join-request form: skill level, at least one
// equipment item, and an optional message to the organizer.
type JoinInput struct {
	UserID     string
	SkillLevel models.SkillLevel
	Equipment  []string
	Message    string
}

type GameService interface {
	ListGames(ctx context.Context, filter repository.GameFilter) ([]models.Game, error)
	GetGame(ctx context.Context, id uint) (*models.Game, error)
	GetJoinStatus(ctx context.Context, gameID uint, userID string) (join.Status, *models.Game, error)
	ListJoinRequests(ctx context.Context, gameID uint, status *join.Status) ([]models.JoinRequest, error)
	SubmitJoinRequest(ctx context.Context, gameID uint, in JoinInput) (*models.JoinRequest, error)
	Decide(ctx context.Context, gameID uint, userID string, approve bool) (*models.JoinRequest, error)
}

type gameService struct {
	gameRepo  repository.GameRepository
	joinRepo  repository.JoinRequestRepository
	publisher *rabbitmq.Publisher
}

func NewGameService(gameRepo repository.GameRepository, joinRepo repository.JoinRequestRepository, publisher *rabbitmq.Publisher) GameService {
	return &gameService{
		gameRepo:  gameRepo,
		joinRepo:  joinRepo,
		publisher: publisher,
	}
}

func (s *gameService) ListGames(ctx context.Context, filter repository.GameFilter) ([]models.Game, error) {
	return s.gameRepo.FindAll(ctx, filter)
}

func (s *gameService) GetGame(ctx context.Context, id uint) (*models.Game, error) {
	game, err := s.gameRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrGameNotFound
	}
	return game, nil
}

// GetJoinStatus returns the user's current state for a game. A user with no
// stored request is in not_joined; the game is returned alongside so callers
// can apply the capacity guard when rendering the join action.
func (s *gameService) GetJoinStatus(ctx context.Context, gameID uint, userID string) (join.Status, *models.Game, error) {
	game, err := s.gameRepo.FindByID(ctx, gameID)
	if err != nil {
		return "", nil, ErrGameNotFound
	}

	req, err := s.joinRepo.FindByGameAndUser(ctx, gameID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return join.StatusNotJoined, game, nil
		}
		return "", nil, err
	}
	return req.Status, game, nil
}

// ListJoinRequests returns a game's join requests, optionally narrowed to
// one status, for the organizer's review queue.
func (s *gameService) ListJoinRequests(ctx context.Context, gameID uint, status *join.Status) ([]models.JoinRequest, error) {
	if _, err := s.gameRepo.FindByID(ctx, gameID); err != nil {
		return nil, ErrGameNotFound
	}
	return s.joinRepo.FindByGame(ctx, gameID, status)
}

// SubmitJoinRequest commits the not_joined -> pending transition. The whole
// round trip runs in one transaction: if anything fails, no request row is
// left behind and the user remains in not_joined.
func (s *gameService) SubmitJoinRequest(ctx context.Context, gameID uint, in JoinInput) (*models.JoinRequest, error) {
	var result *models.JoinRequest

	err := s.joinRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the game row — serializes submissions against approvals
		game, err := s.gameRepo.FindByIDForUpdate(ctx, tx, gameID)
		if err != nil {
			return ErrGameNotFound
		}

		// 2. Capacity guard applies before any status check
		if game.CurrentPlayers >= game.MaxPlayers {
			return ErrGameFull
		}

		// 3. One live request per (game, user)
		_, err = s.joinRepo.FindByGameAndUserForUpdate(ctx, tx, gameID, in.UserID)
		if err == nil {
			return ErrAlreadyRequested
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// 4. Drive the state machine; a missing row is not_joined
		if err := join.Transition(join.StatusNotJoined, join.StatusPending); err != nil {
			return err
		}

		req := &models.JoinRequest{
			ID:         uuid.New().String(),
			GameID:     gameID,
			UserID:     in.UserID,
			Status:     join.StatusPending,
			SkillLevel: in.SkillLevel,
			Equipment:  in.Equipment,
			Message:    in.Message,
		}
		if err := s.joinRepo.Create(ctx, tx, req); err != nil {
			return err
		}
		result = req
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(rabbitmq.KeyJoinRequested, result)
	}

	return result, nil
}

// Decide applies an organizer decision to a pending request. Approval
// promotes the requester onto the roster and bumps the player count under a
// row lock, refusing when the game is already full.
func (s *gameService) Decide(ctx context.Context, gameID uint, userID string, approve bool) (*models.JoinRequest, error) {
	var result *models.JoinRequest

	target := join.StatusDenied
	if approve {
		target = join.StatusApproved
	}

	err := s.joinRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		game, err := s.gameRepo.FindByIDForUpdate(ctx, tx, gameID)
		if err != nil {
			return ErrGameNotFound
		}

		req, err := s.joinRepo.FindByGameAndUserForUpdate(ctx, tx, gameID, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRequestNotFound
			}
			return err
		}

		if err := join.Transition(req.Status, target); err != nil {
			return ErrNotPending
		}

		if approve {
			if game.CurrentPlayers >= game.MaxPlayers {
				return ErrGameFull
			}

			player := &models.Player{
				GameID:     gameID,
				Name:       userID,
				SkillLevel: req.SkillLevel,
			}
			if err := s.gameRepo.AddPlayer(ctx, tx, player); err != nil {
				return err
			}

			current := game.CurrentPlayers + 1
			status := game.Status
			if current >= game.MaxPlayers {
				status = models.GameFull
			}
			if err := s.gameRepo.UpdateCounts(ctx, tx, gameID, current, status); err != nil {
				return err
			}
		}

		if err := s.joinRepo.UpdateStatus(ctx, tx, req.ID, target); err != nil {
			return err
		}

		req.Status = target
		result = req
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		key := rabbitmq.KeyJoinDenied
		if approve {
			key = rabbitmq.KeyJoinApproved
		}
		_ = s.publisher.Publish(key, result)
	}

	return result, nil
}
