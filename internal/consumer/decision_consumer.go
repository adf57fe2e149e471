package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/courtside/courtside/internal/service"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Decision is the payload the organizer collaborator publishes under
// join.decision.* to move a request out of pending.
type Decision struct {
	GameID  uint   `json:"game_id"`
	UserID  string `json:"user_id"`
	Approve bool   `json:"approve"`
}

type DecisionConsumer struct {
	games service.GameService
}

func NewDecisionConsumer(games service.GameService) *DecisionConsumer {
	return &DecisionConsumer{games: games}
}

// Start listens for organizer decisions and applies them to join requests.
func (dc *DecisionConsumer) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			dc.handleMessage(msg)
		}
		log.Println("[DecisionConsumer] channel closed, stopping consumer")
	}()
}

func (dc *DecisionConsumer) handleMessage(msg amqp.Delivery) {
	var d Decision
	if err := json.Unmarshal(msg.Body, &d); err != nil {
		log.Printf("[DecisionConsumer] failed to unmarshal: %v", err)
		msg.Nack(false, false)
		return
	}

	_, err := dc.games.Decide(context.Background(), d.GameID, d.UserID, d.Approve)
	if err != nil {
		// Stale or duplicate decisions are dropped; anything else is
		// requeued as a transient failure.
		if errors.Is(err, service.ErrRequestNotFound) ||
			errors.Is(err, service.ErrNotPending) ||
			errors.Is(err, service.ErrGameNotFound) ||
			errors.Is(err, service.ErrGameFull) {
			log.Printf("[DecisionConsumer] dropping decision for game %d user %s: %v", d.GameID, d.UserID, err)
			msg.Nack(false, false)
			return
		}
		log.Printf("[DecisionConsumer] failed to apply decision for game %d user %s: %v", d.GameID, d.UserID, err)
		msg.Nack(false, true) // requeue
		return
	}

	log.Printf("[DecisionConsumer] applied decision for game %d user %s (approve=%t)", d.GameID, d.UserID, d.Approve)
	msg.Ack(false)
}
