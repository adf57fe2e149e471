package models

import (
	"time"

	"github.com/courtside/courtside/internal/join"
)

// JoinRequest is the persisted side of the join state machine: one row per
// (game, user) pairing. A missing row reads as join.StatusNotJoined; a row
// is only created once the not_joined -> pending transition commits.
type JoinRequest struct {
	ID         string      `gorm:"primaryKey;type:varchar(36)" json:"id"`
	GameID     uint        `gorm:"not null;index" json:"game_id"`
	UserID     string      `gorm:"not null;index" json:"user_id"`
	Status     join.Status `gorm:"type:varchar(20);not null" json:"status"`
	SkillLevel SkillLevel  `gorm:"type:varchar(20);not null" json:"skill_level"`
	Equipment  []string    `gorm:"serializer:json" json:"equipment"`
	Message    string      `json:"message,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`

	Game *Game `gorm:"foreignKey:GameID" json:"game,omitempty"`
}
