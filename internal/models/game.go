package models

import "time"

type GameStatus string

const (
	GameOpen    GameStatus = "open"
	GamePrivate GameStatus = "private"
	GameFull    GameStatus = "full"
)

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

func (s SkillLevel) Valid() bool {
	switch s {
	case SkillBeginner, SkillIntermediate, SkillAdvanced:
		return true
	}
	return false
}

type Game struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Title      string     `gorm:"not null" json:"title"`
	Sport      string     `gorm:"not null" json:"sport"`
	Datetime   time.Time  `gorm:"not null" json:"datetime"`
	Address    string     `json:"address"`
	Lat        float64    `json:"lat"`
	Lng        float64    `json:"lng"`
	Status     GameStatus `gorm:"type:varchar(10);not null;default:'open'" json:"status"`
	SkillLevel SkillLevel `gorm:"type:varchar(20);not null" json:"skill_level"`

	// CurrentPlayers <= MaxPlayers; enforced when an approval promotes a
	// requester onto the roster.
	CurrentPlayers int `gorm:"not null" json:"current_players"`
	MaxPlayers     int `gorm:"not null" json:"max_players"`
	WaitingList    int `gorm:"not null;default:0" json:"waiting_list"`

	OrganizerName     string  `json:"organizer_name"`
	OrganizerVerified bool    `json:"organizer_verified"`
	OrganizerRating   float64 `json:"organizer_rating"`
	ResponseTime      string  `json:"response_time"`

	Players []Player `gorm:"foreignKey:GameID" json:"players,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Player struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	GameID      uint       `gorm:"index;not null" json:"-"`
	Name        string     `gorm:"not null" json:"name"`
	SkillLevel  SkillLevel `gorm:"type:varchar(20);not null" json:"skill_level"`
	GamesPlayed int        `json:"games_played"`
	Avatar      string     `json:"avatar"`
}
