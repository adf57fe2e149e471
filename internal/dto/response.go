package dto

import (
	"time"

	"github.com/courtside/courtside/internal/join"
	"github.com/courtside/courtside/internal/models"
	"github.com/courtside/courtside/internal/pricing"
)

type RateTableResponse struct {
	Peak    float64 `json:"peak"`
	OffPeak float64 `json:"off_peak"`
}

type CourtResponse struct {
	ID           uint                  `json:"id"`
	Name         string                `json:"name"`
	Address      string                `json:"address"`
	Lat          float64               `json:"lat"`
	Lng          float64               `json:"lng"`
	SportTypes   []string              `json:"sport_types"`
	Amenities    []string              `json:"amenities"`
	Images       []string              `json:"images"`
	Rating       float64               `json:"rating"`
	Pricing      RateTableResponse     `json:"pricing"`
	OpeningHours []models.OpeningHours `json:"opening_hours,omitempty"`
}

func ToCourtResponse(c *models.Court) CourtResponse {
	return CourtResponse{
		ID:           c.ID,
		Name:         c.Name,
		Address:      c.Address,
		Lat:          c.Lat,
		Lng:          c.Lng,
		SportTypes:   c.SportTypes,
		Amenities:    c.Amenities,
		Images:       c.Images,
		Rating:       c.Rating,
		Pricing:      RateTableResponse{Peak: c.PeakPrice, OffPeak: c.OffPeakPrice},
		OpeningHours: c.OpeningHours,
	}
}

type AvailabilityResponse struct {
	CourtID uint               `json:"court_id"`
	Date    string             `json:"date"`
	Slots   []pricing.TimeSlot `json:"slots"`
}

type QuoteResponse struct {
	TotalPrice float64 `json:"total_price"`
}

type BookingResponse struct {
	Reference       string               `json:"reference"`
	CourtID         uint                 `json:"court_id"`
	UserID          string               `json:"user_id"`
	Date            string               `json:"date"`
	StartTime       string               `json:"start_time"`
	DurationHours   int                  `json:"duration_hours"`
	EquipmentRental bool                 `json:"equipment_rental"`
	PaymentMethod   models.PaymentMethod `json:"payment_method"`
	TotalPrice      float64              `json:"total_price"`
	CreatedAt       time.Time            `json:"created_at"`
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		Reference:       b.Reference,
		CourtID:         b.CourtID,
		UserID:          b.UserID,
		Date:            b.Date.Format("2006-01-02"),
		StartTime:       b.StartTime,
		DurationHours:   b.DurationHours,
		EquipmentRental: b.EquipmentRental,
		PaymentMethod:   b.PaymentMethod,
		TotalPrice:      b.TotalPrice,
		CreatedAt:       b.CreatedAt,
	}
}

type GameResponse struct {
	ID                uint              `json:"id"`
	Title             string            `json:"title"`
	Sport             string            `json:"sport"`
	Datetime          time.Time         `json:"datetime"`
	Address           string            `json:"address"`
	Status            models.GameStatus `json:"status"`
	SkillLevel        models.SkillLevel `json:"skill_level"`
	CurrentPlayers    int               `json:"current_players"`
	MaxPlayers        int               `json:"max_players"`
	WaitingList       int               `json:"waiting_list"`
	OrganizerName     string            `json:"organizer_name"`
	OrganizerVerified bool              `json:"organizer_verified"`
}

func ToGameResponse(g *models.Game) GameResponse {
	return GameResponse{
		ID:                g.ID,
		Title:             g.Title,
		Sport:             g.Sport,
		Datetime:          g.Datetime,
		Address:           g.Address,
		Status:            g.Status,
		SkillLevel:        g.SkillLevel,
		CurrentPlayers:    g.CurrentPlayers,
		MaxPlayers:        g.MaxPlayers,
		WaitingList:       g.WaitingList,
		OrganizerName:     g.OrganizerName,
		OrganizerVerified: g.OrganizerVerified,
	}
}

// SkillDistribution is the per-level share of the roster in whole percent,
// as rendered by the player list widget.
type SkillDistribution struct {
	Beginner     int `json:"beginner"`
	Intermediate int `json:"intermediate"`
	Advanced     int `json:"advanced"`
}

type GameDetailResponse struct {
	GameResponse
	OrganizerRating float64           `json:"organizer_rating"`
	ResponseTime    string            `json:"response_time"`
	Players         []models.Player   `json:"players"`
	SkillLevels     SkillDistribution `json:"skill_levels"`
}

func ToGameDetailResponse(g *models.Game) GameDetailResponse {
	players := g.Players
	if players == nil {
		players = []models.Player{}
	}
	return GameDetailResponse{
		GameResponse:    ToGameResponse(g),
		OrganizerRating: g.OrganizerRating,
		ResponseTime:    g.ResponseTime,
		Players:         players,
		SkillLevels:     skillDistribution(players),
	}
}

func skillDistribution(players []models.Player) SkillDistribution {
	var d SkillDistribution
	if len(players) == 0 {
		return d
	}
	for _, p := range players {
		switch p.SkillLevel {
		case models.SkillBeginner:
			d.Beginner++
		case models.SkillIntermediate:
			d.Intermediate++
		case models.SkillAdvanced:
			d.Advanced++
		}
	}
	total := len(players)
	d.Beginner = d.Beginner * 100 / total
	d.Intermediate = d.Intermediate * 100 / total
	d.Advanced = d.Advanced * 100 / total
	return d
}

type JoinStatusResponse struct {
	GameID      uint        `json:"game_id"`
	UserID      string      `json:"user_id"`
	Status      join.Status `json:"status"`
	Progress    int         `json:"progress"`
	ButtonLabel string      `json:"button_label"`
	StatusText  string      `json:"status_text,omitempty"`
	CanJoin     bool        `json:"can_join"`
}

func ToJoinStatusResponse(g *models.Game, userID string, status join.Status) JoinStatusResponse {
	return JoinStatusResponse{
		GameID:      g.ID,
		UserID:      userID,
		Status:      status,
		Progress:    join.Progress(status),
		ButtonLabel: join.ButtonLabel(status, g.Status == models.GameOpen),
		StatusText:  join.StatusText(status),
		CanJoin:     join.CanJoin(status, g.CurrentPlayers, g.MaxPlayers),
	}
}

type ErrorResponse struct {
	Message string `json:"message"`
}
