package dto

import (
	"errors"
	"time"

	"github.com/courtside/courtside/internal/models"
	"github.com/courtside/courtside/internal/pricing"
)

// QuoteRequest prices a prospective booking without creating one.
type QuoteRequest struct {
	StartTime       string `json:"start_time" validate:"required"`
	DurationHours   int    `json:"duration_hours" validate:"required,gte=1,lte=4"`
	EquipmentRental bool   `json:"equipment_rental"`
}

func (r *QuoteRequest) Validate() error {
	if _, _, err := pricing.ParseClock(r.StartTime); err != nil {
		return errors.New("start_time must be HH:MM")
	}
	// The pricing engine performs no bounds check; the 1-4 hour range is
	// enforced here, at the form boundary.
	if r.DurationHours < 1 || r.DurationHours > 4 {
		return errors.New("duration_hours must be between 1 and 4")
	}
	return nil
}

type BookingRequest struct {
	UserID          string               `json:"user_id" validate:"required"`
	Date            string               `json:"date" validate:"required"` // YYYY-MM-DD
	StartTime       string               `json:"start_time" validate:"required"`
	DurationHours   int                  `json:"duration_hours" validate:"required,gte=1,lte=4"`
	EquipmentRental bool                 `json:"equipment_rental"`
	PaymentMethod   models.PaymentMethod `json:"payment_method" validate:"required"`
	TermsAccepted   bool                 `json:"terms_accepted" validate:"required"`
}

// Validate checks the form and returns the parsed booking date. Dates are
// interpreted in UTC.
func (r *BookingRequest) Validate() (time.Time, error) {
	if r.UserID == "" {
		return time.Time{}, errors.New("user_id is required")
	}
	date, err := time.ParseInLocation("2006-01-02", r.Date, time.UTC)
	if err != nil {
		return time.Time{}, errors.New("date must be YYYY-MM-DD")
	}
	if _, _, err := pricing.ParseClock(r.StartTime); err != nil {
		return time.Time{}, errors.New("start_time must be HH:MM")
	}
	if r.DurationHours < 1 || r.DurationHours > 4 {
		return time.Time{}, errors.New("duration_hours must be between 1 and 4")
	}
	if !r.PaymentMethod.Valid() {
		return time.Time{}, errors.New("payment_method must be card or paypal")
	}
	if !r.TermsAccepted {
		return time.Time{}, errors.New("terms must be accepted")
	}
	return date, nil
}

type JoinGameRequest struct {
	UserID     string            `json:"user_id" validate:"required"`
	SkillLevel models.SkillLevel `json:"skill_level" validate:"required"`
	Equipment  []string          `json:"equipment" validate:"required,min=1"`
	Message    string            `json:"message"`
}

func (r *JoinGameRequest) Validate() error {
	if r.UserID == "" {
		return errors.New("user_id is required")
	}
	if !r.SkillLevel.Valid() {
		return errors.New("skill_level must be beginner, intermediate or advanced")
	}
	if len(r.Equipment) == 0 {
		return errors.New("select at least one equipment item")
	}
	return nil
}

type DecisionRequest struct {
	Approve *bool `json:"approve" validate:"required"`
}
