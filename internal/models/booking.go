package models

import "time"

type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentPaypal PaymentMethod = "paypal"
)

func (p PaymentMethod) Valid() bool {
	return p == PaymentCard || p == PaymentPaypal
}

// Booking is a confirmed court reservation. The total price is computed once
// from the court's rate table when the booking is created and stored with it.
type Booking struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	Reference       string        `gorm:"uniqueIndex;type:varchar(36);not null" json:"reference"`
	CourtID         uint          `gorm:"not null;index" json:"court_id"`
	UserID          string        `gorm:"not null" json:"user_id"`
	Date            time.Time     `gorm:"not null" json:"date"`
	StartTime       string        `gorm:"type:varchar(5);not null" json:"start_time"`
	DurationHours   int           `gorm:"not null" json:"duration_hours"`
	EquipmentRental bool          `gorm:"not null;default:false" json:"equipment_rental"`
	PaymentMethod   PaymentMethod `gorm:"type:varchar(10);not null" json:"payment_method"`
	TotalPrice      float64       `gorm:"not null" json:"total_price"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	Court *Court `gorm:"foreignKey:CourtID" json:"court,omitempty"`
}
