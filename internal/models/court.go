package models

import "time"

type Court struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	Name       string   `gorm:"not null" json:"name"`
	Address    string   `json:"address"`
	Lat        float64  `json:"lat"`
	Lng        float64  `json:"lng"`
	SportTypes []string `gorm:"serializer:json" json:"sport_types"`
	Amenities  []string `gorm:"serializer:json" json:"amenities"`
	Images     []string `gorm:"serializer:json" json:"images"`
	Rating     float64  `json:"rating"`

	// Hourly rate table; the peak window itself is fixed (17:00-20:00).
	PeakPrice    float64 `gorm:"not null" json:"peak_price"`
	OffPeakPrice float64 `gorm:"not null" json:"off_peak_price"`

	OpeningHours []OpeningHours      `gorm:"foreignKey:CourtID" json:"opening_hours,omitempty"`
	Availability []CourtAvailability `gorm:"foreignKey:CourtID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OpeningHours is one row of a court's posted schedule, e.g.
// {Days: "Monday-Friday", Open: "06:00", Close: "22:00"}.
type OpeningHours struct {
	ID      uint   `gorm:"primaryKey" json:"-"`
	CourtID uint   `gorm:"index;not null" json:"-"`
	Days    string `gorm:"not null" json:"days"`
	Open    string `gorm:"not null" json:"open"`
	Close   string `gorm:"not null" json:"close"`
}

// CourtAvailability publishes the bookable slots of one court for one
// calendar day. Slots are stored as they were published; the service layer
// never rewrites them when a booking is made.
type CourtAvailability struct {
	ID      uint       `gorm:"primaryKey" json:"-"`
	CourtID uint       `gorm:"index;not null" json:"-"`
	Date    time.Time  `gorm:"not null" json:"date"`
	Slots   []TimeSlot `gorm:"serializer:json" json:"slots"`
}

// TimeSlot mirrors pricing.TimeSlot at the persistence boundary.
type TimeSlot struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}
