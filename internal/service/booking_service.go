package service

import (
	"context"
	"errors"
	"time"

	"github.com/courtside/courtside/internal/models"
	"github.com/courtside/courtside/internal/pricing"
	"github.com/courtside/courtside/internal/repository"
	"github.com/courtside/courtside/pkg/rabbitmq"
	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrSlotUnavailable = errors.New("requested time slot is not available")
)

// BookingInput carries a validated booking form. Field bounds (duration
// 1-4, known payment method, terms accepted) are enforced at the request
// boundary before this struct is built.
type BookingInput struct {
	UserID          string
	Date            time.Time
	StartTime       string
	DurationHours   int
	EquipmentRental bool
	PaymentMethod   models.PaymentMethod
}

type BookingService interface {
	CreateBooking(ctx context.Context, courtID uint, in BookingInput) (*models.Booking, error)
	GetBooking(ctx context.Context, ref string) (*models.Booking, error)
	ListBookings(ctx context.Context, userID string) ([]models.Booking, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	courtRepo   repository.CourtRepository
	publisher   *rabbitmq.Publisher
}

func NewBookingService(bookingRepo repository.BookingRepository, courtRepo repository.CourtRepository, publisher *rabbitmq.Publisher) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		courtRepo:   courtRepo,
		publisher:   publisher,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, courtID uint, in BookingInput) (*models.Booking, error) {
	// 1. Court must exist
	court, err := s.courtRepo.FindByID(ctx, courtID)
	if err != nil {
		return nil, ErrCourtNotFound
	}

	// 2. The chosen slot must be published and available for that day.
	// Availability rows are read-only: a booking does not rewrite them.
	records, err := s.courtRepo.FindAvailability(ctx, courtID)
	if err != nil {
		return nil, err
	}
	days := make([]pricing.AvailabilityDay, len(records))
	for i, rec := range records {
		slots := make([]pricing.TimeSlot, len(rec.Slots))
		for j, sl := range rec.Slots {
			slots[j] = pricing.TimeSlot{Start: sl.Start, End: sl.End, Available: sl.Available}
		}
		days[i] = pricing.AvailabilityDay{Date: rec.Date, Slots: slots}
	}
	if !slotOpen(pricing.SlotsFor(days, in.Date), in.StartTime) {
		return nil, ErrSlotUnavailable
	}

	// 3. Price the booking off the court's rate table
	rates := pricing.NewRateTable(court.PeakPrice, court.OffPeakPrice)
	total, err := pricing.Quote(in.StartTime, in.DurationHours, in.EquipmentRental, rates)
	if err != nil {
		return nil, ErrInvalidStartTime
	}

	booking := &models.Booking{
		Reference:       uuid.New().String(),
		CourtID:         courtID,
		UserID:          in.UserID,
		Date:            in.Date,
		StartTime:       in.StartTime,
		DurationHours:   in.DurationHours,
		EquipmentRental: in.EquipmentRental,
		PaymentMethod:   in.PaymentMethod,
		TotalPrice:      total,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(rabbitmq.KeyBookingCreated, booking)
	}

	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, ref string) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByReference(ctx, ref)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.bookingRepo.FindByUser(ctx, userID)
}

func slotOpen(slots []pricing.TimeSlot, start string) bool {
	for _, sl := range slots {
		if sl.Start == start {
			return sl.Available
		}
	}
	return false
}
