package service

import (
	"context"
	"errors"
	"time"

	"github.com/courtside/courtside/internal/cache"
	"github.com/courtside/courtside/internal/models"
	"github.com/courtside/courtside/internal/pricing"
	"github.com/courtside/courtside/internal/repository"
)

var (
	ErrCourtNotFound    = errors.New("court not found")
	ErrInvalidStartTime = errors.New("invalid start time, want HH:MM")
)

type CourtService interface {
	ListCourts(ctx context.Context, filter repository.CourtFilter) ([]models.Court, error)
	GetCourt(ctx context.Context, id uint) (*models.Court, error)
	GetAvailability(ctx context.Context, courtID uint, date time.Time) ([]pricing.TimeSlot, error)
	QuotePrice(ctx context.Context, courtID uint, start string, hours int, equipmentRental bool) (float64, error)
}

type courtService struct {
	courtRepo repository.CourtRepository
	avCache   *cache.AvailabilityCache
}

func NewCourtService(courtRepo repository.CourtRepository, avCache *cache.AvailabilityCache) CourtService {
	return &courtService{courtRepo: courtRepo, avCache: avCache}
}

func (s *courtService) ListCourts(ctx context.Context, filter repository.CourtFilter) ([]models.Court, error) {
	return s.courtRepo.FindAll(ctx, filter)
}

func (s *courtService) GetCourt(ctx context.Context, id uint) (*models.Court, error) {
	court, err := s.courtRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrCourtNotFound
	}
	return court, nil
}

// GetAvailability resolves the bookable slots of a court for one calendar
// day. A day with no published availability yields an empty slice, not an
// error. Results are cached per (court, day).
func (s *courtService) GetAvailability(ctx context.Context, courtID uint, date time.Time) ([]pricing.TimeSlot, error) {
	if _, err := s.courtRepo.FindByID(ctx, courtID); err != nil {
		return nil, ErrCourtNotFound
	}

	if slots, ok := s.avCache.Get(ctx, courtID, date); ok {
		return slots, nil
	}

	days, err := s.availabilityDays(ctx, courtID)
	if err != nil {
		return nil, err
	}

	slots := pricing.SlotsFor(days, date)
	s.avCache.Set(ctx, courtID, date, slots)
	return slots, nil
}

func (s *courtService) QuotePrice(ctx context.Context, courtID uint, start string, hours int, equipmentRental bool) (float64, error) {
	court, err := s.courtRepo.FindByID(ctx, courtID)
	if err != nil {
		return 0, ErrCourtNotFound
	}

	rates := pricing.NewRateTable(court.PeakPrice, court.OffPeakPrice)
	total, err := pricing.Quote(start, hours, equipmentRental, rates)
	if err != nil {
		return 0, ErrInvalidStartTime
	}
	return total, nil
}

func (s *courtService) availabilityDays(ctx context.Context, courtID uint) ([]pricing.AvailabilityDay, error) {
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
	return days, nil
}
