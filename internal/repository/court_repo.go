package repository

import (
	"context"
	"time"

	"github.com/courtside/courtside/internal/models"
	"gorm.io/gorm"
)

// CourtFilter narrows a court listing. All predicates are conjunctive;
// zero values mean "no constraint".
type CourtFilter struct {
	Sport     string
	MinPrice  *float64
	MaxPrice  *float64
	Amenities []string
}

type CourtRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Court, error)
	FindAll(ctx context.Context, filter CourtFilter) ([]models.Court, error)
	FindAvailability(ctx context.Context, courtID uint) ([]models.CourtAvailability, error)
}

type courtRepository struct {
	db *gorm.DB
}

func NewCourtRepository(db *gorm.DB) CourtRepository {
	return &courtRepository{db: db}
}

func (r *courtRepository) FindByID(ctx context.Context, id uint) (*models.Court, error) {
	var court models.Court
	if err := r.db.WithContext(ctx).
		Preload("OpeningHours").
		First(&court, id).Error; err != nil {
		return nil, err
	}
	return &court, nil
}

// FindAll loads courts matching the price range in SQL and applies the
// sport/amenity predicates in memory, since those columns are serialized
// JSON arrays.
func (r *courtRepository) FindAll(ctx context.Context, filter CourtFilter) ([]models.Court, error) {
	q := r.db.WithContext(ctx).Preload("OpeningHours")
	if filter.MinPrice != nil {
		q = q.Where("off_peak_price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("off_peak_price <= ?", *filter.MaxPrice)
	}

	var courts []models.Court
	if err := q.Order("id ASC").Find(&courts).Error; err != nil {
		return nil, err
	}

	out := make([]models.Court, 0, len(courts))
	for _, c := range courts {
		if filter.Sport != "" && !contains(c.SportTypes, filter.Sport) {
			continue
		}
		if !containsAll(c.Amenities, filter.Amenities) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *courtRepository) FindAvailability(ctx context.Context, courtID uint) ([]models.CourtAvailability, error) {
	var days []models.CourtAvailability
	err := r.db.WithContext(ctx).
		Where("court_id = ?", courtID).
		Order("date ASC, id ASC").
		Find(&days).Error
	if err != nil {
		return nil, err
	}
	return days, nil
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func containsAll(haystack, needles []string) bool {
	for _, n := range needles {
		if !contains(haystack, n) {
			return false
		}
	}
	return true
}

// truncateToDay is shared by repositories that store day-granularity dates.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
