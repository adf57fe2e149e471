package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/courtside/courtside/internal/models"
	"github.com/stretchr/testify/assert"
)

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	createFn  func(ctx context.Context, booking *models.Booking) error
	findRefFn func(ctx context.Context, ref string) (*models.Booking, error)
	findUsrFn func(ctx context.Context, userID string) ([]models.Booking, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	return m.createFn(ctx, booking)
}
func (m *mockBookingRepo) FindByReference(ctx context.Context, ref string) (*models.Booking, error) {
	return m.findRefFn(ctx, ref)
}
func (m *mockBookingRepo) FindByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return m.findUsrFn(ctx, userID)
}

func bookingDay() time.Time {
	return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
}

func bookableCourtRepo() *mockCourtRepo {
	return courtRepoWithAvailability(sampleCourt(), []models.CourtAvailability{
		{CourtID: 1, Date: bookingDay(), Slots: []models.TimeSlot{
			{Start: "08:00", End: "09:00", Available: true},
			{Start: "09:00", End: "10:00", Available: false},
			{Start: "18:00", End: "19:00", Available: true},
		}},
	})
}

func validInput() BookingInput {
	return BookingInput{
		UserID:          "user-1",
		Date:            bookingDay(),
		StartTime:       "18:00",
		DurationHours:   2,
		EquipmentRental: true,
		PaymentMethod:   models.PaymentCard,
	}
}

// --- Tests ---

func TestCreateBooking_Success(t *testing.T) {
	var created *models.Booking
	bookingRepo := &mockBookingRepo{
		createFn: func(ctx context.Context, booking *models.Booking) error {
			booking.ID = 1
			created = booking
			return nil
		},
	}

	svc := NewBookingService(bookingRepo, bookableCourtRepo(), nil) // nil publisher = skip RabbitMQ
	booking, err := svc.CreateBooking(context.Background(), 1, validInput())

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.NotEmpty(t, booking.Reference)
	// peak 50 * 2h + 10 rental
	assert.Equal(t, 110.0, booking.TotalPrice)
	assert.Equal(t, models.PaymentCard, booking.PaymentMethod)
}

func TestCreateBooking_OffPeakPricing(t *testing.T) {
	bookingRepo := &mockBookingRepo{
		createFn: func(ctx context.Context, booking *models.Booking) error { return nil },
	}

	svc := NewBookingService(bookingRepo, bookableCourtRepo(), nil)
	in := validInput()
	in.StartTime = "08:00"
	in.EquipmentRental = false

	booking, err := svc.CreateBooking(context.Background(), 1, in)

	assert.NoError(t, err)
	assert.Equal(t, 70.0, booking.TotalPrice) // off-peak 35 * 2h
}

func TestCreateBooking_SlotTaken(t *testing.T) {
	svc := NewBookingService(&mockBookingRepo{}, bookableCourtRepo(), nil)
	in := validInput()
	in.StartTime = "09:00" // published but not available

	booking, err := svc.CreateBooking(context.Background(), 1, in)

	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Nil(t, booking)
}

func TestCreateBooking_SlotNotPublished(t *testing.T) {
	svc := NewBookingService(&mockBookingRepo{}, bookableCourtRepo(), nil)
	in := validInput()
	in.StartTime = "12:00"

	_, err := svc.CreateBooking(context.Background(), 1, in)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestCreateBooking_NoAvailabilityForDay(t *testing.T) {
	svc := NewBookingService(&mockBookingRepo{}, bookableCourtRepo(), nil)
	in := validInput()
	in.Date = bookingDay().AddDate(0, 0, 1)

	_, err := svc.CreateBooking(context.Background(), 1, in)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestCreateBooking_CourtNotFound(t *testing.T) {
	courtRepo := &mockCourtRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Court, error) {
			return nil, errors.New("record not found")
		},
	}

	svc := NewBookingService(&mockBookingRepo{}, courtRepo, nil)
	_, err := svc.CreateBooking(context.Background(), 404, validInput())

	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestGetBooking_ByReference(t *testing.T) {
	bookingRepo := &mockBookingRepo{
		findRefFn: func(ctx context.Context, ref string) (*models.Booking, error) {
			return &models.Booking{Reference: ref, TotalPrice: 90}, nil
		},
	}

	svc := NewBookingService(bookingRepo, bookableCourtRepo(), nil)
	booking, err := svc.GetBooking(context.Background(), "abc-123")

	assert.NoError(t, err)
	assert.Equal(t, "abc-123", booking.Reference)
}

func TestGetBooking_NotFound(t *testing.T) {
	bookingRepo := &mockBookingRepo{
		findRefFn: func(ctx context.Context, ref string) (*models.Booking, error) {
			return nil, errors.New("record not found")
		},
	}

	svc := NewBookingService(bookingRepo, bookableCourtRepo(), nil)
	booking, err := svc.GetBooking(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Nil(t, booking)
}
