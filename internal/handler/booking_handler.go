package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/courtside/courtside/internal/dto"
	"github.com/courtside/courtside/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/courts/:id/bookings", h.CreateBooking)
	e.GET("/api/v1/bookings/:ref", h.GetBooking)
	e.GET("/api/v1/bookings", h.ListBookings)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	courtID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid court id")
	}

	var req dto.BookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	date, err := req.Validate()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.svc.CreateBooking(c.Request().Context(), uint(courtID), service.BookingInput{
		UserID:          req.UserID,
		Date:            date,
		StartTime:       req.StartTime,
		DurationHours:   req.DurationHours,
		EquipmentRental: req.EquipmentRental,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCourtNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrSlotUnavailable):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrInvalidStartTime):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	booking, err := h.svc.GetBooking(c.Request().Context(), c.Param("ref"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "booking not found")
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}

	bookings, err := h.svc.ListBookings(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		resp[i] = dto.ToBookingResponse(&bookings[i])
	}
	return c.JSON(http.StatusOK, resp)
}
