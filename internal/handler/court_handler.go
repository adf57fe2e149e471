package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/courtside/courtside/internal/dto"
	"github.com/courtside/courtside/internal/repository"
	"github.com/courtside/courtside/internal/service"
	"github.com/labstack/echo/v4"
)

type CourtHandler struct {
	svc service.CourtService
}

func NewCourtHandler(svc service.CourtService) *CourtHandler {
	return &CourtHandler{svc: svc}
}

func (h *CourtHandler) RegisterRoutes(e *echo.Echo) {
	courts := e.Group("/api/v1/courts")
	courts.GET("", h.ListCourts)
	courts.GET("/:id", h.GetCourt)
	courts.GET("/:id/availability", h.GetAvailability)
	courts.POST("/:id/quote", h.Quote)
}

func (h *CourtHandler) ListCourts(c echo.Context) error {
	filter := repository.CourtFilter{
		Sport: c.QueryParam("sport"),
	}
	if s := c.QueryParam("min_price"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid min_price")
		}
		filter.MinPrice = &v
	}
	if s := c.QueryParam("max_price"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid max_price")
		}
		filter.MaxPrice = &v
	}
	if s := c.QueryParam("amenities"); s != "" {
		filter.Amenities = strings.Split(s, ",")
	}

	courts, err := h.svc.ListCourts(c.Request().Context(), filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.CourtResponse, len(courts))
	for i := range courts {
		resp[i] = dto.ToCourtResponse(&courts[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *CourtHandler) GetCourt(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid court id")
	}

	court, err := h.svc.GetCourt(c.Request().Context(), uint(id))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "court not found")
	}
	return c.JSON(http.StatusOK, dto.ToCourtResponse(court))
}

func (h *CourtHandler) GetAvailability(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid court id")
	}

	date, err := time.ParseInLocation("2006-01-02", c.QueryParam("date"), time.UTC)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	slots, err := h.svc.GetAvailability(c.Request().Context(), uint(id), date)
	if err != nil {
		if errors.Is(err, service.ErrCourtNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.AvailabilityResponse{
		CourtID: uint(id),
		Date:    date.Format("2006-01-02"),
		Slots:   slots,
	})
}

func (h *CourtHandler) Quote(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid court id")
	}

	var req dto.QuoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	total, err := h.svc.QuotePrice(c.Request().Context(), uint(id), req.StartTime, req.DurationHours, req.EquipmentRental)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCourtNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidStartTime):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.QuoteResponse{TotalPrice: total})
}
