package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/courtside/courtside/internal/dto"
	"github.com/courtside/courtside/internal/join"
	"github.com/courtside/courtside/internal/repository"
	"github.com/courtside/courtside/internal/service"
	"github.com/labstack/echo/v4"
)

type GameHandler struct {
	svc service.GameService
}

func NewGameHandler(svc service.GameService) *GameHandler {
	return &GameHandler{svc: svc}
}

func (h *GameHandler) RegisterRoutes(e *echo.Echo) {
	games := e.Group("/api/v1/games")
	games.GET("", h.ListGames)
	games.GET("/:id", h.GetGame)
	games.POST("/:id/join", h.SubmitJoinRequest)
	games.GET("/:id/requests", h.ListJoinRequests)
	games.GET("/:id/join/:userID", h.GetJoinStatus)
	games.POST("/:id/join/:userID/decision", h.Decide)
}

func (h *GameHandler) ListGames(c echo.Context) error {
	filter := repository.GameFilter{
		Sport: c.QueryParam("sport"),
	}
	if s := c.QueryParam("date"); s != "" {
		date, err := time.ParseInLocation("2006-01-02", s, time.UTC)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
		}
		filter.Date = &date
	}

	games, err := h.svc.ListGames(c.Request().Context(), filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.GameResponse, len(games))
	for i := range games {
		resp[i] = dto.ToGameResponse(&games[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *GameHandler) GetGame(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid game id")
	}

	game, err := h.svc.GetGame(c.Request().Context(), uint(id))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "game not found")
	}
	return c.JSON(http.StatusOK, dto.ToGameDetailResponse(game))
}

func (h *GameHandler) SubmitJoinRequest(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid game id")
	}

	var req dto.JoinGameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	jr, err := h.svc.SubmitJoinRequest(c.Request().Context(), uint(id), service.JoinInput{
		UserID:     req.UserID,
		SkillLevel: req.SkillLevel,
		Equipment:  req.Equipment,
		Message:    req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGameNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrGameFull):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrAlreadyRequested):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, jr)
}

// ListJoinRequests is the organizer's review queue, optionally filtered by
// status (?status=pending).
func (h *GameHandler) ListJoinRequests(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid game id")
	}

	var status *join.Status
	if s := c.QueryParam("status"); s != "" {
		st := join.Status(s)
		if !st.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown status")
		}
		status = &st
	}

	reqs, err := h.svc.ListJoinRequests(c.Request().Context(), uint(id), status)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, reqs)
}

func (h *GameHandler) GetJoinStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid game id")
	}
	userID := c.Param("userID")

	status, game, err := h.svc.GetJoinStatus(c.Request().Context(), uint(id), userID)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToJoinStatusResponse(game, userID, status))
}

func (h *GameHandler) Decide(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid game id")
	}
	userID := c.Param("userID")

	var req dto.DecisionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Approve == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "approve is required")
	}

	jr, err := h.svc.Decide(c.Request().Context(), uint(id), userID, *req.Approve)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGameNotFound), errors.Is(err, service.ErrRequestNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNotPending), errors.Is(err, service.ErrGameFull):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, jr)
}
