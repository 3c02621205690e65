package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"shareit/internal/dto"
	"shareit/internal/middleware"
	"shareit/internal/models"
	"shareit/internal/service"
	"github.com/labstack/echo/v4"
)

const (
	defaultPageFrom = 0
	defaultPageSize = 10
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/bookings", middleware.RequireSharerUserID)
	g.POST("", h.AddBooking)
	g.GET("", h.FindBookingsByBooker)
	g.GET("/owner", h.FindBookingsByOwner)
	g.GET("/:bookingId", h.FindBooking)
	g.PATCH("/:bookingId", h.UpdateBooking)
}

func (h *BookingHandler) AddBooking(c echo.Context) error {
	userID := middleware.SharerUserID(c)

	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.svc.AddBooking(c.Request().Context(), req, userID)
	if err != nil {
		return bookingError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) UpdateBooking(c echo.Context) error {
	userID := middleware.SharerUserID(c)

	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}
	approved, err := strconv.ParseBool(c.QueryParam("approved"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "approved must be true or false")
	}

	booking, err := h.svc.UpdateBooking(c.Request().Context(), userID, bookingID, approved)
	if err != nil {
		return bookingError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) FindBooking(c echo.Context) error {
	userID := middleware.SharerUserID(c)

	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	booking, err := h.svc.FindBooking(c.Request().Context(), userID, bookingID)
	if err != nil {
		return bookingError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) FindBookingsByBooker(c echo.Context) error {
	return h.findBookings(c, h.svc.FindBookingsByBooker)
}

func (h *BookingHandler) FindBookingsByOwner(c echo.Context) error {
	return h.findBookings(c, h.svc.FindBookingsByOwner)
}

func (h *BookingHandler) findBookings(
	c echo.Context,
	query func(ctx context.Context, userID int64, state models.BookingState, offset, limit int) ([]models.Booking, error),
) error {
	userID := middleware.SharerUserID(c)

	// State is parsed here, before any service or store call.
	state, err := parseState(c.QueryParam("state"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	offset, limit, err := parsePagination(c)
	if err != nil {
		return err
	}

	bookings, err := query(c.Request().Context(), userID, state, offset, limit)
	if err != nil {
		return bookingError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponseList(bookings))
}

func parseState(raw string) (models.BookingState, error) {
	if raw == "" {
		return models.StateAll, nil
	}
	return models.ParseBookingState(raw)
}

// parsePagination reads from/size as a plain offset/limit pair. A size of
// zero is refused here so no division or store call ever sees it.
func parsePagination(c echo.Context) (offset, limit int, err error) {
	offset = defaultPageFrom
	limit = defaultPageSize

	if raw := c.QueryParam("from"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "from must be a non-negative integer")
		}
	}
	if raw := c.QueryParam("size"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "size must be a positive integer")
		}
	}
	return offset, limit, nil
}

func bookingError(err error) error {
	switch {
	case errors.Is(err, service.ErrBookingNotFound),
		errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrOwnItemBooking),
		errors.Is(err, service.ErrNotItemOwner),
		errors.Is(err, service.ErrBookingNotVisible):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrStartAfterEnd),
		errors.Is(err, service.ErrStartEqualsEnd),
		errors.Is(err, service.ErrStartInPast),
		errors.Is(err, service.ErrItemUnavailable),
		errors.Is(err, service.ErrAlreadyDecided):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
