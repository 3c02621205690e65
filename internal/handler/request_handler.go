package handler

import (
	"errors"
	"net/http"
	"strconv"

	"shareit/internal/dto"
	"shareit/internal/middleware"
	"shareit/internal/service"
	"github.com/labstack/echo/v4"
)

type ItemRequestHandler struct {
	svc service.ItemRequestService
}

func NewItemRequestHandler(svc service.ItemRequestService) *ItemRequestHandler {
	return &ItemRequestHandler{svc: svc}
}

func (h *ItemRequestHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/requests", middleware.RequireSharerUserID)
	g.POST("", h.PostItemRequest)
	g.GET("", h.FindOwnItemRequests)
	g.GET("/all", h.FindOtherItemRequests)
	g.GET("/:requestId", h.FindItemRequestByID)
}

func (h *ItemRequestHandler) PostItemRequest(c echo.Context) error {
	userID := middleware.SharerUserID(c)

	var req dto.CreateItemRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	request, err := h.svc.PostItemRequest(c.Request().Context(), req.Description, userID)
	if err != nil {
		return requestError(err)
	}
	return c.JSON(http.StatusOK, dto.ToItemRequestResponse(request, nil))
}

func (h *ItemRequestHandler) FindOwnItemRequests(c echo.Context) error {
	userID := middleware.SharerUserID(c)

	requests, err := h.svc.FindOwnItemRequests(c.Request().Context(), userID)
	if err != nil {
		return requestError(err)
	}
	return c.JSON(http.StatusOK, toItemRequestResponseList(requests))
}

func (h *ItemRequestHandler) FindOtherItemRequests(c echo.Context) error {
	userID := middleware.SharerUserID(c)

	offset, limit, err := parsePagination(c)
	if err != nil {
		return err
	}

	requests, err := h.svc.FindOtherItemRequests(c.Request().Context(), userID, offset, limit)
	if err != nil {
		return requestError(err)
	}
	return c.JSON(http.StatusOK, toItemRequestResponseList(requests))
}

func (h *ItemRequestHandler) FindItemRequestByID(c echo.Context) error {
	userID := middleware.SharerUserID(c)

	requestID, err := strconv.ParseInt(c.Param("requestId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request id")
	}

	request, err := h.svc.FindItemRequestByID(c.Request().Context(), requestID, userID)
	if err != nil {
		return requestError(err)
	}
	return c.JSON(http.StatusOK, dto.ToItemRequestResponse(request.Request, request.Items))
}

func toItemRequestResponseList(requests []service.RequestWithItems) []dto.ItemRequestResponse {
	resp := make([]dto.ItemRequestResponse, len(requests))
	for i, r := range requests {
		resp[i] = dto.ToItemRequestResponse(r.Request, r.Items)
	}
	return resp
}

func requestError(err error) error {
	switch {
	case errors.Is(err, service.ErrRequestNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
