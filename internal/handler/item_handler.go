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

type ItemHandler struct {
	svc        service.ItemService
	commentSvc service.CommentService
}

func NewItemHandler(svc service.ItemService, commentSvc service.CommentService) *ItemHandler {
	return &ItemHandler{svc: svc, commentSvc: commentSvc}
}

func (h *ItemHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/items", middleware.RequireSharerUserID)
	g.POST("", h.AddItem)
	g.GET("", h.FindUserItems)
	g.GET("/search", h.SearchItems)
	g.GET("/:itemId", h.FindItemByID)
	g.PATCH("/:itemId", h.UpdateItem)
	g.POST("/:itemId/comment", h.PostComment)
}

func (h *ItemHandler) AddItem(c echo.Context) error {
	userID := middleware.SharerUserID(c)

	var req dto.CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.svc.AddItem(c.Request().Context(), req, userID)
	if err != nil {
		return itemError(err)
	}
	return c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

func (h *ItemHandler) UpdateItem(c echo.Context) error {
	userID := middleware.SharerUserID(c)

	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	var req dto.UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	item, err := h.svc.UpdateItem(c.Request().Context(), itemID, req, userID)
	if err != nil {
		return itemError(err)
	}
	return c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

func (h *ItemHandler) FindItemByID(c echo.Context) error {
	userID := middleware.SharerUserID(c)

	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	details, err := h.svc.FindItemByID(c.Request().Context(), itemID, userID)
	if err != nil {
		return itemError(err)
	}
	return c.JSON(http.StatusOK, toItemDetailsResponse(details))
}

func (h *ItemHandler) FindUserItems(c echo.Context) error {
	userID := middleware.SharerUserID(c)

	detailsList, err := h.svc.FindUserItems(c.Request().Context(), userID)
	if err != nil {
		return itemError(err)
	}

	resp := make([]dto.ItemWithBookingsResponse, len(detailsList))
	for i := range detailsList {
		resp[i] = toItemDetailsResponse(&detailsList[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ItemHandler) SearchItems(c echo.Context) error {
	items, err := h.svc.SearchItems(c.Request().Context(), c.QueryParam("text"))
	if err != nil {
		return itemError(err)
	}
	return c.JSON(http.StatusOK, dto.ToItemResponseList(items))
}

func (h *ItemHandler) PostComment(c echo.Context) error {
	userID := middleware.SharerUserID(c)

	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	var req dto.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.commentSvc.PostComment(c.Request().Context(), userID, itemID, req.Text)
	if err != nil {
		return itemError(err)
	}
	return c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}

func toItemDetailsResponse(details *service.ItemDetails) dto.ItemWithBookingsResponse {
	return dto.ToItemWithBookingsResponse(details.Item, details.LastBooking, details.NextBooking, details.Comments)
}

func itemError(err error) error {
	switch {
	case errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrNotItemOwner):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrCommentWithoutBooking):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
