package handler

import (
	"errors"
	"net/http"
	"strconv"

	"shareit/internal/dto"
	"shareit/internal/service"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/users")
	g.POST("", h.AddUser)
	g.GET("", h.FindAllUsers)
	g.GET("/:userId", h.FindUserByID)
	g.PATCH("/:userId", h.UpdateUser)
	g.DELETE("/:userId", h.DeleteUserByID)
}

func (h *UserHandler) AddUser(c echo.Context) error {
	var req dto.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.svc.AddUser(c.Request().Context(), req)
	if err != nil {
		return userError(err)
	}
	return c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	var req dto.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.svc.UpdateUser(c.Request().Context(), userID, req)
	if err != nil {
		return userError(err)
	}
	return c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *UserHandler) FindUserByID(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	user, err := h.svc.FindUserByID(c.Request().Context(), userID)
	if err != nil {
		return userError(err)
	}
	return c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *UserHandler) DeleteUserByID(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	if err := h.svc.DeleteUserByID(c.Request().Context(), userID); err != nil {
		return userError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *UserHandler) FindAllUsers(c echo.Context) error {
	users, err := h.svc.FindAllUsers(c.Request().Context())
	if err != nil {
		return userError(err)
	}
	return c.JSON(http.StatusOK, dto.ToUserResponseList(users))
}

func userError(err error) error {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return echo.NewHTTPError(http.StatusConflict, "email is already in use")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
