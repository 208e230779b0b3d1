package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Amit562877/fund-collector/internal/usecase/user"
)

type UserHandler struct{ uc *user.Usecase }

func NewUserHandler(uc *user.Usecase) *UserHandler { return &UserHandler{uc: uc} }

type createUserReq struct {
	Name   string `json:"name" validate:"notblank"`
	Mobile string `json:"mobile" validate:"mobile10"`
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	var req createUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		// the console shows one combined message for either field
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   user.ErrInvalidInput.Error(),
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Register(c.Request().Context(), user.RegisterInput{Name: req.Name, Mobile: req.Mobile})
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "User added successfully! Temp password sent.",
		"user":    dto,
	})
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			page = n
		}
	}
	dto, err := h.uc.List(c.Request().Context(), page)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}
