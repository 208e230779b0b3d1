package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	fundDomain "github.com/Amit562877/fund-collector/internal/domain/fund"
	"github.com/Amit562877/fund-collector/internal/usecase/fund"
)

type FundHandler struct{ uc *fund.Usecase }

func NewFundHandler(uc *fund.Usecase) *FundHandler { return &FundHandler{uc: uc} }

type createFundReq struct {
	UserID   string  `json:"user_id" validate:"notblank"`
	Amount   float64 `json:"amount" validate:"gt=0"`
	DateTime string  `json:"date_time" validate:"required"`
}

func (h *FundHandler) CreateFund(c echo.Context) error {
	var req createFundReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   fund.ErrInvalidInput.Error(),
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Submit(c.Request().Context(), fund.SubmitInput{
		UserID: req.UserID, Amount: req.Amount, DateTime: req.DateTime,
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Fund added and pending approval.",
		"fund":    dto,
	})
}

func (h *FundHandler) ListFunds(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"funds": dtos})
}

func (h *FundHandler) ApproveFund(c echo.Context) error {
	dto, err := h.uc.Approve(c.Request().Context(), c.Param("fund_id"))
	switch {
	case errors.Is(err, fundDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, fundDomain.ErrAlreadyApproved):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case err != nil:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Fund approved!",
		"fund":    dto,
	})
}
