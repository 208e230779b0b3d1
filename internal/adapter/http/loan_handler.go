package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Amit562877/fund-collector/internal/usecase/loan"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

// The form posts the amount as typed, so it may arrive as a JSON string or
// number; both are handed to the usecase raw.
type requestLoanReq struct {
	Amount any `json:"amount"`
}

func rawAmount(v any) string {
	switch a := v.(type) {
	case nil:
		return ""
	case string:
		return a
	case float64:
		return fmt.Sprintf("%g", a)
	case json.Number:
		return a.String()
	default:
		return fmt.Sprintf("%v", a)
	}
}

func (h *LoanHandler) RequestLoan(c echo.Context) error {
	var req requestLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	l, err := h.uc.Request(rawAmount(req.Amount))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Loan request submitted!",
		"loan":    l,
	})
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"loans": h.uc.List()})
}

func (h *LoanHandler) LoanSummary(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Summary())
}
