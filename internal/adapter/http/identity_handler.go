package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Amit562877/fund-collector/internal/usecase/identity"
)

type IdentityHandler struct{ uc *identity.Usecase }

func NewIdentityHandler(uc *identity.Usecase) *IdentityHandler {
	return &IdentityHandler{uc: uc}
}

type requestOTPReq struct {
	SessionID string `json:"session_id"`
	Mobile    string `json:"mobile"`
}

type verifyOTPReq struct {
	SessionID string `json:"session_id"`
	Code      string `json:"code"`
}

func (h *IdentityHandler) RequestOTP(c echo.Context) error {
	var req requestOTPReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	res, err := h.uc.RequestCode(c.Request().Context(), req.SessionID, req.Mobile)
	if err != nil {
		// provider/validation text verbatim; the session id (when one
		// exists) travels with the error so the caller retries in place
		er := ErrorResponse{Error: err.Error()}
		if res != nil {
			er.SessionID = res.SessionID
		}
		return c.JSON(http.StatusBadRequest, er)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *IdentityHandler) VerifyOTP(c echo.Context) error {
	var req verifyOTPReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	res, err := h.uc.SubmitCode(c.Request().Context(), req.SessionID, req.Code)
	switch {
	case errors.Is(err, identity.ErrSessionNotFound), errors.Is(err, identity.ErrNoChallenge):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case err != nil:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}
