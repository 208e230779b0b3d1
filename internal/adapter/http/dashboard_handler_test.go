package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	uc "github.com/Amit562877/fund-collector/internal/usecase/dashboard"
)

func TestGetDashboard_FixedSeries(t *testing.T) {
	e := newEchoWithValidator()
	h := NewDashboardHandler(uc.NewUsecase())

	req := httptest.NewRequest(stdhttp.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.GetDashboard(c); err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}
	var got uc.DashboardDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(got.PaymentData) != 2 || got.PaymentData[0].Name != "Paid" || got.PaymentData[0].Value != 400 {
		t.Fatalf("payment data: %+v", got.PaymentData)
	}
	if len(got.LoanData) != 3 || got.LoanData[2].LoanTaken != 7000 {
		t.Fatalf("loan data: %+v", got.LoanData)
	}
	if len(got.InstallmentData) != 2 || got.InstallmentData[1].Value != 15 {
		t.Fatalf("installment data: %+v", got.InstallmentData)
	}
}
