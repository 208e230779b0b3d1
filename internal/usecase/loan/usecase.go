package loan

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Amit562877/fund-collector/internal/domain/loan"
)

// ErrInvalidAmount carries the exact message the form shows inline.
var ErrInvalidAmount = errors.New("Enter a valid loan amount")

type Usecase struct {
	ledger *loan.Ledger
	log    *logrus.Entry
}

func NewUsecase(g *loan.Ledger, log *logrus.Entry) *Usecase {
	return &Usecase{ledger: g, log: log}
}

type StatusCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type EmiSlice struct {
	Name    string `json:"name"`
	Paid    int    `json:"paid"`
	Pending int    `json:"pending"`
}

type SummaryDTO struct {
	TotalLoan    float64       `json:"total_loan"`
	TotalPending float64       `json:"total_pending"`
	StatusData   []StatusCount `json:"status_data"`
	EmiData      []EmiSlice    `json:"emi_data"`
}

// Request parses the raw form amount and prepends a pending loan. The raw
// string is kept all the way here so "abc" and "-5" fail the same way the
// form field does.
func (u *Usecase) Request(raw string) (*loan.Loan, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrInvalidAmount
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil || amount <= 0 {
		return nil, ErrInvalidAmount
	}
	l := u.ledger.Request(amount)
	u.log.WithFields(logrus.Fields{"loan": l.ID, "amount": amount}).Info("loan requested")
	return &l, nil
}

// List returns the current ledger, most recent first.
func (u *Usecase) List() []loan.Loan {
	return u.ledger.Snapshot()
}

// Summary recomputes every projection from the live list on each call;
// nothing is cached. Sums go through decimal so a long ledger of paise
// amounts cannot drift.
func (u *Usecase) Summary() *SummaryDTO {
	loans := u.ledger.Snapshot()

	totalLoan := decimal.Zero
	totalPending := decimal.Zero
	counts := map[loan.Status]int{}
	emi := make([]EmiSlice, 0, len(loans))

	for _, l := range loans {
		totalLoan = totalLoan.Add(decimal.NewFromFloat(l.Amount))
		totalPending = totalPending.Add(decimal.NewFromFloat(l.PendingAmount))
		counts[l.Status]++
		emi = append(emi, EmiSlice{
			Name:    fmt.Sprintf("Loan #%d", l.ID),
			Paid:    l.EmisPaid,
			Pending: l.TotalEmis - l.EmisPaid,
		})
	}

	// fixed order, zero counts included
	status := []StatusCount{
		{Name: "Approved", Value: counts[loan.StatusApproved]},
		{Name: "Pending", Value: counts[loan.StatusPending]},
		{Name: "Rejected", Value: counts[loan.StatusRejected]},
	}

	return &SummaryDTO{
		TotalLoan:    totalLoan.InexactFloat64(),
		TotalPending: totalPending.InexactFloat64(),
		StatusData:   status,
		EmiData:      emi,
	}
}
