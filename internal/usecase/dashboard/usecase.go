// Package dashboard serves the fixed aggregate series the console charts.
// Deliberately not wired to the live store in this revision; it is a
// rendering target for externally supplied numbers.
package dashboard

type Slice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type UserLoan struct {
	Name       string  `json:"name"`
	LoanTaken  float64 `json:"loan_taken"`
	PendingEMI int     `json:"pending_emi"`
}

type DashboardDTO struct {
	PaymentData     []Slice    `json:"payment_data"`
	LoanData        []UserLoan `json:"loan_data"`
	InstallmentData []Slice    `json:"installment_data"`
}

type Usecase struct{}

func NewUsecase() *Usecase { return &Usecase{} }

func (u *Usecase) Snapshot() *DashboardDTO {
	return &DashboardDTO{
		PaymentData: []Slice{
			{Name: "Paid", Value: 400},
			{Name: "Pending", Value: 100},
		},
		LoanData: []UserLoan{
			{Name: "User 1", LoanTaken: 5000, PendingEMI: 2},
			{Name: "User 2", LoanTaken: 3000, PendingEMI: 1},
			{Name: "User 3", LoanTaken: 7000, PendingEMI: 3},
		},
		InstallmentData: []Slice{
			{Name: "Pending Installments", Value: 5},
			{Name: "Completed Installments", Value: 15},
		},
	}
}
