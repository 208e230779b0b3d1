package loan

type Status string

const (
	StatusApproved Status = "approved"
	StatusPending  Status = "pending"
	StatusRejected Status = "rejected"
)

// Loan lives only in process memory; there is no table behind it and no
// cross-session durability in this revision.
type Loan struct {
	ID            int     `json:"id"`
	Amount        float64 `json:"amount"`
	Status        Status  `json:"status"`
	EmisPaid      int     `json:"emis_paid"`
	TotalEmis     int     `json:"total_emis"`
	PendingAmount float64 `json:"pending_amount"`
}

// NewRequestEmis is the installment count assigned to every new request.
const NewRequestEmis = 12
