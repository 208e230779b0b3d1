package loan

import "sync"

// Ledger is the in-memory loan list, most recent first. Handlers run
// concurrently so access is serialized here even though each call is short.
type Ledger struct {
	mu    sync.Mutex
	loans []Loan
}

// NewLedger seeds the two bootstrap records the console has always shown.
func NewLedger() *Ledger {
	return &Ledger{loans: []Loan{
		{ID: 1, Amount: 10000, Status: StatusApproved, EmisPaid: 8, TotalEmis: 12, PendingAmount: 3333},
		{ID: 2, Amount: 5000, Status: StatusPending, EmisPaid: 0, TotalEmis: 6, PendingAmount: 5000},
	}}
}

// Request synthesizes a pending loan with id = count+1 and prepends it.
func (g *Ledger) Request(amount float64) Loan {
	g.mu.Lock()
	defer g.mu.Unlock()
	l := Loan{
		ID:            len(g.loans) + 1,
		Amount:        amount,
		Status:        StatusPending,
		EmisPaid:      0,
		TotalEmis:     NewRequestEmis,
		PendingAmount: amount,
	}
	g.loans = append([]Loan{l}, g.loans...)
	return l
}

// Snapshot copies the current list (most recent first).
func (g *Ledger) Snapshot() []Loan {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]Loan, len(g.loans))
	copy(out, g.loans)
	return out
}
