package fund

import "context"

type Repository interface {
	Create(ctx context.Context, f *Fund) error
	GetByDocID(ctx context.Context, docID string) (*Fund, error)
	// Full ledger, newest first by created_time.
	ListNewestFirst(ctx context.Context) ([]Fund, error)
	// Partial write: touches exactly the status column. Last write wins;
	// no locking on purpose.
	UpdateStatus(ctx context.Context, docID string, s Status) error
}
