package fundmock

import (
	"context"
	"errors"

	domain "github.com/Amit562877/fund-collector/internal/domain/fund"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn          func(ctx context.Context, f *domain.Fund) error
	GetByDocIDFn      func(ctx context.Context, docID string) (*domain.Fund, error)
	ListNewestFirstFn func(ctx context.Context) ([]domain.Fund, error)
	UpdateStatusFn    func(ctx context.Context, docID string, s domain.Status) error
}

func (m *Repo) Create(ctx context.Context, f *domain.Fund) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, f)
	}
	return nil
}

func (m *Repo) GetByDocID(ctx context.Context, docID string) (*domain.Fund, error) {
	if m.GetByDocIDFn != nil {
		return m.GetByDocIDFn(ctx, docID)
	}
	return nil, errors.New("not implemented")
}

func (m *Repo) ListNewestFirst(ctx context.Context) ([]domain.Fund, error) {
	if m.ListNewestFirstFn != nil {
		return m.ListNewestFirstFn(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *Repo) UpdateStatus(ctx context.Context, docID string, s domain.Status) error {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, docID, s)
	}
	return nil
}
