package usermock

import (
	"context"
	"errors"

	domain "github.com/Amit562877/fund-collector/internal/domain/user"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn          func(ctx context.Context, u *domain.User) error
	ListNewestFirstFn func(ctx context.Context) ([]domain.User, error)
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) ListNewestFirst(ctx context.Context) ([]domain.User, error) {
	if m.ListNewestFirstFn != nil {
		return m.ListNewestFirstFn(ctx)
	}
	return nil, errors.New("not implemented")
}
