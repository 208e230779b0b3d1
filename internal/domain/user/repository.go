package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	// Full collection, newest first by created_at; pagination happens on
	// the loaded slice.
	ListNewestFirst(ctx context.Context) ([]User, error)
}
