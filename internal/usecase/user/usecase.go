package user

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Amit562877/fund-collector/internal/domain/user"
	"github.com/Amit562877/fund-collector/internal/infrastructure/feed"
	"github.com/Amit562877/fund-collector/pkg/id"
	"github.com/Amit562877/fund-collector/pkg/password"
)

// PageSize is fixed; the console has always shown five users per page.
const PageSize = 5

// ErrInvalidInput carries the exact message the form shows inline.
var ErrInvalidInput = errors.New("Enter a valid name and 10-digit mobile number")

var reMobile10 = regexp.MustCompile(`^\d{10}$`)

type Usecase struct {
	repo     user.Repository
	notifier feed.Notifier
	log      *logrus.Entry
}

func NewUsecase(r user.Repository, n feed.Notifier, log *logrus.Entry) *Usecase {
	return &Usecase{repo: r, notifier: n, log: log}
}

type RegisterInput struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
}

type UserDTO struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Mobile       string    `json:"mobile"`
	TempPassword string    `json:"temp_password"`
	CreatedAt    time.Time `json:"created_at"`
}

type PageDTO struct {
	Users      []UserDTO `json:"users"`
	Page       int       `json:"page"`
	TotalPages int       `json:"total_pages"`
	TotalUsers int       `json:"total_users"`
	HasPrev    bool      `json:"has_prev"`
	HasNext    bool      `json:"has_next"`
}

// Register validates, mints a temp password and inserts the record. Nothing
// is written when validation fails; the caller keeps the input for
// correction.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*UserDTO, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || !reMobile10.MatchString(in.Mobile) {
		return nil, ErrInvalidInput
	}

	rec := &user.User{
		DocID:        id.NewDocID(),
		Name:         name,
		Mobile:       in.Mobile,
		TempPassword: password.NewTemp(),
	}
	if err := u.repo.Create(ctx, rec); err != nil {
		u.log.WithError(err).Error("user insert failed")
		return nil, err
	}
	u.notifier.Notify(ctx, feed.TopicUsers)

	return toDTO(rec), nil
}

// List loads the full registry newest-first and pages it client-side,
// clamping page into [1, totalPages]. An empty registry still reports one
// page so the pager has something to stand on.
func (u *Usecase) List(ctx context.Context, page int) (*PageDTO, error) {
	all, err := u.repo.ListNewestFirst(ctx)
	if err != nil {
		u.log.WithError(err).Error("user list failed")
		return nil, err
	}

	totalPages := (len(all) + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	lo := (page - 1) * PageSize
	hi := lo + PageSize
	if lo > len(all) {
		lo = len(all)
	}
	if hi > len(all) {
		hi = len(all)
	}

	dtos := make([]UserDTO, 0, hi-lo)
	for i := lo; i < hi; i++ {
		dtos = append(dtos, *toDTO(&all[i]))
	}
	return &PageDTO{
		Users:      dtos,
		Page:       page,
		TotalPages: totalPages,
		TotalUsers: len(all),
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}, nil
}

// ListAll backs the live stream: the whole registry, newest first.
func (u *Usecase) ListAll(ctx context.Context) ([]UserDTO, error) {
	all, err := u.repo.ListNewestFirst(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]UserDTO, 0, len(all))
	for i := range all {
		dtos = append(dtos, *toDTO(&all[i]))
	}
	return dtos, nil
}

func toDTO(rec *user.User) *UserDTO {
	return &UserDTO{
		ID:           rec.DocID,
		Name:         rec.Name,
		Mobile:       rec.Mobile,
		TempPassword: rec.TempPassword,
		CreatedAt:    rec.CreatedAt,
	}
}
