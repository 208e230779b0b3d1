package fund

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Amit562877/fund-collector/internal/domain/fund"
	"github.com/Amit562877/fund-collector/internal/infrastructure/feed"
	"github.com/Amit562877/fund-collector/pkg/id"
)

// ErrInvalidInput carries the exact message the form shows inline.
var ErrInvalidInput = errors.New("Please fill all fields")

type Usecase struct {
	repo     fund.Repository
	notifier feed.Notifier
	log      *logrus.Entry
	now      func() time.Time
}

func NewUsecase(r fund.Repository, n feed.Notifier, log *logrus.Entry) *Usecase {
	return &Usecase{repo: r, notifier: n, log: log, now: time.Now}
}

type SubmitInput struct {
	UserID   string  `json:"user_id"`
	Amount   float64 `json:"amount"`
	DateTime string  `json:"date_time"`
}

type FundDTO struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id"`
	Amount      float64     `json:"amount"`
	DateTime    string      `json:"date_time"`
	Status      fund.Status `json:"status"`
	CreatedTime string      `json:"created_time"`

	// Display projections the console renders as-is
	AmountDisplay  string `json:"amount_display"`
	StatusLabel    string `json:"status_label"`
	DateTimeLabel  string `json:"date_time_label"`
	CreatedDisplay string `json:"created_display"`
}

// Submit records a pending contribution. userId stays a free-text label;
// its existence against the user registry is intentionally not checked.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*FundDTO, error) {
	userID := strings.TrimSpace(in.UserID)
	if userID == "" || in.Amount <= 0 || in.DateTime == "" {
		return nil, ErrInvalidInput
	}

	rec := &fund.Fund{
		DocID:       id.NewDocID(),
		UserID:      userID,
		Amount:      in.Amount,
		DateTime:    in.DateTime,
		Status:      fund.StatusPending,
		CreatedTime: u.now().UTC().Format(time.RFC3339),
	}
	if err := u.repo.Create(ctx, rec); err != nil {
		u.log.WithError(err).Error("fund insert failed")
		return nil, err
	}
	u.notifier.Notify(ctx, feed.TopicFunds)

	return toDTO(rec), nil
}

// Approve flips exactly the status field to approved, once. Racing
// approvals resolve last-write-wins at the store; there is no reverse
// transition.
func (u *Usecase) Approve(ctx context.Context, docID string) (*FundDTO, error) {
	rec, err := u.repo.GetByDocID(ctx, docID)
	if err != nil {
		return nil, err
	}
	if rec.Status == fund.StatusApproved {
		return nil, fund.ErrAlreadyApproved
	}

	if err := u.repo.UpdateStatus(ctx, docID, fund.StatusApproved); err != nil {
		u.log.WithField("fund", docID).WithError(err).Error("fund approve failed")
		return nil, err
	}
	u.notifier.Notify(ctx, feed.TopicFunds)

	rec.Status = fund.StatusApproved
	return toDTO(rec), nil
}

// List returns the full ledger, newest first.
func (u *Usecase) List(ctx context.Context) ([]FundDTO, error) {
	all, err := u.repo.ListNewestFirst(ctx)
	if err != nil {
		u.log.WithError(err).Error("fund list failed")
		return nil, err
	}
	dtos := make([]FundDTO, 0, len(all))
	for i := range all {
		dtos = append(dtos, *toDTO(&all[i]))
	}
	return dtos, nil
}

func toDTO(rec *fund.Fund) *FundDTO {
	return &FundDTO{
		ID:          rec.DocID,
		UserID:      rec.UserID,
		Amount:      rec.Amount,
		DateTime:    rec.DateTime,
		Status:      rec.Status,
		CreatedTime: rec.CreatedTime,

		AmountDisplay:  "₹" + strconv.FormatFloat(rec.Amount, 'f', -1, 64),
		StatusLabel:    titleCase(string(rec.Status)),
		DateTimeLabel:  strings.ReplaceAll(rec.DateTime, "T", " "),
		CreatedDisplay: localDisplay(rec.CreatedTime),
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// localDisplay renders the stored RFC3339 instant in the viewer's zone,
// falling back to the raw string when it does not parse.
func localDisplay(created string) string {
	t, err := time.Parse(time.RFC3339, created)
	if err != nil {
		return created
	}
	return t.Local().Format("02/01/2006, 15:04:05")
}
