package mysql

import (
	"context"
	"errors"

	fundDomain "github.com/Amit562877/fund-collector/internal/domain/fund"

	"gorm.io/gorm"
)

type FundRepository struct{ db *gorm.DB }

func NewFundRepository(db *gorm.DB) *FundRepository { return &FundRepository{db: db} }

func (r *FundRepository) Create(ctx context.Context, f *fundDomain.Fund) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FundRepository) GetByDocID(ctx context.Context, docID string) (*fundDomain.Fund, error) {
	var out fundDomain.Fund
	res := r.db.WithContext(ctx).Where("doc_id = ?", docID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, fundDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *FundRepository) ListNewestFirst(ctx context.Context) ([]fundDomain.Fund, error) {
	var out []fundDomain.Fund
	res := r.db.WithContext(ctx).
		Order("created_time DESC, id DESC").
		Find(&out)
	return out, res.Error
}

// UpdateStatus writes exactly the status column. No row lock, no version
// check: racing approvals resolve last-write-wins.
func (r *FundRepository) UpdateStatus(ctx context.Context, docID string, s fundDomain.Status) error {
	res := r.db.WithContext(ctx).
		Model(&fundDomain.Fund{}).
		Where("doc_id = ?", docID).
		Update("status", s)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fundDomain.ErrNotFound
	}
	return nil
}
