package fund

import (
	"errors"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
)

var (
	ErrNotFound        = errors.New("fund not found")
	ErrAlreadyApproved = errors.New("fund already approved")
)

type Fund struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public store-assigned identifier (32-char lowercase hex)
	DocID string `gorm:"column:doc_id;type:char(32);not null;uniqueIndex:ux_funds_doc_id" json:"id"`
	// Free-text label; existence against Users is deliberately not checked
	UserID string  `gorm:"column:user_id;size:255;not null" json:"user_id"`
	Amount float64 `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`
	// Caller's local date-time string, stored verbatim
	DateTime string `gorm:"column:date_time;size:32;not null" json:"date_time"`
	Status   Status `gorm:"column:status;type:enum('pending','approved');default:'pending'" json:"status"`
	// RFC3339 instant assigned at insert
	CreatedTime string `gorm:"column:created_time;size:40;not null;index:idx_funds_created_time" json:"created_time"`
}

func (Fund) TableName() string { return "funds" }
