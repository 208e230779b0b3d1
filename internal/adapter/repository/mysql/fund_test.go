package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/Amit562877/fund-collector/internal/domain/fund"
	"github.com/Amit562877/fund-collector/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schema only for tests (no ENUM) ---

type fundSQLite struct {
	ID          uint64  `gorm:"column:id;primaryKey"`
	DocID       string  `gorm:"column:doc_id;size:32"`
	UserID      string  `gorm:"column:user_id"`
	Amount      float64 `gorm:"column:amount"`
	DateTime    string  `gorm:"column:date_time"`
	Status      string  `gorm:"column:status;type:text"` // ← no enum
	CreatedTime string  `gorm:"column:created_time"`
}

func (fundSQLite) TableName() string { return "funds" }

func openFundTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&fundSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeFund(userID string, amount float64, createdAgo time.Duration) *domain.Fund {
	return &domain.Fund{
		DocID:       id.NewDocID(),
		UserID:      userID,
		Amount:      amount,
		DateTime:    "2024-01-01T10:00",
		Status:      domain.StatusPending,
		CreatedTime: time.Now().UTC().Add(-createdAgo).Format(time.RFC3339),
	}
}

func TestFundRepository_CreateListOrder(t *testing.T) {
	repo := NewFundRepository(openFundTestDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, makeFund("u1", 500, time.Hour)); err != nil {
		t.Fatalf("create: %v", err)
	}
	latest := makeFund("u2", 750, 0)
	if err := repo.Create(ctx, latest); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.ListNewestFirst(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].DocID != latest.DocID {
		t.Fatalf("order wrong: %+v", got)
	}
	if got[0].Status != domain.StatusPending {
		t.Fatalf("status = %s", got[0].Status)
	}
}

func TestFundRepository_UpdateStatus(t *testing.T) {
	repo := NewFundRepository(openFundTestDB(t))
	ctx := context.Background()

	f := makeFund("u1", 500, 0)
	if err := repo.Create(ctx, f); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.UpdateStatus(ctx, f.DocID, domain.StatusApproved); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := repo.GetByDocID(ctx, f.DocID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != domain.StatusApproved {
		t.Fatalf("status = %s, want approved", got.Status)
	}
	// only the status column moved
	if got.Amount != 500 || got.UserID != "u1" || got.CreatedTime != f.CreatedTime {
		t.Fatalf("non-status fields changed: %+v", got)
	}
}

func TestFundRepository_UpdateStatus_Missing(t *testing.T) {
	repo := NewFundRepository(openFundTestDB(t))
	err := repo.UpdateStatus(context.Background(), id.NewDocID(), domain.StatusApproved)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestFundRepository_Get_Missing(t *testing.T) {
	repo := NewFundRepository(openFundTestDB(t))
	_, err := repo.GetByDocID(context.Background(), id.NewDocID())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
