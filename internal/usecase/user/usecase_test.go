package user

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	domain "github.com/Amit562877/fund-collector/internal/domain/user"
	"github.com/Amit562877/fund-collector/internal/logging"
	"github.com/Amit562877/fund-collector/internal/testutil/feedmock"
	"github.com/Amit562877/fund-collector/internal/testutil/usermock"
	"github.com/Amit562877/fund-collector/pkg/password"
)

func newUC(repo *usermock.Repo, n *feedmock.Notifier) *Usecase {
	return NewUsecase(repo, n, logging.WithModule(logging.New(), "user-test"))
}

func TestRegister_Success(t *testing.T) {
	var created *domain.User
	repo := &usermock.Repo{
		CreateFn: func(ctx context.Context, u *domain.User) error {
			u.CreatedAt = time.Now().UTC()
			created = u
			return nil
		},
	}
	n := &feedmock.Notifier{}

	dto, err := newUC(repo, n).Register(context.Background(), RegisterInput{Name: "  Asha ", Mobile: "9876543210"})
	if err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if created == nil {
		t.Fatal("repo.Create not called")
	}
	if dto.Name != "Asha" {
		t.Fatalf("name not trimmed: %q", dto.Name)
	}
	if len(dto.TempPassword) != password.TempLength {
		t.Fatalf("temp password %q, want %d chars", dto.TempPassword, password.TempLength)
	}
	for _, c := range dto.TempPassword {
		if !strings.ContainsRune(password.Alphabet, c) {
			t.Fatalf("temp password %q has %q outside alphabet", dto.TempPassword, c)
		}
	}
	if len(dto.ID) != 32 {
		t.Fatalf("doc id length %d", len(dto.ID))
	}
	if n.Count() != 1 {
		t.Fatalf("notify count = %d", n.Count())
	}
}

func TestRegister_Validation(t *testing.T) {
	cases := []struct {
		name   string
		in     RegisterInput
		wantOK bool
	}{
		{"valid", RegisterInput{"Asha", "9876543210"}, true},
		{"empty name", RegisterInput{"", "9876543210"}, false},
		{"blank name", RegisterInput{"   ", "9876543210"}, false},
		{"short mobile", RegisterInput{"Asha", "98765"}, false},
		{"long mobile", RegisterInput{"Asha", "98765432101"}, false},
		{"letters in mobile", RegisterInput{"Asha", "98765abc10"}, false},
		{"empty mobile", RegisterInput{"Asha", ""}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &usermock.Repo{CreateFn: func(ctx context.Context, u *domain.User) error {
				if !tc.wantOK {
					t.Fatal("Create must not be called on invalid input")
				}
				return nil
			}}
			n := &feedmock.Notifier{}
			_, err := newUC(repo, n).Register(context.Background(), tc.in)
			if tc.wantOK && err != nil {
				t.Fatalf("err = %v", err)
			}
			if !tc.wantOK {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("err = %v, want ErrInvalidInput", err)
				}
				if n.Count() != 0 {
					t.Fatal("must not notify on validation failure")
				}
			}
		})
	}
}

func TestRegister_RepoError(t *testing.T) {
	boom := errors.New("store unavailable")
	repo := &usermock.Repo{CreateFn: func(ctx context.Context, u *domain.User) error { return boom }}
	n := &feedmock.Notifier{}
	_, err := newUC(repo, n).Register(context.Background(), RegisterInput{"Asha", "9876543210"})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want store error surfaced verbatim", err)
	}
	if n.Count() != 0 {
		t.Fatal("must not notify on failed insert")
	}
}

func seedUsers(n int) []domain.User {
	out := make([]domain.User, n)
	base := time.Now().UTC()
	for i := range out {
		out[i] = domain.User{
			DocID:     strings.Repeat("a", 31) + string(rune('a'+i%26)),
			Name:      "User " + string(rune('A'+i)),
			Mobile:    "9876543210",
			CreatedAt: base.Add(-time.Duration(i) * time.Minute),
		}
	}
	return out
}

func TestList_Pagination_SevenUsers(t *testing.T) {
	repo := &usermock.Repo{ListNewestFirstFn: func(ctx context.Context) ([]domain.User, error) {
		return seedUsers(7), nil
	}}
	uc := newUC(repo, &feedmock.Notifier{})

	p1, err := uc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if p1.TotalPages != 2 || p1.TotalUsers != 7 {
		t.Fatalf("totals: %+v", p1)
	}
	if len(p1.Users) != 5 {
		t.Fatalf("page 1 len = %d, want 5", len(p1.Users))
	}
	if p1.HasPrev || !p1.HasNext {
		t.Fatalf("page 1 nav: prev=%v next=%v", p1.HasPrev, p1.HasNext)
	}

	p2, err := uc.List(context.Background(), 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(p2.Users) != 2 {
		t.Fatalf("page 2 len = %d, want 2", len(p2.Users))
	}
	if !p2.HasPrev || p2.HasNext {
		t.Fatalf("page 2 nav: prev=%v next=%v", p2.HasPrev, p2.HasNext)
	}
	// newest-first ordering carried over from the repo
	if p2.Users[0].Name != p1.Users[0].Name && p2.Users[0].ID == p1.Users[0].ID {
		t.Fatal("page slices overlap")
	}
}

func TestList_Empty_StillOnePage(t *testing.T) {
	repo := &usermock.Repo{ListNewestFirstFn: func(ctx context.Context) ([]domain.User, error) {
		return nil, nil
	}}
	p, err := newUC(repo, &feedmock.Notifier{}).List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if p.TotalPages != 1 || p.HasPrev || p.HasNext || len(p.Users) != 0 {
		t.Fatalf("empty page: %+v", p)
	}
}

func TestList_PageClamped(t *testing.T) {
	repo := &usermock.Repo{ListNewestFirstFn: func(ctx context.Context) ([]domain.User, error) {
		return seedUsers(7), nil
	}}
	uc := newUC(repo, &feedmock.Notifier{})

	p, _ := uc.List(context.Background(), 99)
	if p.Page != 2 {
		t.Fatalf("page = %d, want clamp to 2", p.Page)
	}
	p, _ = uc.List(context.Background(), 0)
	if p.Page != 1 {
		t.Fatalf("page = %d, want clamp to 1", p.Page)
	}
}

func TestList_ExactMultiple(t *testing.T) {
	repo := &usermock.Repo{ListNewestFirstFn: func(ctx context.Context) ([]domain.User, error) {
		return seedUsers(10), nil
	}}
	p, _ := newUC(repo, &feedmock.Notifier{}).List(context.Background(), 2)
	if p.TotalPages != 2 || len(p.Users) != 5 || p.HasNext {
		t.Fatalf("10 users page 2: %+v", p)
	}
}
