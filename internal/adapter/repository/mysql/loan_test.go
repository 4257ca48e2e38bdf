package mysql

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	categoryDomain "loan-origination-backend/internal/domain/category"
	domain "loan-origination-backend/internal/domain/loan"
	"loan-origination-backend/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite DB. The domain column types
// (decimal, json, text) are all accepted by sqlite, so the domain models
// are migrated as-is.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// one connection so every query sees the same in-memory database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&domain.Loan{}, &categoryDomain.Category{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func f64(v float64) *float64 { return &v }

func makeLoan(userID string, status domain.Status, createdAt time.Time) *domain.Loan {
	loanID := id.NewObjectID()
	return &domain.Loan{
		ID:            loanID,
		ApplicationNo: loanID,
		UserID:        userID,
		Type:          "New Car Loan",
		Status:        status,
		SerialNumber:  1001,
		Amount:        f64(50_000),
		CreatedAt:     createdAt,
	}
}

func TestLoan_CreateAndGetByID(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	l := makeLoan("aaaaaaaaaaaaaaaaaaaaaaaa", domain.StatusNotSubmitted, time.Now().UTC())
	l.Document = []domain.Document{{Name: "nric", Type: "id", URL: "https://files.example.com/nric.pdf"}}
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, l.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ApplicationNo != l.ID || got.UserID != l.UserID || got.Status != domain.StatusNotSubmitted {
		t.Errorf("unexpected loan: %+v", got)
	}
	if got.Amount == nil || *got.Amount != 50_000 {
		t.Errorf("amount not persisted: %v", got.Amount)
	}
	if len(got.Document) != 1 || got.Document[0].URL != "https://files.example.com/nric.pdf" {
		t.Errorf("documents not persisted: %+v", got.Document)
	}
}

func TestLoan_GetByID_NotFound(t *testing.T) {
	repo := NewLoanRepository(openTestDB(t))

	_, err := repo.GetByID(context.Background(), "eeeeeeeeeeeeeeeeeeeeeeee")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestLoan_CreateDuplicateApplicationNo(t *testing.T) {
	repo := NewLoanRepository(openTestDB(t))
	ctx := context.Background()

	a := makeLoan("aaaaaaaaaaaaaaaaaaaaaaaa", domain.StatusNotSubmitted, time.Now().UTC())
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}
	b := makeLoan("aaaaaaaaaaaaaaaaaaaaaaaa", domain.StatusNotSubmitted, time.Now().UTC())
	b.ApplicationNo = a.ApplicationNo
	if err := repo.Create(ctx, b); !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected ErrDuplicatedKey, got %v", err)
	}
}

func TestLoan_SaveReplacesRow(t *testing.T) {
	repo := NewLoanRepository(openTestDB(t))
	ctx := context.Background()

	l := makeLoan("aaaaaaaaaaaaaaaaaaaaaaaa", domain.StatusNotSubmitted, time.Now().UTC())
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	l.Status = domain.StatusPending
	l.FullName = "Jane Tan"
	if err := repo.Save(ctx, l); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByID(ctx, l.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != domain.StatusPending || got.FullName != "Jane Tan" {
		t.Errorf("Save did not persist: %+v", got)
	}
}

func TestLoan_UpdateByApplicationNo(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	l := makeLoan("aaaaaaaaaaaaaaaaaaaaaaaa", domain.StatusPending, time.Now().UTC())
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// existing row: overwritten in place
	l.Document = append(l.Document, domain.Document{Name: "payslip", Type: "income", URL: "https://x/p.pdf"})
	if err := repo.UpdateByApplicationNo(ctx, l); err != nil {
		t.Fatalf("UpdateByApplicationNo: %v", err)
	}
	got, err := repo.GetByID(ctx, l.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(got.Document) != 1 || got.Document[0].Name != "payslip" {
		t.Errorf("documents = %+v", got.Document)
	}

	// missing row: not inserted
	fresh := makeLoan("bbbbbbbbbbbbbbbbbbbbbbbb", domain.StatusNotSubmitted, time.Now().UTC())
	if err := repo.UpdateByApplicationNo(ctx, fresh); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("UpdateByApplicationNo on missing row: expected ErrRecordNotFound, got %v", err)
	}
	var n int64
	db.Model(&domain.Loan{}).Count(&n)
	if n != 1 {
		t.Fatalf("row count = %d, want 1", n)
	}
}

func TestLoan_WritesAfterDeleteDoNotRecreate(t *testing.T) {
	repo := NewLoanRepository(openTestDB(t))
	ctx := context.Background()

	l := makeLoan("aaaaaaaaaaaaaaaaaaaaaaaa", domain.StatusPending, time.Now().UTC())
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Delete(ctx, l.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	l.FullName = "Late Writer"
	if err := repo.Save(ctx, l); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("Save after delete: expected ErrRecordNotFound, got %v", err)
	}
	if _, err := repo.GetByID(ctx, l.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("Save recreated the row: %v", err)
	}

	l.Document = append(l.Document, domain.Document{Name: "payslip", Type: "income", URL: "https://x/p.pdf"})
	if err := repo.UpdateByApplicationNo(ctx, l); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("UpdateByApplicationNo after delete: expected ErrRecordNotFound, got %v", err)
	}
	if _, err := repo.GetByID(ctx, l.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("UpdateByApplicationNo recreated the row: %v", err)
	}
}

// Saving an unchanged loan still reports success.
func TestLoan_SaveUnchangedRow(t *testing.T) {
	repo := NewLoanRepository(openTestDB(t))
	ctx := context.Background()

	l := makeLoan("aaaaaaaaaaaaaaaaaaaaaaaa", domain.StatusPending, time.Now().UTC())
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Save(ctx, l); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if err := repo.Save(ctx, l); err != nil {
		t.Fatalf("second Save: %v", err)
	}
}

func TestLoan_ListFilters(t *testing.T) {
	repo := NewLoanRepository(openTestDB(t))
	ctx := context.Background()

	u1, u2 := "111111111111111111111111", "222222222222222222222222"
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	seed := []*domain.Loan{
		makeLoan(u1, domain.StatusNotSubmitted, base),
		makeLoan(u1, domain.StatusPending, base.Add(time.Hour)),
		makeLoan(u2, domain.StatusCompleted, base.Add(2*time.Hour)),
		makeLoan(u2, domain.StatusNotSubmitted, base.Add(3*time.Hour)),
	}
	for _, l := range seed {
		if err := repo.Create(ctx, l); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	mine, err := repo.List(ctx, domain.ListFilter{UserID: u1})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(mine) != 2 || mine[0].ID != seed[1].ID || mine[1].ID != seed[0].ID {
		t.Fatalf("user list not newest-first: %+v", mine)
	}

	submitted, err := repo.List(ctx, domain.ListFilter{ExcludeStatus: domain.StatusNotSubmitted})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(submitted) != 2 || submitted[0].ID != seed[2].ID || submitted[1].ID != seed[1].ID {
		t.Fatalf("submitted queue wrong: %+v", submitted)
	}

	page2, err := repo.List(ctx, domain.ListFilter{Page: 2, PerPage: 3})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page2) != 1 || page2[0].ID != seed[0].ID {
		t.Fatalf("page 2 = %+v", page2)
	}
}

func TestLoan_ListCreatedBetween_ExclusiveBounds(t *testing.T) {
	repo := NewLoanRepository(openTestDB(t))
	ctx := context.Background()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	onStart := makeLoan("aaaaaaaaaaaaaaaaaaaaaaaa", domain.StatusPending, start)
	inside1 := makeLoan("aaaaaaaaaaaaaaaaaaaaaaaa", domain.StatusPending, start.Add(24*time.Hour))
	inside2 := makeLoan("aaaaaaaaaaaaaaaaaaaaaaaa", domain.StatusPending, start.Add(48*time.Hour))
	onEnd := makeLoan("aaaaaaaaaaaaaaaaaaaaaaaa", domain.StatusPending, end)
	for _, l := range []*domain.Loan{onStart, inside1, inside2, onEnd} {
		if err := repo.Create(ctx, l); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.ListCreatedBetween(ctx, start, end)
	if err != nil {
		t.Fatalf("ListCreatedBetween: %v", err)
	}
	if len(got) != 2 || got[0].ID != inside2.ID || got[1].ID != inside1.ID {
		t.Fatalf("unexpected scan: %+v", got)
	}
}

func TestLoan_Delete(t *testing.T) {
	repo := NewLoanRepository(openTestDB(t))
	ctx := context.Background()

	l := makeLoan("aaaaaaaaaaaaaaaaaaaaaaaa", domain.StatusPending, time.Now().UTC())
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Delete(ctx, l.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, l.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected row gone, got %v", err)
	}
	if err := repo.Delete(ctx, l.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("second delete: expected ErrRecordNotFound, got %v", err)
	}
}

// Two writers that both loaded the same version: the later save wins and
// the earlier change is lost. There is no version column.
func TestLoan_ConcurrentSaves_LastWriteWins(t *testing.T) {
	repo := NewLoanRepository(openTestDB(t))
	ctx := context.Background()

	l := makeLoan("aaaaaaaaaaaaaaaaaaaaaaaa", domain.StatusNotSubmitted, time.Now().UTC())
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	a, _ := repo.GetByID(ctx, l.ID)
	b, _ := repo.GetByID(ctx, l.ID)
	a.FullName = "Writer A"
	b.Phone = "+6511111111"

	var wg sync.WaitGroup
	first := make(chan struct{})
	wg.Add(2)
	go func() {
		defer wg.Done()
		defer close(first)
		if err := repo.Save(ctx, a); err != nil {
			t.Errorf("save a: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		<-first
		if err := repo.Save(ctx, b); err != nil {
			t.Errorf("save b: %v", err)
		}
	}()
	wg.Wait()

	got, err := repo.GetByID(ctx, l.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Phone != "+6511111111" || got.FullName != "" {
		t.Fatalf("expected last write to win: %+v", got)
	}
}
