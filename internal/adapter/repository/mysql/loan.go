package mysql

import (
	"context"
	"time"

	loanDomain "loan-origination-backend/internal/domain/loan"

	"gorm.io/gorm"
)

const (
	defaultPerPage = 30
	maxPerPage     = 100
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

// Save replaces every column of the row identified by l.ID. It never
// inserts: a row that is gone yields gorm.ErrRecordNotFound.
func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return updateRow(r.db.WithContext(ctx), l)
}

func updateRow(db *gorm.DB, l *loanDomain.Loan) error {
	res := db.Model(l).Select("*").Updates(l)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *LoanRepository) GetByID(ctx context.Context, id string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) UpdateByApplicationNo(ctx context.Context, l *loanDomain.Loan) error {
	db := r.db.WithContext(ctx)

	var existing loanDomain.Loan
	if err := db.Select("id").Where("application_no = ?", l.ApplicationNo).Take(&existing).Error; err != nil {
		return err
	}
	l.ID = existing.ID
	return updateRow(db, l)
}

func (r *LoanRepository) List(ctx context.Context, f loanDomain.ListFilter) ([]loanDomain.Loan, error) {
	q := r.db.WithContext(ctx).Model(&loanDomain.Loan{})
	if f.UserID != "" {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.ExcludeStatus != "" {
		q = q.Where("status <> ?", f.ExcludeStatus)
	}
	limit, offset := pageWindow(f.Page, f.PerPage)

	var out []loanDomain.Loan
	res := q.Order("created_at DESC, id DESC").Limit(limit).Offset(offset).Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("created_at > ? AND created_at < ?", start, end).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

// Delete removes the row for good. A missing id yields gorm.ErrRecordNotFound.
func (r *LoanRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&loanDomain.Loan{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func pageWindow(page, perPage int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return perPage, (page - 1) * perPage
}
