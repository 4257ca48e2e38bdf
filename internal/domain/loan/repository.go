package loan

import (
	"context"
	"time"
)

// ListFilter narrows List. ExcludeStatus is a plain "status != X" filter;
// the back-office queue uses it to hide NOT_SUBMITTED drafts.
type ListFilter struct {
	UserID        string
	ExcludeStatus Status
	Page          int
	PerPage       int
}

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByID(ctx context.Context, id string) (*Loan, error)
	// Save and UpdateByApplicationNo only overwrite existing rows; a missing
	// row is reported as gorm.ErrRecordNotFound.
	Save(ctx context.Context, l *Loan) error
	// UpdateByApplicationNo overwrites the row matching l.ApplicationNo.
	UpdateByApplicationNo(ctx context.Context, l *Loan) error
	List(ctx context.Context, f ListFilter) ([]Loan, error)
	// ListCreatedBetween returns loans with start < created_at < end, newest first.
	ListCreatedBetween(ctx context.Context, start, end time.Time) ([]Loan, error)
	Delete(ctx context.Context, id string) error
}
