package loanmock

import (
	"context"
	"time"

	domain "loan-origination-backend/internal/domain/loan"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Writes default to a no-op; reads default to context.Canceled.
type Repo struct {
	CreateFn                func(ctx context.Context, l *domain.Loan) error
	GetByIDFn               func(ctx context.Context, id string) (*domain.Loan, error)
	SaveFn                  func(ctx context.Context, l *domain.Loan) error
	UpdateByApplicationNoFn func(ctx context.Context, l *domain.Loan) error
	ListFn                  func(ctx context.Context, f domain.ListFilter) ([]domain.Loan, error)
	ListCreatedBetweenFn    func(ctx context.Context, start, end time.Time) ([]domain.Loan, error)
	DeleteFn                func(ctx context.Context, id string) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id string) (*domain.Loan, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) UpdateByApplicationNo(ctx context.Context, l *domain.Loan) error {
	if m.UpdateByApplicationNoFn != nil {
		return m.UpdateByApplicationNoFn(ctx, l)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Loan, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, context.Canceled
}

func (m *Repo) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]domain.Loan, error) {
	if m.ListCreatedBetweenFn != nil {
		return m.ListCreatedBetweenFn(ctx, start, end)
	}
	return nil, context.Canceled
}

func (m *Repo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
