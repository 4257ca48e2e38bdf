package dashboard

import (
	"context"
	"fmt"
	"time"

	"loan-origination-backend/internal/domain/errs"
	"loan-origination-backend/internal/domain/loan"

	"go.uber.org/zap"
)

type Usecase struct {
	repo loan.Repository
	log  *zap.Logger
}

func NewUsecase(r loan.Repository, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{repo: r, log: log}
}

// Aggregate folds every loan created strictly between start and end into a
// Report. Nothing is cached.
func (u *Usecase) Aggregate(ctx context.Context, start, end time.Time) (*Report, error) {
	if !start.Before(end) {
		return nil, errs.Validation("endDate", "endDate must be after startDate")
	}
	loans, err := u.repo.ListCreatedBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("scan loans: %w", err)
	}

	r := newReport()
	for i := range loans {
		r.add(loans[i].FullView())
	}
	u.log.Debug("dashboard aggregated",
		zap.Time("start", start), zap.Time("end", end), zap.Int("loans", len(loans)))
	return r, nil
}

// ParseDate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates (UTC midnight).
func ParseDate(field, s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Time{}, errs.Validation(field, "must be an RFC 3339 timestamp or YYYY-MM-DD date")
}

func newReport() *Report {
	return &Report{
		NewLoanApplication: map[string]int{},
		NewLoanAmount:      map[string]float64{},
	}
}

func (r *Report) add(v loan.FullView) {
	var amount float64
	if v.Amount != nil {
		amount = *v.Amount
	}

	if v.Status != loan.StatusRejected {
		r.Loan.PipelineAmount += amount
		day := v.CreatedAt.Format(DayLayout)
		r.NewLoanApplication[day]++
		r.NewLoanAmount[day] += amount
	}

	switch v.Status {
	case loan.StatusProcessing, loan.StatusPending, loan.StatusApproved:
		r.Loan.ProcessingAmount += amount
	case loan.StatusCompleted:
		r.Loan.DisbursedAmount += amount
		switch v.Type {
		case TypeRefinancing:
			r.DisbursedLoan.Refinancing += amount
		case TypeCOERenewalLoan:
			r.DisbursedLoan.COERenewalLoan += amount
		case TypeUsedCarLoan:
			r.DisbursedLoan.UsedCarLoan += amount
		case TypeNewCarLoan:
			r.DisbursedLoan.NewCarLoan += amount
		}
	}
}
