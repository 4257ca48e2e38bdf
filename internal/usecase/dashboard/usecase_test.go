package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"loan-origination-backend/internal/domain/errs"
	"loan-origination-backend/internal/domain/loan"
	"loan-origination-backend/internal/testutil/loanmock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amt(v float64) *float64 { return &v }

var (
	start = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end   = time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
)

func repoWith(loans ...loan.Loan) *loanmock.Repo {
	return &loanmock.Repo{
		ListCreatedBetweenFn: func(ctx context.Context, s, e time.Time) ([]loan.Loan, error) {
			return loans, nil
		},
	}
}

func TestAggregate_Example(t *testing.T) {
	day1 := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC)
	uc := NewUsecase(repoWith(
		loan.Loan{ID: "a", Amount: amt(1000), Status: loan.StatusPending, CreatedAt: day1},
		loan.Loan{ID: "b", Amount: amt(2000), Status: loan.StatusCompleted, Type: TypeNewCarLoan, CreatedAt: day1},
		loan.Loan{ID: "c", Amount: amt(5000), Status: loan.StatusRejected, CreatedAt: day2},
	), nil)

	r, err := uc.Aggregate(context.Background(), start, end)
	require.NoError(t, err)

	assert.Equal(t, 3000.0, r.Loan.PipelineAmount)
	assert.Equal(t, 1000.0, r.Loan.ProcessingAmount)
	assert.Equal(t, 2000.0, r.Loan.DisbursedAmount)
	assert.Equal(t, 2000.0, r.DisbursedLoan.NewCarLoan)
	assert.Zero(t, r.DisbursedLoan.Refinancing)

	assert.Equal(t, map[string]int{"05/03/2024": 2}, r.NewLoanApplication)
	assert.Equal(t, map[string]float64{"05/03/2024": 3000}, r.NewLoanAmount)
	assert.NotContains(t, r.NewLoanApplication, "06/03/2024", "rejected loans have no day bucket")
}

func TestAggregate_DisbursedByType(t *testing.T) {
	at := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	uc := NewUsecase(repoWith(
		loan.Loan{Amount: amt(100), Status: loan.StatusCompleted, Type: TypeRefinancing, CreatedAt: at},
		loan.Loan{Amount: amt(200), Status: loan.StatusCompleted, Type: TypeCOERenewalLoan, CreatedAt: at},
		loan.Loan{Amount: amt(300), Status: loan.StatusCompleted, Type: TypeUsedCarLoan, CreatedAt: at},
		loan.Loan{Amount: amt(400), Status: loan.StatusCompleted, Type: "Boat Loan", CreatedAt: at},
		loan.Loan{Amount: amt(50), Status: loan.StatusCompleted, Type: "used car loan", CreatedAt: at},
	), nil)

	r, err := uc.Aggregate(context.Background(), start, end)
	require.NoError(t, err)
	assert.Equal(t, DisbursedByType{Refinancing: 100, COERenewalLoan: 200, UsedCarLoan: 300}, r.DisbursedLoan)
	assert.Equal(t, 1050.0, r.Loan.DisbursedAmount, "unknown labels still count toward the total")
}

func TestAggregate_MissingAmountCountsAsZero(t *testing.T) {
	at := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	uc := NewUsecase(repoWith(
		loan.Loan{Status: loan.StatusProcessing, CreatedAt: at},
		loan.Loan{Status: loan.StatusNotSubmitted, Amount: amt(10), CreatedAt: at},
	), nil)

	r, err := uc.Aggregate(context.Background(), start, end)
	require.NoError(t, err)
	assert.Equal(t, 10.0, r.Loan.PipelineAmount)
	assert.Zero(t, r.Loan.ProcessingAmount)
	assert.Equal(t, 2, r.NewLoanApplication["10/03/2024"])
	assert.Equal(t, 10.0, r.NewLoanAmount["10/03/2024"])
}

func TestAggregate_DayKeyUsesTimestampLocation(t *testing.T) {
	sgt := time.FixedZone("SGT", 8*3600)
	// 2024-03-09 20:00 UTC is already the 10th in Singapore
	at := time.Date(2024, 3, 10, 4, 0, 0, 0, sgt)
	uc := NewUsecase(repoWith(loan.Loan{Status: loan.StatusPending, Amount: amt(1), CreatedAt: at}), nil)

	r, err := uc.Aggregate(context.Background(), start, end)
	require.NoError(t, err)
	assert.Contains(t, r.NewLoanApplication, "10/03/2024")
}

func TestAggregate_EmptyRange(t *testing.T) {
	r, err := NewUsecase(repoWith(), nil).Aggregate(context.Background(), start, end)
	require.NoError(t, err)
	assert.Equal(t, LoanTotals{}, r.Loan)
	assert.NotNil(t, r.NewLoanApplication)
	assert.Empty(t, r.NewLoanAmount)
}

func TestAggregate_PassesBoundsAndRejectsInverted(t *testing.T) {
	var gotStart, gotEnd time.Time
	repo := &loanmock.Repo{ListCreatedBetweenFn: func(ctx context.Context, s, e time.Time) ([]loan.Loan, error) {
		gotStart, gotEnd = s, e
		return nil, nil
	}}
	uc := NewUsecase(repo, nil)

	_, err := uc.Aggregate(context.Background(), start, end)
	require.NoError(t, err)
	assert.True(t, gotStart.Equal(start) && gotEnd.Equal(end))

	_, err = uc.Aggregate(context.Background(), end, start)
	assert.True(t, errors.Is(err, errs.ErrValidation))
	_, err = uc.Aggregate(context.Background(), start, start)
	assert.True(t, errors.Is(err, errs.ErrValidation))
}

func TestAggregate_StoreError(t *testing.T) {
	repo := &loanmock.Repo{} // default returns context.Canceled
	_, err := NewUsecase(repo, nil).Aggregate(context.Background(), start, end)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("startDate", "2024-03-01")
	require.NoError(t, err)
	assert.True(t, d.Equal(start))

	ts, err := ParseDate("startDate", "2024-03-01T08:00:00+08:00")
	require.NoError(t, err)
	assert.True(t, ts.Equal(start))

	_, err = ParseDate("startDate", "01/03/2024")
	assert.True(t, errors.Is(err, errs.Validation("startDate", "")))
}
