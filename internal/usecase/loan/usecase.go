package loan

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"loan-origination-backend/internal/domain/errs"
	domain "loan-origination-backend/internal/domain/loan"
	"loan-origination-backend/internal/domain/notify"
	"loan-origination-backend/internal/domain/sequence"
	"loan-origination-backend/internal/domain/storage"
	"loan-origination-backend/internal/usecase/repoerr"
	"loan-origination-backend/pkg/id"
	"loan-origination-backend/pkg/repayment"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RateResolver supplies the interest rate for a loan type at creation time.
type RateResolver interface {
	FindRateForType(ctx context.Context, loanType string) (*float64, error)
}

type Deps struct {
	Loans          domain.Repository
	Rates          RateResolver
	Sequence       sequence.Generator
	Uploader       storage.Uploader
	Notifier       notify.Notifier
	Logger         *zap.Logger
	MaxUploadBytes int64
}

type Usecase struct {
	repo      domain.Repository
	rates     RateResolver
	seq       sequence.Generator
	uploader  storage.Uploader
	notifier  notify.Notifier
	log       *zap.Logger
	maxUpload int64
	now       func() time.Time
}

func NewUsecase(d Deps) *Usecase {
	u := &Usecase{
		repo:      d.Loans,
		rates:     d.Rates,
		seq:       d.Sequence,
		uploader:  d.Uploader,
		notifier:  d.Notifier,
		log:       d.Logger,
		maxUpload: d.MaxUploadBytes,
		now:       func() time.Time { return time.Now().UTC() },
	}
	if u.notifier == nil {
		u.notifier = notify.Nop{}
	}
	if u.log == nil {
		u.log = zap.NewNop()
	}
	if u.maxUpload <= 0 {
		u.maxUpload = DefaultMaxUploadBytes
	}
	return u
}

func (u *Usecase) CreateApplication(ctx context.Context, in CreateApplicationInput) (*domain.StepView, error) {
	if in.Step < MinStep || in.Step > MaxStep {
		return nil, errs.Validation("step", fmt.Sprintf("step must be between %d and %d", MinStep, MaxStep))
	}
	if in.UserID == "" {
		return nil, errs.Validation("user", "user is required")
	}
	if err := checkStatus(in.Data.Status); err != nil {
		return nil, err
	}

	now := u.now()
	loanID := id.NewObjectID()
	l := &domain.Loan{
		ID:            loanID,
		ApplicationNo: loanID,
		UserID:        in.UserID,
		Status:        domain.StatusNotSubmitted,
		Document:      []domain.Document{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	in.Data.Apply(l)
	if in.DealerCode != "" {
		l.DealerCode = in.DealerCode
	}
	if in.Type != "" {
		l.Type = in.Type
	}

	rate, err := u.rates.FindRateForType(ctx, l.Type)
	if err != nil {
		return nil, fmt.Errorf("resolve interest rate: %w", err)
	}
	l.InterestRate = rate

	serial, err := u.seq.Next(ctx, sequence.Loan)
	if err != nil {
		return nil, fmt.Errorf("next serial number: %w", err)
	}
	l.SerialNumber = serial

	if err := u.repo.Create(ctx, l); err != nil {
		return nil, repoerr.Translate("create loan", err, domain.ErrNotFound, "applicationNo")
	}
	u.log.Info("loan application created",
		zap.String("loan_id", l.ID), zap.String("user_id", l.UserID),
		zap.Int64("serial_number", l.SerialNumber), zap.Int("step", in.Step))

	if l.Status != domain.StatusNotSubmitted {
		u.statusChanged(ctx, l, domain.StatusNotSubmitted)
	}
	v := l.StepView()
	return &v, nil
}

func (u *Usecase) UpdateApplication(ctx context.Context, loanID string, in UpdateApplicationInput) (*domain.StepView, error) {
	if in.Step != 0 && (in.Step < MinStep || in.Step > MaxStep) {
		return nil, errs.Validation("step", fmt.Sprintf("step must be between %d and %d", MinStep, MaxStep))
	}
	if err := checkStatus(in.Data.Status); err != nil {
		return nil, err
	}
	l, err := u.load(ctx, loanID)
	if err != nil {
		return nil, err
	}
	prev := l.Status

	in.Data.Apply(l)
	if in.DealerCode != nil {
		l.DealerCode = *in.DealerCode
	}
	if in.Type != nil {
		l.Type = *in.Type
	}
	if err := u.save(ctx, l); err != nil {
		return nil, err
	}
	if l.Status != prev {
		u.statusChanged(ctx, l, prev)
	}
	v := l.StepView()
	return &v, nil
}

// UpdateApplicationByAdmin accepts every field, status included. There is
// no transition table; any valid status may follow any other.
func (u *Usecase) UpdateApplicationByAdmin(ctx context.Context, loanID string, in domain.AdminFields) (*domain.FullView, error) {
	if err := checkStatus(in.Status); err != nil {
		return nil, err
	}
	l, err := u.load(ctx, loanID)
	if err != nil {
		return nil, err
	}
	prev := l.Status

	in.Apply(l)
	if err := u.save(ctx, l); err != nil {
		return nil, err
	}
	if l.Status != prev {
		u.statusChanged(ctx, l, prev)
	}
	v := l.FullView()
	return &v, nil
}

// Get returns the full projection with the derived monthly repayment.
func (u *Usecase) Get(ctx context.Context, loanID string) (*domain.FullView, error) {
	l, err := u.load(ctx, loanID)
	if err != nil {
		return nil, err
	}
	v := l.FullView()
	m := l.MonthlyRepayment()
	v.MonthlyRepayment = &m
	return &v, nil
}

func (u *Usecase) ListForUser(ctx context.Context, userID string, page, perPage int) ([]domain.StepView, error) {
	loans, err := u.list(ctx, domain.ListFilter{UserID: userID, Page: page, PerPage: perPage})
	if err != nil {
		return nil, err
	}
	out := make([]domain.StepView, 0, len(loans))
	for i := range loans {
		out = append(out, loans[i].StepView())
	}
	return out, nil
}

func (u *Usecase) ListForCustomer(ctx context.Context, customerID string, page, perPage int) ([]domain.FullView, error) {
	if !id.IsObjectID(customerID) {
		return nil, errs.NotFound("Customer does not exist")
	}
	return u.fullViews(ctx, domain.ListFilter{UserID: customerID, Page: page, PerPage: perPage})
}

// ListSubmitted is the back-office queue: everything past the draft stage.
func (u *Usecase) ListSubmitted(ctx context.Context, page, perPage int) ([]domain.FullView, error) {
	return u.fullViews(ctx, domain.ListFilter{ExcludeStatus: domain.StatusNotSubmitted, Page: page, PerPage: perPage})
}

// AppendDocument records an already-uploaded file on the loan.
func (u *Usecase) AppendDocument(ctx context.Context, loanID, name, docType, url string) (*domain.FullView, error) {
	if url == "" {
		return nil, errs.Validation("url", "url is required")
	}
	l, err := u.load(ctx, loanID)
	if err != nil {
		return nil, err
	}
	l.Document = append(l.Document, domain.Document{Name: name, Type: docType, URL: url})
	l.UpdatedAt = u.now()
	if err := u.repo.UpdateByApplicationNo(ctx, l); err != nil {
		return nil, repoerr.Translate("append document", err, domain.ErrNotFound, "applicationNo")
	}
	v := l.FullView()
	return &v, nil
}

// UploadDocument streams the file to object storage and appends the
// resulting URL. The loan is checked first so no orphan object is written
// for an unknown id.
func (u *Usecase) UploadDocument(ctx context.Context, loanID string, in UploadDocumentInput) (*domain.FullView, error) {
	if in.File == nil {
		return nil, domain.ErrMissingFile
	}
	if in.Size > u.maxUpload {
		return nil, domain.FileTooLarge(u.maxUpload)
	}
	if _, err := u.load(ctx, loanID); err != nil {
		return nil, err
	}
	if u.uploader == nil {
		return nil, errs.Upstream("upload storage is not configured", nil)
	}

	key := objectKey(loanID, in.FileName)
	url, err := u.uploader.Put(ctx, key, in.ContentType, in.File, in.Size)
	if err != nil {
		u.log.Warn("document upload failed", zap.String("loan_id", loanID), zap.String("key", key), zap.Error(err))
		return nil, errs.Upstream("document upload failed", err)
	}

	name := in.Name
	if name == "" {
		name = in.FileName
	}
	return u.AppendDocument(ctx, loanID, name, in.Type, url)
}

// Remove hard-deletes the loan. Records referencing it are left as they are.
func (u *Usecase) Remove(ctx context.Context, loanID string) error {
	if !id.IsObjectID(loanID) {
		return domain.ErrNotFound
	}
	if err := u.repo.Delete(ctx, loanID); err != nil {
		return repoerr.Translate("delete loan", err, domain.ErrNotFound, "id")
	}
	u.log.Info("loan removed", zap.String("loan_id", loanID))
	return nil
}

func (u *Usecase) CalculateRepayment(in CalculateInput) CalculateResult {
	return CalculateResult{MonthlyRepayment: repayment.Monthly(in.Amount, in.InterestRate, in.Duration)}
}

// ---- helpers ----

func checkStatus(s *domain.Status) error {
	if s == nil || s.Valid() {
		return nil
	}
	return errs.Validation("status", fmt.Sprintf("unknown status %q", *s))
}

func (u *Usecase) load(ctx context.Context, loanID string) (*domain.Loan, error) {
	if !id.IsObjectID(loanID) {
		return nil, domain.ErrNotFound
	}
	l, err := u.repo.GetByID(ctx, loanID)
	if err != nil {
		return nil, repoerr.Translate("load loan", err, domain.ErrNotFound, "id")
	}
	if l.Document == nil {
		l.Document = []domain.Document{}
	}
	return l, nil
}

func (u *Usecase) save(ctx context.Context, l *domain.Loan) error {
	l.UpdatedAt = u.now()
	if err := u.repo.Save(ctx, l); err != nil {
		return repoerr.Translate("save loan", err, domain.ErrNotFound, "applicationNo")
	}
	return nil
}

func (u *Usecase) list(ctx context.Context, f domain.ListFilter) ([]domain.Loan, error) {
	loans, err := u.repo.List(ctx, f)
	if err != nil {
		return nil, repoerr.Translate("list loans", err, domain.ErrNotFound, "id")
	}
	return loans, nil
}

func (u *Usecase) fullViews(ctx context.Context, f domain.ListFilter) ([]domain.FullView, error) {
	loans, err := u.list(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]domain.FullView, 0, len(loans))
	for i := range loans {
		out = append(out, loans[i].FullView())
	}
	return out, nil
}

// statusChanged is fire-and-forget: a failed send is logged and dropped.
func (u *Usecase) statusChanged(ctx context.Context, l *domain.Loan, from domain.Status) {
	ev := notify.StatusChanged{
		LoanID:        l.ID,
		ApplicationNo: l.ApplicationNo,
		UserID:        l.UserID,
		Email:         l.Email,
		FullName:      l.FullName,
		From:          string(from),
		To:            string(l.Status),
		At:            l.UpdatedAt,
	}
	if err := u.notifier.StatusChanged(context.WithoutCancel(ctx), ev); err != nil {
		u.log.Warn("status notification failed",
			zap.String("loan_id", l.ID), zap.String("from", ev.From), zap.String("to", ev.To), zap.Error(err))
	}
}

func objectKey(loanID, fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	return fmt.Sprintf("loans/%s/%s%s", loanID, uuid.NewString(), ext)
}
