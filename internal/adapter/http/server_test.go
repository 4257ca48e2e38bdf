package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"loan-origination-backend/internal/adapter/middleware"
	catdomain "loan-origination-backend/internal/domain/category"
	domain "loan-origination-backend/internal/domain/loan"
	"loan-origination-backend/internal/testutil/categorymock"
	"loan-origination-backend/internal/testutil/collabmock"
	"loan-origination-backend/internal/testutil/loanmock"
	"loan-origination-backend/internal/usecase/category"
	"loan-origination-backend/internal/usecase/dashboard"
	uc "loan-origination-backend/internal/usecase/loan"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const (
	userID  = "aaaaaaaaaaaaaaaaaaaaaaaa"
	adminID = "bbbbbbbbbbbbbbbbbbbbbbbb"

	hdrUser = "X-Test-User"
	hdrRole = "X-Test-Role"
)

// -------- helpers --------

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

// testAuth trusts plain headers instead of a signed token.
func testAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if u := c.Request().Header.Get(hdrUser); u != "" {
			middleware.SetIdentity(c, middleware.Identity{UserID: u, Role: c.Request().Header.Get(hdrRole)})
		}
		return next(c)
	}
}

// memLoans is a map-backed loan store wired through loanmock.
type memLoans struct {
	mu sync.Mutex
	m  map[string]domain.Loan
}

func (s *memLoans) put(l domain.Loan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[l.ID] = l
}

func (s *memLoans) repo() *loanmock.Repo {
	create := func(_ context.Context, l *domain.Loan) error { s.put(*l); return nil }
	update := func(_ context.Context, l *domain.Loan) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.m[l.ID]; !ok {
			return gorm.ErrRecordNotFound
		}
		s.m[l.ID] = *l
		return nil
	}
	return &loanmock.Repo{
		CreateFn:                create,
		SaveFn:                  update,
		UpdateByApplicationNoFn: update,
		GetByIDFn: func(_ context.Context, id string) (*domain.Loan, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			l, ok := s.m[id]
			if !ok {
				return nil, gorm.ErrRecordNotFound
			}
			return &l, nil
		},
		ListFn: func(_ context.Context, f domain.ListFilter) ([]domain.Loan, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			var out []domain.Loan
			for _, l := range s.m {
				if f.UserID != "" && l.UserID != f.UserID {
					continue
				}
				if f.ExcludeStatus != "" && l.Status == f.ExcludeStatus {
					continue
				}
				out = append(out, l)
			}
			sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
			return out, nil
		},
		ListCreatedBetweenFn: func(_ context.Context, start, end time.Time) ([]domain.Loan, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			var out []domain.Loan
			for _, l := range s.m {
				if l.CreatedAt.After(start) && l.CreatedAt.Before(end) {
					out = append(out, l)
				}
			}
			return out, nil
		},
		DeleteFn: func(_ context.Context, id string) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			if _, ok := s.m[id]; !ok {
				return gorm.ErrRecordNotFound
			}
			delete(s.m, id)
			return nil
		},
	}
}

type server struct {
	e        *echo.Echo
	loans    *memLoans
	cats     *categorymock.Repo
	uploader *collabmock.Uploader
}

func newServer(t *testing.T) *server {
	t.Helper()
	s := &server{
		loans:    &memLoans{m: map[string]domain.Loan{}},
		cats:     &categorymock.Repo{},
		uploader: &collabmock.Uploader{},
	}
	s.cats.FindByTypeFn = func(context.Context, string) ([]catdomain.Category, error) { return nil, nil }

	catUC := category.NewUsecase(s.cats)
	loanUC := uc.NewUsecase(uc.Deps{
		Loans:          s.loans.repo(),
		Rates:          catUC,
		Sequence:       &collabmock.Sequence{},
		Uploader:       s.uploader,
		Notifier:       &collabmock.Notifier{},
		MaxUploadBytes: 1024,
	})

	e := newEchoWithValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(nil)
	Routes{
		Health:     NewHandler(),
		Loans:      NewLoanHandler(loanUC, nil),
		Categories: NewCategoryHandler(catUC, nil),
		Dashboard:  NewDashboardHandler(dashboard.NewUsecase(s.loans.repo(), nil), nil),
		Auth:       testAuth,

		MaxBodyBytes: UploadBodyLimit(1024),
	}.Register(e)
	s.e = e
	return s
}

type as struct{ id, role string }

var (
	asUser  = as{userID, middleware.RoleUser}
	asAdmin = as{adminID, middleware.RoleAdmin}
	anon    = as{}
)

func (s *server) do(t *testing.T, who as, method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	if who.id != "" {
		req.Header.Set(hdrUser, who.id)
		req.Header.Set(hdrRole, who.role)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *server) doJSON(t *testing.T, who as, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		r = mustJSON(body)
	}
	return s.do(t, who, method, path, r, echo.MIMEApplicationJSON)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("bad json: %v; raw=%s", err, rec.Body.String())
	}
	return v
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d; body=%s", rec.Code, want, rec.Body.String())
	}
}

func seedLoan(s *server, id, owner string, status domain.Status) {
	amount, duration := 10000.0, 12
	s.loans.put(domain.Loan{
		ID:            id,
		ApplicationNo: id,
		UserID:        owner,
		Status:        status,
		Amount:        &amount,
		Duration:      &duration,
		Document:      []domain.Document{},
		CreatedAt:     time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
	})
}
