package category

import (
	"context"
	"time"

	domain "loan-origination-backend/internal/domain/category"
	"loan-origination-backend/internal/domain/errs"
	"loan-origination-backend/internal/usecase/repoerr"
	"loan-origination-backend/pkg/id"
)

type Usecase struct {
	repo domain.Repository
	now  func() time.Time
}

func NewUsecase(r domain.Repository) *Usecase {
	return &Usecase{repo: r, now: func() time.Time { return time.Now().UTC() }}
}

// FindRateForType reads through to the store on every call. When several
// categories share the type the oldest one wins. No match, or a match
// without a rate, yields nil.
func (u *Usecase) FindRateForType(ctx context.Context, loanType string) (*float64, error) {
	if loanType == "" {
		return nil, nil
	}
	cats, err := u.repo.FindByType(ctx, loanType)
	if err != nil {
		return nil, repoerr.Translate("find category by type", err, domain.ErrNotFound, "type")
	}
	if len(cats) == 0 || cats[0].InterestRate == nil {
		return nil, nil
	}
	rate := *cats[0].InterestRate
	return &rate, nil
}

func (u *Usecase) List(ctx context.Context, page, perPage int) ([]domain.Category, error) {
	out, err := u.repo.List(ctx, page, perPage)
	if err != nil {
		return nil, repoerr.Translate("list categories", err, domain.ErrNotFound, "type")
	}
	if out == nil {
		out = []domain.Category{}
	}
	return out, nil
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*domain.Category, error) {
	switch {
	case in.Type == "":
		return nil, errs.Validation("type", "type is required")
	case in.Title == "":
		return nil, errs.Validation("title", "title is required")
	case in.Description == "":
		return nil, errs.Validation("description", "description is required")
	}
	now := u.now()
	c := &domain.Category{
		ID:           id.NewObjectID(),
		Type:         in.Type,
		Title:        in.Title,
		Description:  in.Description,
		InterestRate: in.InterestRate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, repoerr.Translate("create category", err, domain.ErrNotFound, "id")
	}
	return c, nil
}

func (u *Usecase) Get(ctx context.Context, categoryID string) (*domain.Category, error) {
	if !id.IsObjectID(categoryID) {
		return nil, domain.ErrNotFound
	}
	c, err := u.repo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, repoerr.Translate("get category", err, domain.ErrNotFound, "id")
	}
	return c, nil
}

func (u *Usecase) Update(ctx context.Context, categoryID string, in UpdateInput) (*domain.Category, error) {
	c, err := u.Get(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if in.Type != nil {
		c.Type = *in.Type
	}
	if in.Title != nil {
		c.Title = *in.Title
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.InterestRate != nil {
		rate := *in.InterestRate
		c.InterestRate = &rate
	}
	c.UpdatedAt = u.now()
	if err := u.repo.Save(ctx, c); err != nil {
		return nil, repoerr.Translate("save category", err, domain.ErrNotFound, "id")
	}
	return c, nil
}

func (u *Usecase) Remove(ctx context.Context, categoryID string) error {
	if !id.IsObjectID(categoryID) {
		return domain.ErrNotFound
	}
	return repoerr.Translate("delete category", u.repo.Delete(ctx, categoryID), domain.ErrNotFound, "id")
}
