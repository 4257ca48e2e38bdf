package mysql

import (
	"context"

	categoryDomain "loan-origination-backend/internal/domain/category"

	"gorm.io/gorm"
)

type CategoryRepository struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) *CategoryRepository { return &CategoryRepository{db: db} }

func (r *CategoryRepository) Create(ctx context.Context, c *categoryDomain.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*categoryDomain.Category, error) {
	var out categoryDomain.Category
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *CategoryRepository) List(ctx context.Context, page, perPage int) ([]categoryDomain.Category, error) {
	limit, offset := pageWindow(page, perPage)
	var out []categoryDomain.Category
	res := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&out)
	return out, res.Error
}

func (r *CategoryRepository) FindByType(ctx context.Context, loanType string) ([]categoryDomain.Category, error) {
	var out []categoryDomain.Category
	res := r.db.WithContext(ctx).
		Where("type = ?", loanType).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

// Save overwrites an existing category and never inserts.
func (r *CategoryRepository) Save(ctx context.Context, c *categoryDomain.Category) error {
	res := r.db.WithContext(ctx).Model(c).Select("*").Updates(c)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&categoryDomain.Category{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
