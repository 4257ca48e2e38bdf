package category

import (
	"time"

	"loan-origination-backend/internal/domain/errs"
)

var (
	ErrNotFound = errs.NotFound("Loan category does not exist")
)

// Table: loan_categories
type Category struct {
	// Public identifier (24-char hex object id)
	ID          string `gorm:"column:id;primaryKey;size:24" json:"id"`
	Type        string `gorm:"column:type;size:64;not null;index:idx_loan_categories_type" json:"type"`
	Title       string `gorm:"column:title;size:128;not null" json:"title"`
	Description string `gorm:"column:description;type:text" json:"description"`
	// Annual percentage; nil when the category was created without one.
	InterestRate *float64  `gorm:"column:interest_rate;type:decimal(6,3)" json:"interestRate,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime;index:idx_loan_categories_created_at" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Category) TableName() string { return "loan_categories" }
