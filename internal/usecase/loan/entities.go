package loan

import (
	"io"

	domain "loan-origination-backend/internal/domain/loan"
)

const (
	MinStep = 1
	MaxStep = 7

	DefaultMaxUploadBytes int64 = 2 << 20
)

// CreateApplicationInput is a first-step submission. DealerCode and Type at
// the top level take precedence over the same keys inside Data.
type CreateApplicationInput struct {
	Step       int                      `json:"step" validate:"required,min=1,max=7"`
	DealerCode string                   `json:"dealerCode,omitempty" validate:"max=64"`
	Type       string                   `json:"type,omitempty" validate:"max=64"`
	Data       domain.ApplicationFields `json:"data"`
	UserID     string                   `json:"-"`
}

// UpdateApplicationInput is any later step; Step is informational only.
type UpdateApplicationInput struct {
	Step       int                      `json:"step,omitempty" validate:"omitempty,min=1,max=7"`
	DealerCode *string                  `json:"dealerCode,omitempty" validate:"omitempty,max=64"`
	Type       *string                  `json:"type,omitempty" validate:"omitempty,max=64"`
	Data       domain.ApplicationFields `json:"data"`
}

type UploadDocumentInput struct {
	Name        string
	Type        string
	FileName    string
	ContentType string
	Size        int64
	File        io.Reader
}

type CalculateInput struct {
	Amount       float64 `json:"amount" validate:"gte=0"`
	InterestRate float64 `json:"interestRate" validate:"gte=0,lte=100"`
	Duration     int     `json:"duration" validate:"gte=0,lte=600"`
}

type CalculateResult struct {
	MonthlyRepayment float64 `json:"monthlyRepayment"`
}
