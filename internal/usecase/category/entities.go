package category

type CreateInput struct {
	Type         string   `json:"type" validate:"required,max=64"`
	Title        string   `json:"title" validate:"required,max=128"`
	Description  string   `json:"description" validate:"required"`
	InterestRate *float64 `json:"interestRate,omitempty" validate:"omitempty,gte=0,lte=100,decimals=3"`
}

// UpdateInput is a shallow patch; nil fields are left alone.
type UpdateInput struct {
	Type         *string  `json:"type,omitempty" validate:"omitempty,min=1,max=64"`
	Title        *string  `json:"title,omitempty" validate:"omitempty,min=1,max=128"`
	Description  *string  `json:"description,omitempty"`
	InterestRate *float64 `json:"interestRate,omitempty" validate:"omitempty,gte=0,lte=100,decimals=3"`
}
