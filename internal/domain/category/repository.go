package category

import "context"

type Repository interface {
	Create(ctx context.Context, c *Category) error

	// Get by public id
	GetByID(ctx context.Context, id string) (*Category, error)

	// List newest first
	List(ctx context.Context, page, perPage int) ([]Category, error)

	// FindByType returns every category carrying the given type label,
	// oldest first.
	FindByType(ctx context.Context, loanType string) ([]Category, error)

	Save(ctx context.Context, c *Category) error

	Delete(ctx context.Context, id string) error
}
