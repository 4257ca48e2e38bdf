// Package repoerr turns gorm errors into domain error kinds.
package repoerr

import (
	"errors"
	"fmt"

	"loan-origination-backend/internal/domain/errs"

	"gorm.io/gorm"
)

// Translate maps gorm.ErrRecordNotFound to notFound and gorm.ErrDuplicatedKey
// to a Conflict naming uniqueField. Anything else is wrapped with op.
func Translate(op string, err error, notFound error, uniqueField string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.Conflict(uniqueField, uniqueField+" already exists")
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
