package loan

import (
	"fmt"

	"loan-origination-backend/internal/domain/errs"

	"github.com/dustin/go-humanize"
)

var (
	ErrNotFound     = errs.NotFound("Loan does not exist")
	ErrFileTooLarge = errs.Upstream("file too large", nil)
	ErrMissingFile  = errs.Validation("file", "Please upload a file!")
)

// FileTooLarge wraps ErrFileTooLarge with a message naming the limit.
func FileTooLarge(limit int64) error {
	return errs.Upstream(fmt.Sprintf("File size cannot be larger than %s!", humanize.IBytes(uint64(limit))), ErrFileTooLarge)
}
