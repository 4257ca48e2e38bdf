package http

import (
	"errors"
	"net/http"

	"loan-origination-backend/internal/adapter/middleware"
	domain "loan-origination-backend/internal/domain/loan"
	"loan-origination-backend/internal/usecase/loan"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type LoanHandler struct {
	uc  *loan.Usecase
	log *zap.Logger
}

func NewLoanHandler(uc *loan.Usecase, log *zap.Logger) *LoanHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &LoanHandler{uc: uc, log: log}
}

// ListMine returns the caller's applications grouped by form step.
func (h *LoanHandler) ListMine(c echo.Context) error {
	me, ok := middleware.IdentityFrom(c)
	if !ok {
		return unauthenticated(c)
	}
	page, perPage := pageParams(c)
	out, err := h.uc.ListForUser(c.Request().Context(), me.UserID, page, perPage)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) Create(c echo.Context) error {
	me, ok := middleware.IdentityFrom(c)
	if !ok {
		return unauthenticated(c)
	}
	var req loan.CreateApplicationInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	req.UserID = me.UserID
	out, err := h.uc.CreateApplication(c.Request().Context(), req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *LoanHandler) Calculate(c echo.Context) error {
	var req loan.CalculateInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	return c.JSON(http.StatusOK, h.uc.CalculateRepayment(req))
}

func (h *LoanHandler) ListSubmitted(c echo.Context) error {
	page, perPage := pageParams(c)
	out, err := h.uc.ListSubmitted(c.Request().Context(), page, perPage)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) ListForCustomer(c echo.Context) error {
	page, perPage := pageParams(c)
	out, err := h.uc.ListForCustomer(c.Request().Context(), c.Param("id"), page, perPage)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) Get(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) Update(c echo.Context) error {
	var req loan.UpdateApplicationInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	out, err := h.uc.UpdateApplication(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) UpdateByAdmin(c echo.Context) error {
	var req domain.AdminFields
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	out, err := h.uc.UpdateApplicationByAdmin(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) Remove(c echo.Context) error {
	if err := h.uc.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Upload takes multipart fields name, type and file.
func (h *LoanHandler) Upload(c echo.Context) error {
	in := loan.UploadDocumentInput{
		Name: c.FormValue("name"),
		Type: c.FormValue("type"),
	}
	fh, err := c.FormFile("file")
	switch {
	case errors.Is(err, http.ErrMissingFile):
	case err != nil:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid multipart body"})
	default:
		f, err := fh.Open()
		if err != nil {
			return writeError(c, h.log, err)
		}
		defer f.Close()
		in.File = f
		in.FileName = fh.Filename
		in.Size = fh.Size
		in.ContentType = fh.Header.Get(echo.HeaderContentType)
	}

	out, err := h.uc.UploadDocument(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}
