package http

import (
	"net/http"

	"loan-origination-backend/internal/usecase/category"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	uc  *category.Usecase
	log *zap.Logger
}

func NewCategoryHandler(uc *category.Usecase, log *zap.Logger) *CategoryHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &CategoryHandler{uc: uc, log: log}
}

func (h *CategoryHandler) List(c echo.Context) error {
	page, perPage := pageParams(c)
	out, err := h.uc.List(c.Request().Context(), page, perPage)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CategoryHandler) Create(c echo.Context) error {
	var req category.CreateInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	out, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *CategoryHandler) Get(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CategoryHandler) Update(c echo.Context) error {
	var req category.UpdateInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	out, err := h.uc.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CategoryHandler) Remove(c echo.Context) error {
	if err := h.uc.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}
