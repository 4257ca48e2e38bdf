package http

import (
	"net/http"

	"loan-origination-backend/internal/usecase/dashboard"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	uc  *dashboard.Usecase
	log *zap.Logger
}

func NewDashboardHandler(uc *dashboard.Usecase, log *zap.Logger) *DashboardHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &DashboardHandler{uc: uc, log: log}
}

func (h *DashboardHandler) Aggregate(c echo.Context) error {
	var req dashboard.AggregateInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	start, err := dashboard.ParseDate("startDate", req.StartDate)
	if err != nil {
		return writeError(c, h.log, err)
	}
	end, err := dashboard.ParseDate("endDate", req.EndDate)
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.Aggregate(c.Request().Context(), start, end)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}
