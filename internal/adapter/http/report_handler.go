package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	notifDomain "fondo-backend/internal/domain/notification"
	reportUC "fondo-backend/internal/usecase/report"
)

type ReportHandler struct {
	uc            *reportUC.Usecase
	notifications notifDomain.Repository
}

func NewReportHandler(uc *reportUC.Usecase, notifications notifDomain.Repository) *ReportHandler {
	return &ReportHandler{uc: uc, notifications: notifications}
}

func (h *ReportHandler) Dashboard(c echo.Context) error {
	dto, err := h.uc.Dashboard(c.Request().Context(), c.Param("member_id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ReportHandler) Report(c echo.Context) error {
	dto, err := h.uc.Report(c.Request().Context(), c.Param("member_id"), time.Now().UTC())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ReportHandler) Notifications(c echo.Context) error {
	items, err := h.notifications.ListByMemberID(c.Request().Context(), c.Param("member_id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, items)
}
