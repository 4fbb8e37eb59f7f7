package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	savingUC "fondo-backend/internal/usecase/saving"
)

type SavingHandler struct{ uc *savingUC.Usecase }

func NewSavingHandler(uc *savingUC.Usecase) *SavingHandler { return &SavingHandler{uc: uc} }

type createSavingReq struct {
	OwnerID     string `json:"owner_id"    validate:"required,hex32"`
	Amount      int64  `json:"amount"      validate:"required,cop"`
	Description string `json:"description"`
	ReceiptURL  string `json:"receipt_url" validate:"omitempty,url"`
	// Optional, canonical date `YYYY-MM-DD`; defaults to today.
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

func (h *SavingHandler) Create(c echo.Context) error {
	var req createSavingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	var date time.Time
	if req.Date != "" {
		date, _ = time.Parse("2006-01-02", req.Date)
	}
	s, err := h.uc.Create(c.Request().Context(), savingUC.CreateInput{
		OwnerID:     req.OwnerID,
		Amount:      req.Amount,
		Description: req.Description,
		ReceiptURL:  req.ReceiptURL,
		Date:        date,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *SavingHandler) ListByOwner(c echo.Context) error {
	items, err := h.uc.ListByOwner(c.Request().Context(), c.Param("member_id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *SavingHandler) Summary(c echo.Context) error {
	dto, err := h.uc.Summary(c.Request().Context(), c.Param("member_id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
