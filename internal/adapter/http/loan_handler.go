package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	loanUC "fondo-backend/internal/usecase/loan"
)

type LoanHandler struct{ uc *loanUC.Usecase }

func NewLoanHandler(uc *loanUC.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type requestLoanReq struct {
	OwnerID     string `json:"owner_id"    validate:"required,hex32"`
	Amount      int64  `json:"amount"      validate:"required,cop"`
	TermMonths  int    `json:"term_months" validate:"required,gte=1,lte=120"`
	Description string `json:"description"`
	CosignerID  string `json:"cosigner_id" validate:"omitempty,hex32"`
}

func (h *LoanHandler) Request(c echo.Context) error {
	var req requestLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Request(c.Request().Context(), loanUC.RequestInput{
		OwnerID:     req.OwnerID,
		Amount:      req.Amount,
		TermMonths:  req.TermMonths,
		Description: req.Description,
		CosignerID:  req.CosignerID,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListByOwner(c echo.Context) error {
	dtos, err := h.uc.ListByOwner(c.Request().Context(), c.Param("member_id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *LoanHandler) Schedule(c echo.Context) error {
	rows, err := h.uc.Schedule(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

type quoteReq struct {
	OwnerID    string `json:"owner_id"    validate:"omitempty,hex32"`
	Amount     int64  `json:"amount"      validate:"required,cop"`
	TermMonths int    `json:"term_months" validate:"required,gte=1,lte=120"`
}

func (h *LoanHandler) Quote(c echo.Context) error {
	var req quoteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Quote(c.Request().Context(), loanUC.QuoteInput{
		OwnerID: req.OwnerID, Amount: req.Amount, TermMonths: req.TermMonths,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) Approve(c echo.Context) error {
	dto, err := h.uc.Approve(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type rejectReq struct {
	Reason string `json:"reason"`
}

func (h *LoanHandler) Reject(c echo.Context) error {
	var req rejectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Reject(c.Request().Context(), c.Param("loan_id"), req.Reason)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
