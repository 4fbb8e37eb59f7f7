package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	paymentUC "fondo-backend/internal/usecase/payment"
)

type PaymentHandler struct{ uc *paymentUC.Usecase }

func NewPaymentHandler(uc *paymentUC.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

type registerPaymentReq struct {
	PayerID    string `json:"payer_id"    validate:"required,hex32"`
	Amount     int64  `json:"amount"      validate:"required,cop"`
	ReceiptURL string `json:"receipt_url" validate:"omitempty,url"`
}

func (h *PaymentHandler) Register(c echo.Context) error {
	var req registerPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Apply(c.Request().Context(), paymentUC.ApplyInput{
		LoanID:     c.Param("loan_id"),
		PayerID:    req.PayerID,
		Amount:     req.Amount,
		ReceiptURL: req.ReceiptURL,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *PaymentHandler) History(c echo.Context) error {
	payments, err := h.uc.History(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, payments)
}
