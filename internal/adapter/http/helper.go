package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	loanDomain "fondo-backend/internal/domain/loan"
	memberDomain "fondo-backend/internal/domain/member"
	paymentDomain "fondo-backend/internal/domain/payment"
	savingDomain "fondo-backend/internal/domain/saving"
	"fondo-backend/internal/domain/uow"
	"fondo-backend/internal/finance"
	memberUC "fondo-backend/internal/usecase/member"
)

// fail maps domain errors onto HTTP status codes in one place so every
// handler reports the same way.
func fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, loanDomain.ErrNotFound),
		errors.Is(err, memberDomain.ErrNotFound),
		errors.Is(err, paymentDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loanDomain.ErrInvalidTransition),
		errors.Is(err, loanDomain.ErrPendingExists),
		errors.Is(err, memberUC.ErrEmailTaken),
		errors.Is(err, uow.ErrConflict):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, finance.ErrInvalidPrincipal),
		errors.Is(err, finance.ErrInvalidTerm),
		errors.Is(err, finance.ErrInvalidRate),
		errors.Is(err, loanDomain.ErrCosignerRequired),
		errors.Is(err, loanDomain.ErrCosignerInvalid),
		errors.Is(err, memberDomain.ErrInvalidRole),
		errors.Is(err, paymentDomain.ErrInvalidAmount),
		errors.Is(err, savingDomain.ErrInvalidAmount):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, uow.ErrStoreUnavailable):
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "store unavailable"})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
