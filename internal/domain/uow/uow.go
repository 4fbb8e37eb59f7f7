package uow

import (
	"context"
	"errors"

	"fondo-backend/internal/domain/loan"
	"fondo-backend/internal/domain/member"
	"fondo-backend/internal/domain/notification"
	"fondo-backend/internal/domain/payment"
	"fondo-backend/internal/domain/saving"
)

var (
	// ErrConflict: two transactions collided on the same rows; the losing
	// caller should retry from a fresh read.
	ErrConflict = errors.New("transaction conflict")
	// ErrStoreUnavailable: the store cannot be reached; nothing was applied.
	ErrStoreUnavailable = errors.New("store unavailable")
)

type Repos struct {
	Members       member.Repository
	Loans         loan.Repository
	Payments      payment.Repository
	Savings       saving.Repository
	Notifications notification.Repository
}

type UnitOfWork interface {
	// WithinTx runs fn with every repository bound to one transaction.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinLoanTx locks the loan row first, then passes it in. The balance
	// read, any arithmetic, and the writes all commit or roll back together.
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
