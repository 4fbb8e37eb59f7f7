package loanmock

import (
	"context"

	domain "fondo-backend/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying the loan repository. Only fill
// in the methods a test exercises; the rest report context.Canceled.
type Repo struct {
	CreateFn                  func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn             func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDForUpdateFn    func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetPendingLoanByOwnerIDFn func(ctx context.Context, ownerID string) (*domain.Loan, error)
	ListByOwnerIDFn           func(ctx context.Context, ownerID string) ([]domain.Loan, error)
	SaveFn                    func(ctx context.Context, l *domain.Loan) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetPendingLoanByOwnerID(ctx context.Context, ownerID string) (*domain.Loan, error) {
	if m.GetPendingLoanByOwnerIDFn != nil {
		return m.GetPendingLoanByOwnerIDFn(ctx, ownerID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByOwnerID(ctx context.Context, ownerID string) ([]domain.Loan, error) {
	if m.ListByOwnerIDFn != nil {
		return m.ListByOwnerIDFn(ctx, ownerID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}
