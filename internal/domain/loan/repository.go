package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the loan row for the duration of the
	// enclosing transaction (SELECT ... FOR UPDATE).
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	GetPendingLoanByOwnerID(ctx context.Context, ownerID string) (*Loan, error)
	// ListByOwnerID returns the member's loans newest-request-first.
	ListByOwnerID(ctx context.Context, ownerID string) ([]Loan, error)
	Save(ctx context.Context, l *Loan) error
}
