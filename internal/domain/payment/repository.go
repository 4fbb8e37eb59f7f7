package payment

import "context"

type Repository interface {
	// Create appends a payment record; records are immutable once written.
	Create(ctx context.Context, p *Payment) error
	GetByPaymentID(ctx context.Context, paymentID string) (*Payment, error)
	// ListByLoanID returns payments newest-first by paid_at.
	ListByLoanID(ctx context.Context, loanNumericID uint64) ([]Payment, error)
}
