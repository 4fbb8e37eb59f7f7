package mysql

import (
	"context"
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	loanDomain "fondo-backend/internal/domain/loan"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return translate(r.db.WithContext(ctx).Create(l).Error)
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return translate(r.db.WithContext(ctx).Save(l).Error)
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	return &out, translate(res.Error)
}

// GetByLoanIDForUpdate locks the loan row until the surrounding transaction
// ends. Callers must be inside a transaction for the lock to mean anything.
func (r *LoanRepository) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("loan_id = ?", loanID).
		First(&out)
	return &out, translate(res.Error)
}

func (r *LoanRepository) GetPendingLoanByOwnerID(ctx context.Context, ownerID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("owner_id = ? AND status = ?", ownerID, loanDomain.StatusPending).
		Order("requested_at DESC, id DESC").
		First(&out)
	return &out, translate(res.Error)
}

// ListByOwnerID asks the store for newest-request-first order. If the ordered
// query fails (e.g. a missing index on a constrained deployment) it retries
// unordered and sorts in memory rather than surfacing the failure.
func (r *LoanRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("requested_at DESC, id DESC").
		Find(&out).Error
	if err == nil {
		return out, nil
	}

	out = out[:0]
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].RequestedAt.Equal(out[j].RequestedAt) {
			return out[i].RequestedAt.After(out[j].RequestedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}
