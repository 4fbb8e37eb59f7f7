package mysql

import (
	"context"

	"gorm.io/gorm"

	paymentDomain "fondo-backend/internal/domain/payment"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, p *paymentDomain.Payment) error {
	return translate(r.db.WithContext(ctx).Create(p).Error)
}

func (r *PaymentRepository) GetByPaymentID(ctx context.Context, paymentID string) (*paymentDomain.Payment, error) {
	var out paymentDomain.Payment
	res := r.db.WithContext(ctx).Where("payment_id = ?", paymentID).First(&out)
	return &out, translate(res.Error)
}

func (r *PaymentRepository) ListByLoanID(ctx context.Context, loanNumericID uint64) ([]paymentDomain.Payment, error) {
	var out []paymentDomain.Payment
	err := r.db.WithContext(ctx).
		Where("loan_id = ?", loanNumericID).
		Order("paid_at DESC, id DESC").
		Find(&out).Error
	return out, translate(err)
}
