package payment

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("payment not found")
	ErrInvalidAmount = errors.New("payment amount must be positive")
)

const StatusConfirmed = "confirmed"

// Payment is one repayment event against a loan. Append-only: rows are
// created exactly once and never mutated, so the ledger can be replayed.
type Payment struct {
	ID        uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	PaymentID string `gorm:"column:payment_id;type:char(32);not null;uniqueIndex:ux_payments_payment_id" json:"payment_id"`
	// FK to loans.id (numeric), like the loan's own child records.
	LoanID  uint64 `gorm:"column:loan_id;not null;index" json:"-"`
	PayerID string `gorm:"column:payer_id;type:char(32);not null" json:"payer_id"`
	// Whole Colombian pesos.
	Amount int64 `gorm:"column:amount;not null" json:"amount"`
	// Outstanding loan balance immediately after this payment was applied.
	BalanceAfter int64     `gorm:"column:balance_after;not null" json:"balance_after"`
	ReceiptURL   string    `gorm:"column:receipt_url;type:text" json:"receipt_url,omitempty"`
	Status       string    `gorm:"column:status;size:16;default:'confirmed'" json:"status"`
	PaidAt       time.Time `gorm:"column:paid_at;not null" json:"paid_at"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Payment) TableName() string { return "payments" }
