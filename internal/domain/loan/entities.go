package loan

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("loan not found")
	ErrInvalidTransition = errors.New("invalid loan status transition")
	ErrPendingExists     = errors.New("member already has a pending loan")
	ErrCosignerRequired  = errors.New("cliente loans require an asociado co-signer")
	ErrCosignerInvalid   = errors.New("co-signer must be an existing asociado")
)

// Status is the loan lifecycle state. "active" is the canonical
// currently-owed state; "approved" survives only as a legacy alias on rows
// written before the two were collapsed and is never written by new code.
type Status string

const (
	StatusPending  Status = "pending"
	StatusRejected Status = "rejected"
	StatusActive   Status = "active"
	StatusApproved Status = "approved" // legacy alias of active
	StatusPaid     Status = "paid"
)

// CurrentlyOwed reports whether the loan is in repayment.
func (s Status) CurrentlyOwed() bool { return s == StatusActive || s == StatusApproved }

// Terminal states admit no further transition.
func (s Status) Terminal() bool { return s == StatusRejected || s == StatusPaid }

type Loan struct {
	ID             uint64  `gorm:"primaryKey;column:id" json:"-"`
	LoanID         string  `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	OwnerID        string  `gorm:"size:32;index:idx_loans_owner" json:"owner_id"`
	CosignerID     *string `gorm:"size:32" json:"cosigner_id,omitempty"`
	CosignerAccept bool    `gorm:"default:false" json:"cosigner_accepted"`
	// Whole Colombian pesos.
	Amount         int64          `gorm:"not null" json:"amount"`
	Balance        int64          `gorm:"not null" json:"balance"`
	TermMonths     int            `gorm:"not null" json:"term_months"`
	AnnualRatePct  float64        `gorm:"type:decimal(6,3)" json:"annual_rate_pct"`
	MonthlyPayment int64          `gorm:"not null" json:"monthly_payment"`
	Description    string         `gorm:"type:text" json:"description"`
	Status         Status         `gorm:"size:16;default:'pending';index:idx_loans_status" json:"status"`
	RejectReason   string         `gorm:"type:text" json:"reject_reason,omitempty"`
	RequestedAt    time.Time      `json:"requested_at"`
	ApprovedAt     *time.Time     `json:"approved_at,omitempty"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// Approve moves a pending loan into repayment and stamps the approval time.
func (l *Loan) Approve(at time.Time) error {
	if l.Status != StatusPending {
		return ErrInvalidTransition
	}
	l.Status = StatusActive
	l.ApprovedAt = &at
	return nil
}

// Reject closes a pending loan, optionally recording the administrator's reason.
func (l *Loan) Reject(reason string) error {
	if l.Status != StatusPending {
		return ErrInvalidTransition
	}
	l.Status = StatusRejected
	l.RejectReason = reason
	return nil
}

// Settle applies a repayment against the outstanding balance. Overpayment is
// clamped, never allowed to drive the balance negative; the applied amount is
// returned so callers can surface the difference. Reaching zero transitions
// the loan to paid as part of the same operation.
func (l *Loan) Settle(amount int64) (applied int64, err error) {
	if amount <= 0 {
		return 0, ErrInvalidTransition
	}
	if !l.Status.CurrentlyOwed() {
		return 0, ErrInvalidTransition
	}
	applied = amount
	if applied > l.Balance {
		applied = l.Balance
	}
	l.Balance -= applied
	if l.Balance == 0 {
		l.Status = StatusPaid
	}
	return applied, nil
}
