package payment

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"fondo-backend/internal/domain/loan"
	"fondo-backend/internal/domain/notification"
	"fondo-backend/internal/domain/payment"
	"fondo-backend/internal/domain/uow"
	"fondo-backend/pkg/id"
)

// maxConflictRetries bounds how often a lost read-modify-write race is
// retried from a fresh locked read before surfacing to the caller.
const maxConflictRetries = 3

type Usecase struct {
	uow      uow.UnitOfWork
	notifier notification.Notifier
}

func NewUsecase(tx uow.UnitOfWork, notifier notification.Notifier) *Usecase {
	return &Usecase{uow: tx, notifier: notifier}
}

type ApplyInput struct {
	LoanID     string
	PayerID    string
	Amount     int64
	ReceiptURL string
}

type PaymentDTO struct {
	PaymentID    string    `json:"payment_id"`
	LoanID       string    `json:"loan_id"`
	PayerID      string    `json:"payer_id"`
	Amount       int64     `json:"amount"`
	Applied      int64     `json:"applied"`
	BalanceAfter int64     `json:"balance_after"`
	LoanStatus   string    `json:"loan_status"`
	PaidAt       time.Time `json:"paid_at"`
}

// Apply registers a repayment: the locked balance read, the clamped
// decrement, the status transition and the append-only payment record all
// commit as one transaction. Conflicting transactions retry from a fresh
// read; calculator/validation errors never retry.
func (u *Usecase) Apply(ctx context.Context, in ApplyInput) (*PaymentDTO, error) {
	if in.Amount <= 0 {
		return nil, payment.ErrInvalidAmount
	}

	var dto *PaymentDTO
	var err error
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		dto, err = u.applyOnce(ctx, in)
		if err == nil || !errors.Is(err, uow.ErrConflict) {
			break
		}
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}

	if nerr := u.notifier.Notify(ctx, dto.PayerID, notification.KindPayment,
		"Abono registrado", "Tu abono fue aplicado al préstamo."); nerr != nil {
		log.Printf("payment notification failed: %v", nerr)
	}
	return dto, nil
}

func (u *Usecase) applyOnce(ctx context.Context, in ApplyInput) (*PaymentDTO, error) {
	var dto *PaymentDTO
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loan.Loan) error {
		applied, err := l.Settle(in.Amount)
		if err != nil {
			return err
		}

		rec := &payment.Payment{
			PaymentID:    id.NewID32(),
			LoanID:       l.ID,
			PayerID:      in.PayerID,
			Amount:       in.Amount,
			BalanceAfter: l.Balance,
			ReceiptURL:   in.ReceiptURL,
			Status:       payment.StatusConfirmed,
			PaidAt:       time.Now().UTC(),
		}
		if err := r.Payments.Create(ctx, rec); err != nil {
			return err
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		dto = &PaymentDTO{
			PaymentID:    rec.PaymentID,
			LoanID:       l.LoanID,
			PayerID:      rec.PayerID,
			Amount:       rec.Amount,
			Applied:      applied,
			BalanceAfter: rec.BalanceAfter,
			LoanStatus:   string(l.Status),
			PaidAt:       rec.PaidAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// History lists the payments recorded against a loan, newest first.
func (u *Usecase) History(ctx context.Context, loanID string) ([]payment.Payment, error) {
	var out []payment.Payment
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanID(ctx, loanID)
		if err != nil {
			return err
		}
		out, err = r.Payments.ListByLoanID(ctx, l.ID)
		return err
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}
