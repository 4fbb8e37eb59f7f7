package loan

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"fondo-backend/internal/domain/loan"
	"fondo-backend/internal/domain/member"
	"fondo-backend/internal/domain/notification"
	"fondo-backend/internal/domain/uow"
	"fondo-backend/internal/finance"
	"fondo-backend/pkg/id"
)

// RateTable holds the configured default annual rates per membership tier.
// Asociados borrow cheaper than clientes.
type RateTable struct {
	AsociadoPct float64
	ClientePct  float64
}

func (t RateTable) For(role member.Role) float64 {
	if role == member.RoleCliente {
		return t.ClientePct
	}
	return t.AsociadoPct
}

type Usecase struct {
	members  member.Repository
	loans    loan.Repository
	uow      uow.UnitOfWork
	notifier notification.Notifier
	rates    RateTable
}

func NewUsecase(members member.Repository, loans loan.Repository, tx uow.UnitOfWork, notifier notification.Notifier, rates RateTable) *Usecase {
	return &Usecase{members: members, loans: loans, uow: tx, notifier: notifier, rates: rates}
}

// Request creates a pending loan for a member. The monthly payment is fixed
// here, derived solely from (amount, rate, term); nothing mutates it later.
func (u *Usecase) Request(ctx context.Context, in RequestInput) (*LoanDTO, error) {
	owner, err := u.members.GetByMemberID(ctx, in.OwnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, member.ErrNotFound
		}
		return nil, err
	}

	ratePct := u.rates.For(owner.Role)
	// Fails fast on non-positive amount or term, before any further store work.
	monthly, err := finance.MonthlyPayment(in.Amount, ratePct, in.TermMonths)
	if err != nil {
		return nil, err
	}

	var cosignerID *string
	if owner.Role == member.RoleCliente {
		if in.CosignerID == "" {
			return nil, loan.ErrCosignerRequired
		}
		cosigner, err := u.members.GetByMemberID(ctx, in.CosignerID)
		if err != nil || cosigner.Role != member.RoleAsociado {
			return nil, loan.ErrCosignerInvalid
		}
		cosignerID = &cosigner.MemberID
	}

	// One pending request per member at a time.
	_, err = u.loans.GetPendingLoanByOwnerID(ctx, in.OwnerID)
	switch {
	case err == nil:
		return nil, loan.ErrPendingExists
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	now := time.Now().UTC()
	l := &loan.Loan{
		LoanID:         id.NewID32(),
		OwnerID:        owner.MemberID,
		CosignerID:     cosignerID,
		Amount:         in.Amount,
		Balance:        in.Amount,
		TermMonths:     in.TermMonths,
		AnnualRatePct:  ratePct,
		MonthlyPayment: monthly,
		Description:    in.Description,
		Status:         loan.StatusPending,
		RequestedAt:    now,
	}
	if err := u.loans.Create(ctx, l); err != nil {
		return nil, err
	}

	if err := u.notifier.Notify(ctx, owner.MemberID, notification.KindLoanRequested,
		"Solicitud de préstamo recibida", l.Description); err != nil {
		log.Printf("loan request notification failed: %v", err)
	}
	return toDTO(l), nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) ListByOwner(ctx context.Context, ownerID string) ([]LoanDTO, error) {
	ls, err := u.loans.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		out = append(out, *toDTO(&ls[i]))
	}
	return out, nil
}

// Schedule recomputes the amortization table for a stored loan. Derived on
// every call; never persisted.
func (u *Usecase) Schedule(ctx context.Context, loanID string) ([]finance.ScheduleRow, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}
	return finance.Schedule(l.Amount, l.AnnualRatePct, l.TermMonths)
}

// Quote previews the installment and table for a prospective loan without
// touching the store beyond the role lookup.
func (u *Usecase) Quote(ctx context.Context, in QuoteInput) (*QuoteDTO, error) {
	ratePct := u.rates.AsociadoPct
	if in.OwnerID != "" {
		owner, err := u.members.GetByMemberID(ctx, in.OwnerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, member.ErrNotFound
			}
			return nil, err
		}
		ratePct = u.rates.For(owner.Role)
	}
	monthly, err := finance.MonthlyPayment(in.Amount, ratePct, in.TermMonths)
	if err != nil {
		return nil, err
	}
	rows, err := finance.Schedule(in.Amount, ratePct, in.TermMonths)
	if err != nil {
		return nil, err
	}
	return &QuoteDTO{
		Amount:         in.Amount,
		TermMonths:     in.TermMonths,
		AnnualRatePct:  ratePct,
		MonthlyPayment: monthly,
		Schedule:       rows,
	}, nil
}

// Approve is the administrative pending→active transition. Runs under a
// locked loan row so a concurrent decision cannot double-apply.
func (u *Usecase) Approve(ctx context.Context, loanID string) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		if err := l.Approve(time.Now().UTC()); err != nil {
			return err
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}
	if err := u.notifier.Notify(ctx, dto.OwnerID, notification.KindLoanApproved,
		"Préstamo aprobado", "Tu préstamo fue aprobado y está activo."); err != nil {
		log.Printf("loan approval notification failed: %v", err)
	}
	return dto, nil
}

// Reject is the administrative pending→rejected transition.
func (u *Usecase) Reject(ctx context.Context, loanID, reason string) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		if err := l.Reject(reason); err != nil {
			return err
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}
	if err := u.notifier.Notify(ctx, dto.OwnerID, notification.KindLoanRejected,
		"Préstamo rechazado", reason); err != nil {
		log.Printf("loan rejection notification failed: %v", err)
	}
	return dto, nil
}
