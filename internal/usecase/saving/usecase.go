package saving

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"fondo-backend/internal/domain/member"
	"fondo-backend/internal/domain/notification"
	"fondo-backend/internal/domain/saving"
	"fondo-backend/internal/finance"
	"fondo-backend/pkg/id"
)

type Usecase struct {
	members  member.Repository
	savings  saving.Repository
	notifier notification.Notifier
	// Flat accrual rate applied to the member's total balance.
	accrualRate float64
}

func NewUsecase(members member.Repository, savings saving.Repository, notifier notification.Notifier, accrualRate float64) *Usecase {
	return &Usecase{members: members, savings: savings, notifier: notifier, accrualRate: accrualRate}
}

type CreateInput struct {
	OwnerID     string
	Amount      int64
	Description string
	ReceiptURL  string
	Date        time.Time // zero means "now"
}

type SummaryDTO struct {
	OwnerID         string `json:"owner_id"`
	TotalBalance    int64  `json:"total_balance"`
	AccruedInterest int64  `json:"accrued_interest"`
}

// Create appends a confirmed contribution with a running-total snapshot.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*saving.Saving, error) {
	if in.Amount <= 0 {
		return nil, saving.ErrInvalidAmount
	}
	if _, err := u.members.GetByMemberID(ctx, in.OwnerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, member.ErrNotFound
		}
		return nil, err
	}

	prior, err := u.savings.TotalByOwnerID(ctx, in.OwnerID)
	if err != nil {
		return nil, err
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	s := &saving.Saving{
		SavingID:           id.NewID32(),
		OwnerID:            in.OwnerID,
		Amount:             in.Amount,
		Description:        in.Description,
		AccumulatedBalance: prior + in.Amount,
		ReceiptURL:         in.ReceiptURL,
		Status:             saving.StatusConfirmed,
		Date:               date,
	}
	if err := u.savings.Create(ctx, s); err != nil {
		return nil, err
	}

	if err := u.notifier.Notify(ctx, in.OwnerID, notification.KindSaving,
		"Aporte registrado", s.Description); err != nil {
		log.Printf("saving notification failed: %v", err)
	}
	return s, nil
}

func (u *Usecase) ListByOwner(ctx context.Context, ownerID string) ([]saving.Saving, error) {
	return u.savings.ListByOwnerID(ctx, ownerID)
}

// Summary returns the member's total balance and the interest accrued on it
// at the configured flat rate.
func (u *Usecase) Summary(ctx context.Context, ownerID string) (*SummaryDTO, error) {
	total, err := u.savings.TotalByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return &SummaryDTO{
		OwnerID:         ownerID,
		TotalBalance:    total,
		AccruedInterest: finance.AccruedInterest(total, u.accrualRate),
	}, nil
}
