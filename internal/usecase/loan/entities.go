package loan

import (
	"time"

	"fondo-backend/internal/domain/loan"
	"fondo-backend/internal/finance"
)

type RequestInput struct {
	OwnerID     string `json:"owner_id"`
	Amount      int64  `json:"amount"`
	TermMonths  int    `json:"term_months"`
	Description string `json:"description"`
	CosignerID  string `json:"cosigner_id,omitempty"`
}

type QuoteInput struct {
	OwnerID    string `json:"owner_id,omitempty"`
	Amount     int64  `json:"amount"`
	TermMonths int    `json:"term_months"`
}

type LoanDTO struct {
	LoanID         string     `json:"loan_id"`
	OwnerID        string     `json:"owner_id"`
	CosignerID     *string    `json:"cosigner_id,omitempty"`
	Amount         int64      `json:"amount"`
	Balance        int64      `json:"balance"`
	TermMonths     int        `json:"term_months"`
	AnnualRatePct  float64    `json:"annual_rate_pct"`
	MonthlyPayment int64      `json:"monthly_payment"`
	Description    string     `json:"description"`
	Status         string     `json:"status"`
	RejectReason   string     `json:"reject_reason,omitempty"`
	RequestedAt    time.Time  `json:"requested_at"`
	ApprovedAt     *time.Time `json:"approved_at,omitempty"`
}

type QuoteDTO struct {
	Amount         int64                 `json:"amount"`
	TermMonths     int                   `json:"term_months"`
	AnnualRatePct  float64               `json:"annual_rate_pct"`
	MonthlyPayment int64                 `json:"monthly_payment"`
	Schedule       []finance.ScheduleRow `json:"schedule"`
}

func toDTO(l *loan.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:         l.LoanID,
		OwnerID:        l.OwnerID,
		CosignerID:     l.CosignerID,
		Amount:         l.Amount,
		Balance:        l.Balance,
		TermMonths:     l.TermMonths,
		AnnualRatePct:  l.AnnualRatePct,
		MonthlyPayment: l.MonthlyPayment,
		Description:    l.Description,
		Status:         string(l.Status),
		RejectReason:   l.RejectReason,
		RequestedAt:    l.RequestedAt,
		ApprovedAt:     l.ApprovedAt,
	}
}
