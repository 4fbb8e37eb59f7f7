package report

import (
	"context"
	"time"

	"fondo-backend/internal/domain/loan"
	"fondo-backend/internal/domain/saving"
	"fondo-backend/internal/finance"
)

// reportMonths is how many calendar months the monthly chart covers.
const reportMonths = 5

// recentLimit caps the dashboard's recent-activity list.
const recentLimit = 5

type Usecase struct {
	savings     saving.Repository
	loans       loan.Repository
	accrualRate float64
}

func NewUsecase(savings saving.Repository, loans loan.Repository, accrualRate float64) *Usecase {
	return &Usecase{savings: savings, loans: loans, accrualRate: accrualRate}
}

type TransactionDTO struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

type DashboardDTO struct {
	MemberID           string           `json:"member_id"`
	TotalBalance       int64            `json:"total_balance"`
	AccruedInterest    int64            `json:"accrued_interest"`
	ActiveLoans        int              `json:"active_loans"`
	ActiveLoansBalance int64            `json:"active_loans_balance"`
	RecentTransactions []TransactionDTO `json:"recent_transactions"`
}

type SummaryDTO struct {
	TotalSavings  int64 `json:"total_savings"`
	TotalLoans    int64 `json:"total_loans"`
	TotalInterest int64 `json:"total_interest"`
	Transactions  int   `json:"transactions"`
}

type ReportDTO struct {
	MemberID     string        `json:"member_id"`
	Summary      SummaryDTO    `json:"summary"`
	Monthly      []MonthBucket `json:"monthly"`
	Distribution []Slice       `json:"distribution"`
}

// Dashboard assembles the home-screen figures from the member's records.
func (u *Usecase) Dashboard(ctx context.Context, memberID string) (*DashboardDTO, error) {
	savings, err := u.savings.ListByOwnerID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	loans, err := u.loans.ListByOwnerID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	total := TotalBalance(savings)
	recent := make([]TransactionDTO, 0, recentLimit)
	for i := range savings {
		if i == recentLimit {
			break
		}
		recent = append(recent, TransactionDTO{
			ID:          savings[i].SavingID,
			Type:        "saving",
			Amount:      savings[i].Amount,
			Description: savings[i].Description,
			Date:        savings[i].Date,
		})
	}

	return &DashboardDTO{
		MemberID:           memberID,
		TotalBalance:       total,
		AccruedInterest:    finance.AccruedInterest(total, u.accrualRate),
		ActiveLoans:        CountCurrentlyOwed(loans),
		ActiveLoansBalance: ActiveLoansBalance(loans),
		RecentTransactions: recent,
	}, nil
}

// Report assembles the reports screen: summary totals, the monthly savings
// chart and the distribution breakdown.
func (u *Usecase) Report(ctx context.Context, memberID string, now time.Time) (*ReportDTO, error) {
	savings, err := u.savings.ListByOwnerID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	loans, err := u.loans.ListByOwnerID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	totalSavings := TotalBalance(savings)
	totalLoans := ActiveLoansBalance(loans)
	totalInterest := finance.AccruedInterest(totalSavings, u.accrualRate)

	return &ReportDTO{
		MemberID: memberID,
		Summary: SummaryDTO{
			TotalSavings:  totalSavings,
			TotalLoans:    totalLoans,
			TotalInterest: totalInterest,
			Transactions:  len(savings) + len(loans),
		},
		Monthly:      MonthlyBuckets(savings, now, reportMonths),
		Distribution: Distribution(totalSavings, totalLoans, totalInterest),
	}, nil
}
