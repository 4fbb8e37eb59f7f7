// Package finance holds the cooperative's money math: fixed-payment loan
// amortization and flat interest accrual. All amounts are whole Colombian
// pesos (int64); every function here is pure.
package finance

import (
	"errors"
	"math"
)

var (
	ErrInvalidPrincipal = errors.New("finance: principal must be positive")
	ErrInvalidTerm      = errors.New("finance: term must be at least one month")
	ErrInvalidRate      = errors.New("finance: rate must not be negative")
)

// ScheduleRow is one period of an amortization table. Derived, never persisted.
type ScheduleRow struct {
	Period    int   `json:"period"`
	Payment   int64 `json:"payment"`
	Interest  int64 `json:"interest"`
	Principal int64 `json:"principal"`
	Remaining int64 `json:"remaining"`
}

// roundCOP rounds to the nearest whole peso, half away from zero.
func roundCOP(x float64) int64 {
	if x >= 0 {
		return int64(math.Floor(x + 0.5))
	}
	return int64(math.Ceil(x - 0.5))
}

func monthlyRate(annualRatePct float64) float64 { return annualRatePct / 100 / 12 }

func checkLoanArgs(principal int64, annualRatePct float64, termMonths int) error {
	switch {
	case principal <= 0:
		return ErrInvalidPrincipal
	case termMonths < 1:
		return ErrInvalidTerm
	case annualRatePct < 0:
		return ErrInvalidRate
	}
	return nil
}

// MonthlyPayment computes the fixed monthly installment for a loan using the
// standard annuity formula: P * r * (1+r)^n / ((1+r)^n - 1), where r is the
// monthly decimal rate. A zero rate degenerates to an even split.
func MonthlyPayment(principal int64, annualRatePct float64, termMonths int) (int64, error) {
	if err := checkLoanArgs(principal, annualRatePct, termMonths); err != nil {
		return 0, err
	}
	p := float64(principal)
	r := monthlyRate(annualRatePct)
	if r == 0 {
		return roundCOP(p / float64(termMonths)), nil
	}
	f := math.Pow(1+r, float64(termMonths))
	return roundCOP(p * r * f / (f - 1)), nil
}

// Schedule produces the full period-by-period amortization table. Interest per
// period is round(remaining * r); the principal portion is the rest of the
// fixed payment, never more than the balance still owed (a rounded-up payment
// can drain a small loan early, leaving zero rows at the tail). The final
// period absorbs whatever rounding residue is left, so the principal portions
// always sum to the loan principal exactly and the last remaining balance is 0.
func Schedule(principal int64, annualRatePct float64, termMonths int) ([]ScheduleRow, error) {
	payment, err := MonthlyPayment(principal, annualRatePct, termMonths)
	if err != nil {
		return nil, err
	}
	r := monthlyRate(annualRatePct)
	rows := make([]ScheduleRow, 0, termMonths)
	remaining := principal

	for period := 1; period <= termMonths; period++ {
		interest := roundCOP(float64(remaining) * r)
		principalPart := payment - interest
		if principalPart > remaining {
			principalPart = remaining
		}
		if period == termMonths {
			// Reconcile: the last period absorbs the rounding residue.
			principalPart = remaining
		}
		remaining -= principalPart
		rows = append(rows, ScheduleRow{
			Period:    period,
			Payment:   principalPart + interest,
			Interest:  interest,
			Principal: principalPart,
			Remaining: remaining,
		})
	}
	return rows, nil
}
