package report

import (
	"time"

	"fondo-backend/internal/domain/loan"
	"fondo-backend/internal/domain/saving"
)

// Pure rollups over record collections. No store access, no clock reads —
// callers pass "now" in.

// monthAbbr holds the report locale's month labels (the app is Colombian).
var monthAbbr = [...]string{
	"Ene", "Feb", "Mar", "Abr", "May", "Jun",
	"Jul", "Ago", "Sep", "Oct", "Nov", "Dic",
}

// TotalBalance sums every contribution amount.
func TotalBalance(savings []saving.Saving) int64 {
	var total int64
	for i := range savings {
		total += savings[i].Amount
	}
	return total
}

// ActiveLoansBalance sums outstanding balances over currently-owed loans
// (the active/approved filter set).
func ActiveLoansBalance(loans []loan.Loan) int64 {
	var total int64
	for i := range loans {
		if loans[i].Status.CurrentlyOwed() {
			total += loans[i].Balance
		}
	}
	return total
}

// CountCurrentlyOwed counts loans in repayment.
func CountCurrentlyOwed(loans []loan.Loan) int {
	n := 0
	for i := range loans {
		if loans[i].Status.CurrentlyOwed() {
			n++
		}
	}
	return n
}

type MonthBucket struct {
	Label string `json:"label"`
	Total int64  `json:"total"`
}

// MonthlyBuckets groups contributions by calendar month over the most recent
// n months ending at now, oldest first, zero-filled for quiet months.
func MonthlyBuckets(savings []saving.Saving, now time.Time, n int) []MonthBucket {
	if n <= 0 {
		return nil
	}
	type ym struct {
		year  int
		month time.Month
	}
	sums := make(map[ym]int64, n)
	for i := range savings {
		d := savings[i].Date
		sums[ym{d.Year(), d.Month()}] += savings[i].Amount
	}

	out := make([]MonthBucket, 0, n)
	// Anchor to the first of the month so AddDate never skips short months.
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := n - 1; i >= 0; i-- {
		m := anchor.AddDate(0, -i, 0)
		out = append(out, MonthBucket{
			Label: monthAbbr[m.Month()-1],
			Total: sums[ym{m.Year(), m.Month()}],
		})
	}
	return out
}

type Slice struct {
	Category   string  `json:"category"`
	Amount     int64   `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// Distribution splits the member's money across savings, loan debt and
// accrued interest. All percentages are zero when the total is zero.
func Distribution(totalSavings, totalLoans, totalInterest int64) []Slice {
	slices := []Slice{
		{Category: "Ahorros", Amount: totalSavings},
		{Category: "Préstamos", Amount: totalLoans},
		{Category: "Intereses", Amount: totalInterest},
	}
	total := totalSavings + totalLoans + totalInterest
	if total == 0 {
		return slices
	}
	for i := range slices {
		slices[i].Percentage = float64(slices[i].Amount) / float64(total) * 100
	}
	return slices
}
