package finance

// AccruedInterest credits a flat (non-compounding) rate against a savings
// balance: round(balance * rate). The default rate comes from configuration;
// callers may pass an override. Non-positive balances accrue nothing.
func AccruedInterest(balance int64, rate float64) int64 {
	if balance <= 0 || rate <= 0 {
		return 0
	}
	return roundCOP(float64(balance) * rate)
}
