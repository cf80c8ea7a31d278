package pricing

import "math"

// FeePolicy holds the fixed surcharges applied on top of the base rental
// amount. It comes from configuration, not persisted state, so operators can
// change it without a data migration.
type FeePolicy struct {
	SecurityDeposit    Money
	PlatformFeePercent float64
}

// PlatformFee computes the percentage fee on the base amount, rounded to the
// nearest whole currency unit.
func (p FeePolicy) PlatformFee(base Money) Money {
	rupees := float64(base.Amount()) * p.PlatformFeePercent / 100.0 / minorUnitsPerRupee
	return NewMoney(int64(math.Round(rupees)) * minorUnitsPerRupee)
}
