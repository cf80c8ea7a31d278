package pricing

import (
	"errors"
	"fmt"
)

// minorUnitsPerRupee is the scale between stored amounts and the displayed
// currency unit.
const minorUnitsPerRupee = 100

// Money is a monetary amount in minor currency units (paise).
type Money struct {
	amount int64
}

func NewMoney(amount int64) Money {
	return Money{amount: amount}
}

func NewMoneyFromInt(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{amount: amount}, nil
}

func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

func (m Money) MulInt(n int64) Money {
	return Money{amount: m.amount * n}
}

func (m Money) GreaterThan(other Money) bool {
	return m.amount > other.amount
}

// String renders the amount in rupees, dropping the paise part when whole.
// These strings appear verbatim in receipts.
func (m Money) String() string {
	rupees := m.amount / minorUnitsPerRupee
	paise := m.amount % minorUnitsPerRupee
	if paise < 0 {
		paise = -paise
	}
	if paise == 0 {
		return fmt.Sprintf("₹%d", rupees)
	}
	return fmt.Sprintf("₹%d.%02d", rupees, paise)
}
