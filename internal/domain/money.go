package domain

import (
	"math"
	"strconv"
)

// Money is a monetary amount in minor units (pence).
// JSON encodes it as pounds with two decimals.
type Money int64

// MoneyFromPounds converts a pound amount to Money, rounding half away from zero to the nearest penny.
func MoneyFromPounds(pounds float64) Money {
	return Money(math.Round(pounds * 100))
}

// Pounds returns the amount in pounds
func (m Money) Pounds() float64 {
	return float64(m) / 100
}

// MulRound multiplies the amount by a factor and rounds to the nearest penny
func (m Money) MulRound(factor float64) Money {
	return Money(math.Round(float64(m) * factor))
}

// Min returns the smaller of two amounts
func (m Money) Min(other Money) Money {
	if other < m {
		return other
	}
	return m
}

// NonNegative clamps negative amounts to zero
func (m Money) NonNegative() Money {
	if m < 0 {
		return 0
	}
	return m
}

func (m Money) String() string {
	return "£" + strconv.FormatFloat(m.Pounds(), 'f', 2, 64)
}

// MarshalJSON encodes the amount as a decimal number of pounds
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(m.Pounds(), 'f', 2, 64)), nil
}

// UnmarshalJSON decodes a decimal number of pounds
func (m *Money) UnmarshalJSON(data []byte) error {
	pounds, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*m = MoneyFromPounds(pounds)
	return nil
}
