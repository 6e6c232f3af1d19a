package domain

import (
	"fmt"
	"math"
)

// Money is a monetary amount stored as integer cents. Two amounts are
// equal iff their cent counts match.
//
// Construction clamps instead of failing: negative and non-finite input
// normalizes to zero, fractional cents truncate toward zero.
type Money struct {
	cents int64
}

// NewMoney creates a Money from an integer cent count.
func NewMoney(cents int64) Money {
	if cents < 0 {
		return Money{}
	}
	return Money{cents: cents}
}

// NewMoneyFromFloat creates a Money from a decimal amount in major units.
// Example: NewMoneyFromFloat(24.99) represents $24.99.
func NewMoneyFromFloat(amount float64) Money {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return Money{}
	}
	return Money{cents: int64(math.Trunc(amount * 100))}
}

// Cents returns the amount as integer cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Equals returns true if both amounts hold the same cent count.
func (m Money) Equals(other Money) bool {
	return m.cents == other.cents
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Float64 returns an approximate major-unit representation for display.
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

// String formats the amount with two decimal places.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
