package shared

import (
	"errors"
	"fmt"
	"math"
)

// Money value object - an amount in minor currency units.
type Money struct {
	amount   int64  // stored in the smallest currency unit (e.g. cents)
	currency string // currency code (e.g. SGD, USD)
}

// NewMoney creates a new Money value object.
func NewMoney(amount int64, currency string) *Money {
	return &Money{
		amount:   amount,
		currency: currency,
	}
}

// Amount returns the amount in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

// Currency returns the currency code.
func (m Money) Currency() string {
	return m.currency
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// Add adds two amounts, returning a new Money value object.
func (m Money) Add(other Money) (*Money, error) {
	if m.currency != other.currency {
		return nil, errors.New("cannot add money with different currencies")
	}

	return &Money{
		amount:   m.amount + other.amount,
		currency: m.currency,
	}, nil
}

// Subtract subtracts an amount, returning a new Money value object.
func (m Money) Subtract(other Money) (*Money, error) {
	if m.currency != other.currency {
		return nil, errors.New("cannot subtract money with different currencies")
	}

	return &Money{
		amount:   m.amount - other.amount,
		currency: m.currency,
	}, nil
}

// Multiply multiplies the amount by a quantity with overflow checking.
func (m Money) Multiply(quantity int) (*Money, error) {
	if quantity < 0 {
		return nil, errors.New("cannot multiply money by a negative quantity")
	}
	if quantity != 0 && m.amount > math.MaxInt64/int64(quantity) {
		return nil, fmt.Errorf("money overflow: %d * %d", m.amount, quantity)
	}

	return &Money{
		amount:   m.amount * int64(quantity),
		currency: m.currency,
	}, nil
}

// IsGreaterThan reports whether this amount is greater than the other.
func (m Money) IsGreaterThan(other Money) bool {
	return m.amount > other.amount
}

// IsGreaterThanOrEqual reports whether this amount is greater than or equal to the other.
func (m Money) IsGreaterThanOrEqual(other Money) bool {
	return m.amount >= other.amount
}

// Equals reports whether two Money value objects are equal.
func (m Money) Equals(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}
