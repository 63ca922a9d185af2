package money

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/cdacbank/onlinebanking/pkg/currency"
)

// Amount represents a monetary amount as an integer in the smallest
// currency unit (e.g., cents for USD).
type Amount = int64

// Money represents a monetary value in a specific currency.
// Invariants:
//   - Amount is always stored in the smallest currency unit.
//   - Currency code must be a valid ISO 4217 code.
//   - All arithmetic operations require matching currencies.
type Money struct {
	amount   Amount
	currency currency.Code
}

// New creates a Money value from a decimal amount expressed in the main
// currency unit. The amount must not carry more decimal places than the
// currency allows; conversion to the smallest unit is exact.
func New(amount float64, code currency.Code) (Money, error) {
	if code == "" {
		code = currency.DefaultCurrency
	}
	if !currency.IsValidCurrencyFormat(string(code)) {
		return Money{}, ErrInvalidCurrency
	}
	smallest, err := toSmallestUnit(amount, code)
	if err != nil {
		return Money{}, err
	}
	return Money{amount: smallest, currency: code}, nil
}

// NewFromSmallestUnit creates a Money value directly from the smallest
// currency unit, bypassing decimal-place validation. Intended for
// hydration from a data store.
func NewFromSmallestUnit(amount int64, code currency.Code) (Money, error) {
	if code == "" {
		code = currency.DefaultCurrency
	}
	if !currency.IsValidCurrencyFormat(string(code)) {
		return Money{}, ErrInvalidCurrency
	}
	return Money{amount: amount, currency: code}, nil
}

// Zero returns a zero-valued Money in the given currency.
func Zero(code currency.Code) Money {
	if code == "" {
		code = currency.DefaultCurrency
	}
	return Money{amount: 0, currency: code}
}

// Amount returns the amount in the smallest currency unit.
func (m Money) Amount() Amount { return m.amount }

// Currency returns the currency code.
func (m Money) Currency() currency.Code { return m.currency }

// AmountFloat returns the amount in the main currency unit. It is for
// display and DTO shaping only; arithmetic stays in smallest units.
func (m Money) AmountFloat() float64 {
	meta, err := currency.Get(m.currency)
	if err != nil {
		return 0
	}
	return float64(m.amount) / math.Pow10(meta.Decimals)
}

// Add returns the sum of two Money values of the same currency.
// The result must not overflow int64.
func (m Money) Add(other Money) (Money, error) {
	if !m.IsSameCurrency(other) {
		return Money{}, ErrCurrencyMismatch
	}
	// Check for overflow before performing the addition
	if (other.amount > 0 && m.amount > math.MaxInt64-other.amount) ||
		(other.amount < 0 && m.amount < math.MinInt64-other.amount) {
		return Money{}, ErrAmountExceedsMaxSafeInt
	}
	return Money{amount: m.amount + other.amount, currency: m.currency}, nil
}

// Subtract returns the difference of two Money values of the same currency.
// The result must not overflow int64.
func (m Money) Subtract(other Money) (Money, error) {
	if !m.IsSameCurrency(other) {
		return Money{}, ErrCurrencyMismatch
	}
	if (other.amount < 0 && m.amount > math.MaxInt64+other.amount) ||
		(other.amount > 0 && m.amount < math.MinInt64+other.amount) {
		return Money{}, ErrAmountExceedsMaxSafeInt
	}
	return Money{amount: m.amount - other.amount, currency: m.currency}, nil
}

// Equals reports whether both values have the same currency and amount.
func (m Money) Equals(other Money) bool {
	return m.IsSameCurrency(other) && m.amount == other.amount
}

// GreaterThan reports whether m exceeds other.
func (m Money) GreaterThan(other Money) (bool, error) {
	if !m.IsSameCurrency(other) {
		return false, ErrCurrencyMismatch
	}
	return m.amount > other.amount, nil
}

// LessThan reports whether m is below other.
func (m Money) LessThan(other Money) (bool, error) {
	if !m.IsSameCurrency(other) {
		return false, ErrCurrencyMismatch
	}
	return m.amount < other.amount, nil
}

// IsSameCurrency reports whether both values share a currency.
func (m Money) IsSameCurrency(other Money) bool { return m.currency == other.currency }

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool { return m.amount > 0 }

// IsNegative reports whether the amount is less than zero.
func (m Money) IsNegative() bool { return m.amount < 0 }

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool { return m.amount == 0 }

// String formats the amount with the currency's decimal places and code.
func (m Money) String() string {
	meta, err := currency.Get(m.currency)
	if err != nil {
		return fmt.Sprintf("%d %s", m.amount, m.currency)
	}
	return fmt.Sprintf("%.*f %s", meta.Decimals, m.AmountFloat(), m.currency)
}

// toSmallestUnit converts a decimal amount to the smallest currency unit
// using exact rational arithmetic, rejecting amounts with excess
// decimal places or beyond the int64 range.
func toSmallestUnit(amount float64, code currency.Code) (int64, error) {
	meta, err := currency.Get(code)
	if err != nil {
		return 0, err
	}

	amountStr := fmt.Sprintf("%.10f", amount)
	parts := strings.Split(amountStr, ".")
	if len(parts) > 1 {
		decimals := strings.TrimRight(parts[1], "0")
		if len(decimals) > meta.Decimals {
			return 0, fmt.Errorf("%w: more than %d decimal places", ErrInvalidAmount, meta.Decimals)
		}
	}

	amountStr = fmt.Sprintf("%.*f", meta.Decimals, amount)
	rat, ok := new(big.Rat).SetString(amountStr)
	if !ok {
		return 0, fmt.Errorf("%w: %f", ErrInvalidAmount, amount)
	}

	multiplier := big.NewRat(int64(math.Pow10(meta.Decimals)), 1)
	smallest := new(big.Rat).Mul(rat, multiplier)
	if !smallest.IsInt() {
		return 0, fmt.Errorf("%w: more than %d decimal places", ErrInvalidAmount, meta.Decimals)
	}
	num := smallest.Num()
	if !num.IsInt64() {
		return 0, fmt.Errorf("%w: exceeds maximum safe value", ErrInvalidAmount)
	}
	return num.Int64(), nil
}
