package money

import "errors"

// Common money package errors
var (
	// ErrInvalidCurrency is returned when a currency code is malformed or unknown.
	ErrInvalidCurrency = errors.New("invalid currency code")

	// ErrCurrencyMismatch is returned when performing operations on money with
	// different currencies.
	ErrCurrencyMismatch = errors.New("mismatched currencies")

	// ErrInvalidAmount is returned when an amount is malformed, carries too many
	// decimal places, or overflows the smallest-unit representation.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrAmountExceedsMaxSafeInt is returned when an arithmetic result would
	// leave the int64 smallest-unit range.
	ErrAmountExceedsMaxSafeInt = errors.New("amount exceeds maximum safe integer value")
)
