// Package accountnumber allocates externally addressable account numbers.
//
// Numbers are derived from a store-backed monotonic sequence rather than
// retried randomness, so allocation is collision-free by construction: a
// 9-digit zero-padded body from the sequence plus a Luhn check digit,
// giving a 10-character number that self-validates on entry.
package accountnumber

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/cdacbank/onlinebanking/pkg/repository"
	"github.com/theplant/luhn"
)

// SequenceName is the counter backing account-number allocation.
const SequenceName = "account_number"

// sequenceOffset keeps the visible numbering well away from single digits.
const sequenceOffset = 10000000

// ErrExhausted is returned when the sequence outgrows the 9-digit body.
var ErrExhausted = errors.New("account number space exhausted")

// Allocator hands out unique account numbers inside a unit of work.
type Allocator struct {
	seq repository.SequenceRepository
}

// New creates an Allocator over the given sequence repository. The
// repository must be bound to the caller's unit of work so the allocation
// commits atomically with the account it numbers.
func New(seq repository.SequenceRepository) *Allocator {
	return &Allocator{seq: seq}
}

// Next returns a fresh account number.
func (a *Allocator) Next() (string, error) {
	n, err := a.seq.Next(SequenceName)
	if err != nil {
		return "", err
	}
	body := n + sequenceOffset
	if body > 999999999 {
		return "", ErrExhausted
	}
	return fmt.Sprintf("%09d%d", body, checkDigit(body)), nil
}

// Valid reports whether number is a well-formed allocator-issued account
// number: 10 digits whose Luhn checksum holds.
func Valid(number string) bool {
	if len(number) != 10 {
		return false
	}
	n, err := strconv.Atoi(number)
	if err != nil {
		return false
	}
	return luhn.Valid(n)
}

// checkDigit computes the Luhn check digit for body so that the
// concatenation body||digit passes luhn.Valid.
func checkDigit(body int64) int {
	for d := 0; d <= 9; d++ {
		if luhn.Valid(int(body)*10 + d) {
			return d
		}
	}
	// Unreachable: one of the ten digits always satisfies the checksum.
	return 0
}
