package model

import "errors"

// Sentinel errors shared across the financing domain.
//
// An empty result set (no eligible lenders, zero qualification budget) is a
// valid outcome, not an error; these cover genuinely failed operations only.
var (
	// ErrInvalidInput marks a request rejected before any computation ran.
	ErrInvalidInput = errors.New("invalid input")

	// ErrArithmeticOverflow marks a simulation that exceeded its iteration
	// bound without converging. The failed operation returns no partial result.
	ErrArithmeticOverflow = errors.New("arithmetic overflow")

	// ErrNotFound marks a missing borrower or lender record in an adapter.
	ErrNotFound = errors.New("not found")
)
