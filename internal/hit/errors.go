package hit

import "errors"

var (
	// ErrMalformedRecord marks a raw record that violates the 10-field contract.
	ErrMalformedRecord = errors.New("malformed hit record")

	// ErrInvariant marks a broken engine precondition, e.g. merging hits on
	// different frames. It indicates a programming error, not bad input.
	ErrInvariant = errors.New("hit invariant violated")
)
