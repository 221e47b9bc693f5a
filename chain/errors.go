// SPDX-License-Identifier: MIT
// Package chain: sentinel error set.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Context (which matrices, which token) is attached with %w at the
//     call site, never baked into the sentinel text.
//   - Nothing in this package panics on user input.

package chain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyChain is returned when a chain holds zero matrices.
	// New reports it before any adjacency scan can run.
	ErrEmptyChain = errors.New("chain: no matrices available")

	// ErrNonConformable indicates that chain[i].Cols != chain[i+1].Rows,
	// so the product of the two neighbours is undefined.
	ErrNonConformable = errors.New("chain: dimensions are not conformable")

	// ErrZeroDimension indicates that some matrix has a zero (or negative)
	// row or column count.
	ErrZeroDimension = errors.New("chain: zero dimensions are not allowed")

	// ErrSyntax indicates that Parse met a token that is not of the form RxC.
	ErrSyntax = errors.New("chain: invalid dimension syntax")
)

// chainErrorf wraps err with a method tag and a formatted location,
// producing "chain: <method>: <location>: <err>".
func chainErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("chain: %s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
