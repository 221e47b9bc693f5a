// SPDX-License-Identifier: MIT
// Package chain - validation of a chain before any cost computation runs.
//
// Design principles:
//   - Deterministic, side-effect free.
//   - Report the first defect in index order; never collect them all.
//   - Only sentinels from errors.go, wrapped with the offending positions.

package chain

// Validate checks that c is a well-formed chain.
//
// Scan order (index i ascending, 0..n-1):
//  1. if i < n-1: chain[i].Cols must equal chain[i+1].Rows  → ErrNonConformable
//  2. chain[i].Rows and chain[i].Cols must be positive        → ErrZeroDimension
//
// At a given index the conformability check runs first, so when both
// conditions fail at the same position ErrNonConformable wins. An empty
// chain yields ErrEmptyChain before the scan starts.
//
// Matrix positions in messages are 1-based, matching the C1..Cn labels.
//
// Complexity: O(n) time, O(1) memory.
func (c Chain) Validate() error {
	n := len(c.dims)
	if n == 0 {
		return chainErrorf("Validate", ErrEmptyChain, "len=%d", 0)
	}

	var (
		i   int  // current matrix index
		cur Dims // chain[i]
	)
	for i = 0; i < n; i++ {
		cur = c.dims[i]
		if i+1 < n && cur.Cols != c.dims[i+1].Rows {
			return chainErrorf("Validate", ErrNonConformable,
				"matrix %d (%s) and matrix %d (%s)", i+1, cur, i+2, c.dims[i+1])
		}
		if cur.Rows <= 0 || cur.Cols <= 0 {
			return chainErrorf("Validate", ErrZeroDimension, "matrix %d (%s)", i+1, cur)
		}
	}

	return nil
}

// Validate is the free-function form of Chain.Validate.
func Validate(c Chain) error { return c.Validate() }
