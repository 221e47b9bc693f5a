// Package chain describes an ordered chain of matrix shapes to be multiplied
// left to right, and checks that such a chain is well formed.
//
// 🚀 What is a chain?
//
//	A chain C1·C2·…·Cn is a sequence of matrices where every neighbour pair
//	is conformable: the column count of Ci equals the row count of Ci+1.
//	Only the shapes matter for cost analysis, so a Chain stores Dims values,
//	never the matrix entries themselves.
//
// ✨ Key features:
//   - immutable Chain value, copied on construction (New, Parse)
//   - Validate reports the first defect in index order as a sentinel error
//   - textual form "6x7,7x5,5x4" for CLIs, configs and tests
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/matchain/chain"
//
//	c, err := chain.New([]chain.Dims{{6, 7}, {7, 5}, {5, 4}})
//	if err != nil {
//	  // ErrEmptyChain
//	}
//	if err = c.Validate(); err != nil {
//	  // errors.Is(err, chain.ErrNonConformable) / chain.ErrZeroDimension
//	}
//
// Errors:
//   - ErrEmptyChain:     no matrices at all (construction time).
//   - ErrNonConformable: neighbour shapes do not line up.
//   - ErrZeroDimension:  a matrix has a zero (or negative) row/column count.
//   - ErrSyntax:         Parse could not read a "RxC" token.
package chain
