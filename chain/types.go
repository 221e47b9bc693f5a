package chain

import (
	"strconv"
	"strings"
)

// Dims is the shape of one matrix in a chain.
type Dims struct {
	Rows int // number of rows (must be > 0 in a valid chain)
	Cols int // number of columns (must be > 0 in a valid chain)
}

// String renders d as "RxC".
func (d Dims) String() string {
	return strconv.Itoa(d.Rows) + "x" + strconv.Itoa(d.Cols)
}

// Chain is an ordered, immutable sequence of matrix shapes, indexed 0..n-1.
// The zero value is an empty chain; build real ones with New or Parse.
type Chain struct {
	dims []Dims
}

// New copies dims into a fresh Chain.
//
// Returns ErrEmptyChain when dims is empty. No other checks run here:
// conformability and dimension checks are the job of Validate.
//
// Complexity: O(n) time and memory.
func New(dims []Dims) (Chain, error) {
	if len(dims) == 0 {
		return Chain{}, chainErrorf("New", ErrEmptyChain, "len=%d", 0)
	}
	cp := make([]Dims, len(dims))
	copy(cp, dims)

	return Chain{dims: cp}, nil
}

// FromPairs builds a Chain from {rows, cols} pairs, the form used by test
// vectors and JSON/TOML payloads.
func FromPairs(pairs [][2]int) (Chain, error) {
	dims := make([]Dims, len(pairs))
	for i, p := range pairs {
		dims[i] = Dims{Rows: p[0], Cols: p[1]}
	}

	return New(dims)
}

// Len returns the number of matrices in c.
func (c Chain) Len() int { return len(c.dims) }

// At returns the shape of matrix i. It panics if i is out of range,
// exactly like a slice index.
func (c Chain) At(i int) Dims { return c.dims[i] }

// Dims returns a copy of the shapes in c.
func (c Chain) Dims() []Dims {
	cp := make([]Dims, len(c.dims))
	copy(cp, c.dims)

	return cp
}

// Pairs returns the shapes of c as {rows, cols} pairs.
func (c Chain) Pairs() [][2]int {
	out := make([][2]int, len(c.dims))
	for i, d := range c.dims {
		out[i] = [2]int{d.Rows, d.Cols}
	}

	return out
}

// Result returns the shape of the full product C1·…·Cn, i.e.
// (chain[0].Rows, chain[n-1].Cols). The chain must be non-empty.
func (c Chain) Result() Dims {
	return Dims{Rows: c.dims[0].Rows, Cols: c.dims[len(c.dims)-1].Cols}
}

// String renders c as space-separated "RxC" tokens, e.g. "6x7 7x5 5x4".
// The output is accepted by Parse.
func (c Chain) String() string {
	parts := make([]string, len(c.dims))
	for i, d := range c.dims {
		parts[i] = d.String()
	}

	return strings.Join(parts, " ")
}
