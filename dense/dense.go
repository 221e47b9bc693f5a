// SPDX-License-Identifier: MIT
// Package dense multiplies real integer matrices along a parenthesization
// and counts the scalar multiplications it performs.
//
// It is the ground truth for the cost model: executing the split tree of
// mcm.Solve on concrete matrices must perform exactly Result.Cost scalar
// multiplications and yield the same product as any other order.
package dense

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBadShape is returned when a requested shape is not positive.
	ErrBadShape = errors.New("dense: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("dense: index out of range")

	// ErrDimensionMismatch indicates a product a·b with a.Cols != b.Rows,
	// or operands whose shapes do not match the chain being executed.
	ErrDimensionMismatch = errors.New("dense: dimension mismatch")
)

// denseErrorf wraps err with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("dense: Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of int64 values.
type Dense struct {
	r, c int     // number of rows and columns
	data []int64 // flat backing storage, length == r*c
}

// NewDense creates an r×c matrix initialized to zeros.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("dense: NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]int64, rows*cols)}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
func (m *Dense) At(row, col int) (int64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense) Set(row, col int, v int64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Equal reports whether m and o have the same shape and elements.
func (m *Dense) Equal(o *Dense) bool {
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// Mul returns a·b and the number of scalar multiplications performed,
// which is always a.Rows()*a.Cols()*b.Cols().
//
// Errors: ErrDimensionMismatch when a.Cols() != b.Rows().
// Complexity: O(r·k·c) time, O(r·c) memory.
func Mul(a, b *Dense) (*Dense, int, error) {
	if a.c != b.r {
		return nil, 0, fmt.Errorf("dense: Mul(%dx%d, %dx%d): %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	res := &Dense{r: a.r, c: b.c, data: make([]int64, a.r*b.c)}

	// i-k-j order: walks rows of b contiguously.
	var ops int
	for i := 0; i < a.r; i++ {
		rowA := i * a.c
		rowR := i * b.c
		for k := 0; k < a.c; k++ {
			av := a.data[rowA+k]
			rowB := k * b.c
			for j := 0; j < b.c; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
			ops += b.c
		}
	}

	return res, ops, nil
}
