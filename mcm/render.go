package mcm

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/matchain/chain"
)

// Default rendering tokens: matrices are C1..Cn, products use " x ".
const (
	DefaultSymbol = "C"
	DefaultMarker = "x"
)

// Notation controls how expressions are spelled.
//
//   - Symbol: label prefix; matrix i (0-based) is rendered Symbol+(i+1).
//   - Marker: infix multiplication token, surrounded by single spaces.
//
// Empty fields fall back to DefaultSymbol / DefaultMarker.
type Notation struct {
	Symbol string
	Marker string
}

// DefaultNotation returns {Symbol: "C", Marker: "x"}.
func DefaultNotation() Notation {
	return Notation{Symbol: DefaultSymbol, Marker: DefaultMarker}
}

// SplitStrategy tells the renderer where to divide sub-chain i..j (i < j).
// Every returned k must satisfy i <= k < j; each one contributes a
// "left marker right" term inside the same pair of parentheses.
type SplitStrategy func(i, j int) []int

// LookupSplits renders the single split recorded in a Solve split table.
func LookupSplits(splits Table) SplitStrategy {
	return func(i, j int) []int { return []int{splits[i][j]} }
}

// AllSplits enumerates every k in i..j-1. This is the literal "original
// sequence" display: for three or more matrices it concatenates several
// terms in one bracket pair and is not a single binary parenthesization.
func AllSplits(i, j int) []int {
	ks := make([]int, 0, j-i)
	for k := i; k < j; k++ {
		ks = append(ks, k)
	}

	return ks
}

// Render walks the range 0..n-1 of c using split. A single matrix renders
// as its bare symbol with no parentheses.
func (nt Notation) Render(c chain.Chain, split SplitStrategy) string {
	if c.Len() == 0 {
		return ""
	}
	nt = nt.withDefaults()
	var sb strings.Builder
	nt.render(&sb, split, 0, c.Len()-1)

	return sb.String()
}

// Optimal renders the parenthesization recorded in splits.
func (nt Notation) Optimal(c chain.Chain, splits Table) string {
	return nt.Render(c, LookupSplits(splits))
}

// Naive renders the all-splits display of c.
func (nt Notation) Naive(c chain.Chain) string {
	return nt.Render(c, AllSplits)
}

// render writes the expression for i..j into sb.
func (nt Notation) render(sb *strings.Builder, split SplitStrategy, i, j int) {
	if i == j {
		sb.WriteString(nt.Symbol)
		sb.WriteString(strconv.Itoa(i + 1))
		return
	}
	sb.WriteByte('(')
	for _, k := range split(i, j) {
		nt.render(sb, split, i, k)
		sb.WriteByte(' ')
		sb.WriteString(nt.Marker)
		sb.WriteByte(' ')
		nt.render(sb, split, k+1, j)
	}
	sb.WriteByte(')')
}

func (nt Notation) withDefaults() Notation {
	if nt.Symbol == "" {
		nt.Symbol = DefaultSymbol
	}
	if nt.Marker == "" {
		nt.Marker = DefaultMarker
	}

	return nt
}

// RenderOptimal renders the optimal parenthesization with DefaultNotation,
// e.g. "(C1 x (C2 x C3))".
func RenderOptimal(c chain.Chain, splits Table) string {
	return DefaultNotation().Optimal(c, splits)
}

// RenderNaive renders the all-splits display with DefaultNotation,
// e.g. "(C1 x (C2 x C3)(C1 x C2) x C3)" for three matrices.
func RenderNaive(c chain.Chain) string {
	return DefaultNotation().Naive(c)
}
