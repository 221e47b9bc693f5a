package chain

import (
	"strconv"
	"strings"
	"unicode"
)

// Parse reads a chain from text such as "6x7,7x5,5x4" or "6x7 7x5 5x4".
// Tokens are separated by commas and/or whitespace; each token is
// "<rows>x<cols>" with a case-insensitive 'x'.
//
// Parse only checks syntax. Shapes such as "0x4" parse fine and are left
// for Validate to reject.
//
// Errors:
//   - ErrEmptyChain: s holds no tokens.
//   - ErrSyntax:     a token is not RxC with two decimal integers.
func Parse(s string) (Chain, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return Chain{}, chainErrorf("Parse", ErrEmptyChain, "input %q", s)
	}

	dims := make([]Dims, 0, len(fields))
	for pos, tok := range fields {
		d, err := parseDims(tok)
		if err != nil {
			return Chain{}, chainErrorf("Parse", err, "token %d %q", pos+1, tok)
		}
		dims = append(dims, d)
	}

	return New(dims)
}

// parseDims reads one "RxC" token.
func parseDims(tok string) (Dims, error) {
	r, c, ok := strings.Cut(strings.ToLower(tok), "x")
	if !ok {
		return Dims{}, ErrSyntax
	}
	rows, err := strconv.Atoi(r)
	if err != nil {
		return Dims{}, ErrSyntax
	}
	cols, err := strconv.Atoi(c)
	if err != nil {
		return Dims{}, ErrSyntax
	}

	return Dims{Rows: rows, Cols: cols}, nil
}
