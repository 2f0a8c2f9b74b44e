// Package numeral converts Roman numerals to integers.
package numeral

import (
	"errors"
	"fmt"
)

// ErrInvalidNumeral is returned when a numeral contains a character outside I, V, X, L, C, D, M.
var ErrInvalidNumeral = errors.New("invalid roman numeral")

var values = map[rune]int64{
	'I': 1,
	'V': 5,
	'X': 10,
	'L': 50,
	'C': 100,
	'D': 500,
	'M': 1000,
}

// Value returns the decimal value of a single Roman symbol.
func Value(symbol rune) (int64, bool) {
	v, ok := values[symbol]
	return v, ok
}

// IsValid reports whether every character of roman is a Roman symbol.
// Canonical form is not checked, so "IIII" is valid.
func IsValid(roman string) bool {
	return invalidAt([]rune(roman)) < 0
}

// invalidAt returns the index of the first non-Roman symbol, or -1.
func invalidAt(symbols []rune) int {
	for i, r := range symbols {
		if _, ok := Value(r); !ok {
			return i
		}
	}
	return -1
}

// Parse converts roman to its decimal value using the additive/subtractive scan:
// a symbol smaller than its successor is subtracted, anything else is added.
// The empty string parses to 0.
func Parse(roman string) (int64, error) {
	symbols := []rune(roman)
	if i := invalidAt(symbols); i >= 0 {
		return 0, fmt.Errorf("%w: %q at position %d in %q", ErrInvalidNumeral, symbols[i], i, roman)
	}

	var total int64
	for i, r := range symbols {
		current, _ := Value(r)
		var next int64
		if i+1 < len(symbols) {
			next, _ = Value(symbols[i+1])
		}

		if current < next {
			total -= current
		} else {
			total += current
		}
	}

	return total, nil
}
