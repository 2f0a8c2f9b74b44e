// Package words renders integers as English words.
package words

import (
	"math"
	"strings"
)

var (
	ones = []string{
		"", "One", "Two", "Three", "Four",
		"Five", "Six", "Seven", "Eight", "Nine",
	}
	teens = []string{
		"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen",
		"Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen",
	}
	tens = []string{
		"", "", "Twenty", "Thirty", "Forty",
		"Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
	}
	// scales covers every chunk of a uint64, so no magnitude is left without a name.
	scales = []string{
		"", "Thousand", "Million", "Billion",
		"Trillion", "Quadrillion", "Quintillion",
	}
)

// Render returns n in English words, e.g. 1994 becomes
// "One Thousand Nine Hundred Ninety Four". Zero chunks are skipped, so
// 1000 is "One Thousand" rather than "One Thousand Zero".
func Render(n int64) string {
	if n == 0 {
		return "Zero"
	}
	if n < 0 {
		return "Negative " + renderMagnitude(magnitude(n))
	}
	return renderMagnitude(uint64(n))
}

// magnitude returns |n| without overflowing on math.MinInt64.
func magnitude(n int64) uint64 {
	if n == math.MinInt64 {
		return uint64(math.MaxInt64) + 1
	}
	return uint64(-n)
}

func renderMagnitude(n uint64) string {
	var parts []string
	for scale := 0; n > 0; scale++ {
		if chunk := n % 1000; chunk > 0 {
			piece := RenderChunk(int(chunk))
			if scales[scale] != "" {
				piece += " " + scales[scale]
			}
			parts = append([]string{piece}, parts...)
		}
		n /= 1000
	}
	return strings.Join(parts, " ")
}

// RenderChunk renders a value in [0, 999]. Zero renders as the empty string.
func RenderChunk(n int) string {
	var parts []string

	if hundreds := n / 100; hundreds > 0 {
		parts = append(parts, ones[hundreds]+" Hundred")
	}

	remainder := n % 100
	switch {
	case remainder >= 10 && remainder < 20:
		parts = append(parts, teens[remainder-10])
	default:
		if ten := remainder / 10; ten > 0 {
			parts = append(parts, tens[ten])
		}
		if one := remainder % 10; one > 0 {
			parts = append(parts, ones[one])
		}
	}

	return strings.TrimSpace(strings.Join(parts, " "))
}
