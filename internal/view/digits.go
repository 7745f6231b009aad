// Package view renders the calculator page and its display values.
package view

import (
	"strconv"

	"github.com/guttosm/savings-service/internal/domain/dto"
)

// DigitHeightPx is the line height of one digit in a scrolling strip.
const DigitHeightPx = 32

// Digits returns the base-10 digits of n, most significant first.
// The sign of n is ignored.
func Digits(n int) []int {
	if n < 0 {
		n = -n
	}
	s := strconv.Itoa(n)
	digits := make([]int, len(s))
	for i := range s {
		digits[i] = int(s[i] - '0')
	}
	return digits
}

// Strips returns one scrolling strip per digit of n.
func Strips(n int) []dto.DigitStrip {
	digits := Digits(n)
	strips := make([]dto.DigitStrip, len(digits))
	for i, d := range digits {
		strips[i] = dto.DigitStrip{
			Digit:    d,
			OffsetPx: -d * DigitHeightPx,
		}
	}
	return strips
}
