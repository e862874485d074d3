package domain

import (
	"strconv"
	"strings"
)

// Display precisions. Values are rounded only when rendered.
const (
	MagnitudePlaces   = 2
	TemperaturePlaces = 1
	PercentPlaces     = 1
)

// FormatFixed renders v with exactly places digits after the decimal point,
// rounding half to even on the exact binary value.
func FormatFixed(v float64, places int) string {
	return strconv.FormatFloat(v, 'f', places, 64)
}

// FormatFloat renders v in the shortest form that parses back to the same
// float64. Whole numbers keep a trailing ".0" so a float column never reads
// as an integer one.
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

// FormatInt renders an integer aggregate.
func FormatInt(n int) string {
	return strconv.Itoa(n)
}
