package format

import (
	"regexp"
	"strings"
)

var leadingZerosRe = regexp.MustCompile(`^(-)?[0]+(-?\d+.*)$`)

// RemovePlus drops a single leading '+'.
func RemovePlus(s string) string {
	return strings.TrimPrefix(s, "+")
}

// AddPlus prefixes s with '+' without looking at what is already there.
func AddPlus(s string) string {
	return "+" + s
}

// RemoveFirstZeros strips the zeros in front of the integer part, keeping an
// optional minus sign. "007" becomes "7", "-0012.5" becomes "-12.5" and an
// all-zero run keeps its last digit ("000" becomes "0"). Anything that does
// not look like a zero-padded number is returned as is.
func RemoveFirstZeros(value string) string {
	return leadingZerosRe.ReplaceAllString(value, "${1}${2}")
}
