package format

import (
	"math"
	"regexp"
	"strconv"
)

// Commas may be followed by any amount of whitespace so both the computed
// style form "matrix(1, 0, 0, 1, 10, 20)" and the compact form match.
var matrixRe = regexp.MustCompile(
	`matrix\((?:-?\d+(?:\.\d+)?,\s*){4}(-?\d+(?:\.\d+)?),\s*(-?\d+(?:\.\d+)?)\)`,
)

// Translation is the tx/ty pair of a 2D CSS transform matrix.
type Translation struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// TransformFromCSS extracts the translation of a matrix(a, b, c, d, tx, ty)
// transform, truncating fractions toward zero. Strings without a six
// argument matrix yield the zero translation.
func TransformFromCSS(transform string) Translation {
	m := matrixRe.FindStringSubmatch(transform)
	if m == nil {
		return Translation{}
	}
	return Translation{X: truncInt(m[1]), Y: truncInt(m[2])}
}

func truncInt(s string) int {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	f = math.Trunc(f)
	switch {
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}
