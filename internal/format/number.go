package format

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// DefaultSeparator is used by BeautifulNumber.
const DefaultSeparator = " "

// DefaultAccuracy is the number of decimals Round callers use when they have
// no preference.
const DefaultAccuracy = 2

// BeautifulNumber groups the digits of value in threes using DefaultSeparator.
// It reports false when value is nil.
func BeautifulNumber(value any) (string, bool) {
	return BeautifulNumberWith(value, DefaultSeparator)
}

// BeautifulNumberWith inserts separator between groups of three digits,
// counted from the end of every digit run. A position qualifies only when it
// sits between two word characters and the digit run that follows has a
// length that is a multiple of three, so "1234.5678" becomes "1 234.5 678".
func BeautifulNumberWith(value any, separator string) (string, bool) {
	if isNil(value) {
		return "", false
	}
	return groupThousands(ToString(value), separator), true
}

func groupThousands(s, separator string) string {
	// run[i] is the number of consecutive digits starting at i.
	run := make([]int, len(s)+1)
	for i := len(s) - 1; i >= 0; i-- {
		if isDigit(s[i]) {
			run[i] = run[i+1] + 1
		}
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/3*len(separator))
	for i := 0; i < len(s); i++ {
		if i > 0 && run[i] > 0 && run[i]%3 == 0 && isWordChar(s[i-1]) {
			b.WriteString(separator)
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isWordChar(c byte) bool {
	return isDigit(c) || c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Round rounds value to accuracy decimals by scaling with 10^accuracy,
// rounding to the nearest integer (ties toward +Inf) and scaling back. The
// arithmetic is plain float64, so Round(1.005, 2) is 1 because 1.005*100 is
// 100.49999999999999.
func Round(value float64, accuracy int) float64 {
	d := math.Pow(10, float64(accuracy))
	return roundHalfUp(value*d) / d
}

func roundHalfUp(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	return r
}

// ToString renders v the way string interpolation in a browser would:
// nil is "null", integral floats have no fraction and magnitudes outside
// [1e-6, 1e21) use exponent notation.
func ToString(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(t).Int(), 10)
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(reflect.ValueOf(t).Uint(), 10)
	case float32:
		return numberString(float64(t))
	case float64:
		return numberString(t)
	case fmt.Stringer:
		return t.String()
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "null"
		}
		return ToString(rv.Elem().Interface())
	}
	return fmt.Sprint(v)
}

func numberString(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	// Go pads the exponent to two digits ("1e-07"); browsers do not.
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + digits
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
