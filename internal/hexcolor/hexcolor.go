// Package hexcolor converts #rgb / #rrggbb strings to channel triples and
// picks a readable text colour for a background using the W3C AERT
// brightness formula (http://www.w3.org/TR/AERT#color-contrast).
package hexcolor

import (
	"regexp"
	"strconv"

	appErrors "github.com/unclebandit/formatkit/internal/errors"
	"github.com/unclebandit/formatkit/internal/format"
)

var (
	shortColorRe = regexp.MustCompile(`(?i)^#[0-9a-f]{3}$`)
	longColorRe  = regexp.MustCompile(`(?i)^#[0-9a-f]{6}$`)
)

// RGB is a red, green, blue triple.
type RGB [3]int

// Contrast names the text colour that reads best on a background.
type Contrast string

const (
	Black Contrast = "black"
	White Contrast = "white"
)

// contrastThreshold is exclusive: a brightness of exactly 125 gets white text.
const contrastThreshold = 125

// ContrastValue returns the perceived brightness of c, rounded to an integer.
// Channels are not range checked.
func ContrastValue(c RGB) int {
	sum := c[0]*299 + c[1]*587 + c[2]*114
	return int(format.Round(float64(sum)/1000, 0))
}

// ContrastType maps a brightness to the text colour to draw on top of it.
func ContrastType(value int) Contrast {
	if value > contrastThreshold {
		return Black
	}
	return White
}

// CheckColor returns *appErrors.ErrInvalidColor unless color is #rgb or
// #rrggbb (case-insensitive).
func CheckColor(color string) error {
	if !longColorRe.MatchString(color) && !shortColorRe.MatchString(color) {
		return appErrors.NewInvalidColor(color)
	}
	return nil
}

// Hex2RGB parses a validated hex colour.
//
// The short form parses each digit on its own, so "#fff" yields {15, 15, 15}
// rather than {255, 255, 255}. Callers relying on that range exist; do not
// expand the digits here.
func Hex2RGB(color string) (RGB, error) {
	if err := CheckColor(color); err != nil {
		return RGB{}, err
	}
	if shortColorRe.MatchString(color) {
		return RGB{hexValue(color[1:2]), hexValue(color[2:3]), hexValue(color[3:4])}, nil
	}
	return RGB{hexValue(color[1:3]), hexValue(color[3:5]), hexValue(color[5:7])}, nil
}

func hexValue(s string) int {
	v, _ := strconv.ParseUint(s, 16, 8)
	return int(v)
}
