package hexcolor

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	appErrors "github.com/unclebandit/formatkit/internal/errors"
)

func TestContrastValue(t *testing.T) {
	tests := []struct {
		in   RGB
		want int
	}{
		{RGB{255, 255, 255}, 255},
		{RGB{0, 0, 0}, 0},
		{RGB{255, 0, 0}, 76},  // 76.245
		{RGB{0, 255, 0}, 150}, // 149.685
		{RGB{0, 0, 255}, 29},  // 29.07
		{RGB{1, 1, 1}, 1},
	}
	for _, tt := range tests {
		if got := ContrastValue(tt.in); got != tt.want {
			t.Errorf("ContrastValue(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestContrastType(t *testing.T) {
	tests := map[int]Contrast{
		255: Black,
		126: Black,
		125: White,
		0:   White,
	}
	for in, want := range tests {
		if got := ContrastType(in); got != want {
			t.Errorf("ContrastType(%d) = %s, want %s", in, got, want)
		}
	}
	if ContrastType(ContrastValue(RGB{255, 255, 255})) != Black {
		t.Error("white background should get black text")
	}
	if ContrastType(ContrastValue(RGB{0, 0, 0})) != White {
		t.Error("black background should get white text")
	}
}

func TestCheckColor(t *testing.T) {
	for _, ok := range []string{"#fff", "#ffffff", "#ABC", "#a1B2c3"} {
		if err := CheckColor(ok); err != nil {
			t.Errorf("CheckColor(%q) unexpected error: %v", ok, err)
		}
	}

	for _, bad := range []string{"red", "fff", "#ffff", "#fffffff", "#ggg", "", " #fff"} {
		err := CheckColor(bad)
		var colorErr *appErrors.ErrInvalidColor
		if !errors.As(err, &colorErr) {
			t.Errorf("CheckColor(%q) expected ErrInvalidColor, got %v", bad, err)
			continue
		}
		if colorErr.Color != bad {
			t.Errorf("expected offending value %q, got %q", bad, colorErr.Color)
		}
	}

	if err := CheckColor("red"); err == nil || err.Error() != "invalid hex color: red" {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestHex2RGB(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
	}{
		{"#ffffff", RGB{255, 255, 255}},
		{"#000000", RGB{0, 0, 0}},
		{"#FF8000", RGB{255, 128, 0}},
		{"#fff", RGB{15, 15, 15}},
		{"#a0C", RGB{10, 0, 12}},
	}
	for _, tt := range tests {
		got, err := Hex2RGB(tt.in)
		if err != nil {
			t.Fatalf("Hex2RGB(%q) unexpected error: %v", tt.in, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Hex2RGB(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestHex2RGBInvalid(t *testing.T) {
	got, err := Hex2RGB("red")
	var colorErr *appErrors.ErrInvalidColor
	if !errors.As(err, &colorErr) {
		t.Fatalf("expected ErrInvalidColor, got %v", err)
	}
	if got != (RGB{}) {
		t.Errorf("expected zero triple on error, got %v", got)
	}
}
