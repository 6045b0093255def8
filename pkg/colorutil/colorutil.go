// Package colorutil provides the color model shared by the pickers and the output text.
//
// A Color is stored as three sRGB channels in [0,1]. HSL, HSV, RGB-8 and hex
// forms are derived on demand and never cached.
package colorutil

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats/scalar"
)

// Common overlay colors used throughout the application.
var (
	Black = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// ErrInvalidFormat is returned by ParseHex for anything other than "#rrggbb".
var ErrInvalidFormat = errors.New("invalid hex color format")

// Color is an opaque sRGB color with channels in [0,1].
type Color struct {
	R, G, B float64
}

// Predefined colors.
var (
	BlackColor = Color{}
	WhiteColor = Color{R: 1, G: 1, B: 1}
)

// New returns a color with each channel clamped to [0,1]. NaN becomes 0.
func New(r, g, b float64) Color {
	return Color{R: Clamp01(r), G: Clamp01(g), B: Clamp01(b)}
}

// Clamp01 clamps v to [0,1] and maps NaN to 0.
func Clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// NormalizeHue wraps h into [0,360). NaN and infinities map to 0.
func NormalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

func (c Color) sanitized() colorful.Color {
	return colorful.Color{R: Clamp01(c.R), G: Clamp01(c.G), B: Clamp01(c.B)}
}

func fromColorful(c colorful.Color) Color {
	return New(c.R, c.G, c.B)
}

// FromHSL builds a color from hue in degrees and saturation/lightness in [0,1].
func FromHSL(h, s, l float64) Color {
	return fromColorful(colorful.Hsl(NormalizeHue(h), Clamp01(s), Clamp01(l)))
}

// FromHSV builds a color from hue in degrees and saturation/value in [0,1].
func FromHSV(h, s, v float64) Color {
	return fromColorful(colorful.Hsv(NormalizeHue(h), Clamp01(s), Clamp01(v)))
}

// HSL returns hue in [0,360) and saturation/lightness in [0,1].
// Hue is 0 for achromatic colors.
func (c Color) HSL() (h, s, l float64) {
	h, s, l = c.sanitized().Hsl()
	return NormalizeHue(h), Clamp01(s), Clamp01(l)
}

// HSV returns hue in [0,360) and saturation/value in [0,1].
// Hue is 0 for achromatic colors.
func (c Color) HSV() (h, s, v float64) {
	h, s, v = c.sanitized().Hsv()
	return NormalizeHue(h), Clamp01(s), Clamp01(v)
}

func channel8(v float64) uint8 {
	return uint8(math.Round(Clamp01(v) * 255))
}

// RGB8 returns the channels as bytes, each round(c*255).
func (c Color) RGB8() [3]uint8 {
	return [3]uint8{channel8(c.R), channel8(c.G), channel8(c.B)}
}

// RGBA8 returns RGB8 plus an opaque alpha byte.
func (c Color) RGBA8() [4]uint8 {
	rgb := c.RGB8()
	return [4]uint8{rgb[0], rgb[1], rgb[2], 255}
}

// NRGBA converts to the image/color representation used for rendering.
func (c Color) NRGBA() color.NRGBA {
	rgba := c.RGBA8()
	return color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
}

// Hex returns the lowercase "#rrggbb" form.
func (c Color) Hex() string {
	rgb := c.RGB8()
	return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// ParseHex parses "#rrggbb", case-insensitively.
func ParseHex(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	for _, ch := range s[1:] {
		if !isHexDigit(ch) {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidFormat, s, err)
	}
	return fromColorful(c), nil
}

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// Round rounds x to the given number of decimals, halves away from zero.
// It is meant for display text only.
func Round(x float64, decimals int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return scalar.Round(x, decimals)
}

// AlmostEqual reports whether each channel of a and b differs by at most tol.
func AlmostEqual(a, b Color, tol float64) bool {
	return scalar.EqualWithinAbs(a.R, b.R, tol) &&
		scalar.EqualWithinAbs(a.G, b.G, tol) &&
		scalar.EqualWithinAbs(a.B, b.B, tol)
}
