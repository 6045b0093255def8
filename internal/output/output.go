// Package output renders a color as the text rows shown in the output panel
// and placed on the clipboard.
package output

import (
	"fmt"
	"strconv"
	"strings"

	"hexpick/pkg/colorutil"
)

// Format selects the family of text representations.
type Format int

const (
	// CSS produces hsl()/hsv()/rgb() functions with percentages and a bare hex.
	CSS Format = iota
	// Structured produces literal constructor calls with fractional channels.
	Structured
)

func (f Format) String() string {
	switch f {
	case CSS:
		return "css"
	case Structured:
		return "ori"
	default:
		return "unknown"
	}
}

// Toggle returns the other format.
func (f Format) Toggle() Format {
	if f == CSS {
		return Structured
	}
	return CSS
}

// ParseFormat accepts the names printed by Format.String.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "css":
		return CSS, nil
	case "ori", "structured":
		return Structured, nil
	default:
		return CSS, fmt.Errorf("unknown output format %q (want css or ori)", s)
	}
}

// Line is one row of the output panel.
type Line struct {
	Label  string // hsl, hsv, rgb or hex
	Shown  string // padded for column alignment
	Copied string // unpadded clipboard text
}

// Lines returns the HSL, HSV, RGB and hex rows for c in the given format.
func Lines(f Format, c colorutil.Color) []Line {
	if f == Structured {
		return []Line{structuredHSL(c), structuredHSV(c), structuredRGB(c), structuredHex(c)}
	}
	return []Line{cssHSL(c), cssHSV(c), cssRGB(c), cssHex(c)}
}

// Copied returns only the clipboard text of each row.
func Copied(f Format, c colorutil.Color) []string {
	lines := Lines(f, c)
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Copied
	}
	return out
}

func cssTriple(name string, h, a, b float64) Line {
	shown := fmt.Sprintf("%s(%-5.0f, %-4s, %-4s)", name, h,
		fmt.Sprintf("%.0f%%", a*100),
		fmt.Sprintf("%.0f%%", b*100))
	copied := fmt.Sprintf("%s(%s, %s%%, %s%%)", name,
		plain(colorutil.Round(h, 1)),
		plain(colorutil.Round(a*100, 1)),
		plain(colorutil.Round(b*100, 1)))
	return Line{Label: name, Shown: shown, Copied: copied}
}

func cssHSL(c colorutil.Color) Line {
	h, s, l := c.HSL()
	return cssTriple("hsl", h, s, l)
}

func cssHSV(c colorutil.Color) Line {
	h, s, v := c.HSV()
	return cssTriple("hsv", h, s, v)
}

func cssRGB(c colorutil.Color) Line {
	rgb := c.RGB8()
	return Line{
		Label:  "rgb",
		Shown:  fmt.Sprintf("rgb(%-5d, %-4d, %-4d)", rgb[0], rgb[1], rgb[2]),
		Copied: fmt.Sprintf("rgb(%d, %d, %d)", rgb[0], rgb[1], rgb[2]),
	}
}

func cssHex(c colorutil.Color) Line {
	hex := c.Hex()
	return Line{Label: "hex", Shown: hex, Copied: hex}
}

func structuredTriple(name string, a, b, c float64, aDecimals int) Line {
	x := literal(colorutil.Round(a, aDecimals))
	y := literal(colorutil.Round(b, 2))
	z := literal(colorutil.Round(c, 2))
	return Line{
		Label:  name,
		Shown:  fmt.Sprintf("%s(%-5s, %-4s, %-4s)", name, x, y, z),
		Copied: fmt.Sprintf("%s(%s, %s, %s)", name, x, y, z),
	}
}

func structuredHSL(c colorutil.Color) Line {
	h, s, l := c.HSL()
	return structuredTriple("hsl", h, s, l, 1)
}

func structuredHSV(c colorutil.Color) Line {
	h, s, v := c.HSV()
	return structuredTriple("hsv", h, s, v, 1)
}

func structuredRGB(c colorutil.Color) Line {
	return structuredTriple("rgb", c.R, c.G, c.B, 2)
}

func structuredHex(c colorutil.Color) Line {
	hex := fmt.Sprintf("hex(%q)", c.Hex())
	return Line{Label: "hex", Shown: hex, Copied: hex}
}

// plain prints the shortest decimal form, without a trailing ".0".
func plain(x float64) string {
	if x == 0 {
		x = 0 // drop negative zero
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// literal prints the shortest decimal form, always with a fractional part.
func literal(x float64) string {
	s := plain(x)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
