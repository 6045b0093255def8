package app

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// HexTheme provides the application theme in a fixed light or dark variant.
type HexTheme struct {
	Mode ThemeMode
}

var _ fyne.Theme = (*HexTheme)(nil)

// NewTheme returns the theme for mode.
func NewTheme(mode ThemeMode) *HexTheme {
	return &HexTheme{Mode: mode}
}

func (t *HexTheme) variant() fyne.ThemeVariant {
	if t.Mode == ThemeLight {
		return theme.VariantLight
	}
	return theme.VariantDark
}

func (t *HexTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	v := t.variant()
	switch name {
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0xCC, G: 0x85, B: 0xC5, A: 0xFF}
	case theme.ColorNameBackground:
		if v == theme.VariantLight {
			return color.NRGBA{R: 0xF4, G: 0xF1, B: 0xF4, A: 0xFF}
		}
		return color.NRGBA{R: 0x1E, G: 0x1B, B: 0x22, A: 0xFF}
	case theme.ColorNameError:
		return color.NRGBA{R: 0xE0, G: 0x5A, B: 0x5A, A: 0xFF}
	default:
		return theme.DefaultTheme().Color(name, v)
	}
}

// Font always uses the monospace face so the padded output columns line up.
func (t *HexTheme) Font(style fyne.TextStyle) fyne.Resource {
	style.Monospace = true
	return theme.DefaultTheme().Font(style)
}

func (t *HexTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *HexTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNameInputRadius:
		return 6
	default:
		return theme.DefaultTheme().Size(name)
	}
}
