package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Loading button colour names resolved through the app theme
const (
	ColorNameLoadingDefault fyne.ThemeColorName = "loadingDefault"
	ColorNameLoadingFill    fyne.ThemeColorName = "loadingFill"
	ColorNameLoadingCircle  fyne.ThemeColorName = "loadingCircle"
	ColorNameLoadingText    fyne.ThemeColorName = "loadingText"
)

var (
	colorPrimary     = color.NRGBA{R: 0x07, G: 0xC2, B: 0xAA, A: 0xFF}
	colorPrimaryDark = color.NRGBA{R: 0x00, G: 0x78, B: 0x6D, A: 0xFF}
	colorAccent      = color.NRGBA{R: 0xFF, G: 0xC1, B: 0x07, A: 0xFF}
)

// CompactTheme defines a compact theme for the UI with reduced padding and the loading button palette
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case ColorNameLoadingDefault:
		return colorPrimary
	case ColorNameLoadingFill:
		return colorPrimaryDark
	case ColorNameLoadingCircle:
		return colorAccent
	case ColorNameLoadingText:
		return color.White
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255} // Green for completed
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255} // Red for errors
	case theme.ColorNameWarning:
		return colorAccent
	case theme.ColorNamePrimary:
		return colorPrimaryDark
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameSubHeadingText:
		return 14
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 3
	}

	return theme.DefaultTheme().Size(name)
}
