package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// PublisherTheme is a compact theme using the Play console palette
type PublisherTheme struct{}

// NewPublisherTheme creates the application theme
func NewPublisherTheme() fyne.Theme {
	return &PublisherTheme{}
}

// Color returns theme colors
func (t *PublisherTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameSuccess:
		return color.RGBA{R: 1, G: 135, B: 95, A: 255} // Play green
	case theme.ColorNameError:
		return color.RGBA{R: 217, G: 48, B: 37, A: 255}
	case theme.ColorNameWarning:
		return color.RGBA{R: 249, G: 171, B: 0, A: 255}
	case theme.ColorNameFocus:
		return color.RGBA{R: 1, G: 135, B: 95, A: 96}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 32, G: 33, B: 36, A: 255}
		}
		return color.RGBA{R: 248, G: 249, B: 250, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *PublisherTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *PublisherTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes; the form is denser than the default
func (t *PublisherTheme) Size(name fyne.ThemeSizeName) float32 {
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
		return 17
	case theme.SizeNameSubHeadingText:
		return 14
	case theme.SizeNameInputRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}
