package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// PanelTheme pins the fyne background to the panel color so the window never
// flashes the stock theme behind the rounded rectangle.
type PanelTheme struct {
	background color.NRGBA
}

// NewPanelTheme creates a theme with the given panel background.
func NewPanelTheme(background color.NRGBA) fyne.Theme {
	return &PanelTheme{background: background}
}

// Color returns theme colors
func (t *PanelTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if name == theme.ColorNameBackground {
		return t.background
	}
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *PanelTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *PanelTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *PanelTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
