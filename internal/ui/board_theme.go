package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// BoardTheme defines a dark theme for the UI tuned for viewing images: a
// near-black canvas, muted chrome, and compact paddings.
type BoardTheme struct{}

// NewBoardTheme creates a new board theme
func NewBoardTheme() fyne.Theme {
	return &BoardTheme{}
}

// Board-specific colors not covered by theme names.
var (
	ColorBoardCanvas     = color.RGBA{R: 43, G: 43, B: 43, A: 255}    // Board background
	ColorBackdropFill    = color.RGBA{R: 60, G: 60, B: 60, A: 255}    // Folder backdrop
	ColorBackdropLabel   = color.RGBA{R: 200, G: 200, B: 200, A: 255} // Folder label text
	ColorPlaceholderFill = color.RGBA{R: 80, G: 40, B: 40, A: 255}    // Failed decode tile
)

// Color returns theme colors
func (t *BoardTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255} // Green for completed
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255} // Red for errors
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255} // Amber for warnings
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255} // Blue for primary actions
	case theme.ColorNameBackground:
		return color.RGBA{R: 30, G: 30, B: 30, A: 255} // Near-black chrome
	case theme.ColorNameForeground:
		return color.RGBA{R: 230, G: 230, B: 230, A: 255} // Light text
	case theme.ColorNameInputBackground:
		return color.RGBA{R: 45, G: 45, B: 45, A: 255}
	}

	// Use dark variant defaults for everything else
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *BoardTheme) Font(style fyne.TextStyle) fyne.Resource {
	// Use default theme fonts
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *BoardTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	// Use default theme icons
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *BoardTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameLineSpacing:
		return 2 // Reduced from default 4
	case theme.SizeNameScrollBar:
		return 12 // Reduced from default 16
	case theme.SizeNameText:
		return 13 // Reduced from default 14
	case theme.SizeNameHeadingText:
		return 16 // Reduced from default 18
	case theme.SizeNameCaptionText:
		return 10 // Reduced from default 11
	case theme.SizeNameInputRadius:
		return 3 // Reduced from default 5
	case theme.SizeNameSelectionRadius:
		return 2 // Reduced from default 3
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}
