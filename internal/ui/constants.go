package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconStar     = "★"
	IconStarOff  = "☆"
	IconClose    = "×"
	IconError    = "❌"
	IconMenu     = "☰"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	DashPlaceholder     = "—"
	ProgressLabelFormat = "%d%%"
)

// Board interaction
const (
	MinZoom  float32 = 0.1
	MaxZoom  float32 = 10.0
	ZoomStep float32 = 1.25

	// The board is conceptually infinite; offsets are clamped to this
	// extent so transform math stays well inside float range.
	CanvasExtent float32 = 10_000_000

	// A secondary-button drag below this distance still counts as a
	// context click rather than a window move.
	WindowDragThreshold float32 = 5
)

// Layout sizing
const (
	SidebarWidth   float32 = 240
	BoardMinWidth  float32 = 640
	BoardMinHeight float32 = 480

	BackdropLabelTextSize float32 = 12
)

// Status bar behavior
const (
	StatusAutoClear = 5 * time.Second
)
