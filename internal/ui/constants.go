package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Text fragments
const (
	CaptionText        = "YEAR PROGRESS"
	PercentLabelFormat = "%.1f%%"
	TrayRefreshLabel   = "Refresh"
	TrayAttachLabel    = "Attach to desktop"
	TrayAcrylicLabel   = "Acrylic blur"
	TrayAutostartLabel = "Start with Windows"
	TrayQuitLabel      = "Quit"
)

// Layout sizing (logical fyne units)
const (
	CaptionTextSize float32 = 11
	PercentTextSize float32 = 26

	// Vertical room reserved under the dot grid for the two labels
	TextBlockHeight float32 = 58

	// Gap between the caption and the percentage label
	LabelSpacing float32 = 4
)

// Delays
const (
	// The native window handle only exists once the window is shown; the
	// first attach is delayed slightly, like any wallpaper tool does.
	AttachStartDelay = 100 * time.Millisecond
)

// Tray icon sizing
const (
	TrayIconSize = 64
)
