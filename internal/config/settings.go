package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyRefreshMinutes = "refresh_interval_minutes"
	KeyFloatingMode   = "floating_mode"
	KeyAcrylic        = "acrylic_blur"
	KeyAutostart      = "start_with_windows"
)

// Default values
const (
	DefaultRefreshMinutes = 1
	DefaultFloatingMode   = false
	DefaultAcrylic        = true
	DefaultAutostart      = false

	minRefreshMinutes = 1
	maxRefreshMinutes = 240
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetRefreshMinutes returns how often displayed progress is recomputed
func (s *Settings) GetRefreshMinutes() int {
	value := s.app.Preferences().Int(KeyRefreshMinutes)
	if value <= 0 {
		s.SetRefreshMinutes(DefaultRefreshMinutes)
		return DefaultRefreshMinutes
	}
	return value
}

// SetRefreshMinutes sets the progress refresh interval in minutes
func (s *Settings) SetRefreshMinutes(minutes int) {
	if minutes < minRefreshMinutes {
		minutes = minRefreshMinutes
	}
	if minutes > maxRefreshMinutes {
		minutes = maxRefreshMinutes
	}
	s.app.Preferences().SetInt(KeyRefreshMinutes, minutes)
}

// GetFloatingMode returns whether the widget should skip desktop embedding
func (s *Settings) GetFloatingMode() bool {
	return s.app.Preferences().BoolWithFallback(KeyFloatingMode, DefaultFloatingMode)
}

// SetFloatingMode sets whether the widget runs as a plain window
func (s *Settings) SetFloatingMode(floating bool) {
	s.app.Preferences().SetBool(KeyFloatingMode, floating)
}

// GetAcrylic returns whether the acrylic blur effect is enabled
func (s *Settings) GetAcrylic() bool {
	return s.app.Preferences().BoolWithFallback(KeyAcrylic, DefaultAcrylic)
}

// SetAcrylic sets whether the acrylic blur effect is enabled
func (s *Settings) SetAcrylic(enabled bool) {
	s.app.Preferences().SetBool(KeyAcrylic, enabled)
}

// GetAutostart returns whether the widget registers itself to start with the OS
func (s *Settings) GetAutostart() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutostart, DefaultAutostart)
}

// SetAutostart sets whether the widget starts with the OS
func (s *Settings) SetAutostart(enabled bool) {
	s.app.Preferences().SetBool(KeyAutostart, enabled)
}
