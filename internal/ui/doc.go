package ui

// Package ui contains the Fyne-based presentation surface: the translucent
// panel with the day-dot grid and percentage labels, the system tray menu,
// and the native-handle plumbing the attachment controller needs. It knows
// nothing about the attachment state machine; the controller drives it
// through PushProgress and reads back the native window handle.
