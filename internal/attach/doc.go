package attach

// Package attach implements the controller that owns the widget's attachment
// lifecycle. It drives the bounded locate-retry chain, reparents the surface
// into the wallpaper layer, re-validates the host handle to catch Explorer
// restarts, and pushes year-progress updates to the presentation surface.
// Everything runs on the UI thread via a Scheduler; there is exactly one
// mutator of the attachment state, so no locking is involved.
