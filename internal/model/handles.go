package model

// HostHandle identifies the shell's wallpaper-hosting window (WorkerW). The
// shell owns its lifecycle: the handle is obtained, never owned, and may go
// stale when Explorer restarts.
type HostHandle uintptr

// SurfaceHandle identifies the application's own native window. It is created
// once at startup and lives for the whole process.
type SurfaceHandle uintptr

// IsZero reports whether the handle was never resolved.
func (h HostHandle) IsZero() bool {
	return h == 0
}

// IsZero reports whether the handle was never resolved.
func (s SurfaceHandle) IsZero() bool {
	return s == 0
}
