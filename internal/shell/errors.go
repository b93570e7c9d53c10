package shell

import "errors"

// Recoverable failure classes of the desktop-layer attachment. The controller
// matches on these with errors.Is; none of them should terminate the process.
var (
	// ErrLayerUnavailable means the wallpaper host layer never appeared, even
	// after asking the shell to spawn it.
	ErrLayerUnavailable = errors.New("shell: wallpaper host layer unavailable")

	// ErrReparentFailed means the native reparenting call was rejected, e.g.
	// because the host handle went stale between locate and attach.
	ErrReparentFailed = errors.New("shell: reparenting into host layer failed")

	// ErrShellRestarted means a previously valid host handle stopped being a
	// window mid-session, which happens when Explorer restarts.
	ErrShellRestarted = errors.New("shell: host layer window vanished")
)
