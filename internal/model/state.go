package model

// AttachmentState represents whether the widget window is currently embedded
// in the shell's wallpaper layer
type AttachmentState string

const (
	// StateDetached means no attachment has been attempted yet
	StateDetached AttachmentState = "Detached"

	// StateAttaching means the host layer is being located or the window is
	// being reparented
	StateAttaching AttachmentState = "Attaching"

	// StateAttached means the widget window is parented under a valid host
	StateAttached AttachmentState = "Attached"

	// StateLost means a previously valid host went away or an attach attempt
	// failed; a retry or manual refresh is required
	StateLost AttachmentState = "Lost"
)

// String returns the string representation of AttachmentState
func (as AttachmentState) String() string {
	return string(as)
}

// IsAttached returns true if the widget is currently embedded in the host layer
func (as AttachmentState) IsAttached() bool {
	return as == StateAttached
}

// InProgress returns true if an attach sequence is currently running
func (as AttachmentState) InProgress() bool {
	return as == StateAttaching
}

// IsSettled returns true if the state is a resting state (not mid-transition)
func (as AttachmentState) IsSettled() bool {
	return as != StateAttaching
}
