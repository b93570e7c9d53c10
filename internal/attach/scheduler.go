package attach

import (
	"time"

	"fyne.io/fyne/v2"
)

// UIScheduler runs deferred callbacks on the fyne UI thread. Native window
// handles must only be touched there, and marshaling through fyne.Do keeps
// the controller single-threaded without any blocking sleeps.
type UIScheduler struct{}

// NewUIScheduler creates the production scheduler.
func NewUIScheduler() *UIScheduler {
	return &UIScheduler{}
}

// Schedule invokes fn on the UI thread after the given delay.
func (s *UIScheduler) Schedule(delay time.Duration, fn func()) {
	time.AfterFunc(delay, func() {
		fyne.Do(fn)
	})
}
