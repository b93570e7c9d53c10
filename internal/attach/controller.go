package attach

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/yearglass/yearglass/internal/model"
	"github.com/yearglass/yearglass/internal/progress"
	"github.com/yearglass/yearglass/internal/shell"
)

// Default timing of the attachment lifecycle
const (
	// DefaultMaxLocateAttempts bounds the locate-retry chain. WorkerW creation
	// is asynchronous after the spawn message, so a few misses are normal.
	DefaultMaxLocateAttempts = 10

	// DefaultLocateRetryInterval is the settle delay between locate probes
	DefaultLocateRetryInterval = 500 * time.Millisecond

	// DefaultRevalidateInterval is how often an attached host is checked for
	// shell restarts
	DefaultRevalidateInterval = 5 * time.Second

	// DefaultRefreshInterval is how often the displayed progress is recomputed.
	// The value only changes once per day; once per minute is already generous.
	DefaultRefreshInterval = time.Minute
)

// Surface is what the controller needs from the presentation layer: a native
// handle once the window exists, and a sink for progress updates.
type Surface interface {
	NativeHandle() (model.SurfaceHandle, bool)
	PushProgress(info progress.Info)
}

// Scheduler defers a callback without blocking. The production implementation
// marshals callbacks back onto the fyne UI thread; tests substitute a
// deterministic queue.
type Scheduler interface {
	Schedule(delay time.Duration, fn func())
}

// Controller orchestrates locate, attach, re-validation and progress refresh.
// All methods must be called from the UI thread.
type Controller struct {
	surface    Surface
	locator    shell.Locator
	reparenter shell.Reparenter
	sched      Scheduler
	logger     *slog.Logger
	now        func() time.Time

	state          model.AttachmentState
	host           model.HostHandle
	floating       bool
	preferFloating bool

	attempts   int
	generation int // invalidates scheduled probes from superseded cycles
	stopped    bool

	maxLocateAttempts   int
	locateRetryInterval time.Duration
	revalidateInterval  time.Duration
	refreshInterval     time.Duration

	onStateChange func(model.AttachmentState)
	onAttached    func(model.SurfaceHandle)
}

// NewController creates a controller in the Detached state.
func NewController(surface Surface, locator shell.Locator, reparenter shell.Reparenter, sched Scheduler, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		surface:             surface,
		locator:             locator,
		reparenter:          reparenter,
		sched:               sched,
		logger:              logger,
		now:                 time.Now,
		state:               model.StateDetached,
		maxLocateAttempts:   DefaultMaxLocateAttempts,
		locateRetryInterval: DefaultLocateRetryInterval,
		revalidateInterval:  DefaultRevalidateInterval,
		refreshInterval:     DefaultRefreshInterval,
	}
}

// SetRefreshInterval overrides how often progress is recomputed.
func (c *Controller) SetRefreshInterval(d time.Duration) {
	if d < time.Minute {
		d = time.Minute
	}
	c.refreshInterval = d
}

// SetPreferFloating makes Start skip desktop embedding entirely. A manual
// Refresh still attempts an attach; the user asked for it explicitly.
func (c *Controller) SetPreferFloating(v bool) {
	c.preferFloating = v
}

// SetStateCallback registers a hook invoked on every state transition.
func (c *Controller) SetStateCallback(fn func(model.AttachmentState)) {
	c.onStateChange = fn
}

// SetAttachedCallback registers a hook invoked after each successful attach,
// e.g. to re-apply composition effects that reparenting resets.
func (c *Controller) SetAttachedCallback(fn func(model.SurfaceHandle)) {
	c.onAttached = fn
}

// State returns the current attachment state.
func (c *Controller) State() model.AttachmentState {
	return c.state
}

// Floating reports whether the widget gave up on embedding and runs as a
// plain window.
func (c *Controller) Floating() bool {
	return c.floating
}

// Start pushes the first progress update, kicks off the initial attach cycle
// and schedules the steady-state revalidation and refresh loops.
func (c *Controller) Start() {
	c.pushProgress()
	if c.preferFloating {
		c.floating = true
		c.logger.Info("floating mode preferred, skipping desktop attach")
	} else {
		c.beginAttach("startup")
	}
	c.sched.Schedule(c.revalidateInterval, c.revalidate)
	c.sched.Schedule(c.refreshInterval, c.tick)
}

// Stop halts all rescheduling. Callbacks already queued become no-ops. The
// host window is shell-owned and needs no cleanup.
func (c *Controller) Stop() {
	c.stopped = true
	c.generation++
}

// Refresh forcibly re-runs the full locate+attach sequence. Wired to the tray
// action; valid in every state, including while a previous cycle is retrying.
func (c *Controller) Refresh() {
	if c.stopped {
		return
	}
	c.logger.Info("manual attachment refresh requested", "state", c.state)
	c.pushProgress()
	c.beginAttach("manual refresh")
}

// beginAttach starts a fresh locate+attach cycle, superseding any scheduled
// probes from an earlier cycle.
func (c *Controller) beginAttach(trigger string) {
	c.generation++
	c.attempts = 0
	c.setState(model.StateAttaching)
	c.logger.Debug("attach cycle started", "trigger", trigger)
	c.step(c.generation)
}

// step runs a single locate probe and either attaches, schedules the next
// probe, or gives up into the floating fallback.
func (c *Controller) step(gen int) {
	if c.stopped || gen != c.generation {
		return
	}

	c.attempts++
	host, err := c.locator.Locate()
	if err == nil {
		err = c.attachTo(host)
		if err == nil {
			return
		}
	}

	if c.attempts < c.maxLocateAttempts {
		c.logger.Debug("attach attempt failed, retrying",
			"attempt", c.attempts, "max", c.maxLocateAttempts, "error", err)
		c.sched.Schedule(c.locateRetryInterval, func() { c.step(gen) })
		return
	}

	// Out of attempts. Degrade to a floating window so the user still sees
	// progress information; a manual refresh can try again later.
	c.floating = true
	c.setState(model.StateLost)
	if errors.Is(err, shell.ErrLayerUnavailable) {
		c.logger.Warn("wallpaper layer unavailable, showing floating widget", "attempts", c.attempts, "error", err)
	} else {
		c.logger.Warn("attachment failed, showing floating widget", "attempts", c.attempts, "error", err)
	}
}

// attachTo reparents the surface under the located host.
func (c *Controller) attachTo(host model.HostHandle) error {
	surface, ok := c.surface.NativeHandle()
	if !ok {
		return fmt.Errorf("%w: no native surface handle", shell.ErrReparentFailed)
	}

	if err := c.reparenter.Attach(surface, host); err != nil {
		return err
	}

	c.host = host
	c.floating = false
	c.setState(model.StateAttached)
	if c.onAttached != nil {
		c.onAttached(surface)
	}
	return nil
}

// revalidate checks an attached host for shell restarts and reschedules itself.
func (c *Controller) revalidate() {
	if c.stopped {
		return
	}

	if c.state.IsAttached() && !c.reparenter.ValidHost(c.host) {
		err := fmt.Errorf("%w: host %#x", shell.ErrShellRestarted, uintptr(c.host))
		c.logger.Warn("shell restarted, re-attaching", "error", err)
		c.host = 0
		c.setState(model.StateLost)
		c.beginAttach("shell restart")
	}

	c.sched.Schedule(c.revalidateInterval, c.revalidate)
}

// tick recomputes the displayed progress and reschedules itself.
func (c *Controller) tick() {
	if c.stopped {
		return
	}
	c.pushProgress()
	c.sched.Schedule(c.refreshInterval, c.tick)
}

func (c *Controller) pushProgress() {
	c.surface.PushProgress(progress.Compute(c.now()))
}

func (c *Controller) setState(s model.AttachmentState) {
	if c.state == s {
		return
	}
	c.state = s
	if c.onStateChange != nil {
		c.onStateChange(s)
	}
}
