package attach

import (
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/yearglass/yearglass/internal/model"
	"github.com/yearglass/yearglass/internal/progress"
	"github.com/yearglass/yearglass/internal/shell"
)

type fakeSurface struct {
	handle model.SurfaceHandle
	ok     bool
	pushed []progress.Info
}

func (f *fakeSurface) NativeHandle() (model.SurfaceHandle, bool) {
	return f.handle, f.ok
}

func (f *fakeSurface) PushProgress(info progress.Info) {
	f.pushed = append(f.pushed, info)
}

// fakeLocator fails the first failUntil probes with ErrLayerUnavailable, then
// returns host. Simulates the settle delay after the WorkerW spawn message.
type fakeLocator struct {
	calls     int
	failUntil int
	host      model.HostHandle
}

func (f *fakeLocator) Locate() (model.HostHandle, error) {
	f.calls++
	if f.calls <= f.failUntil {
		return 0, fmt.Errorf("%w: not yet", shell.ErrLayerUnavailable)
	}
	return f.host, nil
}

type fakeReparenter struct {
	validHosts map[model.HostHandle]bool
	attachErr  error
	attaches   int
}

func (f *fakeReparenter) Attach(surface model.SurfaceHandle, host model.HostHandle) error {
	if f.attachErr != nil {
		return f.attachErr
	}
	if !f.ValidHost(host) {
		return fmt.Errorf("%w: host %#x is not a window", shell.ErrReparentFailed, uintptr(host))
	}
	f.attaches++
	return nil
}

func (f *fakeReparenter) ValidHost(host model.HostHandle) bool {
	return f.validHosts[host]
}

// fakeScheduler queues callbacks; tests execute them deterministically.
type fakeScheduler struct {
	queue []func()
}

func (f *fakeScheduler) Schedule(delay time.Duration, fn func()) {
	f.queue = append(f.queue, fn)
}

func (f *fakeScheduler) runNext() bool {
	if len(f.queue) == 0 {
		return false
	}
	fn := f.queue[0]
	f.queue = f.queue[1:]
	fn()
	return true
}

// drain executes queued callbacks until the controller settles. The budget
// guards against a retry chain that never terminates.
func drain(t *testing.T, s *fakeScheduler, c *Controller) {
	t.Helper()
	for i := 0; i < 200; i++ {
		if c.State().IsSettled() {
			return
		}
		if !s.runNext() {
			t.Fatal("scheduler queue empty while controller still attaching")
		}
	}
	t.Fatal("attach cycle did not settle within budget")
}

func newTestController(locator shell.Locator, reparenter shell.Reparenter) (*Controller, *fakeSurface, *fakeScheduler) {
	surface := &fakeSurface{handle: model.SurfaceHandle(0x100), ok: true}
	sched := &fakeScheduler{}
	logger := slog.New(slog.DiscardHandler)
	c := NewController(surface, locator, reparenter, sched, logger)
	return c, surface, sched
}

func TestController_AttachIsIdempotent(t *testing.T) {
	host := model.HostHandle(0x42)
	locator := &fakeLocator{host: host}
	reparenter := &fakeReparenter{validHosts: map[model.HostHandle]bool{host: true}}
	c, _, sched := newTestController(locator, reparenter)

	c.Start()
	drain(t, sched, c)

	if c.State() != model.StateAttached {
		t.Fatalf("Expected state Attached after startup, got %s", c.State())
	}

	// A second attach via manual refresh must land in Attached again
	c.Refresh()
	drain(t, sched, c)

	if c.State() != model.StateAttached {
		t.Errorf("Expected state Attached after refresh, got %s", c.State())
	}
	if reparenter.attaches != 2 {
		t.Errorf("Expected 2 reparent calls, got %d", reparenter.attaches)
	}
}

func TestController_ShellRestartReattaches(t *testing.T) {
	oldHost := model.HostHandle(0x42)
	newHost := model.HostHandle(0x99)
	locator := &fakeLocator{host: oldHost}
	reparenter := &fakeReparenter{validHosts: map[model.HostHandle]bool{oldHost: true}}
	c, _, sched := newTestController(locator, reparenter)

	var seen []model.AttachmentState
	c.SetStateCallback(func(s model.AttachmentState) {
		seen = append(seen, s)
	})

	c.Start()
	drain(t, sched, c)
	if c.State() != model.StateAttached {
		t.Fatalf("Expected state Attached, got %s", c.State())
	}

	// Simulate Explorer restart: the old host dies, a fresh one is locatable
	reparenter.validHosts[oldHost] = false
	reparenter.validHosts[newHost] = true
	locator.host = newHost

	// The scheduled revalidation cycle must notice and re-attach
	sched.runNext() // revalidate is first in the startup queue
	drain(t, sched, c)

	if c.State() != model.StateAttached {
		t.Fatalf("Expected re-attach after shell restart, got %s", c.State())
	}

	sawLost := false
	for _, s := range seen {
		if s == model.StateLost {
			sawLost = true
		}
	}
	if !sawLost {
		t.Error("Expected a Lost transition when the host vanished")
	}
}

func TestController_BoundedRetrySucceedsLate(t *testing.T) {
	host := model.HostHandle(0x42)
	locator := &fakeLocator{host: host, failUntil: 3}
	reparenter := &fakeReparenter{validHosts: map[model.HostHandle]bool{host: true}}
	c, _, sched := newTestController(locator, reparenter)
	c.maxLocateAttempts = 5

	c.Start()
	drain(t, sched, c)

	if c.State() != model.StateAttached {
		t.Errorf("Expected state Attached when layer appears within retry budget, got %s", c.State())
	}
	if locator.calls != 4 {
		t.Errorf("Expected 4 locate probes, got %d", locator.calls)
	}
	if c.Floating() {
		t.Error("Widget should not be floating after a successful attach")
	}
}

func TestController_BoundedRetryGivesUp(t *testing.T) {
	locator := &fakeLocator{failUntil: 1000}
	reparenter := &fakeReparenter{validHosts: map[model.HostHandle]bool{}}
	c, _, sched := newTestController(locator, reparenter)
	c.maxLocateAttempts = 3

	c.Start()
	drain(t, sched, c)

	if c.State() != model.StateLost {
		t.Errorf("Expected state Lost after exhausting retries, got %s", c.State())
	}
	if !c.Floating() {
		t.Error("Expected floating fallback after LayerUnavailable")
	}
	if locator.calls != 3 {
		t.Errorf("Expected exactly 3 locate probes, got %d", locator.calls)
	}

	// No further probes may be queued: run everything left and recheck
	probesAfterGiveUp := locator.calls
	for i := 0; i < 20; i++ {
		sched.runNext()
	}
	if locator.calls != probesAfterGiveUp {
		t.Errorf("Locate kept being probed after giving up: %d calls", locator.calls)
	}
}

func TestController_RefreshSettlesFromAnyState(t *testing.T) {
	host := model.HostHandle(0x42)

	states := []func() (*Controller, *fakeScheduler){
		// Detached: refresh before Start
		func() (*Controller, *fakeScheduler) {
			locator := &fakeLocator{host: host}
			reparenter := &fakeReparenter{validHosts: map[model.HostHandle]bool{host: true}}
			c, _, sched := newTestController(locator, reparenter)
			return c, sched
		},
		// Lost: exhausted retries first
		func() (*Controller, *fakeScheduler) {
			locator := &fakeLocator{host: host, failUntil: 2}
			reparenter := &fakeReparenter{validHosts: map[model.HostHandle]bool{host: true}}
			c, _, sched := newTestController(locator, reparenter)
			c.maxLocateAttempts = 2
			c.Start()
			drain(t, sched, c)
			if c.State() != model.StateLost {
				t.Fatalf("Setup expected Lost, got %s", c.State())
			}
			return c, sched
		},
		// Attached
		func() (*Controller, *fakeScheduler) {
			locator := &fakeLocator{host: host}
			reparenter := &fakeReparenter{validHosts: map[model.HostHandle]bool{host: true}}
			c, _, sched := newTestController(locator, reparenter)
			c.Start()
			drain(t, sched, c)
			return c, sched
		},
	}

	for i, setup := range states {
		c, sched := setup()
		c.Refresh()
		drain(t, sched, c)
		if !c.State().IsSettled() {
			t.Errorf("Case %d: refresh left state %s", i, c.State())
		}
		if c.State() != model.StateAttached && c.State() != model.StateLost {
			t.Errorf("Case %d: refresh must end Attached or Lost, got %s", i, c.State())
		}
	}
}

func TestController_InvalidHostNeverAttaches(t *testing.T) {
	host := model.HostHandle(0xBAD)
	locator := &fakeLocator{host: host}
	// Host is locatable but not a valid window: Attach rejects it
	reparenter := &fakeReparenter{validHosts: map[model.HostHandle]bool{}}
	c, _, sched := newTestController(locator, reparenter)
	c.maxLocateAttempts = 3

	var seen []model.AttachmentState
	c.SetStateCallback(func(s model.AttachmentState) {
		seen = append(seen, s)
	})

	c.Start()
	drain(t, sched, c)

	if c.State() == model.StateAttached {
		t.Error("Controller must not report Attached when reparenting fails")
	}
	for _, s := range seen {
		if s == model.StateAttached {
			t.Error("Attached state observed despite ReparentFailed")
		}
	}
	if reparenter.attaches != 0 {
		t.Errorf("Expected no successful reparent calls, got %d", reparenter.attaches)
	}
}

func TestController_MissingSurfaceHandleFails(t *testing.T) {
	host := model.HostHandle(0x42)
	locator := &fakeLocator{host: host}
	reparenter := &fakeReparenter{validHosts: map[model.HostHandle]bool{host: true}}
	surface := &fakeSurface{ok: false}
	sched := &fakeScheduler{}
	c := NewController(surface, locator, reparenter, sched, slog.New(slog.DiscardHandler))
	c.maxLocateAttempts = 2

	c.Start()
	drain(t, sched, c)

	if c.State() != model.StateLost {
		t.Errorf("Expected Lost without a native handle, got %s", c.State())
	}
}

func TestController_ProgressPushedOnStartAndTick(t *testing.T) {
	host := model.HostHandle(0x42)
	locator := &fakeLocator{host: host}
	reparenter := &fakeReparenter{validHosts: map[model.HostHandle]bool{host: true}}
	c, surface, sched := newTestController(locator, reparenter)
	c.now = func() time.Time {
		return time.Date(2025, time.July, 2, 12, 0, 0, 0, time.UTC)
	}

	c.Start()
	drain(t, sched, c)

	if len(surface.pushed) == 0 {
		t.Fatal("Expected a progress push on startup")
	}
	if surface.pushed[0].DayOfYear != 183 {
		t.Errorf("Expected day of year 183, got %d", surface.pushed[0].DayOfYear)
	}

	// Run the queued tick and expect another push
	before := len(surface.pushed)
	for i := 0; i < 5 && len(surface.pushed) == before; i++ {
		sched.runNext()
	}
	if len(surface.pushed) == before {
		t.Error("Expected the refresh tick to push progress")
	}
}

func TestController_StopHaltsScheduling(t *testing.T) {
	host := model.HostHandle(0x42)
	locator := &fakeLocator{host: host}
	reparenter := &fakeReparenter{validHosts: map[model.HostHandle]bool{host: true}}
	c, surface, sched := newTestController(locator, reparenter)

	c.Start()
	drain(t, sched, c)
	c.Stop()

	pushes := len(surface.pushed)
	queued := len(sched.queue)
	for i := 0; i < queued; i++ {
		sched.runNext()
	}
	if len(sched.queue) != 0 {
		t.Error("Stopped controller kept rescheduling callbacks")
	}
	if len(surface.pushed) != pushes {
		t.Error("Stopped controller kept pushing progress")
	}
}

func TestController_PreferFloatingSkipsAttach(t *testing.T) {
	host := model.HostHandle(0x42)
	locator := &fakeLocator{host: host}
	reparenter := &fakeReparenter{validHosts: map[model.HostHandle]bool{host: true}}
	c, surface, sched := newTestController(locator, reparenter)
	c.SetPreferFloating(true)

	c.Start()
	drain(t, sched, c)

	if locator.calls != 0 {
		t.Errorf("Expected no locate probes in floating mode, got %d", locator.calls)
	}
	if !c.Floating() {
		t.Error("Expected floating mode to be active")
	}
	if len(surface.pushed) == 0 {
		t.Error("Floating mode must still push progress")
	}

	// An explicit refresh overrides the preference for this session
	c.Refresh()
	drain(t, sched, c)
	if c.State() != model.StateAttached {
		t.Errorf("Expected manual refresh to attach, got %s", c.State())
	}
}

func TestController_ReparentErrorIsReported(t *testing.T) {
	host := model.HostHandle(0x42)
	locator := &fakeLocator{host: host}
	reparenter := &fakeReparenter{
		validHosts: map[model.HostHandle]bool{host: true},
		attachErr:  fmt.Errorf("%w: SetParent rejected", shell.ErrReparentFailed),
	}
	c, _, sched := newTestController(locator, reparenter)
	c.maxLocateAttempts = 2

	c.Start()
	drain(t, sched, c)

	if c.State() != model.StateLost {
		t.Errorf("Expected Lost after persistent ReparentFailed, got %s", c.State())
	}
	if !errors.Is(reparenter.attachErr, shell.ErrReparentFailed) {
		t.Error("Test fixture error should wrap ErrReparentFailed")
	}
}
