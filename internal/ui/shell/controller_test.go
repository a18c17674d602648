package shell

import (
	"image"
	"testing"
	"time"

	"cutekm/internal/core/companion"
	"cutekm/internal/core/model"
	"cutekm/internal/input"
)

type channelSource struct {
	events chan input.Event
	err    error
}

func (source *channelSource) Start() (<-chan input.Event, error) {
	if source.err != nil {
		return nil, source.err
	}
	return source.events, nil
}

func (source *channelSource) Stop() {}

type countingAnimator struct {
	ticks int
}

func (animator *countingAnimator) Tick() bool {
	animator.ticks++
	return true
}

type fixedIdle struct {
	idle time.Duration
}

func (checker *fixedIdle) IdleDuration() (time.Duration, error) {
	return checker.idle, nil
}

type harness struct {
	controller *Controller
	machine    *companion.Machine
	source     *channelSource
	animator   *countingAnimator
	backend    *fakeBackend
	start      time.Time
}

func newHarness(t *testing.T, sourceErr error) *harness {
	t.Helper()
	start := time.Unix(50_000, 0)
	config := model.DefaultAppConfig()
	machine := companion.New(config.Behavior, start)
	source := &channelSource{events: make(chan input.Event, 64), err: sourceErr}
	monitor := input.NewMonitor(source)
	if err := monitor.Start(); err != nil && sourceErr == nil {
		t.Fatalf("monitor start: %v", err)
	}
	backend := &fakeBackend{}
	animator := &countingAnimator{}
	controller := NewController(New(backend, image.Pt(10, 850)), machine, monitor, animator, config.Animation.FrameInterval)
	controller.Step(start)
	return &harness{
		controller: controller,
		machine:    machine,
		source:     source,
		animator:   animator,
		backend:    backend,
		start:      start,
	}
}

func (h *harness) at(offset time.Duration) time.Time {
	return h.start.Add(offset)
}

func TestStepTicksAnimatorEvery100ms(t *testing.T) {
	h := newHarness(t, nil)

	for ms := 16; ms <= 1000; ms += 16 {
		h.controller.Step(h.at(time.Duration(ms) * time.Millisecond))
	}
	if h.animator.ticks != 9 {
		t.Fatalf("ticks = %d, want 9", h.animator.ticks)
	}
}

func TestKeyPressThenTimeout(t *testing.T) {
	h := newHarness(t, nil)

	h.source.events <- input.Event{Kind: input.KeyPress, At: h.at(100 * time.Millisecond)}
	h.controller.Step(h.at(116 * time.Millisecond))
	if h.machine.State() != companion.StateTyping {
		t.Fatalf("state = %v, want typing", h.machine.State())
	}

	h.controller.Step(h.at(1000 * time.Millisecond))
	if h.machine.State() != companion.StateTyping {
		t.Fatalf("state at 1.0s = %v, want typing", h.machine.State())
	}
	h.controller.Step(h.at(1600 * time.Millisecond))
	if h.machine.State() != companion.StateWatching {
		t.Fatalf("state at 1.6s = %v, want watching", h.machine.State())
	}
}

func TestIdleThenMouse(t *testing.T) {
	h := newHarness(t, nil)

	h.controller.Step(h.at(125 * time.Second))
	if h.machine.State() != companion.StateIdle {
		t.Fatalf("state = %v, want idle", h.machine.State())
	}

	h.source.events <- input.Event{Kind: input.MouseMove, At: h.at(125*time.Second + 10*time.Millisecond)}
	h.controller.Step(h.at(125*time.Second + 16*time.Millisecond))
	if h.machine.State() != companion.StateMouse || h.machine.FrameIndex() != 0 {
		t.Fatalf("state = %v, index = %d", h.machine.State(), h.machine.FrameIndex())
	}
}

func TestToggleRequestIsAppliedOnStep(t *testing.T) {
	h := newHarness(t, nil)

	h.controller.RequestToggle()
	if h.controller.Shell().Visible() {
		t.Fatal("toggle applied outside the loop")
	}
	h.controller.Step(h.at(16 * time.Millisecond))
	if !h.controller.Shell().Visible() {
		t.Fatal("toggle request not applied")
	}
}

func TestQuitRequestStopsLoop(t *testing.T) {
	h := newHarness(t, nil)
	ticks := h.animator.ticks

	h.controller.RequestQuit()
	if h.controller.Step(h.at(time.Second)) {
		t.Fatal("Step kept running after quit")
	}
	if h.controller.Step(h.at(2 * time.Second)) {
		t.Fatal("quit is not sticky")
	}
	if h.animator.ticks != ticks {
		t.Fatal("animator ticked after quit")
	}
}

func TestIdleFallbackWithoutHook(t *testing.T) {
	h := newHarness(t, input.ErrHookUnsupported)
	checker := &fixedIdle{idle: time.Hour}
	h.controller.SetIdleFallback(input.NewIdlePoller(checker))

	h.controller.Step(h.at(500 * time.Millisecond))

	// Input 100s in; the check at 100.5s sees idle = 0.4s.
	checker.idle = 400 * time.Millisecond
	h.controller.Step(h.at(100*time.Second + 500*time.Millisecond))
	if got := h.machine.Timestamps().Input; !got.Equal(h.at(100*time.Second + 100*time.Millisecond)) {
		t.Fatalf("last input = %v", got)
	}

	checker.idle = time.Hour
	h.controller.Step(h.at(125 * time.Second))
	if h.machine.State() != companion.StateWatching {
		t.Fatalf("state = %v, want watching while fallback saw input", h.machine.State())
	}
	h.controller.Step(h.at(221 * time.Second))
	if h.machine.State() != companion.StateIdle {
		t.Fatalf("state = %v, want idle", h.machine.State())
	}
}

func TestHookPointerDrivesClickThrough(t *testing.T) {
	h := newHarness(t, nil)
	h.controller.Shell().SetHitTest(spriteBox)
	h.controller.RequestToggle()
	h.controller.Step(h.at(16 * time.Millisecond))

	// Window sits at (10,850); the sprite covers (60,890)-(160,990) on screen.
	h.source.events <- input.Event{Kind: input.MouseMove, At: h.at(20 * time.Millisecond), X: 20, Y: 860}
	h.controller.Step(h.at(32 * time.Millisecond))
	if !h.backend.passthrough {
		t.Fatal("background caught the pointer")
	}

	h.source.events <- input.Event{Kind: input.MouseMove, At: h.at(40 * time.Millisecond), X: 100, Y: 900}
	h.controller.Step(h.at(48 * time.Millisecond))
	if h.backend.passthrough {
		t.Fatal("sprite let the pointer through")
	}
}

func TestPointerScaleMapsHookCoordinates(t *testing.T) {
	h := newHarness(t, nil)
	h.controller.SetPointerScale(0.5)
	h.controller.Shell().SetHitTest(spriteBox)
	h.controller.RequestToggle()

	h.source.events <- input.Event{Kind: input.MouseMove, At: h.at(10 * time.Millisecond), X: 100, Y: 900}
	h.controller.Step(h.at(16 * time.Millisecond))
	if !h.backend.passthrough {
		t.Fatal("unscaled hook coordinates were used")
	}

	h.source.events <- input.Event{Kind: input.MouseMove, At: h.at(20 * time.Millisecond), X: 200, Y: 1800}
	h.controller.Step(h.at(32 * time.Millisecond))
	if h.backend.passthrough {
		t.Fatal("scaled pointer missed the sprite")
	}
}

func TestClickThroughRecomputedWithoutNewEvents(t *testing.T) {
	h := newHarness(t, nil)
	covered := false
	h.controller.Shell().SetHitTest(func(image.Point) bool { return covered })
	h.controller.RequestToggle()

	h.source.events <- input.Event{Kind: input.MouseMove, At: h.at(10 * time.Millisecond), X: 100, Y: 900}
	h.controller.Step(h.at(16 * time.Millisecond))
	if !h.backend.passthrough {
		t.Fatal("uncovered pixel caught the pointer")
	}

	covered = true
	h.controller.Step(h.at(32 * time.Millisecond))
	if h.backend.passthrough {
		t.Fatal("frame change under a still pointer was not picked up")
	}
}
