package shell

import (
	"image"
	"log"
	"time"

	"cutekm/internal/core/companion"
	"cutekm/internal/core/schedule"
	"cutekm/internal/input"
)

// maxEventsPerStep bounds hook dispatch per frame so a burst of mouse
// moves cannot stall painting.
const maxEventsPerStep = 256

type request int

const (
	requestToggle request = iota
	requestQuit
)

// Animator paints the next frame.
type Animator interface {
	Tick() bool
}

// Controller runs one UI-loop step: tray requests, hook events, the state
// check and the animation tick. Only RequestToggle and RequestQuit may be
// called from other goroutines.
type Controller struct {
	shell    *Shell
	machine  *companion.Machine
	monitor  *input.Monitor
	fallback *input.IdlePoller
	animator Animator
	check    *schedule.Interval
	frame    *schedule.Interval
	requests chan request
	quitting bool

	pointer      image.Point
	pointerKnown bool
	pointerScale float64
}

// hookHandler feeds hook events to the machine and records the pointer.
type hookHandler struct {
	controller *Controller
}

func (handler hookHandler) KeyPressed(at time.Time) {
	handler.controller.machine.KeyPressed(at)
}

func (handler hookHandler) MouseMoved(at time.Time) {
	handler.controller.machine.MouseMoved(at)
}

func (handler hookHandler) PointerMoved(x, y int) {
	scale := handler.controller.pointerScale
	handler.controller.pointer = image.Pt(int(float64(x)*scale), int(float64(y)*scale))
	handler.controller.pointerKnown = true
}

// NewController wires the shell to the machine and its timers.
func NewController(shell *Shell, machine *companion.Machine, monitor *input.Monitor, animator Animator, frameInterval time.Duration) *Controller {
	return &Controller{
		shell:        shell,
		machine:      machine,
		monitor:      monitor,
		animator:     animator,
		check:        schedule.NewInterval(machine.Config().CheckInterval),
		frame:        schedule.NewInterval(frameInterval),
		requests:     make(chan request, 8),
		pointerScale: 1,
	}
}

// SetPointerScale converts hook coordinates into window coordinates.
func (controller *Controller) SetPointerScale(scale float64) {
	if scale > 0 {
		controller.pointerScale = scale
	}
}

// SetIdleFallback installs a poller used while the hook is not running.
func (controller *Controller) SetIdleFallback(poller *input.IdlePoller) {
	controller.fallback = poller
}

// Shell returns the window shell.
func (controller *Controller) Shell() *Shell {
	return controller.shell
}

// RequestToggle asks the UI loop to flip visibility.
func (controller *Controller) RequestToggle() {
	controller.send(requestToggle)
}

// RequestQuit asks the UI loop to terminate.
func (controller *Controller) RequestQuit() {
	controller.send(requestQuit)
}

// Step advances the loop to now. It reports false once quit was requested.
func (controller *Controller) Step(now time.Time) bool {
	controller.handleRequests()
	if controller.quitting {
		return false
	}

	if controller.monitor != nil {
		controller.monitor.Drain(hookHandler{controller: controller}, maxEventsPerStep)
	}
	if controller.pointerKnown {
		controller.shell.PointerAt(controller.pointer)
	}

	if controller.check.Due(now) {
		controller.pollFallback(now)
		controller.machine.Check(now)
	}
	if controller.frame.Due(now) && controller.animator != nil {
		controller.animator.Tick()
	}
	return true
}

func (controller *Controller) send(req request) {
	select {
	case controller.requests <- req:
	default:
	}
}

func (controller *Controller) handleRequests() {
	for {
		select {
		case req := <-controller.requests:
			switch req {
			case requestToggle:
				controller.shell.Toggle()
			case requestQuit:
				controller.quitting = true
			}
		default:
			return
		}
	}
}

func (controller *Controller) pollFallback(now time.Time) {
	if controller.fallback == nil || (controller.monitor != nil && controller.monitor.Running()) {
		return
	}
	at, ok, err := controller.fallback.Poll(now)
	if err != nil {
		log.Printf("idle fallback: %v", err)
		return
	}
	if ok {
		controller.machine.InputObserved(at)
	}
}
