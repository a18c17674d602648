package companion

import (
	"time"

	"cutekm/internal/core/model"
)

// Timestamps holds the last observed input times.
type Timestamps struct {
	Typing time.Time
	Mouse  time.Time
	Input  time.Time
}

// Machine decides which animation state is active.
// It is owned by the UI loop and is not safe for concurrent use.
type Machine struct {
	config     model.BehaviorConfig
	state      State
	frameIndex int
	last       Timestamps
	events     []chan Event
}

// New creates a machine in the watching state. startedAt seeds the last
// input time so the idle timeout counts from launch.
func New(config model.BehaviorConfig, startedAt time.Time) *Machine {
	defaults := model.DefaultAppConfig().Behavior
	if config.CheckInterval <= 0 {
		config.CheckInterval = defaults.CheckInterval
	}
	if config.IdleAfter <= 0 {
		config.IdleAfter = defaults.IdleAfter
	}
	if config.TypingTimeout <= 0 {
		config.TypingTimeout = defaults.TypingTimeout
	}
	if config.MouseTimeout <= 0 {
		config.MouseTimeout = defaults.MouseTimeout
	}
	if config.MouseTypingGuard <= 0 {
		config.MouseTypingGuard = defaults.MouseTypingGuard
	}

	return &Machine{
		config: config,
		state:  StateWatching,
		last:   Timestamps{Input: startedAt},
	}
}

// Config returns the effective behavior configuration.
func (machine *Machine) Config() model.BehaviorConfig {
	return machine.config
}

// State returns the active state.
func (machine *Machine) State() State {
	return machine.state
}

// FrameIndex returns the cursor into the active frame set.
func (machine *Machine) FrameIndex() int {
	return machine.frameIndex
}

// Timestamps returns the last observed input times.
func (machine *Machine) Timestamps() Timestamps {
	return machine.last
}

// Subscribe registers a new observer channel.
func (machine *Machine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	machine.events = append(machine.events, ch)
	return ch
}

// Close closes all observer channels.
func (machine *Machine) Close() {
	events := machine.events
	machine.events = nil
	for _, ch := range events {
		close(ch)
	}
}

// KeyPressed records a key press and switches to typing.
func (machine *Machine) KeyPressed(at time.Time) {
	at = latest(machine.last.Typing, at)
	machine.last.Typing = at
	machine.last.Input = latest(machine.last.Input, at)
	machine.SwitchTo(StateTyping, at, "key press")
}

// MouseMoved records mouse movement and switches to the mouse state
// unless typing happened within the guard window.
func (machine *Machine) MouseMoved(at time.Time) {
	at = latest(machine.last.Mouse, at)
	machine.last.Mouse = at
	machine.last.Input = latest(machine.last.Input, at)
	if machine.state != StateMouse && at.Sub(machine.last.Typing) > machine.config.MouseTypingGuard {
		machine.SwitchTo(StateMouse, at, "mouse move")
	}
}

// InputObserved records input of an unknown kind. It only delays the idle
// timeout and never changes the state.
func (machine *Machine) InputObserved(at time.Time) {
	machine.last.Input = latest(machine.last.Input, at)
}

// Check applies the timeout rules. Only the first matching rule fires.
func (machine *Machine) Check(now time.Time) {
	switch {
	case now.Sub(machine.last.Input) >= machine.config.IdleAfter && machine.state != StateIdle:
		machine.SwitchTo(StateIdle, now, "idle timeout")
	case machine.state == StateTyping && now.Sub(machine.last.Typing) > machine.config.TypingTimeout:
		machine.SwitchTo(StateWatching, now, "typing timeout")
	case machine.state == StateMouse &&
		now.Sub(machine.last.Mouse) > machine.config.MouseTimeout &&
		now.Sub(machine.last.Typing) > machine.config.MouseTimeout:
		machine.SwitchTo(StateWatching, now, "mouse timeout")
	}
}

// SwitchTo moves to target and rewinds the frame cursor. It reports false
// when target is already active or unknown.
func (machine *Machine) SwitchTo(target State, at time.Time, reason string) bool {
	if !target.Valid() || machine.state == target {
		return false
	}
	previous := machine.state
	machine.state = target
	machine.frameIndex = 0

	machine.emit(Event{
		Type:     EventStateChange,
		State:    target,
		Previous: previous,
		Reason:   reason,
		At:       at,
	})
	return true
}

// Advance steps the frame cursor within a set of the given length.
func (machine *Machine) Advance(length int) {
	if length <= 0 {
		return
	}
	machine.frameIndex = (machine.frameIndex + 1) % length
}

func (machine *Machine) emit(event Event) {
	for _, ch := range machine.events {
		select {
		case ch <- event:
		default:
		}
	}
}

func latest(previous, at time.Time) time.Time {
	if at.Before(previous) {
		return previous
	}
	return at
}
