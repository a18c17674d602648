// Package input observes keyboard and mouse activity outside the
// application window and hands it to the UI loop.
package input

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrHookUnsupported indicates a global input hook cannot be installed
// in the current session.
var ErrHookUnsupported = errors.New("global input hook unsupported")

// EventKind identifies an observed input.
type EventKind int

const (
	KeyPress EventKind = iota
	MouseMove
)

func (kind EventKind) String() string {
	switch kind {
	case KeyPress:
		return "key_press"
	case MouseMove:
		return "mouse_move"
	default:
		return fmt.Sprintf("kind(%d)", int(kind))
	}
}

// Event is a single observed input.
type Event struct {
	Kind EventKind
	At   time.Time
	X    int
	Y    int
}

// Source produces process-wide input events.
type Source interface {
	Start() (<-chan Event, error)
	Stop()
}

// Handler receives input on the UI loop.
type Handler interface {
	KeyPressed(at time.Time)
	MouseMoved(at time.Time)
}

// PointerHandler is implemented by handlers that also track where the
// pointer is on screen.
type PointerHandler interface {
	PointerMoved(x, y int)
}

// Monitor owns a Source for the lifetime of the application.
type Monitor struct {
	source   Source
	events   <-chan Event
	stopOnce sync.Once
	stopped  bool
}

// NewMonitor wraps source.
func NewMonitor(source Source) *Monitor {
	return &Monitor{source: source}
}

// Start installs the hook.
func (monitor *Monitor) Start() error {
	if monitor.events != nil {
		return nil
	}
	if monitor.stopped {
		return fmt.Errorf("start input monitor: already stopped")
	}
	events, err := monitor.source.Start()
	if err != nil {
		return fmt.Errorf("start input monitor: %w", err)
	}
	monitor.events = events
	return nil
}

// Running reports whether the hook is installed.
func (monitor *Monitor) Running() bool {
	return monitor.events != nil && !monitor.stopped
}

// Drain dispatches up to limit pending events to handler without
// blocking and returns how many were dispatched.
func (monitor *Monitor) Drain(handler Handler, limit int) int {
	if !monitor.Running() {
		return 0
	}
	dispatched := 0
	for limit <= 0 || dispatched < limit {
		select {
		case event, ok := <-monitor.events:
			if !ok {
				monitor.events = nil
				return dispatched
			}
			dispatch(handler, event)
			dispatched++
		default:
			return dispatched
		}
	}
	return dispatched
}

// Stop releases the hook. Only the first call has an effect.
func (monitor *Monitor) Stop() {
	monitor.stopOnce.Do(func() {
		monitor.stopped = true
		if monitor.events != nil {
			monitor.source.Stop()
		}
	})
}

func dispatch(handler Handler, event Event) {
	switch event.Kind {
	case KeyPress:
		handler.KeyPressed(event.At)
	case MouseMove:
		handler.MouseMoved(event.At)
		if pointer, ok := handler.(PointerHandler); ok {
			pointer.PointerMoved(event.X, event.Y)
		}
	}
}
