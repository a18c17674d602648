package input

import (
	"fmt"
	"sync"
	"time"

	hook "github.com/robotn/gohook"
)

const defaultHookBuffer = 512

// GlobalHook is a Source backed by a process-wide OS hook.
type GlobalHook struct {
	buffer  int
	now     func() time.Time
	mu      sync.Mutex
	running bool
	done    chan struct{}
}

// NewGlobalHook creates a hook source. Events that do not fit in buffer
// are dropped.
func NewGlobalHook(buffer int) *GlobalHook {
	if buffer <= 0 {
		buffer = defaultHookBuffer
	}
	return &GlobalHook{buffer: buffer, now: time.Now}
}

// Start installs the OS hook.
func (source *GlobalHook) Start() (<-chan Event, error) {
	source.mu.Lock()
	defer source.mu.Unlock()
	if source.running {
		return nil, fmt.Errorf("input hook already running")
	}
	if err := hookSupported(); err != nil {
		return nil, err
	}

	raw := hook.Start()
	if raw == nil {
		return nil, fmt.Errorf("input hook: no event stream")
	}

	out := make(chan Event, source.buffer)
	source.done = make(chan struct{})
	source.running = true
	go source.forward(raw, out, source.done)
	return out, nil
}

// Stop removes the OS hook.
func (source *GlobalHook) Stop() {
	source.mu.Lock()
	defer source.mu.Unlock()
	if !source.running {
		return
	}
	source.running = false
	close(source.done)
	hook.End()
}

func (source *GlobalHook) forward(raw chan hook.Event, out chan<- Event, done <-chan struct{}) {
	defer close(out)
	for {
		select {
		case <-done:
			return
		case rawEvent, ok := <-raw:
			if !ok {
				return
			}
			event, ok := translate(rawEvent, source.now)
			if !ok {
				continue
			}
			select {
			case out <- event:
			default:
			}
		}
	}
}

// translate maps a hook event to an input event. Key presses are the
// typed-character events; drags count as mouse movement.
func translate(rawEvent hook.Event, now func() time.Time) (Event, bool) {
	var kind EventKind
	switch rawEvent.Kind {
	case hook.KeyDown:
		kind = KeyPress
	case hook.MouseMove, hook.MouseDrag:
		kind = MouseMove
	default:
		return Event{}, false
	}

	at := rawEvent.When
	if at.IsZero() {
		at = now()
	}
	return Event{
		Kind: kind,
		At:   at,
		X:    int(rawEvent.X),
		Y:    int(rawEvent.Y),
	}, true
}
