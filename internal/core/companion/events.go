package companion

import (
	"fmt"
	"time"
)

// State is the animation state the companion is in.
type State int

const (
	StateTyping State = iota
	StateWatching
	StateMouse
	StateIdle

	// StateCount is the number of valid states.
	StateCount
)

var stateNames = [StateCount]string{
	StateTyping:   "typing",
	StateWatching: "watching",
	StateMouse:    "mouse",
	StateIdle:     "idle",
}

// String returns the lower-case name used in logs and resource names.
func (state State) String() string {
	if !state.Valid() {
		return fmt.Sprintf("state(%d)", int(state))
	}
	return stateNames[state]
}

// Valid reports whether state is one of the known states.
func (state State) Valid() bool {
	return state >= 0 && state < StateCount
}

// ParseState resolves a state name.
func ParseState(name string) (State, error) {
	for index, candidate := range stateNames {
		if candidate == name {
			return State(index), nil
		}
	}
	return 0, fmt.Errorf("unknown state %q", name)
}

// EventType defines the type of machine event.
type EventType string

const (
	EventStateChange EventType = "state_change"
)

// Event represents a machine update for observers.
type Event struct {
	Type     EventType
	State    State
	Previous State
	Reason   string
	At       time.Time
}
