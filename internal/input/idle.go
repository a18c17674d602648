package input

import (
	"errors"
	"time"
)

// ErrIdleUnsupported indicates idle detection is not available on this system.
var ErrIdleUnsupported = errors.New("idle detection unsupported")

// IdleChecker reports the duration of user inactivity.
type IdleChecker interface {
	IdleDuration() (time.Duration, error)
}

// IdlePoller turns OS idle durations into input observations. It stands
// in for the hook when the hook cannot be installed.
type IdlePoller struct {
	checker  IdleChecker
	lastPoll time.Time
	disabled bool
}

// NewIdlePoller creates a poller over checker.
func NewIdlePoller(checker IdleChecker) *IdlePoller {
	return &IdlePoller{checker: checker}
}

// Poll reports the time of the latest input when it happened after the
// previous poll. The first successful poll only arms the poller. After
// ErrIdleUnsupported the poller stays silent.
func (poller *IdlePoller) Poll(now time.Time) (time.Time, bool, error) {
	if poller.disabled || poller.checker == nil {
		return time.Time{}, false, nil
	}

	idle, err := poller.checker.IdleDuration()
	if err != nil {
		if errors.Is(err, ErrIdleUnsupported) {
			poller.disabled = true
		}
		return time.Time{}, false, err
	}
	if idle < 0 {
		idle = 0
	}

	first := poller.lastPoll.IsZero()
	sinceLast := now.Sub(poller.lastPoll)
	poller.lastPoll = now
	if first || idle >= sinceLast {
		return time.Time{}, false, nil
	}
	return now.Add(-idle), true, nil
}
