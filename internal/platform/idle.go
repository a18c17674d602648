package platform

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cutekm/internal/input"
)

// NewIdleProvider returns the OS idle-duration source for this platform.
func NewIdleProvider() input.IdleChecker {
	return newIdleProvider()
}

type unsupportedIdleProvider struct{}

func (unsupportedIdleProvider) IdleDuration() (time.Duration, error) {
	return 0, input.ErrIdleUnsupported
}

// parseIdle converts a decimal tool output into a duration of unit.
func parseIdle(output string, unit time.Duration) (time.Duration, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(output), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse idle time %q: %w", strings.TrimSpace(output), err)
	}
	if value < 0 {
		value = 0
	}
	return time.Duration(value) * unit, nil
}
