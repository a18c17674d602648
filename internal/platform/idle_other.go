//go:build !linux && !darwin && !windows

package platform

import "cutekm/internal/input"

func newIdleProvider() input.IdleChecker {
	return unsupportedIdleProvider{}
}
