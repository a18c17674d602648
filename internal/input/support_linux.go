//go:build linux

package input

import (
	"fmt"
	"os"
	"strings"
)

// hookSupported rejects sessions where an X11 hook cannot see other
// applications' input.
func hookSupported() error {
	sessionType := strings.ToLower(os.Getenv("XDG_SESSION_TYPE"))
	if sessionType == "wayland" {
		return fmt.Errorf("wayland session: %w", ErrHookUnsupported)
	}
	if os.Getenv("DISPLAY") == "" {
		return fmt.Errorf("no X display: %w", ErrHookUnsupported)
	}
	return nil
}
