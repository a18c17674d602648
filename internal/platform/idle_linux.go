package platform

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"cutekm/internal/input"
)

type xprintidleProvider struct {
	path string
}

func newIdleProvider() input.IdleChecker {
	if strings.EqualFold(os.Getenv("XDG_SESSION_TYPE"), "wayland") {
		return unsupportedIdleProvider{}
	}
	path, err := exec.LookPath("xprintidle")
	if err != nil {
		return unsupportedIdleProvider{}
	}
	return &xprintidleProvider{path: path}
}

func (provider *xprintidleProvider) IdleDuration() (time.Duration, error) {
	output, err := exec.Command(provider.path).Output()
	if err != nil {
		return 0, fmt.Errorf("xprintidle: %w", err)
	}
	return parseIdle(string(output), time.Millisecond)
}
