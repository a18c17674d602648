//go:build darwin

package input

import (
	"fmt"
	"log"
	"sync"

	"github.com/ebitengine/purego"
)

const applicationServices = "/System/Library/Frameworks/ApplicationServices.framework/ApplicationServices"

var (
	trustQueryOnce     sync.Once
	trustQueryErr      error
	axIsProcessTrusted func() bool
)

// processTrusted reports whether the user granted this process the
// Accessibility permission that event taps need.
var processTrusted = func() (bool, error) {
	trustQueryOnce.Do(func() {
		library, err := purego.Dlopen(applicationServices, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
		if err != nil {
			trustQueryErr = err
			return
		}
		symbol, err := purego.Dlsym(library, "AXIsProcessTrusted")
		if err != nil {
			trustQueryErr = err
			return
		}
		purego.RegisterFunc(&axIsProcessTrusted, symbol)
	})
	if trustQueryErr != nil {
		return false, trustQueryErr
	}
	return axIsProcessTrusted(), nil
}

// hookSupported rejects processes without the Accessibility permission:
// the event tap installs silently but never receives input.
func hookSupported() error {
	trusted, err := processTrusted()
	if err != nil {
		log.Printf("accessibility query: %v", err)
		return nil
	}
	if !trusted {
		return fmt.Errorf("accessibility permission not granted: %w", ErrHookUnsupported)
	}
	return nil
}
