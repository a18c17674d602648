//go:build !linux && !darwin

package input

func hookSupported() error {
	return nil
}
