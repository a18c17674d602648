//go:build !linux && !windows

package platform

import "image"

func workArea() (image.Rectangle, error) {
	return image.Rectangle{}, ErrWorkAreaUnsupported
}
