package platform

import (
	"fmt"
	"image"
	"os"
	"os/exec"
	"strings"
)

func workArea() (image.Rectangle, error) {
	if strings.EqualFold(os.Getenv("XDG_SESSION_TYPE"), "wayland") {
		return image.Rectangle{}, ErrWorkAreaUnsupported
	}
	path, err := exec.LookPath("xprop")
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("xprop: %w", ErrWorkAreaUnsupported)
	}
	output, err := exec.Command(path, "-root", "_NET_WORKAREA").Output()
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("xprop: %w", err)
	}
	return parseNetWorkArea(string(output))
}
