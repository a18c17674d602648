package platform

import (
	"errors"
	"fmt"
	"image"
	"strconv"
	"strings"
)

// ErrWorkAreaUnsupported indicates the desktop work area cannot be queried.
var ErrWorkAreaUnsupported = errors.New("work area unsupported")

// WorkArea returns the primary display bounds minus taskbars and docks, in
// physical pixels.
func WorkArea() (image.Rectangle, error) {
	return workArea()
}

// parseNetWorkArea reads the first desktop of an xprop _NET_WORKAREA line:
// "_NET_WORKAREA(CARDINAL) = x, y, width, height, ...".
func parseNetWorkArea(output string) (image.Rectangle, error) {
	_, values, found := strings.Cut(output, "=")
	if !found {
		return image.Rectangle{}, fmt.Errorf("parse work area %q: no values", strings.TrimSpace(output))
	}
	fields := strings.Split(values, ",")
	if len(fields) < 4 {
		return image.Rectangle{}, fmt.Errorf("parse work area %q: want 4 values", strings.TrimSpace(output))
	}
	var numbers [4]int
	for index := range numbers {
		value, err := strconv.Atoi(strings.TrimSpace(fields[index]))
		if err != nil {
			return image.Rectangle{}, fmt.Errorf("parse work area: %w", err)
		}
		numbers[index] = value
	}
	if numbers[2] <= 0 || numbers[3] <= 0 {
		return image.Rectangle{}, fmt.Errorf("parse work area: empty %dx%d", numbers[2], numbers[3])
	}
	return image.Rect(numbers[0], numbers[1], numbers[0]+numbers[2], numbers[1]+numbers[3]), nil
}
