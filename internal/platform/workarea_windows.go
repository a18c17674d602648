package platform

import (
	"fmt"
	"image"
	"unsafe"
)

const spiGetWorkArea = 0x0030

var procSystemParametersInfo = user32.NewProc("SystemParametersInfoW")

type rect struct {
	left   int32
	top    int32
	right  int32
	bottom int32
}

func workArea() (image.Rectangle, error) {
	var area rect
	result, _, err := procSystemParametersInfo.Call(spiGetWorkArea, 0, uintptr(unsafe.Pointer(&area)), 0)
	if result == 0 {
		return image.Rectangle{}, fmt.Errorf("system parameters info: %w", err)
	}
	return image.Rect(int(area.left), int(area.top), int(area.right), int(area.bottom)), nil
}
