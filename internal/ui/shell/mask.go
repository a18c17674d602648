package shell

import "image"

// MaskCovers maps a point of a width×height window onto mask, which is
// drawn stretched to the window, and reports whether that pixel is opaque.
func MaskCovers(mask image.Image, local image.Point, width, height int) bool {
	if mask == nil || !local.In(image.Rect(0, 0, width, height)) {
		return false
	}
	bounds := mask.Bounds()
	if bounds.Empty() {
		return false
	}
	maskX := bounds.Min.X + local.X*bounds.Dx()/width
	maskY := bounds.Min.Y + local.Y*bounds.Dy()/height
	_, _, _, alpha := mask.At(maskX, maskY).RGBA()
	return alpha > 0
}
