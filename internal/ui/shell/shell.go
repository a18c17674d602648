// Package shell holds the sprite window behavior that does not depend on
// a window toolkit: visibility, restore position and dragging.
package shell

import (
	"image"

	"cutekm/internal/core/model"
)

// Backend applies shell decisions to a native window.
type Backend interface {
	Position() image.Point
	SetPosition(position image.Point)
	SetPassthrough(enabled bool)
}

// HitTest reports whether a window-local point is covered by the sprite.
type HitTest func(local image.Point) bool

// Shell tracks visibility and drag state of the sprite window.
type Shell struct {
	backend     Backend
	hit         HitTest
	visible     bool
	passthrough bool
	restore     image.Point
	dragging    bool
	offset      image.Point
}

// New creates a hidden shell placed at initial.
func New(backend Backend, initial image.Point) *Shell {
	shell := &Shell{
		backend: backend,
		restore: initial,
	}
	backend.SetPosition(initial)
	shell.setPassthrough(true)
	return shell
}

// InitialPosition places the window above the bottom edge of the work area.
func InitialPosition(workArea image.Rectangle, config model.WindowConfig) image.Point {
	return image.Pt(config.InsetX, workArea.Max.Y-config.Height-config.InsetBottom)
}

// SetHitTest installs the sprite coverage test used by PointerAt.
func (shell *Shell) SetHitTest(hit HitTest) {
	shell.hit = hit
}

// Passthrough reports whether pointer input currently falls through the window.
func (shell *Shell) Passthrough() bool {
	return shell.passthrough
}

// Visible reports whether the sprite is shown.
func (shell *Shell) Visible() bool {
	return shell.visible
}

// RestorePosition returns where the window reappears when shown.
func (shell *Shell) RestorePosition() image.Point {
	return shell.restore
}

// Dragging reports whether a drag is in progress.
func (shell *Shell) Dragging() bool {
	return shell.dragging
}

// Toggle flips visibility.
func (shell *Shell) Toggle() {
	if shell.visible {
		shell.Hide()
		return
	}
	shell.Show()
}

// Show moves the window to its restore position and makes it interactive.
func (shell *Shell) Show() {
	if shell.visible {
		return
	}
	shell.visible = true
	shell.backend.SetPosition(shell.restore)
	shell.setPassthrough(false)
}

// Hide makes the window invisible to the pointer and ends any drag.
func (shell *Shell) Hide() {
	if !shell.visible {
		return
	}
	shell.visible = false
	shell.dragging = false
	shell.setPassthrough(true)
}

// PointerAt updates click-through for the pointer at a screen point: only
// opaque sprite pixels catch the pointer. A drag keeps the window solid.
func (shell *Shell) PointerAt(screen image.Point) {
	if !shell.visible || shell.hit == nil {
		return
	}
	if shell.dragging {
		shell.setPassthrough(false)
		return
	}
	shell.setPassthrough(!shell.hit(screen.Sub(shell.backend.Position())))
}

// PointerPressed starts a drag at the given screen point.
func (shell *Shell) PointerPressed(screen image.Point) {
	if !shell.visible {
		return
	}
	shell.dragging = true
	shell.offset = screen.Sub(shell.backend.Position())
}

// PointerMoved moves the window so the press point stays under the pointer.
func (shell *Shell) PointerMoved(screen image.Point) {
	if !shell.dragging {
		return
	}
	position := screen.Sub(shell.offset)
	shell.backend.SetPosition(position)
	shell.restore = position
}

// PointerReleased ends the drag.
func (shell *Shell) PointerReleased() {
	shell.dragging = false
}

func (shell *Shell) setPassthrough(enabled bool) {
	if shell.passthrough == enabled {
		return
	}
	shell.passthrough = enabled
	shell.backend.SetPassthrough(enabled)
}
