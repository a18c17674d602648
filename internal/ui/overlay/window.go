// Package overlay renders the companion in a borderless, transparent,
// always-on-top ebiten window.
package overlay

import (
	"image"
	"runtime"
	"time"

	"cutekm/internal/core/model"
	"cutekm/internal/ui/shell"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Frame is a sprite image together with the decoded pixels used for
// hit testing.
type Frame struct {
	Image *ebiten.Image
	Mask  image.Image
}

// NewFrame uploads img for drawing.
func NewFrame(img image.Image) Frame {
	return Frame{Image: ebiten.NewImageFromImage(img), Mask: img}
}

// Window is the ebiten game hosting the sprite.
type Window struct {
	config     model.WindowConfig
	controller *shell.Controller
	sprite     Frame
	now        func() time.Time
}

type ebitenBackend struct{}

func (ebitenBackend) Position() image.Point {
	x, y := ebiten.WindowPosition()
	return image.Pt(x, y)
}

func (ebitenBackend) SetPosition(position image.Point) {
	ebiten.SetWindowPosition(position.X, position.Y)
}

func (ebitenBackend) SetPassthrough(enabled bool) {
	ebiten.SetWindowMousePassthrough(enabled)
}

// Configure applies the window attributes and returns a hidden shell
// placed at the bottom-left of the work area. workArea is in physical
// pixels; an empty rectangle falls back to the primary monitor bounds.
// It must be called before Run.
func Configure(config model.WindowConfig, workArea image.Rectangle) *shell.Shell {
	ebiten.SetWindowTitle(config.Title)
	ebiten.SetWindowSize(config.Width, config.Height)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetRunnableOnUnfocused(true)

	area := scaleRect(workArea, PointerScale())
	if area.Empty() {
		width, height := ebiten.Monitor().Size()
		area = image.Rect(0, 0, width, height)
	}
	return shell.New(ebitenBackend{}, shell.InitialPosition(area, config))
}

// PointerScale converts physical screen pixels, as reported by the global
// hook and the OS work area, into ebiten window coordinates. macOS already
// reports points.
func PointerScale() float64 {
	if runtime.GOOS == "darwin" {
		return 1
	}
	factor := ebiten.Monitor().DeviceScaleFactor()
	if factor <= 0 {
		return 1
	}
	return 1 / factor
}

func scaleRect(area image.Rectangle, scale float64) image.Rectangle {
	return image.Rect(
		int(float64(area.Min.X)*scale),
		int(float64(area.Min.Y)*scale),
		int(float64(area.Max.X)*scale),
		int(float64(area.Max.Y)*scale),
	)
}

// New creates the sprite window and installs its sprite hit test.
func New(config model.WindowConfig, controller *shell.Controller) *Window {
	overlay := &Window{
		config:     config,
		controller: controller,
		now:        time.Now,
	}
	controller.Shell().SetHitTest(overlay.hitSprite)
	return overlay
}

// SetSprite replaces the frame being shown. It is called from Update.
func (overlay *Window) SetSprite(frame Frame) {
	overlay.sprite = frame
}

// Run blocks on the ebiten loop until quit is requested.
func (overlay *Window) Run() error {
	return ebiten.RunGameWithOptions(overlay, &ebiten.RunGameOptions{
		ScreenTransparent: true,
		SkipTaskbar:       true,
		InitUnfocused:     true,
	})
}

// Update implements ebiten.Game.
func (overlay *Window) Update() error {
	if !overlay.controller.Step(overlay.now()) {
		return ebiten.Termination
	}
	overlay.handlePointer()
	return nil
}

// Draw implements ebiten.Game.
func (overlay *Window) Draw(screen *ebiten.Image) {
	if overlay.sprite.Image == nil || !overlay.controller.Shell().Visible() {
		return
	}
	bounds := overlay.sprite.Image.Bounds()
	if bounds.Empty() {
		return
	}

	options := &ebiten.DrawImageOptions{}
	options.GeoM.Scale(
		float64(overlay.config.Width)/float64(bounds.Dx()),
		float64(overlay.config.Height)/float64(bounds.Dy()),
	)
	options.Filter = ebiten.FilterLinear
	screen.DrawImage(overlay.sprite.Image, options)
}

// Layout implements ebiten.Game.
func (overlay *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return overlay.config.Width, overlay.config.Height
}

func (overlay *Window) handlePointer() {
	windowShell := overlay.controller.Shell()
	if !windowShell.Visible() {
		return
	}

	cursorX, cursorY := ebiten.CursorPosition()
	windowX, windowY := ebiten.WindowPosition()
	screenPoint := image.Pt(windowX+cursorX, windowY+cursorY)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if overlay.hitSprite(image.Pt(cursorX, cursorY)) {
			windowShell.PointerPressed(screenPoint)
		}
	case windowShell.Dragging() && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		windowShell.PointerMoved(screenPoint)
	case windowShell.Dragging():
		windowShell.PointerReleased()
	}
}

// hitSprite reports whether the window point covers an opaque sprite pixel.
func (overlay *Window) hitSprite(local image.Point) bool {
	return shell.MaskCovers(overlay.sprite.Mask, local, overlay.config.Width, overlay.config.Height)
}
