package model

import "time"

// BehaviorConfig contains the timing rules of the companion state machine.
type BehaviorConfig struct {
	CheckInterval time.Duration

	IdleAfter     time.Duration
	TypingTimeout time.Duration
	MouseTimeout  time.Duration

	// MouseTypingGuard suppresses the mouse state while typing is recent.
	// It is intentionally distinct from TypingTimeout.
	MouseTypingGuard time.Duration
}

// AnimationConfig contains sprite animation timing.
type AnimationConfig struct {
	FrameInterval time.Duration
}

// WindowConfig defines the sprite window geometry.
type WindowConfig struct {
	Title       string
	Width       int
	Height      int
	InsetX      int
	InsetBottom int
}

// TrayConfig defines the tray icon appearance.
type TrayConfig struct {
	Tooltip string
	Icon    string
}

// FrameSetConfig names the embedded resources of one animation state.
// Frames are resolved as Prefix_1 .. Prefix_Count.
type FrameSetConfig struct {
	State  string
	Prefix string
	Count  int
}

// AppConfig contains every constant the companion runs with.
type AppConfig struct {
	Behavior  BehaviorConfig
	Animation AnimationConfig
	Window    WindowConfig
	Tray      TrayConfig
	Frames    []FrameSetConfig
}

// DefaultAppConfig returns the built-in constants.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Behavior: BehaviorConfig{
			CheckInterval:    500 * time.Millisecond,
			IdleAfter:        120 * time.Second,
			TypingTimeout:    time.Second,
			MouseTimeout:     time.Second,
			MouseTypingGuard: 2 * time.Second,
		},
		Animation: AnimationConfig{
			FrameInterval: 100 * time.Millisecond,
		},
		Window: WindowConfig{
			Title:       "Umaru",
			Width:       300,
			Height:      180,
			InsetX:      10,
			InsetBottom: 50,
		},
		Tray: TrayConfig{
			Tooltip: "Umaru Assistant",
			Icon:    "tray",
		},
		Frames: []FrameSetConfig{
			{State: "typing", Prefix: "typing", Count: 15},
			{State: "watching", Prefix: "watching", Count: 5},
			{State: "mouse", Prefix: "mouse", Count: 18},
			{State: "idle", Prefix: "idle", Count: 12},
		},
	}
}
