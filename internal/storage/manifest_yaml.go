package storage

import (
	"fmt"
	"strings"
	"time"

	"cutekm/internal/core/model"
	"gopkg.in/yaml.v3"
)

type yamlManifest struct {
	Window yamlWindow     `yaml:"window"`
	Timing yamlTiming     `yaml:"timing"`
	Tray   yamlTray       `yaml:"tray"`
	Frames []yamlFrameSet `yaml:"frames"`
}

type yamlWindow struct {
	Title       string `yaml:"title"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	InsetX      *int   `yaml:"inset_x"`
	InsetBottom *int   `yaml:"inset_bottom"`
}

type yamlTiming struct {
	FrameIntervalMs    int `yaml:"frame_interval_ms"`
	CheckIntervalMs    int `yaml:"check_interval_ms"`
	IdleAfterSeconds   int `yaml:"idle_after_seconds"`
	TypingTimeoutMs    int `yaml:"typing_timeout_ms"`
	MouseTimeoutMs     int `yaml:"mouse_timeout_ms"`
	MouseTypingGuardMs int `yaml:"mouse_typing_guard_ms"`
}

type yamlTray struct {
	Tooltip string `yaml:"tooltip"`
	Icon    string `yaml:"icon"`
}

type yamlFrameSet struct {
	State  string `yaml:"state"`
	Prefix string `yaml:"prefix"`
	Count  int    `yaml:"count"`
}

// ParseManifest reads the application manifest from YAML.
// Missing or invalid values keep their defaults.
func ParseManifest(rawData []byte) (model.AppConfig, error) {
	config := model.DefaultAppConfig()

	var fileData yamlManifest
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return config, fmt.Errorf("parse manifest yaml: %w", err)
	}

	if err := applyYamlManifest(&config, fileData); err != nil {
		return model.DefaultAppConfig(), err
	}
	return config, nil
}

func applyYamlManifest(config *model.AppConfig, fileData yamlManifest) error {
	if title := strings.TrimSpace(fileData.Window.Title); title != "" {
		config.Window.Title = title
	}
	if fileData.Window.Width > 0 {
		config.Window.Width = fileData.Window.Width
	}
	if fileData.Window.Height > 0 {
		config.Window.Height = fileData.Window.Height
	}
	if fileData.Window.InsetX != nil && *fileData.Window.InsetX >= 0 {
		config.Window.InsetX = *fileData.Window.InsetX
	}
	if fileData.Window.InsetBottom != nil && *fileData.Window.InsetBottom >= 0 {
		config.Window.InsetBottom = *fileData.Window.InsetBottom
	}

	applyMillis(&config.Animation.FrameInterval, fileData.Timing.FrameIntervalMs)
	applyMillis(&config.Behavior.CheckInterval, fileData.Timing.CheckIntervalMs)
	applyMillis(&config.Behavior.TypingTimeout, fileData.Timing.TypingTimeoutMs)
	applyMillis(&config.Behavior.MouseTimeout, fileData.Timing.MouseTimeoutMs)
	applyMillis(&config.Behavior.MouseTypingGuard, fileData.Timing.MouseTypingGuardMs)
	if fileData.Timing.IdleAfterSeconds > 0 {
		config.Behavior.IdleAfter = time.Duration(fileData.Timing.IdleAfterSeconds) * time.Second
	}

	if tooltip := strings.TrimSpace(fileData.Tray.Tooltip); tooltip != "" {
		config.Tray.Tooltip = tooltip
	}
	if icon := strings.TrimSpace(fileData.Tray.Icon); icon != "" {
		config.Tray.Icon = icon
	}

	if len(fileData.Frames) == 0 {
		return nil
	}
	frames := make([]model.FrameSetConfig, 0, len(fileData.Frames))
	seen := make(map[string]bool, len(fileData.Frames))
	for _, set := range fileData.Frames {
		state := strings.TrimSpace(set.State)
		if state == "" {
			return fmt.Errorf("manifest frame set: state is empty")
		}
		if seen[state] {
			return fmt.Errorf("manifest frame set %q: listed twice", state)
		}
		if set.Count <= 0 {
			return fmt.Errorf("manifest frame set %q: count must be positive", state)
		}
		seen[state] = true

		prefix := strings.TrimSpace(set.Prefix)
		if prefix == "" {
			prefix = state
		}
		frames = append(frames, model.FrameSetConfig{State: state, Prefix: prefix, Count: set.Count})
	}
	config.Frames = frames
	return nil
}

func applyMillis(target *time.Duration, millis int) {
	if millis > 0 {
		*target = time.Duration(millis) * time.Millisecond
	}
}
