package main

import (
	"log"
	"time"

	"cutekm/internal/core/companion"
	"cutekm/internal/input"
	"cutekm/internal/platform"
	"cutekm/internal/storage"
	"cutekm/internal/ui/animation"
	"cutekm/internal/ui/overlay"
	"cutekm/internal/ui/shell"
	"cutekm/internal/ui/tray"
	"cutekm/resources"
)

const appName = "CuteKM"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	config, err := storage.ParseManifest(resources.Manifest())
	if err != nil {
		log.Fatalf("manifest: %v", err)
	}

	library, err := animation.LoadLibrary(config.Frames, resources.Sprite)
	if err != nil {
		log.Fatalf("animation frames: %v", err)
	}
	trayIcon, err := resources.TrayIcon(config.Tray.Icon)
	if err != nil {
		log.Fatalf("tray icon: %v", err)
	}

	machine := companion.New(config.Behavior, time.Now())
	monitor := input.NewMonitor(input.NewGlobalHook(0))

	var overlayWindow *overlay.Window
	frames := animation.MapLibrary(library, overlay.NewFrame)
	animationEngine := animation.New(frames, machine, func(frame overlay.Frame) {
		overlayWindow.SetSprite(frame)
	})

	workArea, err := platform.WorkArea()
	if err != nil {
		log.Printf("work area: %v; using monitor bounds", err)
	}
	windowShell := overlay.Configure(config.Window, workArea)
	controller := shell.NewController(windowShell, machine, monitor, animationEngine, config.Animation.FrameInterval)
	controller.SetIdleFallback(input.NewIdlePoller(platform.NewIdleProvider()))
	controller.SetPointerScale(overlay.PointerScale())
	overlayWindow = overlay.New(config.Window, controller)

	trayManager := tray.New(tray.Config{
		Tooltip: config.Tray.Tooltip,
		Icon:    trayIcon.Content(),
	}, tray.Callbacks{
		OnToggle: controller.RequestToggle,
		OnQuit:   controller.RequestQuit,
	})

	events := machine.Subscribe(16)
	go func() {
		for event := range events {
			if event.Type != companion.EventStateChange {
				continue
			}
			log.Printf("state %s -> %s (%s)", event.Previous, event.State, event.Reason)
			trayManager.SetStatus(event.State.String())
		}
	}()

	if err := monitor.Start(); err != nil {
		log.Printf("input hook unavailable, using idle polling: %v", err)
		trayManager.SetWarning("input hook unavailable")
	}
	trayManager.SetStatus(machine.State().String())
	trayManager.Start()

	if err := overlayWindow.Run(); err != nil {
		log.Printf("window: %v", err)
	}

	monitor.Stop()
	trayManager.Stop()
	machine.Close()
}
