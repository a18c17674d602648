package tray

import (
	"sync"

	"fyne.io/systray"
)

const (
	toggleLabel  = "Show / Hide"
	exitLabel    = "Exit"
	warningLabel = "Input hook unavailable"
)

// Callbacks defines tray action handlers. They run on tray goroutines.
type Callbacks struct {
	OnToggle func()
	OnQuit   func()
}

// Config describes the tray icon.
type Config struct {
	Tooltip string
	Icon    []byte
}

// Manager handles system tray state.
type Manager struct {
	config    Config
	callbacks Callbacks

	mu          sync.Mutex
	ready       bool
	status      string
	warning     string
	warningItem *systray.MenuItem

	end      func()
	done     chan struct{}
	stopOnce sync.Once
}

// New creates a tray manager with the provided callbacks.
func New(config Config, callbacks Callbacks) *Manager {
	return &Manager{
		config:    config,
		callbacks: callbacks,
		done:      make(chan struct{}),
	}
}

// Start registers the tray icon alongside the window loop owned by the caller.
func (manager *Manager) Start() {
	start, end := systray.RunWithExternalLoop(manager.onReady, nil)
	manager.end = end
	start()
}

// Stop removes the tray icon. It is safe to call more than once.
func (manager *Manager) Stop() {
	manager.stopOnce.Do(func() {
		close(manager.done)
		if manager.end != nil {
			manager.end()
		}
	})
}

// SetStatus shows the companion state in the tooltip.
func (manager *Manager) SetStatus(status string) {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	manager.status = status
	manager.refreshLocked()
}

// SetWarning shows a persistent warning in the menu and the tooltip.
func (manager *Manager) SetWarning(warning string) {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	manager.warning = warning
	manager.refreshLocked()
}

func (manager *Manager) onReady() {
	if len(manager.config.Icon) > 0 {
		systray.SetIcon(manager.config.Icon)
	}
	systray.SetOnTapped(manager.toggle)

	toggleItem := systray.AddMenuItem(toggleLabel, "")
	warningItem := systray.AddMenuItem(warningLabel, "")
	warningItem.Disable()
	warningItem.Hide()
	systray.AddSeparator()
	exitItem := systray.AddMenuItem(exitLabel, "")

	manager.mu.Lock()
	manager.ready = true
	manager.warningItem = warningItem
	manager.refreshLocked()
	manager.mu.Unlock()

	go func() {
		for {
			select {
			case <-toggleItem.ClickedCh:
				manager.toggle()
			case <-exitItem.ClickedCh:
				if manager.callbacks.OnQuit != nil {
					manager.callbacks.OnQuit()
				}
			case <-manager.done:
				return
			}
		}
	}()
}

func (manager *Manager) toggle() {
	if manager.callbacks.OnToggle != nil {
		manager.callbacks.OnToggle()
	}
}

func (manager *Manager) refreshLocked() {
	if !manager.ready {
		return
	}
	systray.SetTooltip(tooltipText(manager.config.Tooltip, manager.status, manager.warning))
	if manager.warningItem == nil {
		return
	}
	if manager.warning != "" {
		manager.warningItem.Show()
	} else {
		manager.warningItem.Hide()
	}
}

func tooltipText(base, status, warning string) string {
	text := base
	if status != "" {
		text += ": " + status
	}
	if warning != "" {
		text += " (" + warning + ")"
	}
	return text
}
