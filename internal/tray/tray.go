// Package tray provides the system tray interface for toggling the Mudra
// input channels.
package tray

import (
	"sync"

	"github.com/getlantern/systray"
)

// Tray exposes separate toggles for hand tracking and voice commands, a
// read-only display of the last recognized gesture, and a quit entry.
type Tray struct {
	onTrackingToggle func(enabled bool)
	onVoiceToggle    func(enabled bool)
	onSettings       func()
	onQuit           func()
	tracking         bool
	voice            bool
	mu               sync.RWMutex

	// Menu items stored for later updates
	menuTracking    *systray.MenuItem
	menuVoice       *systray.MenuItem
	menuLastGesture *systray.MenuItem
}

// New creates a Tray with both input channels enabled by default.
func New() *Tray {
	return &Tray{
		tracking: true,
		voice:    true,
	}
}

// OnTrackingToggle sets the callback invoked when hand tracking is toggled.
func (t *Tray) OnTrackingToggle(fn func(enabled bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onTrackingToggle = fn
}

// OnVoiceToggle sets the callback invoked when voice input is toggled.
func (t *Tray) OnVoiceToggle(fn func(enabled bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onVoiceToggle = fn
}

// OnSettings sets the callback invoked when the settings entry is clicked.
func (t *Tray) OnSettings(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onSettings = fn
}

// OnQuit sets the callback invoked when the quit entry is clicked.
func (t *Tray) OnQuit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onQuit = fn
}

// Run starts the system tray application.
// This function blocks until systray.Quit() is called.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// onReady sets up the menu structure once the tray is available.
func (t *Tray) onReady() {
	systray.SetTitle("Mudra")
	systray.SetTooltip("Mudra gesture and voice control")

	t.menuTracking = systray.AddMenuItem("● Hand tracking", "Toggle hand tracking")
	t.menuVoice = systray.AddMenuItem("● Voice commands", "Toggle voice commands")
	systray.AddSeparator()

	t.menuLastGesture = systray.AddMenuItem("Last: none", "Last recognized gesture")
	t.menuLastGesture.Disable()
	systray.AddSeparator()

	menuSettings := systray.AddMenuItem("Open Viewer...", "Open the viewer in a browser")
	systray.AddSeparator()

	menuQuit := systray.AddMenuItem("Quit", "Quit Mudra")

	// Handle menu item clicks in a separate goroutine
	go func() {
		for {
			select {
			case <-t.menuTracking.ClickedCh:
				t.handleTrackingToggle()
			case <-t.menuVoice.ClickedCh:
				t.handleVoiceToggle()
			case <-menuSettings.ClickedCh:
				t.handleSettings()
			case <-menuQuit.ClickedCh:
				t.handleQuit()
				return
			}
		}
	}()
}

// onExit is called when the system tray is about to exit.
func (t *Tray) onExit() {
}

func (t *Tray) handleTrackingToggle() {
	t.mu.Lock()
	t.tracking = !t.tracking
	enabled := t.tracking

	if enabled {
		t.menuTracking.SetTitle("● Hand tracking")
	} else {
		t.menuTracking.SetTitle("○ Hand tracking")
	}

	callback := t.onTrackingToggle
	t.mu.Unlock()

	// Call the callback outside the lock to prevent deadlocks
	if callback != nil {
		callback(enabled)
	}
}

func (t *Tray) handleVoiceToggle() {
	t.mu.Lock()
	t.voice = !t.voice
	enabled := t.voice

	if enabled {
		t.menuVoice.SetTitle("● Voice commands")
	} else {
		t.menuVoice.SetTitle("○ Voice commands")
	}

	callback := t.onVoiceToggle
	t.mu.Unlock()

	if callback != nil {
		callback(enabled)
	}
}

func (t *Tray) handleSettings() {
	t.mu.RLock()
	callback := t.onSettings
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}
}

func (t *Tray) handleQuit() {
	t.mu.RLock()
	callback := t.onQuit
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}

	systray.Quit()
}

// SetLastGesture updates the last gesture display in the menu.
func (t *Tray) SetLastGesture(name string) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.menuLastGesture != nil {
		if name == "" {
			t.menuLastGesture.SetTitle("Last: none")
		} else {
			t.menuLastGesture.SetTitle("Last: " + name)
		}
	}
}

// IsTrackingEnabled returns the current hand tracking state.
func (t *Tray) IsTrackingEnabled() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tracking
}

// IsVoiceEnabled returns the current voice input state.
func (t *Tray) IsVoiceEnabled() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.voice
}
