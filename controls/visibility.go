// Package controls implements the auto-hide visibility state machine for player controls.
package controls

import (
	"sync"
	"time"

	"github.com/playkit-ui/playkit/key"
	"github.com/spf13/viper"
)

// Mode is the visibility policy overlay applied on top of the show/hide state.
type Mode string

const (
	// ModeAuto hides visible controls after the configured delay.
	ModeAuto Mode = "auto"
	// ModeAlwaysVisible forces controls visible regardless of the underlying state.
	ModeAlwaysVisible Mode = "always-visible"
	// ModeNever keeps controls hidden; Show requests are ignored.
	ModeNever Mode = "never"
)

// DefaultHideDelay is the auto-hide delay applied when no configuration value is set.
const DefaultHideDelay = 3 * time.Second

// Machine is the controls visibility state machine: an auto-hide timer with
// pin/unpin override and a mode overlay.
//
// Every transition that changes the externally observable visible value
// invokes the registered change callback with the new value exactly once;
// redundant transitions never re-invoke it. The callback runs outside the
// machine's lock, so it may call back into the machine.
type Machine struct {
	mu       sync.Mutex
	visible  bool
	pinned   bool
	mode     Mode
	delay    time.Duration
	timer    *time.Timer
	onChange func(visible bool)
}

// New creates a machine in auto mode, hidden and unpinned. The hide delay is
// read from configuration, falling back to DefaultHideDelay. The onChange
// callback may be nil.
func New(onChange func(visible bool)) *Machine {
	delay := DefaultHideDelay
	if ms := viper.GetInt(key.ControlsHideDelayMS); ms > 0 {
		delay = time.Duration(ms) * time.Millisecond
	}

	return &Machine{
		mode:     ModeAuto,
		delay:    delay,
		onChange: onChange,
	}
}

// SetHideDelay overrides the auto-hide delay. A running timer keeps its
// original deadline; the new delay applies from the next Show.
func (m *Machine) SetHideDelay(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d > 0 {
		m.delay = d
	}
}

// Visible reports the externally observable visibility, with the mode overlay applied.
func (m *Machine) Visible() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.observable()
}

// Pinned reports whether auto-hide is currently suppressed by a pin.
func (m *Machine) Pinned() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pinned
}

// Mode reports the active visibility policy.
func (m *Machine) Mode() Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mode
}

// observable resolves the visible value as seen by consumers. Callers must hold mu.
func (m *Machine) observable() bool {
	switch m.mode {
	case ModeAlwaysVisible:
		return true
	case ModeNever:
		return false
	default:
		return m.visible
	}
}

// Show makes the controls visible and arms the auto-hide timer. It is a no-op
// when the mode forbids it, when pinned, or when already visible.
func (m *Machine) Show() {
	m.mu.Lock()
	if m.mode != ModeAuto || m.pinned || m.visible {
		m.mu.Unlock()
		return
	}

	m.visible = true
	m.armTimer()
	m.mu.Unlock()

	m.notify(true)
}

// Hide makes the controls hidden and cancels the auto-hide timer. It is a
// no-op when the mode forbids it, when pinned, or when already hidden.
func (m *Machine) Hide() {
	m.mu.Lock()
	if m.mode != ModeAuto || m.pinned || !m.visible {
		m.mu.Unlock()
		return
	}

	m.visible = false
	m.stopTimer()
	m.mu.Unlock()

	m.notify(false)
}

// SetVisible dispatches to Show or Hide.
func (m *Machine) SetVisible(visible bool) {
	if visible {
		m.Show()
	} else {
		m.Hide()
	}
}

// Pin forces the controls visible and suppresses auto-hide until Unpin.
// The underlying visible state is raised even when the current mode masks it,
// so a later switch back to auto mode reveals pinned controls. Idempotent.
func (m *Machine) Pin() {
	m.mu.Lock()
	if m.pinned {
		m.mu.Unlock()
		return
	}

	before := m.observable()
	m.pinned = true
	m.visible = true
	m.stopTimer()
	after := m.observable()
	m.mu.Unlock()

	if before != after {
		m.notify(after)
	}
}

// Unpin releases the pin and, if the controls are visible, restarts the
// auto-hide timer from zero. Idempotent.
func (m *Machine) Unpin() {
	m.mu.Lock()
	if !m.pinned {
		m.mu.Unlock()
		return
	}

	m.pinned = false
	if m.mode == ModeAuto && m.visible {
		m.armTimer()
	}
	m.mu.Unlock()
}

// SetMode switches the visibility policy. When the switch changes the
// externally observable visible value, the change callback fires once.
func (m *Machine) SetMode(mode Mode) {
	m.mu.Lock()
	if mode == m.mode {
		m.mu.Unlock()
		return
	}

	before := m.observable()
	m.mode = mode
	if mode != ModeAuto {
		m.stopTimer()
	}
	after := m.observable()
	m.mu.Unlock()

	if before != after {
		m.notify(after)
	}
}

// armTimer (re)starts the auto-hide countdown. Callers must hold mu.
func (m *Machine) armTimer() {
	m.stopTimer()
	m.timer = time.AfterFunc(m.delay, m.Hide)
}

// stopTimer cancels any pending auto-hide. Callers must hold mu.
func (m *Machine) stopTimer() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

func (m *Machine) notify(visible bool) {
	if m.onChange != nil {
		m.onChange(visible)
	}
}
