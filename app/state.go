// Package app owns the cooperative, single-threaded UI loop: it polls
// input, applies metrics snapshots, drives measure/layout/paint, and
// flushes the result through a DiffRenderer.
package app

import (
	"github.com/paiml/presentar-sub007/displayrules"
	"github.com/paiml/presentar-sub007/geometry"
	"github.com/paiml/presentar-sub007/metrics"
)

// PanelID names one of the application's top-level panels, used both as
// the focus-cycle key and to look up a panel's DisplayRule.
type PanelID string

// State holds everything the widget tree reads when it measures, lays
// out, and paints: the latest applied metrics snapshot, the panel
// visibility decided by DisplayRules, which panel has focus, and the
// quit flag the loop checks each iteration.
type State struct {
	Snapshot     metrics.Snapshot
	Capabilities displayrules.SystemCapabilities

	panelOrder []PanelID
	focusIndex int

	quit bool
	viewport geometry.Size
}

// NewState seeds state with the ordered, currently-visible panel list
// (post-DisplayRules filtering) and detected system capabilities.
func NewState(caps displayrules.SystemCapabilities, visiblePanels []PanelID) *State {
	return &State{Capabilities: caps, panelOrder: append([]PanelID(nil), visiblePanels...)}
}

// ApplySnapshot replaces the fields a MetricsBus receive carries fresh
// data for. A field the collector left empty or zero (no cores, zero
// memory reading, no processes, networks or GPUs, HasBattery false) keeps
// its value from the previous snapshot.
func (s *State) ApplySnapshot(snapshot metrics.Snapshot) {
	prev := s.Snapshot
	if len(snapshot.Cores) == 0 {
		snapshot.Cores = prev.Cores
	}
	if snapshot.Memory == (metrics.MemoryReading{}) {
		snapshot.Memory = prev.Memory
	}
	if len(snapshot.Processes) == 0 {
		snapshot.Processes = prev.Processes
	}
	if len(snapshot.Networks) == 0 {
		snapshot.Networks = prev.Networks
	}
	if len(snapshot.GPUs) == 0 {
		snapshot.GPUs = prev.GPUs
	}
	if !snapshot.HasBattery {
		snapshot.Battery, snapshot.HasBattery = prev.Battery, prev.HasBattery
	}
	s.Snapshot = snapshot
}

// SetPanelOrder replaces the ordered list of currently-visible panels,
// typically after a DisplayRules re-evaluation (e.g. terminal resize
// crossing a compact threshold, or a capability becoming available).
// Focus is clamped into the new range, or cleared if the list is empty.
func (s *State) SetPanelOrder(panels []PanelID) {
	s.panelOrder = append([]PanelID(nil), panels...)
	if len(s.panelOrder) == 0 {
		s.focusIndex = 0
		return
	}
	if s.focusIndex >= len(s.panelOrder) {
		s.focusIndex = len(s.panelOrder) - 1
	}
}

// FocusedPanel returns the currently focused panel, or "" if there are no
// visible panels.
func (s *State) FocusedPanel() PanelID {
	if len(s.panelOrder) == 0 {
		return ""
	}
	return s.panelOrder[s.focusIndex]
}

// FocusNext advances focus to the next visible panel, wrapping to the
// first after the last.
func (s *State) FocusNext() {
	if len(s.panelOrder) == 0 {
		return
	}
	s.focusIndex = (s.focusIndex + 1) % len(s.panelOrder)
}

// FocusPrev moves focus to the previous visible panel, wrapping to the
// last after the first.
func (s *State) FocusPrev() {
	if len(s.panelOrder) == 0 {
		return
	}
	s.focusIndex = (s.focusIndex - 1 + len(s.panelOrder)) % len(s.panelOrder)
}

// RequestQuit signals the loop to exit after the current frame finishes.
func (s *State) RequestQuit() { s.quit = true }

// ShouldQuit reports whether RequestQuit has been called.
func (s *State) ShouldQuit() bool { return s.quit }

// Viewport returns the last terminal size the loop observed.
func (s *State) Viewport() geometry.Size { return s.viewport }

// SetViewport records a new terminal size, typically following a Resize
// input event.
func (s *State) SetViewport(size geometry.Size) { s.viewport = size }
