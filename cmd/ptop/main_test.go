package main

import (
	"testing"

	"github.com/paiml/presentar-sub007/app"
	"github.com/paiml/presentar-sub007/displayrules"
	"github.com/paiml/presentar-sub007/metrics"
	"github.com/paiml/presentar-sub007/widget"
)

func TestVisiblePanelsAlwaysIncludesCPUAndMemory(t *testing.T) {
	panels := visiblePanels(displayrules.SystemCapabilities{}, metrics.Snapshot{})
	if len(panels) != 2 || panels[0] != "cpu" || panels[1] != "memory" {
		t.Fatalf("got %v, want [cpu memory]", panels)
	}
}

func TestVisiblePanelsIncludesBatteryWhenCapable(t *testing.T) {
	panels := visiblePanels(displayrules.SystemCapabilities{HasBattery: true}, metrics.Snapshot{})
	if !contains(panels, "battery") {
		t.Fatalf("got %v, want battery included", panels)
	}
}

func TestVisiblePanelsIncludesGPUWhenDataAvailable(t *testing.T) {
	caps := displayrules.SystemCapabilities{HasNvidia: true}
	snapshot := metrics.Snapshot{GPUs: []metrics.GPUReading{{Index: 0}}}
	panels := visiblePanels(caps, snapshot)
	if !contains(panels, "gpu") {
		t.Fatalf("got %v, want gpu included (placeholder or real)", panels)
	}
}

func contains(panels []app.PanelID, id app.PanelID) bool {
	for _, p := range panels {
		if p == id {
			return true
		}
	}
	return false
}

func TestHandleHotkeyQRequestsQuit(t *testing.T) {
	state := app.NewState(displayrules.SystemCapabilities{}, []app.PanelID{"cpu"})
	handled := handleHotkey(state, widget.InputEvent{Kind: widget.EventKeyDown, Key: widget.Key{Rune: 'q'}}, discardLogger())
	if !handled || !state.ShouldQuit() {
		t.Fatal("expected 'q' to request quit")
	}
}

func TestHandleHotkeyIgnoresUnboundKeys(t *testing.T) {
	state := app.NewState(displayrules.SystemCapabilities{}, []app.PanelID{"cpu"})
	handled := handleHotkey(state, widget.InputEvent{Kind: widget.EventKeyDown, Key: widget.Key{Rune: 'z'}}, discardLogger())
	if handled {
		t.Fatal("expected unbound key to be left unhandled")
	}
}

func TestHandleHotkeyFocusCycling(t *testing.T) {
	state := app.NewState(displayrules.SystemCapabilities{}, []app.PanelID{"cpu", "memory"})
	handleHotkey(state, widget.InputEvent{Kind: widget.EventKeyDown, Key: widget.Key{Rune: 'l'}}, discardLogger())
	if state.FocusedPanel() != "memory" {
		t.Fatalf("got %s, want memory", state.FocusedPanel())
	}
}
