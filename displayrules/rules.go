// Package displayrules decides, per panel, whether and how to show it:
// each rule is a pure predicate over detected system capabilities, the
// terminal's current size, and whether the metrics data that would fill
// the panel is actually available.
package displayrules

// SystemCapabilities records what the host can report, detected once at
// startup and held immutable for the process lifetime.
type SystemCapabilities struct {
	HasNvidia       bool
	HasAMD          bool
	HasAppleSilicon bool
	HasPSI          bool
	HasSensors      bool
	HasBattery      bool
	InContainer     bool
}

// HasGPU reports whether any GPU vendor capability is present.
func (c SystemCapabilities) HasGPU() bool {
	return c.HasNvidia || c.HasAMD || c.HasAppleSilicon
}

// DataAvailability records, per frame, whether the metrics collector
// actually produced data for a capability the system claims to have —
// the mismatch between "capable" and "has data" is what drives
// placeholder vs. hide decisions.
type DataAvailability struct {
	SensorsAvailable bool
	SensorCount      int
	GPUAvailable     bool
	PSIAvailable     bool
	BatteryAvailable bool
}

// TerminalSize is the current terminal dimensions in cells.
type TerminalSize struct {
	Width  int
	Height int
}

// Context is everything a DisplayRule needs to decide a panel's action.
type Context struct {
	Capabilities SystemCapabilities
	Terminal     TerminalSize
	Data         DataAvailability
}

// ActionKind discriminates the Action union.
type ActionKind int

const (
	Show ActionKind = iota
	Expand
	Compact
	Hide
	ShowPlaceholder
)

// Action is the outcome of evaluating a DisplayRule against a Context.
// Text is only meaningful when Kind is ShowPlaceholder.
type Action struct {
	Kind ActionKind
	Text string
}

func (a ActionKind) String() string {
	switch a {
	case Show:
		return "Show"
	case Expand:
		return "Expand"
	case Compact:
		return "Compact"
	case Hide:
		return "Hide"
	case ShowPlaceholder:
		return "ShowPlaceholder"
	default:
		return "Unknown"
	}
}

// Visible reports whether action occupies any space in the composed
// layout; Hide panels consume zero space and are skipped entirely.
func (a Action) Visible() bool { return a.Kind != Hide }

// Rule is a pure predicate mapping a Context to a display Action.
type Rule interface {
	Evaluate(ctx Context) Action
}

// RuleFunc adapts a plain function to the Rule interface.
type RuleFunc func(ctx Context) Action

func (f RuleFunc) Evaluate(ctx Context) Action { return f(ctx) }

// Battery shows the battery panel only on systems that report one.
var Battery Rule = RuleFunc(func(ctx Context) Action {
	if ctx.Capabilities.HasBattery {
		return Action{Kind: Show}
	}
	return Action{Kind: Hide}
})

// GPU shows the GPU panel only when both a GPU vendor capability is
// present and the collector actually produced GPU data; a capability
// with no data (a "zombie" GPU: present but unreadable, e.g. a dGPU
// without a loaded driver) shows a placeholder instead of hiding the
// panel outright.
var GPU Rule = RuleFunc(func(ctx Context) Action {
	if !ctx.Capabilities.HasGPU() {
		return Action{Kind: Hide}
	}
	if !ctx.Data.GPUAvailable {
		return Action{Kind: ShowPlaceholder, Text: "no GPU data"}
	}
	return Action{Kind: Show}
})

// Sensors shows the sensors panel only when at least one sensor reading
// is available.
var Sensors Rule = RuleFunc(func(ctx Context) Action {
	if ctx.Data.SensorCount >= 1 {
		return Action{Kind: Show}
	}
	return Action{Kind: Hide}
})

// PSI shows the pressure-stall-information panel only on kernels that
// expose it (Linux 4.20+); it is always Hide off Linux.
var PSI Rule = RuleFunc(func(ctx Context) Action {
	if ctx.Capabilities.HasPSI {
		return Action{Kind: Show}
	}
	return Action{Kind: Hide}
})

// CompactThreshold is the minimum rect width and height for a panel; a
// rect narrower than MinWidth or shorter than MinHeight turns a Show into
// Compact.
type CompactThreshold struct {
	MinWidth  int
	MinHeight int
}

// ApplyCompact downgrades a Show action to Compact when the available
// rect for the panel falls below threshold on either axis. Expand and
// Hide are left untouched: Expand is a user-driven override (fullscreen
// or explode for that panel) that compact sizing must not fight, and
// Hide panels are never sized at all.
func ApplyCompact(action Action, rectWidth, rectHeight int, threshold CompactThreshold) Action {
	if action.Kind != Show {
		return action
	}
	if rectWidth < threshold.MinWidth || rectHeight < threshold.MinHeight {
		return Action{Kind: Compact}
	}
	return action
}
