package main

import (
	"fmt"
	"strings"

	"github.com/paiml/presentar-sub007/app"
	"github.com/paiml/presentar-sub007/brick"
	"github.com/paiml/presentar-sub007/canvas"
	"github.com/paiml/presentar-sub007/cellbuffer"
	"github.com/paiml/presentar-sub007/displayrules"
	"github.com/paiml/presentar-sub007/geometry"
	"github.com/paiml/presentar-sub007/metrics"
	"github.com/paiml/presentar-sub007/widget"
)

// cpuColor grades a usage percentage the way the reference CPU monitor
// does: green under load, escalating through yellow and orange to red
// as a core saturates.
func cpuColor(usage float64) cellbuffer.Color {
	switch {
	case usage > 90:
		return cellbuffer.Color{R: 1.0, G: 0.3, B: 0.3, A: 1}
	case usage > 70:
		return cellbuffer.Color{R: 1.0, G: 0.7, B: 0.2, A: 1}
	case usage > 50:
		return cellbuffer.Color{R: 1.0, G: 1.0, B: 0.3, A: 1}
	default:
		return cellbuffer.Color{R: 0.3, G: 1.0, B: 0.5, A: 1}
	}
}

// cpuPanel shows per-core usage bars. Its Brick asserts that the panel
// paints visible text and that its text has a contrast ratio of at least
// 4.5 against its background.
type cpuPanel struct {
	widget.Base
	state *app.State
	brick brick.Brick
}

func newCPUPanel(state *app.State) *cpuPanel {
	b := brick.NewSimpleBrick("cpu_panel").
		WithAssertion(brick.Assertion{Kind: brick.TextVisible}).
		WithAssertion(brick.Assertion{Kind: brick.ContrastRatio, ContrastMin: 4.5})
	return &cpuPanel{state: state, brick: b}
}

func (p *cpuPanel) Brick() brick.Brick { return p.brick }

func (p *cpuPanel) Measure(c geometry.Constraints) geometry.Size {
	cores := len(p.state.Snapshot.Cores)
	if cores == 0 {
		cores = 1
	}
	return c.Constrain(geometry.Size{Width: 40, Height: cores + 1})
}

func (p *cpuPanel) Paint(c canvas.Canvas) {
	bounds := p.Bounds()
	c.DrawText(bounds.Pos.Row, bounds.Pos.Col, "CPU", cellbuffer.White, cellbuffer.Color{}, 0)
	for i, core := range p.state.Snapshot.Cores {
		row := bounds.Pos.Row + 1 + i
		if row >= bounds.Bottom() {
			break
		}
		label := fmt.Sprintf("Core %2d: %s %5.1f%%", core.Index, bar(core.UsedPercent, 12), core.UsedPercent)
		c.DrawText(row, bounds.Pos.Col, label, cpuColor(core.UsedPercent), cellbuffer.Color{}, 0)
	}
}

func (p *cpuPanel) HandleEvent(ev widget.InputEvent) *widget.Message { return nil }

func bar(usage float64, width int) string {
	filled := int((usage / 100.0) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < width; i++ {
		if i < filled {
			b.WriteRune('█')
		} else {
			b.WriteRune('░')
		}
	}
	b.WriteByte(']')
	return b.String()
}

// memoryPanel shows total/used memory as a single bar plus byte counts.
type memoryPanel struct {
	widget.Base
	state *app.State
}

func newMemoryPanel(state *app.State) *memoryPanel {
	return &memoryPanel{state: state}
}

func (p *memoryPanel) Brick() brick.Brick { return brick.Default{} }

func (p *memoryPanel) Measure(c geometry.Constraints) geometry.Size {
	return c.Constrain(geometry.Size{Width: 40, Height: 2})
}

func (p *memoryPanel) Paint(c canvas.Canvas) {
	bounds := p.Bounds()
	mem := p.state.Snapshot.Memory
	var pct float64
	if mem.TotalBytes > 0 {
		pct = float64(mem.UsedBytes) / float64(mem.TotalBytes) * 100
	}
	c.DrawText(bounds.Pos.Row, bounds.Pos.Col, "Memory", cellbuffer.White, cellbuffer.Color{}, 0)
	label := fmt.Sprintf("%s %5.1f%%  %s / %s", bar(pct, 20), pct, humanBytes(mem.UsedBytes), humanBytes(mem.TotalBytes))
	c.DrawText(bounds.Pos.Row+1, bounds.Pos.Col, label, cpuColor(pct), cellbuffer.Color{}, 0)
}

func (p *memoryPanel) HandleEvent(ev widget.InputEvent) *widget.Message { return nil }

func humanBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%dB", n)
	}
	div, exp := uint64(unit), 0
	for val := n / unit; val >= unit; val /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// batteryPanel is Hide/Show gated entirely by displayrules.Battery; it
// exists mainly to exercise the "no empty panels" guarantee end to end.
type batteryPanel struct {
	widget.Base
	state *app.State
	caps  displayrules.SystemCapabilities
}

func newBatteryPanel(state *app.State, caps displayrules.SystemCapabilities) *batteryPanel {
	return &batteryPanel{state: state, caps: caps}
}

func (p *batteryPanel) Brick() brick.Brick { return brick.Default{} }

func (p *batteryPanel) action() displayrules.Action {
	return displayrules.Battery.Evaluate(displayrules.Context{Capabilities: p.caps})
}

func (p *batteryPanel) Measure(c geometry.Constraints) geometry.Size {
	if !p.action().Visible() {
		return geometry.Size{Width: 0, Height: 0}
	}
	return c.Constrain(geometry.Size{Width: 30, Height: 1})
}

func (p *batteryPanel) Paint(c canvas.Canvas) {
	if !p.action().Visible() {
		return
	}
	bounds := p.Bounds()
	battery := p.state.Snapshot.Battery
	label := fmt.Sprintf("Battery: %5.1f%%", battery.Percent)
	if battery.Charging {
		label += " (charging)"
	}
	c.DrawText(bounds.Pos.Row, bounds.Pos.Col, label, cellbuffer.White, cellbuffer.Color{}, 0)
}

func (p *batteryPanel) HandleEvent(ev widget.InputEvent) *widget.Message { return nil }

// gpuPanel demonstrates the ShowPlaceholder path: a GPU vendor capability
// with no readable data renders an explanatory placeholder instead of
// either real content or an empty hole in the layout.
type gpuPanel struct {
	widget.Base
	state *app.State
	caps  displayrules.SystemCapabilities
}

func newGPUPanel(state *app.State, caps displayrules.SystemCapabilities) *gpuPanel {
	return &gpuPanel{state: state, caps: caps}
}

func (p *gpuPanel) Brick() brick.Brick { return brick.Default{} }

func (p *gpuPanel) action() displayrules.Action {
	data := displayrules.DataAvailability{GPUAvailable: len(p.state.Snapshot.GPUs) > 0}
	return displayrules.GPU.Evaluate(displayrules.Context{Capabilities: p.caps, Data: data})
}

func (p *gpuPanel) Measure(c geometry.Constraints) geometry.Size {
	if !p.action().Visible() {
		return geometry.Size{Width: 0, Height: 0}
	}
	return c.Constrain(geometry.Size{Width: 30, Height: 1})
}

func (p *gpuPanel) Paint(c canvas.Canvas) {
	act := p.action()
	if !act.Visible() {
		return
	}
	bounds := p.Bounds()
	if act.Kind == displayrules.ShowPlaceholder {
		c.DrawText(bounds.Pos.Row, bounds.Pos.Col, "GPU: "+act.Text, cellbuffer.Color{R: 0.6, G: 0.6, B: 0.6, A: 1}, cellbuffer.Color{}, 0)
		return
	}
	gpus := p.state.Snapshot.GPUs
	if len(gpus) == 0 {
		return
	}
	g := gpus[0]
	label := fmt.Sprintf("GPU %s: %5.1f%%", g.Name, g.UsedPercent)
	c.DrawText(bounds.Pos.Row, bounds.Pos.Col, label, cpuColor(g.UsedPercent), cellbuffer.Color{}, 0)
}

func (p *gpuPanel) HandleEvent(ev widget.InputEvent) *widget.Message { return nil }

var _ = metrics.Snapshot{}
