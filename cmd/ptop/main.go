// Command ptop is a btop-style terminal system monitor built on the
// presentar rendering core: a flexbox widget tree, brick-gated painting,
// and capability-driven panel visibility.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/paiml/presentar-sub007/app"
	"github.com/paiml/presentar-sub007/brick"
	"github.com/paiml/presentar-sub007/colormode"
	"github.com/paiml/presentar-sub007/displayrules"
	"github.com/paiml/presentar-sub007/metrics"
	"github.com/paiml/presentar-sub007/terminal"
	"github.com/paiml/presentar-sub007/terminal/input"
	"github.com/paiml/presentar-sub007/widget"
)

type cliConfig struct {
	logFile string
	verbose bool
	once    bool
}

func main() {
	var cfg cliConfig

	rootCmd := &cobra.Command{
		Use:   "ptop",
		Short: "A terminal system monitor",
		Long: `ptop renders live CPU, memory, battery, and GPU panels in your
terminal, hiding or replacing panels your system lacks the capability
or data to support.`,
		Example: `  # Run the monitor
  ptop

  # Run with debug logging to a file
  ptop --log /tmp/ptop.log --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg)
		},
	}

	rootCmd.Flags().StringVar(&cfg.logFile, "log", "", "write diagnostic logs to this file instead of discarding them")
	rootCmd.Flags().BoolVarP(&cfg.verbose, "verbose", "v", false, "enable debug-level logging")
	rootCmd.Flags().BoolVar(&cfg.once, "once", false, "render a single frame and exit (for screenshots/CI)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg cliConfig) error {
	log, err := newLogger(cfg.logFile, cfg.verbose)
	if err != nil {
		return fmt.Errorf("ptop: open log file: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	term := terminal.New()
	width, height, err := term.Size()
	if err != nil {
		width, height = 80, 24
	}

	if err := term.EnterRawMode(); err != nil {
		return fmt.Errorf("ptop: enter raw mode: %w", err)
	}
	defer term.ExitRawMode()
	if err := term.EnterAltScreen(); err != nil {
		return fmt.Errorf("ptop: enter alt screen: %w", err)
	}
	defer term.ExitAltScreen()
	if err := term.HideCursor(); err != nil {
		log.Warn().Err(err).Msg("hide cursor failed")
	}
	defer term.ShowCursor()

	caps := detectCapabilities(ctx)

	bus := metrics.NewBus()
	collector := newGopsutilCollector()
	tickInterval := time.Second

	group := make(chan error, 1)
	go func() {
		group <- metrics.RunCollectors(ctx, bus,
			func(ctx context.Context) error {
				select {
				case <-time.After(tickInterval):
					return nil
				case <-ctx.Done():
					return ctx.Err()
				}
			},
			collector.collect,
		)
	}()

	state := app.NewState(caps, visiblePanels(caps, metrics.Snapshot{}))
	root := buildRoot(state, caps)

	size := termSize{term}
	reader := input.NewReader(os.Stdin)
	outWriter := stdoutWriter{}

	loop := app.NewLoop(state, root, bus, reader, size, outWriter, colormode.Detect(), width, height)
	loop.WithHotkeys(func(s *app.State, ev widget.InputEvent) bool {
		return handleHotkey(s, ev, log)
	})
	loop.WithGate(brick.NewGate(log))

	if cfg.once {
		return loop.Step()
	}

	runErr := loop.Run()
	stop()
	select {
	case err := <-group:
		if err != nil && err != context.Canceled {
			log.Warn().Err(err).Msg("collector group exited with error")
		}
	default:
	}
	return runErr
}

// detectCapabilities probes what this host can report. Battery, GPU, and
// sensor presence need platform-specific probes outside this demo
// collector's scope (see hostInContainer's doc comment); they default to
// false here so DisplayRules correctly hides those panels rather than
// showing one with fabricated data.
func detectCapabilities(ctx context.Context) displayrules.SystemCapabilities {
	return displayrules.SystemCapabilities{
		InContainer: hostInContainer(ctx),
	}
}

// visiblePanels evaluates DisplayRules against current capabilities and
// data to decide the panel list the State and root widget tree should
// show, in a fixed priority order.
func visiblePanels(caps displayrules.SystemCapabilities, snapshot metrics.Snapshot) []app.PanelID {
	panels := []app.PanelID{"cpu", "memory"}

	batteryAction := displayrules.Battery.Evaluate(displayrules.Context{Capabilities: caps})
	if batteryAction.Visible() {
		panels = append(panels, "battery")
	}

	gpuAction := displayrules.GPU.Evaluate(displayrules.Context{
		Capabilities: caps,
		Data:         displayrules.DataAvailability{GPUAvailable: len(snapshot.GPUs) > 0},
	})
	if gpuAction.Visible() {
		panels = append(panels, "gpu")
	}

	return panels
}

func buildRoot(state *app.State, caps displayrules.SystemCapabilities) widget.Widget {
	col := widget.NewFlex(widget.Column).WithGap(1)
	col.Add(newCPUPanel(state), 1, 0, 0)
	col.Add(newMemoryPanel(state), 0, 0, 0)
	col.Add(newBatteryPanel(state, caps), 0, 0, 0)
	col.Add(newGPUPanel(state, caps), 0, 0, 0)
	return col
}

// handleHotkey implements the top-level keymap; events it consumes never
// reach the widget tree.
func handleHotkey(s *app.State, ev widget.InputEvent, log zerolog.Logger) bool {
	if ev.Kind != widget.EventKeyDown {
		return false
	}
	switch {
	case ev.Key.Rune == 'q' || ev.Key.Name == widget.KeyEscape:
		s.RequestQuit()
		return true
	case ev.Key.Name == widget.KeyTab || ev.Key.Rune == 'l':
		s.FocusNext()
		return true
	case ev.Key.Rune == 'h':
		s.FocusPrev()
		return true
	default:
		return false
	}
}

type termSize struct {
	term terminal.Terminal
}

func (t termSize) Size() (int, int, error) { return t.term.Size() }

type stdoutWriter struct{}

func (stdoutWriter) Write(p []byte) (int, error) { return os.Stdout.Write(p) }
