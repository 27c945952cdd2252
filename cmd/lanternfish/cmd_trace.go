package main

import (
	"fmt"
	"os"

	"lanternfish/cmd/lanternfish/ui"
	"lanternfish/internal/lanternfish"
	"lanternfish/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	traceFormat string
	traceEvery  int
)

// traceCmd prints the histogram tick by tick
var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Print the timer histogram after every tick",
	Long: `Reads timers from stdin like the root command and prints the count in
each timer phase after every tick (or every --every ticks).

Formats:
  - table:    aligned columns, spawners and newborns highlighted
  - markdown: a markdown table, rendered when stdout is a terminal
  - json:     one JSON object per line

Example:
  echo 3,4,3,1,2 | lanternfish trace --ticks 18 --format markdown`,
	Args: cobra.NoArgs,
	RunE: runTrace,
}

func init() {
	traceCmd.Flags().StringVarP(&traceFormat, "format", "f", "", "Output format: table, markdown, json (default from config)")
	traceCmd.Flags().IntVar(&traceEvery, "every", 0, "Print every Nth tick (default from config)")
}

func runTrace(cmd *cobra.Command, args []string) error {
	timers, err := readTimers(cmd.InOrStdin())
	if err != nil {
		return err
	}
	ticks, err := resolveTicks(cmd)
	if err != nil {
		return err
	}

	format := cfg.Trace.Format
	if traceFormat != "" {
		format = traceFormat
	}
	every := cfg.Trace.Every
	if traceEvery != 0 {
		every = traceEvery
	}
	if every < 1 {
		return fmt.Errorf("--every must be at least 1, got %d", every)
	}

	out := cmd.OutOrStdout()
	w, err := ui.NewTraceWriter(format, out, ui.DefaultStyles(), isTerminal(out))
	if err != nil {
		return err
	}

	log := logging.For(logger, logging.CategoryRender)
	log.Debug("Tracing", zap.String("format", format), zap.Int("ticks", ticks), zap.Int("every", every))

	h, err := lanternfish.NewHistogram(timers)
	if err != nil {
		return err
	}
	err = lanternfish.Trace(h, ticks, func(step lanternfish.Step) error {
		if step.Tick%every != 0 && step.Tick != ticks {
			return nil
		}
		return w.WriteStep(step)
	})
	if err != nil {
		return fmt.Errorf("trace: %w", err)
	}
	return w.Flush()
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
