package main

import (
	"fmt"

	"lanternfish/cmd/lanternfish/ui"
	"lanternfish/internal/lanternfish"
	"lanternfish/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// watchCmd steps the school interactively
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Step through the simulation interactively",
	Long: `Reads timers from stdin, then opens the terminal to step the school one
tick at a time. Keys are read from the controlling terminal, so the timers
can still be piped in.

Example:
  lanternfish watch --part 1 < input.txt`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	timers, err := readTimers(cmd.InOrStdin())
	if err != nil {
		return err
	}
	ticks, err := resolveTicks(cmd)
	if err != nil {
		return err
	}
	h, err := lanternfish.NewHistogram(timers)
	if err != nil {
		return err
	}

	model := ui.NewStepperModel(h, ticks, ui.DefaultStyles())
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithInputTTY(),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	if m, ok := final.(ui.StepperModel); ok {
		logging.For(logger, logging.CategoryRender).Debug("Stepper closed",
			zap.Int("tick", m.Tick()),
			zap.Stringer("histogram", m.Histogram()))
		if err := m.Err(); err != nil {
			return err
		}
	}
	return nil
}
