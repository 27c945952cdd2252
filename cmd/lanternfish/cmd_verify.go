package main

import (
	"errors"
	"fmt"

	"lanternfish/internal/lanternfish"
	"lanternfish/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verifyLimit int

// errMismatch is returned when the two models disagree.
var errMismatch = errors.New("histogram and per-fish models disagree")

// verifyCmd cross-checks the histogram against the per-fish model
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Cross-check the histogram against the per-fish model",
	Long: `Runs the same input through the histogram simulator and through a
per-fish model that tracks every timer individually, and reports whether
they agree. The per-fish model grows with the population, so it is capped
by --limit.

Example:
  echo 3,4,3,1,2 | lanternfish verify --part 1`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().IntVar(&verifyLimit, "limit", 0, "Maximum fish the per-fish model may track (default from config)")
}

func runVerify(cmd *cobra.Command, args []string) error {
	timers, err := readTimers(cmd.InOrStdin())
	if err != nil {
		return err
	}
	ticks, err := resolveTicks(cmd)
	if err != nil {
		return err
	}
	limit := cfg.Verify.Limit
	if verifyLimit > 0 {
		limit = verifyLimit
	}

	log := logging.For(logger, logging.CategoryVerify)

	fast, err := lanternfish.Simulate(timers, ticks)
	if err != nil {
		return err
	}
	naive, err := lanternfish.SimulateNaive(timers, ticks, limit)
	if err != nil {
		if errors.Is(err, lanternfish.ErrPopulationLimit) {
			return fmt.Errorf("%w (limit %d, histogram reports %d)", err, limit, fast)
		}
		return err
	}

	log.Debug("Models compared",
		zap.Uint64("histogram", fast),
		zap.Int("per_fish", naive),
		zap.Int("ticks", ticks))

	if uint64(naive) != fast {
		return fmt.Errorf("%w after %d ticks: histogram %d, per-fish %d", errMismatch, ticks, fast, naive)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %d fish after %d ticks\n", fast, ticks)
	return err
}
