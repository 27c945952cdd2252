package main

import (
	"errors"
	"fmt"
	"os"

	"lanternfish/internal/config"
	"lanternfish/internal/lanternfish"
	"lanternfish/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	cfgPath   string
	verbose   bool
	ticksFlag int
	partFlag  int
	exactFlag bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd reads one line of timers from stdin and prints the population.
var rootCmd = &cobra.Command{
	Use:   "lanternfish",
	Short: "Lanternfish population simulator",
	Long: `Reads one line of comma-separated fish timers from stdin, advances the
school by the requested number of ticks and prints the total population.

Fish are counted per timer phase, so the run costs the same for five fish
as for five trillion.

Examples:
  echo 3,4,3,1,2 | lanternfish --ticks 18
  lanternfish --part 1 < input.txt`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadRuntime()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runSimulate,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", config.DefaultPath, "Config file (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().IntVarP(&ticksFlag, "ticks", "t", config.PartTwoTicks, "Number of ticks to simulate")
	rootCmd.PersistentFlags().IntVar(&partFlag, "part", 0, "Puzzle preset: 1 (80 ticks) or 2 (256 ticks)")
	rootCmd.Flags().BoolVar(&exactFlag, "exact", false, "Count with arbitrary precision")

	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(verifyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadRuntime loads the config file and builds the run logger.
func loadRuntime() error {
	var err error
	cfg, err = config.Load(cfgPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", cfgPath, err)
	}

	base, err := logging.New(cfg.Logging, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger, _ = logging.WithRunID(base)
	logging.For(logger, logging.CategoryBoot).Debug("Config loaded",
		zap.String("path", cfgPath),
		zap.Int("ticks", cfg.Simulation.Ticks))
	return nil
}

// resolveTicks picks the tick count: --ticks, then --part, then config.
func resolveTicks(cmd *cobra.Command) (int, error) {
	var ticks int
	switch {
	case cmd.Flags().Changed("ticks"):
		ticks = ticksFlag
	case cmd.Flags().Changed("part"):
		n, err := config.PartTicks(partFlag)
		if err != nil {
			return 0, err
		}
		ticks = n
	default:
		ticks = cfg.Simulation.Ticks
	}
	if ticks < 0 {
		return 0, fmt.Errorf("ticks must not be negative, got %d", ticks)
	}
	return ticks, nil
}

func runSimulate(cmd *cobra.Command, args []string) error {
	timers, err := readTimers(cmd.InOrStdin())
	if err != nil {
		return err
	}
	ticks, err := resolveTicks(cmd)
	if err != nil {
		return err
	}

	log := logging.For(logger, logging.CategorySimulate)
	timer := logging.StartTimer(log, "simulate")

	if !exactFlag && !cfg.Simulation.Exact {
		total, err := lanternfish.Simulate(timers, ticks)
		if err == nil {
			timer.Stop(zap.Int("ticks", ticks), zap.Uint64("population", total))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), total)
			return err
		}
		if !errors.Is(err, lanternfish.ErrOverflow) {
			return err
		}
		log.Warn("Population exceeds 64 bits, recounting with arbitrary precision",
			zap.Int("ticks", ticks))
	}

	total, err := lanternfish.SimulateBig(timers, ticks)
	if err != nil {
		return err
	}
	timer.Stop(zap.Int("ticks", ticks), zap.Stringer("population", total))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), total.String())
	return err
}
