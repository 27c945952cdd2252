package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"lanternfish/internal/lanternfish"
	"lanternfish/internal/logging"

	"go.uber.org/zap"
)

// readTimers reads the first line of r and parses it as timers. A stream
// that ends before any newline counts as that (possibly empty) line.
func readTimers(r io.Reader) ([]int, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read input: %w", err)
	}

	timers, err := lanternfish.ParseTimers(line)
	if err != nil {
		return nil, fmt.Errorf("parse input: %w", err)
	}
	logging.For(logger, logging.CategoryInput).Debug("Parsed timers",
		zap.Int("fish", len(timers)))
	return timers, nil
}
