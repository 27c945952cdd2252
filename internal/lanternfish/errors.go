package lanternfish

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTimer marks a timer token outside [0, 8].
	ErrInvalidTimer = errors.New("timer out of range [0, 8]")

	// ErrOverflow is returned when a count no longer fits in 64 bits.
	ErrOverflow = errors.New("population overflows uint64")

	ErrNegativeTicks   = errors.New("tick count must not be negative")
	ErrPopulationLimit = errors.New("population exceeds reference model limit")
)

// TimerError reports a malformed or out-of-range timer token.
type TimerError struct {
	Token    string
	Position int // 1-based index of the token on the line
	Err      error
}

func (e *TimerError) Error() string {
	return fmt.Sprintf("invalid timer %q at position %d: %v", e.Token, e.Position, e.Err)
}

func (e *TimerError) Unwrap() error {
	return e.Err
}
