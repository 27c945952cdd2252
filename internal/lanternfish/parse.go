package lanternfish

import (
	"strconv"
	"strings"
)

// ParseTimers parses a comma-separated line of timers. Whitespace around
// each token is ignored, and a blank line yields no timers.
func ParseTimers(line string) ([]int, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return []int{}, nil
	}

	tokens := strings.Split(line, ",")
	timers := make([]int, 0, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, &TimerError{Token: tok, Position: i + 1, Err: err}
		}
		if n < 0 || n >= Phases {
			return nil, &TimerError{Token: tok, Position: i + 1, Err: ErrInvalidTimer}
		}
		timers = append(timers, n)
	}
	return timers, nil
}
