// Package lanternfish simulates a lanternfish school as a histogram of
// reproduction timers.
//
// Every fish at the same timer phase behaves identically, so the school is
// tracked as nine counters (one per phase) instead of one entry per fish.
// A tick is a left rotation of the counters plus one addition: the spawners
// that rotate out of phase 0 land in phase 8 as newborns and are also added
// back into phase 6.
package lanternfish

import (
	"fmt"
	"math/bits"
	"strings"
)

const (
	// Phases is the number of distinct timer values, 0 through 8.
	Phases = 9

	SpawnPhase   = 0 // fish at this phase reproduce on the next tick
	ResetPhase   = 6 // spawners restart here
	NewbornPhase = 8 // newborns start here
)

// Histogram counts fish per timer phase. Bucket t holds the number of fish
// whose timer currently reads t.
type Histogram [Phases]uint64

// NewHistogram builds a histogram with one count per timer.
func NewHistogram(timers []int) (Histogram, error) {
	var h Histogram
	for i, t := range timers {
		if t < 0 || t >= Phases {
			return Histogram{}, &TimerError{
				Token:    fmt.Sprint(t),
				Position: i + 1,
				Err:      ErrInvalidTimer,
			}
		}
		h[t]++
	}
	return h, nil
}

// Spawners returns the number of fish that reproduce on the next tick.
func (h Histogram) Spawners() uint64 {
	return h[SpawnPhase]
}

// Tick advances the school by one time step. The histogram is left
// untouched when the reset bucket would overflow.
func (h *Histogram) Tick() error {
	spawners := h[SpawnPhase]
	reset, carry := bits.Add64(h[ResetPhase+1], spawners, 0)
	if carry != 0 {
		return ErrOverflow
	}

	copy(h[:NewbornPhase], h[1:])
	h[NewbornPhase] = spawners
	h[ResetPhase] = reset
	return nil
}

// Advance runs ticks consecutive ticks.
func (h *Histogram) Advance(ticks int) error {
	if ticks < 0 {
		return ErrNegativeTicks
	}
	for i := 0; i < ticks; i++ {
		if err := h.Tick(); err != nil {
			return fmt.Errorf("tick %d: %w", i+1, err)
		}
	}
	return nil
}

// Total returns the population, the sum over all buckets.
func (h Histogram) Total() (uint64, error) {
	var total, carry uint64
	for _, n := range h {
		total, carry = bits.Add64(total, n, 0)
		if carry != 0 {
			return 0, ErrOverflow
		}
	}
	return total, nil
}

func (h Histogram) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, n := range h {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d:%d", i, n)
	}
	sb.WriteByte(']')
	return sb.String()
}
