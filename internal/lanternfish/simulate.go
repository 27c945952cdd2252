package lanternfish

import (
	"math/big"
)

// Simulate returns the population after ticks ticks, starting from one
// fish per timer.
func Simulate(timers []int, ticks int) (uint64, error) {
	h, err := NewHistogram(timers)
	if err != nil {
		return 0, err
	}
	if err := h.Advance(ticks); err != nil {
		return 0, err
	}
	return h.Total()
}

// SimulateBig is Simulate with arbitrary precision counters. It never
// overflows, at the cost of allocating as the counts grow.
func SimulateBig(timers []int, ticks int) (*big.Int, error) {
	if ticks < 0 {
		return nil, ErrNegativeTicks
	}
	h, err := NewHistogram(timers)
	if err != nil {
		return nil, err
	}

	var buckets [Phases]*big.Int
	for i, n := range h {
		buckets[i] = new(big.Int).SetUint64(n)
	}
	for i := 0; i < ticks; i++ {
		spawners := buckets[SpawnPhase]
		copy(buckets[:NewbornPhase], buckets[1:])
		buckets[NewbornPhase] = spawners
		buckets[ResetPhase] = new(big.Int).Add(buckets[ResetPhase], spawners)
	}

	total := new(big.Int)
	for _, n := range buckets {
		total.Add(total, n)
	}
	return total, nil
}

// Step is a snapshot of the school after Tick ticks.
type Step struct {
	Tick    int       `json:"tick"`
	Buckets Histogram `json:"buckets"`
	Total   uint64    `json:"total"`
}

// Trace advances h by ticks ticks and calls fn with the initial state and
// the state after every tick. A non-nil error from fn stops the run.
func Trace(h Histogram, ticks int, fn func(Step) error) error {
	if ticks < 0 {
		return ErrNegativeTicks
	}
	for tick := 0; ; tick++ {
		total, err := h.Total()
		if err != nil {
			return err
		}
		if err := fn(Step{Tick: tick, Buckets: h, Total: total}); err != nil {
			return err
		}
		if tick == ticks {
			return nil
		}
		if err := h.Tick(); err != nil {
			return err
		}
	}
}
