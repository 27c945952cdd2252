package lanternfish

// SimulateNaive runs the per-fish model: one timer per fish, every timer
// decrements each tick, and a fish at zero resets to six and appends a
// newborn at eight. Newborns are not aged on the tick they appear.
//
// It exists to cross-check the histogram model and refuses to track more
// than limit fish.
func SimulateNaive(timers []int, ticks int, limit int) (int, error) {
	if ticks < 0 {
		return 0, ErrNegativeTicks
	}
	if _, err := NewHistogram(timers); err != nil {
		return 0, err
	}
	if len(timers) > limit {
		return 0, ErrPopulationLimit
	}

	fish := make([]uint8, len(timers))
	for i, t := range timers {
		fish[i] = uint8(t)
	}
	for tick := 0; tick < ticks; tick++ {
		n := len(fish)
		for i := 0; i < n; i++ {
			if fish[i] == SpawnPhase {
				fish[i] = ResetPhase
				fish = append(fish, NewbornPhase)
				continue
			}
			fish[i]--
		}
		if len(fish) > limit {
			return 0, ErrPopulationLimit
		}
	}
	return len(fish), nil
}
